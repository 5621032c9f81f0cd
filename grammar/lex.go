package grammar

/*
BSD License

Copyright (c) 2019–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/tfunc"
	"github.com/npillmayer/tfunc/corelang"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// TokenKind is the category of a token.
type TokenKind int8

// Token categories. Bar is ambiguous: it may open or close an absolute value.
const (
	NoToken TokenKind = iota
	Number
	Constant
	Variable
	Function
	Operator
	Open
	Close
	Bar
)

func (k TokenKind) String() string {
	switch k {
	case Number:
		return "number"
	case Constant:
		return "constant"
	case Variable:
		return "variable"
	case Function:
		return "function"
	case Operator:
		return "operator"
	case Open:
		return "open"
	case Close:
		return "close"
	case Bar:
		return "bar"
	}
	return "<no token>"
}

// Token is a lexeme of the input.
type Token struct {
	Kind  TokenKind
	Text  string               // the lexeme as written
	Col   int                  // byte offset of the lexeme
	Value float64              // numbers and constants; the base of log
	Desc  *corelang.Descriptor // functions and operators
}

func (tok Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", tok.Kind, tok.Text, tok.Col)
}

// Phi is the golden ratio.
var Phi = (1 + math.Sqrt(5)) / 2

var constants = map[string]float64{
	"e":   math.E,
	"pi":  math.Pi,
	"phi": Phi,
}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time creation of the DFA

// Patterns are tried longest match first. For matches of equal length the
// pattern added first wins.
func compileLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`[0-9]+(\.[0-9]+)?`), numberToken)
		lx.Add([]byte(`e|pi|phi`), constantToken)
		lx.Add([]byte(`\(`), makeToken(Open))
		lx.Add([]byte(`\)`), makeToken(Close))
		lx.Add([]byte(`\|`), makeToken(Bar))
		lx.Add([]byte(`(a|arc)?(sin|cos|tan|sec|csc|cot)h?`), functionToken)
		lx.Add([]byte(`log(_([0-9]+(\.[0-9]+)?|e|pi|phi))?`), logToken)
		lx.Add([]byte(`ln|sqrt|sign|H`), functionToken)
		lx.Add([]byte(`\^|\*|\/|\+|\-`), operatorToken)
		lx.Add([]byte(`t`), makeToken(Variable))
		lx.Add([]byte(`( |\t|\n|\r)+`), skip)
		if lexerErr = lx.Compile(); lexerErr == nil {
			lexer = lx
		}
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func token(kind TokenKind, m *machines.Match) Token {
	return Token{Kind: kind, Text: string(m.Bytes), Col: m.TC}
}

func makeToken(kind TokenKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token(kind, m), nil
	}
}

func numberToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	tok := token(Number, m)
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return nil, &tfunc.InvalidTokenError{Col: tok.Col, Text: tok.Text}
	}
	tok.Value = v
	return tok, nil
}

func constantToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	tok := token(Constant, m)
	tok.Value = constants[tok.Text]
	return tok, nil
}

func functionToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	tok := token(Function, m)
	d, ok := corelang.Lookup(tok.Text)
	if !ok {
		return nil, &tfunc.InvalidTokenError{Col: tok.Col, Text: tok.Text}
	}
	tok.Desc = d
	return tok, nil
}

// logToken creates a log function token. Value is the base, which defaults
// to 10.
func logToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	tok := token(Function, m)
	tok.Desc = corelang.Log
	tok.Value = 10
	if i := strings.IndexByte(tok.Text, '_'); i >= 0 {
		sub := tok.Text[i+1:]
		if c, ok := constants[sub]; ok {
			tok.Value = c
		} else {
			v, err := strconv.ParseFloat(sub, 64)
			if err != nil {
				return nil, &tfunc.InvalidTokenError{Col: tok.Col, Text: tok.Text}
			}
			tok.Value = v
		}
	}
	return tok, nil
}

func operatorToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	tok := token(Operator, m)
	tok.Desc, _ = corelang.Operator(tok.Text)
	return tok, nil
}

// --- Tokenizer -------------------------------------------------------------

// Tokenizer reads tokens from an input string, once and front to back.
type Tokenizer struct {
	input   string
	scanner *lexmachine.Scanner
	done    bool
}

// NewTokenizer creates a tokenizer for an input string.
func NewTokenizer(input string) (*Tokenizer, error) {
	lx, err := compileLexer()
	if err != nil {
		return nil, fmt.Errorf("cannot create lexer: %w", err)
	}
	scanner, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Tokenizer{input: input, scanner: scanner}, nil
}

// Next returns the next token. At the end of input, Next returns false.
// An error is returned for input not matching any token; after an error
// the tokenizer is exhausted.
func (t *Tokenizer) Next() (Token, bool, error) {
	if t.done {
		return Token{}, false, nil
	}
	tok, err, eos := t.scanner.Next()
	if eos {
		t.done = true
		return Token{}, false, nil
	}
	if err != nil {
		t.done = true
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			return Token{}, false, t.invalid(ui.StartTC)
		}
		return Token{}, false, err
	}
	tk := tok.(Token)
	tracer().Debugf("token %s", tk)
	return tk, true, nil
}

// invalid creates an error for the character at position col.
func (t *Tokenizer) invalid(col int) error {
	if col >= len(t.input) {
		return &tfunc.InvalidTokenError{Col: len(t.input)}
	}
	_, size := utf8.DecodeRuneInString(t.input[col:])
	return &tfunc.InvalidTokenError{Col: col, Text: t.input[col : col+size]}
}

// Tokenize splits an input string into tokens.
func Tokenize(input string) ([]Token, error) {
	tokenizer, err := NewTokenizer(input)
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for {
		tok, ok, err := tokenizer.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
