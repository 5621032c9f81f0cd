package grammar

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tfunc"
	"github.com/npillmayer/tfunc/corelang"
)

func TestLexerKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		kinds []TokenKind
	}{
		{"42", []TokenKind{Number}},
		{"2pi t", []TokenKind{Number, Constant, Variable}},
		{"sin(t)", []TokenKind{Function, Open, Variable, Close}},
		{"|t|-1", []TokenKind{Bar, Variable, Bar, Operator, Number}},
		{"tan t", []TokenKind{Function, Variable}},
		{"sint", []TokenKind{Function, Variable}},
		{"pie", []TokenKind{Constant, Constant}},
		{"  3.25 *\tt ", []TokenKind{Number, Operator, Variable}},
		{"2 3", []TokenKind{Number, Number}},
	} {
		tokens, err := Tokenize(x.input)
		if err != nil {
			t.Fatalf("test %d: %v", i, err)
		}
		if len(tokens) != len(x.kinds) {
			t.Fatalf("test %d: expected %d tokens for %q, have %v", i, len(x.kinds), x.input, tokens)
		}
		for j, tok := range tokens {
			if tok.Kind != x.kinds[j] {
				t.Errorf("test %d: expected token %d to be %s, is %s", i, j, x.kinds[j], tok)
			}
		}
	}
}

func TestLexerFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		name  string
	}{
		{"sin", "sin"},
		{"asin", "asin"},
		{"arcsin", "asin"},
		{"arccoth", "acoth"},
		{"cosh", "cosh"},
		{"sqrt", "sqrt"},
		{"H", "H"},
		{"log", "log"},
		{"log_2", "log"},
	} {
		tokens, err := Tokenize(x.input)
		if err != nil {
			t.Fatalf("test %d: %v", i, err)
		}
		if len(tokens) != 1 || tokens[0].Kind != Function || tokens[0].Desc.Name != x.name {
			t.Errorf("test %d: expected function %s, have %v", i, x.name, tokens)
		}
	}
}

func TestLexerLogBase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		base  float64
	}{
		{"log", 10},
		{"log_2", 2},
		{"log_2.5", 2.5},
		{"log_e", math.E},
		{"log_pi", math.Pi},
	} {
		tokens, err := Tokenize(x.input)
		if err != nil {
			t.Fatalf("test %d: %v", i, err)
		}
		if tokens[0].Desc != corelang.Log || tokens[0].Value != x.base {
			t.Errorf("test %d: expected log to base %g, have %v", i, x.base, tokens[0])
		}
	}
	tokens, _ := Tokenize("log_2 8")
	if len(tokens) != 2 || tokens[1].Value != 8 || tokens[1].Col != 6 {
		t.Errorf("expected subscript to end at whitespace, have %v", tokens)
	}
}

func TestLexerInvalidToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tfunc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		col   int
		text  string
	}{
		{"sin x", 4, "x"},
		{"2 & 3", 2, "&"},
		{"t²", 1, "²"},
		{"y", 0, "y"},
	} {
		_, err := Tokenize(x.input)
		var invalid *tfunc.InvalidTokenError
		if !errors.As(err, &invalid) {
			t.Errorf("test %d: expected invalid token error for %q, have %v", i, x.input, err)
			continue
		}
		if invalid.Col != x.col || invalid.Text != x.text {
			t.Errorf("test %d: expected %q at %d, have %q at %d", i, x.text, x.col, invalid.Text, invalid.Col)
		}
	}
}
