package tfunc

import (
	"strconv"
)

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset into the input of the token that caused
	// the error.
	Pos() int
}

// EmptyInputError is returned for input consisting of nothing but
// whitespace.
type EmptyInputError struct{}

func (err *EmptyInputError) Error() string {
	return errpos(0, "no expression")
}

func (err *EmptyInputError) Pos() int {
	return 0
}

// InvalidTokenError indicates that no token matches at a position of the input.
type InvalidTokenError struct {
	// Col is the byte offset at which scanning failed.
	Col int
	// Text is the input which could not be matched, starting at Col.
	Text string
}

func (err *InvalidTokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *InvalidTokenError) Pos() int {
	return err.Col
}

// UnmatchedCloseError is a closing delimiter without a matching open one.
// For `|` this means a bar which could not be resolved as closing an
// absolute value.
type UnmatchedCloseError struct {
	Col       int
	Delimiter string
}

func (err *UnmatchedCloseError) Error() string {
	return errpos(err.Col, "closing "+err.Delimiter+" with no matching open delimiter")
}

func (err *UnmatchedCloseError) Pos() int {
	return err.Col
}

// UnmatchedOpenError is a group which is still open at the end of the input
// or at a `)`. Opener is either a delimiter or the name of a function.
type UnmatchedOpenError struct {
	Col    int
	Opener string
}

func (err *UnmatchedOpenError) Error() string {
	return errpos(err.Col, "open "+err.Opener+" is never closed")
}

func (err *UnmatchedOpenError) Pos() int {
	return err.Col
}

// ArityMismatchError is an operator or function which did not receive the
// number of operands it requires.
type ArityMismatchError struct {
	Col      int
	Name     string
	Required int
	Supplied int
}

func (err *ArityMismatchError) Error() string {
	return errpos(err.Col, err.Name+" requires "+strconv.Itoa(err.Required)+
		" operand(s), has "+strconv.Itoa(err.Supplied))
}

func (err *ArityMismatchError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*EmptyInputError)(nil)
	_ InputError = (*InvalidTokenError)(nil)
	_ InputError = (*UnmatchedCloseError)(nil)
	_ InputError = (*UnmatchedOpenError)(nil)
	_ InputError = (*ArityMismatchError)(nil)
)
