package internal

import (
	"errors"
	"fmt"
)

// RuntimeError is raised while evaluating a program. It aborts the current
// top level statement unless a try statement catches it.
type RuntimeError struct {
	err   error
	token *token
}

func runtimeErr(err error, tk *token) *RuntimeError {
	var rt *RuntimeError
	if errors.As(err, &rt) {
		return rt
	}
	return &RuntimeError{err: err, token: tk}
}

func (r *RuntimeError) Error() string {
	return r.err.Error()
}

func (r *RuntimeError) Unwrap() error {
	return r.err
}

// Line returns the source line where the error was raised
func (r *RuntimeError) Line() int {
	if r.token == nil {
		return 0
	}
	return r.token.line
}

// Report formats the error the way the driver prints it
func (r *RuntimeError) Report() string {
	return fmt.Sprintf("%s\n[line %d]", r.Error(), r.Line())
}

type arityError struct {
	expected int
	got      int
}

func (a *arityError) Error() string {
	return fmt.Sprintf("Expected %d arguments but got %d.", a.expected, a.got)
}

func (a *arityError) Is(target error) bool {
	return target == errArityMismatch
}
