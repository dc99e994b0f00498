package internal

import (
	"errors"
	"fmt"
)

// StaticError is an error found before execution starts: while scanning,
// parsing or resolving a program.
type StaticError struct {
	Err   error
	Line  int
	where string
}

func (e *StaticError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.where, e.Err)
}

func (e *StaticError) Unwrap() error {
	return e.Err
}

func newStaticError(err error, tk *token) *StaticError {
	where := ""
	switch tk.token {
	case tkEOF:
		where = " at end"
	case tkNewline:
		where = " at end of line"
	case tkIndent, tkDedent:
		where = " at indentation"
	default:
		where = fmt.Sprintf(" at '%s'", tk.lexeme)
	}
	return &StaticError{Err: err, Line: tk.line, where: where}
}

// interpreterState stores the state of a single source unit going through
// the front end
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt
	errors []*StaticError
}

func newInterpreterState(source string) *interpreterState {
	return &interpreterState{
		source: source,
		errors: make([]*StaticError, 0),
	}
}

func (s *interpreterState) setError(err error, line int) {
	s.errors = append(s.errors, &StaticError{Err: err, Line: line})
}

func (s *interpreterState) setTokenError(err error, tk *token) {
	s.errors = append(s.errors, newStaticError(err, tk))
}

// fatalError records the error and unwinds the parser up to the
// statement being parsed, see parser.parseStmt
func (s *interpreterState) fatalError(err error, tk *token) {
	s.setTokenError(err, tk)
	panic(parseAbort{})
}

// Valid returns true if no static errors were found
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

type parseAbort struct{}

// Lexer errors
var errIllegalChar = errors.New("Unexpected character")
var errWrongBang = errors.New("'!' cannot be used here")
var errUnclosedString = errors.New("Unterminated string")
var errUnclosedTensor = errors.New("Unterminated tensor literal")
var errInconsistentIndent = errors.New("Inconsistent indentation")

// Parser errors
var errUnclosedParen = errors.New("Expect ')' after expression")
var errUnclosedArguments = errors.New("Expect ')' after arguments")
var errUnclosedParams = errors.New("Expect ')' after parameters")
var errExpectedParen = errors.New("Expect '(' after function name")
var errExpectedColon = errors.New("Expect ':' before block")
var errExpectedIndent = errors.New("Expect indented block")
var errExpectedNewline = errors.New("Expect new line after statement")
var errExpectedIdentifier = errors.New("Expect variable name")
var errExpectedFunctionName = errors.New("Expect function name")
var errExpectedFunctionParam = errors.New("Expect parameter name")
var errExpectedClassName = errors.New("Expect class name")
var errExpectedSuperclass = errors.New("Expect superclass name")
var errExpectedMethod = errors.New("Expect method definition in class body")
var errExpectedProp = errors.New("Expect property name after '.'")
var errExpectedIn = errors.New("Expect 'in' after loop variable")
var errExpectedExcept = errors.New("Expect 'except' after try block")
var errExpectedDot = errors.New("Expect '.' after 'super'")
var errExpectedSuperMethod = errors.New("Expect superclass method name")
var errInvalidAssignment = errors.New("Invalid assignment target")
var errUndefinedExpr = errors.New("Expect expression")
var errUnexpectedIndent = errors.New("Unexpected indentation")
var errMaxParameters = errors.New("Can't have more than 255 parameters")
var errMaxArguments = errors.New("Can't have more than 255 arguments")

// Resolver errors
var errReadOwnInit = errors.New("Can't read variable in its own initializer")
var errDuplicateParam = errors.New("Already a parameter with this name in this function")
var errInheritSelf = errors.New("A class can't inherit from itself")
var errBreakOutsideLoop = errors.New("Can't use 'break' outside of a loop")
var errContinueOutsideLoop = errors.New("Can't use 'continue' outside of a loop")
var errReturnOutsideFunction = errors.New("Can't return from top-level code")
var errThisOutsideClass = errors.New("Can't use 'this' outside of a class")
var errSuperOutsideClass = errors.New("Can't use 'super' outside of a class")
var errSuperNoSuperclass = errors.New("Can't use 'super' in a class with no superclass")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errTypeMismatch = errors.New("Unsupported operand types")
var errNotCallable = errors.New("Can only call functions and classes")
var errArityMismatch = errors.New("Wrong number of arguments")
var errNotIterable = errors.New("Value is not iterable")
var errAttribute = errors.New("Undefined attribute")
var errShape = errors.New("Invalid tensor shape")
var errShapeMismatch = errors.New("Tensor shape mismatch")
var errDivisionByZero = errors.New("Division by zero")
var errStackOverflow = errors.New("Stack overflow")
