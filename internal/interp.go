package internal

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Exit codes returned by RunSource
const (
	ExitOK           = 0
	ExitStaticError  = 65
	ExitRuntimeError = 70
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Program is a parsed source unit ready to be resolved and interpreted
type Program struct {
	stmts []stmt
}

// String renders the syntax tree as s-expressions
func (p *Program) String() string {
	return printTree(p.stmts)
}

// Session keeps the globals and the resolver state of one interpreter.
// A REPL uses one Session for every line it reads.
type Session struct {
	config  Config
	printer IPrinter
	log     *logrus.Entry

	table    *resolution
	resolver *resolver
	exec     *execute
}

// NewSession creates an interpreter with the built-ins defined
func NewSession(cfg Config, p IPrinter) *Session {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.LogLevel())
	log := logger.WithField("component", "session")

	table := newResolution()
	res := newResolver(table)
	for _, name := range nativeNames {
		res.globals[name] = nil
	}

	return &Session{
		config:   cfg,
		printer:  p,
		log:      log,
		table:    table,
		resolver: res,
		exec:     newExecute(table, p, cfg.Interpreter.MaxCallDepth, log),
	}
}

// Parse scans and parses source. Nothing is returned but errors when the
// source is not valid.
func (s *Session) Parse(source string) (*Program, []*StaticError) {
	start := time.Now()
	state := newInterpreterState(source)

	newLexer(state).scan()
	if !state.Valid() {
		return nil, state.errors
	}

	p := &parser{state: state}
	p.parse()
	if !state.Valid() {
		return nil, state.errors
	}

	s.log.WithFields(logrus.Fields{
		"tokens":  len(state.tokens),
		"stmts":   len(state.stmts),
		"elapsed": time.Since(start),
	}).Debug("parsed source")
	return &Program{stmts: state.stmts}, nil
}

// Resolve computes the scope distances of prog. An empty result means the
// program can be interpreted.
func (s *Session) Resolve(prog *Program) []*StaticError {
	start := time.Now()
	errs := s.resolver.resolve(prog.stmts)
	s.log.WithFields(logrus.Fields{
		"errors":  len(errs),
		"elapsed": time.Since(start),
	}).Debug("resolved program")
	return errs
}

// Interpret executes a resolved program. The returned error is a
// *RuntimeError.
func (s *Session) Interpret(prog *Program) error {
	start := time.Now()
	err := s.exec.interpret(prog.stmts)
	s.log.WithField("elapsed", time.Since(start)).Debug("interpreted program")
	return err
}

// RunSource runs source through every phase and reports errors on the
// printer. Globals defined by earlier calls stay visible.
func (s *Session) RunSource(source string) int {
	prog, errs := s.Parse(source)
	if len(errs) == 0 {
		errs = s.Resolve(prog)
	}
	if len(errs) > 0 {
		for _, err := range errs {
			s.printer.Fprintln(os.Stderr, err.Error())
		}
		return ExitStaticError
	}

	if err := s.Interpret(prog); err != nil {
		var runErr *RuntimeError
		if errors.As(err, &runErr) {
			s.printer.Fprintln(os.Stderr, runErr.Report())
		} else {
			s.printer.Fprintln(os.Stderr, err.Error())
		}
		return ExitRuntimeError
	}
	return ExitOK
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) int {
	return NewSession(DefaultConfig(), p).RunSource(source)
}
