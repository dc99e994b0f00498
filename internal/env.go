package internal

import "fmt"

type env struct {
	enclosing *env
	values    map[string]value
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]value),
	}
}

func (e *env) define(name string, val value) {
	e.values[name] = val
}

func (e *env) ancestor(distance int) *env {
	environment := e
	for i := 0; i < distance && environment != nil; i++ {
		environment = environment.enclosing
	}
	return environment
}

func (e *env) getAt(distance int, name *token) (value, error) {
	if scope := e.ancestor(distance); scope != nil {
		if val, ok := scope.values[name.lexeme]; ok {
			return val, nil
		}
	}
	return nil, undefinedVar(name)
}

func (e *env) assignAt(distance int, name *token, val value) error {
	if scope := e.ancestor(distance); scope != nil {
		if _, ok := scope.values[name.lexeme]; ok {
			scope.values[name.lexeme] = val
			return nil
		}
	}
	return undefinedVar(name)
}

// getGlobal is the by-name lookup used for globals, e is expected to be
// the root of the chain
func (e *env) getGlobal(name *token) (value, error) {
	if val, ok := e.values[name.lexeme]; ok {
		return val, nil
	}
	return nil, undefinedVar(name)
}

func (e *env) assignGlobal(name *token, val value) error {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = val
		return nil
	}
	return undefinedVar(name)
}

func undefinedVar(name *token) error {
	return runtimeErr(fmt.Errorf("%w '%s'", errUndefinedVar, name.lexeme), name)
}
