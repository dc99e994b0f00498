package internal

import (
	"errors"
	"testing"
)

func nameToken(name string) *token {
	return &token{token: tkIdentifier, lexeme: name, line: 1}
}

func TestEnvDistances(t *testing.T) {
	globals := newEnv(nil)
	globals.define("a", pulseNumber(1))
	middle := newEnv(globals)
	middle.define("a", pulseNumber(2))
	inner := newEnv(middle)

	if v, err := inner.getAt(1, nameToken("a")); err != nil || v != pulseNumber(2) {
		t.Errorf("distance 1 should see the shadowing binding, got %v %v", v, err)
	}
	if v, err := inner.getAt(2, nameToken("a")); err != nil || v != pulseNumber(1) {
		t.Errorf("distance 2 should see the global binding, got %v %v", v, err)
	}
	if _, err := inner.getAt(0, nameToken("a")); !errors.Is(err, errUndefinedVar) {
		t.Errorf("distance 0 has no binding, got %v", err)
	}

	if err := inner.assignAt(2, nameToken("a"), pulseNumber(3)); err != nil {
		t.Fatal(err)
	}
	if v, _ := globals.getGlobal(nameToken("a")); v != pulseNumber(3) {
		t.Errorf("assignAt should write the global frame, got %v", v)
	}
	if v, _ := middle.getAt(0, nameToken("a")); v != pulseNumber(2) {
		t.Errorf("assignAt should leave the shadowing binding, got %v", v)
	}
}

func TestEnvGlobals(t *testing.T) {
	globals := newEnv(nil)

	err := globals.assignGlobal(nameToken("missing"), pulseNumber(1))
	if !errors.Is(err, errUndefinedVar) {
		t.Errorf("assignment should not create globals, got %v", err)
	}
	if _, ok := globals.values["missing"]; ok {
		t.Error("failed assignment left a binding behind")
	}

	var runErr *RuntimeError
	if _, err := globals.getGlobal(nameToken("missing")); !errors.As(err, &runErr) || runErr.Error() != "Undefined variable 'missing'" {
		t.Errorf("unexpected error %v", err)
	}

	globals.define("x", nil)
	if v, err := globals.getGlobal(nameToken("x")); err != nil || v != nil {
		t.Errorf("None should be a valid binding, got %v %v", v, err)
	}
}
