package internal

import (
	"strings"
	"testing"
)

func checkTree(t *testing.T, source string, tree string) {
	t.Helper()
	s := NewSession(DefaultConfig(), &testPrinter{})
	prog, errs := s.Parse(source)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors parsing %q: %v", source, errs)
	}
	if out := strings.TrimSpace(prog.String()); out != tree {
		t.Errorf("\nSource:\n----\n%s\n----\nExpected:\n%s\nFound:\n%s", source, tree, out)
	}
}

func checkParseErrors(t *testing.T, source string, expected ...string) {
	t.Helper()
	s := NewSession(DefaultConfig(), &testPrinter{})
	_, errs := s.Parse(source)
	if len(errs) != len(expected) {
		t.Fatalf("%q should produce %d errors, got %v", source, len(expected), errs)
	}
	for i, err := range errs {
		if err.Error() != expected[i] {
			t.Errorf("%q error %d should be %q, got %q", source, i, expected[i], err.Error())
		}
	}
}

func TestParseExpressions(t *testing.T) {
	checkTree(t, "x = 1 + 2 * 3", "(set x (+ 1 (* 2 3)))")
	checkTree(t, "x += 1", "(set x (+ x 1))")
	checkTree(t, "a = b = 2", "(set a (set b 2))")
	checkTree(t, "a.b.c = 1", "(set (. (. a b) c) 1)")
	checkTree(t, "a.n *= 2", "(set (. a n) (* (. a n) 2))")
	checkTree(t, "f(1, 2)(3)", "(call (call f 1 2) 3)")
	checkTree(t, `print("hi")`, `(call print "hi")`)
	checkTree(t, "x = not True and None", "(set x (and (not True) None))")
	checkTree(t, "x = -a % 2 == 1 or b", "(set x (or (== (% (- a) 2) 1) b))")
	checkTree(t, "x = (1 + 2) * 3", "(set x (* (+ 1 2) 3))")
	checkTree(t, "t = @[[1, 2], [3, 4]]", "(set t @[[1, 2], [3, 4]])")
}

func TestParseStatements(t *testing.T) {
	checkTree(t, `
if a:
    b
elif c: d
else:
    e
`, "(if (then a (scope b)) (elif c d) (else (scope e)))")

	checkTree(t, "while True:\n    break\n", "(while True (scope (break)))")

	checkTree(t, "for x in @[1]:\n    print(x)\n", "(for (in x @[1]) (scope (call print x)))")

	checkTree(t, "def f(a, b):\n    return a\n", "(fn f (a, b) (return a))")

	checkTree(t, "def f(): return\n", "(fn f () (return))")

	checkTree(t, `
class B(A):
    def m():
        pass

    def n(x): continue
`, "(class B (< A) (fn m () (pass)) (fn n (x) (continue)))")

	checkTree(t, `
try:
    a
except e:
    b
finally:
    c
`, "(try (scope a) (except e (scope b)) (finally (scope c)))")

	checkTree(t, "try: a\nexcept: b\n", "(try a (except b))")
}

func TestParseErrors(t *testing.T) {
	checkParseErrors(t, "x = ", "[line 1] Error at end of line: Expect expression")
	checkParseErrors(t, "1 = 2", "[line 1] Error at '=': Invalid assignment target")
	checkParseErrors(t, "if x\n    y\n", "[line 1] Error at end of line: Expect ':' before block")
	checkParseErrors(t, "  x = 1", "[line 1] Error at indentation: Unexpected indentation")
	checkParseErrors(t, "print(1", "[line 1] Error at end of line: Expect ')' after arguments")
	checkParseErrors(t, "def (a):\n    pass\n", "[line 1] Error at '(': Expect function name")
	checkParseErrors(t, "for 1 in x:\n    pass\n", "[line 1] Error at '1': Expect variable name")
	checkParseErrors(t, "try:\n    a\nb\n", "[line 3] Error at 'b': Expect 'except' after try block")
	checkParseErrors(t, "class A:\n    x = 1\n", "[line 2] Error at 'x': Expect method definition in class body")

	// Recovery keeps reporting the following statements
	checkParseErrors(t, "x = \ny = 1\nz = \n",
		"[line 1] Error at end of line: Expect expression",
		"[line 3] Error at end of line: Expect expression",
	)
	checkParseErrors(t, "if x\n    y = \nz = \n",
		"[line 1] Error at end of line: Expect ':' before block",
		"[line 3] Error at end of line: Expect expression",
	)
}
