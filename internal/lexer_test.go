package internal

import (
	"errors"
	"testing"
)

func scanSource(source string) *interpreterState {
	state := newInterpreterState(source)
	newLexer(state).scan()
	return state
}

func checkTokens(t *testing.T, source string, expected ...tokenType) {
	t.Helper()
	state := scanSource(source)
	if !state.Valid() {
		t.Fatalf("unexpected errors scanning %q: %v", source, state.errors)
	}
	if len(state.tokens) != len(expected) {
		t.Fatalf("%q should produce %d tokens, got %d: %v", source, len(expected), len(state.tokens), state.tokens)
	}
	for i, tk := range state.tokens {
		if tk.token != expected[i] {
			t.Errorf("%q token %d should be %v, got %v", source, i, expected[i], tk.token)
		}
	}
}

func TestLexerTokens(t *testing.T) {
	checkTokens(t, "x = 1 + 2.5",
		tkIdentifier, tkEqual, tkNumber, tkPlus, tkNumber, tkNewline, tkEOF)

	checkTokens(t, "a += 1\nb -= 2\nc *= 3\nd /= 4\n",
		tkIdentifier, tkPlusEqual, tkNumber, tkNewline,
		tkIdentifier, tkMinusEqual, tkNumber, tkNewline,
		tkIdentifier, tkStarEqual, tkNumber, tkNewline,
		tkIdentifier, tkSlashEqual, tkNumber, tkNewline,
		tkEOF)

	checkTokens(t, "a == b != c <= d >= e < f > g % h",
		tkIdentifier, tkEqualEqual, tkIdentifier, tkBangEqual, tkIdentifier,
		tkLessEqual, tkIdentifier, tkGreaterEqual, tkIdentifier, tkLess,
		tkIdentifier, tkGreater, tkIdentifier, tkMod, tkIdentifier,
		tkNewline, tkEOF)

	checkTokens(t, "not True and False or None",
		tkNot, tkTrue, tkAnd, tkFalse, tkOr, tkNone, tkNewline, tkEOF)

	checkTokens(t, `print("hi") # comment`,
		tkIdentifier, tkLeftParen, tkString, tkRightParen, tkNewline, tkEOF)

	checkTokens(t, "t = @[[1, 2], [3, 4]]",
		tkIdentifier, tkEqual, tkTensor, tkNewline, tkEOF)
}

func TestLexerIndentation(t *testing.T) {
	checkTokens(t, "if x:\n    y = 1\nz",
		tkIf, tkIdentifier, tkColon, tkNewline,
		tkIndent, tkIdentifier, tkEqual, tkNumber, tkNewline,
		tkDedent, tkIdentifier, tkNewline,
		tkEOF)

	// Open blocks are closed at the end of input
	checkTokens(t, "while a:\n\tif b:\n\t\tpass\n",
		tkWhile, tkIdentifier, tkColon, tkNewline,
		tkIndent, tkIf, tkIdentifier, tkColon, tkNewline,
		tkIndent, tkPass, tkNewline,
		tkDedent, tkDedent, tkEOF)

	// Blank and comment lines do not change the indentation
	checkTokens(t, "if x:\n    a\n\n# note\n    b\n",
		tkIf, tkIdentifier, tkColon, tkNewline,
		tkIndent, tkIdentifier, tkNewline,
		tkIdentifier, tkNewline,
		tkDedent, tkEOF)

	// Newlines inside parentheses are ignored
	checkTokens(t, "f(1,\n      2)\n",
		tkIdentifier, tkLeftParen, tkNumber, tkComma, tkNumber, tkRightParen, tkNewline, tkEOF)
}

func TestLexerLiterals(t *testing.T) {
	state := scanSource(`x = "a b" + 42 + @[1, 2]`)
	if !state.Valid() {
		t.Fatalf("unexpected errors: %v", state.errors)
	}
	if s := state.tokens[2].literal; s != "a b" {
		t.Errorf("string literal should be 'a b', got %v", s)
	}
	if n := state.tokens[4].literal; n != 42.0 {
		t.Errorf("number literal should be 42, got %v", n)
	}
	tensor := state.tokens[6]
	if tensor.literal != "[1, 2]" || tensor.lexeme != "@[1, 2]" {
		t.Errorf("unexpected tensor token %q %v", tensor.lexeme, tensor.literal)
	}

	// Multi-line literals report the line they start on
	state = scanSource("x = \"a\nb\" + @[1,\n2]")
	if line := state.tokens[2].line; line != 1 {
		t.Errorf("multi-line string should start on line 1, got %d", line)
	}
	if line := state.tokens[4].line; line != 2 {
		t.Errorf("tensor should start on line 2, got %d", line)
	}

	state = scanSource("a\nb\n\nc")
	if line := state.tokens[len(state.tokens)-2].line; line != 4 {
		t.Errorf("last line should be 4, got %d", line)
	}
}

func TestLexerErrors(t *testing.T) {
	cases := []struct {
		source string
		err    error
		line   int
	}{
		{`x = "abc`, errUnclosedString, 1},
		{"x = !y", errWrongBang, 1},
		{"x = $", errIllegalChar, 1},
		{"x = @y", errIllegalChar, 1},
		{"x = @[1,\n 2", errUnclosedTensor, 1},
		{"if x:\n    y\n  z", errInconsistentIndent, 3},
	}

	for _, c := range cases {
		state := scanSource(c.source)
		if len(state.errors) != 1 {
			t.Errorf("%q should produce one error, got %v", c.source, state.errors)
			continue
		}
		if !errors.Is(state.errors[0], c.err) {
			t.Errorf("%q should fail with %v, got %v", c.source, c.err, state.errors[0])
		}
		if state.errors[0].Line != c.line {
			t.Errorf("%q should fail on line %d, got %d", c.source, c.line, state.errors[0].Line)
		}
	}
}
