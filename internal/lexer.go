package internal

import (
	"strconv"
)

const tabWidth = 4

type lexer struct {
	start   int
	current int
	line    int

	// indentation levels of the open blocks, innermost last
	indents []int
	// open parentheses, newlines are not significant inside them
	parens      int
	atLineStart bool

	state *interpreterState
}

func newLexer(state *interpreterState) *lexer {
	return &lexer{
		line:        1,
		indents:     []int{0},
		atLineStart: true,
		state:       state,
	}
}

func (l *lexer) scan() {
	for !l.isAtEnd() {
		if l.atLineStart {
			l.atLineStart = false
			l.indentation()
			continue
		}
		l.start = l.current
		l.scanToken()
	}

	l.start = l.current
	if n := len(l.state.tokens); n > 0 && l.state.tokens[n-1].token != tkNewline {
		l.emit(tkNewline, nil)
	}
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(tkDedent, nil)
	}
	l.emit(tkEOF, nil)
}

// indentation measures the leading whitespace of a line and emits the
// INDENT/DEDENT tokens it implies. Blank and comment-only lines are ignored.
func (l *lexer) indentation() {
	width := 0
	pos := l.current
	for pos < len(l.state.source) {
		c := l.state.source[pos]
		if c == ' ' {
			width++
		} else if c == '\t' {
			width += tabWidth
		} else {
			break
		}
		pos++
	}
	l.current = pos
	l.start = pos

	if l.isAtEnd() {
		return
	}
	switch l.peek() {
	case '\n', '#', '\r':
		return
	}

	top := l.indents[len(l.indents)-1]
	if width > top {
		l.indents = append(l.indents, width)
		l.emit(tkIndent, nil)
		return
	}
	for width < l.indents[len(l.indents)-1] {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(tkDedent, nil)
	}
	if width != l.indents[len(l.indents)-1] {
		l.state.setError(errInconsistentIndent, l.line)
	}
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.parens++
		l.emit(tkLeftParen, nil)
	case ')':
		if l.parens > 0 {
			l.parens--
		}
		l.emit(tkRightParen, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case '-':
		l.emitOrEqual(tkMinus, tkMinusEqual)
	case '+':
		l.emitOrEqual(tkPlus, tkPlusEqual)
	case '/':
		l.emitOrEqual(tkSlash, tkSlashEqual)
	case '*':
		l.emitOrEqual(tkStar, tkStarEqual)
	case '%':
		l.emit(tkMod, nil)
	case ':':
		l.emit(tkColon, nil)
	case '#':
		for !l.isAtEnd() && l.peek() != '\n' {
			l.advance()
		}
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, nil)
		} else {
			l.state.setError(errWrongBang, l.line)
		}
	case '=':
		l.emitOrEqual(tkEqual, tkEqualEqual)
	case '<':
		l.emitOrEqual(tkLess, tkLessEqual)
	case '>':
		l.emitOrEqual(tkGreater, tkGreaterEqual)

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		if l.parens == 0 {
			if n := len(l.state.tokens); n > 0 && l.state.tokens[n-1].token != tkNewline {
				l.emit(tkNewline, nil)
			}
			l.atLineStart = true
		}
		l.line++

	case '"':
		l.string()

	case '@':
		if l.peek() == '[' {
			l.tensor()
		} else {
			l.state.setError(errIllegalChar, l.line)
		}

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.state.setError(errIllegalChar, l.line)
		}
	}
}

func (l *lexer) emitOrEqual(single, withEqual tokenType) {
	if l.match('=') {
		l.emit(withEqual, nil)
		return
	}
	l.emit(single, nil)
}

func (l *lexer) string() {
	startLine := l.line
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.state.setError(errUnclosedString, startLine)
		return
	}

	// Consume ending "
	l.advance()

	l.emitAt(tkString, l.state.source[l.start+1:l.current-1], startLine)
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, _ := strconv.ParseFloat(l.state.source[l.start:l.current], 64)

	l.emit(tkNumber, literal)
}

func (l *lexer) identifier() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	identifier := l.state.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	l.emit(tokenType, nil)
}

// tensor captures a balanced [...] after '@'. The text is decoded later by
// the tensor engine, see parseTensorLiteral.
func (l *lexer) tensor() {
	startLine := l.line
	depth := 0
	for !l.isAtEnd() {
		c := l.advance()
		if c == '\n' {
			l.line++
		}
		if c == '[' {
			depth++
		} else if c == ']' {
			depth--
			if depth == 0 {
				break
			}
		}
	}
	if depth != 0 {
		l.state.setError(errUnclosedTensor, startLine)
		return
	}
	l.emitAt(tkTensor, l.state.source[l.start+1:l.current], startLine)
}

func (l *lexer) advance() byte {
	current := l.state.source[l.current]
	l.current++
	return current
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.state.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.state.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.state.source) {
		return 0
	}
	return l.state.source[l.current+1]
}

func (l *lexer) emit(tk tokenType, literal interface{}) {
	l.emitAt(tk, literal, l.line)
}

// emitAt is emit for tokens that may span lines, they keep the line they
// start on
func (l *lexer) emitAt(tk tokenType, literal interface{}, line int) {
	lexeme := l.state.source[l.start:l.current]
	switch tk {
	case tkNewline:
		lexeme = "\\n"
	case tkIndent, tkDedent, tkEOF:
		lexeme = ""
	}
	l.state.tokens = append(l.state.tokens, token{
		token:   tk,
		lexeme:  lexeme,
		literal: literal,
		line:    line,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.state.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
