package internal

import "fmt"

type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), ',', ., -, +, /, *, %, :
	tkLeftParen
	tkRightParen
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSlash
	tkStar
	tkMod
	tkColon

	// One or two character tokens.
	// !=, =, ==, >, >=, <, <=, +=, -=, *=, /=
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual
	tkPlusEqual
	tkMinusEqual
	tkStarEqual
	tkSlashEqual

	// Literals.
	// *variable*, string, number, @[tensor]
	tkIdentifier
	tkString
	tkNumber
	tkTensor

	// Layout.
	tkNewline
	tkIndent
	tkDedent

	// Keywords.
	tkAnd
	tkBreak
	tkClass
	tkContinue
	tkDef
	tkElif
	tkElse
	tkExcept
	tkFinally
	tkFor
	tkIf
	tkIn
	tkNot
	tkOr
	tkPass
	tkReturn
	tkSuper
	tkThis
	tkTry
	tkWhile
	tkTrue
	tkFalse
	tkNone
)

var keywords = map[string]tokenType{
	"and":      tkAnd,
	"break":    tkBreak,
	"class":    tkClass,
	"continue": tkContinue,
	"def":      tkDef,
	"elif":     tkElif,
	"else":     tkElse,
	"except":   tkExcept,
	"finally":  tkFinally,
	"for":      tkFor,
	"if":       tkIf,
	"in":       tkIn,
	"not":      tkNot,
	"or":       tkOr,
	"pass":     tkPass,
	"return":   tkReturn,
	"super":    tkSuper,
	"this":     tkThis,
	"try":      tkTry,
	"while":    tkWhile,
	"True":     tkTrue,
	"False":    tkFalse,
	"None":     tkNone,
}

var tokenNames = map[tokenType]string{
	tkEOF:          "EOF",
	tkLeftParen:    "LEFT_PAREN",
	tkRightParen:   "RIGHT_PAREN",
	tkComma:        "COMMA",
	tkDot:          "DOT",
	tkMinus:        "MINUS",
	tkPlus:         "PLUS",
	tkSlash:        "SLASH",
	tkStar:         "STAR",
	tkMod:          "MOD",
	tkColon:        "COLON",
	tkBangEqual:    "BANG_EQUAL",
	tkEqual:        "EQUAL",
	tkEqualEqual:   "EQUAL_EQUAL",
	tkGreater:      "GREATER",
	tkGreaterEqual: "GREATER_EQUAL",
	tkLess:         "LESS",
	tkLessEqual:    "LESS_EQUAL",
	tkPlusEqual:    "PLUS_EQUAL",
	tkMinusEqual:   "MINUS_EQUAL",
	tkStarEqual:    "STAR_EQUAL",
	tkSlashEqual:   "SLASH_EQUAL",
	tkIdentifier:   "IDENTIFIER",
	tkString:       "STRING",
	tkNumber:       "NUMBER",
	tkTensor:       "TENSOR",
	tkNewline:      "NEWLINE",
	tkIndent:       "INDENT",
	tkDedent:       "DEDENT",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	for word, tk := range keywords {
		if tk == t {
			return word
		}
	}
	return fmt.Sprintf("token(%d)", int(t))
}

type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	line    int
}

func (t *token) String() string {
	return fmt.Sprintf("%v %q %v line=%d", t.token, t.lexeme, t.literal, t.line)
}
