package internal

import (
	"fmt"
	"strings"
)

// printTree renders statements as s-expressions, one per line
func printTree(stmts []stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(stmtString(s))
		b.WriteString("\n")
	}
	return b.String()
}

func stmtString(s stmt) string {
	switch st := s.(type) {
	case *exprStmt:
		return exprString(st.expression)

	case *blockStmt:
		return "(scope" + stmtList(st.stmts) + ")"

	case *ifStmt:
		out := fmt.Sprintf("(if (then %s %s)", exprString(st.condition), stmtString(st.thenBranch))
		for _, elif := range st.elifs {
			out += fmt.Sprintf(" (elif %s %s)", exprString(elif.condition), stmtString(elif.thenBranch))
		}
		if st.elseBranch != nil {
			out += fmt.Sprintf(" (else %s)", stmtString(st.elseBranch))
		}
		return out + ")"

	case *whileStmt:
		return fmt.Sprintf("(while %s %s)", exprString(st.condition), stmtString(st.body))

	case *forStmt:
		return fmt.Sprintf(
			"(for (in %s %s) %s)",
			st.identifier.lexeme,
			exprString(st.collection),
			stmtString(st.body),
		)

	case *breakStmt:
		return "(break)"

	case *continueStmt:
		return "(continue)"

	case *passStmt:
		return "(pass)"

	case *returnStmt:
		if st.value == nil {
			return "(return)"
		}
		return fmt.Sprintf("(return %s)", exprString(st.value))

	case *fnStmt:
		return fnString(st)

	case *classStmt:
		out := "(class " + st.name.lexeme
		if st.superclass != nil {
			out += " (< " + st.superclass.name.lexeme + ")"
		}
		for _, method := range st.methods {
			out += " " + fnString(method)
		}
		return out + ")"

	case *tryStmt:
		out := fmt.Sprintf("(try %s (except", stmtString(st.tryBody))
		if st.name != nil {
			out += " " + st.name.lexeme
		}
		out += " " + stmtString(st.exceptBody) + ")"
		if st.finallyBody != nil {
			out += fmt.Sprintf(" (finally %s)", stmtString(st.finallyBody))
		}
		return out + ")"
	}
	return fmt.Sprintf("%T", s)
}

func stmtList(stmts []stmt) string {
	out := ""
	for _, s := range stmts {
		out += " " + stmtString(s)
	}
	return out
}

func fnString(fn *fnStmt) string {
	params := make([]string, len(fn.params))
	for i, param := range fn.params {
		params[i] = param.lexeme
	}
	return "(fn " + fn.name.lexeme + " (" + strings.Join(params, ", ") + ")" + stmtList(fn.body) + ")"
}

func exprString(e expr) string {
	switch ex := e.(type) {
	case *assignExpr:
		return fmt.Sprintf("(set %s %s)", ex.name.lexeme, exprString(ex.value))

	case *binaryExpr:
		return fmt.Sprintf("(%s %s %s)", ex.operator.lexeme, exprString(ex.left), exprString(ex.right))

	case *logicalExpr:
		return fmt.Sprintf("(%s %s %s)", ex.operator.lexeme, exprString(ex.left), exprString(ex.right))

	case *unaryExpr:
		return fmt.Sprintf("(%s %s)", ex.operator.lexeme, exprString(ex.right))

	case *groupingExpr:
		return exprString(ex.expression)

	case *callExpr:
		out := "(call " + exprString(ex.callee)
		for _, arg := range ex.arguments {
			out += " " + exprString(arg)
		}
		return out + ")"

	case *getExpr:
		return fmt.Sprintf("(. %s %s)", exprString(ex.object), ex.name.lexeme)

	case *setExpr:
		return fmt.Sprintf("(set (. %s %s) %s)", exprString(ex.object), ex.name.lexeme, exprString(ex.value))

	case *superExpr:
		return "(super " + ex.method.lexeme + ")"

	case *thisExpr:
		return "this"

	case *variableExpr:
		return ex.name.lexeme

	case *tensorExpr:
		return ex.literal.lexeme

	case *literalExpr:
		if s, ok := ex.value.(pulseString); ok {
			return "\"" + string(s) + "\""
		}
		return printObj(ex.value)
	}
	return fmt.Sprintf("%T", e)
}
