package internal

// expr is the closed set of expression nodes. Consumers switch on the
// concrete type instead of double dispatching through a visitor.
type expr interface {
	exprNode()
}

type assignExpr struct {
	name  *token
	value expr
}

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

type callExpr struct {
	callee    expr
	paren     *token
	arguments []expr
}

type getExpr struct {
	object expr
	name   *token
}

type setExpr struct {
	object expr
	name   *token
	value  expr
}

type superExpr struct {
	keyword *token
	method  *token
}

type groupingExpr struct {
	expression expr
}

type literalExpr struct {
	value value
}

type tensorExpr struct {
	literal *token
}

type logicalExpr struct {
	left     expr
	operator *token
	right    expr
}

type thisExpr struct {
	keyword *token
}

type unaryExpr struct {
	operator *token
	right    expr
}

type variableExpr struct {
	name *token
}

func (*assignExpr) exprNode()   {}
func (*binaryExpr) exprNode()   {}
func (*callExpr) exprNode()     {}
func (*getExpr) exprNode()      {}
func (*setExpr) exprNode()      {}
func (*superExpr) exprNode()    {}
func (*groupingExpr) exprNode() {}
func (*literalExpr) exprNode()  {}
func (*tensorExpr) exprNode()   {}
func (*logicalExpr) exprNode()  {}
func (*thisExpr) exprNode()     {}
func (*unaryExpr) exprNode()    {}
func (*variableExpr) exprNode() {}
