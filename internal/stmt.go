package internal

// stmt is the closed set of statement nodes
type stmt interface {
	stmtNode()
}

type exprStmt struct {
	expression expr
}

type blockStmt struct {
	stmts []stmt
}

type elifBranch struct {
	condition  expr
	thenBranch stmt
}

type ifStmt struct {
	keyword    *token
	condition  expr
	thenBranch stmt
	elifs      []*elifBranch
	elseBranch stmt
}

type whileStmt struct {
	keyword   *token
	condition expr
	body      stmt
}

type forStmt struct {
	keyword    *token
	identifier *token
	collection expr
	body       stmt
}

type breakStmt struct {
	keyword *token
}

type continueStmt struct {
	keyword *token
}

type passStmt struct {
	keyword *token
}

type returnStmt struct {
	keyword *token
	value   expr
}

type fnStmt struct {
	name   *token
	params []*token
	body   []stmt
}

type classStmt struct {
	name       *token
	superclass *variableExpr
	methods    []*fnStmt
}

type tryStmt struct {
	keyword     *token
	tryBody     stmt
	name        *token
	exceptBody  stmt
	finallyBody stmt
}

func (*exprStmt) stmtNode()     {}
func (*blockStmt) stmtNode()    {}
func (*ifStmt) stmtNode()       {}
func (*whileStmt) stmtNode()    {}
func (*forStmt) stmtNode()      {}
func (*breakStmt) stmtNode()    {}
func (*continueStmt) stmtNode() {}
func (*passStmt) stmtNode()     {}
func (*returnStmt) stmtNode()   {}
func (*fnStmt) stmtNode()       {}
func (*classStmt) stmtNode()    {}
func (*tryStmt) stmtNode()      {}
