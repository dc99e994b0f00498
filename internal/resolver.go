package internal

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// resolution is the side table computed by the resolver. depths maps
// variable, assign, this and super nodes to the number of environments
// between the use and the binding; nodes that are missing are globals.
// declarations holds the assignments that introduce a new binding.
type resolution struct {
	depths       map[expr]int
	declarations map[*assignExpr]bool
}

func newResolution() *resolution {
	return &resolution{
		depths:       make(map[expr]int),
		declarations: make(map[*assignExpr]bool),
	}
}

type resolver struct {
	table *resolution

	// scopes of the statement being resolved, innermost last. The value
	// tells whether the binding finished initializing.
	scopes []map[string]bool

	// globals survive between calls to resolve. Each name maps to the first
	// statement of the list that committed it, nil for built-ins.
	globals map[string]stmt
	// first statement of the list being resolved
	owner stmt
	// top level names bound so far by the current walk
	defined map[string]bool
	pending map[string]bool

	currentFunction functionType
	currentClass    classType
	loopDepth       int

	errors []*StaticError
}

func newResolver(table *resolution) *resolver {
	return &resolver{
		table:   table,
		globals: make(map[string]stmt),
	}
}

// resolve walks the statements once and returns every static error found.
// Global names are committed only when no error was found, so resolving the
// same statements twice produces the same table.
func (r *resolver) resolve(stmts []stmt) []*StaticError {
	r.scopes = nil
	r.errors = make([]*StaticError, 0)
	r.owner = nil
	if len(stmts) > 0 {
		r.owner = stmts[0]
	}
	r.defined = make(map[string]bool)
	r.pending = make(map[string]bool)
	r.currentFunction = fnNone
	r.currentClass = classNone
	r.loopDepth = 0

	r.resolveStmts(stmts)

	if len(r.errors) == 0 {
		for name := range r.defined {
			if _, ok := r.globals[name]; !ok {
				r.globals[name] = r.owner
			}
		}
	}
	return r.errors
}

func (r *resolver) resolveStmts(stmts []stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s stmt) {
	switch st := s.(type) {
	case *exprStmt:
		r.resolveExpr(st.expression)

	case *blockStmt:
		r.beginScope()
		r.resolveStmts(st.stmts)
		r.endScope()

	case *ifStmt:
		r.resolveExpr(st.condition)
		r.resolveStmt(st.thenBranch)
		for _, elif := range st.elifs {
			r.resolveExpr(elif.condition)
			r.resolveStmt(elif.thenBranch)
		}
		if st.elseBranch != nil {
			r.resolveStmt(st.elseBranch)
		}

	case *whileStmt:
		r.resolveExpr(st.condition)
		r.loopDepth++
		r.resolveStmt(st.body)
		r.loopDepth--

	case *forStmt:
		r.resolveExpr(st.collection)
		r.beginScope()
		r.scopes[len(r.scopes)-1][st.identifier.lexeme] = true
		r.loopDepth++
		r.resolveStmt(st.body)
		r.loopDepth--
		r.endScope()

	case *breakStmt:
		if r.loopDepth == 0 {
			r.error(errBreakOutsideLoop, st.keyword)
		}

	case *continueStmt:
		if r.loopDepth == 0 {
			r.error(errContinueOutsideLoop, st.keyword)
		}

	case *passStmt:

	case *returnStmt:
		if r.currentFunction == fnNone {
			r.error(errReturnOutsideFunction, st.keyword)
		}
		if st.value != nil {
			r.resolveExpr(st.value)
		}

	case *fnStmt:
		r.declareName(st.name)
		r.resolveFunction(st, fnFunction)

	case *classStmt:
		r.resolveClass(st)

	case *tryStmt:
		r.resolveStmt(st.tryBody)
		if st.name != nil {
			r.beginScope()
			r.scopes[len(r.scopes)-1][st.name.lexeme] = true
			r.resolveStmt(st.exceptBody)
			r.endScope()
		} else {
			r.resolveStmt(st.exceptBody)
		}
		if st.finallyBody != nil {
			r.resolveStmt(st.finallyBody)
		}
	}
}

func (r *resolver) resolveFunction(fn *fnStmt, typ functionType) {
	enclosingFunction := r.currentFunction
	enclosingLoop := r.loopDepth
	r.currentFunction = typ
	r.loopDepth = 0

	r.beginScope()
	scope := r.scopes[len(r.scopes)-1]
	for _, param := range fn.params {
		if _, ok := scope[param.lexeme]; ok {
			r.error(errDuplicateParam, param)
		}
		scope[param.lexeme] = true
	}
	r.resolveStmts(fn.body)
	r.endScope()

	r.currentFunction = enclosingFunction
	r.loopDepth = enclosingLoop
}

func (r *resolver) resolveClass(class *classStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declareName(class.name)

	if class.superclass != nil {
		if class.superclass.name.lexeme == class.name.lexeme {
			r.error(errInheritSelf, class.superclass.name)
		}
		r.currentClass = classSubclass
		r.resolveExpr(class.superclass)
	}

	r.beginScope()
	scope := r.scopes[len(r.scopes)-1]
	scope["this"] = true
	if class.superclass != nil {
		scope["super"] = true
	}
	for _, method := range class.methods {
		typ := fnMethod
		if method.name.lexeme == "init" {
			typ = fnInitializer
		}
		r.resolveFunction(method, typ)
	}
	r.endScope()

	r.currentClass = enclosingClass
}

func (r *resolver) resolveExpr(e expr) {
	switch ex := e.(type) {
	case *variableExpr:
		name := ex.name.lexeme
		if len(r.scopes) > 0 {
			if ready, ok := r.scopes[len(r.scopes)-1][name]; ok && !ready {
				r.error(errReadOwnInit, ex.name)
			}
		}
		if !r.resolveLocal(ex, name) && r.pending[name] {
			r.error(errReadOwnInit, ex.name)
		}

	case *assignExpr:
		r.resolveAssign(ex)

	case *binaryExpr:
		r.resolveExpr(ex.left)
		r.resolveExpr(ex.right)

	case *logicalExpr:
		r.resolveExpr(ex.left)
		r.resolveExpr(ex.right)

	case *unaryExpr:
		r.resolveExpr(ex.right)

	case *groupingExpr:
		r.resolveExpr(ex.expression)

	case *callExpr:
		r.resolveExpr(ex.callee)
		for _, arg := range ex.arguments {
			r.resolveExpr(arg)
		}

	case *getExpr:
		r.resolveExpr(ex.object)

	case *setExpr:
		r.resolveExpr(ex.value)
		r.resolveExpr(ex.object)

	case *thisExpr:
		if r.currentClass == classNone {
			r.error(errThisOutsideClass, ex.keyword)
			return
		}
		r.resolveLocal(ex, "this")

	case *superExpr:
		switch r.currentClass {
		case classNone:
			r.error(errSuperOutsideClass, ex.keyword)
			return
		case classClass:
			r.error(errSuperNoSuperclass, ex.keyword)
			return
		}
		r.resolveLocal(ex, "super")

	case *literalExpr, *tensorExpr:
	}
}

// resolveAssign decides whether the assignment updates an existing binding
// or introduces a new one
func (r *resolver) resolveAssign(assign *assignExpr) {
	name := assign.name.lexeme

	// Top level assignments always bind in the global environment
	if len(r.scopes) == 0 {
		r.table.declarations[assign] = true
		if !r.isGlobal(name) {
			r.pending[name] = true
		}
		r.resolveExpr(assign.value)
		delete(r.pending, name)
		r.defined[name] = true
		return
	}

	if depth, ok := r.lookup(name); ok {
		r.resolveExpr(assign.value)
		r.table.depths[assign] = depth
		return
	}

	if r.isGlobal(name) {
		r.resolveExpr(assign.value)
		return
	}

	scope := r.scopes[len(r.scopes)-1]
	scope[name] = false
	r.resolveExpr(assign.value)
	scope[name] = true
	r.table.declarations[assign] = true
}

func (r *resolver) resolveLocal(e expr, name string) bool {
	if depth, ok := r.lookup(name); ok {
		r.table.depths[e] = depth
		return true
	}
	return false
}

func (r *resolver) lookup(name string) (int, bool) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			return len(r.scopes) - 1 - i, true
		}
	}
	return 0, false
}

// isGlobal tells whether name is bound in the global frame by the time the
// current statement runs. A name committed by an earlier pass over the same
// statements is known only once the walk reaches its definition again.
func (r *resolver) isGlobal(name string) bool {
	if r.defined[name] {
		return true
	}
	owner, ok := r.globals[name]
	return ok && (owner == nil || owner != r.owner)
}

func (r *resolver) declareName(name *token) {
	if len(r.scopes) == 0 {
		r.defined[name.lexeme] = true
		return
	}
	r.scopes[len(r.scopes)-1][name.lexeme] = true
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) error(err error, tk *token) {
	r.errors = append(r.errors, newStaticError(err, tk))
}
