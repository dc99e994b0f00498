package internal

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// signal reports how a statement finished when it did not finish normally
type signal interface {
	signalNode()
}

type breakSignal struct{}

type continueSignal struct{}

type returnSignal struct {
	value value
}

func (*breakSignal) signalNode()    {}
func (*continueSignal) signalNode() {}
func (*returnSignal) signalNode()   {}

var (
	breakSig    = &breakSignal{}
	continueSig = &continueSignal{}
)

type execute struct {
	globals *env
	env     *env
	table   *resolution

	depth    int
	maxDepth int

	printer IPrinter
	log     *logrus.Entry
}

func newExecute(table *resolution, printer IPrinter, maxDepth int, log *logrus.Entry) *execute {
	globals := newEnv(nil)
	exec := &execute{
		globals:  globals,
		env:      globals,
		table:    table,
		maxDepth: maxDepth,
		printer:  printer,
		log:      log,
	}
	defineGlobals(globals)
	return exec
}

// interpret runs stmts against the global environment and stops at the
// first runtime error
func (e *execute) interpret(stmts []stmt) error {
	e.env = e.globals
	e.depth = 0
	for _, s := range stmts {
		if _, err := e.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (e *execute) execute(s stmt) (signal, error) {
	switch st := s.(type) {
	case *exprStmt:
		_, err := e.evaluate(st.expression)
		return nil, err

	case *blockStmt:
		return e.executeBlock(st.stmts, newEnv(e.env))

	case *ifStmt:
		return e.executeIf(st)

	case *whileStmt:
		return e.executeWhile(st)

	case *forStmt:
		return e.executeFor(st)

	case *breakStmt:
		return breakSig, nil

	case *continueStmt:
		return continueSig, nil

	case *passStmt:
		return nil, nil

	case *returnStmt:
		var val value
		if st.value != nil {
			var err error
			if val, err = e.evaluate(st.value); err != nil {
				return nil, err
			}
		}
		return &returnSignal{value: val}, nil

	case *fnStmt:
		e.env.define(st.name.lexeme, &pulseFunction{
			declaration: st,
			closure:     e.env,
		})
		return nil, nil

	case *classStmt:
		return nil, e.executeClass(st)

	case *tryStmt:
		return e.executeTry(st)
	}
	return nil, fmt.Errorf("unknown statement %T", s)
}

// executeBlock runs stmts with env as the current environment and restores
// the previous one on every path
func (e *execute) executeBlock(stmts []stmt, env *env) (signal, error) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env

	for _, s := range stmts {
		sig, err := e.execute(s)
		if err != nil || sig != nil {
			return sig, err
		}
	}
	return nil, nil
}

func (e *execute) executeIf(st *ifStmt) (signal, error) {
	cond, err := e.evaluate(st.condition)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return e.execute(st.thenBranch)
	}
	for _, elif := range st.elifs {
		cond, err := e.evaluate(elif.condition)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return e.execute(elif.thenBranch)
		}
	}
	if st.elseBranch != nil {
		return e.execute(st.elseBranch)
	}
	return nil, nil
}

func (e *execute) executeWhile(st *whileStmt) (signal, error) {
	for {
		cond, err := e.evaluate(st.condition)
		if err != nil {
			return nil, err
		}
		if !truthy(cond) {
			return nil, nil
		}
		sig, err := e.execute(st.body)
		if err != nil {
			return nil, err
		}
		switch sig.(type) {
		case *breakSignal:
			return nil, nil
		case *returnSignal:
			return sig, nil
		}
	}
}

func (e *execute) executeFor(st *forStmt) (signal, error) {
	collection, err := e.evaluate(st.collection)
	if err != nil {
		return nil, err
	}
	tensor, ok := collection.(*pulseTensor)
	if !ok {
		return nil, runtimeErr(fmt.Errorf("%w: %s", errNotIterable, kindOf(collection)), st.keyword)
	}

	for _, item := range tensor.rows() {
		iteration := newEnv(e.env)
		iteration.define(st.identifier.lexeme, item)
		sig, err := e.executeBlock([]stmt{st.body}, iteration)
		if err != nil {
			return nil, err
		}
		switch sig.(type) {
		case *breakSignal:
			return nil, nil
		case *returnSignal:
			return sig, nil
		}
	}
	return nil, nil
}

func (e *execute) executeClass(st *classStmt) error {
	var superclass *pulseClass
	if st.superclass != nil {
		val, err := e.evaluate(st.superclass)
		if err != nil {
			return err
		}
		class, ok := val.(*pulseClass)
		if !ok {
			return runtimeErr(
				fmt.Errorf("%w: superclass must be a class, got %s", errTypeMismatch, kindOf(val)),
				st.superclass.name,
			)
		}
		superclass = class
	}

	class := &pulseClass{
		name:       st.name.lexeme,
		superclass: superclass,
		methods:    make(map[string]*pulseFunction, len(st.methods)),
	}
	for _, method := range st.methods {
		class.methods[method.name.lexeme] = &pulseFunction{
			declaration:   method,
			closure:       e.env,
			class:         class,
			isInitializer: method.name.lexeme == "init",
		}
	}
	e.env.define(st.name.lexeme, class)
	return nil
}

// executeTry catches runtime errors of the try body, signals pass through.
// The finally body runs once and its outcome wins over the others.
func (e *execute) executeTry(st *tryStmt) (signal, error) {
	sig, err := e.execute(st.tryBody)

	var runErr *RuntimeError
	if err != nil && errors.As(err, &runErr) {
		e.log.WithField("line", runErr.Line()).Debugf("caught runtime error: %s", runErr.Error())
		if st.name != nil {
			handler := newEnv(e.env)
			handler.define(st.name.lexeme, pulseString(runErr.Error()))
			sig, err = e.executeBlock([]stmt{st.exceptBody}, handler)
		} else {
			sig, err = e.execute(st.exceptBody)
		}
	}

	if st.finallyBody != nil {
		finallySig, finallyErr := e.execute(st.finallyBody)
		if finallyErr != nil {
			return nil, finallyErr
		}
		if finallySig != nil {
			return finallySig, nil
		}
	}
	return sig, err
}

func (e *execute) evaluate(ex expr) (value, error) {
	switch x := ex.(type) {
	case *literalExpr:
		return x.value, nil

	case *tensorExpr:
		text, ok := x.literal.literal.(string)
		if !ok {
			return nil, fmt.Errorf("tensor literal without text: %T", x.literal.literal)
		}
		tensor, err := parseTensorLiteral(text)
		if err != nil {
			return nil, runtimeErr(err, x.literal)
		}
		return tensor, nil

	case *groupingExpr:
		return e.evaluate(x.expression)

	case *variableExpr:
		return e.lookUpVariable(x.name, x)

	case *thisExpr:
		return e.lookUpVariable(x.keyword, x)

	case *assignExpr:
		return e.evaluateAssign(x)

	case *binaryExpr:
		left, err := e.evaluate(x.left)
		if err != nil {
			return nil, err
		}
		right, err := e.evaluate(x.right)
		if err != nil {
			return nil, err
		}
		return binaryOp(x.operator, left, right)

	case *logicalExpr:
		left, err := e.evaluate(x.left)
		if err != nil {
			return nil, err
		}
		if x.operator.token == tkOr {
			if truthy(left) {
				return left, nil
			}
		} else if !truthy(left) {
			return left, nil
		}
		return e.evaluate(x.right)

	case *unaryExpr:
		right, err := e.evaluate(x.right)
		if err != nil {
			return nil, err
		}
		return unaryOp(x.operator, right)

	case *callExpr:
		return e.evaluateCall(x)

	case *getExpr:
		object, err := e.evaluate(x.object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*pulseObject)
		if !ok {
			return nil, attributeErr(x.name, kindOf(object).String())
		}
		return instance.get(x.name)

	case *setExpr:
		object, err := e.evaluate(x.object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*pulseObject)
		if !ok {
			return nil, attributeErr(x.name, kindOf(object).String())
		}
		val, err := e.evaluate(x.value)
		if err != nil {
			return nil, err
		}
		instance.set(x.name, val)
		return val, nil

	case *superExpr:
		return e.evaluateSuper(x)
	}
	return nil, fmt.Errorf("unknown expression %T", ex)
}

func (e *execute) lookUpVariable(name *token, ex expr) (value, error) {
	if distance, ok := e.table.depths[ex]; ok {
		return e.env.getAt(distance, name)
	}
	return e.globals.getGlobal(name)
}

func (e *execute) evaluateAssign(x *assignExpr) (value, error) {
	val, err := e.evaluate(x.value)
	if err != nil {
		return nil, err
	}
	if distance, ok := e.table.depths[x]; ok {
		err = e.env.assignAt(distance, x.name, val)
	} else if e.table.declarations[x] {
		e.env.define(x.name.lexeme, val)
	} else {
		err = e.globals.assignGlobal(x.name, val)
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (e *execute) evaluateCall(x *callExpr) (value, error) {
	callee, err := e.evaluate(x.callee)
	if err != nil {
		return nil, err
	}
	arguments := make([]value, len(x.arguments))
	for i, arg := range x.arguments {
		if arguments[i], err = e.evaluate(arg); err != nil {
			return nil, err
		}
	}

	fn, ok := callee.(callable)
	if !ok {
		return nil, runtimeErr(fmt.Errorf("%w, got %s", errNotCallable, kindOf(callee)), x.paren)
	}
	if len(arguments) != fn.arity() {
		return nil, runtimeErr(&arityError{expected: fn.arity(), got: len(arguments)}, x.paren)
	}

	if e.depth >= e.maxDepth {
		e.log.WithField("depth", e.depth).Debug("call depth limit reached")
		return nil, runtimeErr(fmt.Errorf("%w: more than %d nested calls", errStackOverflow, e.maxDepth), x.paren)
	}
	e.depth++
	result, err := fn.call(e, arguments)
	e.depth--
	if err != nil {
		return nil, runtimeErr(err, x.paren)
	}
	return result, nil
}

// evaluateSuper looks the method up starting at the superclass of the class
// that defines the running method and binds it to the current instance
func (e *execute) evaluateSuper(x *superExpr) (value, error) {
	distance := e.table.depths[x]
	val, err := e.env.getAt(distance, x.keyword)
	if err != nil {
		return nil, err
	}
	superclass, ok := val.(*pulseClass)
	if !ok {
		return nil, runtimeErr(fmt.Errorf("%w: super is not a class", errTypeMismatch), x.keyword)
	}

	this := &token{token: tkThis, lexeme: "this", line: x.keyword.line}
	val, err = e.env.getAt(distance, this)
	if err != nil {
		return nil, err
	}
	object, ok := val.(*pulseObject)
	if !ok {
		return nil, attributeErr(x.method, kindOf(val).String())
	}

	method := superclass.findMethod(x.method.lexeme)
	if method == nil {
		return nil, attributeErr(x.method, superclass.name)
	}
	return method.bind(object), nil
}

func attributeErr(name *token, owner string) error {
	return runtimeErr(fmt.Errorf("%w '%s' on %s", errAttribute, name.lexeme, owner), name)
}
