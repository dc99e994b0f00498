package internal

import "fmt"

type callable interface {
	value
	arity() int
	call(exec *execute, arguments []value) (value, error)
}

type pulseFunction struct {
	declaration *fnStmt
	closure     *env
	// class that defines this function when it is a method
	class         *pulseClass
	isInitializer bool
}

func (*pulseFunction) kind() valueKind { return kindFunction }

func (f *pulseFunction) arity() int {
	return len(f.declaration.params)
}

// call runs the body in exactly one new environment enclosed by the closure
func (f *pulseFunction) call(exec *execute, arguments []value) (value, error) {
	environment := newEnv(f.closure)
	for i, param := range f.declaration.params {
		environment.define(param.lexeme, arguments[i])
	}

	sig, err := exec.executeBlock(f.declaration.body, environment)
	if err != nil {
		return nil, err
	}
	// init always yields the instance it was bound to
	if f.isInitializer {
		return f.closure.values["this"], nil
	}
	if ret, ok := sig.(*returnSignal); ok {
		return ret.value, nil
	}
	return nil, nil
}

// bind returns a copy of the method whose closure has one more frame
// holding this and, for subclasses, super
func (f *pulseFunction) bind(object *pulseObject) *pulseFunction {
	environment := newEnv(f.closure)
	environment.define("this", object)
	if f.class != nil && f.class.superclass != nil {
		environment.define("super", f.class.superclass)
	}
	return &pulseFunction{
		declaration:   f.declaration,
		closure:       environment,
		class:         f.class,
		isInitializer: f.isInitializer,
	}
}

func (f *pulseFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}

type nativeFn struct {
	name       string
	arityValue int
	callFn     func(exec *execute, arguments []value) (value, error)
}

func (*nativeFn) kind() valueKind { return kindFunction }

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *execute, arguments []value) (value, error) {
	return n.callFn(exec, arguments)
}

func (n *nativeFn) String() string {
	return fmt.Sprintf("<native fn %s>", n.name)
}
