package internal

import "fmt"

type pulseObject struct {
	class  *pulseClass
	fields map[string]value
}

func newObject(class *pulseClass) *pulseObject {
	return &pulseObject{
		class:  class,
		fields: make(map[string]value),
	}
}

func (*pulseObject) kind() valueKind { return kindInstance }

// get reads a field or, failing that, binds a method of the class
func (o *pulseObject) get(name *token) (value, error) {
	if val, ok := o.fields[name.lexeme]; ok {
		return val, nil
	}
	if method := o.class.findMethod(name.lexeme); method != nil {
		return method.bind(o), nil
	}
	return nil, runtimeErr(
		fmt.Errorf("%w '%s' on %s instance", errAttribute, name.lexeme, o.class.name),
		name,
	)
}

func (o *pulseObject) set(name *token, val value) {
	o.fields[name.lexeme] = val
}

func (o *pulseObject) String() string {
	return fmt.Sprintf("<%s instance>", o.class.name)
}
