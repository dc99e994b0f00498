package internal

type pulseClass struct {
	name       string
	superclass *pulseClass
	methods    map[string]*pulseFunction
}

func (*pulseClass) kind() valueKind { return kindClass }

// findMethod looks in the class and then outwards through the
// superclass chain, it returns nil when nothing is found
func (c *pulseClass) findMethod(name string) *pulseFunction {
	for class := c; class != nil; class = class.superclass {
		if method, ok := class.methods[name]; ok {
			return method
		}
	}
	return nil
}

func (c *pulseClass) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

func (c *pulseClass) call(exec *execute, arguments []value) (value, error) {
	object := newObject(c)
	if init := c.findMethod("init"); init != nil {
		if _, err := init.bind(object).call(exec, arguments); err != nil {
			return nil, err
		}
	}
	return object, nil
}

func (c *pulseClass) String() string {
	return c.name
}
