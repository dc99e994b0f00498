package internal

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// nativeNames lists every built-in so the resolver can treat them as
// known globals
var nativeNames = []string{"print", "str", "type", "len", "clock", "dot", "transpose", "shape"}

func defineGlobals(e *env) {
	defineIo(e)
	defineType(e)
	defineTensor(e)
}

func defineNative(e *env, name string, arity int, fn func(exec *execute, arguments []value) (value, error)) {
	e.define(name, &nativeFn{
		name:       name,
		arityValue: arity,
		callFn:     fn,
	})
}

func defineIo(e *env) {
	defineNative(e, "print", 1, func(exec *execute, arguments []value) (value, error) {
		exec.printer.Println(printObj(arguments[0]))
		return nil, nil
	})

	defineNative(e, "clock", 0, func(exec *execute, arguments []value) (value, error) {
		return pulseNumber(float64(time.Now().UnixNano()) / float64(time.Second)), nil
	})
}

func defineType(e *env) {
	defineNative(e, "str", 1, func(exec *execute, arguments []value) (value, error) {
		return pulseString(printObj(arguments[0])), nil
	})

	defineNative(e, "type", 1, func(exec *execute, arguments []value) (value, error) {
		return pulseString(kindOf(arguments[0]).String()), nil
	})

	defineNative(e, "len", 1, func(exec *execute, arguments []value) (value, error) {
		switch v := arguments[0].(type) {
		case pulseString:
			return pulseNumber(utf8.RuneCountInString(string(v))), nil
		case *pulseTensor:
			return pulseNumber(v.shape[0]), nil
		}
		return nil, fmt.Errorf("%w for len: %s", errTypeMismatch, kindOf(arguments[0]))
	})
}

func defineTensor(e *env) {
	defineNative(e, "dot", 2, func(exec *execute, arguments []value) (value, error) {
		left, right, err := twoTensors("dot", arguments)
		if err != nil {
			return nil, err
		}
		return left.dot(right)
	})

	defineNative(e, "transpose", 1, func(exec *execute, arguments []value) (value, error) {
		t, err := oneTensor("transpose", arguments[0])
		if err != nil {
			return nil, err
		}
		return t.transpose()
	})

	defineNative(e, "shape", 1, func(exec *execute, arguments []value) (value, error) {
		t, err := oneTensor("shape", arguments[0])
		if err != nil {
			return nil, err
		}
		return t.shapeTensor(), nil
	})
}

func oneTensor(name string, v value) (*pulseTensor, error) {
	t, ok := v.(*pulseTensor)
	if !ok {
		return nil, fmt.Errorf("%w for %s: %s", errTypeMismatch, name, kindOf(v))
	}
	return t, nil
}

func twoTensors(name string, arguments []value) (*pulseTensor, *pulseTensor, error) {
	left, lok := arguments[0].(*pulseTensor)
	right, rok := arguments[1].(*pulseTensor)
	if !lok || !rok {
		return nil, nil, fmt.Errorf(
			"%w for %s: %s and %s",
			errTypeMismatch,
			name,
			kindOf(arguments[0]),
			kindOf(arguments[1]),
		)
	}
	return left, right, nil
}
