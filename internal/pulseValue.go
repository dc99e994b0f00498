package internal

import (
	"fmt"
	"strconv"
)

type valueKind int

const (
	kindNil valueKind = iota
	kindBool
	kindNumber
	kindString
	kindTensor
	kindFunction
	kindClass
	kindInstance
)

var kindNames = map[valueKind]string{
	kindNil:      "None",
	kindBool:     "bool",
	kindNumber:   "number",
	kindString:   "string",
	kindTensor:   "tensor",
	kindFunction: "function",
	kindClass:    "class",
	kindInstance: "instance",
}

func (k valueKind) String() string {
	return kindNames[k]
}

// value is any runtime value. The set of implementations is closed:
// pulseBool, pulseNumber, pulseString, *pulseTensor, *pulseFunction,
// *nativeFn, *pulseClass and *pulseObject. None is the nil value.
type value interface {
	kind() valueKind
}

type pulseBool bool

type pulseNumber float64

type pulseString string

func (pulseBool) kind() valueKind   { return kindBool }
func (pulseNumber) kind() valueKind { return kindNumber }
func (pulseString) kind() valueKind { return kindString }

func (b pulseBool) String() string {
	if b {
		return "True"
	}
	return "False"
}

func (n pulseNumber) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s pulseString) String() string {
	return string(s)
}

func kindOf(v value) valueKind {
	if v == nil {
		return kindNil
	}
	return v.kind()
}

// truthy is false only for None and False
func truthy(v value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case pulseBool:
		return bool(val)
	default:
		return true
	}
}

func equals(left, right value) bool {
	switch l := left.(type) {
	case nil:
		return right == nil
	case pulseBool:
		r, ok := right.(pulseBool)
		return ok && l == r
	case pulseNumber:
		r, ok := right.(pulseNumber)
		return ok && l == r
	case pulseString:
		r, ok := right.(pulseString)
		return ok && l == r
	case *pulseTensor:
		r, ok := right.(*pulseTensor)
		return ok && l.equals(r)
	case *pulseFunction, *nativeFn, *pulseClass, *pulseObject:
		return left == right
	}
	return false
}

// printObj returns the text form used by print and str
func printObj(v value) string {
	if v == nil {
		return "None"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
