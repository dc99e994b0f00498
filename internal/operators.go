package internal

import (
	"fmt"
	"math"
)

type operator string

const (
	opAdd operator = "+"
	opSub operator = "-"
	opDiv operator = "/"
	opMul operator = "*"
	opMod operator = "%"
	opNeg operator = "-"
	opEq  operator = "=="
	opNeq operator = "!="
	opLt  operator = "<"
	opLte operator = "<="
	opGt  operator = ">"
	opGte operator = ">="
)

var binaryOperators = map[tokenType]operator{
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkSlash:        opDiv,
	tkStar:         opMul,
	tkMod:          opMod,
	tkEqualEqual:   opEq,
	tkBangEqual:    opNeq,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
}

// arithmetic holds the number kernels shared by scalar and tensor operands
var arithmetic = map[operator]elementOp{
	opAdd: func(x, y float64) (float64, error) { return x + y, nil },
	opSub: func(x, y float64) (float64, error) { return x - y, nil },
	opMul: func(x, y float64) (float64, error) { return x * y, nil },
	opDiv: func(x, y float64) (float64, error) {
		if y == 0 {
			return 0, errDivisionByZero
		}
		return x / y, nil
	},
	opMod: func(x, y float64) (float64, error) {
		if y == 0 {
			return 0, errDivisionByZero
		}
		// floored, the result takes the sign of the divisor
		return x - y*math.Floor(x/y), nil
	},
}

func binaryOp(tk *token, left, right value) (value, error) {
	op, ok := binaryOperators[tk.token]
	if !ok {
		return nil, runtimeErr(fmt.Errorf("unknown operator %s", tk.lexeme), tk)
	}

	switch op {
	case opEq:
		return pulseBool(equals(left, right)), nil
	case opNeq:
		return pulseBool(!equals(left, right)), nil
	case opLt, opLte, opGt, opGte:
		return compare(tk, op, left, right)
	}

	val, err := applyArithmetic(op, left, right)
	if err != nil {
		return nil, runtimeErr(err, tk)
	}
	return val, nil
}

func applyArithmetic(op operator, left, right value) (value, error) {
	kernel := arithmetic[op]

	switch l := left.(type) {
	case pulseNumber:
		switch r := right.(type) {
		case pulseNumber:
			res, err := kernel(float64(l), float64(r))
			return pulseNumber(res), err
		case *pulseTensor:
			if op != opMod {
				return r.withScalar(float64(l), kernel, true)
			}
		}

	case pulseString:
		if r, ok := right.(pulseString); ok && op == opAdd {
			return l + r, nil
		}

	case *pulseTensor:
		if op == opMod {
			break
		}
		switch r := right.(type) {
		case *pulseTensor:
			return l.elementwise(r, kernel)
		case pulseNumber:
			return l.withScalar(float64(r), kernel, false)
		}
	}
	return nil, typeMismatch(op, left, right)
}

func compare(tk *token, op operator, left, right value) (value, error) {
	l, lok := left.(pulseNumber)
	r, rok := right.(pulseNumber)
	if !lok || !rok {
		return nil, runtimeErr(typeMismatch(op, left, right), tk)
	}
	switch op {
	case opLt:
		return pulseBool(l < r), nil
	case opLte:
		return pulseBool(l <= r), nil
	case opGt:
		return pulseBool(l > r), nil
	}
	return pulseBool(l >= r), nil
}

func unaryOp(tk *token, right value) (value, error) {
	switch tk.token {
	case tkNot:
		return pulseBool(!truthy(right)), nil
	case tkMinus:
		if n, ok := right.(pulseNumber); ok {
			return -n, nil
		}
		return nil, runtimeErr(
			fmt.Errorf("%w for unary %s: %s", errTypeMismatch, opNeg, kindOf(right)),
			tk,
		)
	}
	return nil, runtimeErr(fmt.Errorf("unknown operator %s", tk.lexeme), tk)
}

func typeMismatch(op operator, left, right value) error {
	return fmt.Errorf("%w for %s: %s and %s", errTypeMismatch, op, kindOf(left), kindOf(right))
}
