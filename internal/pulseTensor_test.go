package internal

import (
	"errors"
	"testing"
)

func mustTensor(t *testing.T, text string) *pulseTensor {
	t.Helper()
	tensor, err := parseTensorLiteral(text)
	if err != nil {
		t.Fatalf("cannot parse %s: %v", text, err)
	}
	return tensor
}

func TestParseTensorLiteral(t *testing.T) {
	cases := []struct {
		text  string
		shape string
		data  []float64
	}{
		{"[]", "(0)", []float64{}},
		{"[1, 2, 3]", "(3)", []float64{1, 2, 3}},
		{"[[1, 2], [3, 4]]", "(2, 2)", []float64{1, 2, 3, 4}},
		{"[[[1], [2]], [[3], [4]]]", "(2, 2, 1)", []float64{1, 2, 3, 4}},
		{"[[]]", "(1, 0)", []float64{}},
	}

	for _, c := range cases {
		tensor := mustTensor(t, c.text)
		if formatShape(tensor.shape) != c.shape {
			t.Errorf("%s should have shape %s, got %s", c.text, c.shape, formatShape(tensor.shape))
		}
		if len(tensor.data) != len(c.data) {
			t.Errorf("%s should have %d elements, got %d", c.text, len(c.data), len(tensor.data))
			continue
		}
		for i := range c.data {
			if tensor.data[i] != c.data[i] {
				t.Errorf("%s element %d should be %v, got %v", c.text, i, c.data[i], tensor.data[i])
			}
		}
	}
}

func TestParseTensorLiteralErrors(t *testing.T) {
	for _, text := range []string{
		"[[1, 2], [3]]",
		"[1, [2]]",
		"[[1], 2]",
		`[1, "a"]`,
		"[1, true]",
		"[1,",
	} {
		if _, err := parseTensorLiteral(text); !errors.Is(err, errShape) {
			t.Errorf("%s should fail with a shape error, got %v", text, err)
		}
	}
}

func TestTensorDot(t *testing.T) {
	product, err := mustTensor(t, "[[1, 2], [3, 4]]").dot(mustTensor(t, "[[5, 6], [7, 8]]"))
	if err != nil {
		t.Fatal(err)
	}
	if !equals(product, mustTensor(t, "[[19, 22], [43, 50]]")) {
		t.Errorf("unexpected product %s", printObj(product))
	}

	// (2x3) . (3x1)
	product, err = mustTensor(t, "[[1, 2, 3], [4, 5, 6]]").dot(mustTensor(t, "[[1], [0], [1]]"))
	if err != nil {
		t.Fatal(err)
	}
	if !equals(product, mustTensor(t, "[[4], [10]]")) {
		t.Errorf("unexpected product %s", printObj(product))
	}

	scalar, err := mustTensor(t, "[1, 2, 3]").dot(mustTensor(t, "[4, 5, 6]"))
	if err != nil {
		t.Fatal(err)
	}
	if scalar != pulseNumber(32) {
		t.Errorf("vector dot should be 32, got %s", printObj(scalar))
	}

	if _, err := mustTensor(t, "[[1, 2]]").dot(mustTensor(t, "[[1, 2]]")); !errors.Is(err, errShape) {
		t.Errorf("incompatible matrices should fail with a shape error, got %v", err)
	}
}

func TestTensorElementwise(t *testing.T) {
	add := arithmetic[opAdd]
	sum, err := mustTensor(t, "[[1, 2], [3, 4]]").elementwise(mustTensor(t, "[[1, 1], [1, 1]]"), add)
	if err != nil {
		t.Fatal(err)
	}
	if !sum.equals(mustTensor(t, "[[2, 3], [4, 5]]")) {
		t.Errorf("unexpected sum %s", sum)
	}

	_, err = mustTensor(t, "[[1, 2], [3, 4]]").elementwise(mustTensor(t, "[[1, 2, 3], [4, 5, 6]]"), add)
	if !errors.Is(err, errShapeMismatch) {
		t.Errorf("different shapes should fail with a shape mismatch, got %v", err)
	}

	_, err = mustTensor(t, "[1, 2]").withScalar(0, arithmetic[opDiv], false)
	if !errors.Is(err, errDivisionByZero) {
		t.Errorf("division by zero should fail, got %v", err)
	}

	diff, err := mustTensor(t, "[1, 2]").withScalar(10, arithmetic[opSub], true)
	if err != nil {
		t.Fatal(err)
	}
	if !diff.equals(mustTensor(t, "[9, 8]")) {
		t.Errorf("unexpected difference %s", diff)
	}
}

func TestTensorTransposeAndRows(t *testing.T) {
	m := mustTensor(t, "[[1, 2, 3], [4, 5, 6]]")
	tr, err := m.transpose()
	if err != nil {
		t.Fatal(err)
	}
	if tr.String() != "@[[1, 4], [2, 5], [3, 6]]" {
		t.Errorf("unexpected transpose %s", tr)
	}

	v := mustTensor(t, "[1, 2]")
	if same, _ := v.transpose(); same != v {
		t.Error("transposing a vector should return it unchanged")
	}

	rows := m.rows()
	if len(rows) != 2 || rows[1].(*pulseTensor).String() != "@[4, 5, 6]" {
		t.Errorf("unexpected rows %v", rows)
	}
	if elems := v.rows(); len(elems) != 2 || elems[0] != pulseNumber(1) {
		t.Errorf("vector rows should be numbers, got %v", elems)
	}

	if s := m.shapeTensor().String(); s != "@[2, 3]" {
		t.Errorf("unexpected shape %s", s)
	}
}
