package internal

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// pulseTensor is an immutable N-dimensional array of numbers stored
// in row-major order. len(data) is always the product of shape.
type pulseTensor struct {
	shape []int
	data  []float64
}

func (*pulseTensor) kind() valueKind { return kindTensor }

func newTensor(shape []int) *pulseTensor {
	return &pulseTensor{
		shape: shape,
		data:  make([]float64, product(shape)),
	}
}

// parseTensorLiteral builds a tensor from the bracketed text of an @[...]
// literal. Only numbers and nested brackets are accepted.
func parseTensorLiteral(text string) (*pulseTensor, error) {
	var decoded interface{}
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, fmt.Errorf("%w: malformed literal @%s", errShape, text)
	}
	return tensorFromNested(decoded)
}

func tensorFromNested(root interface{}) (*pulseTensor, error) {
	shape := make([]int, 0)
	for node := root; ; {
		list, ok := node.([]interface{})
		if !ok {
			break
		}
		shape = append(shape, len(list))
		if len(list) == 0 {
			break
		}
		node = list[0]
	}
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: literal must be a list", errShape)
	}

	t := &pulseTensor{
		shape: shape,
		data:  make([]float64, 0, product(shape)),
	}
	if err := t.fill(root, 0); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *pulseTensor) fill(node interface{}, depth int) error {
	if depth == len(t.shape) {
		n, ok := node.(float64)
		if !ok {
			return fmt.Errorf("%w: elements must be numbers", errShape)
		}
		t.data = append(t.data, n)
		return nil
	}
	list, ok := node.([]interface{})
	if !ok || len(list) != t.shape[depth] {
		return fmt.Errorf("%w: literal is not rectangular", errShape)
	}
	for _, child := range list {
		if err := t.fill(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (t *pulseTensor) rank() int {
	return len(t.shape)
}

func (t *pulseTensor) sameShape(other *pulseTensor) bool {
	if len(t.shape) != len(other.shape) {
		return false
	}
	for i := range t.shape {
		if t.shape[i] != other.shape[i] {
			return false
		}
	}
	return true
}

func (t *pulseTensor) equals(other *pulseTensor) bool {
	if !t.sameShape(other) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

type elementOp func(x, y float64) (float64, error)

// elementwise applies op to every pair of elements of two tensors of
// identical shape, there is no broadcasting
func (t *pulseTensor) elementwise(other *pulseTensor, op elementOp) (*pulseTensor, error) {
	if !t.sameShape(other) {
		return nil, fmt.Errorf("%w: %s and %s", errShapeMismatch, formatShape(t.shape), formatShape(other.shape))
	}
	out := newTensor(t.shape)
	for i := range t.data {
		res, err := op(t.data[i], other.data[i])
		if err != nil {
			return nil, err
		}
		out.data[i] = res
	}
	return out, nil
}

// withScalar applies op between every element and s. When scalarLeft is
// set the scalar is the left operand.
func (t *pulseTensor) withScalar(s float64, op elementOp, scalarLeft bool) (*pulseTensor, error) {
	out := newTensor(t.shape)
	for i, x := range t.data {
		var res float64
		var err error
		if scalarLeft {
			res, err = op(s, x)
		} else {
			res, err = op(x, s)
		}
		if err != nil {
			return nil, err
		}
		out.data[i] = res
	}
	return out, nil
}

func (t *pulseTensor) dot(other *pulseTensor) (value, error) {
	switch {
	case t.rank() == 1 && other.rank() == 1 && t.shape[0] == other.shape[0]:
		sum := 0.0
		for i := range t.data {
			sum += t.data[i] * other.data[i]
		}
		return pulseNumber(sum), nil

	case t.rank() == 2 && other.rank() == 2 && t.shape[1] == other.shape[0]:
		m, k, n := t.shape[0], t.shape[1], other.shape[1]
		out := newTensor([]int{m, n})
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				sum := 0.0
				for x := 0; x < k; x++ {
					sum += t.data[i*k+x] * other.data[x*n+j]
				}
				out.data[i*n+j] = sum
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf(
		"%w: cannot compute dot of %s and %s",
		errShape,
		formatShape(t.shape),
		formatShape(other.shape),
	)
}

// transpose reverses the axes of a matrix, vectors are returned unchanged
func (t *pulseTensor) transpose() (*pulseTensor, error) {
	switch t.rank() {
	case 1:
		return t, nil
	case 2:
		m, n := t.shape[0], t.shape[1]
		out := newTensor([]int{n, m})
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				out.data[j*m+i] = t.data[i*n+j]
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: cannot transpose a tensor of shape %s", errShape, formatShape(t.shape))
}

func (t *pulseTensor) shapeTensor() *pulseTensor {
	out := newTensor([]int{len(t.shape)})
	for i, dim := range t.shape {
		out.data[i] = float64(dim)
	}
	return out
}

// rows splits the tensor along its first axis. Vectors yield numbers,
// higher ranks yield tensors with one dimension less.
func (t *pulseTensor) rows() []value {
	out := make([]value, t.shape[0])
	if t.rank() == 1 {
		for i, x := range t.data {
			out[i] = pulseNumber(x)
		}
		return out
	}
	inner := t.shape[1:]
	stride := product(inner)
	for i := range out {
		out[i] = &pulseTensor{
			shape: inner,
			data:  t.data[i*stride : (i+1)*stride : (i+1)*stride],
		}
	}
	return out
}

func (t *pulseTensor) String() string {
	var b strings.Builder
	b.WriteString("@")
	t.write(&b, 0, 0)
	return b.String()
}

func (t *pulseTensor) write(b *strings.Builder, depth, offset int) {
	b.WriteString("[")
	if depth == len(t.shape)-1 {
		for i := 0; i < t.shape[depth]; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(pulseNumber(t.data[offset+i]).String())
		}
	} else {
		stride := product(t.shape[depth+1:])
		for i := 0; i < t.shape[depth]; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			t.write(b, depth+1, offset+i*stride)
		}
	}
	b.WriteString("]")
}

func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}

func formatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
