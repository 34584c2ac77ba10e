package ndview

// Vec is a fixed-length vector of d scalar components. The length is
// set at construction and never changes; arithmetic methods return
// new vectors and leave the receiver untouched.
//
// Mixing vectors of different dimensions is a programming error and
// panics, the runtime analog of the compile-time rejection a
// fixed-size type would give.
type Vec[T Scalar[T]] []T

// NewVec creates a vector from its components.
func NewVec[T Scalar[T]](comps ...T) Vec[T] {
	v := make(Vec[T], len(comps))
	copy(v, comps)
	return v
}

// ZeroVec creates the zero vector of the given dimension.
func ZeroVec[T Scalar[T]](dim int) Vec[T] {
	return make(Vec[T], dim)
}

// VecOf creates a vector from float64 components, converting each
// through the scalar type's FromFloat. Handy for literals in tests
// and demos.
func VecOf[T Scalar[T]](comps ...float64) Vec[T] {
	var zero T
	v := make(Vec[T], len(comps))
	for i, c := range comps {
		v[i] = zero.FromFloat(c)
	}
	return v
}

// Dim returns the number of components.
func (v Vec[T]) Dim() int { return len(v) }

// At returns component i. Out-of-range access panics.
func (v Vec[T]) At(i int) T { return v[i] }

// Clone returns an independent copy of the vector.
func (v Vec[T]) Clone() Vec[T] {
	w := make(Vec[T], len(v))
	copy(w, v)
	return w
}

// checkDim panics unless w has the same dimension as v.
func (v Vec[T]) checkDim(w Vec[T]) {
	if len(v) != len(w) {
		panic("ndview: vector dimension mismatch")
	}
}

// Add returns v + w component-wise.
func (v Vec[T]) Add(w Vec[T]) Vec[T] {
	v.checkDim(w)
	out := make(Vec[T], len(v))
	for i := range v {
		out[i] = v[i].Add(w[i])
	}
	return out
}

// Sub returns v - w component-wise.
func (v Vec[T]) Sub(w Vec[T]) Vec[T] {
	v.checkDim(w)
	out := make(Vec[T], len(v))
	for i := range v {
		out[i] = v[i].Sub(w[i])
	}
	return out
}

// Neg returns the component-wise negation of v.
func (v Vec[T]) Neg() Vec[T] {
	out := make(Vec[T], len(v))
	for i := range v {
		out[i] = v[i].Neg()
	}
	return out
}

// Scale returns the vector scaled by s.
func (v Vec[T]) Scale(s T) Vec[T] {
	out := make(Vec[T], len(v))
	for i := range v {
		out[i] = v[i].Mul(s)
	}
	return out
}

// ScaleDiv returns the vector divided by s.
func (v Vec[T]) ScaleDiv(s T) Vec[T] {
	out := make(Vec[T], len(v))
	for i := range v {
		out[i] = v[i].Div(s)
	}
	return out
}

// Dot returns the dot product of two vectors. Multiplying two
// vectors yields a scalar, never a vector; scaling by a scalar is
// Scale.
func (v Vec[T]) Dot(w Vec[T]) T {
	v.checkDim(w)
	var sum T
	for i := range v {
		sum = sum.Add(v[i].Mul(w[i]))
	}
	return sum
}

// Equal reports exact component-wise equality.
func (v Vec[T]) Equal(w Vec[T]) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i].Cmp(w[i]) != 0 {
			return false
		}
	}
	return true
}

// Point converts a 2D vector to the backend Point type.
// Panics if the vector is not two-dimensional.
func (v Vec[T]) Point() Point {
	if len(v) != 2 {
		panic("ndview: Point conversion requires a 2D vector")
	}
	return Point{X: v[0].Float64(), Y: v[1].Float64()}
}

// Float64s returns the components converted to float64.
func (v Vec[T]) Float64s() []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i].Float64()
	}
	return out
}
