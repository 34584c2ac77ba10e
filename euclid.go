package ndview

// LengthSq returns the squared Euclidean length of v.
func LengthSq[T Scalar[T]](v Vec[T]) T {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func Length[T Scalar[T]](v Vec[T]) T {
	return LengthSq(v).Sqrt()
}

// Normalize returns a unit vector in the same direction as v.
// The zero vector normalizes to itself.
func Normalize[T Scalar[T]](v Vec[T]) Vec[T] {
	var zero T
	l := Length(v)
	if l.Cmp(zero) == 0 {
		return ZeroVec[T](v.Dim())
	}
	return v.ScaleDiv(l)
}

// Cross returns the cross product of two 3D vectors. Panics on any
// other dimension; higher dimensions use Normal.
func Cross[T Scalar[T]](a, b Vec[T]) Vec[T] {
	if a.Dim() != 3 || b.Dim() != 3 {
		panic("ndview: cross product requires 3D vectors")
	}
	return Vec[T]{
		a[1].Mul(b[2]).Sub(a[2].Mul(b[1])),
		a[2].Mul(b[0]).Sub(a[0].Mul(b[2])),
		a[0].Mul(b[1]).Sub(a[1].Mul(b[0])),
	}
}

// Normal computes the vector orthogonal to the hyperplane spanned by
// d-1 vectors in d-dimensional space, generalizing the cross product:
// for each basis axis i the component is the signed determinant of
// the (d-1)×(d-1) minor that excludes column i from the matrix whose
// rows are the input vectors. The sign alternates by the parity of i,
// positive at i=0. For d=3 this reduces exactly to Cross.
//
// Panics unless exactly d-1 vectors of dimension d are supplied.
func Normal[T Scalar[T]](vs ...Vec[T]) Vec[T] {
	if len(vs) == 0 {
		panic("ndview: Normal requires at least one vector")
	}
	d := vs[0].Dim()
	if len(vs) != d-1 {
		panic("ndview: Normal requires d-1 vectors of dimension d")
	}
	rows := make([][]T, d-1)
	for i, v := range vs {
		if v.Dim() != d {
			panic("ndview: Normal requires d-1 vectors of dimension d")
		}
		rows[i] = v
	}
	span := MatrixFromRows(rows...)
	out := make(Vec[T], d)
	for i := 0; i < d; i++ {
		// (d-1)×(d-1) minor of the span rows with column i deleted.
		minor := NewMatrix[T](d-1, d-1)
		for r := 0; r < d-1; r++ {
			c := 0
			for j := 0; j < d; j++ {
				if j == i {
					continue
				}
				minor.Set(r, c, span.At(r, j))
				c++
			}
		}
		comp := minor.Det()
		if i%2 == 1 {
			comp = comp.Neg()
		}
		out[i] = comp
	}
	return out
}
