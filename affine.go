package ndview

import "math"

// Affine is a linear map plus translation in d-dimensional space:
// Apply(v) = Linear·v + Offset. A pipeline references the transforms
// it was built with and never copies or mutates them; callers must
// not mutate a transform while a render pass is running.
type Affine[T Scalar[T]] struct {
	Linear Matrix[T]
	Offset Vec[T]
}

// IdentityAffine returns the identity transform in d dimensions.
func IdentityAffine[T Scalar[T]](d int) Affine[T] {
	return Affine[T]{
		Linear: IdentityMatrix[T](d),
		Offset: ZeroVec[T](d),
	}
}

// Translation returns the transform that adds delta to every vector.
func Translation[T Scalar[T]](delta Vec[T]) Affine[T] {
	return Affine[T]{
		Linear: IdentityMatrix[T](delta.Dim()),
		Offset: delta.Clone(),
	}
}

// UniformScale returns the transform scaling every axis by s in d
// dimensions.
func UniformScale[T Scalar[T]](d int, s T) Affine[T] {
	m := NewMatrix[T](d, d)
	for i := 0; i < d; i++ {
		m.Set(i, i, s)
	}
	return Affine[T]{Linear: m, Offset: ZeroVec[T](d)}
}

// RotationPlane returns the rotation by angle radians in the
// coordinate plane spanned by axes i and j of d-dimensional space.
// This is the n-dimensional generalization of a 2D rotation: all
// other axes are left fixed. Panics if the axes are out of range or
// equal.
func RotationPlane[T Scalar[T]](d, i, j int, angle float64) Affine[T] {
	if i < 0 || i >= d || j < 0 || j >= d || i == j {
		panic("ndview: invalid rotation plane axes")
	}
	var zero T
	cos := zero.FromFloat(math.Cos(angle))
	sin := zero.FromFloat(math.Sin(angle))
	m := IdentityMatrix[T](d)
	m.Set(i, i, cos)
	m.Set(i, j, sin.Neg())
	m.Set(j, i, sin)
	m.Set(j, j, cos)
	return Affine[T]{Linear: m, Offset: ZeroVec[T](d)}
}

// Dim returns the dimension the transform operates in.
func (a Affine[T]) Dim() int { return a.Linear.Rows() }

// Apply transforms v, returning Linear·v + Offset.
func (a Affine[T]) Apply(v Vec[T]) Vec[T] {
	return a.Linear.MulVec(v).Add(a.Offset)
}

// Compose returns the transform equivalent to applying b first and
// then a: Compose(a, b).Apply(v) == a.Apply(b.Apply(v)).
func (a Affine[T]) Compose(b Affine[T]) Affine[T] {
	return Affine[T]{
		Linear: a.Linear.Mul(b.Linear),
		Offset: a.Linear.MulVec(b.Offset).Add(a.Offset),
	}
}

// IsIdentity reports whether the transform leaves every vector
// unchanged.
func (a Affine[T]) IsIdentity() bool {
	if !a.Linear.IsIdentity() {
		return false
	}
	var zero T
	for i := 0; i < a.Offset.Dim(); i++ {
		if a.Offset.At(i).Cmp(zero) != 0 {
			return false
		}
	}
	return true
}
