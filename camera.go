package ndview

// Camera holds the eye distance for every projection level of a
// pipeline. Levels run from the top dimension down to 3; level 2 is
// terminal and does not project. A single Camera therefore carries
// the whole chain of per-level configurations.
//
// Projection convention, applied identically at every level: the LAST
// coordinate of a level-d vector is the depth component. The scale
// factor is
//
//	s = eye / (eye - depth)
//
// and the projected (d-1)-dimensional vector is the remaining
// coordinates each multiplied by s. As eye grows without bound s
// approaches 1 and the projection degenerates to dropping the last
// coordinate.
//
// eye == depth makes s blow up. The pipeline does not guard against
// it: the per-vertex path stays branch-free and the garbage
// propagates to the backend, as documented in the package overview.
// Choose an eye distance outside the object's depth extent
// (config.View.Validate covers the static part of that check).
type Camera[T Scalar[T]] struct {
	dim int
	eye []T // eye[0] is level dim, eye[len-1] is level 3
}

// NewCamera creates a camera for a top dimension of dim using the
// same eye distance at every level. Panics if dim < 2.
func NewCamera[T Scalar[T]](dim int, eye T) *Camera[T] {
	if dim < 2 {
		panic("ndview: camera dimension must be at least 2")
	}
	levels := dim - 2
	c := &Camera[T]{dim: dim, eye: make([]T, levels)}
	for i := range c.eye {
		c.eye[i] = eye
	}
	return c
}

// Dim returns the top dimension the camera was built for.
func (c *Camera[T]) Dim() int { return c.dim }

// EyeAt returns the eye distance used when projecting from level
// (dimension) d down to d-1. Valid levels are 3..Dim.
func (c *Camera[T]) EyeAt(d int) T {
	return c.eye[c.dim-d]
}

// SetEyeAt overrides the eye distance for a single level.
func (c *Camera[T]) SetEyeAt(d int, eye T) {
	c.eye[c.dim-d] = eye
}

// Project removes one dimension from a level-d vector: the last
// coordinate is consumed as depth and the rest are scaled by
// eye/(eye-depth).
func (c *Camera[T]) Project(d int, v Vec[T]) Vec[T] {
	if len(v) != d {
		panic("ndview: projection dimension mismatch")
	}
	eye := c.EyeAt(d)
	depth := v[d-1]
	s := eye.Div(eye.Sub(depth))
	out := make(Vec[T], d-1)
	for i := range out {
		out[i] = v[i].Mul(s)
	}
	return out
}
