package ndview

// Pipeline reduces n-dimensional primitives to 2D and hands them to a
// Backend. It is the explicit, loop-based rendition of a renderer
// chain with one level per dimension: level d applies that level's
// affine transform and projects away one coordinate, level 2 applies
// its transform and emits.
//
// A Pipeline is built once per setup and is read-only afterwards; the
// transforms and camera it references must not be mutated while a
// render pass is running. There is no internal locking and no
// cancellation: a draw call is a plain synchronous call tree.
type Pipeline[T Scalar[T]] struct {
	dim     int
	camera  *Camera[T]
	backend Backend
	// levels[0] is level dim, levels[len-1] is level 2.
	levels []stage[T]
	style  Style
	styled bool
}

// stage is one dimension level of the chain.
type stage[T Scalar[T]] struct {
	transform Affine[T]
	// identity short-circuits Apply on the per-vertex path.
	identity bool
}

// NewPipeline creates a pipeline for the camera's dimension, drawing
// to the given backend. Every level starts with the identity
// transform; use options to override.
func NewPipeline[T Scalar[T]](camera *Camera[T], b Backend, opts ...PipelineOption[T]) *Pipeline[T] {
	dim := camera.Dim()
	p := &Pipeline[T]{
		dim:     dim,
		camera:  camera,
		backend: b,
		levels:  make([]stage[T], dim-1),
	}
	for i := range p.levels {
		p.levels[i] = stage[T]{transform: IdentityAffine[T](dim - i), identity: true}
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.styled {
		if s, ok := b.(Styled); ok {
			s.SetStyle(p.style)
		}
	}
	return p
}

// Dim returns the top dimension of the pipeline.
func (p *Pipeline[T]) Dim() int { return p.dim }

// Backend returns the terminal backend.
func (p *Pipeline[T]) Backend() Backend { return p.backend }

// SetStyle forwards a style to the backend if it supports styling.
func (p *Pipeline[T]) SetStyle(s Style) {
	p.style = s
	p.styled = true
	if sb, ok := p.backend.(Styled); ok {
		sb.SetStyle(s)
	}
}

// stageAt returns the stage for dimension level d.
func (p *Pipeline[T]) stageAt(d int) *stage[T] {
	return &p.levels[p.dim-d]
}

// descend runs one vertex through the whole chain: transform and
// project at each level above 2, then the terminal 2D transform.
func (p *Pipeline[T]) descend(v Vec[T]) Point {
	for d := p.dim; d > 2; d-- {
		st := p.stageAt(d)
		if !st.identity {
			v = st.transform.Apply(v)
		}
		v = p.camera.Project(d, v)
	}
	st := p.stageAt(2)
	if !st.identity {
		v = st.transform.Apply(v)
	}
	return v.Point()
}

// Begin starts a frame on the backend.
func (p *Pipeline[T]) Begin() { p.backend.Begin() }

// End finishes a frame on the backend.
func (p *Pipeline[T]) End() { p.backend.End() }

// Reset clears the backend's accumulated output.
func (p *Pipeline[T]) Reset() { p.backend.Reset() }

// DrawLine projects both endpoints down to 2D and emits one segment.
// A segment whose endpoints project to the same point is still
// emitted.
func (p *Pipeline[T]) DrawLine(a, b Vec[T]) {
	p.checkDim(a)
	p.checkDim(b)
	p.backend.DrawLine(p.descend(a), p.descend(b))
}

// DrawFace projects every vertex down to 2D and emits one filled
// polygon. Two vertices degenerate to a line; fewer than two vertices
// are dropped.
func (p *Pipeline[T]) DrawFace(verts []Vec[T]) {
	if len(verts) < 2 {
		Logger().Debug("ndview: dropping face with too few vertices", "count", len(verts))
		return
	}
	if len(verts) == 2 {
		p.DrawLine(verts[0], verts[1])
		return
	}
	pts := make([]Point, len(verts))
	for i, v := range verts {
		p.checkDim(v)
		pts[i] = p.descend(v)
	}
	p.backend.DrawFace(pts)
}

// DrawMesh draws an indexed set of faces over a shared vertex slice,
// the shape-generator interchange format: faces list vertex indices
// in order. Out-of-range indices panic.
func (p *Pipeline[T]) DrawMesh(verts []Vec[T], faces [][]int) {
	projected := make([]Point, len(verts))
	for i, v := range verts {
		p.checkDim(v)
		projected[i] = p.descend(v)
	}
	for _, face := range faces {
		switch len(face) {
		case 0, 1:
			Logger().Debug("ndview: dropping face with too few vertices", "count", len(face))
		case 2:
			p.backend.DrawLine(projected[face[0]], projected[face[1]])
		default:
			pts := make([]Point, len(face))
			for i, idx := range face {
				pts[i] = projected[idx]
			}
			p.backend.DrawFace(pts)
		}
	}
}

func (p *Pipeline[T]) checkDim(v Vec[T]) {
	if v.Dim() != p.dim {
		panic("ndview: vertex dimension does not match pipeline")
	}
}
