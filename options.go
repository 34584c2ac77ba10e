package ndview

// PipelineOption configures a Pipeline during creation.
//
// Example:
//
//	cam := ndview.NewCamera[ndview.Float](4, 10)
//	p := ndview.NewPipeline(cam, b,
//	    ndview.WithTransform(ndview.RotationPlane[ndview.Float](4, 0, 3, 0.4)),
//	    ndview.WithStyle(ndview.DefaultStyle()),
//	)
type PipelineOption[T Scalar[T]] func(*Pipeline[T])

// WithTransform sets the affine transform applied at the top
// dimension level, before the first projection. The transform's
// dimension must match the pipeline's.
func WithTransform[T Scalar[T]](a Affine[T]) PipelineOption[T] {
	return func(p *Pipeline[T]) {
		if a.Dim() != p.dim {
			panic("ndview: transform dimension does not match pipeline")
		}
		st := p.stageAt(p.dim)
		st.transform = a
		st.identity = a.IsIdentity()
	}
}

// WithLevelTransform sets the affine transform applied at dimension
// level d (2 ≤ d ≤ dim). Level 2 is the terminal viewport transform.
func WithLevelTransform[T Scalar[T]](d int, a Affine[T]) PipelineOption[T] {
	return func(p *Pipeline[T]) {
		if d < 2 || d > p.dim {
			panic("ndview: transform level out of range")
		}
		if a.Dim() != d {
			panic("ndview: transform dimension does not match level")
		}
		st := p.stageAt(d)
		st.transform = a
		st.identity = a.IsIdentity()
	}
}

// WithStyle sets the stroke/fill style forwarded to backends that
// support styling.
func WithStyle[T Scalar[T]](s Style) PipelineOption[T] {
	return func(p *Pipeline[T]) {
		p.style = s
		p.styled = true
	}
}
