// Package ndview renders geometric primitives defined in any number
// of spatial dimensions down to a 2D drawing surface.
//
// # Overview
//
// Shapes are described by vertices in n-dimensional Euclidean space
// (n ≥ 2). A Pipeline applies an affine transform per dimension level
// and a perspective projection that strips one dimension at a time
// until 2D remains, then emits lines and filled polygons to a
// pluggable Backend (JSON scene, SVG, PNG raster, or a null backend
// for dry runs).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ndview"
//	    "github.com/gogpu/ndview/backend"
//	)
//
//	b := backend.NewJSON()
//	cam := ndview.NewCamera[ndview.Float](3, 10)
//	p := ndview.NewPipeline(cam, b)
//
//	p.Begin()
//	p.DrawFace([]ndview.Vec[ndview.Float]{
//	    ndview.VecOf[ndview.Float](0, 0, 0),
//	    ndview.VecOf[ndview.Float](1, 0, 0),
//	    ndview.VecOf[ndview.Float](1, 1, 0),
//	    ndview.VecOf[ndview.Float](0, 1, 0),
//	})
//	p.End()
//	b.WriteTo(os.Stdout)
//
// # Coordinates
//
// Scalars are generic: Float (float64) for speed, Rat (math/big) for
// exact rational arithmetic. The projection convention is pinned in
// the Camera documentation: the last coordinate of each level is the
// depth axis and the scale factor is eye/(eye-depth).
//
// # Failure model
//
// Dimension mismatches are programming errors and panic. Numerical
// degeneracies (eye distance equal to a vertex depth, singular
// transforms) are NOT trapped on the per-vertex path: they propagate
// as NaN/Inf coordinates to the backend, and the documented
// mitigation is validating camera and transform parameters up front
// (see the config package). The one explicit error is ErrSingular
// from matrix inversion.
//
// # Architecture
//
//   - Public API: Scalar, Vec, Matrix, Affine, Camera, Pipeline, Point
//   - Backends: backend (registry, JSON, SVG, PNG raster, null)
//   - Configuration: config (YAML view descriptions with validation)
package ndview
