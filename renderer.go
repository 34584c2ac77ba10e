package ndview

import "io"

// Backend is the terminal 2D consumer of the projection chain. By the
// time a backend is called every primitive has been reduced to Points;
// a backend must accept any valid 2D input without failing, including
// degenerate zero-length lines.
//
// Implementations live in the backend package and register themselves
// by name; see backend.Register.
type Backend interface {
	// Reset clears all accumulated output and state. Idempotent.
	Reset()

	// Begin marks the start of a frame. Backends that need no frame
	// bracketing implement it as a no-op.
	Begin()

	// End marks the end of a frame.
	End()

	// DrawLine emits one line segment from a to b. A zero-length
	// segment is still emitted, never silently dropped.
	DrawLine(a, b Point)

	// DrawFace emits one filled polygon. The path is implicitly
	// closed from the last vertex back to the first. Convexity is
	// not validated.
	DrawFace(pts []Point)
}

// WriterBackend is implemented by backends that serialize their
// accumulated output (JSON scene, SVG document, PNG image).
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to w. Call it after End.
	WriteTo(w io.Writer) (int64, error)
}

// Styled is implemented by backends that honor stroke and fill
// styling. The pipeline forwards its style through this interface;
// colour values pass through unchanged.
type Styled interface {
	SetStyle(s Style)
}
