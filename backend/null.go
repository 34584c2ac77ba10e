package backend

import "github.com/gogpu/ndview"

func init() {
	Register("null", func() ndview.Backend { return NewNull() })
}

// Null discards every primitive while counting draw calls. It serves
// dry-run validation and performance testing, and doubles as a
// pipeline probe in tests.
type Null struct {
	lines  int
	faces  int
	begins int
	ends   int
}

// NewNull creates a null backend.
func NewNull() *Null {
	return &Null{}
}

// Reset zeroes all counters.
func (b *Null) Reset() { *b = Null{} }

// Begin counts the frame start.
func (b *Null) Begin() { b.begins++ }

// End counts the frame end.
func (b *Null) End() { b.ends++ }

// DrawLine counts one line.
func (b *Null) DrawLine(a, c ndview.Point) { b.lines++ }

// DrawFace counts one face.
func (b *Null) DrawFace(pts []ndview.Point) { b.faces++ }

// Lines returns the number of line segments received.
func (b *Null) Lines() int { return b.lines }

// Faces returns the number of faces received.
func (b *Null) Faces() int { return b.faces }

// Frames returns the number of completed Begin/End brackets.
func (b *Null) Frames() int {
	if b.ends < b.begins {
		return b.ends
	}
	return b.begins
}
