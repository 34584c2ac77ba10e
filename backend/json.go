package backend

import (
	"encoding/json"
	"io"

	"github.com/gogpu/ndview"
)

func init() {
	Register("json", func() ndview.Backend { return NewJSON() })
}

// lineCommand is the serialized form of one line segment.
type lineCommand struct {
	Type string  `json:"type"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	X2   float64 `json:"x2"`
	Y2   float64 `json:"y2"`
}

// faceCommand is the serialized form of one filled polygon. The
// closing edge from the last point back to the first is implicit.
type faceCommand struct {
	Type   string       `json:"type"`
	Points [][2]float64 `json:"points"`
}

// JSON accumulates draw calls and serializes them as a JSON array of
// command objects, one object per primitive:
//
//	[{"type":"line","x1":0,"y1":0,"x2":1,"y2":1},
//	 {"type":"face","points":[[0,0],[1,0],[1,1]]}]
//
// The scene description makes no styling or sizing claims; consumers
// interpret the coordinates however they need to.
type JSON struct {
	cmds []any
}

// NewJSON creates an empty JSON scene backend.
func NewJSON() *JSON {
	return &JSON{}
}

// Reset discards all accumulated commands.
func (b *JSON) Reset() { b.cmds = nil }

// Begin is a no-op; the scene needs no frame bracket.
func (b *JSON) Begin() {}

// End is a no-op.
func (b *JSON) End() {}

// DrawLine records one line command.
func (b *JSON) DrawLine(a, c ndview.Point) {
	b.cmds = append(b.cmds, lineCommand{Type: "line", X1: a.X, Y1: a.Y, X2: c.X, Y2: c.Y})
}

// DrawFace records one face command.
func (b *JSON) DrawFace(pts []ndview.Point) {
	points := make([][2]float64, len(pts))
	for i, p := range pts {
		points[i] = [2]float64{p.X, p.Y}
	}
	b.cmds = append(b.cmds, faceCommand{Type: "face", Points: points})
}

// Len returns the number of accumulated commands.
func (b *JSON) Len() int { return len(b.cmds) }

// WriteTo writes the scene as a compact JSON array. An empty scene
// serializes as [].
func (b *JSON) WriteTo(w io.Writer) (int64, error) {
	cmds := b.cmds
	if cmds == nil {
		cmds = []any{}
	}
	data, err := json.Marshal(cmds)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}
