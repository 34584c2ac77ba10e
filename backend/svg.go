package backend

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/gogpu/ndview"
)

// Default canvas size used by registry-constructed backends.
const (
	DefaultWidth  = 512
	DefaultHeight = 512
)

func init() {
	Register("svg", func() ndview.Backend { return NewSVG(DefaultWidth, DefaultHeight) })
}

// SVG emits primitives as an SVG document: one <line> element per
// segment and one <polygon> per face (polygons close implicitly).
// Output accumulates in an internal buffer until WriteTo.
type SVG struct {
	width, height float64
	style         ndview.Style

	buf    bytes.Buffer
	canvas *svg.SVG
	open   bool
}

// NewSVG creates an SVG backend with the given canvas size.
func NewSVG(width, height float64) *SVG {
	return &SVG{width: width, height: height, style: ndview.DefaultStyle()}
}

// SetStyle sets the stroke and fill used for subsequent primitives.
func (b *SVG) SetStyle(s ndview.Style) { b.style = s }

// Reset discards the accumulated document.
func (b *SVG) Reset() {
	b.buf.Reset()
	b.canvas = nil
	b.open = false
}

// Begin starts a fresh SVG document, discarding any previous one.
func (b *SVG) Begin() {
	b.buf.Reset()
	b.canvas = svg.New(&b.buf)
	b.canvas.Start(b.width, b.height)
	b.open = true
}

// End closes the SVG document.
func (b *SVG) End() {
	if b.open {
		b.canvas.End()
		b.open = false
	}
}

// ensure lets draw calls arrive without an explicit Begin.
func (b *SVG) ensure() {
	if b.canvas == nil || !b.open {
		b.Begin()
	}
}

// DrawLine emits one <line> element. Zero-length segments are emitted
// like any other.
func (b *SVG) DrawLine(a, c ndview.Point) {
	b.ensure()
	b.canvas.Line(a.X, a.Y, c.X, c.Y, b.lineStyle())
}

// DrawFace emits one <polygon> element.
func (b *SVG) DrawFace(pts []ndview.Point) {
	b.ensure()
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	b.canvas.Polygon(xs, ys, b.faceStyle())
}

func (b *SVG) lineStyle() string {
	return fmt.Sprintf(`style="stroke:%s;stroke-width:%g;fill:none"`,
		b.style.Stroke.Hex(), b.style.StrokeWidth)
}

func (b *SVG) faceStyle() string {
	return fmt.Sprintf(`style="fill:%s;stroke:%s;stroke-width:%g"`,
		b.style.Fill.Hex(), b.style.Stroke.Hex(), b.style.StrokeWidth)
}

// WriteTo writes the accumulated SVG document. Call it after End; an
// unclosed document is written as-is.
func (b *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}
