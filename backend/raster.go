package backend

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/gogpu/ndview"
)

func init() {
	Register("raster", func() ndview.Backend { return NewRaster(DefaultWidth, DefaultHeight) })
}

// Raster rasterizes primitives into an RGBA image on the CPU using
// golang.org/x/image/vector and serializes it as PNG. Faces are
// filled with the style's fill colour; lines are stroked as thin
// quads of the style's stroke width.
type Raster struct {
	width, height int
	style         ndview.Style
	img           *image.RGBA
}

// NewRaster creates a raster backend with the given pixel dimensions.
func NewRaster(width, height int) *Raster {
	return &Raster{width: width, height: height, style: ndview.DefaultStyle()}
}

// SetStyle sets the stroke and fill used for subsequent primitives.
func (b *Raster) SetStyle(s ndview.Style) { b.style = s }

// Image returns the backing image, allocating it on first use.
func (b *Raster) Image() *image.RGBA {
	if b.img == nil {
		b.img = image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	}
	return b.img
}

// Reset clears the image to fully transparent.
func (b *Raster) Reset() {
	if b.img != nil {
		draw.Draw(b.img, b.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}
}

// Begin is a no-op; the image persists across frames until Reset.
func (b *Raster) Begin() {}

// End is a no-op.
func (b *Raster) End() {}

// DrawLine strokes one segment. A zero-length segment is emitted as a
// stroke-width square so it stays visible rather than vanishing.
func (b *Raster) DrawLine(a, c ndview.Point) {
	w := b.style.StrokeWidth
	if w <= 0 {
		w = 1
	}
	half := w / 2
	d := c.Sub(a)
	if d.Length() == 0 {
		b.fillQuad(
			ndview.Pt(a.X-half, a.Y-half),
			ndview.Pt(a.X+half, a.Y-half),
			ndview.Pt(a.X+half, a.Y+half),
			ndview.Pt(a.X-half, a.Y+half),
			b.style.Stroke,
		)
		return
	}
	n := d.Normalize()
	// Perpendicular offset of half the stroke width.
	perp := ndview.Pt(-n.Y*half, n.X*half)
	b.fillQuad(a.Add(perp), c.Add(perp), c.Sub(perp), a.Sub(perp), b.style.Stroke)
}

// DrawFace fills one polygon with the fill colour.
func (b *Raster) DrawFace(pts []ndview.Point) {
	if len(pts) < 3 {
		if len(pts) == 2 {
			b.DrawLine(pts[0], pts[1])
		}
		return
	}
	b.fillPath(pts, b.style.Fill)
}

func (b *Raster) fillQuad(p0, p1, p2, p3 ndview.Point, c ndview.RGBA) {
	b.fillPath([]ndview.Point{p0, p1, p2, p3}, c)
}

func (b *Raster) fillPath(pts []ndview.Point, c ndview.RGBA) {
	img := b.Image()
	ras := vector.NewRasterizer(b.width, b.height)
	ras.DrawOp = draw.Over
	ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		ras.LineTo(float32(p.X), float32(p.Y))
	}
	ras.ClosePath()
	ras.Draw(img, img.Bounds(), image.NewUniform(c.Color()), image.Point{})
}

// WriteTo encodes the image as PNG.
func (b *Raster) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.Image())
	return cw.n, err
}

// countingWriter tracks bytes written for the WriterBackend contract.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
