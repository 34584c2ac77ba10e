package backend

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/gogpu/ndview"
)

func TestRaster_FaceFill(t *testing.T) {
	b := NewRaster(16, 16)
	b.SetStyle(ndview.Style{Stroke: ndview.Black, Fill: ndview.Red, StrokeWidth: 1})
	b.DrawFace([]ndview.Point{{X: 2, Y: 2}, {X: 14, Y: 2}, {X: 14, Y: 14}, {X: 2, Y: 14}})

	c := b.Image().RGBAAt(8, 8)
	if c.R < 200 || c.A < 200 {
		t.Errorf("interior pixel = %v, want red fill", c)
	}
	if out := b.Image().RGBAAt(0, 0); out.A != 0 {
		t.Errorf("exterior pixel = %v, want transparent", out)
	}
}

func TestRaster_LineStroke(t *testing.T) {
	b := NewRaster(16, 16)
	b.SetStyle(ndview.Style{Stroke: ndview.Blue, StrokeWidth: 4})
	b.DrawLine(ndview.Pt(2, 8), ndview.Pt(14, 8))

	c := b.Image().RGBAAt(8, 8)
	if c.B < 200 || c.A < 200 {
		t.Errorf("stroke pixel = %v, want blue", c)
	}
}

func TestRaster_ZeroLengthLine(t *testing.T) {
	b := NewRaster(16, 16)
	b.SetStyle(ndview.Style{Stroke: ndview.Black, StrokeWidth: 4})
	b.DrawLine(ndview.Pt(8, 8), ndview.Pt(8, 8))

	// The degenerate segment renders as a stroke-width square rather
	// than disappearing.
	if c := b.Image().RGBAAt(8, 8); c.A < 200 {
		t.Errorf("degenerate line pixel = %v, want opaque", c)
	}
}

func TestRaster_Reset(t *testing.T) {
	b := NewRaster(8, 8)
	b.DrawFace([]ndview.Point{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8}})
	b.Reset()

	if c := b.Image().RGBAAt(4, 4); c.A != 0 {
		t.Errorf("pixel after Reset = %v, want transparent", c)
	}
}

func TestRaster_WriteTo(t *testing.T) {
	b := NewRaster(32, 24)
	b.DrawLine(ndview.Pt(0, 0), ndview.Pt(31, 23))

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("reported %d bytes, buffer has %d", n, buf.Len())
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("decoded size = %dx%d, want 32x24", b.Dx(), b.Dy())
	}
}

func TestRaster_TwoPointFaceFallsBackToLine(t *testing.T) {
	b := NewRaster(16, 16)
	b.SetStyle(ndview.Style{Stroke: ndview.Black, StrokeWidth: 4})
	b.DrawFace([]ndview.Point{{X: 2, Y: 8}, {X: 14, Y: 8}})

	if c := b.Image().RGBAAt(8, 8); c.A < 200 {
		t.Errorf("two-point face pixel = %v, want stroked line", c)
	}
}
