package main

import (
	"testing"

	"github.com/gogpu/ndview"
	"github.com/gogpu/ndview/backend"
	"github.com/gogpu/ndview/config"
)

func TestHypercube_Counts(t *testing.T) {
	// A d-cube has 2^d vertices and C(d,2)·2^(d-2) square faces.
	tests := []struct {
		dim       int
		wantVerts int
		wantFaces int
	}{
		{2, 4, 1},
		{3, 8, 6},
		{4, 16, 24},
		{5, 32, 80},
	}
	for _, tt := range tests {
		verts, faces := hypercube(tt.dim)
		if len(verts) != tt.wantVerts {
			t.Errorf("d=%d: %d vertices, want %d", tt.dim, len(verts), tt.wantVerts)
		}
		if len(faces) != tt.wantFaces {
			t.Errorf("d=%d: %d faces, want %d", tt.dim, len(faces), tt.wantFaces)
		}
	}
}

func TestHypercube_Geometry(t *testing.T) {
	verts, faces := hypercube(3)
	for i, v := range verts {
		if v.Dim() != 3 {
			t.Fatalf("vertex %d has dimension %d", i, v.Dim())
		}
		for _, c := range v {
			if c != 1 && c != -1 {
				t.Errorf("vertex %d component = %v, want ±1", i, c)
			}
		}
	}

	// Every face must be a unit square: consecutive corners differ in
	// exactly one coordinate.
	for fi, face := range faces {
		if len(face) != 4 {
			t.Fatalf("face %d has %d corners", fi, len(face))
		}
		for k := range face {
			a := verts[face[k]]
			b := verts[face[(k+1)%4]]
			diff := 0
			for i := range a {
				if a[i] != b[i] {
					diff++
				}
			}
			if diff != 1 {
				t.Errorf("face %d corners %d->%d differ in %d coordinates, want 1", fi, k, (k+1)%4, diff)
			}
		}
	}
}

func TestSimplex_Counts(t *testing.T) {
	for d := 2; d <= 5; d++ {
		verts, faces := simplex(d)
		if len(verts) != d+1 {
			t.Errorf("d=%d: %d vertices, want %d", d, len(verts), d+1)
		}
		wantEdges := d * (d + 1) / 2
		if len(faces) != wantEdges {
			t.Errorf("d=%d: %d edges, want %d", d, len(faces), wantEdges)
		}
		for _, f := range faces {
			if len(f) != 2 {
				t.Fatalf("d=%d: edge with %d vertices", d, len(f))
			}
		}
	}
}

func TestSimplex_Centered(t *testing.T) {
	verts, _ := simplex(4)
	sum := ndview.ZeroVec[ndview.Float](4)
	for _, v := range verts {
		sum = sum.Add(v)
	}
	for i, c := range sum {
		if f := float64(c); f > 1e-12 || f < -1e-12 {
			t.Errorf("centroid component %d = %v, want 0", i, f)
		}
	}
}

func TestNewBackend(t *testing.T) {
	v := config.Default()
	v.Dimension = 3

	b, err := newBackend(v)
	if err != nil {
		t.Fatalf("newBackend(svg) failed: %v", err)
	}
	if _, ok := b.(*backend.SVG); !ok {
		t.Errorf("newBackend(svg) = %T, want *backend.SVG", b)
	}

	v.Backend = "null"
	b, err = newBackend(v)
	if err != nil {
		t.Fatalf("newBackend(null) failed: %v", err)
	}
	if _, ok := b.(*backend.Null); !ok {
		t.Errorf("newBackend(null) = %T, want *backend.Null", b)
	}

	v.Backend = "missing"
	if _, err = newBackend(v); err == nil {
		t.Error("newBackend of unknown name must fail")
	}
}

func TestViewport_Centers(t *testing.T) {
	v := config.Default() // 512x512 canvas
	vp := viewport(v)

	if got := vp.Apply(ndview.VecOf[ndview.Float](0, 0)); !got.Equal(ndview.VecOf[ndview.Float](256, 256)) {
		t.Errorf("viewport origin = %v, want canvas center", got)
	}
	if got := vp.Apply(ndview.VecOf[ndview.Float](1, 0)); !got.Equal(ndview.VecOf[ndview.Float](384, 256)) {
		t.Errorf("viewport unit x = %v, want (384, 256)", got)
	}
}

func TestRender_EndToEnd(t *testing.T) {
	v := config.Default()
	v.Dimension = 4
	nb := backend.NewNull()

	p := ndview.NewPipeline(v.Camera(), nb,
		ndview.WithTransform(v.Transform()),
		ndview.WithLevelTransform(2, viewport(v)),
	)
	verts, faces := hypercube(4)
	p.Begin()
	p.DrawMesh(verts, faces)
	p.End()

	if nb.Faces() != 24 {
		t.Errorf("rendered %d faces, want 24", nb.Faces())
	}
	if nb.Frames() != 1 {
		t.Errorf("frames = %d, want 1", nb.Frames())
	}
}
