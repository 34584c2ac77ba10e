// Command ndview renders an n-dimensional demo shape to a 2D output.
//
// It plays the role of the shape generator feeding the pipeline: it
// builds a hypercube or simplex in the configured dimension, sets up
// the camera and rotations from a YAML view file (or defaults), and
// writes the result through the selected backend.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/ndview"
	"github.com/gogpu/ndview/backend"
	"github.com/gogpu/ndview/config"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML view description (optional)")
		shape       = flag.String("shape", "hypercube", "shape to render: hypercube or simplex")
		dim         = flag.Int("dim", 0, "override the dimension from the config")
		backendName = flag.String("backend", "", "override the backend from the config")
		output      = flag.String("output", "", "output file (default stdout)")
	)
	flag.Parse()

	view := config.Default()
	if *configPath != "" {
		v, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		view = v
	}
	if *dim > 0 {
		view.Dimension = *dim
	}
	if view.Dimension == 0 {
		view.Dimension = 4
	}
	if *backendName != "" {
		view.Backend = *backendName
	}
	if err := view.Validate(); err != nil {
		log.Fatalf("Invalid view: %v", err)
	}

	b, err := newBackend(view)
	if err != nil {
		log.Fatalf("Failed to create backend: %v", err)
	}

	p := ndview.NewPipeline(view.Camera(), b,
		ndview.WithTransform(view.Transform()),
		ndview.WithLevelTransform(2, viewport(view)),
		ndview.WithStyle[ndview.Float](view.PipelineStyle()),
	)

	verts, faces := generate(*shape, view.Dimension)

	p.Begin()
	p.DrawMesh(verts, faces)
	p.End()

	if err := write(b, *output); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// newBackend builds the sized backends directly and everything else
// through the registry.
func newBackend(view *config.View) (ndview.Backend, error) {
	switch view.Backend {
	case "svg":
		return backend.NewSVG(view.Width, view.Height), nil
	case "raster":
		return backend.NewRaster(int(view.Width), int(view.Height)), nil
	default:
		return backend.New(view.Backend)
	}
}

// viewport maps the projected unit-scale geometry into the canvas:
// scale to a quarter of the smaller canvas side and translate to the
// center.
func viewport(view *config.View) ndview.Affine[ndview.Float] {
	side := view.Width
	if view.Height < side {
		side = view.Height
	}
	scale := ndview.UniformScale(2, ndview.Float(side/4))
	center := ndview.Translation(ndview.VecOf[ndview.Float](view.Width/2, view.Height/2))
	return center.Compose(scale)
}

func write(b ndview.Backend, path string) error {
	w, ok := b.(ndview.WriterBackend)
	if !ok {
		return nil // null backend: nothing to write
	}
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	_, err := w.WriteTo(out)
	return err
}

// generate builds the demo shape: vertices plus index faces.
func generate(shape string, dim int) ([]ndview.Vec[ndview.Float], [][]int) {
	switch shape {
	case "simplex":
		return simplex(dim)
	case "hypercube":
		return hypercube(dim)
	default:
		log.Fatalf("Unknown shape %q (want hypercube or simplex)", shape)
		return nil, nil
	}
}

// hypercube returns the 2^d vertices of the d-cube centered at the
// origin with side 2, and all of its square 2-faces: one face per
// pair of free axes and per 0/1 assignment of the remaining axes.
func hypercube(d int) ([]ndview.Vec[ndview.Float], [][]int) {
	n := 1 << d
	verts := make([]ndview.Vec[ndview.Float], n)
	for mask := 0; mask < n; mask++ {
		v := make(ndview.Vec[ndview.Float], d)
		for axis := 0; axis < d; axis++ {
			if mask&(1<<axis) != 0 {
				v[axis] = 1
			} else {
				v[axis] = -1
			}
		}
		verts[mask] = v
	}

	var faces [][]int
	// Walk the corners of each (i,j) plane in drawing order so the
	// polygon is convex: 00, 10, 11, 01.
	corners := [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			for base := 0; base < n; base++ {
				if base&(1<<i) != 0 || base&(1<<j) != 0 {
					continue
				}
				face := make([]int, 4)
				for k, c := range corners {
					face[k] = base | c[0]<<i | c[1]<<j
				}
				faces = append(faces, face)
			}
		}
	}
	return verts, faces
}

// simplex returns the d+1 vertices of a regular-ish simplex (the
// standard basis corners plus the origin, centered) and its edge
// skeleton as 2-vertex faces.
func simplex(d int) ([]ndview.Vec[ndview.Float], [][]int) {
	verts := make([]ndview.Vec[ndview.Float], d+1)
	verts[0] = ndview.ZeroVec[ndview.Float](d)
	for i := 1; i <= d; i++ {
		v := make(ndview.Vec[ndview.Float], d)
		v[i-1] = 2
		verts[i] = v
	}
	// Center on the origin.
	centroid := ndview.ZeroVec[ndview.Float](d)
	for _, v := range verts {
		centroid = centroid.Add(v)
	}
	centroid = centroid.ScaleDiv(ndview.Float(d + 1))
	for i, v := range verts {
		verts[i] = v.Sub(centroid)
	}

	var faces [][]int
	for i := 0; i <= d; i++ {
		for j := i + 1; j <= d; j++ {
			faces = append(faces, []int{i, j})
		}
	}
	return verts, faces
}
