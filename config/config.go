// Package config loads and validates YAML view descriptions for
// ndview pipelines.
//
// The pipeline itself never guards against degenerate cameras or
// transforms; that validation happens here, before a pipeline is
// built. A minimal view file:
//
//	dimension: 4
//	eye: 10
//	backend: svg
//	rotations:
//	  - {axis1: 0, axis2: 3, angle: 30}
//	  - {axis1: 1, axis2: 2, angle: 45}
package config

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ndview"
)

// Rotation describes a rotation in the coordinate plane spanned by
// two axes. Angle is in degrees.
type Rotation struct {
	Axis1 int     `yaml:"axis1"`
	Axis2 int     `yaml:"axis2"`
	Angle float64 `yaml:"angle"`
}

// Style describes stroke and fill appearance. Colours are hex
// strings ("#RRGGBB" or "#RGB").
type Style struct {
	Stroke      string  `yaml:"stroke"`
	Fill        string  `yaml:"fill"`
	StrokeWidth float64 `yaml:"stroke_width"`
}

// View is a complete view description: the dimension of the source
// geometry, the camera, the viewing rotations, and the output
// backend.
type View struct {
	// Dimension is the dimension of the source geometry (≥ 2).
	Dimension int `yaml:"dimension"`
	// Eye is the camera eye distance used at every projection level.
	Eye float64 `yaml:"eye"`
	// EyeLevels overrides the eye distance for individual levels,
	// keyed by dimension level (3..Dimension).
	EyeLevels map[int]float64 `yaml:"eye_levels,omitempty"`
	// Rotations are applied in order at the top dimension level.
	Rotations []Rotation `yaml:"rotations,omitempty"`
	// Backend names the registered output backend.
	Backend string `yaml:"backend"`
	// Width and Height size the output canvas.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Style is optional; nil means the backend default.
	Style *Style `yaml:"style,omitempty"`
}

// Default returns a View with the defaults applied before decoding:
// eye distance 10, SVG backend, 512×512 canvas.
func Default() *View {
	return &View{
		Eye:     10,
		Backend: "svg",
		Width:   512,
		Height:  512,
	}
}

// Load decodes a view description from r and validates it. Unknown
// fields are rejected.
func Load(r io.Reader) (*View, error) {
	v := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("config: decoding view: %w", err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// LoadFile loads a view description from a YAML file.
func LoadFile(path string) (*View, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the static caller contract the pipeline relies on:
// a sane dimension, positive eye distances, rotation axes inside the
// space, a positive canvas. It cannot rule out a vertex landing
// exactly at the eye depth; keeping geometry inside the eye distance
// remains the caller's responsibility.
func (v *View) Validate() error {
	if v.Dimension < 2 {
		return fmt.Errorf("config: dimension must be at least 2, got %d", v.Dimension)
	}
	if v.Eye <= 0 {
		return fmt.Errorf("config: eye distance must be positive, got %g", v.Eye)
	}
	for level, eye := range v.EyeLevels {
		if level < 3 || level > v.Dimension {
			return fmt.Errorf("config: eye level %d out of range [3, %d]", level, v.Dimension)
		}
		if eye <= 0 {
			return fmt.Errorf("config: eye distance for level %d must be positive, got %g", level, eye)
		}
	}
	for i, r := range v.Rotations {
		if r.Axis1 < 0 || r.Axis1 >= v.Dimension || r.Axis2 < 0 || r.Axis2 >= v.Dimension {
			return fmt.Errorf("config: rotation %d axes (%d, %d) out of range for dimension %d",
				i, r.Axis1, r.Axis2, v.Dimension)
		}
		if r.Axis1 == r.Axis2 {
			return fmt.Errorf("config: rotation %d axes must differ, got %d twice", i, r.Axis1)
		}
	}
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("config: canvas size must be positive, got %gx%g", v.Width, v.Height)
	}
	if v.Backend == "" {
		return fmt.Errorf("config: backend name must not be empty")
	}
	if v.Style != nil && v.Style.StrokeWidth < 0 {
		return fmt.Errorf("config: stroke width must not be negative, got %g", v.Style.StrokeWidth)
	}
	return nil
}

// Camera builds the projection camera the view describes.
func (v *View) Camera() *ndview.Camera[ndview.Float] {
	cam := ndview.NewCamera(v.Dimension, ndview.Float(v.Eye))
	for level, eye := range v.EyeLevels {
		cam.SetEyeAt(level, ndview.Float(eye))
	}
	return cam
}

// Transform composes the view's rotations, in order, into the affine
// transform for the top dimension level.
func (v *View) Transform() ndview.Affine[ndview.Float] {
	t := ndview.IdentityAffine[ndview.Float](v.Dimension)
	for _, r := range v.Rotations {
		rot := ndview.RotationPlane[ndview.Float](v.Dimension, r.Axis1, r.Axis2, r.Angle*math.Pi/180)
		t = rot.Compose(t)
	}
	return t
}

// PipelineStyle converts the optional style block to an ndview.Style,
// falling back to the package default.
func (v *View) PipelineStyle() ndview.Style {
	s := ndview.DefaultStyle()
	if v.Style == nil {
		return s
	}
	if v.Style.Stroke != "" {
		s.Stroke = ndview.ParseHex(v.Style.Stroke)
	}
	if v.Style.Fill != "" {
		s.Fill = ndview.ParseHex(v.Style.Fill)
	}
	if v.Style.StrokeWidth > 0 {
		s.StrokeWidth = v.Style.StrokeWidth
	}
	return s
}
