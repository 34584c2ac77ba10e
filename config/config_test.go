package config

import (
	"math"
	"strings"
	"testing"

	"github.com/gogpu/ndview"
)

const validView = `
dimension: 4
eye: 10
eye_levels:
  4: 20
backend: json
width: 800
height: 600
rotations:
  - {axis1: 0, axis2: 3, angle: 30}
  - {axis1: 1, axis2: 2, angle: 45}
style:
  stroke: "#ff0000"
  fill: "#0000ff"
  stroke_width: 2
`

func TestLoad(t *testing.T) {
	v, err := Load(strings.NewReader(validView))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v.Dimension != 4 || v.Eye != 10 || v.Backend != "json" {
		t.Errorf("loaded view wrong: %+v", v)
	}
	if v.EyeLevels[4] != 20 {
		t.Errorf("eye level override = %v, want 20", v.EyeLevels[4])
	}
	if len(v.Rotations) != 2 || v.Rotations[1].Angle != 45 {
		t.Errorf("rotations wrong: %+v", v.Rotations)
	}
	if v.Width != 800 || v.Height != 600 {
		t.Errorf("canvas size = %gx%g, want 800x600", v.Width, v.Height)
	}
}

func TestLoad_DefaultsApply(t *testing.T) {
	v, err := Load(strings.NewReader("dimension: 3\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v.Eye != 10 || v.Backend != "svg" || v.Width != 512 || v.Height != 512 {
		t.Errorf("defaults not applied: %+v", v)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	_, err := Load(strings.NewReader("dimension: 3\nbogus_field: 1\n"))
	if err == nil {
		t.Fatal("unknown field must be rejected")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *View {
		v := Default()
		v.Dimension = 4
		return v
	}
	tests := []struct {
		name    string
		mutate  func(*View)
		wantErr string
	}{
		{"valid", func(v *View) {}, ""},
		{"dimension too small", func(v *View) { v.Dimension = 1 }, "dimension"},
		{"zero eye", func(v *View) { v.Eye = 0 }, "eye distance"},
		{"negative eye", func(v *View) { v.Eye = -5 }, "eye distance"},
		{"eye level too low", func(v *View) { v.EyeLevels = map[int]float64{2: 10} }, "out of range"},
		{"eye level too high", func(v *View) { v.EyeLevels = map[int]float64{5: 10} }, "out of range"},
		{"eye level not positive", func(v *View) { v.EyeLevels = map[int]float64{3: 0} }, "positive"},
		{"rotation axis out of range", func(v *View) {
			v.Rotations = []Rotation{{Axis1: 0, Axis2: 4, Angle: 10}}
		}, "out of range"},
		{"rotation axes equal", func(v *View) {
			v.Rotations = []Rotation{{Axis1: 2, Axis2: 2, Angle: 10}}
		}, "differ"},
		{"zero width", func(v *View) { v.Width = 0 }, "canvas"},
		{"empty backend", func(v *View) { v.Backend = "" }, "backend"},
		{"negative stroke width", func(v *View) {
			v.Style = &Style{StrokeWidth: -1}
		}, "stroke width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := valid()
			tt.mutate(v)
			err := v.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate failed: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestView_Camera(t *testing.T) {
	v, err := Load(strings.NewReader(validView))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cam := v.Camera()
	if cam.Dim() != 4 {
		t.Errorf("camera dimension = %d, want 4", cam.Dim())
	}
	if cam.EyeAt(4) != 20 || cam.EyeAt(3) != 10 {
		t.Errorf("eye distances = %v/%v, want 20/10", cam.EyeAt(4), cam.EyeAt(3))
	}
}

func TestView_Transform(t *testing.T) {
	v := Default()
	v.Dimension = 3
	v.Rotations = []Rotation{{Axis1: 0, Axis2: 1, Angle: 90}}

	got := v.Transform().Apply(ndview.VecOf[ndview.Float](1, 0, 0))
	want := ndview.VecOf[ndview.Float](0, 1, 0)
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-12 {
			t.Errorf("Transform Apply = %v, want %v", got, want)
			break
		}
	}

	// No rotations means the identity.
	v.Rotations = nil
	if !v.Transform().IsIdentity() {
		t.Error("empty rotation list must produce the identity transform")
	}
}

func TestView_PipelineStyle(t *testing.T) {
	v, err := Load(strings.NewReader(validView))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s := v.PipelineStyle()
	if s.Stroke != ndview.Red || s.Fill != ndview.Blue || s.StrokeWidth != 2 {
		t.Errorf("PipelineStyle = %+v", s)
	}

	// Absent style block falls back to the package default.
	v.Style = nil
	if got := v.PipelineStyle(); got != ndview.DefaultStyle() {
		t.Errorf("default PipelineStyle = %+v", got)
	}
}
