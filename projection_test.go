package textplot

import (
	"math"
	"testing"
)

// TestNoProjectionIdentity verifies the disabled projection returns the
// input (x, y) unchanged and reports itself as disabled.
func TestNoProjectionIdentity(t *testing.T) {
	p := NoProjection()
	if p.Enabled() {
		t.Fatal("NoProjection reports Enabled() = true")
	}
	x, y := p.Apply(3.5, -7.25, 42)
	if x != 3.5 || y != -7.25 {
		t.Errorf("Apply = (%g, %g), want (3.5, -7.25)", x, y)
	}
}

// TestProjectionTargetCentered verifies the camera target projects to
// the center of the plane for both camera modes.
func TestProjectionTargetCentered(t *testing.T) {
	for _, ortho := range []bool{false, true} {
		p := NewProjection(Camera{Elevation: 30, Azimuth: 45, Orthographic: ortho})
		if !p.Enabled() {
			t.Fatal("NewProjection reports Enabled() = false")
		}
		x, y := p.Apply(0, 0, 0)
		if math.Abs(x) > 1e-9 || math.Abs(y) > 1e-9 {
			t.Errorf("ortho=%v: target projects to (%g, %g), want origin", ortho, x, y)
		}
	}
}

// TestProjectionDepthOrdering verifies that under a perspective camera a
// point nearer the eye subtends a larger image than the same offset
// farther away.
func TestProjectionDepthOrdering(t *testing.T) {
	// Camera on the +x axis looking at the origin.
	p := NewProjection(Camera{Elevation: 0, Azimuth: 0, Distance: 4})
	_, nearY := p.Apply(1, 0, 0.5)  // closer to the eye
	_, farY := p.Apply(-1, 0, 0.5)  // farther from the eye
	if math.Abs(nearY) <= math.Abs(farY) {
		t.Errorf("perspective foreshortening missing: |near| %g <= |far| %g", nearY, farY)
	}
}

// TestMat4MultiplyIdentity verifies matrix multiplication against the
// identity.
func TestMat4MultiplyIdentity(t *testing.T) {
	m := perspective(math.Pi/4, 0.1, 100)
	if got := m.Multiply(Identity4()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := Identity4().Multiply(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

// TestMat4Apply verifies a translation built by hand moves points.
func TestMat4Apply(t *testing.T) {
	m := Identity4()
	m[0][3], m[1][3] = 2, -3
	x, y, z, w := m.Apply(1, 1, 1, 1)
	if x != 3 || y != -2 || z != 1 || w != 1 {
		t.Errorf("Apply = (%g, %g, %g, %g), want (3, -2, 1, 1)", x, y, z, w)
	}
}
