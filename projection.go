package textplot

import "math"

// Mat4 represents a 4x4 homogeneous transformation matrix in row-major
// order.
type Mat4 [4][4]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply multiplies two matrices (m * other).
func (m Mat4) Multiply(other Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += m[i][k] * other[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

// Apply transforms the homogeneous point (x, y, z, w).
func (m Mat4) Apply(x, y, z, w float64) (float64, float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z + m[0][3]*w,
		m[1][0]*x + m[1][1]*y + m[1][2]*z + m[1][3]*w,
		m[2][0]*x + m[2][1]*y + m[2][2]*z + m[2][3]*w,
		m[3][0]*x + m[3][1]*y + m[3][2]*z + m[3][3]*w
}

type vec3 struct{ x, y, z float64 }

func (a vec3) sub(b vec3) vec3   { return vec3{a.x - b.x, a.y - b.y, a.z - b.z} }
func (a vec3) dot(b vec3) float64 { return a.x*b.x + a.y*b.y + a.z*b.z }

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a.y*b.z - a.z*b.y,
		a.z*b.x - a.x*b.z,
		a.x*b.y - a.y*b.x,
	}
}

func (a vec3) normalize() vec3 {
	n := math.Sqrt(a.dot(a))
	if n == 0 {
		return a
	}
	return vec3{a.x / n, a.y / n, a.z / n}
}

// lookAt builds a view matrix for a camera at eye looking toward target
// with the given up direction.
func lookAt(eye, target, up vec3) Mat4 {
	f := target.sub(eye).normalize()
	s := f.cross(up).normalize()
	u := s.cross(f)
	return Mat4{
		{s.x, s.y, s.z, -s.dot(eye)},
		{u.x, u.y, u.z, -u.dot(eye)},
		{-f.x, -f.y, -f.z, f.dot(eye)},
		{0, 0, 0, 1},
	}
}

// perspective builds a symmetric perspective projection with the given
// vertical field of view in radians and an aspect ratio of 1.
func perspective(fov, near, far float64) Mat4 {
	t := 1 / math.Tan(fov/2)
	return Mat4{
		{t, 0, 0, 0},
		{0, t, 0, 0},
		{0, 0, (far + near) / (near - far), 2 * far * near / (near - far)},
		{0, 0, -1, 0},
	}
}

// Camera describes the viewpoint of a 3D projection. The zero value is
// filled with usable defaults by NewProjection.
type Camera struct {
	// Elevation is the angle above the xy plane, in degrees.
	Elevation float64

	// Azimuth is the rotation around the z axis, in degrees.
	Azimuth float64

	// Distance is the camera's distance from Target. Zero means 4.
	Distance float64

	// FOV is the vertical field of view in degrees, ignored for
	// orthographic cameras. Zero means 45.
	FOV float64

	// Orthographic disables the perspective divide.
	Orthographic bool

	// Target is the point the camera looks at.
	Target [3]float64

	// Up is the camera's up direction. Zero means the z axis.
	Up [3]float64
}

// Projection maps 3D data coordinates onto the 2D drawing plane through
// a model-view-projection matrix with perspective divide. The zero value
// is the disabled projection: a type-distinguishable identity that lets
// 2D call sites skip the matrix path entirely.
type Projection struct {
	enabled bool
	ortho   bool
	mvp     Mat4
}

// NoProjection returns the disabled projection used by pure-2D plots.
func NoProjection() Projection { return Projection{} }

// NewProjection builds an enabled projection from camera parameters.
func NewProjection(cam Camera) Projection {
	if cam.Distance == 0 {
		cam.Distance = 4
	}
	if cam.FOV == 0 {
		cam.FOV = 45
	}
	if cam.Up == [3]float64{} {
		cam.Up = [3]float64{0, 0, 1}
	}
	elev := cam.Elevation * math.Pi / 180
	azim := cam.Azimuth * math.Pi / 180
	target := vec3{cam.Target[0], cam.Target[1], cam.Target[2]}
	eye := vec3{
		target.x + cam.Distance*math.Cos(elev)*math.Cos(azim),
		target.y + cam.Distance*math.Cos(elev)*math.Sin(azim),
		target.z + cam.Distance*math.Sin(elev),
	}
	view := lookAt(eye, target, vec3{cam.Up[0], cam.Up[1], cam.Up[2]})

	var proj Mat4
	if cam.Orthographic {
		proj = Identity4()
	} else {
		proj = perspective(cam.FOV*math.Pi/180, 0.1, 100)
	}
	return Projection{
		enabled: true,
		ortho:   cam.Orthographic,
		mvp:     proj.Multiply(view),
	}
}

// Enabled reports whether the projection transforms coordinates. The
// disabled projection returns input (x, y) unchanged.
func (p Projection) Enabled() bool { return p.enabled }

// Apply projects the data point (x, y, z) to 2D. For the disabled
// projection this is the identity on (x, y); for orthographic cameras
// the homogeneous w stays 1 and no divide happens.
func (p Projection) Apply(x, y, z float64) (float64, float64) {
	if !p.enabled {
		return x, y
	}
	px, py, _, pw := p.mvp.Apply(x, y, z, 1)
	if p.ortho || pw == 0 {
		return px, py
	}
	return px / pw, py / pw
}
