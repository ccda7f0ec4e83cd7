package sphere

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/mat"
)

// Axis names a Cartesian axis for rotations.
type Axis int

const (
	// AxisX points toward the vernal equinox in the ecliptic and equatorial frames.
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Vector is a Cartesian direction, optionally scaled by a distance.
type Vector struct {
	X, Y, Z float64
}

// Spherical is the (radius, colatitude, azimuth) form of a Vector.
// Colatitude is measured from the +Z pole in [0, π]; azimuth from +X toward
// +Y in [0, 2π).
type Spherical struct {
	R       float64
	Colat   unit.Angle
	Azimuth unit.Angle
}

// FromSpherical builds a Cartesian vector from radius, colatitude and azimuth.
func FromSpherical(r float64, colat, az unit.Angle) Vector {
	sinC, cosC := math.Sincos(colat.Rad())
	sinA, cosA := math.Sincos(az.Rad())
	return Vector{
		X: r * sinC * cosA,
		Y: r * sinC * sinA,
		Z: r * cosC,
	}
}

// FromLatLon builds a vector from a latitude-style angle (measured from the
// equator) and a longitude-style azimuth.
func FromLatLon(r float64, lat, lon unit.Angle) Vector {
	return FromSpherical(r, unit.AngleFromDeg(90-lat.Deg()), lon)
}

// Norm returns the magnitude of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Spherical converts v to spherical form. A zero vector has no direction and
// yields ErrDomain.
func (v Vector) Spherical() (Spherical, error) {
	r := v.Norm()
	if r == 0 {
		return Spherical{}, fmt.Errorf("%w: zero vector has no direction", ErrDomain)
	}
	colat := math.Acos(clampUnit(v.Z / r))
	az := Wrap(math.Atan2(v.Y, v.X), 0, 2*math.Pi)
	return Spherical{R: r, Colat: unit.Angle(colat), Azimuth: unit.Angle(az)}, nil
}

// LatLon returns the latitude in [-90°, 90°], the longitude in [0°, 360°)
// and the magnitude of v. A zero vector maps to the origin of both angles.
func (v Vector) LatLon() (lat, lon unit.Angle, r float64) {
	s, err := v.Spherical()
	if err != nil {
		return 0, 0, 0
	}
	return unit.AngleFromDeg(90 - s.Colat.Deg()), s.Azimuth, s.R
}

// Rotate turns v counterclockwise (right-handed) about the given axis by a.
func (v Vector) Rotate(axis Axis, a unit.Angle) Vector {
	var out mat.VecDense
	out.MulVec(RotationMatrix(axis, a), mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// RotationMatrix returns the right-handed rotation matrix about axis by a.
func RotationMatrix(axis Axis, a unit.Angle) *mat.Dense {
	s, c := math.Sincos(a.Rad())
	switch axis {
	case AxisX:
		return mat.NewDense(3, 3, []float64{
			1, 0, 0,
			0, c, -s,
			0, s, c,
		})
	case AxisY:
		return mat.NewDense(3, 3, []float64{
			c, 0, s,
			0, 1, 0,
			-s, 0, c,
		})
	default:
		return mat.NewDense(3, 3, []float64{
			c, -s, 0,
			s, c, 0,
			0, 0, 1,
		})
	}
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
