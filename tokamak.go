// Package tokamak builds parametric CAD geometry for fusion reactor
// components. A component is described by a 2D cross-section profile in a
// working plane; the profile is turned into a 3D solid by an external
// geometry kernel (revolution, extrusion or sweep) and composed with other
// components through boolean operations. Solids are cached behind a content
// fingerprint and rebuilt lazily when any visible attribute changes.
//
// The profile generators live in the profile package, ready-wired component
// types in the comp package and reactor level assembly in the reactor
// package. A geometry kernel backed by github.com/deadsy/sdfx is provided
// by the sdfxkernel package.
package tokamak

// Workplane is one of the three principal planes a profile is drawn on.
// The first axis is the horizontal (radial) direction of the profile, the
// second axis is the vertical direction and also the axis of revolution.
type Workplane string

const (
	PlaneXZ Workplane = "XZ"
	PlaneXY Workplane = "XY"
	PlaneYZ Workplane = "YZ"
)

func (w Workplane) valid() bool {
	return w == PlaneXZ || w == PlaneXY || w == PlaneYZ
}

// ConnType is the connection drawn from a profile point to the next point.
type ConnType uint8

const (
	// Straight joins two points with a line segment.
	Straight ConnType = iota
	// Spline joins a run of points with an interpolated smooth curve.
	Spline
	// Circle joins a run of three points with the circular arc through them.
	Circle
)

func (c ConnType) String() string {
	switch c {
	case Straight:
		return "straight"
	case Spline:
		return "spline"
	case Circle:
		return "circle"
	}
	return "unknown"
}
