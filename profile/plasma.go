package profile

import (
	"math"

	"github.com/fluxcad/tokamak"
	"gonum.org/v1/gonum/spatial/r2"
)

// PlasmaConfig selects the divertor configuration of a plasma boundary.
type PlasmaConfig uint8

const (
	// NonNull is a limiter plasma with no X points.
	NonNull PlasmaConfig = iota
	// SingleNull has one X point below the plasma.
	SingleNull
	// DoubleNull has X points above and below the plasma.
	DoubleNull
)

func (c PlasmaConfig) String() string {
	switch c {
	case NonNull:
		return "non-null"
	case SingleNull:
		return "single-null"
	case DoubleNull:
		return "double-null"
	}
	return "unknown"
}

// Boundary describes a plasma flux surface with four shaping parameters.
// Lengths are in centimeters. The zero value is not usable; start from
// DefaultBoundary.
type Boundary struct {
	MajorRadius          float64
	MinorRadius          float64
	Elongation           float64
	Triangularity        float64
	VerticalDisplacement float64
	// NumPoints is the number of boundary samples before vertical
	// filtering.
	NumPoints int
	Config    PlasmaConfig
	// XPointShift locates the X points as a fraction of the plasma edge,
	// in [0, 1].
	XPointShift float64
}

// DefaultBoundary returns the conventional large tokamak plasma used as a
// starting point by reactor presets.
func DefaultBoundary() Boundary {
	return Boundary{
		MajorRadius:   450,
		MinorRadius:   150,
		Elongation:    2,
		Triangularity: 0.55,
		NumPoints:     50,
		XPointShift:   0.1,
	}
}

func (b Boundary) validate() error {
	if b.MinorRadius < 1 {
		return tokamak.Constraintf("plasma: minor radius %g out of range", b.MinorRadius)
	}
	if b.MajorRadius < 1 {
		return tokamak.Constraintf("plasma: major radius %g out of range", b.MajorRadius)
	}
	if b.Elongation < 0 || b.Elongation > 10 {
		return tokamak.Constraintf("plasma: elongation %g out of range", b.Elongation)
	}
	if b.NumPoints < 3 {
		return tokamak.Constraintf("plasma: need at least 3 boundary points, got %d", b.NumPoints)
	}
	return nil
}

// RZ evaluates the parametric flux surface at poloidal angle theta in
// radians.
func (b Boundary) RZ(theta float64) (r, z float64) {
	r = b.MajorRadius + b.MinorRadius*math.Cos(theta+b.Triangularity*math.Sin(theta))
	z = b.Elongation*b.MinorRadius*math.Sin(theta) + b.VerticalDisplacement
	return r, z
}

// Derivative evaluates dR/dtheta and dZ/dtheta of the flux surface.
func (b Boundary) Derivative(theta float64) (dr, dz float64) {
	dr = -b.MinorRadius * math.Sin(theta+b.Triangularity*math.Sin(theta)) *
		(1 + b.Triangularity*math.Cos(theta))
	dz = b.Elongation * b.MinorRadius * math.Cos(theta)
	return dr, dz
}

// HighPoint returns the top of the flux surface.
func (b Boundary) HighPoint() r2.Vec {
	return r2.Vec{
		X: b.MajorRadius - b.Triangularity*b.MinorRadius,
		Y: b.Elongation*b.MinorRadius + b.VerticalDisplacement,
	}
}

// LowPoint returns the bottom of the flux surface.
func (b Boundary) LowPoint() r2.Vec {
	return r2.Vec{
		X: b.MajorRadius - b.Triangularity*b.MinorRadius,
		Y: -b.Elongation*b.MinorRadius + b.VerticalDisplacement,
	}
}

// OuterEquatorialPoint returns the outboard midplane point.
func (b Boundary) OuterEquatorialPoint() r2.Vec {
	return r2.Vec{X: b.MajorRadius + b.MinorRadius, Y: b.VerticalDisplacement}
}

// InnerEquatorialPoint returns the inboard midplane point.
func (b Boundary) InnerEquatorialPoint() r2.Vec {
	return r2.Vec{X: b.MajorRadius - b.MinorRadius, Y: b.VerticalDisplacement}
}

// XPoints returns the lower and upper X point locations. ok reports whether
// the configuration has each point: single-null has only the lower one,
// non-null has neither. The upper point mirrors the lower about the
// vertical displacement.
func (b Boundary) XPoints() (lower, upper r2.Vec, lowerOK, upperOK bool) {
	if b.Config != SingleNull && b.Config != DoubleNull {
		return r2.Vec{}, r2.Vec{}, false, false
	}
	lower = r2.Vec{
		X: 1 - (1+b.XPointShift)*b.Triangularity*b.MinorRadius,
		Y: -(1+b.XPointShift)*b.Elongation*b.MinorRadius + b.VerticalDisplacement,
	}
	if b.Config != DoubleNull {
		return lower, r2.Vec{}, true, false
	}
	upper = r2.Vec{
		X: lower.X,
		Y: (1+b.XPointShift)*b.Elongation*b.MinorRadius + b.VerticalDisplacement,
	}
	return lower, upper, true, true
}

// verticalBounds returns the Z interval of boundary points to keep. X points
// widen the interval beyond the bare elongation bound so that divertor legs
// survive filtering.
func (b Boundary) verticalBounds() (lo, hi float64) {
	lo = -b.Elongation*b.MinorRadius + b.VerticalDisplacement
	hi = b.Elongation*b.MinorRadius + b.VerticalDisplacement
	lower, upper, lowerOK, upperOK := b.XPoints()
	if lowerOK {
		lo = lower.Y
	}
	if upperOK {
		hi = upper.Y
	}
	return lo, hi
}

// Points samples the flux surface at NumPoints equally spaced poloidal
// angles, drops samples outside the vertical bounds and returns the
// remaining boundary as a spline connected profile. Filtering keeps the
// boundary symmetric for symmetric parameter sets because the sample angles
// are symmetric about the midplane.
func (b Boundary) Points() (tokamak.Profile, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	lo, hi := b.verticalBounds()
	prof := make(tokamak.Profile, 0, b.NumPoints)
	for i := 0; i < b.NumPoints; i++ {
		theta := 2 * math.Pi * float64(i) / float64(b.NumPoints)
		r, z := b.RZ(theta)
		if z < lo || z > hi {
			continue
		}
		prof = append(prof, tokamak.Pt(r, z, tokamak.Spline))
	}
	if len(prof) < 3 {
		return nil, tokamak.Constraintf("plasma: vertical filtering left %d of %d points", len(prof), b.NumPoints)
	}
	return prof, nil
}
