package profile

import (
	"math"

	"github.com/fluxcad/tokamak"
	"gonum.org/v1/gonum/interp"
)

// AngleFunc maps a poloidal angle in degrees to a length in centimeters.
// Blanket thickness and plasma offset are both expressed this way.
type AngleFunc func(angleDeg float64) float64

// Constant returns an AngleFunc ignoring the angle.
func Constant(v float64) AngleFunc {
	return func(float64) float64 { return v }
}

// Linear returns an AngleFunc varying linearly from start at startAngle to
// stop at stopAngle.
func Linear(startAngle, stopAngle, start, stop float64) AngleFunc {
	return func(angle float64) float64 {
		t := (angle - startAngle) / (stopAngle - startAngle)
		return start + t*(stop-start)
	}
}

// Interpolated returns an AngleFunc interpolating piecewise linearly through
// the given samples. Angles must be strictly increasing and at least two.
func Interpolated(angles, values []float64) (AngleFunc, error) {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(angles, values); err != nil {
		return nil, tokamak.Constraintf("interpolated angle profile: %v", err)
	}
	return pl.Predict, nil
}

// BlanketFP describes a blanket whose inner face follows a plasma flux
// surface over a poloidal angle range. Angles are in degrees, measured
// anticlockwise from the outboard midplane.
type BlanketFP struct {
	Boundary   Boundary
	StartAngle float64
	StopAngle  float64
	// Thickness is the blanket depth per poloidal angle.
	Thickness AngleFunc
	// Offset is the standoff between plasma and blanket inner face. A nil
	// Offset means the inner face sits on the flux surface.
	Offset    AngleFunc
	NumPoints int
}

// Points returns the blanket cross-section: an inner offset curve from
// StartAngle to StopAngle and an outer curve back again, joined by straight
// segments at both ends. Offset points falling at non positive radius are
// dropped, so the inner face does not follow the true plasma curve across
// the axis; dropped counts are reported through the second return value.
func (b BlanketFP) Points() (tokamak.Profile, int, error) {
	if err := b.Boundary.validate(); err != nil {
		return nil, 0, err
	}
	if b.Thickness == nil {
		return nil, 0, tokamak.Constraintf("blanket: thickness function is required")
	}
	n := b.NumPoints
	if n < 2 {
		n = 50
	}
	offset := b.Offset
	if offset == nil {
		offset = Constant(0)
	}
	outerOffset := func(angle float64) float64 {
		return offset(angle) + b.Thickness(angle)
	}

	thetas := make([]float64, n)
	for i := range thetas {
		thetas[i] = b.StartAngle + (b.StopAngle-b.StartAngle)*float64(i)/float64(n-1)
	}

	inner, droppedIn := b.offsetCurve(thetas, offset)
	reverse(thetas)
	outer, droppedOut := b.offsetCurve(thetas, outerOffset)
	if len(inner) == 0 || len(outer) == 0 {
		return nil, droppedIn + droppedOut, tokamak.Constraintf("blanket: offset curve left no points in [%g, %g] degrees", b.StartAngle, b.StopAngle)
	}
	// The two curves meet with straight segments at the angular ends.
	inner[len(inner)-1].Conn = tokamak.Straight
	outer[len(outer)-1].Conn = tokamak.Straight
	return append(inner, outer...), droppedIn + droppedOut, nil
}

// offsetCurve displaces the flux surface along its local normal by off at
// each angle, dropping points at non positive radius.
func (b BlanketFP) offsetCurve(angleDegs []float64, off AngleFunc) (tokamak.Profile, int) {
	prof := make(tokamak.Profile, 0, len(angleDegs))
	dropped := 0
	for _, deg := range angleDegs {
		theta := deg * math.Pi / 180
		dr, dz := b.Boundary.Derivative(theta)
		nx, ny := dz, -dr
		norm := math.Hypot(nx, ny)
		nx /= norm
		ny /= norm
		r, z := b.Boundary.RZ(theta)
		d := off(deg)
		r += d * nx
		z += d * ny
		if r <= 0 {
			dropped++
			continue
		}
		prof = append(prof, tokamak.Pt(r, z, tokamak.Spline))
	}
	return prof, dropped
}

func reverse(v []float64) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

// BlanketD returns the outer boundary of a constant thickness D shaped
// blanket: flat inboard face at minorRadius, arcs over the top and bottom
// meeting an outboard apex on the midplane. The final point repeats the
// first; the arcs approximate rather than follow the plasma curve.
func BlanketD(height, thickness, minorRadius float64) (tokamak.Profile, error) {
	if thickness <= 0 || thickness >= height/2 {
		return nil, tokamak.Constraintf("D blanket: thickness %g outside (0, height/2)", thickness)
	}
	return tokamak.Profile{
		tokamak.Pt(minorRadius, height/2, tokamak.Straight),
		tokamak.Pt(minorRadius+thickness, height/2, tokamak.Circle),
		tokamak.Pt(minorRadius+thickness+height/2, 0, tokamak.Circle),
		tokamak.Pt(minorRadius+thickness, -height/2, tokamak.Straight),
		tokamak.Pt(minorRadius, -height/2, tokamak.Straight),
		tokamak.Pt(minorRadius, height/2, tokamak.Straight),
	}, nil
}

// BlanketDCavity returns the inner cavity cut from a D shaped blanket of
// the given dimensions.
func BlanketDCavity(height, thickness, minorRadius float64) (tokamak.Profile, error) {
	if thickness <= 0 || thickness >= height/2 {
		return nil, tokamak.Constraintf("D blanket cavity: thickness %g outside (0, height/2)", thickness)
	}
	return tokamak.Profile{
		tokamak.Pt(minorRadius+thickness, height/2-thickness, tokamak.Straight),
		tokamak.Pt(minorRadius+thickness, -(height/2 - thickness), tokamak.Circle),
		tokamak.Pt(minorRadius+height/2, 0, tokamak.Circle),
	}, nil
}
