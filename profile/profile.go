// Package profile computes 2D cross-section boundaries for fusion reactor
// components. Every function is pure: scalar and vector parameters in,
// ordered point lists out. Radii orderings are validated here, before any
// geometry kernel is involved.
//
// Profiles are drawn in the XZ plane with X the radial direction from the
// machine axis and Z the vertical direction. Symmetric variants are
// symmetric about the equatorial plane Z=0.
package profile

import (
	"github.com/fluxcad/tokamak"
	"gonum.org/v1/gonum/spatial/r2"
)

// CenterColumnCylinder returns the rectangular cross-section of a constant
// thickness cylindrical center column shield.
func CenterColumnCylinder(height, innerRadius, outerRadius float64) (tokamak.Profile, error) {
	if innerRadius >= outerRadius {
		return nil, tokamak.Constraintf("center column cylinder: inner radius %g >= outer radius %g", innerRadius, outerRadius)
	}
	if height <= 0 {
		return nil, tokamak.Constraintf("center column cylinder: height %g must be positive", height)
	}
	return tokamak.Profile{
		tokamak.Pt(innerRadius, height/2, tokamak.Straight),
		tokamak.Pt(outerRadius, height/2, tokamak.Straight),
		tokamak.Pt(outerRadius, -height/2, tokamak.Straight),
		tokamak.Pt(innerRadius, -height/2, tokamak.Straight),
		tokamak.Pt(innerRadius, height/2, tokamak.Straight),
	}, nil
}

func checkColumnRadii(name string, inner, mid, outer float64) error {
	if !(inner <= mid && mid <= outer) {
		return tokamak.Constraintf("%s: radii must satisfy inner <= mid <= outer, got %g, %g, %g", name, inner, mid, outer)
	}
	return nil
}

// CenterColumnHyperbola returns a center column shield with a hyperbolic
// outer profile, waisted at the equatorial plane, and a cylindrical bore.
func CenterColumnHyperbola(height, innerRadius, midRadius, outerRadius float64) (tokamak.Profile, error) {
	if err := checkColumnRadii("center column hyperbola", innerRadius, midRadius, outerRadius); err != nil {
		return nil, err
	}
	return tokamak.Profile{
		tokamak.Pt(innerRadius, 0, tokamak.Straight),
		tokamak.Pt(innerRadius, height/2, tokamak.Straight),
		tokamak.Pt(outerRadius, height/2, tokamak.Spline),
		tokamak.Pt(midRadius, 0, tokamak.Spline),
		tokamak.Pt(outerRadius, -height/2, tokamak.Straight),
		tokamak.Pt(innerRadius, -height/2, tokamak.Straight),
	}, nil
}

// CenterColumnFlatTopHyperbola is the hyperbolic shield variant whose outer
// curve spans only arcHeight, joined to flat sections above and below.
func CenterColumnFlatTopHyperbola(height, arcHeight, innerRadius, midRadius, outerRadius float64) (tokamak.Profile, error) {
	if err := checkColumnRadii("center column flat top hyperbola", innerRadius, midRadius, outerRadius); err != nil {
		return nil, err
	}
	if arcHeight >= height {
		return nil, tokamak.Constraintf("center column flat top hyperbola: arc height %g >= height %g", arcHeight, height)
	}
	return flatTopColumn(height, arcHeight, innerRadius, midRadius, outerRadius, tokamak.Spline), nil
}

// CenterColumnCircular is like CenterColumnHyperbola with the outer curve a
// circular arc through the mid radius.
func CenterColumnCircular(height, innerRadius, midRadius, outerRadius float64) (tokamak.Profile, error) {
	if err := checkColumnRadii("center column circular", innerRadius, midRadius, outerRadius); err != nil {
		return nil, err
	}
	return tokamak.Profile{
		tokamak.Pt(innerRadius, 0, tokamak.Straight),
		tokamak.Pt(innerRadius, height/2, tokamak.Straight),
		tokamak.Pt(outerRadius, height/2, tokamak.Circle),
		tokamak.Pt(midRadius, 0, tokamak.Circle),
		tokamak.Pt(outerRadius, -height/2, tokamak.Straight),
		tokamak.Pt(innerRadius, -height/2, tokamak.Straight),
	}, nil
}

// CenterColumnFlatTopCircular is the circular shield variant with flat
// sections above and below the arc.
func CenterColumnFlatTopCircular(height, arcHeight, innerRadius, midRadius, outerRadius float64) (tokamak.Profile, error) {
	if err := checkColumnRadii("center column flat top circular", innerRadius, midRadius, outerRadius); err != nil {
		return nil, err
	}
	if arcHeight >= height {
		return nil, tokamak.Constraintf("center column flat top circular: arc height %g >= height %g", arcHeight, height)
	}
	return flatTopColumn(height, arcHeight, innerRadius, midRadius, outerRadius, tokamak.Circle), nil
}

func flatTopColumn(height, arcHeight, inner, mid, outer float64, arc tokamak.ConnType) tokamak.Profile {
	return tokamak.Profile{
		tokamak.Pt(inner, 0, tokamak.Straight),
		tokamak.Pt(inner, height/2, tokamak.Straight),
		tokamak.Pt(outer, height/2, tokamak.Straight),
		tokamak.Pt(outer, arcHeight/2, arc),
		tokamak.Pt(mid, 0, arc),
		tokamak.Pt(outer, -arcHeight/2, tokamak.Straight),
		tokamak.Pt(outer, -height/2, tokamak.Straight),
		tokamak.Pt(inner, -height/2, tokamak.Straight),
	}
}

// CenterColumnPlasmaConforming returns a center column shield whose outer
// face follows the inboard side of the given plasma boundary, held off by
// midOffset at the equator and edgeOffset at the plasma top and bottom.
func CenterColumnPlasmaConforming(b Boundary, height, innerRadius, midOffset, edgeOffset float64) (tokamak.Profile, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	high := b.HighPoint()
	low := b.LowPoint()
	innerEq := b.InnerEquatorialPoint()
	if height <= absf(high.Y)+absf(low.Y) {
		return nil, tokamak.Constraintf("plasma conforming column: height %g is smaller than plasma height %g", height, absf(high.Y)+absf(low.Y))
	}
	if innerRadius >= innerEq.X-midOffset {
		return nil, tokamak.Constraintf("plasma conforming column: inner radius %g reaches past the plasma inboard side", innerRadius)
	}
	return tokamak.Profile{
		tokamak.Pt(innerRadius, 0, tokamak.Straight),
		tokamak.Pt(innerRadius, height/2, tokamak.Straight),
		tokamak.Pt(high.X-edgeOffset, height/2, tokamak.Straight),
		tokamak.Pt(high.X-edgeOffset, high.Y, tokamak.Spline),
		tokamak.Pt(innerEq.X-midOffset, innerEq.Y, tokamak.Spline),
		tokamak.Pt(low.X-edgeOffset, low.Y, tokamak.Straight),
		tokamak.Pt(low.X-edgeOffset, -height/2, tokamak.Straight),
		tokamak.Pt(innerRadius, -height/2, tokamak.Straight),
		tokamak.Pt(innerRadius, 0, tokamak.Straight),
	}, nil
}

// CenteredRectangle returns a rectangle about center, straight connected.
func CenteredRectangle(center r2.Vec, width, height float64) tokamak.Profile {
	return tokamak.Profile{
		tokamak.Pt(center.X+width/2, center.Y+height/2, tokamak.Straight),
		tokamak.Pt(center.X+width/2, center.Y-height/2, tokamak.Straight),
		tokamak.Pt(center.X-width/2, center.Y-height/2, tokamak.Straight),
		tokamak.Pt(center.X-width/2, center.Y+height/2, tokamak.Straight),
		tokamak.Pt(center.X+width/2, center.Y+height/2, tokamak.Straight),
	}
}

// VacuumVessel returns the cross-section of a cylindrical vacuum vessel
// shell of constant thickness, open along the machine axis.
func VacuumVessel(height, innerRadius, thickness float64) (tokamak.Profile, error) {
	if thickness <= 0 {
		return nil, tokamak.Constraintf("vacuum vessel: thickness %g must be positive", thickness)
	}
	return tokamak.Profile{
		tokamak.Pt(0, height/2+thickness, tokamak.Straight),
		tokamak.Pt(innerRadius+thickness, height/2+thickness, tokamak.Straight),
		tokamak.Pt(innerRadius+thickness, -(height/2 + thickness), tokamak.Straight),
		tokamak.Pt(0, -(height/2 + thickness), tokamak.Straight),
		tokamak.Pt(0, -height/2, tokamak.Straight),
		tokamak.Pt(innerRadius, -height/2, tokamak.Straight),
		tokamak.Pt(innerRadius, height/2, tokamak.Straight),
		tokamak.Pt(0, height/2, tokamak.Straight),
	}, nil
}

// CuttingWedge returns the rectangular half-section revolved by assemblies
// to cut partial-sector reactors.
func CuttingWedge(height, radius float64) tokamak.Profile {
	return tokamak.Profile{
		tokamak.Pt(0, height/2, tokamak.Straight),
		tokamak.Pt(radius, height/2, tokamak.Straight),
		tokamak.Pt(radius, -height/2, tokamak.Straight),
		tokamak.Pt(0, -height/2, tokamak.Straight),
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
