package comp

import (
	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/profile"
)

// CenterColumnShieldCylinder is a center column shield of constant
// thickness.
type CenterColumnShieldCylinder struct {
	*tokamak.Shape
	Height      float64
	InnerRadius float64
	OuterRadius float64
}

// NewCenterColumnShieldCylinder returns a cylindrical center column shield.
func NewCenterColumnShieldCylinder(height, innerRadius, outerRadius float64) *CenterColumnShieldCylinder {
	c := &CenterColumnShieldCylinder{Height: height, InnerRadius: innerRadius, OuterRadius: outerRadius}
	c.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.CenterColumnCylinder(c.Height, c.InnerRadius, c.OuterRadius)
	})
	named(c.Shape, "center_column_shield", "center_column_shield_mat", "CenterColumnShieldCylinder")
	return c
}

// CenterColumnShieldHyperbola is a center column shield with a hyperbolic
// outer face waisted at the midplane.
type CenterColumnShieldHyperbola struct {
	*tokamak.Shape
	Height      float64
	InnerRadius float64
	MidRadius   float64
	OuterRadius float64
}

// NewCenterColumnShieldHyperbola returns a hyperbolic center column shield.
func NewCenterColumnShieldHyperbola(height, innerRadius, midRadius, outerRadius float64) *CenterColumnShieldHyperbola {
	c := &CenterColumnShieldHyperbola{Height: height, InnerRadius: innerRadius, MidRadius: midRadius, OuterRadius: outerRadius}
	c.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.CenterColumnHyperbola(c.Height, c.InnerRadius, c.MidRadius, c.OuterRadius)
	})
	named(c.Shape, "center_column_shield", "center_column_shield_mat", "CenterColumnShieldHyperbola")
	return c
}

// CenterColumnShieldFlatTopHyperbola limits the hyperbolic outer face to a
// central arc with flat sections above and below.
type CenterColumnShieldFlatTopHyperbola struct {
	*tokamak.Shape
	Height      float64
	ArcHeight   float64
	InnerRadius float64
	MidRadius   float64
	OuterRadius float64
}

// NewCenterColumnShieldFlatTopHyperbola returns a flat topped hyperbolic
// center column shield.
func NewCenterColumnShieldFlatTopHyperbola(height, arcHeight, innerRadius, midRadius, outerRadius float64) *CenterColumnShieldFlatTopHyperbola {
	c := &CenterColumnShieldFlatTopHyperbola{Height: height, ArcHeight: arcHeight, InnerRadius: innerRadius, MidRadius: midRadius, OuterRadius: outerRadius}
	c.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.CenterColumnFlatTopHyperbola(c.Height, c.ArcHeight, c.InnerRadius, c.MidRadius, c.OuterRadius)
	})
	named(c.Shape, "center_column_shield", "center_column_shield_mat", "CenterColumnShieldFlatTopHyperbola")
	return c
}

// CenterColumnShieldCircular is a center column shield whose outer face is
// a circular arc.
type CenterColumnShieldCircular struct {
	*tokamak.Shape
	Height      float64
	InnerRadius float64
	MidRadius   float64
	OuterRadius float64
}

// NewCenterColumnShieldCircular returns a circular arc center column shield.
func NewCenterColumnShieldCircular(height, innerRadius, midRadius, outerRadius float64) *CenterColumnShieldCircular {
	c := &CenterColumnShieldCircular{Height: height, InnerRadius: innerRadius, MidRadius: midRadius, OuterRadius: outerRadius}
	c.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.CenterColumnCircular(c.Height, c.InnerRadius, c.MidRadius, c.OuterRadius)
	})
	named(c.Shape, "center_column_shield", "center_column_shield_mat", "CenterColumnShieldCircular")
	return c
}

// CenterColumnShieldFlatTopCircular limits the circular outer face to a
// central arc with flat sections above and below.
type CenterColumnShieldFlatTopCircular struct {
	*tokamak.Shape
	Height      float64
	ArcHeight   float64
	InnerRadius float64
	MidRadius   float64
	OuterRadius float64
}

// NewCenterColumnShieldFlatTopCircular returns a flat topped circular arc
// center column shield.
func NewCenterColumnShieldFlatTopCircular(height, arcHeight, innerRadius, midRadius, outerRadius float64) *CenterColumnShieldFlatTopCircular {
	c := &CenterColumnShieldFlatTopCircular{Height: height, ArcHeight: arcHeight, InnerRadius: innerRadius, MidRadius: midRadius, OuterRadius: outerRadius}
	c.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.CenterColumnFlatTopCircular(c.Height, c.ArcHeight, c.InnerRadius, c.MidRadius, c.OuterRadius)
	})
	named(c.Shape, "center_column_shield", "center_column_shield_mat", "CenterColumnShieldFlatTopCircular")
	return c
}

// InboardFirstwall is a constant thickness firstwall layer wrapped around
// the outer face of a flat topped hyperbolic center column shield. The
// shield volume itself is cut away, leaving only the layer.
type InboardFirstwall struct {
	*tokamak.Shape
	Shield    *CenterColumnShieldFlatTopHyperbola
	Thickness float64
}

// NewInboardFirstwall returns a firstwall conforming to shield.
func NewInboardFirstwall(shield *CenterColumnShieldFlatTopHyperbola, thickness float64) *InboardFirstwall {
	f := &InboardFirstwall{Shield: shield, Thickness: thickness}
	f.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.CenterColumnFlatTopHyperbola(
			f.Shield.Height,
			f.Shield.ArcHeight,
			f.Shield.InnerRadius,
			f.Shield.MidRadius+f.Thickness,
			f.Shield.OuterRadius+f.Thickness,
		)
	})
	f.Shape.Cut = []*tokamak.Shape{shield.Shape}
	named(f.Shape, "inboard_firstwall", "firstwall_mat", "InboardFirstwallFCCS")
	return f
}

// CenterColumnShieldPlasmaConforming is a center column shield whose outer
// face follows the inboard side of a plasma boundary.
type CenterColumnShieldPlasmaConforming struct {
	*tokamak.Shape
	Boundary    profile.Boundary
	Height      float64
	InnerRadius float64
	MidOffset   float64
	EdgeOffset  float64
}

// NewCenterColumnShieldPlasmaConforming returns a plasma conforming center
// column shield held off the given boundary.
func NewCenterColumnShieldPlasmaConforming(b profile.Boundary, height, innerRadius, midOffset, edgeOffset float64) *CenterColumnShieldPlasmaConforming {
	c := &CenterColumnShieldPlasmaConforming{Boundary: b, Height: height, InnerRadius: innerRadius, MidOffset: midOffset, EdgeOffset: edgeOffset}
	c.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.CenterColumnPlasmaConforming(c.Boundary, c.Height, c.InnerRadius, c.MidOffset, c.EdgeOffset)
	})
	named(c.Shape, "center_column_shield", "center_column_shield_mat", "CenterColumnShieldPlasmaConforming")
	return c
}
