package comp

import (
	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/profile"
	"gonum.org/v1/gonum/spatial/r2"
)

// PoloidalFieldCoil is one rectangular poloidal field coil ring.
type PoloidalFieldCoil struct {
	*tokamak.Shape
	Center r2.Vec
	Width  float64
	Height float64
}

// NewPoloidalFieldCoil returns a poloidal field coil centered at center in
// the XZ plane.
func NewPoloidalFieldCoil(center r2.Vec, width, height float64) *PoloidalFieldCoil {
	c := &PoloidalFieldCoil{Center: center, Width: width, Height: height}
	c.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.PoloidalFieldCoil(c.Center, c.Width, c.Height)
	})
	named(c.Shape, "pf_coil", "pf_coil_mat", "PoloidalFieldCoil")
	return c
}

// PoloidalFieldCoilCase is the constant thickness casing around one
// poloidal field coil. The coil volume is cut from the casing.
type PoloidalFieldCoilCase struct {
	*tokamak.Shape
	Coil      *PoloidalFieldCoil
	Thickness float64
}

// NewPoloidalFieldCoilCase returns a casing wrapped around coil.
func NewPoloidalFieldCoilCase(coil *PoloidalFieldCoil, thickness float64) *PoloidalFieldCoilCase {
	c := &PoloidalFieldCoilCase{Coil: coil, Thickness: thickness}
	c.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.PoloidalFieldCoilCase(c.Coil.Center, c.Coil.Width, c.Coil.Height, c.Thickness)
	})
	c.Shape.Cut = []*tokamak.Shape{coil.Shape}
	named(c.Shape, "pf_coil_case", "pf_coil_case_mat", "PoloidalFieldCoilCase")
	return c
}

// PoloidalFieldCoilSet is a group of poloidal field coils built as one
// member: the first coil unioned with the rest.
type PoloidalFieldCoilSet struct {
	*tokamak.Shape
	Coils []*PoloidalFieldCoil
}

// NewPoloidalFieldCoilSet returns a coil set. The three slices pair up per
// coil and must have equal lengths.
func NewPoloidalFieldCoilSet(centers []r2.Vec, widths, heights []float64) (*PoloidalFieldCoilSet, error) {
	if len(centers) != len(widths) || len(widths) != len(heights) {
		return nil, tokamak.Constraintf("pf coil set: got %d centers, %d widths, %d heights", len(centers), len(widths), len(heights))
	}
	if len(centers) == 0 {
		return nil, tokamak.Constraintf("pf coil set: needs at least one coil")
	}
	set := &PoloidalFieldCoilSet{}
	for i := range centers {
		set.Coils = append(set.Coils, NewPoloidalFieldCoil(centers[i], widths[i], heights[i]))
	}
	set.Shape = set.Coils[0].Shape
	for _, coil := range set.Coils[1:] {
		set.Shape.Union = append(set.Shape.Union, coil.Shape)
	}
	named(set.Shape, "pf_coil", "pf_coil_mat", "PoloidalFieldCoilSet")
	return set, nil
}

// ToroidalFieldCoilRectangle is a rectangular toroidal field coil extruded
// through the XZ plane, replicated around the machine.
type ToroidalFieldCoilRectangle struct {
	*tokamak.Shape
	HorizontalStart r2.Vec
	VerticalMid     r2.Vec
	Thickness       float64
}

// NewToroidalFieldCoilRectangle returns coils rectangular toroidal field
// coils of the given extrusion distance, equally spaced around the machine.
// The inner leg closing the loop across the bore is unioned in.
func NewToroidalFieldCoilRectangle(horizontalStart, verticalMid r2.Vec, thickness, distance float64, coils int) (*ToroidalFieldCoilRectangle, error) {
	angles, err := profile.AzimuthAngles(coils, 0, 0)
	if err != nil {
		return nil, err
	}
	c := &ToroidalFieldCoilRectangle{HorizontalStart: horizontalStart, VerticalMid: verticalMid, Thickness: thickness}
	c.Shape = tokamak.NewExtrusion(func() (tokamak.Profile, error) {
		return profile.ToroidalFieldCoilRectangle(c.HorizontalStart, c.VerticalMid, c.Thickness)
	}, distance)
	innerLeg := tokamak.NewExtrusion(func() (tokamak.Profile, error) {
		return profile.ToroidalFieldCoilInnerLeg(c.HorizontalStart, c.Thickness), nil
	}, distance)
	innerLeg.Name = "tf_coil_inner_leg"
	c.Shape.Union = []*tokamak.Shape{innerLeg}
	c.Shape.AzimuthPlacementAngles = angles
	named(c.Shape, "tf_coil", "outer_tf_coil_mat", "ToroidalFieldCoilRectangle")
	return c, nil
}

// ToroidalFieldCoilCoatHanger is a coat hanger shaped toroidal field coil
// extruded through the XZ plane, replicated around the machine.
type ToroidalFieldCoilCoatHanger struct {
	*tokamak.Shape
	HorizontalStart  r2.Vec
	HorizontalLength float64
	VerticalMid      r2.Vec
	VerticalLength   float64
	Thickness        float64
}

// NewToroidalFieldCoilCoatHanger returns coils coat hanger toroidal field
// coils with their inner legs unioned in.
func NewToroidalFieldCoilCoatHanger(horizontalStart r2.Vec, horizontalLength float64, verticalMid r2.Vec, verticalLength, thickness, distance float64, coils int) (*ToroidalFieldCoilCoatHanger, error) {
	angles, err := profile.AzimuthAngles(coils, 0, 0)
	if err != nil {
		return nil, err
	}
	c := &ToroidalFieldCoilCoatHanger{
		HorizontalStart:  horizontalStart,
		HorizontalLength: horizontalLength,
		VerticalMid:      verticalMid,
		VerticalLength:   verticalLength,
		Thickness:        thickness,
	}
	c.Shape = tokamak.NewExtrusion(func() (tokamak.Profile, error) {
		return profile.ToroidalFieldCoilCoatHanger(c.HorizontalStart, c.HorizontalLength, c.VerticalMid, c.VerticalLength, c.Thickness)
	}, distance)
	innerLeg := tokamak.NewExtrusion(func() (tokamak.Profile, error) {
		return profile.ToroidalFieldCoilInnerLeg(c.HorizontalStart, c.Thickness), nil
	}, distance)
	innerLeg.Name = "tf_coil_inner_leg"
	c.Shape.Union = []*tokamak.Shape{innerLeg}
	c.Shape.AzimuthPlacementAngles = angles
	named(c.Shape, "tf_coil", "outer_tf_coil_mat", "ToroidalFieldCoilCoatHanger")
	return c, nil
}

// InnerTFCoilsFlat are the inboard toroidal field coil legs with flat
// faces, extruded along the machine axis in the XY plane.
type InnerTFCoilsFlat struct {
	*tokamak.Shape
	Height      float64
	InnerRadius float64
	OuterRadius float64
	Gap         float64
	CoilCount   int
}

// NewInnerTFCoilsFlat returns coils inboard coil legs separated by constant
// gaps, starting at startAngle degrees.
func NewInnerTFCoilsFlat(height, innerRadius, outerRadius, gap float64, coils int, startAngle float64) (*InnerTFCoilsFlat, error) {
	angles, err := profile.AzimuthAngles(coils, startAngle, 0)
	if err != nil {
		return nil, err
	}
	c := &InnerTFCoilsFlat{Height: height, InnerRadius: innerRadius, OuterRadius: outerRadius, Gap: gap, CoilCount: coils}
	c.Shape = tokamak.NewExtrusion(func() (tokamak.Profile, error) {
		return profile.InnerTFCoilsFlat(c.InnerRadius, c.OuterRadius, c.Gap, c.CoilCount)
	}, height)
	c.Shape.Workplane = tokamak.PlaneXY
	c.Shape.AzimuthPlacementAngles = angles
	named(c.Shape, "inner_tf_coil", "inner_tf_coil_mat", "InnerTfCoilsFlat")
	return c, nil
}
