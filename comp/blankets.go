package comp

import (
	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/profile"
)

// BlanketFP is a blanket whose inner face follows a plasma flux surface.
type BlanketFP struct {
	*tokamak.Shape
	Params profile.BlanketFP
	// DroppedPoints counts offset points discarded at non positive radius
	// during the last profile read.
	DroppedPoints int
}

// NewBlanketFP returns a flux surface following blanket.
func NewBlanketFP(params profile.BlanketFP) *BlanketFP {
	b := &BlanketFP{Params: params}
	b.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		prof, dropped, err := b.Params.Points()
		b.DroppedPoints = dropped
		return prof, err
	})
	named(b.Shape, "blanket", "blanket_mat", "BlanketFP")
	return b
}

// BlanketConstantThicknessD is a D shaped blanket shell of constant
// thickness. The shell is hollowed by cutting a matching inner cavity, an
// approximation that does not follow the plasma curve.
type BlanketConstantThicknessD struct {
	*tokamak.Shape
	Height      float64
	Thickness   float64
	MinorRadius float64
}

// NewBlanketConstantThicknessD returns a D shaped blanket shell.
func NewBlanketConstantThicknessD(height, thickness, minorRadius float64) *BlanketConstantThicknessD {
	b := &BlanketConstantThicknessD{Height: height, Thickness: thickness, MinorRadius: minorRadius}
	b.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.BlanketD(b.Height, b.Thickness, b.MinorRadius)
	})
	cavity := tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.BlanketDCavity(b.Height, b.Thickness, b.MinorRadius)
	})
	cavity.Name = "blanket_cavity"
	b.Shape.Cut = []*tokamak.Shape{cavity}
	named(b.Shape, "blanket", "blanket_mat", "BlanketConstantThicknessD")
	return b
}

// DivertorBlock is a divertor whose front face arcs along the plasma edge.
type DivertorBlock struct {
	*tokamak.Shape
	Params profile.Divertor
}

// NewDivertorBlock returns a divertor block fitted to the given plasma.
func NewDivertorBlock(params profile.Divertor) *DivertorBlock {
	d := &DivertorBlock{Params: params}
	d.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return d.Params.Points()
	})
	named(d.Shape, "divertor", "divertor_mat", "DivertorBlock")
	return d
}

// VacuumVessel is a cylindrical vacuum vessel shell.
type VacuumVessel struct {
	*tokamak.Shape
	Height      float64
	InnerRadius float64
	Thickness   float64
}

// NewVacuumVessel returns a constant thickness vacuum vessel.
func NewVacuumVessel(height, innerRadius, thickness float64) *VacuumVessel {
	v := &VacuumVessel{Height: height, InnerRadius: innerRadius, Thickness: thickness}
	v.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.VacuumVessel(v.Height, v.InnerRadius, v.Thickness)
	})
	named(v.Shape, "vacuum_vessel", "vacuum_vessel_mat", "VacuumVessel")
	return v
}
