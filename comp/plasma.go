package comp

import (
	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/profile"
)

// PlasmaMaterialTag marks plasma members so assemblies can skip them when
// writing simulation manifests.
const PlasmaMaterialTag = "DT_plasma"

// Plasma is the revolved plasma boundary volume.
type Plasma struct {
	*tokamak.Shape
	Boundary profile.Boundary
}

// NewPlasma returns the plasma volume for the given boundary.
func NewPlasma(b profile.Boundary) *Plasma {
	p := &Plasma{Boundary: b}
	p.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return p.Boundary.Points()
	})
	named(p.Shape, "plasma", PlasmaMaterialTag, "plasma")
	p.Color = [4]float64{0.94, 0.01, 0.99, 1}
	return p
}
