// Package comp is the reactor component catalog. Each component pairs one
// profile routine with a default shape wiring: build kind, working plane,
// placement policy and export metadata. Components expose their parameters
// as plain fields; edits take effect on the next solid read because the
// profile is recomputed on demand.
package comp

import (
	"github.com/fluxcad/tokamak"
)

func named(s *tokamak.Shape, name, material, stem string) {
	s.Name = name
	s.MaterialTag = material
	s.STPFilename = stem + ".stp"
	s.STLFilename = stem + ".stl"
}
