// Package reactor assembles catalog components into whole machines: it
// checks cross-cutting consistency, sizes the bounding graveyard volume and
// emits the manifest consumed by downstream neutronics tooling.
package reactor

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/comp"
)

// DefaultGraveyardOffset is the standoff between the largest member
// dimension and the graveyard shell, in centimeters.
const DefaultGraveyardOffset = 100.0

// GraveyardMaterialTag is the fixed material tag of the manifest's
// graveyard record.
const GraveyardMaterialTag = "graveyard"

// Assembly is an ordered collection of shapes. Order matters for export
// numbering only, never for geometry.
type Assembly struct {
	Members []*tokamak.Shape
	// GraveyardOffset adds to the largest member dimension when sizing
	// the graveyard. Zero means DefaultGraveyardOffset.
	GraveyardOffset float64
}

// NewAssembly returns an assembly over members.
func NewAssembly(members ...*tokamak.Shape) *Assembly {
	return &Assembly{Members: members}
}

// Add appends members to the assembly.
func (a *Assembly) Add(members ...*tokamak.Shape) {
	a.Members = append(a.Members, members...)
}

// CheckFilenames verifies that declared output filenames are pairwise
// distinct across members. It runs before any file is written.
func (a *Assembly) CheckFilenames() error {
	seen := make(map[string]bool)
	for _, m := range a.Members {
		for _, name := range []string{m.STPFilename, m.STLFilename} {
			if name == "" {
				continue
			}
			if seen[name] {
				return &tokamak.DuplicateOutputError{Filename: name}
			}
			seen[name] = true
		}
	}
	return nil
}

// LargestDimension returns the maximum absolute bounding extent across all
// member solids.
func (a *Assembly) LargestDimension(k tokamak.Kernel) (float64, error) {
	largest := 0.0
	for _, m := range a.Members {
		d, err := m.LargestDimension(k)
		if err != nil {
			return 0, err
		}
		if d > largest {
			largest = d
		}
	}
	return largest, nil
}

// offset returns the effective graveyard offset.
func (a *Assembly) offset() float64 {
	if a.GraveyardOffset > 0 {
		return a.GraveyardOffset
	}
	return DefaultGraveyardOffset
}

// Graveyard returns a hollow cube shell enclosing every member with
// half-extent equal to the largest dimension plus the graveyard offset. It
// is recomputed from the current membership on every call.
func (a *Assembly) Graveyard(k tokamak.Kernel) (*comp.HollowCube, error) {
	largest, err := a.LargestDimension(k)
	if err != nil {
		return nil, err
	}
	half := largest + a.offset()
	g := comp.NewHollowCube(2*half, 0.1*2*half)
	g.Name = GraveyardMaterialTag
	g.MaterialTag = GraveyardMaterialTag
	g.STPFilename = "graveyard.stp"
	g.STLFilename = "graveyard.stl"
	return g, nil
}

// ManifestEntry is one geometry/material record consumed by the neutronics
// engine.
type ManifestEntry struct {
	Filename    string `json:"stp_filename"`
	MaterialTag string `json:"material_tag"`
	TetMesh     string `json:"tet_mesh,omitempty"`
}

// ManifestOptions select which members appear in the manifest.
type ManifestOptions struct {
	// IncludePlasma keeps plasma members. They are skipped by default
	// because their density is negligible for transport.
	IncludePlasma bool
	// IncludeGraveyard appends the trailing graveyard record.
	IncludeGraveyard bool
}

// Manifest returns one entry per member in insertion order. Members without
// a material tag or output filename fail with a ConfigurationError.
func (a *Assembly) Manifest(opts ManifestOptions) ([]ManifestEntry, error) {
	if err := a.CheckFilenames(); err != nil {
		return nil, err
	}
	var entries []ManifestEntry
	for _, m := range a.Members {
		if !opts.IncludePlasma && m.MaterialTag == comp.PlasmaMaterialTag {
			continue
		}
		if m.MaterialTag == "" {
			return nil, tokamak.Configf("member %q has no material tag for the manifest", m.Name)
		}
		if m.STPFilename == "" {
			return nil, tokamak.Configf("member %q has no output filename for the manifest", m.Name)
		}
		entries = append(entries, ManifestEntry{
			Filename:    m.STPFilename,
			MaterialTag: m.MaterialTag,
			TetMesh:     m.TetMesh,
		})
	}
	if opts.IncludeGraveyard {
		entries = append(entries, ManifestEntry{
			Filename:    "graveyard.stp",
			MaterialTag: GraveyardMaterialTag,
		})
	}
	return entries, nil
}

// WriteManifest encodes the manifest as JSON at path, creating parent
// directories and replacing the file atomically.
func (a *Assembly) WriteManifest(path string, opts ManifestOptions) error {
	entries, err := a.Manifest(opts)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// writeFileAtomic writes data to a temporary sibling of path and renames it
// into place so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
