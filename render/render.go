// Package render exports faceted reactor geometry: binary STL for meshing
// pipelines, shaded PNG previews, poloidal cross-section SVG plots and a
// small HTML build report. All writers create parent directories and
// replace files atomically.
package render

import (
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fluxcad/tokamak"
)

func vertex(t tokamak.Triangle, i int) r3.Vec {
	return r3.Vec{X: t[i][0], Y: t[i][1], Z: t[i][2]}
}

// normal returns the unit face normal from the vertex winding.
func normal(t tokamak.Triangle) r3.Vec {
	e1 := r3.Sub(vertex(t, 1), vertex(t, 0))
	e2 := r3.Sub(vertex(t, 2), vertex(t, 0))
	return r3.Unit(r3.Cross(e1, e2))
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
