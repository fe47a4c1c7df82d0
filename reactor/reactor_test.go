package reactor_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/comp"
	"github.com/fluxcad/tokamak/reactor"
	"gonum.org/v1/gonum/spatial/r2"
)

type fakeSolid struct{ extent float64 }

func (f fakeSolid) Extent() float64 { return f.extent }

type extentKernel struct{}

func runsExtent(runs []tokamak.Run) float64 {
	var max float64
	for _, run := range runs {
		for _, v := range run.Vertices {
			for _, c := range []float64{v.X, v.Y} {
				if c < 0 {
					c = -c
				}
				if c > max {
					max = c
				}
			}
		}
	}
	return max
}

func (extentKernel) Revolve(runs []tokamak.Run, radius float64, wp tokamak.Workplane, angle float64) (tokamak.Solid, error) {
	return fakeSolid{extent: runsExtent(runs) + radius}, nil
}

func (extentKernel) Extrude(runs []tokamak.Run, radius float64, wp tokamak.Workplane, distance float64) (tokamak.Solid, error) {
	return fakeSolid{extent: runsExtent(runs) + radius}, nil
}

func (extentKernel) Sweep(runs []tokamak.Run, radius float64, wp tokamak.Workplane, path []r2.Vec) (tokamak.Solid, error) {
	return fakeSolid{extent: runsExtent(runs) + radius}, nil
}

func (extentKernel) Boolean(a, b tokamak.Solid, op tokamak.Op) (tokamak.Solid, error) {
	ea, eb := a.Extent(), b.Extent()
	if op == tokamak.OpUnion && eb > ea {
		ea = eb
	}
	return fakeSolid{extent: ea}, nil
}

func (extentKernel) Rotate(s tokamak.Solid, wp tokamak.Workplane, angle float64) (tokamak.Solid, error) {
	return s, nil
}

func cylinder(name, stp string, outer float64) *tokamak.Shape {
	s := tokamak.NewRotation(tokamak.StaticProfile(tokamak.Profile{
		tokamak.Pt(0, 10, tokamak.Straight),
		tokamak.Pt(outer, 10, tokamak.Straight),
		tokamak.Pt(outer, -10, tokamak.Straight),
		tokamak.Pt(0, -10, tokamak.Straight),
	}))
	s.Name = name
	s.MaterialTag = name + "_mat"
	s.STPFilename = stp
	return s
}

func TestDuplicateFilenameRejected(t *testing.T) {
	a := reactor.NewAssembly(
		cylinder("a", "same.stp", 10),
		cylinder("b", "same.stp", 20),
	)
	err := a.CheckFilenames()
	var derr *tokamak.DuplicateOutputError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DuplicateOutputError, got %v", err)
	}
	if derr.Filename != "same.stp" {
		t.Errorf("error names %q, want same.stp", derr.Filename)
	}
	if _, merr := a.Manifest(reactor.ManifestOptions{}); merr == nil {
		t.Error("manifest must refuse duplicate filenames before any I/O")
	}
}

func TestGraveyardSizing(t *testing.T) {
	a := reactor.NewAssembly(cylinder("a", "a.stp", 20))
	g, err := a.Graveyard(extentKernel{})
	if err != nil {
		t.Fatal(err)
	}
	// Largest dimension 20 plus the default offset 100.
	if g.Length != 240 {
		t.Errorf("graveyard edge %g, want 240 for half-extent 120", g.Length)
	}
	if g.MaterialTag != reactor.GraveyardMaterialTag {
		t.Errorf("graveyard material %q", g.MaterialTag)
	}

	a.GraveyardOffset = 150
	bigger, err := a.Graveyard(extentKernel{})
	if err != nil {
		t.Fatal(err)
	}
	if bigger.Length <= g.Length {
		t.Error("larger offset must strictly grow the graveyard")
	}
}

func TestGraveyardTracksMembership(t *testing.T) {
	a := reactor.NewAssembly(cylinder("a", "a.stp", 20))
	before, err := a.Graveyard(extentKernel{})
	if err != nil {
		t.Fatal(err)
	}
	a.Add(cylinder("b", "b.stp", 500))
	after, err := a.Graveyard(extentKernel{})
	if err != nil {
		t.Fatal(err)
	}
	if after.Length <= before.Length {
		t.Error("adding a larger member must grow the graveyard")
	}
}

func TestManifestSkipsPlasma(t *testing.T) {
	plasma := cylinder("plasma", "plasma.stp", 10)
	plasma.MaterialTag = comp.PlasmaMaterialTag
	a := reactor.NewAssembly(plasma, cylinder("shield", "shield.stp", 20))

	entries, err := a.Manifest(reactor.ManifestOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Filename != "shield.stp" {
		t.Fatalf("manifest = %+v, want only the shield", entries)
	}

	entries, err = a.Manifest(reactor.ManifestOptions{IncludePlasma: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("with plasma included manifest has %d entries, want 2", len(entries))
	}
}

func TestManifestGraveyardRecord(t *testing.T) {
	a := reactor.NewAssembly(cylinder("shield", "shield.stp", 20))
	entries, err := a.Manifest(reactor.ManifestOptions{IncludeGraveyard: true})
	if err != nil {
		t.Fatal(err)
	}
	last := entries[len(entries)-1]
	if last.MaterialTag != reactor.GraveyardMaterialTag || last.Filename != "graveyard.stp" {
		t.Errorf("trailing record = %+v, want the graveyard", last)
	}
}

func TestManifestRequiresMetadata(t *testing.T) {
	noMat := cylinder("bare", "bare.stp", 10)
	noMat.MaterialTag = ""
	a := reactor.NewAssembly(noMat)
	if _, err := a.Manifest(reactor.ManifestOptions{}); err == nil {
		t.Error("member without material tag must fail")
	}

	noFile := cylinder("bare", "", 10)
	a = reactor.NewAssembly(noFile)
	if _, err := a.Manifest(reactor.ManifestOptions{}); err == nil {
		t.Error("member without output filename must fail")
	}
}

func TestWriteManifestAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "manifest.json")
	a := reactor.NewAssembly(cylinder("shield", "shield.stp", 20))
	if err := a.WriteManifest(path, reactor.ManifestOptions{IncludeGraveyard: true}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []reactor.ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("manifest on disk has %d entries, want 2", len(entries))
	}
	leftovers, err := filepath.Glob(filepath.Join(dir, "out", "*.tmp*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}
}

func studyReactor() reactor.CenterColumnStudyReactor {
	return reactor.CenterColumnStudyReactor{
		InnerBoreRadialThickness:               20,
		InboardTFLegRadialThickness:            50,
		CenterColumnShieldRadialThicknessMid:   50,
		CenterColumnShieldRadialThicknessUpper: 100,
		InboardFirstwallRadialThickness:        20,
		DivertorRadialThickness:                100,
		InnerPlasmaGapRadialThickness:          80,
		PlasmaRadialThickness:                  200,
		OuterPlasmaGapRadialThickness:          90,
		CenterColumnArcVerticalThickness:       520,
		Elongation:                             2.3,
		Triangularity:                          0.45,
		PlasmaGapVerticalThickness:             40,
		RotationAngle:                          180,
	}
}

func TestStudyReactorRadialBuild(t *testing.T) {
	r := studyReactor()
	b := r.Boundary()
	innerEq := 20.0 + 50 + 50 + 80
	if got := b.InnerEquatorialPoint().X; got != innerEq {
		t.Errorf("plasma inner equatorial radius %g, want %g", got, innerEq)
	}
	if got := b.OuterEquatorialPoint().X; got != innerEq+200 {
		t.Errorf("plasma outer equatorial radius %g, want %g", got, innerEq+200)
	}
	if b.Elongation != 2.3 || b.Triangularity != 0.45 {
		t.Error("shaping parameters must pass through to the boundary")
	}
}

func TestStudyReactorBuild(t *testing.T) {
	a, err := studyReactor().Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Members) != 6 {
		t.Fatalf("assembly has %d members, want 6", len(a.Members))
	}
	for _, m := range a.Members {
		if m.RotationAngle != 180 {
			t.Errorf("member %q rotation angle %g, want 180", m.Name, m.RotationAngle)
		}
	}
	if err := a.CheckFilenames(); err != nil {
		t.Fatal(err)
	}
	// The blanket carries the column cutter and the divertor as cuts.
	var blanket *tokamak.Shape
	for _, m := range a.Members {
		if m.Name == "blanket" {
			blanket = m
		}
	}
	if blanket == nil {
		t.Fatal("assembly has no blanket member")
	}
	if len(blanket.Cut) != 2 {
		t.Errorf("blanket has %d cut operands, want column cutter and divertor", len(blanket.Cut))
	}
}

func TestStudyReactorThicknessPropagates(t *testing.T) {
	base := studyReactor().Boundary()
	wider := studyReactor()
	wider.InboardTFLegRadialThickness += 30
	moved := wider.Boundary()
	if moved.InnerEquatorialPoint().X != base.InnerEquatorialPoint().X+30 {
		t.Error("thickening the tf leg must push the plasma outward")
	}
}

func TestStudyReactorRotationAngleRange(t *testing.T) {
	r := studyReactor()
	r.RotationAngle = 0
	if _, err := r.Build(); err == nil {
		t.Error("zero rotation angle must fail")
	}
}

func TestStudyReactorManifestBuilds(t *testing.T) {
	a, err := studyReactor().Build()
	if err != nil {
		t.Fatal(err)
	}
	entries, err := a.Manifest(reactor.ManifestOptions{IncludeGraveyard: true})
	if err != nil {
		t.Fatal(err)
	}
	// Plasma excluded, graveyard appended: 5 structural members + 1.
	if len(entries) != 6 {
		t.Fatalf("manifest has %d entries, want 6", len(entries))
	}
	for _, e := range entries[:5] {
		if e.MaterialTag == comp.PlasmaMaterialTag {
			t.Error("plasma must not appear in the manifest by default")
		}
	}
}
