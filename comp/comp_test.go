package comp_test

import (
	"testing"

	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/comp"
	"github.com/fluxcad/tokamak/profile"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestComponentDefaults(t *testing.T) {
	for _, tc := range []struct {
		shape    *tokamak.Shape
		material string
		stp      string
	}{
		{comp.NewCenterColumnShieldCylinder(600, 100, 200).Shape, "center_column_shield_mat", "CenterColumnShieldCylinder.stp"},
		{comp.NewPlasma(profile.DefaultBoundary()).Shape, "DT_plasma", "plasma.stp"},
		{comp.NewVacuumVessel(600, 400, 20).Shape, "vacuum_vessel_mat", "VacuumVessel.stp"},
		{comp.NewPoloidalFieldCoil(r2.Vec{X: 500, Y: 300}, 60, 60).Shape, "pf_coil_mat", "PoloidalFieldCoil.stp"},
		{comp.NewHollowCube(100, 10).Shape, "hollow_cube_mat", "HollowCube.stp"},
	} {
		if tc.shape.MaterialTag != tc.material {
			t.Errorf("%s: material tag %q, want %q", tc.shape.Name, tc.shape.MaterialTag, tc.material)
		}
		if tc.shape.STPFilename != tc.stp {
			t.Errorf("%s: stp filename %q, want %q", tc.shape.Name, tc.shape.STPFilename, tc.stp)
		}
		if _, err := tc.shape.Profile(); err != nil {
			t.Errorf("%s: profile: %v", tc.shape.Name, err)
		}
	}
}

func TestLiveParameterEdit(t *testing.T) {
	c := comp.NewCenterColumnShieldCylinder(600, 100, 200)
	before, err := c.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	c.OuterRadius = 250
	after, err := c.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	if string(before) == string(after) {
		t.Error("outer radius edit must change the fingerprint")
	}
	prof, err := c.Profile()
	if err != nil {
		t.Fatal(err)
	}
	maxX := 0.0
	for _, p := range prof {
		if p.X > maxX {
			maxX = p.X
		}
	}
	if maxX != 250 {
		t.Errorf("profile outer radius %g after edit, want 250", maxX)
	}
}

func TestBlanketDCarriesCavityCut(t *testing.T) {
	b := comp.NewBlanketConstantThicknessD(700, 80, 300)
	if len(b.Cut) != 1 {
		t.Fatalf("D blanket should cut exactly its cavity, got %d operands", len(b.Cut))
	}
	if _, err := b.Cut[0].Profile(); err != nil {
		t.Fatal(err)
	}
}

func TestPoloidalFieldCoilSetValidation(t *testing.T) {
	_, err := comp.NewPoloidalFieldCoilSet(
		[]r2.Vec{{X: 500, Y: 300}},
		[]float64{60, 70},
		[]float64{60},
	)
	if err == nil {
		t.Fatal("mismatched slice lengths must fail")
	}
	set, err := comp.NewPoloidalFieldCoilSet(
		[]r2.Vec{{X: 500, Y: 300}, {X: 550, Y: -300}, {X: 620, Y: 0}},
		[]float64{60, 60, 40},
		[]float64{60, 60, 80},
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Coils) != 3 {
		t.Fatalf("set has %d coils, want 3", len(set.Coils))
	}
	if len(set.Shape.Union) != 2 {
		t.Errorf("primary coil should union the other 2, got %d", len(set.Shape.Union))
	}
}

func TestPoloidalFieldCoilCaseCutsCoil(t *testing.T) {
	coil := comp.NewPoloidalFieldCoil(r2.Vec{X: 500, Y: 300}, 60, 60)
	c := comp.NewPoloidalFieldCoilCase(coil, 15)
	if len(c.Cut) != 1 || c.Cut[0] != coil.Shape {
		t.Error("case must cut the coil it wraps")
	}
	prof, err := c.Profile()
	if err != nil {
		t.Fatal(err)
	}
	maxX := 0.0
	for _, p := range prof {
		if p.X > maxX {
			maxX = p.X
		}
	}
	if want := 500.0 + 30 + 15; maxX != want {
		t.Errorf("case outer edge at %g, want %g", maxX, want)
	}
}

func TestToroidalFieldCoilPlacement(t *testing.T) {
	c, err := comp.NewToroidalFieldCoilRectangle(r2.Vec{X: 100, Y: 300}, r2.Vec{X: 600}, 50, 40, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.AzimuthPlacementAngles) != 8 {
		t.Fatalf("8 coils need 8 placement angles, got %d", len(c.AzimuthPlacementAngles))
	}
	if c.AzimuthPlacementAngles[1] != 45 {
		t.Errorf("second coil at %g degrees, want 45", c.AzimuthPlacementAngles[1])
	}
	if len(c.Union) != 1 {
		t.Error("rectangle coil should union its inner leg")
	}
	if c.Distance() != 40 {
		t.Errorf("extrusion distance %g, want 40", c.Distance())
	}
}

func TestCuttingWedgeForShape(t *testing.T) {
	full := comp.NewCenterColumnShieldCylinder(600, 100, 200)
	if _, err := comp.NewCuttingWedgeForShape(full.Shape); err == nil {
		t.Error("full revolution target must fail")
	}
	partial := comp.NewCenterColumnShieldCylinder(600, 100, 200)
	partial.RotationAngle = 90
	w, err := comp.NewCuttingWedgeForShape(partial.Shape)
	if err != nil {
		t.Fatal(err)
	}
	if w.RotationAngle != 270 {
		t.Errorf("wedge spans %g degrees, want 270", w.RotationAngle)
	}
	prof, err := w.Profile()
	if err != nil {
		t.Fatal(err)
	}
	// The wedge must enclose the target with margin.
	if prof.Extent() < 600 {
		t.Errorf("wedge extent %g does not enclose the target", prof.Extent())
	}
}

func TestRotatedPortCutterValidation(t *testing.T) {
	if _, err := comp.NewRotatedPortCutter(r2.Vec{X: 450}, 200, 0, 3000, 10); err == nil {
		t.Error("coverage angle over 180 must fail")
	}
	p, err := comp.NewRotatedPortCutter(r2.Vec{X: 450}, 20, 0, 3000, 10)
	if err != nil {
		t.Fatal(err)
	}
	prof, err := p.Profile()
	if err != nil {
		t.Fatal(err)
	}
	if len(prof) != 3 {
		t.Fatalf("port cutter profile has %d points, want 3", len(prof))
	}
	if prof[0].X != 450 || prof[0].Z != 0 {
		t.Errorf("first point must be the pivot center, got (%g, %g)", prof[0].X, prof[0].Z)
	}
	if p.RotationAngle != 10 {
		t.Errorf("azimuthal width %g, want 10", p.RotationAngle)
	}
}

func TestCoolantChannelRing(t *testing.T) {
	if _, err := comp.NewCoolantChannelRingStraight(300, 40, 100, 20); err == nil {
		t.Error("channels overlapping on the ring must fail")
	}
	c, err := comp.NewCoolantChannelRingStraight(300, 5, 100, 12)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.AzimuthPlacementAngles) != 12 {
		t.Fatalf("12 channels need 12 angles, got %d", len(c.AzimuthPlacementAngles))
	}
	prof, err := c.Profile()
	if err != nil {
		t.Fatal(err)
	}
	if len(prof) != 1 {
		t.Error("channel section is a single point with a circular radius")
	}
	if c.Workplane != tokamak.PlaneXY {
		t.Errorf("channels extrude along the machine axis, workplane %q", c.Workplane)
	}
}

func TestHollowCubeDistances(t *testing.T) {
	h := comp.NewHollowCube(100, 10)
	if h.Distance() != 110 {
		t.Errorf("outer extrusion depth %g, want 110", h.Distance())
	}
	if h.Cut[0].Distance() != 100 {
		t.Errorf("inner extrusion depth %g, want 100", h.Cut[0].Distance())
	}
	h.SetLength(200)
	if h.Distance() != 210 || h.Cut[0].Distance() != 200 {
		t.Error("SetLength must keep extrusion depths matched")
	}
}
