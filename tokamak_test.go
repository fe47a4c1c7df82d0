package tokamak_test

import (
	"errors"
	"testing"

	"github.com/fluxcad/tokamak"
	"gonum.org/v1/gonum/spatial/r2"
)

type fakeSolid struct{ extent float64 }

func (f fakeSolid) Extent() float64 { return f.extent }

// countingKernel records every kernel call so tests can assert on rebuild
// behavior without real geometry.
type countingKernel struct {
	revolves, extrudes, sweeps int
	booleans, rotates          int
	lastRevolveExtent          float64
	failBoolean                error
}

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

func (k *countingKernel) Revolve(runs []tokamak.Run, radius float64, wp tokamak.Workplane, angle float64) (tokamak.Solid, error) {
	k.revolves++
	k.lastRevolveExtent = runsExtent(runs) + radius
	return fakeSolid{extent: k.lastRevolveExtent}, nil
}

func (k *countingKernel) Extrude(runs []tokamak.Run, radius float64, wp tokamak.Workplane, distance float64) (tokamak.Solid, error) {
	k.extrudes++
	extent := runsExtent(runs) + radius
	if half := distance / 2; half > extent {
		extent = half
	}
	return fakeSolid{extent: extent}, nil
}

func (k *countingKernel) Sweep(runs []tokamak.Run, radius float64, wp tokamak.Workplane, path []r2.Vec) (tokamak.Solid, error) {
	k.sweeps++
	return fakeSolid{extent: runsExtent(runs) + radius}, nil
}

func (k *countingKernel) Boolean(a, b tokamak.Solid, op tokamak.Op) (tokamak.Solid, error) {
	k.booleans++
	if k.failBoolean != nil {
		return nil, k.failBoolean
	}
	ea, eb := a.Extent(), b.Extent()
	if eb > ea {
		ea = eb
	}
	return fakeSolid{extent: ea}, nil
}

func (k *countingKernel) Rotate(s tokamak.Solid, wp tokamak.Workplane, angle float64) (tokamak.Solid, error) {
	k.rotates++
	return s, nil
}

func square(side float64) tokamak.ProfileFunc {
	return tokamak.StaticProfile(tokamak.Profile{
		tokamak.Pt(0, side, tokamak.Straight),
		tokamak.Pt(side, side, tokamak.Straight),
		tokamak.Pt(side, -side, tokamak.Straight),
		tokamak.Pt(0, -side, tokamak.Straight),
	})
}

func TestRunsGrouping(t *testing.T) {
	p := tokamak.Profile{
		tokamak.Pt(0, 1, tokamak.Straight),
		tokamak.Pt(1, 1, tokamak.Straight),
		tokamak.Pt(2, 0, tokamak.Spline),
		tokamak.Pt(1, -1, tokamak.Spline),
		tokamak.Pt(0, -1, tokamak.Straight),
	}
	runs := p.Runs()
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	if runs[0].Conn != tokamak.Straight || runs[1].Conn != tokamak.Spline || runs[2].Conn != tokamak.Straight {
		t.Errorf("run connection types: %v %v %v", runs[0].Conn, runs[1].Conn, runs[2].Conn)
	}
	// Consecutive runs share their boundary vertex.
	for i := 1; i < len(runs); i++ {
		prev := runs[i-1].Vertices[len(runs[i-1].Vertices)-1]
		if prev != runs[i].Vertices[0] {
			t.Errorf("runs %d and %d do not share a boundary vertex", i-1, i)
		}
	}
	// The profile is open, so its first point closes the last run.
	last := runs[2].Vertices[len(runs[2].Vertices)-1]
	if last != (r2.Vec{X: 0, Y: 1}) {
		t.Errorf("closure vertex %v, want the first profile point", last)
	}
}

func TestRunsClosingSegmentTag(t *testing.T) {
	// On an open profile the final point's tag governs the closing
	// segment back to the first point.
	p := tokamak.Profile{
		tokamak.Pt(0, 1, tokamak.Straight),
		tokamak.Pt(1, 0, tokamak.Straight),
		tokamak.Pt(0, -1, tokamak.Spline),
	}
	runs := p.Runs()
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want straight edges plus a spline closure", len(runs))
	}
	closing := runs[1]
	if closing.Conn != tokamak.Spline {
		t.Errorf("closing run is %v, want spline", closing.Conn)
	}
	want := []r2.Vec{{X: 0, Y: -1}, {X: 0, Y: 1}}
	if len(closing.Vertices) != 2 || closing.Vertices[0] != want[0] || closing.Vertices[1] != want[1] {
		t.Errorf("closing run vertices %v, want %v", closing.Vertices, want)
	}
}

func TestRunsClosedProfileFinalTagIrrelevant(t *testing.T) {
	// A closed profile's last point draws no segment, so its tag never
	// opens a run.
	p := tokamak.Profile{
		tokamak.Pt(0, 1, tokamak.Straight),
		tokamak.Pt(1, 0, tokamak.Straight),
		tokamak.Pt(0, -1, tokamak.Straight),
		tokamak.Pt(0, 1, tokamak.Circle),
	}
	runs := p.Runs()
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Conn != tokamak.Straight {
		t.Errorf("run is %v, want straight", runs[0].Conn)
	}
}

func TestRunsSinglePoint(t *testing.T) {
	p := tokamak.Profile{tokamak.Pt(5, 0, tokamak.Circle)}
	if runs := p.Runs(); runs != nil {
		t.Errorf("single point profile must bypass run grouping, got %v", runs)
	}
}

func TestSolidCachedAcrossReads(t *testing.T) {
	k := &countingKernel{}
	s := tokamak.NewRotation(square(10))
	if _, err := s.Solid(k); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Solid(k); err != nil {
		t.Fatal(err)
	}
	if k.revolves != 1 {
		t.Errorf("unchanged shape rebuilt: %d revolve calls, want 1", k.revolves)
	}
	if s.Rebuilds() != 1 {
		t.Errorf("rebuild count %d, want 1", s.Rebuilds())
	}
}

func TestAttributeEditTriggersRebuild(t *testing.T) {
	k := &countingKernel{}
	s := tokamak.NewRotation(square(10))
	if _, err := s.Solid(k); err != nil {
		t.Fatal(err)
	}
	s.MaterialTag = "steel"
	if _, err := s.Solid(k); err != nil {
		t.Fatal(err)
	}
	if s.Rebuilds() != 2 {
		t.Errorf("material edit must rebuild, got %d rebuilds", s.Rebuilds())
	}
}

func TestOperandEditInvalidatesOwner(t *testing.T) {
	k := &countingKernel{}
	operand := tokamak.NewRotation(square(5))
	owner := tokamak.NewRotation(square(10))
	owner.Cut = []*tokamak.Shape{operand}
	if _, err := owner.Solid(k); err != nil {
		t.Fatal(err)
	}
	operand.Name = "changed"
	if _, err := owner.Solid(k); err != nil {
		t.Fatal(err)
	}
	if owner.Rebuilds() != 2 {
		t.Errorf("operand mutation must invalidate the owner, got %d rebuilds", owner.Rebuilds())
	}
}

func TestSharedOperandBuiltOnce(t *testing.T) {
	k := &countingKernel{}
	operand := tokamak.NewRotation(square(5))
	a := tokamak.NewRotation(square(10))
	b := tokamak.NewRotation(square(20))
	a.Cut = []*tokamak.Shape{operand}
	b.Cut = []*tokamak.Shape{operand}
	if _, err := a.Solid(k); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Solid(k); err != nil {
		t.Fatal(err)
	}
	if operand.Rebuilds() != 1 {
		t.Errorf("shared operand rebuilt %d times, want 1", operand.Rebuilds())
	}
}

func TestPartialRevolutionWedge(t *testing.T) {
	k := &countingKernel{}
	s := tokamak.NewRotation(square(10))
	s.RotationAngle = 180
	if _, err := s.Solid(k); err != nil {
		t.Fatal(err)
	}
	// Base revolve plus the wedge revolve, one rotation placing the
	// wedge, one boolean cutting it.
	if k.revolves != 2 {
		t.Errorf("%d revolve calls, want 2", k.revolves)
	}
	if k.rotates != 1 {
		t.Errorf("%d rotate calls, want 1", k.rotates)
	}
	if k.booleans != 1 {
		t.Errorf("%d boolean calls, want 1", k.booleans)
	}
}

func TestWedgeSizedFromSolidExtent(t *testing.T) {
	k := &countingKernel{}
	s := tokamak.NewExtrusion(square(10), 100)
	s.RotationAngle = 180
	if _, err := s.Solid(k); err != nil {
		t.Fatal(err)
	}
	// Depth 100 dominates the profile extent 10, so the wedge must span
	// at least the half depth of 50 to clear the whole solid.
	if k.lastRevolveExtent < 50 {
		t.Errorf("wedge spans %g, want at least the solid half depth 50", k.lastRevolveExtent)
	}
}

func TestAzimuthalReplication(t *testing.T) {
	k := &countingKernel{}
	s := tokamak.NewExtrusion(square(10), 4)
	s.AzimuthPlacementAngles = []float64{0, 90, 180, 270}
	if _, err := s.Solid(k); err != nil {
		t.Fatal(err)
	}
	if k.extrudes != 1 {
		t.Errorf("base extruded %d times, want 1", k.extrudes)
	}
	if k.rotates != 3 {
		t.Errorf("%d rotate calls for 3 non-zero placements, want 3", k.rotates)
	}
	if k.booleans != 3 {
		t.Errorf("%d union calls, want 3", k.booleans)
	}
}

func TestRotationAngleRange(t *testing.T) {
	for _, angle := range []float64{0, -10, 361} {
		k := &countingKernel{}
		s := tokamak.NewRotation(square(10))
		s.RotationAngle = angle
		if _, err := s.Solid(k); err == nil {
			t.Errorf("rotation angle %g must fail", angle)
		}
	}
}

func TestBooleanFailureCarriesStage(t *testing.T) {
	k := &countingKernel{failBoolean: errors.New("kernel exploded")}
	operand := tokamak.NewRotation(square(5))
	s := tokamak.NewRotation(square(10))
	s.Name = "shield"
	s.Cut = []*tokamak.Shape{operand}
	_, err := s.Solid(k)
	if err == nil {
		t.Fatal("expected construction error")
	}
	var cerr *tokamak.SolidConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected SolidConstructionError, got %T", err)
	}
	if cerr.Shape != "shield" {
		t.Errorf("error names shape %q, want shield", cerr.Shape)
	}
	if cerr.Stage != tokamak.StageCut {
		t.Errorf("error stage %v, want cut", cerr.Stage)
	}
}

func TestFailedBuildKeepsNoStaleCache(t *testing.T) {
	k := &countingKernel{failBoolean: errors.New("kernel exploded")}
	operand := tokamak.NewRotation(square(5))
	s := tokamak.NewRotation(square(10))
	s.Cut = []*tokamak.Shape{operand}
	if _, err := s.Solid(k); err == nil {
		t.Fatal("expected construction error")
	}
	k.failBoolean = nil
	if _, err := s.Solid(k); err != nil {
		t.Fatalf("retry after kernel recovery: %v", err)
	}
	if s.Rebuilds() != 1 {
		t.Errorf("successful rebuilds = %d, want 1", s.Rebuilds())
	}
}

func TestLargestDimension(t *testing.T) {
	k := &countingKernel{}
	s := tokamak.NewRotation(square(42))
	d, err := s.LargestDimension(k)
	if err != nil {
		t.Fatal(err)
	}
	if d != 42 {
		t.Errorf("largest dimension %g, want 42", d)
	}
}

func TestCircularSectionBypassesRuns(t *testing.T) {
	k := &countingKernel{}
	s := tokamak.NewExtrusion(tokamak.StaticProfile(tokamak.Profile{
		tokamak.Pt(100, 0, tokamak.Circle),
	}), 30)
	s.SetCircularSection(5)
	if _, err := s.Solid(k); err != nil {
		t.Fatal(err)
	}
	if k.extrudes != 1 {
		t.Errorf("%d extrude calls, want 1", k.extrudes)
	}
}

func TestSinglePointWithoutRadiusFails(t *testing.T) {
	k := &countingKernel{}
	s := tokamak.NewRotation(tokamak.StaticProfile(tokamak.Profile{
		tokamak.Pt(100, 0, tokamak.Circle),
	}))
	_, err := s.Solid(k)
	if err == nil {
		t.Fatal("single point without a circular section radius must fail")
	}
	var gerr *tokamak.GeometryConstraintError
	if !errors.As(err, &gerr) {
		t.Errorf("expected GeometryConstraintError, got %T", err)
	}
}

func TestFingerprintStable(t *testing.T) {
	s := tokamak.NewRotation(square(10))
	a, err := s.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("fingerprint must be deterministic for unchanged state")
	}
}

func TestFingerprintFramesFloatLists(t *testing.T) {
	// The same float stream split differently between the placement
	// angle list and the sweep path must not collide.
	a := tokamak.NewSweep(square(10), []r2.Vec{{X: 30, Y: 40}})
	a.AzimuthPlacementAngles = []float64{10, 20}
	b := tokamak.NewSweep(square(10), nil)
	b.AzimuthPlacementAngles = []float64{10, 20, 30, 40}
	fa, err := a.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	fb, err := b.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	if string(fa) == string(fb) {
		t.Error("fingerprints collide across a list boundary")
	}
}

func TestFingerprintCycleSafe(t *testing.T) {
	a := tokamak.NewRotation(square(10))
	b := tokamak.NewRotation(square(5))
	a.Cut = []*tokamak.Shape{b}
	b.Cut = []*tokamak.Shape{a}
	if _, err := a.Fingerprint(); err != nil {
		t.Fatal(err)
	}
}
