package tokamak

import (
	"bytes"

	"gonum.org/v1/gonum/spatial/r2"
)

type buildKind string

const (
	kindRotate  buildKind = "rotate"
	kindExtrude buildKind = "extrude"
	kindSweep   buildKind = "sweep"
)

// ProfileFunc computes a profile from the current state of its owning
// component. It is called on every profile read so that the profile always
// reflects live parameter edits; it must stay cheap and never call the
// geometry kernel.
type ProfileFunc func() (Profile, error)

// StaticProfile returns a ProfileFunc serving a fixed point list.
func StaticProfile(p Profile) ProfileFunc {
	return func() (Profile, error) { return p, nil }
}

// Shape owns one profile and the declared operations that turn it into a
// solid. All exported fields may be mutated freely; the cached solid is
// rebuilt on the next read after any fingerprinted attribute changes.
//
// Shapes referenced in Cut, Intersect or Union are operands by reference: a
// shape may serve as operand to several owners and is never mutated by them.
// Concurrent access to one Shape must be serialized by the caller.
type Shape struct {
	Name        string
	Color       [4]float64
	MaterialTag string
	STPFilename string
	STLFilename string
	// TetMesh is an optional mesh refinement directive copied verbatim
	// into the manifest.
	TetMesh string

	Workplane     Workplane
	RotationAngle float64
	// AzimuthPlacementAngles places the solid at each listed azimuth in
	// degrees. A single entry keeps one instance; multiple entries
	// replicate the base solid and union the replicas.
	AzimuthPlacementAngles []float64

	Cut       []*Shape
	Intersect []*Shape
	Union     []*Shape

	kind        buildKind
	distance    float64
	path        []r2.Vec
	radius      float64
	sectorStart float64

	profileFn ProfileFunc

	cachedSum   []byte
	cachedSolid Solid
	rebuilds    int
}

func newShape(kind buildKind, fn ProfileFunc) *Shape {
	return &Shape{
		Color:                  [4]float64{0.5, 0.5, 0.5, 1},
		Workplane:              PlaneXZ,
		RotationAngle:          360,
		AzimuthPlacementAngles: []float64{0},
		kind:                   kind,
		profileFn:              fn,
	}
}

// NewRotation returns a shape whose solid is the profile revolved about the
// vertical axis of its working plane.
func NewRotation(fn ProfileFunc) *Shape { return newShape(kindRotate, fn) }

// NewExtrusion returns a shape whose solid is the profile extruded the
// given distance normal to its working plane, symmetric about it.
func NewExtrusion(fn ProfileFunc, distance float64) *Shape {
	s := newShape(kindExtrude, fn)
	s.distance = distance
	return s
}

// NewSweep returns a shape whose solid is the profile swept along path.
func NewSweep(fn ProfileFunc, path []r2.Vec) *Shape {
	s := newShape(kindSweep, fn)
	s.path = path
	return s
}

// SetCircularSection declares a circular cross-section of the given radius
// centered on the profile's single point, bypassing run grouping.
func (s *Shape) SetCircularSection(radius float64) { s.radius = radius }

// SetSectorStart moves the azimuthal start of a partial revolution so the
// kept material spans [start, start+RotationAngle] degrees instead of
// starting at zero.
func (s *Shape) SetSectorStart(deg float64) { s.sectorStart = deg }

// Distance returns the extrusion distance of an extruded shape.
func (s *Shape) Distance() float64 { return s.distance }

// SetDistance sets the extrusion distance of an extruded shape.
func (s *Shape) SetDistance(d float64) { s.distance = d }

// Path returns the sweep path of a swept shape.
func (s *Shape) Path() []r2.Vec { return s.path }

// Profile recomputes and returns the shape's 2D boundary. The profile is a
// derived view of the component parameters, never stored state.
func (s *Shape) Profile() (Profile, error) {
	if s.profileFn == nil {
		return nil, Configf("shape %q has no profile source", s.Name)
	}
	return s.profileFn()
}

// Rebuilds returns how many times the solid has been reconstructed.
func (s *Shape) Rebuilds() int { return s.rebuilds }

// Solid returns the composed solid, rebuilding it through k only when the
// shape's fingerprint differs from the last build. The cache is updated
// atomically: on error the previously cached solid and fingerprint are kept.
func (s *Shape) Solid(k Kernel) (Solid, error) {
	sum, err := s.Fingerprint()
	if err != nil {
		return nil, err
	}
	if s.cachedSolid != nil && bytes.Equal(sum, s.cachedSum) {
		return s.cachedSolid, nil
	}
	solid, err := s.build(k)
	if err != nil {
		return nil, err
	}
	s.cachedSolid = solid
	s.cachedSum = sum
	s.rebuilds++
	return solid, nil
}

// LargestDimension returns the largest absolute bounding box coordinate of
// the shape's solid.
func (s *Shape) LargestDimension(k Kernel) (float64, error) {
	solid, err := s.Solid(k)
	if err != nil {
		return 0, err
	}
	return solid.Extent(), nil
}

func (s *Shape) constructionErr(stage Stage, err error) error {
	if cerr, ok := err.(*SolidConstructionError); ok {
		// Operand failures already carry their own stage and owner.
		return cerr
	}
	return &SolidConstructionError{Shape: s.Name, Stage: stage, Err: err}
}

// build runs the fixed composition pipeline: base solid, azimuthal
// replication, cuts, intersections, unions and finally the wedge cut that
// removes material outside a partial revolution angle.
func (s *Shape) build(k Kernel) (Solid, error) {
	if !s.Workplane.valid() {
		return nil, Configf("shape %q: workplane %q is not one of XZ, XY, YZ", s.Name, s.Workplane)
	}
	if s.RotationAngle <= 0 || s.RotationAngle > 360 {
		return nil, Configf("shape %q: rotation angle %g outside (0, 360]", s.Name, s.RotationAngle)
	}
	prof, err := s.Profile()
	if err != nil {
		return nil, err
	}
	runs := prof.Runs()
	if s.radius > 0 {
		if len(prof) == 0 {
			return nil, Constraintf("shape %q: circular section needs a center point", s.Name)
		}
		// Circular sections bypass run grouping; a single vertex run
		// carries the section center to the kernel.
		runs = []Run{{Conn: Circle, Vertices: []r2.Vec{prof[0].XZ()}}}
	} else if runs == nil {
		return nil, Constraintf("shape %q: profile needs at least 2 points or a circular section radius", s.Name)
	}

	solid, err := s.buildBase(k, runs)
	if err != nil {
		return nil, s.constructionErr(StageBase, err)
	}

	if solid, err = s.replicate(k, solid); err != nil {
		return nil, s.constructionErr(StageReplication, err)
	}

	for _, stage := range []struct {
		stage    Stage
		op       Op
		operands []*Shape
	}{
		{StageCut, OpCut, s.Cut},
		{StageIntersect, OpIntersect, s.Intersect},
		{StageUnion, OpUnion, s.Union},
	} {
		for _, operand := range stage.operands {
			other, err := operand.Solid(k)
			if err != nil {
				return nil, s.constructionErr(stage.stage, err)
			}
			solid, err = k.Boolean(solid, other, stage.op)
			if err != nil {
				return nil, s.constructionErr(stage.stage, err)
			}
		}
	}

	if s.RotationAngle < 360 {
		if solid, err = s.wedgeCut(k, solid); err != nil {
			return nil, s.constructionErr(StageWedge, err)
		}
	}
	return solid, nil
}

func (s *Shape) buildBase(k Kernel, runs []Run) (Solid, error) {
	switch s.kind {
	case kindRotate:
		// Partial revolutions are realized by the wedge stage so that
		// boolean operands always meet full solids of revolution.
		return k.Revolve(runs, s.radius, s.Workplane, 360)
	case kindExtrude:
		return k.Extrude(runs, s.radius, s.Workplane, s.distance)
	case kindSweep:
		return k.Sweep(runs, s.radius, s.Workplane, s.path)
	}
	return nil, Configf("shape %q: unknown build kind %q", s.Name, s.kind)
}

func (s *Shape) replicate(k Kernel, base Solid) (Solid, error) {
	angles := s.AzimuthPlacementAngles
	if len(angles) == 0 {
		angles = []float64{0}
	}
	solid := base
	var err error
	if angles[0] != 0 {
		if solid, err = k.Rotate(base, s.Workplane, angles[0]); err != nil {
			return nil, err
		}
	}
	for _, angle := range angles[1:] {
		replica := base
		if angle != 0 {
			if replica, err = k.Rotate(base, s.Workplane, angle); err != nil {
				return nil, err
			}
		}
		if solid, err = k.Boolean(solid, replica, OpUnion); err != nil {
			return nil, err
		}
	}
	return solid, nil
}

// wedgeCut removes the angular sector complementary to the declared
// rotation angle. The wedge is sized from the composed solid's bounding
// extent so deep extrusions and long sweep paths are fully enclosed.
func (s *Shape) wedgeCut(k Kernel, solid Solid) (Solid, error) {
	m := solid.Extent() * 1.5
	rect := Profile{
		Pt(0, m, Straight),
		Pt(m, m, Straight),
		Pt(m, -m, Straight),
		Pt(0, -m, Straight),
	}
	wedge, err := k.Revolve(rect.Runs(), 0, s.Workplane, 360-s.RotationAngle)
	if err != nil {
		return nil, err
	}
	// Rotate the wedge past the kept sector so material in
	// [sectorStart, sectorStart+angle] survives the cut.
	if wedge, err = k.Rotate(wedge, s.Workplane, s.sectorStart+s.RotationAngle); err != nil {
		return nil, err
	}
	return k.Boolean(solid, wedge, OpCut)
}
