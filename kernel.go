package tokamak

import "gonum.org/v1/gonum/spatial/r2"

// Solid is an opaque handle to a solid held by the geometry kernel.
type Solid interface {
	// Extent returns the largest absolute coordinate of the solid's
	// axis-aligned bounding box.
	Extent() float64
}

// Op selects a boolean composition operation.
type Op uint8

const (
	OpCut Op = iota
	OpIntersect
	OpUnion
)

func (op Op) String() string {
	switch op {
	case OpCut:
		return "cut"
	case OpIntersect:
		return "intersect"
	case OpUnion:
		return "union"
	}
	return "unknown"
}

// Kernel is the seam to the external geometry kernel. All calls are
// synchronous and CPU bound. Implementations report degenerate geometry as
// errors; callers wrap them in SolidConstructionError with the failing
// pipeline stage.
type Kernel interface {
	// Revolve builds a solid of revolution from the profile runs, sweeping
	// angle degrees (0 < angle <= 360) about the revolution axis of wp.
	// With radius > 0 the runs hold a single vertex and the cross-section
	// is the circle of that radius centered on it.
	Revolve(runs []Run, radius float64, wp Workplane, angle float64) (Solid, error)
	// Extrude builds a prism by extruding the profile runs a distance
	// normal to the working plane, symmetric about it.
	Extrude(runs []Run, radius float64, wp Workplane, distance float64) (Solid, error)
	// Sweep builds a solid by sweeping the cross-section along the path
	// drawn in the working plane.
	Sweep(runs []Run, radius float64, wp Workplane, path []r2.Vec) (Solid, error)
	// Boolean composes two solids.
	Boolean(a, b Solid, op Op) (Solid, error)
	// Rotate rotates a solid about the machine axis by angle degrees.
	// Used for azimuthal replication and wedge placement.
	Rotate(s Solid, wp Workplane, angle float64) (Solid, error)
}

// Measurer is implemented by kernels able to report solid volumes.
// Volumes are approximate to within the kernel's faceting tolerance.
type Measurer interface {
	Volume(s Solid) (float64, error)
}

// Triangle is one face of a faceted solid, in kernel coordinates.
type Triangle [3][3]float64

// Mesher is implemented by kernels able to facet a solid into triangles
// for geometry export.
type Mesher interface {
	Mesh(s Solid) ([]Triangle, error)
}
