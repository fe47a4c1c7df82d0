package tokamak

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/fluxcad/tokamak/internal/d2"
)

// Point is a profile vertex with the connection type drawn from it to the
// next vertex.
type Point struct {
	X, Z float64
	Conn ConnType
}

// XZ returns the point coordinates as an r2 vector.
func (p Point) XZ() r2.Vec { return r2.Vec{X: p.X, Y: p.Z} }

// Pt is shorthand for a profile point.
func Pt(x, z float64, conn ConnType) Point {
	return Point{X: x, Z: z, Conn: conn}
}

// Profile is an ordered 2D boundary. Traversal starts at the first point and
// the boundary closes back onto it.
type Profile []Point

// Run is a maximal sequence of consecutive profile points sharing one
// connection type, in traversal order. Consecutive runs share their boundary
// point: the last vertex of a run equals the first vertex of the next.
type Run struct {
	Conn     ConnType
	Vertices []r2.Vec
}

const closeTol = 1e-9

// Runs groups the profile into maximal same-connection runs and guarantees
// closure: an open profile gets the first point appended as a final segment
// whose type is the last point's connection tag, so that tag governs the
// closing segment. On an already closed profile the last point draws no
// segment and its tag is irrelevant. A run boundary occurs strictly between
// differently tagged consecutive points; consecutive runs share their
// boundary vertex. Profiles of length < 2 have no runs (single point
// circular sections bypass run grouping).
func (p Profile) Runs() []Run {
	if len(p) < 2 {
		return nil
	}
	var runs []Run
	cur := Run{Conn: p[0].Conn, Vertices: []r2.Vec{p[0].XZ()}}
	// add draws one segment of the given connection type ending at v,
	// opening a new run on a type change.
	add := func(conn ConnType, v r2.Vec) {
		if conn != cur.Conn {
			runs = append(runs, cur)
			cur = Run{Conn: conn, Vertices: []r2.Vec{cur.Vertices[len(cur.Vertices)-1]}}
		}
		cur.Vertices = append(cur.Vertices, v)
	}
	for i := 1; i < len(p); i++ {
		add(p[i-1].Conn, p[i].XZ())
	}
	if !p.Closed() {
		add(p[len(p)-1].Conn, p[0].XZ())
	}
	return append(runs, cur)
}

// Closed reports whether the run decomposition of the profile ends on its
// first point without an inserted closing point.
func (p Profile) Closed() bool {
	if len(p) < 2 {
		return true
	}
	return d2.EqualWithin(p[0].XZ(), p[len(p)-1].XZ(), closeTol)
}

// Extent returns the largest absolute coordinate of the profile points. It
// underestimates shapes whose splines overshoot their control points.
func (p Profile) Extent() float64 {
	var max float64
	for _, pt := range p {
		if v := mathAbs(pt.X); v > max {
			max = v
		}
		if v := mathAbs(pt.Z); v > max {
			max = v
		}
	}
	return max
}

func mathAbs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
