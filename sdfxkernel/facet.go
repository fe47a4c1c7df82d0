package sdfxkernel

import (
	"math"

	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// splineSegments is the number of facets per spline span.
	splineSegments = 8
	// arcSegments is the number of facets per circular arc.
	arcSegments = 16
)

// facetRuns flattens a run decomposition into a single polygon vertex loop.
// Straight runs keep their vertices, spline runs are sampled along a
// Catmull-Rom curve through their control points and circle runs are
// sampled along three point arcs. Consecutive runs share boundary vertices,
// so each run contributes everything but its first vertex once the loop is
// started.
func facetRuns(runs []tokamak.Run) []r2.Vec {
	var loop []r2.Vec
	for i, run := range runs {
		pts := facetRun(run)
		if i > 0 && len(pts) > 0 {
			pts = pts[1:]
		}
		loop = append(loop, pts...)
	}
	// An explicitly closed loop would give the polygon a zero length edge.
	if len(loop) > 1 && d2.EqualWithin(loop[0], loop[len(loop)-1], 1e-9) {
		loop = loop[:len(loop)-1]
	}
	return loop
}

func facetRun(run tokamak.Run) []r2.Vec {
	switch run.Conn {
	case tokamak.Spline:
		return facetSpline(run.Vertices)
	case tokamak.Circle:
		return facetArcs(run.Vertices)
	}
	return run.Vertices
}

// facetSpline samples a Catmull-Rom curve through the control points with
// clamped end tangents.
func facetSpline(ctrl []r2.Vec) []r2.Vec {
	if len(ctrl) < 3 {
		return ctrl
	}
	out := []r2.Vec{ctrl[0]}
	for i := 0; i < len(ctrl)-1; i++ {
		p0 := ctrl[maxInt(i-1, 0)]
		p1 := ctrl[i]
		p2 := ctrl[i+1]
		p3 := ctrl[minInt(i+2, len(ctrl)-1)]
		for s := 1; s <= splineSegments; s++ {
			t := float64(s) / splineSegments
			out = append(out, catmullRom(p0, p1, p2, p3, t))
		}
	}
	return out
}

func catmullRom(p0, p1, p2, p3 r2.Vec, t float64) r2.Vec {
	t2 := t * t
	t3 := t2 * t
	c0 := -0.5*t3 + t2 - 0.5*t
	c1 := 1.5*t3 - 2.5*t2 + 1
	c2 := -1.5*t3 + 2*t2 + 0.5*t
	c3 := 0.5*t3 - 0.5*t2
	return r2.Add(
		r2.Add(r2.Scale(c0, p0), r2.Scale(c1, p1)),
		r2.Add(r2.Scale(c2, p2), r2.Scale(c3, p3)),
	)
}

// facetArcs samples circular arcs through consecutive vertex triples. A
// degenerate triple (collinear, infinite radius) falls back to straight
// segments.
func facetArcs(ctrl []r2.Vec) []r2.Vec {
	if len(ctrl) < 3 {
		return ctrl
	}
	out := []r2.Vec{ctrl[0]}
	i := 0
	for i+2 < len(ctrl) {
		a, b, c := ctrl[i], ctrl[i+1], ctrl[i+2]
		out = append(out, facetArc(a, b, c)...)
		i += 2
	}
	// A trailing unpaired vertex connects straight.
	if i+1 < len(ctrl) {
		out = append(out, ctrl[i+1])
	}
	return out
}

// facetArc returns arc samples from a through b to c, excluding a.
func facetArc(a, b, c r2.Vec) []r2.Vec {
	center, radius := d2.CircleFrom3Points(a, b, c)
	if math.IsInf(radius, 1) {
		return []r2.Vec{b, c}
	}
	angleA := math.Atan2(a.Y-center.Y, a.X-center.X)
	angleB := math.Atan2(b.Y-center.Y, b.X-center.X)
	angleC := math.Atan2(c.Y-center.Y, c.X-center.X)

	// Sweep from a to c in the direction that passes through b.
	ccwAB := normAngle(angleB - angleA)
	ccwAC := normAngle(angleC - angleA)
	sweep := ccwAC
	if ccwAB > ccwAC {
		sweep = ccwAC - 2*math.Pi
	}

	out := make([]r2.Vec, 0, arcSegments)
	for s := 1; s <= arcSegments; s++ {
		angle := angleA + sweep*float64(s)/arcSegments
		out = append(out, r2.Vec{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	return out
}

// normAngle maps an angle difference into [0, 2pi).
func normAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
