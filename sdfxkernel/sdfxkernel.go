// Package sdfxkernel backs the geometry kernel seam with signed distance
// fields from github.com/deadsy/sdfx. Profiles are faceted into polygons,
// lifted to solids by revolution or extrusion and composed with exact SDF
// booleans. Meshing and volume measurement run marching cubes over the
// field, so both carry the faceting tolerance of the configured grid.
package sdfxkernel

import (
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/fluxcad/tokamak"
)

// defaultMeshCells is the marching cubes resolution along the longest
// bounding box axis when MeshCells is left zero.
const defaultMeshCells = 200

// Kernel implements tokamak.Kernel, tokamak.Measurer and tokamak.Mesher.
// The zero value is ready to use.
type Kernel struct {
	// MeshCells sets the marching cubes grid resolution used by Mesh and
	// Volume. Zero means defaultMeshCells.
	MeshCells int
}

// New returns a kernel with the default meshing resolution.
func New() *Kernel { return &Kernel{} }

var _ tokamak.Kernel = (*Kernel)(nil)
var _ tokamak.Measurer = (*Kernel)(nil)
var _ tokamak.Mesher = (*Kernel)(nil)

// solid wraps an sdf.SDF3 to implement tokamak.Solid.
type solid struct {
	s sdf.SDF3
}

// Extent returns the largest absolute bounding box coordinate.
func (s solid) Extent() float64 {
	bb := s.s.BoundingBox()
	max := 0.0
	for _, c := range []float64{bb.Min.X, bb.Min.Y, bb.Min.Z, bb.Max.X, bb.Max.Y, bb.Max.Z} {
		if c < 0 {
			c = -c
		}
		if c > max {
			max = c
		}
	}
	return max
}

func unwrap(s tokamak.Solid) sdf.SDF3 {
	return s.(solid).s
}

func wrap(s sdf.SDF3) tokamak.Solid {
	return solid{s: s}
}

// section builds the 2D cross-section SDF. With radius > 0 the runs carry a
// single center vertex and the section is a circle; otherwise the runs are
// faceted into a polygon.
func section(runs []tokamak.Run, radius float64) (sdf.SDF2, error) {
	if radius > 0 {
		circle, err := sdf.Circle2D(radius)
		if err != nil {
			return nil, err
		}
		center := v2.Vec{}
		if len(runs) > 0 && len(runs[0].Vertices) > 0 {
			center = v2.Vec{X: runs[0].Vertices[0].X, Y: runs[0].Vertices[0].Y}
		}
		return sdf.Transform2D(circle, sdf.Translate2d(center)), nil
	}
	loop := facetRuns(runs)
	if len(loop) < 3 {
		return nil, tokamak.Constraintf("profile facets to %d vertices, need at least 3", len(loop))
	}
	// Polygon2D wants counterclockwise winding.
	if signedArea(loop) < 0 {
		for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
			loop[i], loop[j] = loop[j], loop[i]
		}
	}
	verts := make([]v2.Vec, len(loop))
	for i, p := range loop {
		verts[i] = v2.Vec{X: p.X, Y: p.Y}
	}
	return sdf.Polygon2D(verts)
}

func signedArea(loop []r2.Vec) float64 {
	var sum float64
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Revolve sweeps the cross-section about the revolution axis of wp. The
// sector starts on the first workplane axis and grows counterclockwise.
func (k *Kernel) Revolve(runs []tokamak.Run, radius float64, wp tokamak.Workplane, angle float64) (tokamak.Solid, error) {
	if angle <= 0 || angle > 360 {
		return nil, tokamak.Constraintf("revolve angle %g outside (0, 360]", angle)
	}
	s2, err := section(runs, radius)
	if err != nil {
		return nil, err
	}
	var s3 sdf.SDF3
	if angle >= 360 {
		s3, err = sdf.Revolve3D(s2)
	} else {
		s3, err = sdf.RevolveTheta3D(s2, angle*math.Pi/180)
	}
	if err != nil {
		return nil, err
	}
	// Revolve3D turns about Z with the 2D x axis radial; only the XY
	// workplane, whose second axis is Y, needs reorienting.
	if wp == tokamak.PlaneXY {
		s3 = sdf.Transform3D(s3, sdf.RotateX(-math.Pi/2))
	}
	return wrap(s3), nil
}

// Extrude builds a prism normal to the working plane, symmetric about it.
func (k *Kernel) Extrude(runs []tokamak.Run, radius float64, wp tokamak.Workplane, distance float64) (tokamak.Solid, error) {
	if distance <= 0 {
		return nil, tokamak.Constraintf("extrusion distance %g must be positive", distance)
	}
	s2, err := section(runs, radius)
	if err != nil {
		return nil, err
	}
	s3 := sdf.Extrude3D(s2, distance)
	// Extrude3D leaves the profile in the world XY plane; reorient so the
	// profile lands in its declared plane.
	switch wp {
	case tokamak.PlaneXZ:
		s3 = sdf.Transform3D(s3, sdf.RotateX(math.Pi/2))
	case tokamak.PlaneYZ:
		s3 = sdf.Transform3D(s3, sdf.RotateZ(math.Pi/2).Mul(sdf.RotateX(math.Pi/2)))
	}
	return wrap(s3), nil
}

// Sweep drags the cross-section along the straight segments of path, drawn
// in the working plane, and unions the segment prisms. Joints are butted,
// not mitered, so sharply kinked paths lose a sliver at each corner.
func (k *Kernel) Sweep(runs []tokamak.Run, radius float64, wp tokamak.Workplane, path []r2.Vec) (tokamak.Solid, error) {
	if len(path) < 2 {
		return nil, tokamak.Constraintf("sweep path has %d points, need at least 2", len(path))
	}
	s2, err := section(runs, radius)
	if err != nil {
		return nil, err
	}
	var segments []sdf.SDF3
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		d := r2.Sub(b, a)
		length := r2.Norm(d)
		if length == 0 {
			continue
		}
		seg := sdf.Extrude3D(s2, length)
		phi := math.Atan2(d.Y, d.X)
		mid := r2.Scale(0.5, r2.Add(a, b))
		m := sdf.Translate3d(planePoint(wp, mid)).Mul(alignAlong(wp, phi))
		segments = append(segments, sdf.Transform3D(seg, m))
	}
	if len(segments) == 0 {
		return nil, tokamak.Constraintf("sweep path has no segments of nonzero length")
	}
	return wrap(sdf.Union3D(segments...)), nil
}

// planePoint lifts a workplane coordinate into world space.
func planePoint(wp tokamak.Workplane, p r2.Vec) v3.Vec {
	switch wp {
	case tokamak.PlaneXY:
		return v3.Vec{X: p.X, Y: p.Y}
	case tokamak.PlaneYZ:
		return v3.Vec{Y: p.X, Z: p.Y}
	}
	return v3.Vec{X: p.X, Z: p.Y}
}

// alignAlong rotates the canonical extrusion axis (world Z) onto the
// in-plane direction phi of the working plane.
func alignAlong(wp tokamak.Workplane, phi float64) sdf.M44 {
	switch wp {
	case tokamak.PlaneXY:
		return sdf.RotateZ(phi).Mul(sdf.RotateY(math.Pi / 2))
	case tokamak.PlaneYZ:
		return sdf.RotateX(phi - math.Pi/2)
	}
	return sdf.RotateY(math.Pi/2 - phi)
}

// Boolean composes two solids.
func (k *Kernel) Boolean(a, b tokamak.Solid, op tokamak.Op) (tokamak.Solid, error) {
	sa, sb := unwrap(a), unwrap(b)
	switch op {
	case tokamak.OpCut:
		return wrap(sdf.Difference3D(sa, sb)), nil
	case tokamak.OpIntersect:
		return wrap(sdf.Intersect3D(sa, sb)), nil
	case tokamak.OpUnion:
		return wrap(sdf.Union3D(sa, sb)), nil
	}
	return nil, tokamak.Configf("unknown boolean op %v", op)
}

// Rotate turns a solid about the machine axis by angle degrees.
func (k *Kernel) Rotate(s tokamak.Solid, wp tokamak.Workplane, angle float64) (tokamak.Solid, error) {
	m := sdf.RotateZ(angle * math.Pi / 180)
	return wrap(sdf.Transform3D(unwrap(s), m)), nil
}

func (k *Kernel) cells() int {
	if k.MeshCells > 0 {
		return k.MeshCells
	}
	return defaultMeshCells
}

// Mesh facets a solid with marching cubes.
func (k *Kernel) Mesh(s tokamak.Solid) ([]tokamak.Triangle, error) {
	renderer := render.NewMarchingCubesUniform(k.cells())
	triangles := render.ToTriangles(unwrap(s), renderer)
	if len(triangles) == 0 {
		return nil, tokamak.Constraintf("marching cubes produced no faces")
	}
	out := make([]tokamak.Triangle, len(triangles))
	for i, tri := range triangles {
		for j := 0; j < 3; j++ {
			out[i][j] = [3]float64{tri[j].X, tri[j].Y, tri[j].Z}
		}
	}
	return out, nil
}

// Volume integrates the meshed boundary with the divergence theorem. The
// result inherits the faceting error of the marching cubes grid.
func (k *Kernel) Volume(s tokamak.Solid) (float64, error) {
	mesh, err := k.Mesh(s)
	if err != nil {
		return 0, err
	}
	var vol float64
	for _, t := range mesh {
		v0 := v3.Vec{X: t[0][0], Y: t[0][1], Z: t[0][2]}
		v1 := v3.Vec{X: t[1][0], Y: t[1][1], Z: t[1][2]}
		v2v := v3.Vec{X: t[2][0], Y: t[2][1], Z: t[2][2]}
		vol += v0.Dot(v1.Cross(v2v)) / 6
	}
	return math.Abs(vol), nil
}
