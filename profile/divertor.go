package profile

import (
	"math"

	"github.com/fluxcad/tokamak"
)

// Divertor describes a divertor block whose front face is a circular arc
// fitted to the plasma edge. The block spans from the poloidal stop angle,
// in degrees, back to the radial position startX where it meets the
// neighbouring blanket.
type Divertor struct {
	Boundary Boundary
	// Thickness is the radial depth of the block behind the front face.
	Thickness float64
	// StopAngle is the poloidal angle in degrees bounding the block.
	// Angles above 180 select the lower divertor.
	StopAngle float64
	// OffsetFromPlasma is the standoff between plasma edge and front face.
	OffsetFromPlasma float64
	// StartX is the radial coordinate where the block starts.
	StartX float64
}

// frontArc returns the radius and center radial position of the circle
// fitted to the outboard plasma edge.
func (d Divertor) frontArc() (radius, centerX float64) {
	a := d.Boundary.MinorRadius
	delta := d.Boundary.Triangularity
	kappa := d.Boundary.Elongation
	s := (delta+1)*(delta+1) + kappa*kappa
	radius = 0.5*math.Sqrt(a*a*s*s/((delta+1)*(delta+1))) + d.OffsetFromPlasma
	centerX = (2*d.Boundary.MajorRadius*(1+delta) - a*(delta*delta+kappa*kappa-1)) / (2 * (1 + delta))
	return radius, centerX
}

// Points returns the divertor cross-section: ten spline samples along the
// front arc and ten back along the rear arc at Thickness behind it, the
// two joined by straight segments.
func (d Divertor) Points() (tokamak.Profile, error) {
	if err := d.Boundary.validate(); err != nil {
		return nil, err
	}
	if d.Thickness <= 0 {
		return nil, tokamak.Constraintf("divertor: thickness %g must be positive", d.Thickness)
	}
	front, centerX := d.frontArc()
	prof, err := d.arc(nil, front, centerX, false)
	if err != nil {
		return nil, err
	}
	prof, err = d.arc(prof, front+d.Thickness, centerX, true)
	if err != nil {
		return nil, err
	}
	return prof, nil
}

const divertorArcSamples = 10

// arc appends samples along the circle of the given radius about centerX,
// between the angle where the circle reaches StartX and StopAngle. The last
// appended point is tagged straight to close against the other face.
func (d Divertor) arc(prof tokamak.Profile, radius, centerX float64, reversed bool) (tokamak.Profile, error) {
	cosStart := (centerX - d.StartX) / radius
	if cosStart < -1 || cosStart > 1 {
		return nil, tokamak.Constraintf("divertor: start x %g is out of reach of the front arc radius %g", d.StartX, radius)
	}
	start := math.Acos(cosStart)
	if d.StopAngle > 180 {
		start = 2*math.Pi - start
	}
	stop := d.StopAngle * math.Pi / 180
	lo, hi := math.Min(start, stop), math.Max(start, stop)

	n := divertorArcSamples
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		if reversed {
			t = 1 - t
		}
		angle := lo + (hi-lo)*t
		x := centerX - radius*math.Cos(angle)
		z := radius * math.Sin(angle)
		conn := tokamak.Spline
		if i == n-1 {
			conn = tokamak.Straight
		}
		prof = append(prof, tokamak.Pt(x, z, conn))
	}
	return prof, nil
}
