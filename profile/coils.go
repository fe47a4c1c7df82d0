package profile

import (
	"math"

	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// AzimuthAngles partitions the full circle into count placement angles in
// degrees starting at startDeg. widthDeg is the angular footprint of one
// placed instance; pass 0 when the footprint is unknown or irrelevant. The
// footprints of all instances must fit within the circle.
func AzimuthAngles(count int, startDeg, widthDeg float64) ([]float64, error) {
	if count < 1 {
		return nil, tokamak.Constraintf("azimuth angles: count %d must be at least 1", count)
	}
	if widthDeg*float64(count) > 360 {
		return nil, tokamak.Constraintf("azimuth angles: %d instances of %g degrees exceed the full circle", count, widthDeg)
	}
	angles := make([]float64, count)
	for i := range angles {
		angles[i] = startDeg + 360*float64(i)/float64(count)
	}
	return angles, nil
}

// PoloidalFieldCoil returns the rectangular cross-section of one poloidal
// field coil centered at center in the XZ plane.
func PoloidalFieldCoil(center r2.Vec, width, height float64) (tokamak.Profile, error) {
	if width <= 0 || height <= 0 {
		return nil, tokamak.Constraintf("pf coil: width %g and height %g must be positive", width, height)
	}
	return CenteredRectangle(center, width, height), nil
}

// PoloidalFieldCoilCase returns the constant thickness casing around a
// poloidal field coil of the given dimensions: the coil rectangle grown by
// the casing thickness, with the coil itself cut away by the caller.
func PoloidalFieldCoilCase(center r2.Vec, coilWidth, coilHeight, thickness float64) (tokamak.Profile, error) {
	if thickness <= 0 {
		return nil, tokamak.Constraintf("pf coil case: thickness %g must be positive", thickness)
	}
	return PoloidalFieldCoil(center, coilWidth+2*thickness, coilHeight+2*thickness)
}

// ToroidalFieldCoilRectangle returns the outer loop of a rectangular
// toroidal field coil. horizontalStart is the inner upper corner of the
// loop, verticalMid the mid point of the outboard vertical section. The
// inner leg joining the loop across the bore is a separate profile, see
// ToroidalFieldCoilInnerLeg.
func ToroidalFieldCoilRectangle(horizontalStart, verticalMid r2.Vec, thickness float64) (tokamak.Profile, error) {
	if horizontalStart.X >= verticalMid.X {
		return nil, tokamak.Constraintf("tf coil rectangle: horizontal start x %g must be smaller than vertical mid x %g", horizontalStart.X, verticalMid.X)
	}
	if verticalMid.Y >= horizontalStart.Y {
		return nil, tokamak.Constraintf("tf coil rectangle: vertical mid z %g must be smaller than horizontal start z %g", verticalMid.Y, horizontalStart.Y)
	}
	hx, hz := horizontalStart.X, horizontalStart.Y
	vx := verticalMid.X
	return tokamak.Profile{
		tokamak.Pt(hx, hz, tokamak.Straight),
		tokamak.Pt(hx+thickness, hz, tokamak.Straight),
		tokamak.Pt(vx, hz, tokamak.Straight),
		tokamak.Pt(vx, -hz, tokamak.Straight),
		tokamak.Pt(hx+thickness, -hz, tokamak.Straight),
		tokamak.Pt(hx, -hz, tokamak.Straight),
		tokamak.Pt(hx, -(hz + thickness), tokamak.Straight),
		tokamak.Pt(vx+thickness, -(hz + thickness), tokamak.Straight),
		tokamak.Pt(vx+thickness, hz+thickness, tokamak.Straight),
		tokamak.Pt(hx, hz+thickness, tokamak.Straight),
	}, nil
}

// ToroidalFieldCoilInnerLeg returns the rectangle closing a toroidal field
// coil loop across the machine bore.
func ToroidalFieldCoilInnerLeg(horizontalStart r2.Vec, thickness float64) tokamak.Profile {
	hx, hz := horizontalStart.X, horizontalStart.Y
	return tokamak.Profile{
		tokamak.Pt(hx, hz, tokamak.Straight),
		tokamak.Pt(hx+thickness, hz, tokamak.Straight),
		tokamak.Pt(hx+thickness, -hz, tokamak.Straight),
		tokamak.Pt(hx, -hz, tokamak.Straight),
	}
}

// ToroidalFieldCoilCoatHanger returns the outer loop of a coat hanger
// shaped toroidal field coil: horizontal sections top and bottom joined to
// an outboard vertical section by sloped segments. Thickness corners on the
// sloped segments are built by rotating the square corner points about the
// loop vertices.
func ToroidalFieldCoilCoatHanger(horizontalStart r2.Vec, horizontalLength float64, verticalMid r2.Vec, verticalLength, thickness float64) (tokamak.Profile, error) {
	adjacent := verticalMid.X - (horizontalStart.X + horizontalLength)
	opposite := horizontalStart.Y - (verticalMid.Y + 0.5*verticalLength)
	if adjacent <= 0 || opposite <= 0 {
		return nil, tokamak.Constraintf("tf coil coat hanger: sloped section has non positive extent %g x %g", adjacent, opposite)
	}
	rot := math.Atan(opposite / adjacent)
	rotMid := math.Pi/2 - rot

	hx, hz := horizontalStart.X, horizontalStart.Y
	hl := horizontalLength
	vx, vz := verticalMid.X, verticalMid.Y
	vh := 0.5 * verticalLength

	p2 := r2.Vec{X: hx + hl, Y: hz}
	p3 := r2.Vec{X: vx, Y: vz + vh}
	p4 := r2.Vec{X: vx, Y: vz - vh}
	p5 := r2.Vec{X: hx + hl, Y: -hz}
	p8 := r2.Vec{X: hx + hl, Y: -hz - thickness}
	p11 := r2.Vec{X: vx + thickness, Y: vz - vh}
	p12 := r2.Vec{X: vx + thickness, Y: vz + vh}
	p15 := r2.Vec{X: hx + hl, Y: hz + thickness}

	p9 := d2.Rotate(p5, p8, rot)
	p10 := d2.Rotate(p4, p11, -rotMid)
	p13 := d2.Rotate(p3, p12, rotMid)
	p14 := d2.Rotate(p2, p15, -rot)

	pts := []r2.Vec{
		horizontalStart, p2, p3, p4, p5,
		{X: hx, Y: -hz},
		{X: hx, Y: -hz - thickness},
		p8, p9, p10, p11, p12, p13, p14, p15,
		{X: hx, Y: hz + thickness},
	}
	prof := make(tokamak.Profile, len(pts))
	for i, p := range pts {
		prof[i] = tokamak.Pt(p.X, p.Y, tokamak.Straight)
	}
	return prof, nil
}

// InnerTFCoilsFlat returns the wedge cross-section of one inboard toroidal
// field coil leg with flat faces, drawn in the XY plane for extrusion along
// the machine axis. Gaps between adjacent coils are constant along both the
// inner and outer radius.
func InnerTFCoilsFlat(innerRadius, outerRadius, gap float64, coils int) (tokamak.Profile, error) {
	if coils < 1 {
		return nil, tokamak.Constraintf("inner tf coils: count %d must be at least 1", coils)
	}
	if gap*float64(coils) > 2*math.Pi*innerRadius {
		return nil, tokamak.Constraintf("inner tf coils: gap %g leaves no material at inner radius %g for %d coils", gap, innerRadius, coils)
	}
	span := func(radius float64) (theta, omega float64) {
		theta = (2*math.Pi*radius - gap*float64(coils)) / (radius * float64(coils))
		omega = math.Asin(gap / (2 * radius))
		return theta, omega
	}
	arcPoint := func(radius, theta, omega float64) r2.Vec {
		return d2.Rotate(r2.Vec{}, d2.Pol{R: radius, Theta: theta}.PolarToCartesian(), omega)
	}
	thetaIn, omegaIn := span(innerRadius)
	thetaOut, omegaOut := span(outerRadius)
	p1 := arcPoint(innerRadius, 0, omegaIn)
	p3 := arcPoint(innerRadius, thetaIn, omegaIn)
	p4 := arcPoint(outerRadius, 0, omegaOut)
	p6 := arcPoint(outerRadius, thetaOut, omegaOut)
	return tokamak.Profile{
		tokamak.Pt(p1.X, p1.Y, tokamak.Straight),
		tokamak.Pt(p3.X, p3.Y, tokamak.Straight),
		tokamak.Pt(p6.X, p6.Y, tokamak.Straight),
		tokamak.Pt(p4.X, p4.Y, tokamak.Straight),
	}, nil
}
