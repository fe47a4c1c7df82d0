package comp

import (
	"math"

	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/internal/d2"
	"github.com/fluxcad/tokamak/profile"
	"gonum.org/v1/gonum/spatial/r2"
)

// CuttingWedge is an angular sector volume used to open ports or cut
// reactors down to a sector for inspection.
type CuttingWedge struct {
	*tokamak.Shape
	Height float64
	Radius float64
}

// NewCuttingWedge returns a sector of the given angular span in degrees.
func NewCuttingWedge(height, radius, angle float64) *CuttingWedge {
	c := &CuttingWedge{Height: height, Radius: radius}
	c.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		return profile.CuttingWedge(c.Height, c.Radius), nil
	})
	c.Shape.RotationAngle = angle
	named(c.Shape, "cutting_slice", "cutting_slice_mat", "CuttingSlice")
	return c
}

// NewCuttingWedgeForShape returns the sector complementary to a partially
// revolved shape, sized from the shape's profile so the wedge encloses it
// without building its solid. Cutting other members with the wedge opens
// the same sector the target leaves open.
func NewCuttingWedgeForShape(target *tokamak.Shape) (*CuttingWedge, error) {
	if target.RotationAngle >= 360 {
		return nil, tokamak.Constraintf("cutting wedge: shape %q is a full revolution, nothing to cut", target.Name)
	}
	c := &CuttingWedge{}
	c.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		prof, err := target.Profile()
		if err != nil {
			return nil, err
		}
		m := prof.Extent()
		if half := target.Distance() / 2; half > m {
			m = half
		}
		m *= 3
		return profile.CuttingWedge(2*m, m), nil
	})
	c.Shape.RotationAngle = 360 - target.RotationAngle
	c.Shape.SetSectorStart(target.RotationAngle)
	named(c.Shape, "cutting_slice", "cutting_slice_mat", "CuttingSlice")
	return c, nil
}

// HollowCube is a cubic shell centered on the origin, used as the graveyard
// volume bounding a reactor for particle transport.
type HollowCube struct {
	*tokamak.Shape
	Length    float64
	Thickness float64
}

// NewHollowCube returns a shell with inner edge length and the given wall
// thickness.
func NewHollowCube(length, thickness float64) *HollowCube {
	h := &HollowCube{Length: length, Thickness: thickness}
	h.Shape = tokamak.NewExtrusion(func() (tokamak.Profile, error) {
		return profile.CenteredRectangle(r2.Vec{}, h.Length+h.Thickness, h.Length+h.Thickness), nil
	}, length+thickness)
	inner := tokamak.NewExtrusion(func() (tokamak.Profile, error) {
		return profile.CenteredRectangle(r2.Vec{}, h.Length, h.Length), nil
	}, length)
	inner.Name = "hollow_cube_inner"
	inner.Workplane = tokamak.PlaneXY
	h.Shape.Workplane = tokamak.PlaneXY
	h.Shape.Cut = []*tokamak.Shape{inner}
	named(h.Shape, "hollow_cube", "hollow_cube_mat", "HollowCube")
	return h
}

// SetLength resizes the shell, keeping the extrusion depths matched to the
// edge lengths.
func (h *HollowCube) SetLength(length float64) {
	h.Length = length
	h.Shape.SetDistance(length + h.Thickness)
	h.Shape.Cut[0].SetDistance(length)
}

// RotatedPortCutter is a wedge aimed from a central point, used to cut
// ports through blankets and vessels. Polar angles pivot about the center
// point in the XZ plane; the azimuthal width comes from the rotation angle.
type RotatedPortCutter struct {
	*tokamak.Shape
	Center             r2.Vec
	PolarCoverageAngle float64
	PolarPlacement     float64
	MaxDistance        float64
}

// NewRotatedPortCutter returns a port cutter pivoting about center.
// azimuthalWidth is the angular width of the port in degrees.
func NewRotatedPortCutter(center r2.Vec, coverageAngle, placementAngle, maxDistance, azimuthalWidth float64) (*RotatedPortCutter, error) {
	if coverageAngle > 180 {
		return nil, tokamak.Constraintf("port cutter: polar coverage angle %g exceeds 180", coverageAngle)
	}
	p := &RotatedPortCutter{
		Center:             center,
		PolarCoverageAngle: coverageAngle,
		PolarPlacement:     placementAngle,
		MaxDistance:        maxDistance,
	}
	p.Shape = tokamak.NewRotation(func() (tokamak.Profile, error) {
		deg := func(d float64) float64 { return d * math.Pi / 180 }
		aim := d2.Rotate(p.Center, r2.Vec{X: p.Center.X + p.MaxDistance, Y: p.Center.Y}, deg(p.PolarPlacement))
		upper := d2.Rotate(p.Center, aim, deg(0.5*p.PolarCoverageAngle))
		lower := d2.Rotate(p.Center, aim, deg(-0.5*p.PolarCoverageAngle))
		return tokamak.Profile{
			tokamak.Pt(p.Center.X, p.Center.Y, tokamak.Straight),
			tokamak.Pt(upper.X, upper.Y, tokamak.Straight),
			tokamak.Pt(lower.X, lower.Y, tokamak.Straight),
		}, nil
	})
	p.Shape.RotationAngle = azimuthalWidth
	named(p.Shape, "port_cutter", "port_cutter_mat", "PortCutter")
	return p, nil
}

// CoolantChannelRingStraight is a ring of straight circular coolant
// channels running parallel to the machine axis.
type CoolantChannelRingStraight struct {
	*tokamak.Shape
	Height        float64
	ChannelRadius float64
	RingRadius    float64
	ChannelCount  int
}

// NewCoolantChannelRingStraight returns count channels of channelRadius on
// a ring of ringRadius, equally spaced in azimuth.
func NewCoolantChannelRingStraight(height, channelRadius, ringRadius float64, count int) (*CoolantChannelRingStraight, error) {
	width := 0.0
	if ringRadius > 0 {
		// Angular footprint of one channel on the ring.
		width = 2 * channelRadius / ringRadius * 180 / math.Pi
	}
	angles, err := profile.AzimuthAngles(count, 0, width)
	if err != nil {
		return nil, err
	}
	c := &CoolantChannelRingStraight{Height: height, ChannelRadius: channelRadius, RingRadius: ringRadius, ChannelCount: count}
	c.Shape = tokamak.NewExtrusion(func() (tokamak.Profile, error) {
		return tokamak.Profile{tokamak.Pt(c.RingRadius, 0, tokamak.Circle)}, nil
	}, height)
	c.Shape.SetCircularSection(channelRadius)
	c.Shape.Workplane = tokamak.PlaneXY
	c.Shape.AzimuthPlacementAngles = angles
	named(c.Shape, "coolant_channel", "coolant_channel_mat", "CoolantChannelRingStraight")
	return c, nil
}
