package reactor

import (
	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/comp"
	"github.com/fluxcad/tokamak/profile"
)

// CenterColumnStudyReactor is a minimal axisymmetric reactor tuned for
// center column shielding studies. Outboard magnets are deliberately left
// out so transport simulations stay fast; only components with a
// significant effect on column shielding are built. All radial and
// vertical positions derive from running sums of the declared thicknesses
// and gaps, so a change to any one thickness moves every outboard
// neighbour on the next Build.
type CenterColumnStudyReactor struct {
	InnerBoreRadialThickness               float64
	InboardTFLegRadialThickness            float64
	CenterColumnShieldRadialThicknessMid   float64
	CenterColumnShieldRadialThicknessUpper float64
	InboardFirstwallRadialThickness        float64
	DivertorRadialThickness                float64
	InnerPlasmaGapRadialThickness          float64
	PlasmaRadialThickness                  float64
	OuterPlasmaGapRadialThickness          float64
	CenterColumnArcVerticalThickness       float64
	Elongation                             float64
	Triangularity                          float64
	PlasmaGapVerticalThickness             float64
	// RotationAngle cuts the whole machine down to a sector. 360 builds
	// the full machine.
	RotationAngle float64
}

// The outboard blanket of this study reactor has a fixed depth; it exists
// to terminate neutrons, not to be studied.
const studyBlanketThickness = 100.0

// Boundary derives the plasma boundary whose equatorial points meet the
// radial build exactly, keeping the plasma clear of the center column.
func (r CenterColumnStudyReactor) Boundary() profile.Boundary {
	innerEq := r.InnerBoreRadialThickness +
		r.InboardTFLegRadialThickness +
		r.CenterColumnShieldRadialThicknessMid +
		r.InnerPlasmaGapRadialThickness
	outerEq := innerEq + r.PlasmaRadialThickness
	b := profile.DefaultBoundary()
	b.MajorRadius = (outerEq + innerEq) / 2
	b.MinorRadius = b.MajorRadius - innerEq
	b.Elongation = r.Elongation
	b.Triangularity = r.Triangularity
	return b
}

// radialBuild is the running sum of radial thicknesses, one stop and start
// per component.
type radialBuild struct {
	inboardTFStart, inboardTFEnd       float64
	shieldStart, shieldEndMid          float64
	shieldEndUpper                     float64
	firstwallEnd                       float64
	divertorStart, divertorEnd         float64
	plasmaGapStart, outerPlasmaGapEnd  float64
	outboardBlanketStart, blanketDepth float64
}

func (r CenterColumnStudyReactor) radial() radialBuild {
	var b radialBuild
	innerBoreEnd := r.InnerBoreRadialThickness
	b.inboardTFStart = innerBoreEnd
	b.inboardTFEnd = b.inboardTFStart + r.InboardTFLegRadialThickness
	b.shieldStart = b.inboardTFEnd
	b.shieldEndUpper = b.shieldStart + r.CenterColumnShieldRadialThicknessUpper
	b.shieldEndMid = b.shieldStart + r.CenterColumnShieldRadialThicknessMid
	b.firstwallEnd = b.shieldEndUpper + r.InboardFirstwallRadialThickness
	b.divertorStart = b.firstwallEnd
	b.divertorEnd = b.divertorStart + r.DivertorRadialThickness
	b.plasmaGapStart = b.shieldEndMid + r.InboardFirstwallRadialThickness
	plasmaEnd := b.plasmaGapStart + r.InnerPlasmaGapRadialThickness + r.PlasmaRadialThickness
	b.outerPlasmaGapEnd = plasmaEnd + r.OuterPlasmaGapRadialThickness
	b.outboardBlanketStart = b.outerPlasmaGapEnd
	b.blanketDepth = studyBlanketThickness
	return b
}

// Build assembles the reactor. Every derived dimension is recomputed from
// scratch so parameter edits never leave a stale partial build.
func (r CenterColumnStudyReactor) Build() (*Assembly, error) {
	if r.RotationAngle <= 0 || r.RotationAngle > 360 {
		return nil, tokamak.Configf("rotation angle %g outside (0, 360]", r.RotationAngle)
	}
	boundary := r.Boundary()
	radial := r.radial()

	// Vertical build: the blanket clears the plasma top by the declared
	// gap, and the column structures extend to the blanket top.
	gapStart := boundary.HighPoint().Y
	blanketStart := gapStart + r.PlasmaGapVerticalThickness
	blanketEnd := blanketStart + studyBlanketThickness
	shieldEndHeight := blanketEnd

	plasma := comp.NewPlasma(boundary)

	inboardTF := comp.NewCenterColumnShieldCylinder(blanketEnd*2, radial.inboardTFStart, radial.inboardTFEnd)
	inboardTF.Name = "inboard_tf_coils"
	inboardTF.MaterialTag = "inboard_tf_coils_mat"
	inboardTF.STPFilename = "inboard_tf_coils.stp"
	inboardTF.STLFilename = "inboard_tf_coils.stl"

	shield := comp.NewCenterColumnShieldFlatTopHyperbola(
		shieldEndHeight*2,
		r.CenterColumnArcVerticalThickness,
		radial.shieldStart,
		radial.shieldEndMid,
		radial.shieldEndUpper,
	)

	firstwall := comp.NewInboardFirstwall(shield, r.InboardFirstwallRadialThickness)

	// The blanket standoff follows the plasma gaps around the poloidal
	// circumference: inboard gap at the midplane back, vertical gap over
	// the top and bottom, outboard gap at the front.
	offset, err := profile.Interpolated(
		[]float64{-180, -90, 0, 90, 180},
		[]float64{
			r.InnerPlasmaGapRadialThickness,
			r.PlasmaGapVerticalThickness,
			r.OuterPlasmaGapRadialThickness,
			r.PlasmaGapVerticalThickness,
			r.InnerPlasmaGapRadialThickness,
		},
	)
	if err != nil {
		return nil, err
	}
	blanketParams := profile.BlanketFP{
		Boundary:   boundary,
		StartAngle: -180,
		StopAngle:  180,
		Thickness:  profile.Constant(radial.blanketDepth),
		Offset:     offset,
	}

	// The cutter clears everything inboard of the firstwall out of the
	// wrap around blanket. The extra height guarantees overlap.
	columnCutter := comp.NewCenterColumnShieldCylinder(blanketEnd*2.5, 0, radial.firstwallEnd)
	columnCutter.Name = "center_column_cutter"

	blanket := comp.NewBlanketFP(blanketParams)
	blanket.Cut = append(blanket.Cut, columnCutter.Shape)

	// The divertor occupies its radial slot wherever the blanket envelope
	// reaches, then displaces that material from the blanket itself.
	envelope := comp.NewBlanketFP(blanketParams)
	envelope.Name = "blanket_envelope"
	envelope.Cut = append(envelope.Cut, columnCutter.Shape)

	divertor := comp.NewCenterColumnShieldCylinder(shieldEndHeight*2.5, radial.divertorStart, radial.divertorEnd)
	divertor.Name = "divertor"
	divertor.MaterialTag = "divertor_mat"
	divertor.STPFilename = "divertor.stp"
	divertor.STLFilename = "divertor.stl"
	divertor.Intersect = append(divertor.Intersect, envelope.Shape)

	blanket.Cut = append(blanket.Cut, divertor.Shape)

	members := []*tokamak.Shape{
		plasma.Shape,
		inboardTF.Shape,
		shield.Shape,
		firstwall.Shape,
		blanket.Shape,
		divertor.Shape,
	}
	for _, m := range members {
		m.RotationAngle = r.RotationAngle
	}

	a := NewAssembly(members...)
	if err := a.CheckFilenames(); err != nil {
		return nil, err
	}
	return a, nil
}
