package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/reactor"
	"github.com/fluxcad/tokamak/render"
	"github.com/fluxcad/tokamak/sdfxkernel"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the center column study reactor and export its geometry",
	Long: `Build assembles the center column study reactor from the configured
radial and vertical thicknesses, then exports the neutronics manifest, one
binary STL per component, a poloidal cross-section SVG and an HTML build
report into the output directory.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("out", "o", "out", "output directory")
	buildCmd.Flags().Float64("rotation-angle", 360, "azimuthal sector to build, degrees")
	buildCmd.Flags().Int("mesh-cells", 0, "marching cubes resolution (0 = kernel default)")
	buildCmd.Flags().Bool("no-preview", false, "skip the shaded PNG preview")

	_ = viper.BindPFlag("out", buildCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("rotation_angle", buildCmd.Flags().Lookup("rotation-angle"))
	_ = viper.BindPFlag("mesh_cells", buildCmd.Flags().Lookup("mesh-cells"))

	// Radial and vertical build defaults, centimeters.
	viper.SetDefault("inner_bore_radial_thickness", 20)
	viper.SetDefault("inboard_tf_leg_radial_thickness", 50)
	viper.SetDefault("center_column_shield_radial_thickness_mid", 50)
	viper.SetDefault("center_column_shield_radial_thickness_upper", 100)
	viper.SetDefault("inboard_firstwall_radial_thickness", 20)
	viper.SetDefault("divertor_radial_thickness", 100)
	viper.SetDefault("inner_plasma_gap_radial_thickness", 80)
	viper.SetDefault("plasma_radial_thickness", 200)
	viper.SetDefault("outer_plasma_gap_radial_thickness", 90)
	viper.SetDefault("center_column_arc_vertical_thickness", 520)
	viper.SetDefault("plasma_gap_vertical_thickness", 80)
	viper.SetDefault("elongation", 2.3)
	viper.SetDefault("triangularity", 0.45)

	rootCmd.AddCommand(buildCmd)
}

func reactorFromConfig() reactor.CenterColumnStudyReactor {
	return reactor.CenterColumnStudyReactor{
		InnerBoreRadialThickness:               viper.GetFloat64("inner_bore_radial_thickness"),
		InboardTFLegRadialThickness:            viper.GetFloat64("inboard_tf_leg_radial_thickness"),
		CenterColumnShieldRadialThicknessMid:   viper.GetFloat64("center_column_shield_radial_thickness_mid"),
		CenterColumnShieldRadialThicknessUpper: viper.GetFloat64("center_column_shield_radial_thickness_upper"),
		InboardFirstwallRadialThickness:        viper.GetFloat64("inboard_firstwall_radial_thickness"),
		DivertorRadialThickness:                viper.GetFloat64("divertor_radial_thickness"),
		InnerPlasmaGapRadialThickness:          viper.GetFloat64("inner_plasma_gap_radial_thickness"),
		PlasmaRadialThickness:                  viper.GetFloat64("plasma_radial_thickness"),
		OuterPlasmaGapRadialThickness:          viper.GetFloat64("outer_plasma_gap_radial_thickness"),
		CenterColumnArcVerticalThickness:       viper.GetFloat64("center_column_arc_vertical_thickness"),
		PlasmaGapVerticalThickness:             viper.GetFloat64("plasma_gap_vertical_thickness"),
		Elongation:                             viper.GetFloat64("elongation"),
		Triangularity:                          viper.GetFloat64("triangularity"),
		RotationAngle:                          viper.GetFloat64("rotation_angle"),
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	out := viper.GetString("out")
	r := reactorFromConfig()
	asm, err := r.Build()
	if err != nil {
		return fmt.Errorf("build reactor: %w", err)
	}
	k := &sdfxkernel.Kernel{MeshCells: viper.GetInt("mesh_cells")}

	if err := asm.WriteManifest(filepath.Join(out, "manifest.json"), reactor.ManifestOptions{IncludeGraveyard: true}); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	cmd.Printf("wrote %s\n", filepath.Join(out, "manifest.json"))

	graveyard, err := asm.Graveyard(k)
	if err != nil {
		return fmt.Errorf("size graveyard: %w", err)
	}

	var scene []tokamak.Triangle
	var curves []render.ProfileCurve
	var entries []render.ReportEntry
	for _, m := range append(asm.Members, graveyard.Shape) {
		mesh, err := memberMesh(k, m)
		if err != nil {
			return fmt.Errorf("mesh %s: %w", m.Name, err)
		}
		if m.STLFilename != "" {
			path := filepath.Join(out, m.STLFilename)
			if err := render.CreateSTL(path, mesh); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			cmd.Printf("wrote %s\n", path)
		}
		if m != graveyard.Shape {
			scene = append(scene, mesh...)
			if prof, err := m.Profile(); err == nil {
				curves = append(curves, render.ProfileCurve{Name: m.Name, Points: prof, Color: m.Color})
			}
		}
		entries = append(entries, render.ReportEntry{
			Name:        m.Name,
			MaterialTag: m.MaterialTag,
			STPFilename: m.STPFilename,
			STLFilename: m.STLFilename,
			Color:       m.Color,
		})
	}

	if err := render.ProfileSVG(filepath.Join(out, "profiles.svg"), "poloidal build", curves); err != nil {
		return fmt.Errorf("write profile plot: %w", err)
	}
	cmd.Printf("wrote %s\n", filepath.Join(out, "profiles.svg"))

	report := render.Report{
		Title:      "center column study reactor",
		ProfileSVG: "profiles.svg",
		Entries:    entries,
	}
	if noPreview, _ := cmd.Flags().GetBool("no-preview"); !noPreview {
		if err := render.PreviewPNG(filepath.Join(out, "preview.png"), scene, render.PreviewOptions{}); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		cmd.Printf("wrote %s\n", filepath.Join(out, "preview.png"))
		report.PreviewPNG = "preview.png"
	}
	if err := render.WriteReport(filepath.Join(out, "report.html"), report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	cmd.Printf("wrote %s\n", filepath.Join(out, "report.html"))
	return nil
}

func memberMesh(k *sdfxkernel.Kernel, m *tokamak.Shape) ([]tokamak.Triangle, error) {
	solid, err := m.Solid(k)
	if err != nil {
		return nil, err
	}
	return k.Mesh(solid)
}
