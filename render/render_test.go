package render_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fluxcad/tokamak"
	"github.com/fluxcad/tokamak/render"
)

func TestPreviewPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	opts := render.PreviewOptions{Width: 64, Height: 48}
	if err := render.PreviewPNG(path, tetrahedron(), opts); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("preview is %dx%d, want 64x48", b.Dx(), b.Dy())
	}
}

func TestPreviewPNGEmptyMesh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := render.PreviewPNG(path, nil, render.PreviewOptions{}); err == nil {
		t.Error("empty mesh must fail")
	}
}

func TestProfileSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.svg")
	curves := []render.ProfileCurve{
		{
			Name: "shield",
			Points: tokamak.Profile{
				tokamak.Pt(100, 200, tokamak.Straight),
				tokamak.Pt(150, 200, tokamak.Straight),
				tokamak.Pt(150, -200, tokamak.Straight),
				tokamak.Pt(100, -200, tokamak.Straight),
			},
			Color: [4]float64{0.2, 0.4, 0.8, 1},
		},
	}
	if err := render.ProfileSVG(path, "poloidal build", curves); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, "<svg") {
		t.Error("output is not an SVG document")
	}
	if !strings.Contains(s, "shield") {
		t.Error("legend entry missing from the SVG")
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	rep := render.Report{
		Title:      "center column study",
		PreviewPNG: "preview.png",
		Entries: []render.ReportEntry{
			{Name: "blanket", MaterialTag: "blanket_mat", STPFilename: "blanket.stp", Color: [4]float64{0, 1, 0.5, 1}},
		},
	}
	if err := render.WriteReport(path, rep); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{"center column study", "blanket_mat", "preview.png"} {
		if !strings.Contains(s, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
