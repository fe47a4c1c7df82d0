package render

import (
	"bytes"
	"errors"
	"image/png"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"

	"github.com/fluxcad/tokamak"
)

// PreviewOptions configure the shaded preview raster.
type PreviewOptions struct {
	// Width and Height of the output image in pixels. Zero means 1024x768.
	Width, Height int
	// Color is the RGBA surface color. A zero value renders mid grey.
	Color [4]float64
	// Background is the RGBA clear color. A zero value clears to white.
	Background [4]float64
}

const previewSupersample = 2

func (o PreviewOptions) size() (int, int) {
	if o.Width <= 0 || o.Height <= 0 {
		return 1024, 768
	}
	return o.Width, o.Height
}

func fauxglColor(c [4]float64, fallback fauxgl.Color) fauxgl.Color {
	if c == ([4]float64{}) {
		return fallback
	}
	return fauxgl.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// PreviewPNG renders the mesh to a shaded PNG at path. The model is scaled
// into view automatically; the camera looks down at the machine from an
// oblique angle so both the bore and the outboard side are visible.
func PreviewPNG(path string, mesh []tokamak.Triangle, opts PreviewOptions) error {
	if len(mesh) == 0 {
		return errors.New("empty triangle slice")
	}
	width, height := opts.size()

	triangles := make([]*fauxgl.Triangle, len(mesh))
	for i, t := range mesh {
		triangles[i] = fauxgl.NewTriangleForPoints(
			fauxgl.V(t[0][0], t[0][1], t[0][2]),
			fauxgl.V(t[1][0], t[1][1], t[1][2]),
			fauxgl.V(t[2][0], t[2][1], t[2][2]),
		)
	}
	model := fauxgl.NewTriangleMesh(triangles)
	model.BiUnitCube()
	model.SmoothNormalsThreshold(fauxgl.Radians(30))

	eye := fauxgl.V(2.2, -2.2, 1.5)
	center := fauxgl.V(0, 0, 0)
	up := fauxgl.V(0, 0, 1)
	light := fauxgl.V(-0.5, -1, 1).Normalize()

	ctx := fauxgl.NewContext(width*previewSupersample, height*previewSupersample)
	ctx.ClearColorBufferWith(fauxglColor(opts.Background, fauxgl.White))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(40, aspect, 1, 20)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxglColor(opts.Color, fauxgl.HexColor("#7A7F80"))
	ctx.Shader = shader
	ctx.DrawMesh(model)

	img := resize.Resize(uint(width), uint(height), ctx.Image(), resize.Bilinear)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}
