package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// ReportEntry is one assembly member row of the build report.
type ReportEntry struct {
	Name        string
	MaterialTag string
	STPFilename string
	STLFilename string
	Color       [4]float64
}

// Report collects everything the HTML build report shows.
type Report struct {
	Title string
	// PreviewPNG and ProfileSVG are relative links to previously exported
	// artifacts; empty strings omit the section.
	PreviewPNG string
	ProfileSVG string
	Entries    []ReportEntry
}

// Swatch returns the entry color as a CSS rgba() value.
func (e ReportEntry) Swatch() template.CSS {
	return template.CSS(fmt.Sprintf("rgba(%d,%d,%d,%.2f)",
		int(e.Color[0]*255), int(e.Color[1]*255), int(e.Color[2]*255), e.Color[3]))
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: left; }
.swatch { display: inline-block; width: 1em; height: 1em; border: 1px solid #888; }
img, object { max-width: 45em; display: block; margin: 1em 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .PreviewPNG}}<img src="{{.PreviewPNG}}" alt="shaded preview">{{end}}
{{if .ProfileSVG}}<object data="{{.ProfileSVG}}" type="image/svg+xml"></object>{{end}}
<table>
<tr><th></th><th>Component</th><th>Material</th><th>STP</th><th>STL</th></tr>
{{range .Entries}}<tr>
<td><span class="swatch" style="background: {{.Swatch}}"></span></td>
<td>{{.Name}}</td>
<td>{{.MaterialTag}}</td>
<td>{{.STPFilename}}</td>
<td>{{.STLFilename}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

// WriteReport renders the HTML build report at path.
func WriteReport(path string, r Report) error {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, r); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}
