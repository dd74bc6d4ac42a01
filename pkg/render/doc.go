// Package render is the drawing collaborator of a Lexis diagram.
//
// # Overview
//
// The [lexis] package only computes geometry. This package turns the
// resulting [lexis.Scene] into files:
//
//   - [Render] encodes a scene in any supported [Format]
//   - [FileExporter] infers the format from the path extension
//   - [WriterRenderer] streams a fixed format to an io.Writer
//
// The concrete backends live in the [sink] subpackage: gonum/plot for
// images and documents, and a JSON dump of the primitive description.
//
//	d, _ := lexis.New(lexis.NewBounds(1900, 1950, 0, 40))
//	d.AddBirths(1910, 5321)
//	err := d.Export(render.NewFileExporter(), "births.svg")
//
// # Formats
//
// png, svg, pdf, eps, jpg (jpeg), tif (tiff), tex and json. Extensions
// are matched case-insensitively.
//
// [lexis]: github.com/matzehuels/lexis/pkg/lexis
// [sink]: github.com/matzehuels/lexis/pkg/render/sink
package render
