// Package sink turns a [lexis.Scene] into bytes.
//
// # Plot Output
//
// [RenderPlot] draws the scene with gonum/plot and encodes it as PNG, SVG,
// PDF, EPS, JPEG, TIFF or TeX. Highlighted bands are filled polygons, the
// cohort lifelines are thin diagonals clipped to the grid and data labels
// are placed with their lower-left corner at the computed position.
//
//	png, err := sink.RenderPlot(d.Scene(), "png", sink.WithWidth(10*vg.Inch))
//
// The canvas height follows the scene aspect: "equal" makes one year as wide
// as one age is tall, a numeric ratio fixes height/width, and "auto" uses a
// 4:3 canvas.
//
// # JSON Output
//
// [RenderJSON] writes the primitive description itself, for external
// drawing tools and for tests:
//
//	data, err := sink.RenderJSON(d.Scene(), sink.WithJSONAnchors())
//
// [lexis.Scene]: github.com/matzehuels/lexis/pkg/lexis.Scene
package sink
