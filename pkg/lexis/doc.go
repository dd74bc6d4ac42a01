// Package lexis computes the geometry of Lexis diagrams.
//
// A Lexis diagram is a grid over calendar time (x) and age (y). Every
// cohort ages one year per calendar year, so its lifeline is a 45° diagonal.
// This package owns the layout: grid bounds and ticks, lifelines,
// highlighted bands and label placement. Drawing is left to a [Renderer].
//
// # Two-phase builder
//
// A [Diagram] accumulates immutable primitive descriptions. Nothing is drawn
// until [Diagram.Render] or [Diagram.Export] hands a [Scene] to a backend:
//
//	d, _ := lexis.New(lexis.NewBounds(1900, 1910, 0, 5))
//	d.Highlight(lexis.CohortBand{Value: 1902}, lexis.WithColor(lexis.MustParseColor("steelblue")))
//	d.AddBirths(1901, 1250)
//	d.AddDeaths(1900, 1901, 0, 37)
//	err := d.Export(render.NewFileExporter(), "lexis.png")
//
// # Placement
//
// Generic points are centered in their unit cell. Birth and death counts are
// shifted by a padding derived from the number of printed digits and the
// configured font size. Death counts fall in the lower or upper triangle of
// a cell depending on whether the death happened before or after the
// cohort's birthday; any other (cohort, year, age) triple is rejected.
//
// # Errors
//
// All failures are typed values from [github.com/matzehuels/lexis/pkg/errors]
// and leave the diagram unchanged.
//
// # Concurrency
//
// A Diagram is not safe for concurrent mutation. Scenes are deep copies and
// may be shared freely.
package lexis
