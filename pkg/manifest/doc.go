// Package manifest describes Lexis diagrams in TOML.
//
// A manifest names the grid and lists everything to draw on it:
//
//	aspect = "equal"
//	palette = ["tab:blue", "tab:orange"]   # or: seed = 7 for random colors
//
//	[grid]
//	year_start = 1980
//	year_end = 2000
//	age_start = 0
//	age_end = 10
//
//	[titles]
//	x = "Calendar year"
//	y = "Age"
//	title = "Infant deaths"
//
//	[font]
//	size = 10
//	weight = "bold"
//
//	[[highlight]]
//	target = "cohort"
//	value = 1985
//	color = "steelblue"
//	alpha = 0.3
//
//	[[births]]
//	year = 1985
//	value = 1200
//
//	[[deaths]]
//	cohort = 1985
//	year = 1986
//	age = 0
//	value = 12
//
//	[[data]]
//	path = "deaths.csv"   # relative to the manifest
//	mode = "deaths"
//	x = "year"
//	y = "age"
//	cohort = "born"
//	value = "n"
//
// [Load] decodes and validates a file; [Manifest.Build] replays it onto a
// fresh [lexis.Diagram]. Unknown keys are errors.
//
// [lexis.Diagram]: github.com/matzehuels/lexis/pkg/lexis.Diagram
package manifest
