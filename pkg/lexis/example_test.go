package lexis_test

import (
	"fmt"

	"github.com/matzehuels/lexis/pkg/lexis"
)

func ExampleDiagram() {
	d, _ := lexis.New(lexis.NewBounds(1900, 1905, 0, 3))
	_ = d.Highlight(lexis.CohortBand{Value: 1902}, lexis.WithColor(lexis.MustParseColor("steelblue")))
	_ = d.AddBirths(1901, 5)
	_ = d.AddDeaths(1900, 1900, 0, 2)

	s := d.Scene()
	fmt.Println("Lifelines:", len(s.Lifelines))
	fmt.Println("Regions:", len(s.Regions), s.Regions[0].Hex())
	for _, l := range s.Labels {
		fmt.Printf("%s %s at (%.3f, %.1f)\n", l.Kind, l.Text, l.Position.X, l.Position.Y)
	}
	// Output:
	// Lifelines: 8
	// Regions: 1 #4682b4
	// births 5 at (1901.444, 0.0)
	// deaths 2 at (1900.500, 0.3)
}

func ExampleCohortBand_Edges() {
	lower, upper := lexis.CohortBand{Value: 1950}.Edges(lexis.NewBounds(1900, 2000, 0, 100))
	fmt.Println(lower.From, lower.To)
	fmt.Println(upper.From, upper.To)
	// Output:
	// {1950 0} {2000 50}
	// {1950 -1} {2000 49}
}
