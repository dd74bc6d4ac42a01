package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lexis/pkg/lexis"
	"github.com/matzehuels/lexis/pkg/pipeline"
	"github.com/matzehuels/lexis/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output directory, or a file path for a single format
	formats string  // comma-separated output formats
	width   float64 // canvas width in inches
	height  float64 // canvas height in inches; zero follows the diagram aspect
	noCache bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [manifest.toml]",
		Short: "Render a Lexis diagram manifest",
		Example: `  lexis render infant.toml
  lexis render infant.toml -f png,svg -o out/
  lexis render infant.toml -o figure.pdf --width 6`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory, or file path when rendering one format")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s), comma-separated: "+formatNames()+" (default png)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width in inches (default 8)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height in inches (default from the diagram aspect)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the scene and artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached entries and re-render")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return strings.Split(formatNames(), ", "), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, ro renderOpts) error {
	prog := newProgress(c.Logger)

	opts, err := pipelineOptions(input, ro)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSuccess(out, "Rendered %s", input)
	printStats(out, result.Stats.Labels, result.Stats.Regions, result.CacheInfo.SceneHit && result.CacheInfo.RenderHit)
	for _, f := range opts.Formats {
		printFile(out, result.Paths[f])
	}
	prog.done("Rendered " + input)
	return nil
}

// pipelineOptions maps flags onto pipeline options. An --output with a
// known format extension names the single output file; anything else is
// a directory. Without --output, files land next to the manifest.
func pipelineOptions(input string, ro renderOpts) (pipeline.Options, error) {
	opts := pipeline.Options{
		ManifestPath: input,
		Formats:      parseFormats(ro.formats),
		Width:        ro.width,
		Height:       ro.height,
		OutputDir:    filepath.Dir(input),
		Refresh:      ro.refresh,
	}

	if ro.output == "" {
		return opts, nil
	}
	f, err := render.FormatFromPath(ro.output)
	if err != nil {
		opts.OutputDir = ro.output
		return opts, nil
	}
	if ro.formats != "" && (len(opts.Formats) != 1 || !sameFormat(opts.Formats[0], f)) {
		return opts, fmt.Errorf("output %s does not match --format %s", ro.output, ro.formats)
	}
	base := filepath.Base(ro.output)
	opts.Formats = []string{string(f)}
	opts.OutputDir = filepath.Dir(ro.output)
	opts.Name = strings.TrimSuffix(base, filepath.Ext(base))
	return opts, nil
}

func sameFormat(name string, f render.Format) bool {
	parsed, err := render.ParseFormat(name)
	return err == nil && parsed == f
}

func formatNames() string {
	names := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "inspect [manifest.toml]",
		Short: "List the regions and labels a manifest produces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			scene, err := runner.Build(cmd.Context(), pipeline.Options{ManifestPath: args[0]})
			if err != nil {
				return err
			}
			printScene(cmd.OutOrStdout(), scene)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the scene cache")
	return cmd
}

func printScene(w io.Writer, s lexis.Scene) {
	b := s.Bounds
	fmt.Fprintln(w, StyleTitle.Render(s.Titles.Title))
	printDetail(w, "years %d–%d, ages %d–%d, aspect %s", b.YearStart, b.YearEnd, b.AgeStart, b.AgeEnd, s.Aspect)

	if len(s.Regions) > 0 {
		rows := make([][]string, len(s.Regions))
		for i, r := range s.Regions {
			rows[i] = []string{string(r.Kind), fmt.Sprint(r.Value), r.Hex(), fmt.Sprintf("%.2f", r.Alpha)}
		}
		printTable(w, []string{"Band", "Value", "Color", "Alpha"}, rows)
	}
	if len(s.Labels) > 0 {
		rows := make([][]string, len(s.Labels))
		for i, l := range s.Labels {
			rows[i] = []string{string(l.Kind), fmt.Sprint(l.Year), fmt.Sprint(l.Age), l.Text,
				fmt.Sprintf("(%.2f, %.2f)", l.Position.X, l.Position.Y)}
		}
		printTable(w, []string{"Kind", "Year", "Age", "Text", "Position"}, rows)
	}
}
