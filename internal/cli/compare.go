package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wristscale/pkg/layout"
	"github.com/matzehuels/wristscale/pkg/pipeline"
	"github.com/matzehuels/wristscale/pkg/prefs"
)

// compareCommand creates the compare command, which renders one comparison.
func (c *CLI) compareCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		mode       string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "compare [left] [right]",
		Short: "Render two watches at the same physical scale",
		Long: `Render two watches at the same physical scale.

The pair can be given as positional IDs or with --left/--right. Unknown IDs
fall back to the first and second watch of the dataset. Use 'wristscale list'
to see the available IDs.

Modes:
  side-by-side  both cases centered in their own half (default)
  touching      cases placed edge to edge
  overlapped    cases stacked on the same center, the right one translucent`,
		Example: `  wristscale compare bb54 speedy-pro
  wristscale compare --left bb54 --right santos-medium --mode overlapped -f svg,png -o cmp
  wristscale compare --swap --width 500 -o - > cmp.svg`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Left = args[0]
			}
			if len(args) > 1 {
				opts.Right = args[1]
			}
			m, err := layout.ParseMode(mode)
			if err != nil {
				return err
			}
			opts.Mode = m
			opts.Formats = parseFormats(formatsStr)
			return c.runCompare(cmd.Context(), opts, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (several) or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.Left, "left", "", "left watch ID")
	cmd.Flags().StringVar(&opts.Right, "right", "", "right watch ID")
	cmd.Flags().StringVarP(&mode, "mode", "m", string(layout.SideBySide), "view mode: side-by-side, touching, overlapped")
	cmd.Flags().BoolVarP(&opts.Swap, "swap", "s", false, "swap left and right")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas width in pixels (default 800, minimum 320)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "canvas height in pixels (default 400, or 220 below 600 wide)")
	cmd.Flags().Float64Var(&opts.ViewportMm, "viewport", 0, "physical width in mm spanned by the canvas (default 200)")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "theme: dark, light (default: stored preference)")
	cmd.Flags().BoolVar(&opts.EmbedFont, "embed-font", false, "embed the label font in SVG output")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG pixel density (default 2)")

	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(layout.Modes))
		for i, m := range layout.Modes {
			names[i] = string(m)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runCompare loads the working set, renders, and writes every artifact.
func (c *CLI) runCompare(ctx context.Context, opts pipeline.Options, output string, stdout io.Writer) error {
	c.layoutDefaults(&opts)
	if opts.Theme == "" {
		opts.Theme = c.storedTheme(ctx)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if output == "-" {
		if len(opts.Formats) > 1 {
			return fmt.Errorf("cannot write %d formats to stdout", len(opts.Formats))
		}
		statusOut = os.Stderr
	}

	set, _, err := c.loadWorkingSet(ctx)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	result, err := c.newRunner(set).Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("rendered %v", opts.Formats))

	if err := writeArtifacts(result, opts.Formats, output, stdout); err != nil {
		return err
	}
	if output == "-" {
		return nil
	}

	printComparison(result)
	for _, f := range result.AssetFailures {
		printWarning("Image for %s could not be loaded (%s)", f.ItemID, f.Image)
	}
	printNewline()
	printNextStep("Try another mode", fmt.Sprintf("%s compare %s %s --mode %s", appName, result.Left.ID, result.Right.ID, opts.Mode.Next()))
	return nil
}

// storedTheme reads the theme preference, falling back to the default on
// any store error.
func (c *CLI) storedTheme(ctx context.Context) string {
	store, err := c.openPrefs(ctx)
	if err != nil {
		c.Logger.Warn("preferences unavailable", "err", err)
		return ""
	}
	defer store.Close()

	name, err := prefs.Theme(ctx, store)
	if err != nil {
		c.Logger.Warn("read theme preference", "err", err)
	}
	return name
}

// writeArtifacts writes each rendered format to its output path. The path
// "-" writes to stdout.
func writeArtifacts(result *pipeline.Result, formats []string, output string, stdout io.Writer) error {
	paths := outputPaths(output, formats)

	for _, format := range formats {
		path := paths[format]
		data := result.Artifacts[format]
		if path == "-" {
			if _, err := stdout.Write(data); err != nil {
				return fmt.Errorf("write stdout: %w", err)
			}
			continue
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printSuccess("Rendered %s", format)
		printFile(path)
	}
	return nil
}
