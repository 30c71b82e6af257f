package cli

import (
	"github.com/spf13/cobra"

	wio "github.com/matzehuels/wristscale/pkg/io"
)

// exportCommand creates the export command, which writes the working set
// as JSON readable by a json source.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active dataset as JSON",
		Long: `Write the active dataset as JSON.

The output uses the canonical field names and can be used directly as a
json source, e.g. to snapshot a remote dataset for offline use.`,
		Example: `  wristscale export -o watches.json
  wristscale export > snapshot.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" || output == "-" {
				statusOut = cmd.ErrOrStderr()
			}
			set, _, err := c.loadWorkingSet(cmd.Context())
			if err != nil {
				return err
			}
			ds := set.Load()

			if output == "" || output == "-" {
				return wio.WriteJSON(ds, cmd.OutOrStdout())
			}
			if err := wio.ExportJSON(ds, output); err != nil {
				return err
			}
			printSuccess("Exported %d watches", ds.Len())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
