package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wristscale/pkg/catalog"
)

// listCommand creates the list command, which prints the working set.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the watches in the active dataset",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, _, err := c.loadWorkingSet(cmd.Context())
			if err != nil {
				return err
			}
			renderRecordTable(cmd.OutOrStdout(), set.Load().Records())
			return nil
		},
	}
}

// renderRecordTable writes records as a rounded table. Missing optional
// measurements show as a dash.
func renderRecordTable(w io.Writer, recs []catalog.Record) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	idStyle := lipgloss.NewStyle().Foreground(colorCyan)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = []string{
			r.ID,
			r.Brand,
			r.Model,
			mmCell(r.Diameter),
			mmCell(r.Width),
			mmCell(r.Thickness),
			mmCell(r.StrapWidth),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Brand", "Model", "Case", "Lug-to-Lug", "Thickness", "Lug").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return idStyle.Padding(0, 1)
			}
			return cellStyle
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("  %d watches", len(recs))))
}

func mmCell(m catalog.Millimeters) string {
	if !m.Present() {
		return "—"
	}
	return m.String() + "mm"
}
