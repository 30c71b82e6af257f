package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wristscale/pkg/prefs"
	"github.com/matzehuels/wristscale/pkg/render/styles"
)

// themeCommand creates the theme command and its subcommands.
func (c *CLI) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the stored display theme",
		Long: `Show or change the stored display theme.

The theme is kept in the preference store (a JSON file under
~/.config/wristscale by default, or Redis when configured) and is used by
compare, pick and serve unless --theme overrides it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openPrefs(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			name, err := prefs.Theme(cmd.Context(), store)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	cmd.AddCommand(c.themeSetCommand())
	cmd.AddCommand(c.themeToggleCommand())
	return cmd
}

// themeSetCommand creates the "theme set" subcommand.
func (c *CLI) themeSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "set <name>",
		Short:     "Store a theme",
		ValidArgs: styles.Names(),
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openPrefs(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			name, err := prefs.SetTheme(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}
			printSuccess("Theme set to %s", StyleHighlight.Render(name))
			return nil
		},
	}
}

// themeToggleCommand creates the "theme toggle" subcommand.
func (c *CLI) themeToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between dark and light",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openPrefs(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			name, err := prefs.ToggleTheme(cmd.Context(), store)
			if err != nil {
				return err
			}
			printSuccess("Theme set to %s", StyleHighlight.Render(name))
			return nil
		},
	}
}
