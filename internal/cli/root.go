package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/wristscale/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Wristscale compares watch case sizes at true relative scale",
		Long: `Wristscale renders two watches next to each other at the same physical
scale, so a 37mm dress watch and a 42mm chronograph look as different on
screen as they do on the wrist.

Watch data is read from the configured sources (watches.csv, then
watches.json by default). When none of them yields a usable record the
built-in dataset is used instead.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ~/.config/wristscale/config.toml)")
	root.PersistentFlags().BoolVar(&c.offline, "offline", false, "skip all sources and use the built-in dataset")

	// Register all subcommands
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file selected by --config, or the default
// one when present.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		path = defaultConfigPath()
	}

	cfg, unknown, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}
	for _, key := range unknown {
		c.Logger.Warn("unknown config key", "key", key, "file", path)
	}
	c.cfg = cfg
	if explicit {
		c.Logger.Debug("loaded config", "file", path)
	}
	return nil
}
