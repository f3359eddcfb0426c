package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the agentdepot configuration",
	Long: `Inspect and edit ~/.agentdepot/config.json.

Settings supply defaults for flags; a flag given on the command line always
wins. Keys: depot, workspace-root, exclude, default-categories.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, d.config.ConfigPath())
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "depot:              %s\n", orUnset(d.cfg.DepotPath))
		fmt.Fprintf(os.Stdout, "workspace-root:     %s\n", orUnset(d.cfg.WorkspaceRoot))
		fmt.Fprintf(os.Stdout, "exclude:            %s\n", orUnset(strings.Join(d.cfg.Exclude, ",")))
		fmt.Fprintf(os.Stdout, "default-categories: %s\n", orUnset(strings.Join(d.cfg.DefaultCategories, ",")))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "depot":
			d.cfg.DepotPath = value
		case "workspace-root":
			d.cfg.WorkspaceRoot = value
		case "exclude":
			d.cfg.Exclude = splitCSV(value)
		case "default-categories":
			d.cfg.DefaultCategories = splitCSV(value)
		default:
			return fmt.Errorf("unknown config key %q (keys: depot, workspace-root, exclude, default-categories)", key)
		}

		if err := d.config.Save(d.cfg); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Set %s = %s\n", key, value)
		return nil
	},
}

func orUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return value
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
