package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmazurek/agentdepot/internal/core"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [name...]",
	Short: "Remove installed agent files from a repository",
	Long: `Remove agent files from a repository's install directory.

Name specific files, or remove whole categories:
  agentdepot uninstall --target ../my-app root-cause bisector
  agentdepot uninstall --target ../my-app --categories Debugging`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		targetPath, _ := cmd.Flags().GetString("target")
		if targetPath == "" {
			return fmt.Errorf("--target is required")
		}
		absTarget, err := filepath.Abs(targetPath)
		if err != nil {
			return fmt.Errorf("resolving target: %w", err)
		}
		info, err := os.Stat(absTarget)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("target directory does not exist: %s", absTarget)
		}

		opts := core.RemoveOptions{
			TargetDir: absTarget,
			Names:     args,
		}

		if flag, _ := cmd.Flags().GetString("categories"); flag != "" {
			depot, err := resolveDepot(cmd, d.cfg)
			if err != nil {
				return err
			}
			catalog, err := core.LoadCatalog(depot)
			if err != nil {
				return err
			}
			opts.Categories = splitCSV(flag)
			opts.Catalog = catalog
		}

		result, err := core.Remove(opts)
		if err != nil {
			return err
		}

		for _, name := range result.Removed {
			fmt.Fprintf(os.Stdout, "Removed: %s\n", name)
		}
		if len(result.NotFound) > 0 {
			fmt.Fprintf(os.Stdout, "Not installed: %s\n", strings.Join(result.NotFound, ", "))
		}
		if len(result.Removed) == 0 {
			fmt.Fprintln(os.Stdout, "Nothing removed.")
		}
		return nil
	},
}

func init() {
	uninstallCmd.Flags().StringP("target", "t", "", "Repository path (required)")
	uninstallCmd.Flags().String("categories", "", "Comma-separated category names to remove")
	addDepotFlag(uninstallCmd)
	rootCmd.AddCommand(uninstallCmd)
}
