package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kmazurek/agentdepot/internal/core"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install agent files into a single repository",
	Long: `Install agent files from the depot into one target repository.

Files land in <target>/.github/agents/. Existing files are skipped unless
--force is given, which also suppresses the confirmation prompt.

Select categories with --categories, or --install-all for everything:
  agentdepot install --target ../my-app --categories Debugging,Testing`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		targetPath, _ := cmd.Flags().GetString("target")
		if targetPath == "" {
			return fmt.Errorf("--target is required (use 'agentdepot list' to browse the catalog)")
		}
		absTarget, err := filepath.Abs(targetPath)
		if err != nil {
			return fmt.Errorf("resolving target: %w", err)
		}
		info, err := os.Stat(absTarget)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("target directory does not exist: %s", absTarget)
		}

		depot, err := resolveDepot(cmd, d.cfg)
		if err != nil {
			return err
		}
		catalog, err := core.LoadCatalog(depot)
		if err != nil {
			return err
		}

		files, warnings := catalog.Files(resolveCategories(cmd, d.cfg))
		printWarnings(warnings)

		force, _ := cmd.Flags().GetBool("force")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		target := core.Target{Name: filepath.Base(absTarget), Path: absTarget}
		dist := core.NewDistributor(confirmFor(force))
		summary, err := dist.Distribute([]core.Target{target}, files, core.DistributeOptions{
			Overwrite: force,
			DryRun:    dryRun,
		})
		if errors.Is(err, core.ErrCancelled) {
			fmt.Fprintln(os.Stdout, "Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprint(os.Stdout, core.FormatSummary(summary))

		if summary.Errors > 0 {
			return fmt.Errorf("%d file(s) failed to install", summary.Errors)
		}
		return nil
	},
}

func init() {
	installCmd.Flags().StringP("target", "t", "", "Destination repository path (required)")
	installCmd.Flags().String("categories", "", "Comma-separated category names to install")
	installCmd.Flags().Bool("install-all", false, "Install all known categories")
	installCmd.Flags().BoolP("force", "f", false, "Overwrite existing files and skip the confirmation prompt")
	installCmd.Flags().Bool("dry-run", false, "Report intended actions without writing")
	addDepotFlag(installCmd)
	rootCmd.AddCommand(installCmd)
}
