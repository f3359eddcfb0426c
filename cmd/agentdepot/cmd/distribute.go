package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kmazurek/agentdepot/internal/core"
)

var distributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "Distribute agent files to every repository under a workspace root",
	Long: `Scan a workspace root for project repositories and distribute agent files
into each of them.

Discovery skips the depot itself, anything on the exclusion list, and
directories without a version-control marker (override the last with
--include-non-vcs). Existing files are skipped unless --force is given.

  agentdepot distribute --workspace-root ~/src --categories Debugging
  agentdepot distribute --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		root, _ := cmd.Flags().GetString("workspace-root")
		if root == "" {
			root = d.cfg.WorkspaceRoot
		}
		if root == "" {
			return fmt.Errorf("--workspace-root is required (or set workspaceRoot in %s)", d.config.ConfigPath())
		}
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("resolving workspace root: %w", err)
		}
		info, err := os.Stat(absRoot)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("workspace root does not exist: %s", absRoot)
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

		exclude := d.cfg.Exclude
		if flag, _ := cmd.Flags().GetString("exclude"); flag != "" {
			exclude = splitCSV(flag)
		}
		includeNonVCS, _ := cmd.Flags().GetBool("include-non-vcs")

		targets, skipped, err := core.DiscoverTargets(absRoot, core.DiscoverOptions{
			Exclude:       exclude,
			IncludeNonVCS: includeNonVCS,
			DepotPath:     depot,
		})
		if err != nil {
			return err
		}

		if report := core.FormatSkipReasons(skipped); report != "" {
			fmt.Fprint(os.Stdout, report)
			fmt.Fprintln(os.Stdout)
		}

		force, _ := cmd.Flags().GetBool("force")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		dist := core.NewDistributor(confirmFor(force))
		summary, err := dist.Distribute(targets, files, core.DistributeOptions{
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
			return fmt.Errorf("%d file(s) failed to distribute", summary.Errors)
		}
		return nil
	},
}

func init() {
	distributeCmd.Flags().String("workspace-root", "", "Root directory to scan for target repositories")
	distributeCmd.Flags().String("categories", "", "Comma-separated category names to distribute")
	distributeCmd.Flags().Bool("install-all", false, "Distribute all known categories")
	distributeCmd.Flags().String("exclude", "", "Comma-separated directory names to skip during discovery")
	distributeCmd.Flags().Bool("include-non-vcs", false, "Include directories without a version-control marker")
	distributeCmd.Flags().BoolP("force", "f", false, "Overwrite existing files and skip the confirmation prompt")
	distributeCmd.Flags().Bool("dry-run", false, "Report intended actions without writing")
	addDepotFlag(distributeCmd)
	rootCmd.AddCommand(distributeCmd)
}
