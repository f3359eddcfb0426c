package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmazurek/agentdepot/internal/core"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog of categories and agent files",
	Long: `Print the depot catalog: every category and the agent files it contains.
Read-only; performs no filesystem writes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		depot, err := resolveDepot(cmd, d.cfg)
		if err != nil {
			return err
		}

		catalog, err := core.LoadCatalog(depot)
		if err != nil {
			return err
		}

		categories := resolveCategories(cmd, d.cfg)
		if len(categories) == 0 {
			categories = catalog.Categories()
		}

		if len(categories) == 0 {
			fmt.Fprintln(os.Stdout, "Depot has no categories.")
			return nil
		}

		total := 0
		for _, category := range categories {
			if !catalog.HasCategory(category) {
				fmt.Fprintf(os.Stderr, "Warning: category %q not found in depot\n", category)
				continue
			}
			files, _ := catalog.Files([]string{category})
			fmt.Fprintf(os.Stdout, "%s (%d):\n", category, len(files))
			for _, f := range files {
				line := "  " + strings.TrimSuffix(f.Name, core.AgentFileSuffix())
				if metadata, err := core.ParseAgentMd(f.Path); err == nil && metadata.Description != "" {
					line = fmt.Sprintf("  %-24s %s", strings.TrimSuffix(f.Name, core.AgentFileSuffix()), metadata.Description)
				}
				fmt.Fprintln(os.Stdout, line)
			}
			total += len(files)
		}
		fmt.Fprintf(os.Stdout, "\n%d agent file(s) in %d categor(ies)\n", total, len(categories))
		return nil
	},
}

func init() {
	listCmd.Flags().String("categories", "", "Comma-separated category names to list")
	addDepotFlag(listCmd)
	rootCmd.AddCommand(listCmd)
}
