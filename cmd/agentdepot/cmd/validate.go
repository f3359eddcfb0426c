package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmazurek/agentdepot/internal/core"
	"github.com/kmazurek/agentdepot/internal/workflow"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every depot file against the catalog conventions",
	Long: `Validate the depot: every agent file must carry frontmatter with a name
matching its file name and a description, and every workflow step must
reference an agent that exists in the catalog.`,
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

		problems := 0
		for _, issue := range core.ValidateCatalog(catalog) {
			fmt.Fprintf(os.Stdout, "agent %s\n", issue)
			problems++
		}

		workflows, err := workflow.Load(depot)
		if err != nil {
			return err
		}
		for _, wf := range workflows {
			for _, problem := range workflow.Validate(wf, catalog) {
				fmt.Fprintf(os.Stdout, "workflow %s: %s\n", wf.Name, problem)
				problems++
			}
		}

		if problems > 0 {
			return fmt.Errorf("%d problem(s) found", problems)
		}
		fmt.Fprintln(os.Stdout, "Depot is clean.")
		return nil
	},
}

func init() {
	addDepotFlag(validateCmd)
	rootCmd.AddCommand(validateCmd)
}
