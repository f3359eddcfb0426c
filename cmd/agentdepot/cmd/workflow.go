package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmazurek/agentdepot/internal/workflow"
)

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Inspect the depot's workflow definitions",
}

var workflowListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workflows defined in the depot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		depot, err := resolveDepot(cmd, d.cfg)
		if err != nil {
			return err
		}

		workflows, err := workflow.Load(depot)
		if err != nil {
			return err
		}
		if len(workflows) == 0 {
			fmt.Fprintln(os.Stdout, "No workflows defined.")
			return nil
		}

		for _, wf := range workflows {
			if wf.Description != "" {
				fmt.Fprintf(os.Stdout, "%-20s %s (%d steps)\n", wf.Name, wf.Description, len(wf.Steps))
			} else {
				fmt.Fprintf(os.Stdout, "%-20s (%d steps)\n", wf.Name, len(wf.Steps))
			}
		}
		return nil
	},
}

var workflowShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a workflow's steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		depot, err := resolveDepot(cmd, d.cfg)
		if err != nil {
			return err
		}

		workflows, err := workflow.Load(depot)
		if err != nil {
			return err
		}
		wf, found := workflow.Find(workflows, args[0])
		if !found {
			return fmt.Errorf("workflow %q not found", args[0])
		}

		fmt.Fprintf(os.Stdout, "%s\n", wf.Name)
		if wf.Description != "" {
			fmt.Fprintf(os.Stdout, "  %s\n", wf.Description)
		}
		for i, step := range wf.Steps {
			fmt.Fprintf(os.Stdout, "  %d. [%s] %s\n", i+1, step.Agent, step.Task)
		}
		return nil
	},
}

func init() {
	addDepotFlag(workflowListCmd)
	addDepotFlag(workflowShowCmd)
	workflowCmd.AddCommand(workflowListCmd)
	workflowCmd.AddCommand(workflowShowCmd)
	rootCmd.AddCommand(workflowCmd)
}
