package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/kmazurek/agentdepot/internal/core"
)

var showCmd = &cobra.Command{
	Use:   "show <category>/<name>",
	Short: "Render an agent file in the terminal",
	Long: `Render an agent file's markdown body in the terminal.

  agentdepot show Debugging/root-cause`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		category, name, ok := strings.Cut(args[0], "/")
		if !ok {
			return fmt.Errorf("expected <category>/<name>, got %q", args[0])
		}

		depot, err := resolveDepot(cmd, d.cfg)
		if err != nil {
			return err
		}
		catalog, err := core.LoadCatalog(depot)
		if err != nil {
			return err
		}

		file, found := catalog.Lookup(category, name)
		if !found {
			return fmt.Errorf("agent %q not found in category %q", name, category)
		}

		if metadata, err := core.ParseAgentMd(file.Path); err == nil {
			fmt.Fprintf(os.Stdout, "%s: %s\n\n", metadata.Name, metadata.Description)
		}

		body, err := core.AgentBody(file.Path)
		if err != nil {
			return err
		}

		rendered, err := glamour.Render(body, "auto")
		if err != nil {
			// Fall back to the raw markdown if the renderer cannot start.
			fmt.Fprintln(os.Stdout, body)
			return nil
		}
		fmt.Fprint(os.Stdout, rendered)
		return nil
	},
}

func init() {
	addDepotFlag(showCmd)
	rootCmd.AddCommand(showCmd)
}
