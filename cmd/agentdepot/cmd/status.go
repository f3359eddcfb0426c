package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kmazurek/agentdepot/internal/core"
)

var statusCmd = &cobra.Command{
	Use:   "status [path]",
	Short: "Show agent files installed in a repository",
	Long: `Show the agent files present in a repository's install directory.
If a path is given, shows status for that repository. Otherwise shows status
for the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var targetPath string
		if len(args) > 0 {
			targetPath = args[0]
		} else {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			targetPath = cwd
		}

		absPath, err := filepath.Abs(targetPath)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}
		info, err := os.Stat(absPath)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("target directory does not exist: %s", absPath)
		}

		installed, err := core.ScanTarget(absPath)
		if err != nil {
			return fmt.Errorf("scanning target: %w", err)
		}

		fmt.Fprintf(os.Stdout, "Target: %s\n", absPath)
		if len(installed) == 0 {
			fmt.Fprintln(os.Stdout, "  Agents: none installed")
			fmt.Fprintln(os.Stdout)
			fmt.Fprintln(os.Stdout, "To install, run: agentdepot install --target . --install-all")
			return nil
		}

		fmt.Fprintf(os.Stdout, "  Agents (%d):\n", len(installed))
		for _, agent := range installed {
			if agent.Description != "" {
				fmt.Fprintf(os.Stdout, "    - %-24s %s\n", agent.DisplayName, agent.Description)
			} else {
				fmt.Fprintf(os.Stdout, "    - %s\n", agent.DisplayName)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
