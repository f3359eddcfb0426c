package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kmazurek/agentdepot/internal/core"
	"github.com/kmazurek/agentdepot/internal/tui"
)

// deps bundles the shared dependencies commands need.
type deps struct {
	config *core.ConfigManager
	cfg    *core.Config
}

func newDeps() (*deps, error) {
	config, err := core.NewConfigManager()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &deps{config: config, cfg: cfg}, nil
}

// resolveDepot resolves the depot path from the --depot flag, the config
// file, or the current directory, in that order.
func resolveDepot(cmd *cobra.Command, cfg *core.Config) (string, error) {
	depot, _ := cmd.Flags().GetString("depot")
	if depot == "" {
		depot = cfg.DepotPath
	}
	if depot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		depot = cwd
	}
	return depot, nil
}

// resolveCategories resolves the category selection: --install-all wins,
// then --categories, then the configured defaults. Empty means all.
func resolveCategories(cmd *cobra.Command, cfg *core.Config) []string {
	if all, _ := cmd.Flags().GetBool("install-all"); all {
		return nil
	}
	if flag, _ := cmd.Flags().GetString("categories"); flag != "" {
		return splitCSV(flag)
	}
	return cfg.DefaultCategories
}

// confirmFor returns the confirmation hook for a distribution run.
// --force bypasses the prompt entirely, and so does a non-interactive
// stdin, keeping scripted runs from blocking on input.
func confirmFor(force bool) core.ConfirmFunc {
	if force || !isatty.IsTerminal(os.Stdin.Fd()) {
		return nil // engine treats nil as always-confirmed
	}
	return tui.Confirm
}

// splitCSV splits a comma-separated flag value into trimmed parts.
func splitCSV(value string) []string {
	var parts []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// printWarnings writes catalog warnings to stderr.
func printWarnings(warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
}

// addDepotFlag adds the shared --depot flag to a command.
func addDepotFlag(cmd *cobra.Command) {
	cmd.Flags().String("depot", "", "Depot path (default: config, then current directory)")
}
