package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report styles. Colors match the rest of the terminal output.
var (
	reportHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7C3AED"))

	reportSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#10B981"))

	reportWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	reportDangerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EF4444"))

	reportMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6B7280"))
)

// FormatSummary renders a RunSummary as a human-readable report: per-target
// lines, per-category counts, totals, and next-step guidance. It is a pure
// formatting function and always produces output, even for an all-zero run.
func FormatSummary(summary *RunSummary) string {
	var b strings.Builder

	header := "Distribution summary"
	if summary.DryRun {
		header = "Distribution summary (dry run, nothing written)"
	}
	b.WriteString(reportHeaderStyle.Render(header))
	b.WriteString("\n\n")

	if summary.Targets == 0 {
		b.WriteString(reportMutedStyle.Render("No eligible targets, nothing to do."))
		b.WriteString("\n")
		return b.String()
	}
	if summary.Files == 0 {
		b.WriteString(reportMutedStyle.Render("No agent files selected, nothing to do."))
		b.WriteString("\n")
		return b.String()
	}

	for _, result := range summary.Results {
		line := fmt.Sprintf("  %-24s %d installed, %d updated, %d skipped",
			result.Target.Name, result.Installed, result.Updated, result.Skipped)
		if result.Errors > 0 {
			line += ", " + reportDangerStyle.Render(fmt.Sprintf("%d errors", result.Errors))
		}
		b.WriteString(line)
		b.WriteString("\n")

		for _, action := range result.Actions {
			if action.Kind != ActionError {
				continue
			}
			b.WriteString(reportDangerStyle.Render(fmt.Sprintf("    ! %s: %v", action.File.Name, action.Err)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if len(summary.ByCategory) > 0 {
		b.WriteString("  By category:\n")
		categories := make([]string, 0, len(summary.ByCategory))
		for category := range summary.ByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			b.WriteString(fmt.Sprintf("    %-20s %d\n", category, summary.ByCategory[category]))
		}
		b.WriteString("\n")
	}

	totals := fmt.Sprintf("  Total: %d placed (%d new, %d updated), %d skipped, %d errors across %d target(s)",
		summary.Placed(), summary.Installed, summary.Updated, summary.Skipped, summary.Errors, summary.Targets)
	switch {
	case summary.Errors > 0:
		b.WriteString(reportWarnStyle.Render(totals))
	default:
		b.WriteString(reportSuccessStyle.Render(totals))
	}
	b.WriteString("\n")

	switch {
	case summary.DryRun:
		b.WriteString(reportMutedStyle.Render("  Re-run without --dry-run to apply."))
		b.WriteString("\n")
	case summary.Skipped > 0:
		b.WriteString(reportMutedStyle.Render("  Skipped files already exist; re-run with --force to overwrite."))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatSkipReasons renders discovery skip reasons, one per line.
// Returns an empty string when nothing was skipped.
func FormatSkipReasons(skipped []SkipReason) string {
	if len(skipped) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(reportMutedStyle.Render("Skipped during discovery:"))
	b.WriteString("\n")
	for _, s := range skipped {
		b.WriteString(fmt.Sprintf("  - %s (%s)\n", s.Name, s.Reason))
	}
	return b.String()
}
