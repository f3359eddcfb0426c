package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFormatSummary(t *testing.T) {
	summary := &RunSummary{
		Targets:    2,
		Files:      3,
		Installed:  4,
		Updated:    1,
		Skipped:    1,
		ByCategory: map[string]int{"Debugging": 3, "Testing": 2},
		Results: []TargetResult{
			{Target: Target{Name: "projA"}, Installed: 3, Updated: 0, Skipped: 0},
			{Target: Target{Name: "projB"}, Installed: 1, Updated: 1, Skipped: 1},
		},
	}

	out := ansi.Strip(FormatSummary(summary))

	for _, want := range []string{
		"projA",
		"projB",
		"Debugging",
		"Testing",
		"5 placed (4 new, 1 updated)",
		"re-run with --force to overwrite",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestFormatSummary_ZeroCountsNeverEmpty(t *testing.T) {
	out := ansi.Strip(FormatSummary(&RunSummary{}))
	if !strings.Contains(out, "nothing to do") {
		t.Errorf("zero summary should say nothing to do:\n%s", out)
	}
}

func TestFormatSummary_DryRun(t *testing.T) {
	summary := &RunSummary{
		Targets:   1,
		Files:     1,
		Installed: 1,
		DryRun:    true,
		Results:   []TargetResult{{Target: Target{Name: "projA"}, Installed: 1}},
	}
	out := ansi.Strip(FormatSummary(summary))
	if !strings.Contains(out, "dry run") {
		t.Errorf("dry-run summary should be labeled:\n%s", out)
	}
	if !strings.Contains(out, "Re-run without --dry-run") {
		t.Errorf("dry-run summary should include next-step guidance:\n%s", out)
	}
}

func TestFormatSummary_Errors(t *testing.T) {
	summary := &RunSummary{
		Targets: 1,
		Files:   1,
		Errors:  1,
		Results: []TargetResult{{
			Target: Target{Name: "projA"},
			Errors: 1,
			Actions: []FileAction{{
				Target: "projA",
				File:   AgentFile{Category: "Debugging", Name: "root-cause.agent.md"},
				Kind:   ActionError,
				Err:    errors.New("permission denied"),
			}},
		}},
	}
	out := ansi.Strip(FormatSummary(summary))
	if !strings.Contains(out, "root-cause.agent.md") || !strings.Contains(out, "permission denied") {
		t.Errorf("error lines should name the file and cause:\n%s", out)
	}
}

func TestFormatSkipReasons(t *testing.T) {
	if FormatSkipReasons(nil) != "" {
		t.Error("no skips should render as empty string")
	}

	out := ansi.Strip(FormatSkipReasons([]SkipReason{
		{Name: "projB", Reason: "no version-control marker"},
	}))
	if !strings.Contains(out, "projB") || !strings.Contains(out, "no version-control marker") {
		t.Errorf("skip report incomplete:\n%s", out)
	}
}
