package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfirmFunc asks the user to approve a bulk action. Implementations that
// always return true make the engine non-interactive (--force, tests).
type ConfirmFunc func(prompt string) bool

// Distributor applies a set of agent files to eligible targets.
type Distributor struct {
	confirm ConfirmFunc
}

// NewDistributor creates a Distributor with the given confirmation hook.
// A nil hook behaves as always-confirmed.
func NewDistributor(confirm ConfirmFunc) *Distributor {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Distributor{confirm: confirm}
}

// DistributeOptions configures a distribution run.
type DistributeOptions struct {
	Overwrite bool // Replace destination files that already exist
	DryRun    bool // Record intended actions without touching the filesystem
}

// ErrCancelled is returned when the user declines the confirmation prompt.
// Callers treat it as a clean no-op, not a failure.
var ErrCancelled = fmt.Errorf("cancelled by user")

// Distribute copies the given agent files into every target, one target and
// one file at a time. A copy failure for one file never aborts the run; it
// is counted and attributed, and the engine moves on.
//
// For each (target, file) pair exactly one of install, update, skip, or
// error is recorded. The sum across a run equals targets x files.
func (d *Distributor) Distribute(targets []Target, files []AgentFile, opts DistributeOptions) (*RunSummary, error) {
	summary := &RunSummary{
		Targets:    len(targets),
		Files:      len(files),
		DryRun:     opts.DryRun,
		ByCategory: make(map[string]int),
	}

	if len(targets) == 0 || len(files) == 0 {
		return summary, nil
	}

	if !opts.DryRun {
		prompt := fmt.Sprintf("Distribute %d agent file(s) to %d target(s)?", len(files), len(targets))
		if opts.Overwrite {
			prompt = fmt.Sprintf("Distribute %d agent file(s) to %d target(s), overwriting existing files?",
				len(files), len(targets))
		}
		if !d.confirm(prompt) {
			return nil, ErrCancelled
		}
	}

	for _, target := range targets {
		result := d.distributeToTarget(target, files, opts)
		summary.Installed += result.Installed
		summary.Updated += result.Updated
		summary.Skipped += result.Skipped
		summary.Errors += result.Errors
		for _, action := range result.Actions {
			if action.Kind == ActionInstall || action.Kind == ActionUpdate {
				summary.ByCategory[action.File.Category]++
			}
		}
		summary.Results = append(summary.Results, result)
	}

	return summary, nil
}

// distributeToTarget applies every file to a single target.
func (d *Distributor) distributeToTarget(target Target, files []AgentFile, opts DistributeOptions) TargetResult {
	result := TargetResult{Target: target}
	destDir := filepath.Join(target.Path, installDir)

	dirErr := error(nil)
	if !opts.DryRun {
		// Idempotent: creating an existing directory is a no-op.
		dirErr = os.MkdirAll(destDir, 0o755)
	}

	for _, file := range files {
		action := FileAction{Target: target.Name, File: file, Intended: opts.DryRun}

		switch {
		case dirErr != nil:
			action.Kind = ActionError
			action.Err = fmt.Errorf("creating install directory: %w", dirErr)

		default:
			destPath := filepath.Join(destDir, file.Name)
			exists := fileExists(destPath)

			switch {
			case exists && !opts.Overwrite:
				action.Kind = ActionSkip
			case exists:
				action.Kind = ActionUpdate
			default:
				action.Kind = ActionInstall
			}

			if !opts.DryRun && action.Kind != ActionSkip {
				if err := copyFile(file.Path, destPath); err != nil {
					action.Kind = ActionError
					action.Err = fmt.Errorf("copying %s: %w", file.Name, err)
				}
			}
		}

		switch action.Kind {
		case ActionInstall:
			result.Installed++
		case ActionUpdate:
			result.Updated++
		case ActionSkip:
			result.Skipped++
		case ActionError:
			result.Errors++
		}
		result.Actions = append(result.Actions, action)
	}

	return result
}
