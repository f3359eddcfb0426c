package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// vcsMarkers are the entries whose presence marks a directory as
// version-controlled. .git may be a file in worktree checkouts.
var vcsMarkers = []string{".git", ".hg", ".svn"}

// DiscoverOptions configures target discovery.
type DiscoverOptions struct {
	Exclude       []string // Directory names to skip
	IncludeNonVCS bool     // Accept directories without a VCS marker
	DepotPath     string   // Depot location, excluded by resolved path as well as by name
}

// DiscoverTargets enumerates the immediate subdirectories of workspaceRoot
// and classifies each as an eligible distribution target or a skip.
//
// Classification order:
//  1. the depot repository itself (well-known name or same resolved path)
//  2. names on the exclusion list
//  3. directories without a VCS marker, unless IncludeNonVCS
//
// Remaining directories are eligible; their install directory is probed for
// existing agent files (informational only).
func DiscoverTargets(workspaceRoot string, opts DiscoverOptions) ([]Target, []SkipReason, error) {
	entries, err := os.ReadDir(workspaceRoot)
	if err != nil {
		return nil, nil, fmt.Errorf("reading workspace root: %w", err)
	}

	depotAbs := ""
	if opts.DepotPath != "" {
		depotAbs, _ = filepath.Abs(opts.DepotPath)
	}

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[strings.TrimSpace(name)] = true
	}

	var targets []Target
	var skipped []SkipReason
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()
		path := filepath.Join(workspaceRoot, name)

		if isDepotDir(name, path, depotAbs) {
			skipped = append(skipped, SkipReason{Name: name, Reason: "agent depot itself"})
			continue
		}
		if excluded[name] {
			skipped = append(skipped, SkipReason{Name: name, Reason: "on exclusion list"})
			continue
		}

		vcs := isVersionControlled(path)
		if !vcs && !opts.IncludeNonVCS {
			skipped = append(skipped, SkipReason{Name: name, Reason: "no version-control marker"})
			continue
		}

		agentsDir := filepath.Join(path, installDir)
		targets = append(targets, Target{
			Name:              name,
			Path:              path,
			VersionControlled: vcs,
			HasInstallDir:     dirExists(agentsDir),
			AgentCount:        countAgentFiles(agentsDir),
		})
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].Name < targets[j].Name })
	sort.Slice(skipped, func(i, j int) bool { return skipped[i].Name < skipped[j].Name })

	return targets, skipped, nil
}

// isDepotDir reports whether the directory is the depot repository itself,
// either by its well-known name or by resolving to the configured depot path.
func isDepotDir(name, path, depotAbs string) bool {
	if name == depotDirName {
		return true
	}
	if depotAbs == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return abs == depotAbs
}

// isVersionControlled checks for a VCS marker in the directory. The .git
// marker may be a plain file (git worktrees), so presence alone counts.
func isVersionControlled(path string) bool {
	for _, marker := range vcsMarkers {
		if _, err := os.Lstat(filepath.Join(path, marker)); err == nil {
			return true
		}
	}
	return false
}
