package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RemoveOptions configures an uninstall.
type RemoveOptions struct {
	TargetDir  string   // Project root directory
	Names      []string // Specific file names (with or without suffix); empty means use Categories
	Categories []string // Remove everything belonging to these catalog categories
	Catalog    *Catalog // Required when Categories is set
}

// RemoveResult reports what an uninstall removed.
type RemoveResult struct {
	Removed  []string // File names removed
	NotFound []string // Requested names that were not installed
}

// Remove deletes distributed agent files from a target's install directory.
// Removing by category consults the catalog for the file names that category
// distributes. The install directory is cleaned up if it ends up empty.
func Remove(opts RemoveOptions) (*RemoveResult, error) {
	if opts.TargetDir == "" {
		return nil, fmt.Errorf("target directory is required")
	}

	names := make([]string, 0, len(opts.Names))
	for _, name := range opts.Names {
		if !strings.HasSuffix(name, agentFileSuffix) {
			name += agentFileSuffix
		}
		names = append(names, name)
	}

	if len(opts.Categories) > 0 {
		if opts.Catalog == nil {
			return nil, fmt.Errorf("catalog is required to remove by category")
		}
		files, warnings := opts.Catalog.Files(opts.Categories)
		if len(warnings) > 0 && len(files) == 0 {
			return nil, fmt.Errorf("no matching categories: %s", strings.Join(warnings, "; "))
		}
		for _, f := range files {
			names = append(names, f.Name)
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("nothing to remove: no names or categories given")
	}

	dir := filepath.Join(opts.TargetDir, installDir)
	result := &RemoveResult{}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if !fileExists(path) {
			result.NotFound = append(result.NotFound, name)
			continue
		}
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("removing %s: %w", name, err)
		}
		result.Removed = append(result.Removed, name)
	}

	cleanupEmptyDir(dir)
	return result, nil
}
