package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanTarget reads a target's install directory and returns the agent files
// present there. A missing install directory means nothing is installed.
func ScanTarget(targetPath string) ([]InstalledAgent, error) {
	dir := filepath.Join(targetPath, installDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading install directory: %w", err)
	}

	var installed []InstalledAgent
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), agentFileSuffix) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		agent := InstalledAgent{
			Name:        entry.Name(),
			DisplayName: strings.TrimSuffix(entry.Name(), agentFileSuffix),
			Path:        path,
		}

		// Frontmatter is optional for scanning; the file stem is enough.
		if metadata, err := ParseAgentMd(path); err == nil {
			if metadata.Name != "" {
				agent.DisplayName = metadata.Name
			}
			agent.Description = metadata.Description
		}

		installed = append(installed, agent)
	}

	sort.Slice(installed, func(i, j int) bool { return installed[i].Name < installed[j].Name })
	return installed, nil
}
