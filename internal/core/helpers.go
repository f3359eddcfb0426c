package core

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// agentFileSuffix is the fixed suffix carried by every distributable file.
	agentFileSuffix = ".agent.md"

	// installDir is the project-relative directory agent files are placed in.
	installDir = ".github/agents"

	// depotDirName is the well-known directory name of the depot repository
	// itself. Discovery never selects it as a target.
	depotDirName = "agent-depot"

	// catalogDirName is the depot subdirectory holding one directory per category.
	catalogDirName = "agents"
)

// AgentFileSuffix returns the fixed file suffix for agent definitions.
func AgentFileSuffix() string { return agentFileSuffix }

// InstallDir returns the project-relative install directory convention.
func InstallDir() string { return installDir }

// copyFile copies a single file from src to dst, truncating dst if present.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer func() { _ = dstFile.Close() }()

	_, err = io.Copy(dstFile, srcFile)
	return err
}

// countAgentFiles counts regular files with the agent suffix in dir.
// A missing directory counts as zero.
func countAgentFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), agentFileSuffix) {
			n++
		}
	}
	return n
}

// cleanupEmptyDir removes a directory if it is empty.
func cleanupEmptyDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	if len(entries) == 0 {
		_ = os.Remove(dir)
	}
}

// dirExists returns true if the path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// expandPath expands a leading ~ to the home directory and $VAR references
// to environment values.
func expandPath(p string) string {
	if strings.Contains(p, "$") {
		p = os.Expand(p, os.Getenv)
	}
	if strings.HasPrefix(p, "~/") {
		home, _ := os.UserHomeDir()
		p = filepath.Join(home, p[2:])
	} else if p == "~" {
		home, _ := os.UserHomeDir()
		p = home
	}
	return p
}
