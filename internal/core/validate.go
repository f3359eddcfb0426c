package core

import (
	"fmt"
	"strings"
)

// ValidationIssue describes a single problem found in an agent file.
type ValidationIssue struct {
	File    AgentFile
	Message string
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("%s/%s: %s", i.File.Category, i.File.Name, i.Message)
}

// ValidateAgentFile checks one agent file against the catalog conventions:
// parseable frontmatter, a name matching the file stem, and a description.
func ValidateAgentFile(file AgentFile) []ValidationIssue {
	var issues []ValidationIssue

	metadata, err := ParseAgentMd(file.Path)
	if err != nil {
		return []ValidationIssue{{File: file, Message: err.Error()}}
	}

	stem := strings.TrimSuffix(file.Name, agentFileSuffix)
	switch {
	case metadata.Name == "":
		issues = append(issues, ValidationIssue{File: file, Message: "frontmatter is missing the name field"})
	case metadata.Name != stem:
		issues = append(issues, ValidationIssue{
			File:    file,
			Message: fmt.Sprintf("frontmatter name %q does not match file name %q", metadata.Name, stem),
		})
	}

	if metadata.Description == "" {
		issues = append(issues, ValidationIssue{File: file, Message: "frontmatter is missing the description field"})
	}

	for _, tool := range metadata.Tools {
		if strings.TrimSpace(tool) == "" {
			issues = append(issues, ValidationIssue{File: file, Message: "tools list contains an empty entry"})
			break
		}
	}

	return issues
}

// ValidateCatalog checks every file in the catalog and returns all issues
// found. An empty result means the depot is clean.
func ValidateCatalog(catalog *Catalog) []ValidationIssue {
	files, _ := catalog.Files(nil)

	var issues []ValidationIssue
	for _, file := range files {
		issues = append(issues, ValidateAgentFile(file)...)
	}
	return issues
}
