// Package core provides the business logic for agentdepot.
// It has zero UI dependencies and is independently testable.
package core

// AgentFile identifies a single distributable agent definition file.
// Instances are created at catalog-read time and never mutated.
type AgentFile struct {
	Category string // Category directory the file belongs to (e.g. "Debugging")
	Name     string // File name including the .agent.md suffix
	Path     string // Absolute source path in the depot
}

// AgentMetadata is the YAML frontmatter parsed from an agent file.
type AgentMetadata struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Model       string              `yaml:"model,omitempty"`
	Tools       []string            `yaml:"tools,omitempty"`
	Metadata    AgentMetadataExtras `yaml:"metadata,omitempty"`
}

// AgentMetadataExtras holds optional frontmatter fields.
type AgentMetadataExtras struct {
	Author  string `yaml:"author,omitempty"`
	Version string `yaml:"version,omitempty"`
}

// Target is a candidate destination directory discovered under the
// workspace root. Entries are rebuilt on every run; nothing is persisted.
type Target struct {
	Name              string // Directory base name
	Path              string // Absolute path
	VersionControlled bool   // A VCS marker (.git, .hg, .svn) is present
	HasInstallDir     bool   // .github/agents already exists
	AgentCount        int    // Existing .agent.md files in the install dir
}

// SkipReason explains why a directory was excluded during discovery.
type SkipReason struct {
	Name   string
	Reason string
}

// ActionKind classifies the outcome for one (target, file) pair.
// Exactly one kind is recorded per pair per run.
type ActionKind string

const (
	ActionInstall ActionKind = "install" // Destination did not exist
	ActionUpdate  ActionKind = "update"  // Destination existed, overwrite requested
	ActionSkip    ActionKind = "skip"    // Destination existed, overwrite not requested
	ActionError   ActionKind = "error"   // Copy failed
)

// FileAction records the outcome for a single (target, file) pair.
// In dry-run mode it records the intended action instead.
type FileAction struct {
	Target   string
	File     AgentFile
	Kind     ActionKind
	Err      error // Non-nil only when Kind == ActionError
	Intended bool  // True when recorded during a dry run
}

// TargetResult aggregates the per-target outcome of a distribution run.
type TargetResult struct {
	Target    Target
	Installed int
	Updated   int
	Skipped   int
	Errors    int
	Actions   []FileAction
}

// RunSummary aggregates all per-target results of a single run.
// Installed and Updated are tracked separately throughout; reports that
// want a single number print their sum.
type RunSummary struct {
	Targets    int
	Files      int
	Installed  int
	Updated    int
	Skipped    int
	Errors     int
	DryRun     bool
	ByCategory map[string]int // Files placed (installed+updated) per category
	Results    []TargetResult
}

// Placed returns the combined count of new installs and updates.
func (s *RunSummary) Placed() int {
	return s.Installed + s.Updated
}

// InstalledAgent is an agent file found on disk in a target's install
// directory.
type InstalledAgent struct {
	Name        string // File name including suffix
	DisplayName string // Frontmatter name, or the file stem if absent
	Description string
	Path        string
}

// Config is the agentdepot configuration stored at ~/.agentdepot/config.json.
// Every field is optional; flags always take precedence.
type Config struct {
	DepotPath         string   `json:"depotPath,omitempty"`
	WorkspaceRoot     string   `json:"workspaceRoot,omitempty"`
	Exclude           []string `json:"exclude,omitempty"`
	DefaultCategories []string `json:"defaultCategories,omitempty"`
}
