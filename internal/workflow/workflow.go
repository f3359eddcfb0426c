// Package workflow loads and validates the multi-agent workflow definitions
// shipped in the depot's workflows/ directory. Workflows describe ordered
// sequences of agent invocations; agentdepot only catalogs and validates
// them, it does not execute anything.
package workflow

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kmazurek/agentdepot/internal/core"
)

const workflowsDirName = "workflows"

// Step is a single workflow entry: which agent runs and what it is told to do.
type Step struct {
	Agent string `yaml:"agent"` // "<Category>/<name>" referencing a catalog file
	Task  string `yaml:"task"`
}

// Workflow is a named sequence of steps parsed from a YAML definition.
type Workflow struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Steps       []Step `yaml:"steps"`

	Path string `yaml:"-"` // Source file, set at load time
}

// Load reads every *.yaml / *.yml file under <depot>/workflows. A depot
// without a workflows directory has zero workflows; that is not an error.
func Load(depotPath string) ([]Workflow, error) {
	dir := filepath.Join(depotPath, workflowsDirName)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading workflows directory: %w", err)
	}

	var workflows []Workflow
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}

		var wf Workflow
		if err := yaml.Unmarshal(data, &wf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}
		wf.Path = path
		workflows = append(workflows, wf)
	}

	sort.Slice(workflows, func(i, j int) bool { return workflows[i].Name < workflows[j].Name })
	return workflows, nil
}

// Find returns the workflow with the given name.
func Find(workflows []Workflow, name string) (Workflow, bool) {
	for _, wf := range workflows {
		if wf.Name == name {
			return wf, true
		}
	}
	return Workflow{}, false
}

// Validate checks a workflow's shape and that every step references an agent
// present in the catalog. All problems are returned, not just the first.
func Validate(wf Workflow, catalog *core.Catalog) []string {
	var problems []string

	if wf.Name == "" {
		problems = append(problems, "workflow is missing a name")
	}
	if len(wf.Steps) == 0 {
		problems = append(problems, "workflow has no steps")
	}

	for i, step := range wf.Steps {
		if step.Task == "" {
			problems = append(problems, fmt.Sprintf("step %d is missing a task", i+1))
		}
		if step.Agent == "" {
			problems = append(problems, fmt.Sprintf("step %d is missing an agent", i+1))
			continue
		}

		category, name, ok := strings.Cut(step.Agent, "/")
		if !ok {
			problems = append(problems, fmt.Sprintf("step %d: agent %q is not in Category/name form", i+1, step.Agent))
			continue
		}
		if _, found := catalog.Lookup(category, name); !found {
			problems = append(problems, fmt.Sprintf("step %d: agent %q not found in depot", i+1, step.Agent))
		}
	}

	return problems
}
