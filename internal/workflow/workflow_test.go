package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kmazurek/agentdepot/internal/core"
)

func depotWithAgents(t *testing.T) (string, *core.Catalog) {
	t.Helper()
	depot := t.TempDir()
	for category, stems := range map[string][]string{
		"Planning":  {"roadmapper"},
		"Debugging": {"root-cause"},
	} {
		dir := filepath.Join(depot, "agents", category)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		for _, stem := range stems {
			content := "---\nname: " + stem + "\ndescription: d\n---\n"
			if err := os.WriteFile(filepath.Join(dir, stem+".agent.md"), []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}

	catalog, err := core.LoadCatalog(depot)
	if err != nil {
		t.Fatal(err)
	}
	return depot, catalog
}

func writeWorkflow(t *testing.T, depot, name, content string) {
	t.Helper()
	dir := filepath.Join(depot, "workflows")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	depot, _ := depotWithAgents(t)
	writeWorkflow(t, depot, "triage.yaml", `
name: triage
description: Plan then debug
steps:
  - agent: Planning/roadmapper
    task: Break the bug report into steps
  - agent: Debugging/root-cause
    task: Find the root cause
`)
	writeWorkflow(t, depot, "notes.txt", "not a workflow")

	workflows, err := Load(depot)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(workflows) != 1 {
		t.Fatalf("expected 1 workflow, got %d", len(workflows))
	}

	wf := workflows[0]
	if wf.Name != "triage" || len(wf.Steps) != 2 {
		t.Errorf("workflow = %+v", wf)
	}
	if wf.Steps[0].Agent != "Planning/roadmapper" {
		t.Errorf("step 1 agent = %q", wf.Steps[0].Agent)
	}
}

func TestLoad_NoWorkflowsDir(t *testing.T) {
	workflows, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("missing workflows dir should not be an error: %v", err)
	}
	if workflows != nil {
		t.Errorf("expected no workflows, got %v", workflows)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	depot := t.TempDir()
	writeWorkflow(t, depot, "bad.yaml", "name: [unclosed")

	if _, err := Load(depot); err == nil {
		t.Error("expected error for malformed workflow")
	}
}

func TestValidate(t *testing.T) {
	_, catalog := depotWithAgents(t)

	tests := []struct {
		name         string
		wf           Workflow
		wantProblems int
	}{
		{
			name: "valid",
			wf: Workflow{
				Name: "ok",
				Steps: []Step{
					{Agent: "Planning/roadmapper", Task: "plan"},
					{Agent: "Debugging/root-cause", Task: "debug"},
				},
			},
			wantProblems: 0,
		},
		{
			name:         "missing name and steps",
			wf:           Workflow{},
			wantProblems: 2,
		},
		{
			name: "unknown agent",
			wf: Workflow{
				Name:  "bad-ref",
				Steps: []Step{{Agent: "Debugging/ghost", Task: "boo"}},
			},
			wantProblems: 1,
		},
		{
			name: "malformed agent reference",
			wf: Workflow{
				Name:  "bad-form",
				Steps: []Step{{Agent: "just-a-name", Task: "x"}},
			},
			wantProblems: 1,
		},
		{
			name: "missing task",
			wf: Workflow{
				Name:  "no-task",
				Steps: []Step{{Agent: "Planning/roadmapper"}},
			},
			wantProblems: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := Validate(tt.wf, catalog)
			if len(problems) != tt.wantProblems {
				t.Errorf("got %d problems, want %d: %v", len(problems), tt.wantProblems, problems)
			}
		})
	}
}

func TestFind(t *testing.T) {
	workflows := []Workflow{{Name: "a"}, {Name: "b"}}
	if _, ok := Find(workflows, "b"); !ok {
		t.Error("Find should locate existing workflow")
	}
	if _, ok := Find(workflows, "c"); ok {
		t.Error("Find should miss unknown workflow")
	}
}
