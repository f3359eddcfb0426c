package core

import (
	"os"
	"path/filepath"
	"testing"
)

func catalogForTest(t *testing.T) (*Catalog, string) {
	t.Helper()
	depot := t.TempDir()
	writeAgentFile(t, depot, "Debugging", "root-cause", "Finds root causes")
	writeAgentFile(t, depot, "Testing", "unit-writer", "Writes unit tests")

	catalog, err := LoadCatalog(depot)
	if err != nil {
		t.Fatal(err)
	}
	return catalog, depot
}

func eligibleTarget(t *testing.T, root, name string) Target {
	t.Helper()
	path := makeRepo(t, root, name, true)
	return Target{Name: name, Path: path, VersionControlled: true}
}

func TestDistribute_InstallsNewFiles(t *testing.T) {
	catalog, _ := catalogForTest(t)
	files, _ := catalog.Files(nil)

	root := t.TempDir()
	target := eligibleTarget(t, root, "projA")

	dist := NewDistributor(nil)
	summary, err := dist.Distribute([]Target{target}, files, DistributeOptions{})
	if err != nil {
		t.Fatalf("Distribute() error: %v", err)
	}

	if summary.Installed != 2 || summary.Updated != 0 || summary.Skipped != 0 || summary.Errors != 0 {
		t.Errorf("summary = %+v, want 2 installed", summary)
	}

	for _, name := range []string{"root-cause.agent.md", "unit-writer.agent.md"} {
		if !fileExists(filepath.Join(target.Path, ".github", "agents", name)) {
			t.Errorf("%s not installed", name)
		}
	}

	if summary.ByCategory["Debugging"] != 1 || summary.ByCategory["Testing"] != 1 {
		t.Errorf("ByCategory = %v", summary.ByCategory)
	}
}

func TestDistribute_SkipsExistingWithoutOverwrite(t *testing.T) {
	catalog, _ := catalogForTest(t)
	files, _ := catalog.Files([]string{"Debugging"})

	root := t.TempDir()
	target := eligibleTarget(t, root, "projA")

	dest := filepath.Join(target.Path, ".github", "agents", "root-cause.agent.md")
	os.MkdirAll(filepath.Dir(dest), 0o755)
	os.WriteFile(dest, []byte("local edits"), 0o644)

	dist := NewDistributor(nil)
	summary, err := dist.Distribute([]Target{target}, files, DistributeOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if summary.Skipped != 1 || summary.Installed != 0 {
		t.Errorf("summary = %+v, want 1 skipped", summary)
	}

	// Skip must not touch the file.
	data, _ := os.ReadFile(dest)
	if string(data) != "local edits" {
		t.Errorf("skipped file was modified: %q", data)
	}
}

func TestDistribute_OverwriteUpdatesExisting(t *testing.T) {
	catalog, _ := catalogForTest(t)
	files, _ := catalog.Files([]string{"Debugging"})

	root := t.TempDir()
	target := eligibleTarget(t, root, "projA")

	dest := filepath.Join(target.Path, ".github", "agents", "root-cause.agent.md")
	os.MkdirAll(filepath.Dir(dest), 0o755)
	os.WriteFile(dest, []byte("stale"), 0o644)

	dist := NewDistributor(nil)
	summary, err := dist.Distribute([]Target{target}, files, DistributeOptions{Overwrite: true})
	if err != nil {
		t.Fatal(err)
	}

	if summary.Updated != 1 || summary.Installed != 0 || summary.Skipped != 0 {
		t.Errorf("summary = %+v, want 1 updated", summary)
	}

	// Overwrite replaces the destination with the source content.
	src, _ := os.ReadFile(files[0].Path)
	dst, _ := os.ReadFile(dest)
	if string(src) != string(dst) {
		t.Error("destination content does not match source after overwrite")
	}
}

func TestDistribute_DryRunTouchesNothing(t *testing.T) {
	catalog, _ := catalogForTest(t)
	files, _ := catalog.Files(nil)

	root := t.TempDir()
	target := eligibleTarget(t, root, "projA")

	dist := NewDistributor(func(string) bool {
		t.Error("dry run must not prompt")
		return false
	})
	summary, err := dist.Distribute([]Target{target}, files, DistributeOptions{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}

	if summary.Installed != 2 {
		t.Errorf("dry run should report 2 intended installs, got %+v", summary)
	}
	if dirExists(filepath.Join(target.Path, ".github")) {
		t.Error("dry run created the install directory")
	}
	for _, action := range summary.Results[0].Actions {
		if !action.Intended {
			t.Errorf("action %v not marked intended in dry run", action.Kind)
		}
	}
}

func TestDistribute_ExactlyOneActionPerPair(t *testing.T) {
	catalog, _ := catalogForTest(t)
	files, _ := catalog.Files(nil)

	root := t.TempDir()
	targets := []Target{
		eligibleTarget(t, root, "projA"),
		eligibleTarget(t, root, "projB"),
	}

	// Pre-seed one destination so the run mixes installs and skips.
	dest := filepath.Join(targets[0].Path, ".github", "agents", "root-cause.agent.md")
	os.MkdirAll(filepath.Dir(dest), 0o755)
	os.WriteFile(dest, []byte("existing"), 0o644)

	dist := NewDistributor(nil)
	summary, err := dist.Distribute(targets, files, DistributeOptions{})
	if err != nil {
		t.Fatal(err)
	}

	total := summary.Installed + summary.Updated + summary.Skipped + summary.Errors
	if want := len(targets) * len(files); total != want {
		t.Errorf("action total = %d, want targets x files = %d", total, want)
	}
}

func TestDistribute_ErrorIsFaultIsolated(t *testing.T) {
	catalog, _ := catalogForTest(t)
	files, _ := catalog.Files(nil)

	// Removing a source file after catalog load forces a per-file copy error.
	os.Remove(files[0].Path)

	root := t.TempDir()
	target := eligibleTarget(t, root, "projA")

	dist := NewDistributor(nil)
	summary, err := dist.Distribute([]Target{target}, files, DistributeOptions{})
	if err != nil {
		t.Fatalf("run-level error for a per-file failure: %v", err)
	}

	if summary.Errors != 1 {
		t.Errorf("Errors = %d, want 1", summary.Errors)
	}
	if summary.Installed != 1 {
		t.Errorf("Installed = %d, want 1 (later file still attempted)", summary.Installed)
	}

	var errAction *FileAction
	for i, action := range summary.Results[0].Actions {
		if action.Kind == ActionError {
			errAction = &summary.Results[0].Actions[i]
		}
	}
	if errAction == nil || errAction.Err == nil {
		t.Fatal("error action should carry the underlying error")
	}
}

func TestDistribute_DeclinedConfirmation(t *testing.T) {
	catalog, _ := catalogForTest(t)
	files, _ := catalog.Files(nil)

	root := t.TempDir()
	target := eligibleTarget(t, root, "projA")

	dist := NewDistributor(func(string) bool { return false })
	_, err := dist.Distribute([]Target{target}, files, DistributeOptions{})
	if err != ErrCancelled {
		t.Errorf("err = %v, want ErrCancelled", err)
	}
	if dirExists(filepath.Join(target.Path, ".github")) {
		t.Error("declined run must not write anything")
	}
}

func TestDistribute_NothingToDo(t *testing.T) {
	dist := NewDistributor(func(string) bool {
		t.Error("empty run must not prompt")
		return false
	})
	summary, err := dist.Distribute(nil, nil, DistributeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Placed() != 0 || summary.Targets != 0 {
		t.Errorf("summary = %+v, want all-zero", summary)
	}
}
