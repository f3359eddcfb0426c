package core

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog enumerates the agent files available for distribution from a depot.
// The category set is read from the filesystem once at load time; repeated
// calls against the same snapshot return the same entries.
type Catalog struct {
	root       string // <depot>/agents
	categories []string
	files      map[string][]AgentFile // category -> files, sorted by name
}

// LoadCatalog reads the catalog from the depot root. Each immediate
// subdirectory of <depot>/agents is a category; files inside carrying the
// .agent.md suffix are distributable entries.
func LoadCatalog(depotPath string) (*Catalog, error) {
	root := filepath.Join(depotPath, catalogDirName)
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory: %w", err)
	}

	cat := &Catalog{
		root:  root,
		files: make(map[string][]AgentFile),
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		category := entry.Name()
		categoryDir := filepath.Join(root, category)

		files, err := os.ReadDir(categoryDir)
		if err != nil {
			continue
		}

		var agentFiles []AgentFile
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), agentFileSuffix) {
				continue
			}
			agentFiles = append(agentFiles, AgentFile{
				Category: category,
				Name:     f.Name(),
				Path:     filepath.Join(categoryDir, f.Name()),
			})
		}
		sort.Slice(agentFiles, func(i, j int) bool { return agentFiles[i].Name < agentFiles[j].Name })

		cat.categories = append(cat.categories, category)
		cat.files[category] = agentFiles
	}
	sort.Strings(cat.categories)

	return cat, nil
}

// Root returns the catalog root directory (<depot>/agents).
func (c *Catalog) Root() string { return c.root }

// Categories returns the sorted category names found in the depot.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// HasCategory reports whether the catalog contains the named category.
func (c *Catalog) HasCategory(name string) bool {
	_, ok := c.files[name]
	return ok
}

// Files returns the agent files in the requested categories, grouped by
// category. An empty request means all categories. A requested category
// that does not exist contributes zero entries and a warning; the remaining
// categories are still returned.
func (c *Catalog) Files(categories []string) ([]AgentFile, []string) {
	if len(categories) == 0 {
		categories = c.categories
	}

	var files []AgentFile
	var warnings []string
	for _, category := range categories {
		entries, ok := c.files[category]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("category %q not found in depot (available: %s)",
				category, strings.Join(c.categories, ", ")))
			continue
		}
		files = append(files, entries...)
	}
	return files, warnings
}

// Lookup finds a single agent file by category and name. The name may be
// given with or without the .agent.md suffix.
func (c *Catalog) Lookup(category, name string) (AgentFile, bool) {
	if !strings.HasSuffix(name, agentFileSuffix) {
		name += agentFileSuffix
	}
	for _, f := range c.files[category] {
		if f.Name == name {
			return f, true
		}
	}
	return AgentFile{}, false
}

// ParseAgentMd reads and parses the YAML frontmatter from an agent file.
// Files without a frontmatter block yield an error; the body is not parsed.
func ParseAgentMd(path string) (*AgentMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// Look for opening ---
	if !scanner.Scan() {
		return nil, fmt.Errorf("empty file: %s", path)
	}
	if strings.TrimSpace(scanner.Text()) != "---" {
		return nil, fmt.Errorf("no frontmatter in %s", path)
	}

	// Collect frontmatter lines until closing ---
	var frontmatter strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			break
		}
		frontmatter.WriteString(line)
		frontmatter.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var metadata AgentMetadata
	if err := yaml.Unmarshal([]byte(frontmatter.String()), &metadata); err != nil {
		return nil, fmt.Errorf("parsing frontmatter in %s: %w", path, err)
	}

	return &metadata, nil
}

// AgentBody returns the markdown content of an agent file with the
// frontmatter block stripped. Files without frontmatter are returned whole.
func AgentBody(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	if !strings.HasPrefix(content, "---") {
		return content, nil
	}

	// Find the closing delimiter after the first line.
	rest := content[strings.Index(content, "---")+3:]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return content, nil
	}
	body := rest[idx+len("\n---"):]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	}
	return body, nil
}
