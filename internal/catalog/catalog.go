package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses every embedded template into a Definition. The returned slice
// is ordered by filename and carries unique names; both are enforced here so
// callers can treat the catalog as an immutable ordered list.
func Load() ([]Definition, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	seen := make(map[string]bool, len(entries))
	defs := make([]Definition, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}

		content, err := templateFS.ReadFile("templates/" + name)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", name, err)
		}

		def, err := parseDefinition(strings.TrimSuffix(name, ".md"), content)
		if err != nil {
			return nil, err
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate command name %q in catalog", def.Name)
		}
		seen[def.Name] = true
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("embedded catalog is empty")
	}
	return defs, nil
}

// MustLoad is Load for process start, where a broken embedded catalog is a
// build defect rather than a runtime condition.
func MustLoad() []Definition {
	defs, err := Load()
	if err != nil {
		panic(err)
	}
	return defs
}

func parseDefinition(name string, content []byte) (Definition, error) {
	meta, body, err := splitFrontmatter(content)
	if err != nil {
		return Definition{}, fmt.Errorf("template %s: %w", name, err)
	}

	var fm frontmatter
	if err := yaml.Unmarshal(meta, &fm); err != nil {
		return Definition{}, fmt.Errorf("template %s: parsing frontmatter: %w", name, err)
	}

	return Definition{
		Name:        name,
		Description: strings.TrimSpace(fm.Description),
		Template:    string(body),
		Agent:       Agent(strings.TrimSpace(fm.Agent)),
		Model:       strings.TrimSpace(fm.Model),
	}, nil
}

var fmDelimiter = []byte("---\n")

// splitFrontmatter separates the leading YAML block from the template body.
// The body is returned verbatim, including trailing whitespace.
func splitFrontmatter(content []byte) (meta, body []byte, err error) {
	if !bytes.HasPrefix(content, fmDelimiter) {
		return nil, nil, fmt.Errorf("missing frontmatter delimiter")
	}
	rest := content[len(fmDelimiter):]
	end := bytes.Index(rest, fmDelimiter)
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated frontmatter block")
	}
	return rest[:end], rest[end+len(fmDelimiter):], nil
}
