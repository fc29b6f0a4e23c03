package glade

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/*.py
var templateFS embed.FS

var (
	templateOnce sync.Once
	templateSet  map[string]*template.Template
	templateErr  error
)

// loadTemplates parses every embedded template file once. The files are
// near-Python: lines ending in "# ignore" exist only to keep them lintable
// in an editor and are stripped before parsing.
func loadTemplates() (map[string]*template.Template, error) {
	templateOnce.Do(func() {
		entries, err := templateFS.ReadDir("templates")
		if err != nil {
			templateErr = fmt.Errorf("phase=render path=templates: %w", err)
			return
		}
		set := make(map[string]*template.Template, len(entries))
		for _, entry := range entries {
			name := strings.TrimSuffix(entry.Name(), ".py")
			raw, err := templateFS.ReadFile(path.Join("templates", entry.Name()))
			if err != nil {
				templateErr = fmt.Errorf("phase=render path=templates/%s: %w", entry.Name(), err)
				return
			}
			t, err := template.New(name).Option("missingkey=error").Parse(stripIgnored(string(raw)))
			if err != nil {
				templateErr = fmt.Errorf("phase=render path=templates/%s: %w", entry.Name(), err)
				return
			}
			set[name] = t
		}
		templateSet = set
	})
	return templateSet, templateErr
}

// lookupTemplate returns the parsed template for a bare name ("cls", "main").
func lookupTemplate(name string) (*template.Template, error) {
	set, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	t, ok := set[name]
	if !ok {
		return nil, fmt.Errorf("phase=render path=templates/%s.py: %w", name, ErrUnknownTemplate)
	}
	return t, nil
}

// execTemplate renders one named template with data.
func execTemplate(name string, data any) (string, error) {
	t, err := lookupTemplate(name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("phase=render path=templates/%s.py: %w", name, err)
	}
	return b.String(), nil
}

// stripIgnored drops every line whose trimmed tail is "# ignore"
// (case-insensitive), then the leading blank lines that leaves behind, and
// trailing blank lines.
func stripIgnored(content string) string {
	var out []string
	yielded := false
	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimRight(line, " \t")
		if strings.HasSuffix(strings.ToLower(stripped), "# ignore") {
			continue
		}
		if !yielded && stripped == "" {
			continue
		}
		out = append(out, line)
		yielded = true
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n \t")
}

// indentLines prefixes every non-blank line of s with indent spaces.
func indentLines(s string, indent int) string {
	if s == "" {
		return ""
	}
	pad := strings.Repeat(" ", indent)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
