package glade

import (
	"fmt"
	"strings"
)

// Layout renders a plain-text structural report of the model: the widget
// tree with role and flag annotations, one line per declared signal, and
// trailing notes for shadowed ids and a sentinel root. Presentation layers
// may style the text; the model emits plain text only.
func (m *Model) Layout() string {
	var b strings.Builder

	var walk func(id NodeID, depth int)
	walk = func(id NodeID, depth int) {
		node := m.Node(id)
		pad := strings.Repeat(" ", depth*4)
		line := fmt.Sprintf("%s%s (%s)", pad, node.ID, node.Type)
		if notes := m.nodeNotes(id); notes != "" {
			line += "  [" + notes + "]"
		}
		b.WriteString(line + "\n")
		for _, s := range node.Signals {
			fmt.Fprintf(&b, "%s    %s -> %s(%s)\n", pad, s.Event, s.Handler, strings.Join(s.Args, ", "))
		}
		for _, c := range node.Children {
			walk(c, depth+1)
		}
	}
	for _, t := range m.topLevel {
		walk(t, 0)
	}

	if len(m.Shadowed) > 0 {
		fmt.Fprintf(&b, "\nshadowed ids (first definition wins): %s\n", strings.Join(m.Shadowed, ", "))
	}
	if m.Sentinel {
		b.WriteString("\nno window-like object found: a sentinel root was substituted\n")
	}
	return b.String()
}

func (m *Model) nodeNotes(id NodeID) string {
	node := m.Node(id)
	var notes []string
	if id == m.Root {
		notes = append(notes, "root")
		if m.Sentinel {
			notes = append(notes, "sentinel")
		}
	}
	if node.Role == RolePromoted {
		notes = append(notes, "promoted")
	}
	if node.Separator {
		notes = append(notes, "separator")
	}
	if node.LayoutOnly {
		notes = append(notes, "layout-only")
	}
	return strings.Join(notes, ", ")
}
