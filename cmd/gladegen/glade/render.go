package glade

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
)

// RenderContext carries everything rendering needs, the generation date
// included. Render is a pure function of the context: identical contexts
// produce byte-identical output.
type RenderContext struct {
	Model    *Model
	Root     NodeID
	Promoted []NodeID
	Requires []Requirement

	// SourcePath is written into the generated code as the definition file
	// it loads at its own run time.
	SourcePath string
	Date       time.Time

	DynamicInit bool
	LibraryMode bool
	Sentinel    bool
}

// NewRenderContext captures a built model for rendering. Mode flags start
// at their defaults: static init, script output.
func NewRenderContext(m *Model, sourcePath string, date time.Time) RenderContext {
	return RenderContext{
		Model:      m,
		Root:       m.Root,
		Promoted:   m.Promoted,
		Requires:   m.Requires,
		SourcePath: sourcePath,
		Date:       date,
		Sentinel:   m.Sentinel,
	}
}

type headerData struct {
	Date     string
	Requires []headerRequire
}

type headerRequire struct {
	Namespace string
	Version   string
}

type clsData struct {
	ClassName string
	Base      string
	Doc       string
	GladeFile string

	Objects      string
	Windows      string
	InitEnd      string
	SetObjectDef string
	SignalDefs   string
}

type mainData struct {
	RootClass string
}

// Render produces the final source text: header, optional script preamble,
// the root class, one class per promoted window in document order, and the
// optional runnable entry point. The result is normalized so no run of
// blank lines exceeds one and the text ends with exactly one newline.
func Render(ctx RenderContext) (string, error) {
	var sections []string

	header, err := renderHeader(ctx)
	if err != nil {
		return "", err
	}
	sections = append(sections, header)

	if !ctx.LibraryMode {
		meta, err := execTemplate("meta", nil)
		if err != nil {
			return "", err
		}
		sections = append(sections, meta)
	}

	var root string
	if ctx.Sentinel {
		root, err = renderSentinel(ctx)
	} else {
		root, err = renderClass(ctx, ctx.Root)
	}
	if err != nil {
		return "", err
	}
	sections = append(sections, root)

	for _, p := range ctx.Promoted {
		cls, err := renderClass(ctx, p)
		if err != nil {
			return "", err
		}
		sections = append(sections, cls)
	}

	if !ctx.LibraryMode {
		entry, err := execTemplate("main", mainData{RootClass: rootClassName(ctx)})
		if err != nil {
			return "", err
		}
		sections = append(sections, entry)
	}

	return normalize(strings.Join(sections, "\n\n")), nil
}

func renderHeader(ctx RenderContext) (string, error) {
	return execTemplate("header", headerData{
		Date:     ctx.Date.Format("01-02-2006"),
		Requires: requireLines(ctx.Requires),
	})
}

// requireLines maps document requirements onto gi.require_version lines,
// skipping the base toolkit itself (already registered unconditionally).
func requireLines(reqs []Requirement) []headerRequire {
	var out []headerRequire
	for _, r := range reqs {
		if r.Lib == "gtk+" || r.Lib == "gtk" {
			continue
		}
		out = append(out, headerRequire{Namespace: giNamespace(r.Lib), Version: r.Version})
	}
	return out
}

// giNamespaces maps requirement library names to their GObject
// introspection namespaces for the common cases; anything unknown falls
// back to upper-casing the first rune.
var giNamespaces = map[string]string{
	"gtksourceview": "GtkSource",
	"libhandy":      "Handy",
	"webkit2gtk":    "WebKit2",
	"vte":           "Vte",
}

func giNamespace(lib string) string {
	if ns, ok := giNamespaces[lib]; ok {
		return ns
	}
	return upperFirst(lib)
}

func renderClass(ctx RenderContext, class NodeID) (string, error) {
	m := ctx.Model
	node := m.Node(class)

	doc := "Supporting window with its own components."
	initEnd := ""
	windows := ""
	if class == ctx.Root {
		doc = "Main window with all components."
		initEnd = "        # Show the main window.\n        self.show_all()"
		windows = windowsBlock(m, ctx.Promoted)
	}

	objects := staticInit(m, class)
	setObjectDef := ""
	if ctx.DynamicInit {
		objects = dynamicInit(m, class)
		def, err := execTemplate("set_object", nil)
		if err != nil {
			return "", err
		}
		setObjectDef = indentLines(def, 4)
	}

	return execTemplate("cls", clsData{
		ClassName:    className(node.ID),
		Base:         pyBase(node.Type),
		Doc:          doc,
		GladeFile:    ctx.SourcePath,
		Objects:      objects,
		Windows:      windows,
		InitEnd:      initEnd,
		SetObjectDef: setObjectDef,
		SignalDefs:   classStubs(m, class),
	})
}

// renderSentinel emits the placeholder root class: it parses like any other
// class but raises as soon as the generated program instantiates it. Signal
// stubs are still emitted so every declared handler gets its definition.
func renderSentinel(ctx RenderContext) (string, error) {
	node := ctx.Model.Node(ctx.Root)
	return execTemplate("sentinel", clsData{
		ClassName:  className(node.ID),
		Base:       pyBase(node.Type),
		GladeFile:  ctx.SourcePath,
		SignalDefs: classStubs(ctx.Model, ctx.Root),
	})
}

// staticInit emits one sorted-by-id builder lookup per owned field.
func staticInit(m *Model, class NodeID) string {
	var lines []string
	for _, name := range m.FieldsOf(class) {
		lines = append(lines, fmt.Sprintf("        self.%s = self.builder.get_object('%s')", name, name))
	}
	return strings.Join(lines, "\n")
}

// dynamicInit emits the guinames tuple and the loop that feeds set_object.
func dynamicInit(m *Model, class NodeID) string {
	var b strings.Builder
	b.WriteString("        guinames = (\n")
	for _, name := range m.FieldsOf(class) {
		fmt.Fprintf(&b, "            '%s',\n", name)
	}
	b.WriteString("        )\n")
	b.WriteString("        for objname in guinames:\n")
	b.WriteString("            self.set_object(objname)")
	return b.String()
}

// windowsBlock emits the root's direct constructions of promoted windows,
// sorted by object id.
func windowsBlock(m *Model, promoted []NodeID) string {
	if len(promoted) == 0 {
		return ""
	}
	ids := make([]string, len(promoted))
	for i, p := range promoted {
		ids[i] = m.Node(p).ID
	}
	sort.Strings(ids)
	lines := []string{"        # Create supporting windows."}
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("        self.%s = %s()", id, className(id)))
	}
	return strings.Join(lines, "\n")
}

// classStubs collects the signal stubs for one class: the class node's own
// bindings first, then its owned nodes in ownership order. Duplicate
// handler names keep the first-seen binding; the surviving stubs are sorted
// alphabetically by handler name. Separator nodes contribute nothing.
func classStubs(m *Model, class NodeID) string {
	order := append([]NodeID{class}, m.OwnedBy(class)...)
	seen := map[string]bool{}
	var picked []SignalBinding
	for _, nid := range order {
		node := m.Node(nid)
		if node.Separator {
			continue
		}
		for _, b := range node.Signals {
			if seen[b.Handler] {
				continue
			}
			seen[b.Handler] = true
			picked = append(picked, b)
		}
	}
	sort.Slice(picked, func(i, j int) bool { return picked[i].Handler < picked[j].Handler })

	defs := make([]string, len(picked))
	for i, b := range picked {
		defs[i] = stubDef(b)
	}
	return strings.Join(defs, "\n\n")
}

// stubDef emits one handler stub. A destroy handler whose owning token
// names a window gets a Gtk.main_quit() body; every other stub is a pass.
func stubDef(b SignalBinding) string {
	body := "pass"
	if strings.Contains(b.Widget, "win") && b.Event == "destroy" {
		body = "Gtk.main_quit()"
	}
	return fmt.Sprintf("    def %s(%s):\n        \"\"\" Handler for %s.%s. \"\"\"\n        %s",
		b.Handler, strings.Join(b.Args, ", "), b.Widget, b.Event, body)
}

func rootClassName(ctx RenderContext) string {
	return className(ctx.Model.Node(ctx.Root).ID)
}

// className maps an object id to its generated class name: the id with its
// first rune upper-cased.
func className(id string) string { return upperFirst(id) }

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// pyBase maps a widget type to the Python-side base class: the type name
// without its Gtk prefix, or Window when nothing remains after trimming.
func pyBase(typeName string) string {
	base := strings.TrimPrefix(typeName, "Gtk")
	if base == "" {
		base = "Window"
	}
	return base
}

// normalize collapses every run of blank lines to a single blank line,
// drops leading blanks, and terminates the text with exactly one newline.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blanks := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			continue
		}
		if blanks > 0 && len(out) > 0 {
			out = append(out, "")
		}
		blanks = 0
		out = append(out, line)
	}
	return strings.Join(out, "\n") + "\n"
}
