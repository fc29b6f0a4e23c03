package glade

import "sort"

// NodeID addresses a node inside the Model arena. The arena keeps document
// order, so NodeIDs double as a stable document-order key.
type NodeID int

// Role classifies how a node appears in generated code. It is resolved once
// by the promotion pass; before that every node is a plain field.
type Role uint8

const (
	// RoleField is the default: the widget is fetched from the builder
	// definition at the generated program's run time.
	RoleField Role = iota

	// RoleRoot marks the single application root. Its class carries the
	// entry scaffold and absorbs stray top-level objects.
	RoleRoot

	// RolePromoted marks a top-level window-like sibling of the root that
	// becomes its own class, constructed directly by the root.
	RolePromoted
)

// Node is one identified widget in the document. Children are owned;
// Siblings are non-owning references (same-parent peers, self excluded) kept
// as arena indexes to avoid mutual-ownership cycles.
type Node struct {
	ID       string
	Type     string
	Children []NodeID
	Siblings []NodeID
	Signals  []SignalBinding

	Role Role

	// Separator nodes (reserved id prefix) are excluded from codegen
	// entirely; their children still participate.
	Separator bool

	// LayoutOnly nodes (configurable pure-container types) produce no
	// field initialization but are still traversed for children.
	LayoutOnly bool
}

// Model is the arena of nodes built from one RawDocument. It is mutated
// only by the promotion pass (role flags) and then treated as read-only
// input to rendering.
type Model struct {
	nodes    []Node
	byID     map[string]NodeID
	topLevel []NodeID

	Requires []Requirement

	// Shadowed records ids that appeared more than once. The first
	// occurrence wins; later duplicates never enter the arena, which is a
	// known ambiguity surfaced in the layout report rather than hidden.
	Shadowed []string

	// Promotion results.
	Root     NodeID
	Promoted []NodeID

	// Sentinel reports that no window-like object was found and Root is a
	// synthetic placeholder. Generation still succeeds; callers must treat
	// this as a suspect success.
	Sentinel bool
}

// Node returns the arena node for id. The pointer stays valid for the
// model's lifetime; the arena never reallocates after Build.
func (m *Model) Node(id NodeID) *Node {
	return &m.nodes[id]
}

// Len returns the number of nodes in the arena.
func (m *Model) Len() int { return len(m.nodes) }

// TopLevel returns the ids of document-root nodes in document order.
func (m *Model) TopLevel() []NodeID {
	return m.topLevel
}

// Lookup finds a node by its document id.
func (m *Model) Lookup(id string) (NodeID, bool) {
	n, ok := m.byID[id]
	return n, ok
}

// Descendants returns every node reachable through Children from id, depth
// first, excluding id itself.
func (m *Model) Descendants(id NodeID) []NodeID {
	var out []NodeID
	var walk func(NodeID)
	walk = func(n NodeID) {
		for _, c := range m.nodes[n].Children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(id)
	return out
}

// OwnedBy returns the nodes structurally owned by the given class node: its
// descendants, and for the root class also every stray top-level node
// (neither root nor promoted) with its subtree.
func (m *Model) OwnedBy(class NodeID) []NodeID {
	out := m.Descendants(class)
	if m.nodes[class].Role != RoleRoot {
		return out
	}
	for _, t := range m.topLevel {
		if t == class || m.nodes[t].Role == RolePromoted {
			continue
		}
		out = append(out, t)
		out = append(out, m.Descendants(t)...)
	}
	return out
}

// FieldsOf returns the definition-sourced field ids for a class: owned
// nodes minus separators and layout-only containers, sorted by object id.
// Root and promoted nodes are never fields; promoted windows are
// constructed directly instead of looked up.
func (m *Model) FieldsOf(class NodeID) []string {
	var names []string
	seen := map[string]bool{}
	for _, n := range m.OwnedBy(class) {
		node := &m.nodes[n]
		if node.Role != RoleField || node.Separator || node.LayoutOnly {
			continue
		}
		if seen[node.ID] {
			continue
		}
		seen[node.ID] = true
		names = append(names, node.ID)
	}
	sort.Strings(names)
	return names
}

func (m *Model) addNode(n Node) NodeID {
	id := NodeID(len(m.nodes))
	m.nodes = append(m.nodes, n)
	m.byID[n.ID] = id
	return id
}
