package glade

import (
	"fmt"
	"strings"
)

// SeparatorPrefix is the reserved id marker for separator objects. Nodes
// whose id starts with it are excluded from code generation entirely.
const SeparatorPrefix = "sep_"

// DefaultLayoutTypes is the default set of layout-only container types:
// pure containers with no state worth a field in the generated class.
// Their children still produce fields.
var DefaultLayoutTypes = []string{
	"GtkBox",
	"GtkButtonBox",
	"GtkFixed",
	"GtkGrid",
	"GtkLayout",
	"GtkPaned",
	"GtkViewport",
}

// Options configures model building and promotion.
type Options struct {
	// LayoutTypes overrides DefaultLayoutTypes when non-nil.
	LayoutTypes []string

	// Catalog resolves event signatures. Nil means every lookup misses and
	// all handlers get the default signature.
	Catalog *Catalog
}

func (o Options) layoutSet() map[string]bool {
	types := o.LayoutTypes
	if types == nil {
		types = DefaultLayoutTypes
	}
	set := make(map[string]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

// Build walks a RawDocument into a Model: the node arena with identity,
// type, ownership, sibling references and resolved signal bindings, plus
// the promotion results (root selection, sibling promotion).
//
// Elements without an id never enter the model, but their subtrees are
// still visited: an id-less wrapper's children attach to the nearest
// id-bearing ancestor, or to the top level when there is none.
func Build(doc RawDocument, opts Options) (*Model, error) {
	m := &Model{
		byID:     make(map[string]NodeID),
		Requires: doc.Requires,
		Root:     -1,
	}
	layout := opts.layoutSet()

	var visit func(el RawElement, parent NodeID)
	visit = func(el RawElement, parent NodeID) {
		if el.ID == "" {
			// No identity: skip the element itself, keep walking. Children
			// attach to whatever id-bearing ancestor we were under.
			for _, c := range el.Children {
				visit(c, parent)
			}
			return
		}
		if _, dup := m.byID[el.ID]; dup {
			// First-encountered node wins; the duplicate is shadowed but
			// its subtree may still contribute nodes of its own.
			m.Shadowed = append(m.Shadowed, el.ID)
			for _, c := range el.Children {
				visit(c, parent)
			}
			return
		}

		id := m.addNode(Node{
			ID:         el.ID,
			Type:       el.Class,
			Signals:    extractSignals(el),
			Separator:  strings.HasPrefix(el.ID, SeparatorPrefix),
			LayoutOnly: layout[el.Class],
		})
		if parent >= 0 {
			m.nodes[parent].Children = append(m.nodes[parent].Children, id)
		} else {
			m.topLevel = append(m.topLevel, id)
		}

		for _, c := range el.Children {
			visit(c, id)
		}
	}

	for _, el := range doc.Objects {
		visit(el, -1)
	}

	if len(m.nodes) == 0 {
		return nil, fmt.Errorf("phase=build path=<doc>: %w", ErrEmptyModel)
	}

	fillSiblings(m)
	resolveSignals(m, opts.Catalog)
	promote(m)
	return m, nil
}

// fillSiblings records, for every node, its same-parent peers as non-owning
// index references. Top-level nodes are siblings of each other.
func fillSiblings(m *Model) {
	groups := [][]NodeID{m.topLevel}
	for i := range m.nodes {
		if len(m.nodes[i].Children) > 0 {
			groups = append(groups, m.nodes[i].Children)
		}
	}
	for _, group := range groups {
		for _, self := range group {
			for _, peer := range group {
				if peer != self {
					m.nodes[self].Siblings = append(m.nodes[self].Siblings, peer)
				}
			}
		}
	}
}
