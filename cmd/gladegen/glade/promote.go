package glade

import "strings"

// windowVocab is the closed vocabulary of window-like name fragments used
// for root selection and sibling promotion.
var windowVocab = []string{"window", "dialog", "assistant"}

// Sentinel root substituted when the document has no window-like object.
const (
	sentinelRootID   = "mainWindow"
	sentinelRootType = "GtkWindow"
)

func windowLike(s string) bool {
	low := strings.ToLower(s)
	for _, frag := range windowVocab {
		if strings.Contains(low, frag) {
			return true
		}
	}
	return false
}

// promote selects the application root and elevates window-typed siblings
// of the root to standalone classes.
//
// Root candidates are nodes whose id or type contains a vocabulary
// fragment. A single candidate is the root. Among several, one whose id
// contains "main" is preferred, else the first in document order. With zero
// candidates a synthetic sentinel root is appended and the model marked:
// generation still succeeds, and the failure surfaces when the generated
// program itself runs.
//
// Sibling promotion keys on type alone. A sibling whose id merely sounds
// window-like stays a definition-lookup field.
func promote(m *Model) {
	var candidates []NodeID
	for i := range m.nodes {
		n := &m.nodes[i]
		if windowLike(n.ID) || windowLike(n.Type) {
			candidates = append(candidates, NodeID(i))
		}
	}

	switch len(candidates) {
	case 0:
		// Any id containing "window" would have been a candidate, so the
		// sentinel id cannot collide with a document id here.
		id := m.addNode(Node{ID: sentinelRootID, Type: sentinelRootType})
		m.topLevel = append(m.topLevel, id)
		m.Root = id
		m.Sentinel = true
	case 1:
		m.Root = candidates[0]
	default:
		m.Root = candidates[0]
		for _, id := range candidates {
			if strings.Contains(strings.ToLower(m.nodes[id].ID), "main") {
				m.Root = id
				break
			}
		}
	}
	m.nodes[m.Root].Role = RoleRoot

	for _, sib := range m.nodes[m.Root].Siblings {
		if windowLike(m.nodes[sib].Type) {
			m.nodes[sib].Role = RolePromoted
			m.Promoted = append(m.Promoted, sib)
		}
	}
}
