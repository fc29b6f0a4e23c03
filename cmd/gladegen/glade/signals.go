package glade

import (
	"fmt"
	"strings"
)

// frameworkPrefix marks toolkit-internal handlers. Signal declarations whose
// handler name starts with it (case-insensitively) are not user code and are
// dropped during extraction.
const frameworkPrefix = "gtk"

// SignalBinding is one event/handler pair on a node, with its resolved stub
// signature.
type SignalBinding struct {
	// Event is the signal name as declared ("clicked", "delete-event").
	Event string

	// Handler is the user's handler function name ("btnOk_clicked_cb").
	Handler string

	// Widget is the owning-widget token used in stub docstrings: the id of
	// the declaring node when present, otherwise the handler-name substring
	// before the first underscore.
	Widget string

	// Source references the declaring element, for diagnostics only.
	Source string

	// Args is the full resolved stub parameter list, e.g.
	// ["self", "widget", "event", "user_data=None"]. Computed once during
	// Build; read-only afterwards.
	Args []string
}

// extractSignals reads the signal declarations of one element into bindings:
// framework-internal handlers are discarded, the owning token is computed,
// and duplicate handler names within the element collapse to the
// first-seen declaration.
func extractSignals(el RawElement) []SignalBinding {
	var out []SignalBinding
	seen := map[string]bool{}
	for i, sig := range el.Signals {
		if sig.Handler == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(sig.Handler), frameworkPrefix) {
			continue
		}
		if seen[sig.Handler] {
			continue
		}
		seen[sig.Handler] = true
		out = append(out, SignalBinding{
			Event:   sig.Event,
			Handler: sig.Handler,
			Widget:  ownerToken(el.ID, sig.Handler),
			Source:  fmt.Sprintf("%s/signal[%d]", el.ID, i),
		})
	}
	return out
}

// ownerToken resolves the owning-widget token for a signal: the declaring
// element's id when present, else the handler name up to its first
// underscore, else the literal "widget".
func ownerToken(id, handler string) string {
	if id != "" {
		return id
	}
	if head, _, ok := strings.Cut(handler, "_"); ok && head != "" {
		return head
	}
	if handler != "" {
		return handler
	}
	return "widget"
}

// resolveSignals fills every binding's Args from the catalog. A catalog hit
// embeds the known event parameters between the leading "self, widget" pair
// and the trailing defaulted user-data parameter; a miss falls back to the
// plain three-parameter form and is never an error.
func resolveSignals(m *Model, cat *Catalog) {
	for i := range m.nodes {
		node := &m.nodes[i]
		for j := range node.Signals {
			b := &node.Signals[j]
			args := []string{"self", "widget"}
			if cat != nil {
				if params, ok := cat.Lookup(node.Type, b.Event); ok {
					args = append(args, params...)
				}
			}
			b.Args = append(args, "user_data=None")
		}
	}
}
