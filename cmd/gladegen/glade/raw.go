package glade

// RawDocument is a widget-definition file as parsed from an external source
// (e.g. GtkBuilder XML). It is intentionally format-agnostic: no
// serialization tags. The gladexml package produces it; Build consumes it.
type RawDocument struct {
	// Requires lists the document-level library requirements, in document
	// order.
	Requires []Requirement

	// Objects holds the top-level object elements, in document order.
	// Elements may lack an id; Build decides what enters the model.
	Objects []RawElement
}

// RawElement is one object element of the source tree. ID may be empty;
// such elements never become nodes, but their children are still visited.
type RawElement struct {
	ID       string
	Class    string
	Signals  []RawSignal
	Children []RawElement
}

// RawSignal is a single signal declaration on an element: an event name
// bound to a handler function name.
type RawSignal struct {
	Event   string
	Handler string
}

// Requirement is a document-level library dependency declaration,
// e.g. lib "gtk+" version "3.20".
type Requirement struct {
	Lib     string
	Version string
}
