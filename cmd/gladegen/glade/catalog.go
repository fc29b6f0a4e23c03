package glade

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yml
var baseCatalogYAML []byte

// Catalog maps (widget type, signal event) pairs to the extra parameters the
// toolkit passes to a handler for that signal, i.e. the arguments between the
// emitting widget and the user-data slot. A Catalog is immutable after
// construction and safe for unsynchronized concurrent reads.
type Catalog struct {
	params map[catalogKey][]string
}

type catalogKey struct {
	Type  string
	Event string
}

// genericType collects events shared by every widget type. Lookup falls back
// to it when the exact type has no entry for the event.
const genericType = "GtkWidget"

// normalizeEvent maps an event name to its catalog key form: lower case with
// dashes replaced by underscores, so "delete-event" and "delete_event" are
// the same signal.
func normalizeEvent(event string) string {
	return strings.ReplaceAll(strings.ToLower(event), "-", "_")
}

// Lookup returns the extra parameters for the given widget type and event.
// The event name is normalized first. An exact (type, event) entry wins;
// otherwise the GtkWidget fallback entry for the event is consulted, since
// those events exist on every widget. The second result is false when
// neither yields a row.
func (c *Catalog) Lookup(typeName, event string) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	ev := normalizeEvent(event)
	if params, ok := c.params[catalogKey{Type: typeName, Event: ev}]; ok {
		return params, true
	}
	if typeName != genericType {
		if params, ok := c.params[catalogKey{Type: genericType, Event: ev}]; ok {
			return params, true
		}
	}
	return nil, false
}

// Len returns the number of (type, event) entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.params)
}

// Entry is one catalog row, used for listing.
type Entry struct {
	Type   string
	Event  string
	Params []string
}

// Entries returns all rows sorted by type, then event.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, len(c.params))
	for key, params := range c.params {
		out = append(out, Entry{Type: key.Type, Event: key.Event, Params: params})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Event < out[j].Event
	})
	return out
}

// ParseCatalog decodes catalog data: a YAML mapping of widget type to event
// to parameter list. Event keys are normalized on load. An empty parameter
// list is a valid row and distinct from the event being absent.
func ParseCatalog(in []byte) (*Catalog, error) {
	var raw map[string]map[string][]string
	if err := yaml.Unmarshal(in, &raw); err != nil {
		return nil, err
	}
	c := &Catalog{params: make(map[catalogKey][]string)}
	for typeName, events := range raw {
		for event, params := range events {
			key := catalogKey{Type: typeName, Event: normalizeEvent(event)}
			row := make([]string, len(params))
			copy(row, params)
			c.params[key] = row
		}
	}
	return c, nil
}

// MergeCatalogs returns a fresh catalog containing base plus each override in
// order; a later catalog's row replaces an earlier one for the same
// (type, event). Nil catalogs are skipped.
func MergeCatalogs(base *Catalog, overrides ...*Catalog) *Catalog {
	merged := &Catalog{params: make(map[catalogKey][]string)}
	for _, c := range append([]*Catalog{base}, overrides...) {
		if c == nil {
			continue
		}
		for key, params := range c.params {
			merged.params[key] = params
		}
	}
	return merged
}

var (
	baseCatalogOnce sync.Once
	baseCatalog     *Catalog
)

// BaseCatalog returns the built-in signal catalog decoded from the embedded
// data. The data ships inside the binary, so a decode failure is a
// programming error and panics.
func BaseCatalog() *Catalog {
	baseCatalogOnce.Do(func() {
		c, err := ParseCatalog(baseCatalogYAML)
		if err != nil {
			panic(fmt.Sprintf("glade: embedded catalog: %v", err))
		}
		baseCatalog = c
	})
	return baseCatalog
}
