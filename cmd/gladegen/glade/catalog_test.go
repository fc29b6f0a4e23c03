package glade

import (
	"strings"
	"testing"
)

func requireParseCatalog(t *testing.T, yml string) *Catalog {
	t.Helper()
	c, err := ParseCatalog([]byte(yml))
	if err != nil {
		t.Fatalf("unexpected catalog parse error: %v", err)
	}
	return c
}

func requireLookup(t *testing.T, c *Catalog, typeName, event string) []string {
	t.Helper()
	params, ok := c.Lookup(typeName, event)
	if !ok {
		t.Fatalf("expected a catalog row for (%s, %s)", typeName, event)
	}
	return params
}

// ---------------------------------------------------------------------------
// Parsing and lookup
// ---------------------------------------------------------------------------

func TestCatalog_ParseAndLookup(t *testing.T) {
	yml := `
GtkWidget:
  destroy: []
  delete-event: [event]
GtkScale:
  format-value: [value]
`
	c := requireParseCatalog(t, yml)

	t.Run("entries counted", func(t *testing.T) {
		if c.Len() != 3 {
			t.Fatalf("expected 3 entries, got %d", c.Len())
		}
	})

	t.Run("exact row wins", func(t *testing.T) {
		params := requireLookup(t, c, "GtkScale", "format-value")
		if len(params) != 1 || params[0] != "value" {
			t.Fatalf("expected [value], got %v", params)
		}
	})

	t.Run("event names are normalized on both sides", func(t *testing.T) {
		params := requireLookup(t, c, "GtkScale", "Format_Value")
		if len(params) != 1 || params[0] != "value" {
			t.Fatalf("expected [value], got %v", params)
		}
	})

	t.Run("generic fallback row serves other types", func(t *testing.T) {
		params := requireLookup(t, c, "GtkScale", "delete-event")
		if len(params) != 1 || params[0] != "event" {
			t.Fatalf("expected [event], got %v", params)
		}
	})

	t.Run("empty parameter list is a valid row, distinct from a miss", func(t *testing.T) {
		params := requireLookup(t, c, "GtkButton", "destroy")
		if len(params) != 0 {
			t.Fatalf("expected no parameters, got %v", params)
		}
		if _, ok := c.Lookup("GtkButton", "no-such-event"); ok {
			t.Fatal("expected a miss for an unknown event")
		}
	})

	t.Run("nil catalog always misses", func(t *testing.T) {
		var none *Catalog
		if _, ok := none.Lookup("GtkWidget", "destroy"); ok {
			t.Fatal("expected nil catalog to miss")
		}
		if none.Len() != 0 {
			t.Fatal("expected nil catalog to be empty")
		}
	})

	t.Run("malformed data → error", func(t *testing.T) {
		if _, err := ParseCatalog([]byte("GtkWidget: 3")); err == nil {
			t.Fatal("expected error for non-mapping type entry")
		}
		if _, err := ParseCatalog([]byte("[ate: by: grue")); err == nil {
			t.Fatal("expected error for broken document")
		}
	})
}

// ---------------------------------------------------------------------------
// Merging
// ---------------------------------------------------------------------------

func TestCatalog_Merge(t *testing.T) {
	base := requireParseCatalog(t, `
GtkButton:
  clicked: []
GtkWidget:
  destroy: []
`)
	override := requireParseCatalog(t, `
GtkButton:
  clicked: [extra]
`)

	t.Run("later catalog wins for the same row", func(t *testing.T) {
		merged := MergeCatalogs(base, override)
		params := requireLookup(t, merged, "GtkButton", "clicked")
		if len(params) != 1 || params[0] != "extra" {
			t.Fatalf("expected override row [extra], got %v", params)
		}
	})

	t.Run("rows absent from overrides survive", func(t *testing.T) {
		merged := MergeCatalogs(base, override)
		requireLookup(t, merged, "GtkWidget", "destroy")
	})

	t.Run("nil catalogs are skipped", func(t *testing.T) {
		merged := MergeCatalogs(nil, base, nil, override)
		if merged.Len() != 2 {
			t.Fatalf("expected 2 entries, got %d", merged.Len())
		}
	})

	t.Run("inputs stay untouched", func(t *testing.T) {
		_ = MergeCatalogs(base, override)
		params := requireLookup(t, base, "GtkButton", "clicked")
		if len(params) != 0 {
			t.Fatalf("expected base row to stay parameterless, got %v", params)
		}
	})
}

// ---------------------------------------------------------------------------
// Built-in catalog
// ---------------------------------------------------------------------------

func TestCatalog_BuiltIn(t *testing.T) {
	c := BaseCatalog()

	t.Run("embedded data decodes", func(t *testing.T) {
		if c.Len() == 0 {
			t.Fatal("expected a non-empty built-in catalog")
		}
		if BaseCatalog() != c {
			t.Fatal("expected the built-in catalog to be loaded once")
		}
	})

	t.Run("well-known rows present", func(t *testing.T) {
		params := requireLookup(t, c, "GtkDialog", "response")
		if len(params) != 1 || params[0] != "response_id" {
			t.Fatalf("expected [response_id], got %v", params)
		}
		if params := requireLookup(t, c, "GtkButton", "clicked"); len(params) != 0 {
			t.Fatalf("expected clicked to carry no parameters, got %v", params)
		}
		// Generic events resolve for types the catalog never names.
		requireLookup(t, c, "GtkShortcutsWindow", "destroy")
	})

	t.Run("entries are sorted by type then event", func(t *testing.T) {
		entries := c.Entries()
		for i := 1; i < len(entries); i++ {
			prev, cur := entries[i-1], entries[i]
			if prev.Type > cur.Type || (prev.Type == cur.Type && prev.Event > cur.Event) {
				t.Fatalf("entries out of order at %d: %v before %v", i, prev, cur)
			}
		}
	})

	t.Run("event keys are stored normalized", func(t *testing.T) {
		for _, e := range c.Entries() {
			if strings.Contains(e.Event, "-") || e.Event != strings.ToLower(e.Event) {
				t.Fatalf("unnormalized event key %q for %s", e.Event, e.Type)
			}
		}
	})
}
