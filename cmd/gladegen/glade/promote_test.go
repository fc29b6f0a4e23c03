package glade

import (
	"strings"
	"testing"
)

func rootID(m *Model) string {
	return m.Node(m.Root).ID
}

// ---------------------------------------------------------------------------
// Root selection
// ---------------------------------------------------------------------------

func TestPromote_RootSelection(t *testing.T) {
	t.Run("single window-like object becomes the root", func(t *testing.T) {
		m := requireBuild(t, RawDocument{Objects: []RawElement{
			obj("winMain", "GtkWindow",
				obj("btnOk", "GtkButton")),
		}}, Options{})

		if rootID(m) != "winMain" {
			t.Fatalf("expected root winMain, got %q", rootID(m))
		}
		if m.Sentinel {
			t.Fatal("expected no sentinel for a real root")
		}
		if requireNode(t, m, "winMain").Role != RoleRoot {
			t.Fatal("expected winMain to carry the root role")
		}
	})

	t.Run("several candidates: an id containing 'main' wins", func(t *testing.T) {
		m := requireBuild(t, RawDocument{Objects: []RawElement{
			obj("dlgAbout", "GtkDialog"),
			obj("winMain", "GtkWindow"),
			obj("winSplash", "GtkWindow"),
		}}, Options{})

		if rootID(m) != "winMain" {
			t.Fatalf("expected root winMain, got %q", rootID(m))
		}
		if got := ids(m, m.Promoted); !sameStrings(got, []string{"dlgAbout", "winSplash"}) {
			t.Fatalf("expected promoted [dlgAbout winSplash], got %v", got)
		}
	})

	t.Run("several candidates without 'main': first in document order wins", func(t *testing.T) {
		m := requireBuild(t, RawDocument{Objects: []RawElement{
			obj("dlgAbout", "GtkDialog"),
			obj("winSplash", "GtkWindow"),
		}}, Options{})

		if rootID(m) != "dlgAbout" {
			t.Fatalf("expected root dlgAbout, got %q", rootID(m))
		}
		if got := ids(m, m.Promoted); !sameStrings(got, []string{"winSplash"}) {
			t.Fatalf("expected promoted [winSplash], got %v", got)
		}
	})

	t.Run("id vocabulary alone qualifies a candidate", func(t *testing.T) {
		m := requireBuild(t, RawDocument{Objects: []RawElement{
			obj("settings_dialog", "GtkBox"),
		}}, Options{})

		if rootID(m) != "settings_dialog" {
			t.Fatalf("expected root settings_dialog, got %q", rootID(m))
		}
		if m.Sentinel {
			t.Fatal("expected no sentinel")
		}
	})

	t.Run("type vocabulary alone qualifies a candidate", func(t *testing.T) {
		m := requireBuild(t, RawDocument{Objects: []RawElement{
			obj("frmEdit", "GtkWindow"),
		}}, Options{})

		if rootID(m) != "frmEdit" {
			t.Fatalf("expected root frmEdit, got %q", rootID(m))
		}
	})

	t.Run("vocabulary match is case-insensitive", func(t *testing.T) {
		m := requireBuild(t, RawDocument{Objects: []RawElement{
			obj("AppWINDOW", "GtkBin"),
		}}, Options{})

		if rootID(m) != "AppWINDOW" {
			t.Fatalf("expected root AppWINDOW, got %q", rootID(m))
		}
	})

	t.Run("assistants count as window-like", func(t *testing.T) {
		m := requireBuild(t, RawDocument{Objects: []RawElement{
			obj("setupWizard", "GtkAssistant"),
		}}, Options{})

		if rootID(m) != "setupWizard" {
			t.Fatalf("expected root setupWizard, got %q", rootID(m))
		}
	})
}

// ---------------------------------------------------------------------------
// Sentinel root
// ---------------------------------------------------------------------------

func TestPromote_Sentinel(t *testing.T) {
	m := requireBuild(t, RawDocument{Objects: []RawElement{
		withSignals(obj("btnGo", "GtkButton"),
			RawSignal{Event: "clicked", Handler: "btnGo_clicked_cb"},
		),
	}}, Options{})

	if !m.Sentinel {
		t.Fatal("expected sentinel root for a document without window-like objects")
	}
	root := m.Node(m.Root)
	if root.ID != "mainWindow" || root.Type != "GtkWindow" {
		t.Fatalf("unexpected sentinel node: %q (%s)", root.ID, root.Type)
	}
	if root.Role != RoleRoot {
		t.Fatal("expected sentinel to carry the root role")
	}
	if m.Len() != 2 {
		t.Fatalf("expected the sentinel to join the arena, got %d nodes", m.Len())
	}

	last := m.TopLevel()[len(m.TopLevel())-1]
	if last != m.Root {
		t.Fatal("expected the sentinel to be appended to the top level")
	}
}

// ---------------------------------------------------------------------------
// Sibling promotion
// ---------------------------------------------------------------------------

func TestPromote_SiblingPromotion(t *testing.T) {
	t.Run("window-typed siblings of the root become classes", func(t *testing.T) {
		m := requireBuild(t, RawDocument{Objects: []RawElement{
			obj("winMain", "GtkWindow"),
			obj("winSettings", "GtkWindow"),
		}}, Options{})

		if got := ids(m, m.Promoted); !sameStrings(got, []string{"winSettings"}) {
			t.Fatalf("expected promoted [winSettings], got %v", got)
		}
		if requireNode(t, m, "winSettings").Role != RolePromoted {
			t.Fatal("expected winSettings to carry the promoted role")
		}
	})

	t.Run("promotion keys on type, not id", func(t *testing.T) {
		m := requireBuild(t, RawDocument{Objects: []RawElement{
			obj("winMain", "GtkWindow"),
			obj("helpWindow", "GtkBox"),
		}}, Options{})

		if len(m.Promoted) != 0 {
			t.Fatalf("expected no promotions for a window-named box, got %v", ids(m, m.Promoted))
		}
		if requireNode(t, m, "helpWindow").Role != RoleField {
			t.Fatal("expected helpWindow to stay a plain field")
		}
	})

	t.Run("nested windows are not promoted", func(t *testing.T) {
		m := requireBuild(t, RawDocument{Objects: []RawElement{
			obj("winMain", "GtkWindow",
				obj("boxMain", "GtkBox",
					obj("dlgInner", "GtkDialog"))),
		}}, Options{})

		if len(m.Promoted) != 0 {
			t.Fatalf("expected no promotions below the root, got %v", ids(m, m.Promoted))
		}
		root, _ := m.Lookup("winMain")
		mustContain(t, joinFields(m, root), "dlgInner")
	})

	t.Run("promoted classes keep document order", func(t *testing.T) {
		m := requireBuild(t, RawDocument{Objects: []RawElement{
			obj("winMain", "GtkWindow"),
			obj("dlgZebra", "GtkDialog"),
			obj("dlgAlpha", "GtkDialog"),
		}}, Options{})

		if got := ids(m, m.Promoted); !sameStrings(got, []string{"dlgZebra", "dlgAlpha"}) {
			t.Fatalf("expected document order [dlgZebra dlgAlpha], got %v", got)
		}
	})
}

func joinFields(m *Model, class NodeID) string {
	return strings.Join(m.FieldsOf(class), " ")
}
