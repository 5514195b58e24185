package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestListViewShowsLoadingUntilLibraryArrives(t *testing.T) {
	gateway := newStubGateway()
	model := NewModel(gateway, nil, nil, nil, nil, 140, 40)
	if !strings.Contains(model.View(), "Loading scenes") {
		t.Fatal("missing loading indicator")
	}

	h := NewHarness(model)
	h.Send(libraryLoadedMsg{scenes: gateway.catalog})
	view := h.View()
	if strings.Contains(view, "Loading scenes") {
		t.Fatal("loading indicator survived library load")
	}
	if !strings.Contains(view, "Alpha") {
		t.Fatal("scene list not rendered")
	}
}

func TestListViewReportsNoMatches(t *testing.T) {
	h, _, _ := newBrowserHarness(t, 140, 40)

	for _, r := range "zzz" {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if !strings.Contains(h.View(), "No matches") {
		t.Fatal("missing no-matches message")
	}
}

func TestListWindowFollowsCursor(t *testing.T) {
	// height 8 leaves room for 3 list rows, one fewer than the library.
	h, m, _ := newBrowserHarness(t, 140, 8)

	if strings.Contains(h.View(), "Delta") {
		t.Fatal("window shows items beyond its size")
	}

	h.Send(tea.KeyMsg{Type: tea.KeyUp}) // wrap to the last item
	if m.cursor != len(m.visible)-1 {
		t.Fatalf("cursor = %d, want last item", m.cursor)
	}
	if !strings.Contains(h.View(), "Delta") {
		t.Fatal("window did not follow the cursor")
	}
}

func TestDetailViewListsTagsAndMediaPaths(t *testing.T) {
	h, m, _ := newBrowserHarness(t, 140, 40)

	m.navigate("/scenes/1")
	view := h.View()
	if !strings.Contains(view, "Alpha") {
		t.Fatal("missing scene title")
	}
	if !strings.Contains(view, "tag-t1, tag-t2, tag-t3") {
		t.Fatal("missing tag list")
	}
	if !strings.Contains(view, "/prev/1.webm") {
		t.Fatal("missing preview path")
	}
}

func TestDetailViewClipsToViewportWidth(t *testing.T) {
	h, m, _ := newBrowserHarness(t, 30, 40)

	m.navigate("/scenes/1")
	for _, line := range strings.Split(h.View(), "\n") {
		if len([]rune(line)) > 30+1 { // allow the ellipsis tail
			t.Fatalf("line exceeds viewport: %q", line)
		}
	}
}
