package panel

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/scenebrowse/similar-scenes/internal/similar"
	"github.com/scenebrowse/similar-scenes/internal/stash"
)

type recordPlayer struct {
	started []string
	stops   int
}

func (p *recordPlayer) Start(path string) { p.started = append(p.started, path) }
func (p *recordPlayer) Stop()             { p.stops++ }

func previewScene(id, preview string, tagIDs ...string) stash.Scene {
	s := stash.Scene{ID: id, Title: "scene-" + id, PreviewPath: preview}
	for _, t := range tagIDs {
		s.Tags = append(s.Tags, stash.Tag{ID: t, Name: "tag-" + t})
	}
	return s
}

func candidate(scene stash.Scene, shared ...stash.Tag) similar.Candidate {
	return similar.Candidate{Scene: scene, MatchingTags: shared}
}

func newTestPanel(player PreviewPlayer) *Panel {
	current := previewScene("42", "", "1", "2", "3")
	a := previewScene("100", "/prev/100.webm", "1", "2")
	b := previewScene("101", "/prev/101.webm", "2", "3")
	picks := []similar.Candidate{
		candidate(a, stash.Tag{ID: "1", Name: "harbour"}, stash.Tag{ID: "2", Name: "dawn"}),
		candidate(b, stash.Tag{ID: "2", Name: "dawn"}, stash.Tag{ID: "3", Name: "mist"}),
	}
	catalog := []stash.Scene{current, a, b}
	return New(current, catalog, picks, 10, rand.New(rand.NewSource(1)), player)
}

func TestHighlightStartsPreviewAndStopsPrevious(t *testing.T) {
	player := &recordPlayer{}
	p := newTestPanel(player)

	p.Highlight(0)
	if len(player.started) != 1 || player.started[0] != "/prev/100.webm" {
		t.Fatalf("expected first preview started, got %v", player.started)
	}

	p.Highlight(1)
	if player.stops != 1 {
		t.Fatalf("expected previous preview stopped, got %d stops", player.stops)
	}
	if len(player.started) != 2 || player.started[1] != "/prev/101.webm" {
		t.Fatalf("expected second preview started, got %v", player.started)
	}
}

func TestHighlightSameCardIsNoOp(t *testing.T) {
	player := &recordPlayer{}
	p := newTestPanel(player)

	p.Highlight(0)
	p.Highlight(0)
	if len(player.started) != 1 || player.stops != 0 {
		t.Fatalf("re-highlight restarted playback: starts=%v stops=%d", player.started, player.stops)
	}
}

func TestMoveEntersGridAtFirstCardAndClamps(t *testing.T) {
	player := &recordPlayer{}
	p := newTestPanel(player)

	p.Move(1)
	if len(player.started) != 1 || player.started[0] != "/prev/100.webm" {
		t.Fatalf("expected entry at first card, got %v", player.started)
	}

	p.Move(5)
	if len(player.started) != 2 || player.started[1] != "/prev/101.webm" {
		t.Fatalf("expected clamp at last card, got %v", player.started)
	}

	p.Move(-5)
	if len(player.started) != 3 || player.started[2] != "/prev/100.webm" {
		t.Fatalf("expected clamp at first card, got %v", player.started)
	}
}

func TestLeaveStopsPlayback(t *testing.T) {
	player := &recordPlayer{}
	p := newTestPanel(player)

	p.Highlight(0)
	p.Leave()
	if player.stops != 1 {
		t.Fatalf("expected stop on leave, got %d", player.stops)
	}

	p.Leave()
	if player.stops != 1 {
		t.Fatalf("repeated leave stopped again: %d", player.stops)
	}
}

func TestHighlightSkipsEmptyPreviewPath(t *testing.T) {
	player := &recordPlayer{}
	current := previewScene("42", "", "1", "2")
	silent := previewScene("100", "", "1", "2")
	picks := []similar.Candidate{candidate(silent, stash.Tag{ID: "1", Name: "harbour"})}
	p := New(current, []stash.Scene{current, silent}, picks, 10, rand.New(rand.NewSource(1)), player)

	p.Highlight(0)
	if len(player.started) != 0 {
		t.Fatalf("preview started without a preview path: %v", player.started)
	}
	if strings.Contains(p.Render(80), "▶") {
		t.Fatal("render shows preview glyph without playback")
	}
}

func TestRefreshResamplesFromHeldCatalog(t *testing.T) {
	current := previewScene("42", "", "1", "2", "3")
	catalog := []stash.Scene{current}
	for i := 0; i < 20; i++ {
		catalog = append(catalog, previewScene(string(rune('a'+i)), "", "1", "2"))
	}
	player := &recordPlayer{}
	p := New(current, catalog, nil, 5, rand.New(rand.NewSource(1)), player)

	p.Refresh()
	picks := p.Picks()
	if len(picks) != 5 {
		t.Fatalf("expected 5 picks after refresh, got %d", len(picks))
	}
	known := map[string]bool{}
	for _, scene := range catalog {
		known[scene.ID] = true
	}
	for _, pick := range picks {
		if !known[pick.Scene.ID] {
			t.Fatalf("pick %s not from held catalog", pick.Scene.ID)
		}
		if pick.Scene.ID == current.ID {
			t.Fatal("current scene appeared among picks")
		}
	}
}

func TestRefreshStopsActivePreview(t *testing.T) {
	player := &recordPlayer{}
	p := newTestPanel(player)

	p.Highlight(0)
	p.Refresh()
	if player.stops != 1 {
		t.Fatalf("expected playback stopped on refresh, got %d", player.stops)
	}
}

func TestRenderShowsTitleAndMatchedTagNames(t *testing.T) {
	p := newTestPanel(&recordPlayer{})
	out := p.Render(80)

	if !strings.Contains(out, "Similar Scenes") {
		t.Fatal("missing panel title")
	}
	if !strings.Contains(out, "r: refresh") {
		t.Fatal("missing refresh hint")
	}
	if !strings.Contains(out, "scene-100") {
		t.Fatal("missing candidate display name")
	}
	if !strings.Contains(out, "harbour, dawn") {
		t.Fatal("missing comma-joined matched tag names")
	}
}

func TestRenderShowsPreviewWhileHighlighted(t *testing.T) {
	p := newTestPanel(&recordPlayer{})

	p.Highlight(0)
	out := p.Render(80)
	if !strings.Contains(out, "▶") {
		t.Fatal("highlighted card missing preview indicator")
	}

	p.Leave()
	out = p.Render(80)
	if strings.Contains(out, "▶") {
		t.Fatal("preview indicator survived leave")
	}
}
