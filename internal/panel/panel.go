// Package panel builds the Similar Scenes panel and attaches it to the host
// page as one of two variants: a tab on narrow viewports or an inline block
// on wide ones.
package panel

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/scenebrowse/similar-scenes/internal/logging/events"
	"github.com/scenebrowse/similar-scenes/internal/similar"
	"github.com/scenebrowse/similar-scenes/internal/stash"
	"github.com/scenebrowse/similar-scenes/internal/theme"
)

// Marker ids, one reserved id per variant. At most one of the two exists in
// the host page at any time.
const (
	TabMarkerID    = "similar-scenes-tab"
	InlineMarkerID = "similar-scenes-inline"
)

const (
	// TabLabel is the navigation label for the injected tab.
	TabLabel = "Similar"

	panelTitle  = "Similar Scenes"
	refreshHint = "r: refresh"

	cardWidth    = 30
	minCardWidth = 22
)

var styles = theme.Default()

// Variant distinguishes the two structurally different panel renditions.
type Variant int

const (
	VariantTab Variant = iota
	VariantInline
)

// Panel holds a selection of similar scenes and renders it as a card grid.
// The catalog snapshot is held for the lifetime of the mount so refreshes
// never hit the network.
type Panel struct {
	current    stash.Scene
	catalog    []stash.Scene
	picks      []similar.Candidate
	sampleSize int
	rng        *rand.Rand
	player     PreviewPlayer
	variant    Variant

	cursor     int // highlighted card, -1 when the pointer is outside the grid
	previewing bool
}

// New builds a panel around an initial selection. The rng is reused for
// refresh draws; the player receives preview start/stop calls.
func New(current stash.Scene, catalog []stash.Scene, picks []similar.Candidate, sampleSize int, rng *rand.Rand, player PreviewPlayer) *Panel {
	if player == nil {
		player = NopPlayer{}
	}
	return &Panel{
		current:    current,
		catalog:    catalog,
		picks:      picks,
		sampleSize: sampleSize,
		rng:        rng,
		player:     player,
		cursor:     -1,
	}
}

// SceneID returns the id of the scene this panel was built for.
func (p *Panel) SceneID() string {
	return p.current.ID
}

// Variant reports which rendition is mounted.
func (p *Panel) Variant() Variant {
	return p.variant
}

// Picks returns the current selection.
func (p *Panel) Picks() []similar.Candidate {
	return p.picks
}

// Refresh redraws the selection from the held catalog and replaces the grid
// contents wholesale. No network call; mount state and variant are
// unchanged.
func (p *Panel) Refresh() {
	p.Leave()
	p.picks = similar.Select(p.current, p.catalog, p.sampleSize, p.rng)
	p.cursor = -1
	events.Panel.Refresh(p.current.ID, len(p.picks))
}

// Render implements host.Renderer.
func (p *Panel) Render(width int) string {
	if width <= 0 {
		width = cardWidth
	}
	header := styles.PanelTitle.Render(panelTitle) + "  " + styles.PanelHint.Render(refreshHint)
	rows := []string{header}
	for _, row := range p.cardRows(width) {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func (p *Panel) cardRows(width int) [][]string {
	perRow := width / cardWidth
	if perRow < 1 {
		perRow = 1
	}
	inner := width/perRow - 4 // border and padding
	if inner < minCardWidth-4 {
		inner = minCardWidth - 4
	}
	var rows [][]string
	var row []string
	for i, pick := range p.picks {
		row = append(row, p.renderCard(pick, i, inner))
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// renderCard draws one candidate: thumbnail (or preview while highlighted),
// display name, and the names of the tags shared with the current scene.
func (p *Panel) renderCard(pick similar.Candidate, index, width int) string {
	highlighted := index == p.cursor

	media := styles.CardThumbnail.Render(clip("["+thumbnailLabel(pick.Scene)+"]", width))
	if highlighted && p.previewing {
		media = styles.CardPreview.Render(clip("▶ "+pick.Scene.PreviewPath, width))
	}

	title := styles.CardTitle.Render(clip(pick.Scene.DisplayName(), width))
	tags := styles.CardTags.Render(clip(matchedTagNames(pick), width))

	body := strings.Join([]string{media, title, tags}, "\n")
	border := styles.CardBorder
	if highlighted {
		border = styles.CardSelected
	}
	return border.Width(width + 2).Render(body)
}

func thumbnailLabel(scene stash.Scene) string {
	if scene.ScreenshotPath == "" {
		return "no screenshot"
	}
	return scene.ScreenshotPath
}

func matchedTagNames(pick similar.Candidate) string {
	names := make([]string, 0, len(pick.MatchingTags))
	for _, tag := range pick.MatchingTags {
		names = append(names, tag.Name)
	}
	return strings.Join(names, ", ")
}

func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
