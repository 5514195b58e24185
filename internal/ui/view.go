package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/scenebrowse/similar-scenes/internal/stash"
)

// View implements tea.Model.
func (m *Model) View() string {
	if _, ok := sceneIDFromRoute(m.route); ok {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m *Model) viewList() string {
	lines := []string{styles.Header.Render("Scenes")}
	if m.filter != "" {
		lines = append(lines, styles.FilterPrompt.Render("/ ")+styles.Filter.Render(m.filter))
	}
	switch {
	case m.loading:
		lines = append(lines, m.spin.View()+styles.Loading.Render("Loading scenes…"))
	case len(m.visible) == 0 && m.filter != "":
		lines = append(lines, styles.Info.Render(fmt.Sprintf("No matches for %q", m.filter)))
	case len(m.visible) == 0:
		lines = append(lines, styles.Info.Render("(no scenes)"))
	default:
		start, end := m.listWindow()
		for i := start; i < end; i++ {
			scene := m.scenes[m.visible[i]]
			label := scene.DisplayName()
			if i == m.cursor {
				lines = append(lines, styles.SelectedItem.Render("> "+label))
			} else {
				lines = append(lines, styles.Item.Render("  "+label))
			}
		}
	}
	if m.errMsg != "" {
		lines = append(lines, styles.Error.Render(m.errMsg))
	}
	lines = append(lines, styles.Info.Render("enter: open  /: type to filter  q: quit"))
	return m.clipLines(lines)
}

func (m *Model) viewDetail() string {
	id, _ := sceneIDFromRoute(m.route)
	scene, found := m.sceneByID(id)

	title := fmt.Sprintf("Scene %s", id)
	if found {
		title = scene.DisplayName()
	}
	lines := []string{styles.Header.Render(title)}

	// The tab layout sticks for as long as an injected tab is mounted, so a
	// live resize never swaps a mounted variant.
	if m.Narrow() || m.hasInjectedTab() {
		lines = append(lines, m.renderTabStrip())
		lines = append(lines, m.renderActiveTab(scene, found))
	} else {
		lines = append(lines, m.renderDetails(scene, found))
		for _, block := range m.inline {
			lines = append(lines, block.block.Render(m.width))
		}
	}

	if m.errMsg != "" {
		lines = append(lines, styles.Error.Render(m.errMsg))
	}
	lines = append(lines, styles.Info.Render("esc: back  tab: switch  r: refresh  ←/→: browse cards"))
	return m.clipLines(lines)
}

func (m *Model) renderTabStrip() string {
	parts := make([]string, 0, len(m.tabOrder))
	for _, id := range m.tabOrder {
		entry, ok := m.tabs[id]
		if !ok {
			continue
		}
		if id == m.activeTab {
			parts = append(parts, styles.TabActive.Render(entry.label))
		} else {
			parts = append(parts, styles.TabInactive.Render(entry.label))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderActiveTab(scene stash.Scene, found bool) string {
	entry, ok := m.tabs[m.activeTab]
	if !ok {
		return ""
	}
	if entry.injected {
		return entry.pane.Render(m.width)
	}
	switch entry.id {
	case tabFile:
		return m.renderFileInfo(scene, found)
	default:
		return m.renderDetails(scene, found)
	}
}

func (m *Model) renderDetails(scene stash.Scene, found bool) string {
	if !found {
		return styles.Loading.Render("Loading scene…")
	}
	names := make([]string, 0, len(scene.Tags))
	for _, tag := range scene.Tags {
		names = append(names, tag.Name)
	}
	lines := []string{
		styles.TagList.Render("Tags: " + strings.Join(names, ", ")),
		styles.Info.Render("Screenshot: " + scene.ScreenshotPath),
	}
	if scene.PreviewPath != "" {
		lines = append(lines, styles.Info.Render("Preview: "+scene.PreviewPath))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFileInfo(scene stash.Scene, found bool) string {
	if !found {
		return styles.Loading.Render("Loading scene…")
	}
	if scene.FallbackName == "" {
		return styles.Info.Render("(no files)")
	}
	return styles.Info.Render("File: " + scene.FallbackName)
}

// listWindow returns the visible slice bounds around the cursor.
func (m *Model) listWindow() (int, int) {
	max := m.maxVisibleItems()
	if max <= 0 || len(m.visible) <= max {
		return 0, len(m.visible)
	}
	start := m.cursor - max/2
	if start < 0 {
		start = 0
	}
	if start+max > len(m.visible) {
		start = len(m.visible) - max
	}
	return start, start + max
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return 0
	}
	max := m.height - 5
	if max < 1 {
		max = 1
	}
	return max
}

// clipLines joins and width-clips the rendered lines; clipping is
// ANSI-aware so styled text survives.
func (m *Model) clipLines(lines []string) string {
	joined := strings.Join(lines, "\n")
	if m.width <= 0 {
		return joined
	}
	clipped := make([]string, 0, len(lines))
	for _, line := range strings.Split(joined, "\n") {
		clipped = append(clipped, ansi.Truncate(line, m.width, "…"))
	}
	return strings.Join(clipped, "\n")
}
