package ui

import (
	"github.com/scenebrowse/similar-scenes/internal/host"
	"github.com/scenebrowse/similar-scenes/internal/logging/events"
)

// Host tab ids for the detail page. Injected tabs join the same strip and
// the same activation cycle.
const (
	tabDetails = "details"
	tabFile    = "file"
)

type hostRenderer = host.Renderer

func sceneIDFromRoute(route string) (string, bool) {
	return host.SceneRoute(route)
}

// Location implements host.Page.
func (m *Model) Location() string {
	return m.route
}

// HasMarker implements host.Page: a marker exists when either a tab or an
// inline block with that id is registered.
func (m *Model) HasMarker(id string) bool {
	if _, ok := m.tabs[id]; ok {
		return true
	}
	for _, block := range m.inline {
		if block.id == id {
			return true
		}
	}
	return false
}

// Narrow implements host.Page. Callers sample this once per panel build;
// later resizes do not re-evaluate a mounted variant.
func (m *Model) Narrow() bool {
	return m.width > 0 && m.width < narrowWidth
}

// TabBar implements host.Page.
func (m *Model) TabBar() (host.TabBar, bool) {
	return m, true
}

// InlineAnchor implements host.Page.
func (m *Model) InlineAnchor() (host.Anchor, bool) {
	return m, true
}

// AddTab implements host.TabBar.
func (m *Model) AddTab(id, label string, pane host.Renderer) {
	if _, ok := m.tabs[id]; ok {
		return
	}
	m.tabOrder = append(m.tabOrder, id)
	m.tabs[id] = tabEntry{id: id, label: label, pane: pane, injected: true}
}

// RemoveTab implements host.TabBar. Removing the active tab falls back to
// the first host tab.
func (m *Model) RemoveTab(id string) {
	entry, ok := m.tabs[id]
	if !ok || !entry.injected {
		return
	}
	delete(m.tabs, id)
	for i, tabID := range m.tabOrder {
		if tabID == id {
			m.tabOrder = append(m.tabOrder[:i], m.tabOrder[i+1:]...)
			break
		}
	}
	if m.activeTab == id {
		m.activeTab = tabDetails
	}
}

// InsertAfter implements host.Anchor.
func (m *Model) InsertAfter(id string, block host.Renderer) {
	if m.HasMarker(id) {
		return
	}
	m.inline = append(m.inline, inlineBlock{id: id, block: block})
}

// Remove implements host.Anchor.
func (m *Model) Remove(id string) {
	for i, block := range m.inline {
		if block.id == id {
			m.inline = append(m.inline[:i], m.inline[i+1:]...)
			return
		}
	}
}

// activateTab moves tab focus. One tab is active at a time, so activating
// the injected tab deactivates the host tabs and vice versa.
func (m *Model) activateTab(id string) {
	if _, ok := m.tabs[id]; !ok {
		return
	}
	if m.activeTab == id {
		return
	}
	m.leavePanelCards()
	m.activeTab = id
	events.UI.TabActivated(id)
}

func (m *Model) cycleTab() {
	if len(m.tabOrder) == 0 {
		return
	}
	for i, id := range m.tabOrder {
		if id == m.activeTab {
			m.activateTab(m.tabOrder[(i+1)%len(m.tabOrder)])
			return
		}
	}
	m.activateTab(m.tabOrder[0])
}

// resetHostTabs restores the host's own tab strip, dropping any injected
// entries along with their content panes.
func (m *Model) resetHostTabs() {
	m.tabOrder = []string{tabDetails, tabFile}
	m.tabs = map[string]tabEntry{
		tabDetails: {id: tabDetails, label: "Details"},
		tabFile:    {id: tabFile, label: "File"},
	}
	m.activeTab = tabDetails
	m.inline = nil
}
