package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/scenebrowse/similar-scenes/internal/logging/events"
	"github.com/scenebrowse/similar-scenes/internal/panel"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if _, onDetail := sceneIDFromRoute(m.route); onDetail {
		return m.handleDetailKey(keyMsg)
	}
	return m.handleListKey(keyMsg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "esc":
		if m.filter != "" {
			m.setFilter("")
			return nil
		}
		return tea.Quit
	case "enter":
		if len(m.visible) == 0 {
			return nil
		}
		scene := m.scenes[m.visible[m.cursor]]
		m.navigate(ListRoute + "/" + scene.ID)
		return nil
	case "up":
		m.moveListCursor(-1)
		return nil
	case "down":
		m.moveListCursor(1)
		return nil
	case "ctrl+u":
		m.setFilter("")
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.filter != "" {
			runes := []rune(m.filter)
			m.setFilter(string(runes[:len(runes)-1]))
		}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.setFilter(m.filter + string(msg.Runes))
	}
	return nil
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.navigate(ListRoute)
		return nil
	case "tab":
		if m.Narrow() || m.hasInjectedTab() {
			m.cycleTab()
		}
		return nil
	case "r":
		if p := m.mountedPanel(); p != nil && m.panelVisible() {
			p.Refresh()
		}
		return nil
	case "left":
		if p := m.mountedPanel(); p != nil && m.panelVisible() {
			p.Move(-1)
		}
		return nil
	case "right":
		if p := m.mountedPanel(); p != nil && m.panelVisible() {
			p.Move(1)
		}
		return nil
	case "up":
		if p := m.mountedPanel(); p != nil && m.panelVisible() {
			p.Leave()
		}
		return nil
	}
	return nil
}

func (m *Model) mountedPanel() *panel.Panel {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Mounted()
}

// panelVisible reports whether the mounted panel's cards are on screen: the
// inline variant always is, the tab variant only while its tab is active.
func (m *Model) panelVisible() bool {
	p := m.mountedPanel()
	if p == nil {
		return false
	}
	if p.Variant() == panel.VariantInline {
		return true
	}
	return m.activeTab == panel.TabMarkerID
}

func (m *Model) leavePanelCards() {
	if p := m.mountedPanel(); p != nil {
		p.Leave()
	}
}

// navigate performs a client-side route transition and pushes the change
// into the location source so detection does not wait for the next poll.
func (m *Model) navigate(to string) {
	if to == m.route {
		return
	}
	events.UI.Navigate(m.route, to)
	m.leavePanelCards()
	m.route = to
	m.activeTab = tabDetails
	if m.holder != nil {
		m.holder.Set(to)
	}
	if m.notify != nil {
		m.notify.Notify(to)
	}
}

func (m *Model) hasInjectedTab() bool {
	for _, entry := range m.tabs {
		if entry.injected {
			return true
		}
	}
	return false
}

func (m *Model) moveListCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 {
		next = len(m.visible) - 1
	}
	if next >= len(m.visible) {
		next = 0
	}
	m.cursor = next
	events.UI.Cursor(m.route, m.cursor)
}

func (m *Model) setFilter(query string) {
	m.filter = query
	m.applyFilter()
	if query == "" {
		events.Filter.Cleared()
		return
	}
	events.Filter.Changed(query, len(m.visible))
}

func (m *Model) applyFilter() {
	m.visible = m.visible[:0]
	for i, scene := range m.scenes {
		if m.filter == "" || fuzzy.MatchFold(m.filter, scene.DisplayName()) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}
