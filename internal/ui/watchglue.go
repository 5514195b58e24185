package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/scenebrowse/similar-scenes/internal/watch"
)

// locationMsg is one detection-cycle trigger from the merged location
// source (either a poll tick or a pushed route change).
type locationMsg struct {
	location string
}

type sourceDoneMsg struct{}

// buildDoneMsg carries a finished build's fetch results back to the loop.
type buildDoneMsg struct {
	result watch.Result
}

func waitForLocation(source watch.Source) tea.Cmd {
	return func() tea.Msg {
		loc, ok := <-source.Locations()
		if !ok {
			return sourceDoneMsg{}
		}
		return locationMsg{location: loc}
	}
}

func (m *Model) handleLocationMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(locationMsg); !ok {
		return nil
	}
	cmds := make([]tea.Cmd, 0, 2)
	// The model's route is the source of truth; the message only says a
	// cycle is due. A queued event can lag behind rapid navigation.
	if m.watcher != nil {
		if build := m.watcher.Observe(m.route); build != nil {
			cmds = append(cmds, m.runBuildCmd(*build))
		}
	}
	if m.source != nil {
		cmds = append(cmds, waitForLocation(m.source))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) runBuildCmd(build watch.Build) tea.Cmd {
	watcher := m.watcher
	return func() tea.Msg {
		return buildDoneMsg{result: watcher.Run(context.Background(), build)}
	}
}

func (m *Model) handleBuildDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(buildDoneMsg)
	if !ok {
		return nil
	}
	if m.watcher != nil {
		m.watcher.Finish(done.result)
	}
	return nil
}

func (m *Model) handleSourceDoneMsg(tea.Msg) tea.Cmd {
	m.source = nil
	return nil
}
