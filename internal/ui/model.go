// Package ui implements the scene browser the panel attaches to: a scene
// list with fuzzy filtering and a detail page per scene. The browser knows
// nothing about the Similar Scenes panel; it only exposes the host.Page
// surface the lifecycle watcher drives.
package ui

import (
	"context"
	"reflect"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/scenebrowse/similar-scenes/internal/logging"
	"github.com/scenebrowse/similar-scenes/internal/stash"
	"github.com/scenebrowse/similar-scenes/internal/theme"
	"github.com/scenebrowse/similar-scenes/internal/watch"
)

// ListRoute is the scene library route; detail pages live underneath it.
const ListRoute = "/scenes"

// narrowWidth is the viewport breakpoint: below it the detail page uses the
// tab layout, at or above it the inline layout.
const narrowWidth = 100

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type tabEntry struct {
	id       string
	label    string
	pane     hostRenderer
	injected bool
}

type inlineBlock struct {
	id    string
	block hostRenderer
}

// Model implements the Bubble Tea model for the scene browser.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	gateway watch.Gateway
	watcher *watch.Watcher
	source  watch.Source
	notify  *watch.NotifySource
	holder  *watch.Holder

	route   string
	spin    spinner.Model
	scenes  []stash.Scene
	visible []int
	cursor  int
	filter  string
	loading bool
	errMsg  string

	activeTab string
	tabOrder  []string
	tabs      map[string]tabEntry
	inline    []inlineBlock

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the browser on the scene list route.
func NewModel(gateway watch.Gateway, watcher *watch.Watcher, source watch.Source, notify *watch.NotifySource, holder *watch.Holder, width, height int) *Model {
	m := &Model{
		gateway: gateway,
		watcher: watcher,
		source:  source,
		notify:  notify,
		holder:  holder,
		route:   ListRoute,
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(*styles.Loading)),
		loading: true,
		tabs:    map[string]tabEntry{},
	}
	if holder != nil {
		holder.Set(m.route)
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.resetHostTabs()
	m.registerHandlers()
	return m
}

// AttachWatcher wires the panel lifecycle watcher. Separate from NewModel
// because the watcher observes the model through host.Page, so the two are
// constructed in sequence.
func (m *Model) AttachWatcher(watcher *watch.Watcher) {
	m.watcher = watcher
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadLibraryCmd(), m.spin.Tick}
	if m.source != nil {
		cmds = append(cmds, waitForLocation(m.source))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(libraryLoadedMsg{}):  m.handleLibraryLoadedMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(locationMsg{}):       m.handleLocationMsg,
		reflect.TypeOf(sourceDoneMsg{}):     m.handleSourceDoneMsg,
		reflect.TypeOf(buildDoneMsg{}):      m.handleBuildDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

// handleSpinnerTickMsg advances the loading spinner; the tick chain ends as
// soon as the library arrives.
func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if !m.loading {
		return nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return cmd
}

// libraryLoadedMsg mirrors the async library fetch.
type libraryLoadedMsg struct {
	scenes []stash.Scene
	err    error
}

func (m *Model) loadLibraryCmd() tea.Cmd {
	gateway := m.gateway
	return func() tea.Msg {
		scenes, err := gateway.FetchAllScenes(context.Background())
		if err != nil {
			logging.Error(err)
		}
		return libraryLoadedMsg{scenes: scenes, err: err}
	}
}

func (m *Model) handleLibraryLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(libraryLoadedMsg)
	if !ok {
		return nil
	}
	m.loading = false
	if loaded.err != nil {
		m.errMsg = loaded.err.Error()
		return nil
	}
	m.errMsg = ""
	m.scenes = loaded.scenes
	m.applyFilter()
	return nil
}

func (m *Model) sceneByID(id string) (stash.Scene, bool) {
	for _, scene := range m.scenes {
		if scene.ID == id {
			return scene, true
		}
	}
	return stash.Scene{}, false
}

func (m *Model) currentScene() (stash.Scene, bool) {
	id, ok := sceneIDFromRoute(m.route)
	if !ok {
		return stash.Scene{}, false
	}
	return m.sceneByID(id)
}
