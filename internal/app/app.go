package app

import (
	"errors"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/scenebrowse/similar-scenes/internal/panel"
	"github.com/scenebrowse/similar-scenes/internal/stash"
	"github.com/scenebrowse/similar-scenes/internal/ui"
	"github.com/scenebrowse/similar-scenes/internal/watch"
)

// Config describes user-provided application options.
type Config struct {
	Endpoint   string
	APIKey     string
	Width      int
	Height     int
	Interval   time.Duration
	SampleSize int
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	gateway := stash.NewClient(cfg.Endpoint, cfg.APIKey)

	holder := &watch.Holder{}
	notify := watch.NewNotifySource()
	poll := watch.NewPollSource(holder.Get, cfg.Interval)
	source := watch.Merge(poll, notify)
	defer source.Stop()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	model := ui.NewModel(gateway, nil, source, notify, holder, cfg.Width, cfg.Height)
	watcher := watch.New(model, gateway, panel.NopPlayer{}, rng, cfg.SampleSize)
	model.AttachWatcher(watcher)
	defer watcher.Stop()

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
