// Package watch drives the Similar Scenes panel lifecycle: it detects
// entry and exit of scene detail pages from a stream of location events,
// guarantees a single mounted panel, and discards builds that finish after
// the host has moved on.
package watch

import (
	"context"
	"math/rand"

	"github.com/scenebrowse/similar-scenes/internal/host"
	"github.com/scenebrowse/similar-scenes/internal/logging"
	"github.com/scenebrowse/similar-scenes/internal/logging/events"
	"github.com/scenebrowse/similar-scenes/internal/panel"
	"github.com/scenebrowse/similar-scenes/internal/similar"
	"github.com/scenebrowse/similar-scenes/internal/stash"
)

// Gateway is the read side of the scene store the watcher builds panels
// from. Both operations are idempotent, so a failed build is simply retried
// on the next detection cycle.
type Gateway interface {
	FetchScene(ctx context.Context, id string) (stash.Scene, error)
	FetchAllScenes(ctx context.Context) ([]stash.Scene, error)
}

// State is the lifecycle position of the watcher.
type State int

const (
	// StateIdle: no target page active, no panel mounted.
	StateIdle State = iota
	// StateBuilding: fetches in flight, panel not yet mounted.
	StateBuilding
	// StateActive: target page confirmed and panel mounted.
	StateActive
)

// Build is the ticket for an in-flight panel build. Results are tagged with
// it so completions that no longer match the current location are thrown
// away instead of mounted.
type Build struct {
	Seq     int
	SceneID string
}

// Result is the outcome of a build's fetch phase. Selection happens later,
// on the driving loop, so the shared random source is never touched
// concurrently.
type Result struct {
	Build
	Current stash.Scene
	Catalog []stash.Scene
	Err     error
}

// Watcher owns the mount/unmount transitions. It is not safe for concurrent
// use; Observe and Finish are meant to be called from the single UI loop,
// with only Run executing elsewhere.
type Watcher struct {
	page       host.Page
	gateway    Gateway
	player     panel.PreviewPlayer
	rng        *rand.Rand
	sampleSize int

	state        State
	seq          int
	lastLocation string
	mounted      *panel.Panel
}

// New builds a watcher for the given page and gateway. sampleSize values
// <= 0 fall back to the default.
func New(page host.Page, gateway Gateway, player panel.PreviewPlayer, rng *rand.Rand, sampleSize int) *Watcher {
	if sampleSize <= 0 {
		sampleSize = similar.DefaultSampleSize
	}
	return &Watcher{
		page:       page,
		gateway:    gateway,
		player:     player,
		rng:        rng,
		sampleSize: sampleSize,
	}
}

// State reports the current lifecycle state.
func (w *Watcher) State() State {
	return w.state
}

// Mounted returns the live panel, or nil outside StateActive.
func (w *Watcher) Mounted() *panel.Panel {
	return w.mounted
}

// Observe runs one detection cycle for the given location. It returns a
// build ticket when a page entry needs a panel built, and nil otherwise.
// Redundant invocations are safe: an existing marker makes entry a no-op.
func (w *Watcher) Observe(location string) *Build {
	changed := location != w.lastLocation
	w.lastLocation = location

	sceneID, onScene := host.SceneRoute(location)

	// A location change invalidates whatever is mounted, even when the new
	// location is another scene's page.
	if changed && panel.MarkerPresent(w.page) {
		w.unmount(location)
	}

	if !onScene {
		if panel.MarkerPresent(w.page) {
			w.unmount(location)
		}
		if w.state == StateActive {
			w.state = StateIdle
		}
		return nil
	}

	if panel.MarkerPresent(w.page) {
		// Duplicate guard: detection is safe to invoke redundantly.
		return nil
	}
	if w.state == StateBuilding {
		return nil
	}

	w.state = StateBuilding
	w.seq++
	build := &Build{Seq: w.seq, SceneID: sceneID}
	events.Watcher.Enter(sceneID, build.Seq)
	return build
}

// Run performs the build's fetch phase: the scene first, then the whole
// catalog. Selection needs both, so the sequence only resolves when the
// second read has.
func (w *Watcher) Run(ctx context.Context, build Build) Result {
	res := Result{Build: build}
	scene, err := w.gateway.FetchScene(ctx, build.SceneID)
	if err != nil {
		res.Err = err
		return res
	}
	events.Gateway.FetchScene(build.SceneID)
	res.Current = scene
	catalog, err := w.gateway.FetchAllScenes(ctx)
	if err != nil {
		res.Err = err
		return res
	}
	events.Gateway.FetchCatalog(len(catalog))
	res.Catalog = catalog
	return res
}

// Finish completes a build: it re-checks that the result still matches the
// page, runs selection, and mounts the panel. Anything that does not line up
// degrades to "no panel shown", with failed builds retried at the detection
// cadence.
func (w *Watcher) Finish(res Result) {
	if res.Seq != w.seq {
		events.Watcher.Stale(res.SceneID, res.Seq)
		return
	}

	currentID, onScene := host.SceneRoute(w.page.Location())
	if !onScene || currentID != res.SceneID {
		events.Watcher.Stale(res.SceneID, res.Seq)
		w.state = StateIdle
		return
	}
	if panel.MarkerPresent(w.page) {
		w.state = StateActive
		return
	}

	if res.Err != nil {
		logging.Error(res.Err)
		events.Watcher.BuildError(res.SceneID, res.Err)
		w.state = StateIdle
		return
	}
	if len(res.Current.Tags) == 0 {
		w.skip(res.SceneID, "scene has no tags")
		return
	}

	picks := similar.Select(res.Current, res.Catalog, w.sampleSize, w.rng)
	if len(picks) == 0 {
		w.skip(res.SceneID, "no qualifying candidates")
		return
	}

	p := panel.New(res.Current, res.Catalog, picks, w.sampleSize, w.rng, w.player)
	if _, ok := panel.Mount(w.page, p); !ok {
		w.skip(res.SceneID, "no mount point")
		return
	}
	w.mounted = p
	w.state = StateActive
}

// Stop tears down a mounted panel unconditionally, for shutdown paths.
func (w *Watcher) Stop() {
	if panel.MarkerPresent(w.page) {
		w.unmount(w.lastLocation)
	}
	w.state = StateIdle
}

func (w *Watcher) skip(sceneID, reason string) {
	events.Watcher.Skip(sceneID, reason)
	w.state = StateIdle
}

func (w *Watcher) unmount(location string) {
	if w.mounted != nil {
		w.mounted.Leave()
	}
	panel.Unmount(w.page)
	w.mounted = nil
	events.Watcher.Leave(location)
}
