package panel

import "github.com/scenebrowse/similar-scenes/internal/logging/events"

// PreviewPlayer is the playback collaborator for card previews. Playback
// mechanics live outside this package; the panel only decides when playback
// starts and stops. Previews are never preloaded: Start is the first time a
// preview path is touched.
type PreviewPlayer interface {
	Start(path string)
	Stop()
}

// NopPlayer discards playback requests.
type NopPlayer struct{}

func (NopPlayer) Start(string) {}
func (NopPlayer) Stop()        {}

// Highlight moves the pointer onto the card at index. Entering a card hides
// its thumbnail and starts preview playback; the previously highlighted
// card's playback stops first.
func (p *Panel) Highlight(index int) {
	if index < 0 || index >= len(p.picks) || index == p.cursor {
		return
	}
	p.stopPreview()
	p.cursor = index
	p.startPreview()
}

// Move shifts the highlight by delta, entering the grid at the first card
// when nothing is highlighted yet.
func (p *Panel) Move(delta int) {
	if len(p.picks) == 0 {
		return
	}
	next := p.cursor + delta
	if p.cursor < 0 {
		next = 0
	}
	if next < 0 {
		next = 0
	}
	if next >= len(p.picks) {
		next = len(p.picks) - 1
	}
	p.Highlight(next)
}

// Leave moves the pointer off the grid: playback stops and the thumbnail is
// restored.
func (p *Panel) Leave() {
	p.stopPreview()
	p.cursor = -1
}

func (p *Panel) startPreview() {
	if p.cursor < 0 || p.cursor >= len(p.picks) {
		return
	}
	scene := p.picks[p.cursor].Scene
	if scene.PreviewPath == "" {
		return
	}
	p.player.Start(scene.PreviewPath)
	p.previewing = true
	events.Panel.Preview(scene.ID, "start")
}

func (p *Panel) stopPreview() {
	if !p.previewing {
		return
	}
	p.player.Stop()
	p.previewing = false
	if p.cursor >= 0 && p.cursor < len(p.picks) {
		events.Panel.Preview(p.picks[p.cursor].Scene.ID, "stop")
	}
}
