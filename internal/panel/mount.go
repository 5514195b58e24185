package panel

import (
	"github.com/scenebrowse/similar-scenes/internal/host"
	"github.com/scenebrowse/similar-scenes/internal/logging/events"
)

// MarkerPresent reports whether either panel variant is mounted on the page.
func MarkerPresent(page host.Page) bool {
	return page.HasMarker(TabMarkerID) || page.HasMarker(InlineMarkerID)
}

// Mount attaches the viewport-appropriate variant and returns its marker id.
// The viewport query is sampled here, once per mount; resizes do not swap a
// mounted variant. Mount is a no-op when a marker already exists or the page
// lacks the structure the variant needs.
func Mount(page host.Page, p *Panel) (string, bool) {
	if MarkerPresent(page) {
		return "", false
	}
	if page.Narrow() {
		bar, ok := page.TabBar()
		if !ok {
			return "", false
		}
		p.variant = VariantTab
		bar.AddTab(TabMarkerID, TabLabel, p)
		events.Panel.Mount(TabMarkerID, p.current.ID, len(p.picks))
		return TabMarkerID, true
	}
	anchor, ok := page.InlineAnchor()
	if !ok {
		return "", false
	}
	p.variant = VariantInline
	anchor.InsertAfter(InlineMarkerID, p)
	events.Panel.Mount(InlineMarkerID, p.current.ID, len(p.picks))
	return InlineMarkerID, true
}

// Unmount removes whichever variant is mounted, both the navigation entry
// and the content, and is safe to call when nothing is mounted.
func Unmount(page host.Page) {
	if page.HasMarker(TabMarkerID) {
		if bar, ok := page.TabBar(); ok {
			bar.RemoveTab(TabMarkerID)
			events.Panel.Unmount(TabMarkerID)
		}
	}
	if page.HasMarker(InlineMarkerID) {
		if anchor, ok := page.InlineAnchor(); ok {
			anchor.Remove(InlineMarkerID)
			events.Panel.Unmount(InlineMarkerID)
		}
	}
}
