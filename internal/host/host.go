// Package host defines the contract between the injected Similar Scenes
// panel and the browsing application it attaches to. The panel never touches
// the host's internals directly; everything goes through these handles so the
// lifecycle machinery can be driven against a fake page in tests.
package host

// Renderer is any component the host can draw inside one of its regions.
type Renderer interface {
	Render(width int) string
}

// TabBar is the host's tab strip on narrow viewports. Tabs added here take
// part in the host's own activation cycle: activating any tab deactivates
// its siblings, including injected ones.
type TabBar interface {
	AddTab(id, label string, pane Renderer)
	RemoveTab(id string)
}

// Anchor is the insertion point for the inline variant on wide viewports.
// Blocks are placed immediately after the anchor, identified by marker id.
type Anchor interface {
	InsertAfter(id string, block Renderer)
	Remove(id string)
}

// Page exposes the structure of the host's current page.
//
// Location reports the current route. HasMarker reports whether an element
// with the given marker id is present. Narrow is the viewport capability
// query; callers sample it once per panel build, not continuously. The
// structural lookups return false when the page lacks the corresponding
// convention, in which case a build aborts silently.
type Page interface {
	Location() string
	HasMarker(id string) bool
	Narrow() bool
	TabBar() (TabBar, bool)
	InlineAnchor() (Anchor, bool)
}
