package events

import "github.com/scenebrowse/similar-scenes/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Navigate(from, to string) {
	logging.Trace("ui.navigate", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Cursor(route string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"route": route, "cursor": cursor})
}

func (UITracer) TabActivated(id string) {
	logging.Trace("ui.tab", map[string]interface{}{"id": id})
}

func (FilterTracer) Changed(query string, matches int) {
	logging.Trace("filter.change", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}
