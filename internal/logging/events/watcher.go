package events

import "github.com/scenebrowse/similar-scenes/internal/logging"

type WatcherTracer struct{}

var Watcher = WatcherTracer{}

func (WatcherTracer) Enter(sceneID string, seq int) {
	logging.Trace("watcher.enter", map[string]interface{}{"scene": sceneID, "seq": seq})
}

func (WatcherTracer) Leave(location string) {
	logging.Trace("watcher.leave", map[string]interface{}{"location": location})
}

func (WatcherTracer) Skip(sceneID, reason string) {
	logging.Trace("watcher.skip", map[string]interface{}{"scene": sceneID, "reason": reason})
}

func (WatcherTracer) Stale(sceneID string, seq int) {
	logging.Trace("watcher.stale", map[string]interface{}{"scene": sceneID, "seq": seq})
}

func (WatcherTracer) BuildError(sceneID string, err error) {
	if err == nil {
		return
	}
	logging.Trace("watcher.build-error", map[string]interface{}{"scene": sceneID, "error": err.Error()})
}
