package events

import "github.com/scenebrowse/similar-scenes/internal/logging"

type PanelTracer struct{}

var Panel = PanelTracer{}

func (PanelTracer) Mount(marker, sceneID string, picks int) {
	logging.Trace("panel.mount", map[string]interface{}{"marker": marker, "scene": sceneID, "picks": picks})
}

func (PanelTracer) Unmount(marker string) {
	logging.Trace("panel.unmount", map[string]interface{}{"marker": marker})
}

func (PanelTracer) Refresh(sceneID string, picks int) {
	logging.Trace("panel.refresh", map[string]interface{}{"scene": sceneID, "picks": picks})
}

func (PanelTracer) Preview(sceneID, action string) {
	logging.Trace("panel.preview", map[string]interface{}{"scene": sceneID, "action": action})
}
