package events

import "github.com/scenebrowse/similar-scenes/internal/logging"

type GatewayTracer struct{}

var Gateway = GatewayTracer{}

func (GatewayTracer) FetchScene(id string) {
	logging.Trace("gateway.fetch-scene", map[string]interface{}{"id": id})
}

func (GatewayTracer) FetchCatalog(count int) {
	logging.Trace("gateway.fetch-catalog", map[string]interface{}{"count": count})
}

func (GatewayTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("gateway.error", map[string]interface{}{"error": err.Error()})
}
