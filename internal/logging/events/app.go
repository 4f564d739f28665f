package events

import "github.com/atomicstack/dashboard-palette/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(route string) {
	logging.Trace("app.exit", map[string]interface{}{"route": route})
}
