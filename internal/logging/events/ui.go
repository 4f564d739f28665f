package events

import "github.com/atomicstack/dashboard-palette/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) MenuEnter(page, section, id, name, query string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"page":    page,
		"section": section,
		"id":      id,
		"name":    name,
		"query":   query,
	})
}

func (UITracer) MenuCursor(page string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"page": page, "cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(page string) {
	logging.Trace("filter.clear", map[string]interface{}{"page": page})
}

func (FilterTracer) WordBackspace(page, query string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"page": page, "query": query})
}

func (FilterTracer) Cursor(page string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"page": page, "cursor": pos})
}

func (FilterTracer) CursorWord(page string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"page": page, "cursor": pos})
}

func (FilterTracer) Append(page, query string) {
	logging.Trace("filter.append", map[string]interface{}{"page": page, "query": query})
}

func (FilterTracer) Backspace(page, query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"page": page, "query": query})
}

func (CommandTracer) Queue(id, name string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "name": name})
}

func (CommandTracer) Skip(id, name string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "name": name})
}

func (CommandTracer) NoOp(id, name string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "name": name})
}

func (CommandTracer) Route(id, route string) {
	logging.Trace("command.route", map[string]interface{}{"id": id, "route": route})
}

func (CommandTracer) Result(id, name, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "name": name, "msg": msgType})
}

func (CommandTracer) Busy(page string) {
	logging.Trace("command.busy", map[string]interface{}{"page": page})
}
