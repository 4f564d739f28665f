// Package ui contains the Bubble Tea program that hosts the command palette.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, input, rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each tea.Msg through a typed handler registry (key presses,
//     resizes, action results, backend updates). Messages no handler claims go
//     to the component page currently shown, if any.
//   - After every message the model syncs: features re-register their commands
//     from the stores, the navigator drops pages that vanished, the hosted
//     component follows the current page, and the list follows the query.
//     Once the navigator is closed the model asks the program to quit.
//
// State ownership:
//   - The palette.Registry and palette.Navigator are owned by the model and
//     only touched from the update loop.
//   - List state (rows, cursor, filter text, viewport) lives in
//     internal/ui/state.Level. The navigator's query is authoritative; the
//     level's filter mirrors it.
//   - Project, branch, flag and catalog stores come from internal/state and are
//     kept current by the dispatcher.
//   - Selections are executed by internal/ui/command: actions run inline with
//     the navigator as their controller, routes are delivered from a tea.Cmd.
//
// Backend interactions:
//   - A backend.Watcher streams workspace snapshots; Update waits for those
//     events and hands them to applyBackendEvent.
package ui
