package palette

// QueryMsg is delivered to a component page when it mounts and whenever the
// query text changes while it is shown.
type QueryMsg struct {
	Query string
}

// RouteMsg asks the host to deliver a route exactly as if a command carrying
// it had been selected.
type RouteMsg struct {
	ID    string
	Route string
}

// NoticeMsg reports the outcome of an action without leaving the palette.
type NoticeMsg struct {
	Info string
	Err  error
}
