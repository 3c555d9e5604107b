package stores

// Navigator receives a target path when an operation should route the user,
// e.g. to a freshly created activity's detail view.
type Navigator interface {
	Push(path string)
}

// Notifier receives the human-readable messages surfaced on failed
// create/attend/cancel operations (the toast of the presentation layer).
type Notifier interface {
	Error(message string)
}
