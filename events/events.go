// Package events holds the input event value handed to Go listeners and the
// debouncer that coalesces bursts of them.
package events

// Event is the subset of a DOM event that listeners read.
type Event struct {
	Type  string
	Key   string
	Ctrl  bool
	Meta  bool
	Value string // target.value for input and key events

	// OnPreventDefault is wired by the DOM binding to event.preventDefault().
	OnPreventDefault func()
}

// PreventDefault cancels the browser's default action, when bound.
func (e Event) PreventDefault() {
	if e.OnPreventDefault != nil {
		e.OnPreventDefault()
	}
}

// Shortcut reports whether the event is Ctrl+key or Cmd+key.
func (e Event) Shortcut(key string) bool {
	return (e.Ctrl || e.Meta) && e.Key == key
}
