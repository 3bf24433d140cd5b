// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"errors"
	"sync"
)

// Writer copies text and reports the outcome through done, which may run
// later, on another callback. Implementations must not block the caller.
type Writer interface {
	WriteText(text string, done func(error))
}

// ErrUnavailable is reported when the clipboard cannot be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Memory is a Writer that keeps the last copied text. Setting Fail makes
// every write report that error instead.
type Memory struct {
	mu   sync.Mutex
	text string
	Fail error
}

// WriteText stores text and calls done synchronously.
func (m *Memory) WriteText(text string, done func(error)) {
	m.mu.Lock()
	err := m.Fail
	if err == nil {
		m.text = text
	}
	m.mu.Unlock()

	if done != nil {
		done(err)
	}
}

// Text returns the last successfully copied text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
