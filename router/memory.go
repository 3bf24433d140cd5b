package router

import "sync"

type entry struct {
	hash  string
	state string
}

// MemoryHistory is an in-process History with back/forward support, used
// natively where there is no browser.
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []entry
	index     int
	nextID    int
	listeners map[int]func(string)
}

// NewMemoryHistory starts with a single state-less entry at hash.
func NewMemoryHistory(hash string) *MemoryHistory {
	return &MemoryHistory{
		entries:   []entry{{hash: hash}},
		listeners: make(map[int]func(string)),
	}
}

func (h *MemoryHistory) Push(page string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], entry{hash: HashFor(page), state: page})
	h.index = len(h.entries) - 1
}

func (h *MemoryHistory) Replace(page string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.index] = entry{hash: HashFor(page), state: page}
}

func (h *MemoryHistory) Hash() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index].hash
}

func (h *MemoryHistory) OnPop(fn func(page string)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Back moves one entry back and fires popstate. Reports false at the start.
func (h *MemoryHistory) Back() bool {
	return h.Go(-1)
}

// Forward moves one entry forward and fires popstate. Reports false at the end.
func (h *MemoryHistory) Forward() bool {
	return h.Go(1)
}

// Go moves delta entries and fires popstate.
func (h *MemoryHistory) Go(delta int) bool {
	h.mu.Lock()
	target := h.index + delta
	if delta == 0 || target < 0 || target >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = target
	state := h.entries[target].state
	listeners := make([]func(string), 0, len(h.listeners))
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
	return true
}
