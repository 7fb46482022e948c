package session

import "sync"

// Entry is one answered question. Immutable once recorded.
type Entry struct {
	Question string
	Answer   string
}

// History holds the session's answered questions, newest first. It is
// append-only, unbounded, and lives only as long as the process.
type History struct {
	mu      sync.Mutex
	entries []Entry
}

func NewHistory() *History {
	return &History{}
}

// Add prepends the entry.
func (h *History) Add(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append([]Entry{e}, h.entries...)
}

// Entries returns a copy, newest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
