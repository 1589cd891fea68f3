package api

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultHistory is the number of reports kept for lookup.
const DefaultHistory = 128

// history is a bounded, insertion-ordered store of recent responses.
type history struct {
	mu    sync.Mutex
	limit int
	order []uuid.UUID
	runs  map[uuid.UUID]SearchResponse
}

func newHistory(limit int) *history {
	if limit < 1 {
		limit = DefaultHistory
	}
	return &history{limit: limit, runs: make(map[uuid.UUID]SearchResponse, limit)}
}

func (h *history) put(id uuid.UUID, resp SearchResponse) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.order) == h.limit {
		delete(h.runs, h.order[0])
		h.order = h.order[1:]
	}
	h.order = append(h.order, id)
	h.runs[id] = resp
}

func (h *history) get(id uuid.UUID) (SearchResponse, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	resp, ok := h.runs[id]
	return resp, ok
}
