package service

import (
	"context"
	"sync"
	"sync/atomic"

	"food-explorer/internal/domain"
)

// Hub fans a refresh signal out to every live search subscriber. Channels are
// buffered by one and sends never block: a subscriber that is mid-refresh
// already has a pending signal.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan struct{})}
}

func (h *Hub) Subscribe() (int, <-chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	id := h.next
	ch := make(chan struct{}, 1)
	h.subs[id] = ch
	return id, ch
}

func (h *Hub) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, id)
}

func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Refresher re-runs the search pipeline for one client. Each run takes a
// version token; a result whose token has been superseded by a newer run is
// dropped, so a slow response can never overwrite a fresher one.
type Refresher struct {
	searcher SearchServiceInterface
	version  atomic.Uint64
}

func NewRefresher(searcher SearchServiceInterface) *Refresher {
	return &Refresher{searcher: searcher}
}

// Run executes the pipeline. The boolean reports whether the result is still
// current; stale results return false with no error.
func (r *Refresher) Run(ctx context.Context, c domain.SearchCriteria) (domain.ResultSet, bool, error) {
	token := r.version.Add(1)

	set, err := r.searcher.Search(ctx, c)
	if err != nil {
		return domain.ResultSet{}, false, err
	}
	if r.version.Load() != token {
		return domain.ResultSet{}, false, nil
	}
	return set, true, nil
}
