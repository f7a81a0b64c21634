// Package logstream buffers and fans out per-execution log lines. Each
// execution has one writer (the coordinator goroutine running it) and any
// number of subscribers tailing it over SSE. Writers never block: a slow
// subscriber drops lines and is told how many once it catches up.
package logstream

import (
	"fmt"
	"sync"
)

const (
	// ringSize lines are kept for replay to late subscribers.
	ringSize = 128
	// subscriberBuffer is the live-tail headroom per subscriber beyond the
	// replayed ring.
	subscriberBuffer = 64
)

// Hub owns the streams for all in-flight and recently finished executions.
type Hub struct {
	mu      sync.Mutex
	streams map[string]*stream
}

type stream struct {
	mu      sync.Mutex
	ring    []string
	start   int // index of the oldest ring entry
	done    bool
	subs    map[int]*subscriber
	nextSub int
}

type subscriber struct {
	ch      chan string
	dropped int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{streams: make(map[string]*stream)}
}

// Write appends a line to the execution's stream and fans it out. Never
// blocks; subscribers that cannot keep up lose lines and later receive an
// overflow marker counting them.
func (h *Hub) Write(executionID, line string) {
	s := h.stream(executionID, true)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}

	if len(s.ring) < ringSize {
		s.ring = append(s.ring, line)
	} else {
		s.ring[s.start] = line
		s.start = (s.start + 1) % ringSize
	}

	for _, sub := range s.subs {
		sub.offer(line)
	}
}

// Subscribe returns a channel replaying the buffered lines and then tailing
// live output. The channel closes when the execution completes. cancel
// detaches the subscriber; it is safe to call after the channel closed.
func (h *Hub) Subscribe(executionID string) (<-chan string, func()) {
	s := h.stream(executionID, true)

	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan string, ringSize+subscriberBuffer)
	for i := range len(s.ring) {
		ch <- s.ring[(s.start+i)%len(s.ring)]
	}

	if s.done {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = &subscriber{ch: ch}

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub.ch)
		}
	}
	return ch, cancel
}

// Complete marks the execution finished and closes every subscriber channel.
// The ring stays available so late subscribers still get the replay followed
// by an immediate close.
func (h *Hub) Complete(executionID string) {
	s := h.stream(executionID, false)
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}
	s.done = true
	for id, sub := range s.subs {
		delete(s.subs, id)
		close(sub.ch)
	}
}

// Remove drops a finished stream's buffer. Subscribing afterwards yields an
// empty, immediately usable stream.
func (h *Hub) Remove(executionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.streams, executionID)
}

func (h *Hub) stream(executionID string, create bool) *stream {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.streams[executionID]
	if !ok && create {
		s = &stream{subs: make(map[int]*subscriber)}
		h.streams[executionID] = s
	}
	return s
}

// offer delivers a line without blocking. While the channel is full, lines
// are counted instead of sent; once room frees up the subscriber first gets
// an overflow marker so the gap is visible in the tail.
func (sub *subscriber) offer(line string) {
	if sub.dropped > 0 {
		select {
		case sub.ch <- fmt.Sprintf("status:overflow dropped=%d", sub.dropped):
			sub.dropped = 0
		default:
			sub.dropped++
			return
		}
	}
	select {
	case sub.ch <- line:
	default:
		sub.dropped++
	}
}
