package stores

import "sync"

// signalHub is the subscription mechanism behind the stores: the
// presentation layer registers a callback and is poked once after every
// settled state change (flags, registry contents, selection, user).
type signalHub struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func newSignalHub() *signalHub {
	return &signalHub{subs: make(map[int]func())}
}

// subscribe registers fn and returns its cancel function.
func (h *signalHub) subscribe(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	h.subs[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// publish invokes every subscriber. Callbacks run on the publishing
// goroutine; they must not block.
func (h *signalHub) publish() {
	h.mu.Lock()
	subs := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
