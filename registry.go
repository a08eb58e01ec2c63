package curl

import "sync"

// contextRegistry maps small integer tokens to live callback contexts. Only
// the token crosses the native boundary; the trampolines resolve it back to a
// typed context here, so no Go pointer is ever reinterpreted from raw memory.
//
// The registry is process-global and mutex-guarded because independent
// handles may perform transfers concurrently, each registering its own
// contexts.
type contextRegistry struct {
	mu   sync.Mutex
	next uintptr
	live map[uintptr]interface{}
}

var contexts = &contextRegistry{
	next: 1,
	live: make(map[uintptr]interface{}),
}

// register stores ctx and returns its token. Tokens are never zero and never
// reused within a process lifetime, so a stale token can only miss.
func (r *contextRegistry) register(ctx interface{}) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := r.next
	r.next++
	r.live[token] = ctx
	return token
}

// lookup returns the context for token, or nil if the token is zero, stale,
// or was never issued.
func (r *contextRegistry) lookup(token uintptr) interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.live[token]
}

// release drops the context for token. Safe to call for tokens already
// released.
func (r *contextRegistry) release(token uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.live, token)
}
