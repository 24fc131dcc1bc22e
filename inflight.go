package blogpilot

import "sync"

// Gate is a single-flight guard. The generate action holds it for the
// duration of its backend call, mirroring the UI's disabled trigger button:
// a second generation attempt while one is running is rejected up front
// instead of queued. Publish and delete stay unguarded on purpose.
type Gate struct {
	mu   sync.Mutex
	busy bool
}

// TryAcquire claims the gate if it is free. Callers that get true must call
// Release when done.
func (g *Gate) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return false
	}
	g.busy = true
	return true
}

// Release frees the gate.
func (g *Gate) Release() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}
