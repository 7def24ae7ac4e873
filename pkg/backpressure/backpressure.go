// Package backpressure holds the window during which calls to the Azure API
// are held off after the API signalled throttling.
package backpressure

import (
	"sync"
	"time"
)

// Backpressure is safe for concurrent use. The zero value lets every call
// proceed.
type Backpressure struct {
	mutex     sync.RWMutex
	notBefore time.Time
}

// NotBefore blocks calls until t. An earlier t never shortens a window that
// is already in place.
func (g *Backpressure) NotBefore(t time.Time) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if t.After(g.notBefore) {
		g.notBefore = t
	}
}

func (g *Backpressure) CanProceed() bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return time.Now().After(g.notBefore)
}

func (g *Backpressure) RetryAfter() time.Time {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return g.notBefore
}
