package store

import (
	"sync"
	"time"
)

// ProcessedLog records payment log ids that have already been given value, so
// notifications the aggregator re-delivers are acknowledged without crediting
// the customer twice. Safe for concurrent use.
type ProcessedLog struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

func NewProcessedLog() *ProcessedLog {
	return &ProcessedLog{seen: make(map[string]time.Time)}
}

// Mark records id as processed and reports whether it was already recorded.
func (p *ProcessedLog) Mark(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.seen[id]; ok {
		return true
	}
	p.seen[id] = time.Now()
	return false
}

// Forget removes id so a later re-delivery can be processed again. Called
// when value issuance fails after the id was marked.
func (p *ProcessedLog) Forget(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.seen, id)
}

func (p *ProcessedLog) Seen(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.seen[id]
	return ok
}

// Purge drops entries older than maxAge and returns how many were removed.
func (p *ProcessedLog) Purge(maxAge time.Duration) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for id, at := range p.seen {
		if at.Before(cutoff) {
			delete(p.seen, id)
			removed++
		}
	}

	return removed
}
