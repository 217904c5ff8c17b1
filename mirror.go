package warung

import (
	"log"
	"sync"
	"time"
)

// DefaultFlushDelay is the idle window after the last mutation before the
// mirror writes a snapshot, coalescing bursts of changes into one write.
const DefaultFlushDelay = time.Second

// Mirror is the debounced persistence side-channel. Mutations mark it dirty;
// one idle window later it flushes a full snapshot. A failed flush is logged
// and retried on the next mutation; the in-memory store stays authoritative
// and is never corrupted by a persistence failure.
type Mirror struct {
	mu     sync.Mutex
	store  *Store
	flush  func(*Store) error
	delay  time.Duration
	timer  *time.Timer
	dirty  bool
	closed bool
}

// NewMirror wires a mirror to the store's change hook. flush receives the
// store and performs the actual write, typically EncodeStore into a data
// directory.
func NewMirror(s *Store, delay time.Duration, flush func(*Store) error) *Mirror {
	if delay <= 0 {
		delay = DefaultFlushDelay
	}
	m := &Mirror{store: s, flush: flush, delay: delay}
	s.OnChange(m.MarkDirty)
	return m
}

// MarkDirty schedules a flush one idle window from now. Further calls within
// the window reset the timer, so a burst of mutations produces one write.
func (m *Mirror) MarkDirty() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.dirty = true
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.delay, func() {
		if err := m.Flush(); err != nil {
			log.Printf("mirror flush failed: %v", err)
		}
	})
}

// Flush writes the snapshot now if there are unsaved changes. The dirty flag
// is kept on failure so the write is retried later.
func (m *Mirror) Flush() error {
	m.mu.Lock()
	if !m.dirty {
		m.mu.Unlock()
		return nil
	}
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.dirty = false
	m.mu.Unlock()

	// The flush runs outside the mirror lock: it takes the store's own
	// read lock and may be slow on large data sets.
	if err := m.flush(m.store); err != nil {
		m.mu.Lock()
		m.dirty = true
		m.mu.Unlock()
		return err
	}
	return nil
}

// Close stops the timer and performs a final synchronous flush.
func (m *Mirror) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.mu.Unlock()
	return m.Flush()
}
