package model

import (
	"sync/atomic"
)

// SelectionModel tracks whether selection mode is enabled. The zero value is
// disabled and usable. Concurrency-safe via atomic Bool because UI callbacks
// and the debounced resize handler may race.
type SelectionModel struct{ enabled atomic.Bool }

// Enabled reports whether selection mode is currently on.
func (m *SelectionModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

// SetEnabled stores the flag.
func (m *SelectionModel) SetEnabled(b bool) {
	if m == nil {
		return
	}
	if m.enabled.Load() == b { // no change
		return
	}
	m.enabled.Store(b)
}

// Toggle flips the flag and returns the new value.
func (m *SelectionModel) Toggle() bool {
	if m == nil {
		return false
	}
	next := !m.enabled.Load()
	m.enabled.Store(next)
	return next
}
