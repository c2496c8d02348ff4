package tempo

import "time"

// Stats is a snapshot of Manager counters.
type Stats struct {
	Passes   uint64        // completed passes
	Active   int           // tweens in the active set after the last pass
	Natural  uint64        // tweens that reached their end time
	Forced   uint64        // tweens completed through Finish
	Panics   uint64        // callback panics recovered
	LastPass time.Duration // wall time of the last pass; debug mode only
}

// Stats returns a snapshot of the Manager's counters.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.stats
	s.Active = len(m.byID)
	return s
}

// debugLog records per-pass timing. Only called when debug mode is on.
func (m *Manager) debugLog(s Stats, ended int) {
	m.logger.Debug("pass",
		"pass", s.Passes,
		"active", s.Active,
		"ended", ended,
		"elapsed", s.LastPass)
}
