package propbag

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/propbag/propbag-go/internal/fieldmap"
)

// DefaultTimeLimit is how long a Manager keeps its entries before Flush
// considers them expired.
const DefaultTimeLimit = 5 * time.Minute

// Manager is a keyed registry of objects with a whole-registry time limit.
// Entries accumulate under string keys; once the time limit has passed
// since the last flush, the next Flush call clears the entire registry at
// once. Expiry is registry-wide, not per entry.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	id      string
	label   string
	entries map[string]any
	limit   time.Duration
	stamp   time.Time
	logger  *slog.Logger
}

// NewManager creates an empty Manager. The time limit defaults to
// DefaultTimeLimit; override it with WithTimeLimit.
func NewManager(label string, opts ...Option) *Manager {
	s := newSettings(opts...)
	m := &Manager{
		id:      s.id,
		label:   label,
		entries: make(map[string]any),
		limit:   s.timeLimit,
		stamp:   time.Now(),
		logger:  s.logger,
	}
	m.log().Info("manager initialized", "label", m.label, "id", m.id, "limit", m.limit)
	return m
}

func (m *Manager) log() *slog.Logger {
	return logOrDefault(m.logger)
}

// ID returns the manager identity assigned at construction.
func (m *Manager) ID() string { return m.id }

// Label names the kind of objects the manager holds.
func (m *Manager) Label() string { return m.label }

// Put stores value under key, overwriting any existing entry.
func (m *Manager) Put(key string, value any) {
	m.entries[key] = value
	m.log().Info("object cached", "label", m.label, "id", m.id, "key", key)
}

// Get returns the entry under key, or ErrNotCached when absent.
func (m *Manager) Get(key string) (any, error) {
	v, ok := m.entries[key]
	if !ok {
		return nil, fmt.Errorf("%s key %q: %w", m.label, key, ErrNotCached)
	}
	return v, nil
}

// Has reports whether an entry exists under key.
func (m *Manager) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Update stores value under key. The write is identical to Put; the two
// exist so that cache fills and refreshes are distinguishable in logs.
func (m *Manager) Update(key string, value any) {
	m.entries[key] = value
	m.log().Info("object updated", "label", m.label, "id", m.id, "key", key)
}

// Remove deletes the entry under key, or returns ErrNotCached when absent.
func (m *Manager) Remove(key string) error {
	if _, ok := m.entries[key]; !ok {
		return fmt.Errorf("%s key %q: %w", m.label, key, ErrNotCached)
	}
	delete(m.entries, key)
	m.log().Info("object removed", "label", m.label, "id", m.id, "key", key)
	return nil
}

// Expired reports whether the time limit has passed since the last flush.
func (m *Manager) Expired() bool {
	return time.Since(m.stamp) > m.limit
}

// Flush clears the registry when forced or expired and resets the
// timestamp. It reports whether a flush happened.
func (m *Manager) Flush(force bool) bool {
	if !force && !m.Expired() {
		return false
	}
	n := len(m.entries)
	m.entries = make(map[string]any)
	m.stamp = time.Now()
	m.log().Info("cache flushed", "label", m.label, "id", m.id, "evicted", n, "forced", force)
	return true
}

// Len returns the number of entries.
func (m *Manager) Len() int { return len(m.entries) }

// Keys returns all entry keys in sorted order.
func (m *Manager) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns a copy of the registry. Mutating the returned map does
// not affect the manager.
func (m *Manager) Entries() map[string]any {
	return map[string]any(fieldmap.From(m.entries))
}

// TimeLimit returns the configured expiry limit.
func (m *Manager) TimeLimit() time.Duration { return m.limit }

// Timestamp returns the time of the last flush.
func (m *Manager) Timestamp() time.Time { return m.stamp }

// SetTimestamp overrides the last-flush time. Backdating it causes the
// next Flush to treat the registry as expired.
func (m *Manager) SetTimestamp(t time.Time) { m.stamp = t }
