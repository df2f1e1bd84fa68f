package propbag

import (
	"fmt"
	"log/slog"

	"github.com/propbag/propbag-go/internal/fieldmap"
)

// Accessor exposes a single underlying field store through two equivalent
// read interfaces: the lenient attribute-style reads Get and GetOr, and the
// strict mapping-style read Item. It also carries the write entry points
// whose behavior distinguishes the mutable and frozen variants.
type Accessor interface {
	// ID returns the instance identity used for log correlation.
	ID() string
	// Label names the domain type the instance represents.
	Label() string
	// Frozen reports whether the write paths reject mutation.
	Frozen() bool

	// Get returns the field value, or nil when absent. Never fails.
	Get(name string) any
	// GetOr returns the field value, or def when absent. Never fails.
	GetOr(name string, def any) any
	// Item is the mapping-style read; absent fields yield ErrFieldNotFound.
	Item(name string) (any, error)
	// Has reports whether the field is present.
	Has(name string) bool
	// Len returns the number of fields.
	Len() int
	// Keys returns all field names, sorted.
	Keys() []string
	// ToMap returns a copy of the field store, omitting excluded names.
	ToMap(exclude ...string) map[string]any
	// Snapshot captures a point-in-time serializable view of the instance.
	Snapshot() Snapshot

	// Set assigns a field. Mutable objects always succeed; frozen objects
	// return ErrImmutable and leave the store unchanged.
	Set(name string, value any) error
	// Delete removes a field. Mutable objects silently succeed even when
	// the field is absent; frozen objects always return ErrImmutable.
	Delete(name string) error

	fmt.Stringer
}

var (
	_ Accessor = (*Object)(nil)
	_ Accessor = (*Immutable)(nil)
)

// bag is the read core shared by both variants. Reads never mutate the
// store, so repeated reads of the same field return the same value.
type bag struct {
	id     string
	label  string
	fields fieldmap.Map
	logger *slog.Logger
}

func (b *bag) log() *slog.Logger {
	return logOrDefault(b.logger)
}

// ID returns the instance identity assigned at construction.
func (b *bag) ID() string { return b.id }

// Label returns the domain type name given at construction.
func (b *bag) Label() string { return b.label }

// Get returns the field value, or nil when the field is absent.
func (b *bag) Get(name string) any {
	return b.fields[name]
}

// GetOr returns the field value, or def when the field is absent.
// A field explicitly set to nil is present: GetOr returns nil, not def.
func (b *bag) GetOr(name string, def any) any {
	if v, ok := b.fields[name]; ok {
		return v
	}
	return def
}

// Item returns the field value or ErrFieldNotFound when absent,
// matching conventional mapping semantics.
func (b *bag) Item(name string) (any, error) {
	if v, ok := b.fields[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%s field %q: %w", b.label, name, ErrFieldNotFound)
}

// Has reports whether the field is present.
func (b *bag) Has(name string) bool {
	_, ok := b.fields[name]
	return ok
}

// Len returns the number of fields.
func (b *bag) Len() int { return len(b.fields) }

// Keys returns all field names in sorted order.
func (b *bag) Keys() []string { return b.fields.Keys() }

// ToMap returns a copy of the field store, omitting the excluded names.
// Mutating the returned map never affects the instance.
func (b *bag) ToMap(exclude ...string) map[string]any {
	return map[string]any(b.fields.Without(exclude...))
}

// String renders the instance as "<Label(k=v, ...)>" with sorted keys.
func (b *bag) String() string {
	return fmt.Sprintf("<%s(%s)>", b.label, b.fields.Format())
}

func (b *bag) snapshot(frozen bool) Snapshot {
	fields := b.fields.Clone()
	return Snapshot{
		ID:      b.id,
		Label:   b.label,
		Frozen:  frozen,
		Version: computeVersion(fields),
		TakenAt: nowUTC(),
		Fields:  map[string]any(fields),
	}
}
