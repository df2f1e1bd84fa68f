package propbag

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/propbag/propbag-go/internal/fieldmap"
)

// Immutable is the frozen variant of Object. It offers the same read
// surface, and every write entry point fails with ErrImmutable, leaving
// the field store untouched. Because no post-construction write can
// succeed, instances are safe to share across concurrent readers without
// synchronization; immutability substitutes for locking.
type Immutable struct {
	bag
}

// NewImmutable creates a frozen instance holding a copy of fields.
// The field set is fixed for the lifetime of the instance; construct via
// Builder when fields are accumulated incrementally.
func NewImmutable(label string, fields map[string]any, opts ...Option) *Immutable {
	s := newSettings(opts...)
	im := &Immutable{bag: bag{
		id:     s.id,
		label:  label,
		fields: fieldmap.From(fields),
		logger: s.logger,
	}}
	im.log().Info("immutable object initialized", "label", im.label, "id", im.id, "fields", im.Len())
	return im
}

// Frozen reports true: the write paths of an Immutable always fail.
func (im *Immutable) Frozen() bool { return true }

// Set fails with ErrImmutable. The field store is left unchanged; the
// attempt is logged at error level.
func (im *Immutable) Set(name string, value any) error {
	im.log().Error("cannot set field on immutable object", "label", im.label, "id", im.id, "field", name)
	return fmt.Errorf("%s field %q: %w", im.label, name, ErrImmutable)
}

// Delete fails with ErrImmutable, even for fields that were never set.
// The attempt is logged at warn level.
func (im *Immutable) Delete(name string) error {
	im.log().Warn("cannot delete field on immutable object", "label", im.label, "id", im.id, "field", name)
	return fmt.Errorf("%s field %q: %w", im.label, name, ErrImmutable)
}

// Snapshot captures a point-in-time serializable view of the instance.
func (im *Immutable) Snapshot() Snapshot {
	return im.snapshot(true)
}

// Thaw returns a mutable copy of the instance. The frozen original is
// unaffected by any mutation of the copy.
func (im *Immutable) Thaw() *Object {
	o := &Object{bag: bag{
		id:     uuid.NewString(),
		label:  im.label,
		fields: im.fields.Clone(),
		logger: im.logger,
	}}
	o.log().Info("object thawed", "label", o.label, "id", o.id, "from", im.id)
	return o
}
