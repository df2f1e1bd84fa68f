// Package propbag implements a minimal object model with dual-mode field
// access: every instance exposes one open-ended field store through both
// lenient attribute-style reads and strict mapping-style reads, with
// integrated structured logging on each assignment.
//
// Object is the mutable base. Immutable is the frozen variant: it shares
// the read surface but rejects every write after construction, which makes
// instances safe to share across goroutines without synchronization.
// Builder accumulates a field configuration and freezes it in one step,
// so no half-constructed object is ever visible to callers.
package propbag

import (
	"github.com/google/uuid"

	"github.com/propbag/propbag-go/internal/fieldmap"
)

// Object is the mutable base of the object model. Fields may be assigned,
// overwritten, and removed at any time; every assignment is logged.
//
// An Object is not safe for concurrent mutation. Freeze it to obtain an
// instance that can be shared across goroutines.
type Object struct {
	bag
}

// New creates an Object with the given label. The label names the domain
// type the instance represents and appears in String renderings and log
// lines, the way a concrete type name would.
func New(label string, opts ...Option) *Object {
	s := newSettings(opts...)
	o := &Object{bag: bag{
		id:     s.id,
		label:  label,
		fields: fieldmap.From(s.fields),
		logger: s.logger,
	}}
	o.log().Info("object initialized", "label", o.label, "id", o.id, "fields", o.Len())
	return o
}

// Frozen reports false: the write paths of an Object always succeed.
func (o *Object) Frozen() bool { return false }

// Set assigns the field. It always succeeds: no validation, no type
// checking. The assignment is logged at debug level.
func (o *Object) Set(name string, value any) error {
	if o.fields == nil {
		o.fields = fieldmap.New()
	}
	o.fields[name] = value
	o.log().Debug("field set", "label", o.label, "id", o.id, "field", name, "value", value)
	return nil
}

// Delete removes the field if present and silently succeeds otherwise.
func (o *Object) Delete(name string) error {
	if _, ok := o.fields[name]; !ok {
		return nil
	}
	delete(o.fields, name)
	o.log().Debug("field deleted", "label", o.label, "id", o.id, "field", name)
	return nil
}

// Snapshot captures a point-in-time serializable view of the object.
func (o *Object) Snapshot() Snapshot {
	return o.snapshot(false)
}

// Freeze copies the current field set into an Immutable. The copy is
// complete before the Immutable exists, so there is no window in which a
// frozen instance can observe further mutation of the source.
func (o *Object) Freeze() *Immutable {
	im := &Immutable{bag: bag{
		id:     uuid.NewString(),
		label:  o.label,
		fields: o.fields.Clone(),
		logger: o.logger,
	}}
	im.log().Info("object frozen", "label", im.label, "id", im.id, "from", o.id)
	return im
}
