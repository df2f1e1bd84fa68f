package propbag

import "errors"

// Sentinel errors for the accessor and manager surfaces. Call sites wrap
// them with field or key context; match with errors.Is.
var (
	// ErrFieldNotFound is returned by mapping-style reads of absent fields.
	ErrFieldNotFound = errors.New("field not found")

	// ErrImmutable is returned by every write path of a frozen object.
	ErrImmutable = errors.New("object is immutable")

	// ErrNotCached is returned by Manager lookups for unknown keys.
	ErrNotCached = errors.New("object not cached")
)
