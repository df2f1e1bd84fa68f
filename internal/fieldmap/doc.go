// Package fieldmap provides the foundational field storage primitive
// for the object model.
//
// This package uses ONLY the Go standard library. The accessor surfaces
// built on top of it (Object, Immutable, Builder, Manager) own all
// logging and policy; fieldmap stays a plain data structure to keep:
// - Deterministic iteration (sorted keys)
// - Defensive copying at every boundary
// - Zero-allocation reads
//
// Core invariants:
// - A Map never aliases caller-supplied maps (From/Clone copy)
// - Keys() and Format() order is sorted, not insertion order
// - Values are opaque; fieldmap never inspects or converts them
package fieldmap
