// Package testutil provides construction variants so one test suite can
// exercise every way of producing an instance.
package testutil

import (
	propbag "github.com/propbag/propbag-go"
)

// Variant describes one way of constructing an instance from a label and a
// field set. All variants yield an Accessor with the same read surface;
// Mutable tells the suite which write behavior to expect.
type Variant struct {
	Name    string
	Mutable bool
	Build   func(label string, fields map[string]any) propbag.Accessor
}

// Variants returns every supported construction path. Suites iterate these
// so that a property checked once holds however the instance was made.
func Variants() []Variant {
	return []Variant{
		{
			Name:    "ObjectSet",
			Mutable: true,
			Build: func(label string, fields map[string]any) propbag.Accessor {
				o := propbag.New(label)
				for k, v := range fields {
					o.Set(k, v)
				}
				return o
			},
		},
		{
			Name:    "ObjectSeeded",
			Mutable: true,
			Build: func(label string, fields map[string]any) propbag.Accessor {
				return propbag.New(label, propbag.WithFields(fields))
			},
		},
		{
			Name:    "Immutable",
			Mutable: false,
			Build: func(label string, fields map[string]any) propbag.Accessor {
				return propbag.NewImmutable(label, fields)
			},
		},
		{
			Name:    "BuilderBuild",
			Mutable: false,
			Build: func(label string, fields map[string]any) propbag.Accessor {
				return propbag.NewBuilder(label).Apply(fields).Build()
			},
		},
		{
			Name:    "BuilderObject",
			Mutable: true,
			Build: func(label string, fields map[string]any) propbag.Accessor {
				return propbag.NewBuilder(label).Apply(fields).BuildObject()
			},
		},
		{
			Name:    "Frozen",
			Mutable: false,
			Build: func(label string, fields map[string]any) propbag.Accessor {
				return propbag.New(label, propbag.WithFields(fields)).Freeze()
			},
		},
		{
			Name:    "Thawed",
			Mutable: true,
			Build: func(label string, fields map[string]any) propbag.Accessor {
				return propbag.NewImmutable(label, fields).Thaw()
			},
		},
		{
			Name:    "Rehydrated",
			Mutable: true,
			Build: func(label string, fields map[string]any) propbag.Accessor {
				snap := propbag.New(label, propbag.WithFields(fields)).Snapshot()
				return propbag.FromSnapshot(snap)
			},
		},
		{
			Name:    "RehydratedFrozen",
			Mutable: false,
			Build: func(label string, fields map[string]any) propbag.Accessor {
				snap := propbag.NewImmutable(label, fields).Snapshot()
				return propbag.FromSnapshot(snap)
			},
		},
	}
}
