package propbag

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/propbag/propbag-go/internal/fieldmap"
)

// Builder accumulates a field configuration and produces an instance in a
// single step. Fields staged on a Builder are invisible to readers until
// Build or BuildObject copies them out, so a frozen instance never exposes
// a half-constructed state.
type Builder struct {
	id     string
	label  string
	config fieldmap.Map
	logger *slog.Logger
}

// NewBuilder creates a Builder for instances with the given label.
func NewBuilder(label string, opts ...Option) *Builder {
	s := newSettings(opts...)
	b := &Builder{
		id:     s.id,
		label:  label,
		config: fieldmap.From(s.fields),
		logger: s.logger,
	}
	b.log().Info("builder initialized", "label", b.label, "id", b.id, "fields", len(b.config))
	return b
}

func (b *Builder) log() *slog.Logger {
	return logOrDefault(b.logger)
}

// Label names the domain type the built instances will represent.
func (b *Builder) Label() string { return b.label }

// Set stages a field, overwriting any staged value of the same name.
// Returns the Builder for chaining.
func (b *Builder) Set(name string, value any) *Builder {
	b.config[name] = value
	return b
}

// Apply stages every field from the map. Later sources overwrite earlier
// ones key by key. Returns the Builder for chaining.
func (b *Builder) Apply(fields map[string]any) *Builder {
	b.config.Merge(fields)
	return b
}

// MergeJSON stages the fields of a JSON object. The top level of data must
// be an object; scalars and arrays are rejected.
func (b *Builder) MergeJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	b.config.Merge(fields)
	return nil
}

// MergeYAML stages the fields of a YAML mapping. The top level of data
// must be a mapping; scalars and sequences are rejected.
func (b *Builder) MergeYAML(data []byte) error {
	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	b.config.Merge(fields)
	return nil
}

// Configuration returns a copy of the staged fields. Mutating the returned
// map does not affect the Builder.
func (b *Builder) Configuration() map[string]any {
	return map[string]any(b.config.Clone())
}

// Len returns the number of staged fields.
func (b *Builder) Len() int { return len(b.config) }

// Validate checks that every staged field name is a valid identifier:
// a letter or underscore followed by letters, digits, or underscores.
// Validation is opt-in; Build does not call it.
func (b *Builder) Validate() error {
	for _, name := range b.config.Keys() {
		if !fieldmap.ValidName(name) {
			return fmt.Errorf("invalid field name %q", name)
		}
	}
	return nil
}

// Build copies the staged fields into a frozen instance. The Builder
// remains usable; later staging does not affect instances already built.
func (b *Builder) Build() *Immutable {
	im := NewImmutable(b.label, b.config, WithLogger(b.logger))
	b.log().Info("immutable object built", "label", b.label, "builder", b.id, "id", im.ID())
	return im
}

// BuildObject copies the staged fields into a mutable Object, for callers
// that want builder-style staging without freezing the result.
func (b *Builder) BuildObject() *Object {
	o := New(b.label, WithLogger(b.logger), WithFields(b.config))
	b.log().Info("object built", "label", b.label, "builder", b.id, "id", o.ID())
	return o
}
