package fieldmap

import (
	"fmt"
	"sort"
	"strings"
)

// Map is the open-ended field store backing every object variant. Field
// names map to arbitrary values; the store imposes no schema.
//
// Map is not safe for concurrent mutation. Frozen objects share a Map
// only after cloning it, which is what makes them safe to read from
// multiple goroutines.
type Map map[string]any

// New returns an empty Map.
func New() Map {
	return Map{}
}

// From copies src into a fresh Map. A nil src yields an empty Map.
func From(src map[string]any) Map {
	m := make(Map, len(src))
	for k, v := range src {
		m[k] = v
	}
	return m
}

// Clone returns a defensive copy of m. Values are copied shallowly;
// mutating the copy never affects the original map.
func (m Map) Clone() Map {
	return From(m)
}

// Keys returns all field names in sorted order.
// Sorting keeps String renderings and encodings deterministic.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge overlays src onto m in place, overwriting colliding names.
func (m Map) Merge(src map[string]any) {
	for k, v := range src {
		m[k] = v
	}
}

// Without returns a copy of m omitting the excluded names.
func (m Map) Without(exclude ...string) Map {
	drop := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		drop[name] = struct{}{}
	}
	out := make(Map, len(m))
	for k, v := range m {
		if _, skip := drop[k]; skip {
			continue
		}
		out[k] = v
	}
	return out
}

// Format renders the map as "k=v, k2=v2" with sorted keys.
// Human-readable form for String methods, not a serialization format.
func (m Map) Format() string {
	var sb strings.Builder
	for i, k := range m.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, m[k])
	}
	return sb.String()
}

// ValidName reports whether name is a valid field identifier:
// a letter or underscore followed by letters, digits, or underscores.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}
