package propbag

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Snapshot is a point-in-time serializable view of an instance. It is a
// value copy: mutating the source after the snapshot was taken, or the
// snapshot's Fields map itself, affects neither the other.
type Snapshot struct {
	ID      string         `json:"id" yaml:"id"`
	Label   string         `json:"label" yaml:"label"`
	Frozen  bool           `json:"frozen" yaml:"frozen"`
	Version string         `json:"version" yaml:"version"`
	TakenAt time.Time      `json:"takenAt" yaml:"takenAt"`
	Fields  map[string]any `json:"fields" yaml:"fields"`
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// computeVersion derives a content version from the field set:
// SHA256 over the canonical JSON of the fields, first 8 bytes, hex.
// json.Marshal sorts map keys, so equal field sets hash equally
// regardless of insertion order.
func computeVersion(fields map[string]any) string {
	data, err := json.Marshal(fields)
	if err != nil {
		// Fallback (values a snapshot cannot serialize)
		return fmt.Sprintf("unversioned-%d", time.Now().Unix())
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}

// EncodeJSON serializes the snapshot as indented JSON.
func (s Snapshot) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

// EncodeYAML serializes the snapshot as YAML.
func (s Snapshot) EncodeYAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// DecodeSnapshotJSON parses a snapshot from JSON.
func DecodeSnapshotJSON(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := s.validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// DecodeSnapshotYAML parses a snapshot from YAML.
func DecodeSnapshotYAML(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

func (s Snapshot) validate() error {
	if s.Label == "" {
		return fmt.Errorf("snapshot validation: label is empty")
	}
	return nil
}

// FromSnapshot rehydrates an instance from a snapshot. Frozen snapshots
// yield an *Immutable, others an *Object. The snapshot's ID is kept unless
// overridden with WithID; the fields are copied in.
func FromSnapshot(s Snapshot, opts ...Option) Accessor {
	opts = append([]Option{WithID(s.ID)}, opts...)
	if s.Frozen {
		return NewImmutable(s.Label, s.Fields, opts...)
	}
	return New(s.Label, append(opts, WithFields(s.Fields))...)
}
