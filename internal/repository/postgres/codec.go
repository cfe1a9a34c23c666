package postgres

import (
	"encoding/json"

	"kig-backend/internal/repository"
)

// Nested structures (location, photo lists, contact info, specialization,
// before/after snapshots) are stored as stringified JSON inside flat rows.
// Encoding happens on write, decoding on read; a record whose stored JSON no
// longer parses surfaces as *repository.CorruptRecordError instead of a bare
// unmarshal failure.

func encodeField(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeField unmarshals a stored JSON column into dst. An empty column is
// treated as absent and leaves dst zero-valued.
func decodeField(kind, id, field, raw string, dst any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return &repository.CorruptRecordError{Kind: kind, ID: id, Field: field, Err: err}
	}
	return nil
}
