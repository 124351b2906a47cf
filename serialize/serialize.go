// Package serialize holds the per-resource, per-mode representation
// mappings: summary shapes for list responses, detail shapes for
// single objects, and write-payload validation. Read-only fields are
// simply absent from the write types.
package serialize

import "time"

// FieldErrors maps a field name to its validation messages and is
// rendered directly as the 400 response body.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
)

func formatTime(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
