package airtable

import "fmt"

// QueryError is returned when a record query comes back with a non-success
// status. It aborts the current action.
type QueryError struct {
	Status int
	Body   string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("record query returned status %d: %s", e.Status, e.Body)
}

// MutationError is returned when clearing a field on a single record fails.
// Callers treat it as a per-record failure, not a batch failure.
type MutationError struct {
	RecordId string
	Status   int
	Body     string
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("failed to update record %s, status %d: %s", e.RecordId, e.Status, e.Body)
}
