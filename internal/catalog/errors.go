package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Import rejection reasons.
const (
	ReasonParse   = "ParseError"
	ReasonShape   = "ShapeError"
	ReasonInvalid = "InvalidRecords"
)

// ValidationError carries the field→message map produced by Validate.
// The catalog is never mutated when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError means a mutation referenced an id absent from the catalog.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %q not found", e.ID)
}

// ImportError rejects a whole import document. Reason is one of
// ReasonParse, ReasonShape or ReasonInvalid; for ReasonInvalid, Records
// maps each offending record index to its field errors so the user can
// fix the file in one pass.
type ImportError struct {
	Reason  string
	Detail  string
	Records map[int]map[string]string
}

func (e *ImportError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("import rejected (%s): %s", e.Reason, e.Detail)
	}
	return fmt.Sprintf("import rejected (%s)", e.Reason)
}

// PersistenceError signals that the in-memory mutation succeeded but the
// write-through to the durable medium failed. Callers still receive the
// updated list and should warn that changes may not survive a restart.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "catalog persisted in memory only: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }
