// Package portal implements the HTTP client for an ENCODE-style metadata
// portal: paged report queries and cart creation.
package portal

// Record is one remote object as decoded from the report response. Values may
// themselves be nested objects or arrays; we keep the raw shape and let
// callers resolve paths into it.
type Record map[string]any

// ID returns the record's @id, or the empty string when absent.
func (r Record) ID() string {
	if s, ok := r["@id"].(string); ok {
		return s
	}
	return ""
}

// Page is one bounded batch of records from the report endpoint. Total is the
// server's count of all records matching the query, not the page size; a
// terminal page has an empty Graph.
type Page struct {
	Total int      `json:"total"`
	Graph []Record `json:"@graph"`
}

// ReportQuery describes a single report page request.
type ReportQuery struct {
	// Type is the record type name, e.g. "Experiment".
	Type string
	// Field is the dotted field path to request, e.g. "files.@id".
	Field string
	// Filter is an extra query expression appended to the URL verbatim.
	// It is assumed to be pre-encoded by the caller.
	Filter string
	// Limit and From are the page size and offset.
	Limit int
	From  int
}

// Cart is a named cart record to create on the portal.
type Cart struct {
	Identifier string
	Name       string
	Status     string
}
