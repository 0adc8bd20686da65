package utils

import "strings"

// MatchesSearch reports whether the query appears, case-insensitively, in
// any of the record's searchable fields. An empty query matches everything.
func MatchesSearch(fields []string, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterRecords derives the visible subset of an in-memory list: substring
// match across searchable fields intersected with an exact status match.
// Either filter may be empty; the full set passes through when both are.
func FilterRecords[T any](records []T, query, status string, fieldsOf func(*T) []string, statusOf func(*T) string) []T {
	if query == "" && status == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for i := range records {
		if !MatchesSearch(fieldsOf(&records[i]), query) {
			continue
		}
		if status != "" && statusOf != nil && statusOf(&records[i]) != status {
			continue
		}
		out = append(out, records[i])
	}
	return out
}
