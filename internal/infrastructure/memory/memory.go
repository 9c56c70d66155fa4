// Package memory provides in-memory implementations of the persistence
// ports. They back the unit tests and double as a reference for the cursor
// semantics the PostgreSQL adapters implement in SQL: pages are ordered by
// id, the cursor is the last id of a full page, empty when exhausted.
package memory

import "sort"

// pageIDs applies keyset pagination to a sorted id slice: ids strictly after
// last, capped at limit. Returns the page and the next cursor.
func pageIDs(ids []string, last string, limit int) ([]string, string) {
	start := 0
	if last != "" {
		start = sort.SearchStrings(ids, last)
		if start < len(ids) && ids[start] == last {
			start++
		}
	}
	end := start + limit
	if end > len(ids) {
		end = len(ids)
	}
	page := ids[start:end]
	if len(page) < limit || len(page) == 0 {
		return page, ""
	}
	return page, page[len(page)-1]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
