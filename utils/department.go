package utils

import "strings"

// NormalizeDepartment maps a free-text department name to the canonical
// form used in the folders table: trimmed, lowercased, runs of whitespace
// collapsed to a single underscore. "Computer Science" and
// " computer  science " both become "computer_science", so folders created
// under either spelling end up in the same partition.
func NormalizeDepartment(department string) string {
	fields := strings.Fields(strings.ToLower(department))
	return strings.Join(fields, "_")
}
