package articles

import "strings"

// NormalizeTerms trims and de-duplicates a front-matter sequence (tags or
// authors) while preserving first-seen order. Comparison is case-insensitive
// but the authored casing of the first occurrence wins; ordering can affect
// display, so it is never re-sorted.
func NormalizeTerms(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ContainsTerm reports whether the sequence carries the value, ignoring case.
func ContainsTerm(values []string, value string) bool {
	target := strings.ToLower(strings.TrimSpace(value))
	if target == "" {
		return false
	}
	for _, candidate := range values {
		if strings.ToLower(strings.TrimSpace(candidate)) == target {
			return true
		}
	}
	return false
}
