package domain

import "strings"

// Status represents lifecycle states for corpus records
type Status string

const (
	// StatusDraft indicates an article the draft flag keeps out of public listings
	StatusDraft Status = "draft"
	// StatusPublished identifies an article visible to consumers
	StatusPublished Status = "published"
)

// StatusFromDraft maps the front-matter draft flag onto the persisted status.
func StatusFromDraft(draft bool) Status {
	if draft {
		return StatusDraft
	}
	return StatusPublished
}

// NormalizeStatus coerces arbitrary status strings into a known representation.
// Unknown values fall back to draft so records never leak into public output.
func NormalizeStatus(input string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(input))) {
	case StatusPublished:
		return StatusPublished
	default:
		return StatusDraft
	}
}
