package domain

import internaldomain "github.com/simonmumina/codingeasypeasy-sub006/internal/domain"

// Status represents lifecycle states for corpus records.
type Status = internaldomain.Status

const (
	// StatusDraft indicates an article the draft flag keeps out of public listings.
	StatusDraft = internaldomain.StatusDraft
	// StatusPublished identifies an article visible to consumers.
	StatusPublished = internaldomain.StatusPublished
)

// StatusFromDraft maps the front-matter draft flag onto the persisted status.
func StatusFromDraft(draft bool) Status {
	return internaldomain.StatusFromDraft(draft)
}

// NormalizeStatus coerces arbitrary status strings into a known representation.
func NormalizeStatus(input string) Status {
	return internaldomain.NormalizeStatus(input)
}
