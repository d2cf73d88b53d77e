package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrContractViolated is the sentinel wrapped by ContractError so callers can
// branch with errors.Is without inspecting individual issues.
var ErrContractViolated = errors.New("validation: content contract violated")

// Severity ranks an issue. Errors fail a corpus check; warnings surface
// conventions worth fixing without blocking an import.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue captures a single contract failure in one file.
type Issue struct {
	Path     string   `json:"path"`
	Field    string   `json:"field,omitempty"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (i Issue) String() string {
	var b strings.Builder
	b.WriteString(i.Path)
	if i.Field != "" {
		b.WriteString(":")
		b.WriteString(i.Field)
	}
	b.WriteString(" [")
	b.WriteString(i.Code)
	b.WriteString("] ")
	b.WriteString(i.Message)
	return b.String()
}

// Report aggregates issues across a corpus run.
type Report struct {
	FilesChecked int     `json:"files_checked"`
	Issues       []Issue `json:"issues"`
}

// Valid reports whether the corpus passed, ignoring warnings.
func (r *Report) Valid() bool {
	return len(r.Errors()) == 0
}

// Errors returns issues with error severity.
func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns issues with warning severity.
func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(severity Severity) []Issue {
	if r == nil {
		return nil
	}
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// Add appends issues to the report.
func (r *Report) Add(issues ...Issue) {
	r.Issues = append(r.Issues, issues...)
}

// Err converts a failing report into a ContractError, nil when valid.
func (r *Report) Err() error {
	if r == nil || r.Valid() {
		return nil
	}
	return &ContractError{Issues: r.Errors()}
}

// ContractError carries the failing issues behind ErrContractViolated.
type ContractError struct {
	Issues []Issue
}

func (e *ContractError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return ErrContractViolated.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Sprintf("%s: %s", ErrContractViolated.Error(), strings.Join(parts, "; "))
}

func (e *ContractError) Unwrap() error {
	return ErrContractViolated
}
