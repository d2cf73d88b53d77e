package validation

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/simonmumina/codingeasypeasy-sub006/articles"
	"github.com/simonmumina/codingeasypeasy-sub006/pkg/interfaces"
)

// File pairs a corpus-relative path with its raw bytes.
type File struct {
	Path   string
	Source []byte
}

// ContractValidator applies the corpus content contract to MDX files: the
// front matter must parse, carry the required fields with the right shapes,
// and keep its dates ordered. Structural checks run through a JSON schema;
// the semantic checks the schema cannot express live here.
type ContractValidator struct {
	schema *jsonschema.Schema
	logger interfaces.Logger
}

// ValidatorOption configures the validator.
type ValidatorOption func(*ContractValidator)

// WithValidatorLogger attaches a logger for per-file results.
func WithValidatorLogger(logger interfaces.Logger) ValidatorOption {
	return func(v *ContractValidator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// NewContractValidator compiles the embedded schema and returns a validator.
func NewContractValidator(opts ...ValidatorOption) (*ContractValidator, error) {
	schema, err := compileFrontMatterSchema()
	if err != nil {
		return nil, err
	}

	v := &ContractValidator{schema: schema}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// ValidateFile checks a single file and returns its issues.
func (v *ContractValidator) ValidateFile(filePath string, source []byte) []Issue {
	var issues []Issue

	if ext := strings.ToLower(path.Ext(filePath)); ext != ".mdx" {
		issues = append(issues, Issue{
			Path:     filePath,
			Code:     "extension",
			Message:  fmt.Sprintf("expected .mdx extension, found %q", ext),
			Severity: SeverityWarning,
		})
	}

	if !utf8.Valid(source) {
		issues = append(issues, Issue{
			Path:     filePath,
			Code:     "encoding-invalid",
			Message:  "file is not valid UTF-8",
			Severity: SeverityError,
		})
		return issues
	}

	var meta map[string]any
	if _, err := frontmatter.Parse(bytes.NewReader(source), &meta); err != nil {
		issues = append(issues, Issue{
			Path:     filePath,
			Code:     "yaml-invalid",
			Message:  err.Error(),
			Severity: SeverityError,
		})
		return issues
	}

	if len(meta) == 0 {
		issues = append(issues, Issue{
			Path:     filePath,
			Code:     "frontmatter-missing",
			Message:  "no front matter block found at file start",
			Severity: SeverityError,
		})
		return issues
	}

	issues = append(issues, schemaIssues(filePath, v.schema, meta)...)
	issues = append(issues, semanticIssues(filePath, meta)...)
	return issues
}

// Validate runs the contract over a set of files and aggregates a report.
func (v *ContractValidator) Validate(ctx context.Context, files []File) (*Report, error) {
	report := &Report{}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		report.FilesChecked++
		issues := v.ValidateFile(file.Path, file.Source)
		report.Add(issues...)

		if v.logger != nil && len(issues) > 0 {
			v.logger.Warn("contract issues found", "path", file.Path, "count", len(issues))
		}
	}

	return report, nil
}

var contractDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseContractDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		trimmed := strings.TrimSpace(v)
		for _, layout := range contractDateLayouts {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

// semanticIssues covers the rules the structural schema cannot express.
func semanticIssues(filePath string, meta map[string]any) []Issue {
	var issues []Issue

	date, dateOK := parseContractDate(meta["date"])
	if _, present := meta["date"]; present && !dateOK {
		issues = append(issues, Issue{
			Path:     filePath,
			Field:    "date",
			Code:     "date-invalid",
			Message:  fmt.Sprintf("date %v is not an ISO 8601 date", meta["date"]),
			Severity: SeverityError,
		})
	}

	if rawLastmod, present := meta["lastmod"]; present {
		lastmod, ok := parseContractDate(rawLastmod)
		if !ok {
			issues = append(issues, Issue{
				Path:     filePath,
				Field:    "lastmod",
				Code:     "date-invalid",
				Message:  fmt.Sprintf("lastmod %v is not an ISO 8601 date", rawLastmod),
				Severity: SeverityError,
			})
		} else if dateOK && lastmod.Before(date) {
			issues = append(issues, Issue{
				Path:     filePath,
				Field:    "lastmod",
				Code:     "date-order",
				Message:  fmt.Sprintf("lastmod %s precedes date %s", lastmod.Format("2006-01-02"), date.Format("2006-01-02")),
				Severity: SeverityError,
			})
		}
	}

	issues = append(issues, duplicateIssues(filePath, "tags", meta["tags"])...)
	issues = append(issues, duplicateIssues(filePath, "authors", meta["authors"])...)

	if rawSlug, present := meta["slug"]; present {
		if slug, ok := rawSlug.(string); ok && !articles.IsValidSlug(strings.TrimSpace(slug)) {
			issues = append(issues, Issue{
				Path:     filePath,
				Field:    "slug",
				Code:     "slug-invalid",
				Message:  fmt.Sprintf("slug %q is not URL-safe", slug),
				Severity: SeverityError,
			})
		}
	}

	return issues
}

// duplicateIssues flags repeated entries in a term sequence. Order carries
// meaning for display so duplicates warn instead of failing the run.
func duplicateIssues(filePath, field string, raw any) []Issue {
	values, ok := raw.([]any)
	if !ok {
		return nil
	}

	seen := map[string]struct{}{}
	var issues []Issue
	for _, item := range values {
		str, ok := item.(string)
		if !ok {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(str))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			issues = append(issues, Issue{
				Path:     filePath,
				Field:    field,
				Code:     "duplicate-term",
				Message:  fmt.Sprintf("%s entry %q repeats within the record", field, str),
				Severity: SeverityWarning,
			})
			continue
		}
		seen[key] = struct{}{}
	}
	return issues
}
