package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed frontmatter_schema.json
var frontMatterSchemaJSON string

const frontMatterSchemaURL = "corpus://schemas/frontmatter.json"

// compileFrontMatterSchema compiles the embedded front matter schema once per
// validator instance.
func compileFrontMatterSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(frontMatterSchemaURL, strings.NewReader(frontMatterSchemaJSON)); err != nil {
		return nil, fmt.Errorf("validation: add frontmatter schema: %w", err)
	}
	schema, err := compiler.Compile(frontMatterSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("validation: compile frontmatter schema: %w", err)
	}
	return schema, nil
}

// schemaIssues runs the structural schema over decoded front matter and maps
// violations to issues.
func schemaIssues(path string, schema *jsonschema.Schema, meta map[string]any) []Issue {
	payload, err := jsonify(meta)
	if err != nil {
		return []Issue{{
			Path:     path,
			Code:     "frontmatter-unserializable",
			Message:  err.Error(),
			Severity: SeverityError,
		}}
	}

	err = schema.Validate(payload)
	if err == nil {
		return nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []Issue{{
			Path:     path,
			Code:     "schema",
			Message:  err.Error(),
			Severity: SeverityError,
		}}
	}

	var issues []Issue
	for _, leaf := range leafCauses(validationErr) {
		issues = append(issues, Issue{
			Path:     path,
			Field:    fieldFromLocation(leaf.InstanceLocation),
			Code:     "schema",
			Message:  leaf.Message,
			Severity: SeverityError,
		})
	}
	return issues
}

func leafCauses(err *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return []*jsonschema.ValidationError{err}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range err.Causes {
		leaves = append(leaves, leafCauses(cause)...)
	}
	return leaves
}

func fieldFromLocation(location string) string {
	location = strings.TrimPrefix(location, "/")
	if location == "" {
		return ""
	}
	if idx := strings.Index(location, "/"); idx >= 0 {
		return location[:idx]
	}
	return location
}

// jsonify converts YAML-decoded values into their JSON-compatible form so the
// schema library can walk them. YAML decodes nested mappings with interface
// keys, which json.Marshal rejects.
func jsonify(value any) (any, error) {
	normalized := normalizeYAML(value)
	raw, err := json.Marshal(normalized)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeYAML(value any) any {
	switch v := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeYAML(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}
