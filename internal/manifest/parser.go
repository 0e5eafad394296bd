package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	// ErrMalformed reports a manifest that cannot be read as a JSON object.
	ErrMalformed = errors.New("manifest is not a valid JSON object")

	// ErrIncomplete reports a manifest without a usable id or name.
	ErrIncomplete = errors.New("manifest is missing required 'id' or 'name' fields")
)

// IncompleteError lists the schema issues that made a manifest unusable.
// It matches ErrIncomplete with errors.Is.
type IncompleteError struct {
	Issues []ValidationIssue
}

func (e *IncompleteError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return ErrIncomplete.Error() + ": " + strings.Join(parts, "; ")
}

func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncomplete
}

// ParseFile reads the manifest at path and returns its identifying fields.
func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrMalformed, path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest bytes, validates them against the embedded schema,
// and returns the id and name. Only those two fields are inspected.
//
// The fields are read from the same decoded object the schema checked. Keys
// match exactly, so "ID" or "Name" never stand in for "id" or "name".
func Parse(data []byte) (*Manifest, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %s", ErrMalformed, jsonKind(doc))
	}

	result, err := validate(doc)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &IncompleteError{Issues: result.Issues}
	}

	// The schema guarantees both keys are present and hold strings.
	id, _ := obj["id"].(string)
	name, _ := obj["name"].(string)
	return &Manifest{ID: id, Name: name}, nil
}

// jsonKind names the JSON type of a decoded value for error messages.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
