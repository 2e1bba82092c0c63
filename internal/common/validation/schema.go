package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Validator holds a compiled schema. Compile once and reuse; it is safe for
// concurrent use.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles a schema given as a Go value (usually a
// map[string]interface{} decoded from JSON).
func NewValidator(schema interface{}) (*Validator, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// MustValidator is NewValidator for package-level schemas known at compile
// time.
func MustValidator(schema interface{}) *Validator {
	v, err := NewValidator(schema)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks a Go value against the schema.
func (v *Validator) Validate(document interface{}) (*ValidationResult, error) {
	return toResult(v.schema.Validate(gojsonschema.NewGoLoader(document)))
}

// ValidateJSON checks raw JSON bytes against the schema. Malformed JSON is
// an error, not an invalid result.
func (v *Validator) ValidateJSON(raw []byte) (*ValidationResult, error) {
	return toResult(v.schema.Validate(gojsonschema.NewBytesLoader(raw)))
}

// ValidateInput is the one-shot form of NewValidator + Validate.
func ValidateInput(input interface{}, schema map[string]interface{}) (*ValidationResult, error) {
	if len(schema) == 0 {
		return &ValidationResult{Valid: true}, nil
	}
	v, err := NewValidator(schema)
	if err != nil {
		return nil, err
	}
	return v.Validate(input)
}

func toResult(result *gojsonschema.Result, err error) (*ValidationResult, error) {
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fieldPath(desc.Field()),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	return out, nil
}

const rootContext = "(root)"

// fieldPath turns gojsonschema's "(root)" and "items.0" into "" and
// "items[0]".
func fieldPath(field string) string {
	if field == rootContext {
		return ""
	}
	field = strings.TrimPrefix(field, rootContext+".")
	parts := strings.Split(field, ".")
	var b strings.Builder
	for i, p := range parts {
		if isIndex(p) {
			b.WriteString("[" + p + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var activityNaming = regexp.MustCompile(`^[a-z]+\.[a-z]+\.[a-z]+$`)

// ValidateActivityNaming validates activity ID follows naming convention
func ValidateActivityNaming(activityID string) error {
	if !activityNaming.MatchString(activityID) {
		return fmt.Errorf("activity ID must follow format: domain.subdomain.action (e.g., deck.scoring.score)")
	}
	return nil
}

// GetSchemaFromJSON parses a JSON schema document into a Go value suitable
// for NewValidator.
func GetSchemaFromJSON(schemaJSON string) (map[string]interface{}, error) {
	var schema map[string]interface{}
	err := json.Unmarshal([]byte(schemaJSON), &schema)
	return schema, err
}

// Error joins every message into one string.
func (vr *ValidationResult) Error() string {
	return strings.Join(vr.GetErrorMessages(), "; ")
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		if err.Field == "" {
			messages[i] = err.Message
			continue
		}
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	return len(vr.GetErrorsForField(field)) > 0
}

// GetErrorsForField returns errors for a field and anything nested under it.
func (vr *ValidationResult) GetErrorsForField(field string) []ValidationError {
	var fieldErrors []ValidationError
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") || strings.HasPrefix(err.Field, field+"[") {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}
