// Package schemas provides JSON Schema validation for the API response
// contracts. The schema files are embedded so validation needs no working
// directory assumptions at runtime.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var files embed.FS

// Schema names, one per response shape the API serves.
const (
	Profile           = "profile.schema.json"
	ProfileSummary    = "profile_summary.schema.json"
	SkillGroups       = "skill_groups.schema.json"
	ExperienceList    = "experience_list.schema.json"
	EducationList     = "education_list.schema.json"
	CertificationList = "certification_list.schema.json"
	BlogList          = "blog_list.schema.json"
	BlogPost          = "blog_post.schema.json"
	ContactResponse   = "contact_response.schema.json"
)

// All lists every registered schema name.
var All = []string{
	Profile,
	ProfileSummary,
	SkillGroups,
	ExperienceList,
	EducationList,
	CertificationList,
	BlogList,
	BlogPost,
	ContactResponse,
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("response violates %s:\n", ve.Schema))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Source returns the raw schema document for name.
func Source(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}
	return data, nil
}

// Validate checks a JSON payload against the named schema.
func Validate(name string, payload []byte) error {
	schema, err := Source(name)
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema %s failed to load: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{
		Schema: name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return ve
}
