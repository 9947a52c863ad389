package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, name := range All {
		t.Run(name, func(t *testing.T) {
			data, err := Source(name)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", name)
		})
	}
}

func TestSchemaFiles_LookLikeJSONSchema(t *testing.T) {
	for _, name := range All {
		t.Run(name, func(t *testing.T) {
			data, err := Source(name)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema,
				"schema should declare $schema and type")
		})
	}
}

func TestValidate_ContactResponse(t *testing.T) {
	good := `{"success": true, "message": "Thanks Jane!"}`
	assert.NoError(t, Validate(ContactResponse, []byte(good)))

	missing := `{"success": true}`
	err := Validate(ContactResponse, []byte(missing))
	require.Error(t, err)
	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.NotEmpty(t, ve.Errors)

	// Extra fields are a contract violation.
	extra := `{"success": true, "message": "ok", "debug": "trace"}`
	assert.Error(t, Validate(ContactResponse, []byte(extra)))
}

func TestValidate_BlogListPinsEmptyContent(t *testing.T) {
	leaked := `[{
		"slug": "s", "title": "t", "excerpt": "e",
		"content": "full article body",
		"date": "2024-01-01", "tags": [], "read_time": 3
	}]`
	err := Validate(BlogList, []byte(leaked))
	require.Error(t, err, "a list item carrying a body must violate the contract")

	stripped := `[{
		"slug": "s", "title": "t", "excerpt": "e",
		"content": "",
		"date": "2024-01-01", "tags": [], "read_time": 3
	}]`
	assert.NoError(t, Validate(BlogList, []byte(stripped)))
}

func TestValidate_CertificationOptionals(t *testing.T) {
	withNulls := `[{
		"id": "cert1", "name": "n", "issuer": "IBM", "date": "2019",
		"credential_id": null, "credential_url": null
	}]`
	assert.NoError(t, Validate(CertificationList, []byte(withNulls)))

	// Empty strings are not a valid way to express absence.
	withEmpty := `[{
		"id": "cert1", "name": "n", "issuer": "IBM", "date": "2019",
		"credential_id": "", "credential_url": null
	}]`
	assert.Error(t, Validate(CertificationList, []byte(withEmpty)))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope.schema.json", []byte(`{}`))
	assert.Error(t, err)
}
