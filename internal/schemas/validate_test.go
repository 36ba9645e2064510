package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer"}
	}
}`

func TestValidateString_Valid(t *testing.T) {
	assert.NoError(t, ValidateString(testSchema, `{"name": "x", "count": 3}`))
}

func TestValidateString_FieldFailures(t *testing.T) {
	err := ValidateString(testSchema, `{"count": "three"}`)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Errors, 2, "missing name plus wrong count type")
	assert.Contains(t, vErr.Error(), "count")
}

func TestValidateString_UndecodableDocument(t *testing.T) {
	err := ValidateString(testSchema, `{broken`)
	var sErr *SchemaError
	assert.ErrorAs(t, err, &sErr)
}

func TestValidateString_MalformedSchema(t *testing.T) {
	err := ValidateString(`{broken`, `{"name": "x"}`)
	var sErr *SchemaError
	assert.ErrorAs(t, err, &sErr)
}
