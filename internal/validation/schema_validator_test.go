package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"cooldown": {"type": "integer", "minimum": 600},
		"mode": {"enum": ["biomass", "direct"]}
	},
	"required": ["cooldown"],
	"additionalProperties": false
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.AddSchema("test.schema.json", []byte(testSchema)))

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid", data: `{"cooldown": 600, "mode": "direct"}`},
		{name: "large integer", data: `{"cooldown": 10000000000000000}`},
		{name: "missing required", data: `{"mode": "biomass"}`, errorMsg: "required"},
		{name: "below minimum", data: `{"cooldown": 599}`, errorMsg: "/cooldown"},
		{name: "bad enum", data: `{"cooldown": 600, "mode": "burn"}`, errorMsg: "/mode"},
		{name: "unknown field", data: `{"cooldown": 600, "extra": 1}`, errorMsg: "additionalProperties"},
		{name: "invalid JSON", data: `{"cooldown": }`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "test.schema.json")
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "file.schema.json")
	dataPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"cooldown": 900}`), 0o644))

	v := NewSchemaValidator()
	assert.NoError(t, v.ValidateFile(dataPath, schemaPath))

	err := v.ValidateFile(filepath.Join(dir, "missing.json"), schemaPath)
	assert.ErrorContains(t, err, "failed to read data file")
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateBytes([]byte(`{}`), "does-not-exist.schema.json")
	assert.ErrorContains(t, err, "failed to load schema")
}

func TestSchemaValidator_AddSchemaRejectsBadDocument(t *testing.T) {
	v := NewSchemaValidator()
	assert.Error(t, v.AddSchema("bad.schema.json", []byte(`{not json`)))
}
