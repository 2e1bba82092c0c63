package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"deckId"},
		"properties": map[string]interface{}{
			"deckId": map[string]interface{}{"type": "string", "minLength": 1},
			"deck": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"basics": map[string]interface{}{"type": "object"},
					"tags":   map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
				},
			},
		},
	}
}

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator(createTestSchema())
	require.NoError(t, err)

	tests := []struct {
		name           string
		document       interface{}
		expectedValid  bool
		validateResult func(t *testing.T, result *ValidationResult)
	}{
		{
			name:          "valid document",
			document:      map[string]interface{}{"deckId": "deck-1"},
			expectedValid: true,
		},
		{
			name:          "missing required field",
			document:      map[string]interface{}{},
			expectedValid: false,
			validateResult: func(t *testing.T, result *ValidationResult) {
				require.Len(t, result.Errors, 1)
				assert.Equal(t, "REQUIRED", result.Errors[0].Code)
				assert.Contains(t, result.Error(), "deckId")
			},
		},
		{
			name: "nested type mismatch",
			document: map[string]interface{}{
				"deckId": "deck-1",
				"deck":   map[string]interface{}{"basics": "not an object"},
			},
			expectedValid: false,
			validateResult: func(t *testing.T, result *ValidationResult) {
				assert.True(t, result.HasErrors("deck"))
				assert.True(t, result.HasErrors("deck.basics"))
				assert.False(t, result.HasErrors("deckId"))
			},
		},
		{
			name: "array item path",
			document: map[string]interface{}{
				"deckId": "deck-1",
				"deck":   map[string]interface{}{"tags": []interface{}{"ok", 7}},
			},
			expectedValid: false,
			validateResult: func(t *testing.T, result *ValidationResult) {
				require.Len(t, result.Errors, 1)
				assert.Equal(t, "deck.tags[1]", result.Errors[0].Field)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.Validate(tt.document)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedValid, result.Valid)
			if tt.validateResult != nil {
				tt.validateResult(t, result)
			}
		})
	}
}

func TestValidator_ValidateJSON(t *testing.T) {
	v := MustValidator(createTestSchema())

	result, err := v.ValidateJSON([]byte(`{"deckId":"abc"}`))
	require.NoError(t, err)
	assert.True(t, result.Valid)

	_, err = v.ValidateJSON([]byte(`{"deckId":`))
	assert.Error(t, err)
}

func TestValidateInput_EmptySchema(t *testing.T) {
	result, err := ValidateInput(map[string]interface{}{"anything": 1}, nil)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "", fieldPath("(root)"))
	assert.Equal(t, "deck.basics", fieldPath("deck.basics"))
	assert.Equal(t, "decks[3].id", fieldPath("decks.3.id"))
}

func TestValidateActivityNaming(t *testing.T) {
	assert.NoError(t, ValidateActivityNaming("deck.scoring.score"))
	assert.Error(t, ValidateActivityNaming("score-deck"))
}

func TestGetSchemaFromJSON(t *testing.T) {
	schema, err := GetSchemaFromJSON(`{"type":"object","required":["deck"]}`)
	require.NoError(t, err)
	assert.Equal(t, "object", schema["type"])
}
