package diff

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatValueNil(t *testing.T) {
	assert.Equal(t, "—", FormatValue("notes", nil, nil))
	assert.Equal(t, "—", FormatValue("notes", "", nil))
}

func TestFormatValueBool(t *testing.T) {
	assert.Equal(t, "Yes", FormatValue("isActive", true, nil))
	assert.Equal(t, "No", FormatValue("isActive", false, nil))
}

func TestFormatValueNumber(t *testing.T) {
	assert.Equal(t, "1800", FormatValue("calories", float64(1800), nil))
	assert.Equal(t, "72.5", FormatValue("weight", 72.5, nil))
}

func TestFormatValueSupplements(t *testing.T) {
	v := []any{
		map[string]any{"name": "Creatine", "dosage": "5g", "timing": "morning"},
		map[string]any{"name": "Omega-3", "dosage": "2 caps", "timing": ""},
	}
	assert.Equal(t, "Creatine (5g, morning); Omega-3 (2 caps)", FormatValue("supplements", v, nil))
}

func TestFormatValuePlainArrayStaysLiteral(t *testing.T) {
	v := []any{"a", "b"}
	assert.Equal(t, `["a","b"]`, FormatValue("tags", v, nil))
}

func TestFormatValueNutritionTargets(t *testing.T) {
	v := map[string]any{
		"calories": float64(1800),
		"protein":  float64(150),
		"fat":      float64(60),
	}
	assert.Equal(t, "1800 kcal, 150 g protein, 60 g fat", FormatValue("targets", v, nil))
}

func TestFormatValueUnrecognizedObjectLiteral(t *testing.T) {
	v := map[string]any{"foo": "bar"}
	assert.Equal(t, `{"foo":"bar"}`, FormatValue("misc", v, nil))
}

func TestFormatValueTemplateLookup(t *testing.T) {
	names := map[string]string{"wt-1": "Push/Pull/Legs"}
	assert.Equal(t, "Push/Pull/Legs", FormatValue("workoutTemplateId", "wt-1", names))
	// Miss: truncate the raw identifier rather than show nothing.
	assert.Equal(t, "nt-aabbc…", FormatValue("nutritionTemplateId", "nt-aabbccdd", names))
	// Short ids pass through untouched.
	assert.Equal(t, "wt-2", FormatValue("workoutTemplateId", "wt-2", nil))
}

func TestFormatValueTemplateTruncationIsRuneSafe(t *testing.T) {
	got := FormatValue("workoutTemplateId", "תבנית-אימון-כוח", nil)
	assert.Equal(t, "תבנית-אי…", got)
	assert.True(t, utf8.ValidString(got))
}
