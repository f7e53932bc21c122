package diff

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const nullPlaceholder = "—"

// Identifier-valued fields resolved through the template-name lookup.
var templateRefFields = map[string]struct{}{
	"workoutTemplateId":    {},
	"nutritionTemplateId":  {},
	"supplementTemplateId": {},
}

// Keys that mark a map as a nutrition-target object, with display units.
var macroUnits = []struct{ key, unit string }{
	{"calories", "kcal"},
	{"protein", "g protein"},
	{"carbs", "g carbs"},
	{"fat", "g fat"},
	{"fiber", "g fiber"},
}

// FormatValue renders a snapshot value for display. It never fails: anything
// unrecognized falls back to its literal structural form.
func FormatValue(field string, v any, templateNames map[string]string) string {
	if v == nil {
		return nullPlaceholder
	}
	if _, ok := templateRefFields[field]; ok {
		if id, ok := v.(string); ok {
			return templateLabel(id, templateNames)
		}
	}
	switch val := v.(type) {
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case string:
		if val == "" {
			return nullPlaceholder
		}
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		if s, ok := formatSupplements(val); ok {
			return s
		}
	case map[string]any:
		if s, ok := formatNutritionTargets(val); ok {
			return s
		}
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}

func templateLabel(id string, names map[string]string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	// Lookup miss: a truncated identifier is still better than nothing.
	// Truncate on runes so multibyte ids stay valid UTF-8.
	if r := []rune(id); len(r) > 8 {
		return string(r[:8]) + "…"
	}
	if id == "" {
		return nullPlaceholder
	}
	return id
}

// formatSupplements renders a supplement-like array — maps carrying a name
// plus dosage/timing — as "name (dosage, timing)" entries.
func formatSupplements(items []any) (string, bool) {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			return "", false
		}
		name, _ := m["name"].(string)
		if name == "" {
			return "", false
		}
		dosage, hasDosage := m["dosage"].(string)
		timing, hasTiming := m["timing"].(string)
		if !hasDosage && !hasTiming {
			return "", false
		}
		detail := make([]string, 0, 2)
		if dosage != "" {
			detail = append(detail, dosage)
		}
		if timing != "" {
			detail = append(detail, timing)
		}
		if len(detail) == 0 {
			parts = append(parts, name)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", name, strings.Join(detail, ", ")))
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "; "), true
}

// formatNutritionTargets renders a macro-target map as "<value> <unit>"
// fragments for whichever macros are present.
func formatNutritionTargets(m map[string]any) (string, bool) {
	parts := make([]string, 0, len(macroUnits))
	for _, mu := range macroUnits {
		v, ok := m[mu.key]
		if !ok || v == nil {
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			continue
		}
		parts = append(parts, strconv.FormatFloat(f, 'f', -1, 64)+" "+mu.unit)
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}
