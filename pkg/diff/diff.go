// Package diff reconstructs human-readable change lists from paired
// before/after snapshots of a record. It is pure: no I/O, no shared state,
// never panics on malformed input.
package diff

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// Change is one field-level difference between two snapshots.
type Change struct {
	Field string `json:"field"`
	Old   any    `json:"old"`
	New   any    `json:"new"`
}

// Administrative fields never reported as changes.
var excludedFields = map[string]struct{}{
	"id":        {},
	"createdAt": {},
	"updatedAt": {},
	"createdBy": {},
}

const scheduleField = "weeklySchedule"

// fieldOrder fixes the emission order of known fields. Fields outside this
// list are appended afterwards in their (sorted) own order so the output stays
// deterministic for arbitrary records.
var fieldOrder = []string{
	"clientId",
	"status",
	"workoutTemplateId",
	"nutritionTemplateId",
	"supplementTemplateId",
	"calories",
	"protein",
	"carbs",
	"fat",
	"fiberMin",
	"stepsGoal",
	scheduleField,
	"supplements",
	"notes",
}

// Diff compares two snapshots of the same record and returns one Change per
// differing field. Enumeration is driven by the fields present in newSnap:
// a field present only in oldSnap is never reported (intentional asymmetry —
// fields are not removed in practice). Either side nil yields an empty list.
func Diff(oldSnap, newSnap map[string]any, templateNames map[string]string) []Change {
	if oldSnap == nil || newSnap == nil {
		return nil
	}
	oldSnap = normalizeSnapshot(oldSnap)
	newSnap = normalizeSnapshot(newSnap)

	out := []Change{}
	for _, field := range orderedFields(newSnap) {
		if _, skip := excludedFields[field]; skip {
			continue
		}
		ov, nv := oldSnap[field], newSnap[field]
		if field == scheduleField {
			_, oOK := ov.(map[string]any)
			_, nOK := nv.(map[string]any)
			if oOK || nOK {
				// Day-by-day entries replace the generic one; zero entries
				// suppress the field rather than report an opaque change.
				out = append(out, diffWeeklySchedule(ov, nv)...)
				continue
			}
		}
		if !deepEqual(ov, nv) {
			out = append(out, Change{
				Field: field,
				Old:   FormatValue(field, ov, templateNames),
				New:   FormatValue(field, nv, templateNames),
			})
		}
	}
	return out
}

// orderedFields returns newSnap's field names: known fields first in display
// order, then any remaining fields sorted.
func orderedFields(newSnap map[string]any) []string {
	seen := make(map[string]bool, len(fieldOrder))
	fields := make([]string, 0, len(newSnap))
	for _, f := range fieldOrder {
		seen[f] = true
		if _, ok := newSnap[f]; ok {
			fields = append(fields, f)
		}
	}
	rest := make([]string, 0)
	for f := range newSnap {
		if !seen[f] {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	return append(fields, rest...)
}

// normalizeSnapshot round-trips the snapshot through JSON so typed structs,
// int vs float64 encodings, and nested maps all land in the same shape.
// A value that cannot be marshaled is kept raw.
func normalizeSnapshot(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch v.(type) {
	case nil, string, bool, float64:
		return v
	}
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var norm any
	if err := json.Unmarshal(b, &norm); err != nil {
		return v
	}
	return norm
}

// deepEqual compares JSON-shaped values: order-insensitive for object keys,
// order-sensitive for arrays, numeric encodings coerced before comparison.
func deepEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			w, ok := bv[k]
			if !ok || !deepEqual(v, w) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		// Values that failed the JSON round-trip can reach here as arbitrary
		// Go types; == through any panics on uncomparable ones (func, map,
		// slice), so fall back to their printed form.
		if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
			return fmt.Sprintf("%#v", a) == fmt.Sprintf("%#v", b)
		}
		return a == b
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
