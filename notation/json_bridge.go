package notation

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts between JSON trees and notation values. Arrays become
// links, objects become links of two-element (key value) links, and
// primitives become references. The format carries no type tags, so
// the reverse direction relies on the structural heuristic in
// linkIsObject.

// FromJSON converts JSON bytes to a notation value.
func FromJSON(data []byte) (*Value, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}
	return FromJSONValue(v)
}

// FromJSONValue converts a Go interface{} (from json.Unmarshal) to a
// notation value. Object keys are sorted so the output is
// deterministic.
func FromJSONValue(v interface{}) (*Value, error) {
	if v == nil {
		return Null(), nil
	}

	switch val := v.(type) {
	case bool:
		return Bool(val), nil

	case float64:
		if math.IsNaN(val) {
			return nil, fmt.Errorf("NaN is not representable in notation")
		}
		if math.IsInf(val, 0) {
			return nil, fmt.Errorf("Infinity is not representable in notation")
		}
		// Whole values in the safe-integer range stay integers
		if val == math.Trunc(val) && val >= -9007199254740991 && val <= 9007199254740991 {
			return Int(int64(val)), nil
		}
		return Float(val), nil

	case int:
		return Int(int64(val)), nil

	case int64:
		return Int(val), nil

	case string:
		return Str(val), nil

	case []interface{}:
		link := Link()
		for i, elem := range val {
			gv, err := FromJSONValue(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			link.Append(gv)
		}
		return link, nil

	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		link := Link()
		for _, k := range keys {
			gv, err := FromJSONValue(val[k])
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			link.Append(Link(Str(k), gv))
		}
		return link, nil

	default:
		return nil, fmt.Errorf("unsupported JSON type: %T", v)
	}
}

// ToJSONValue converts a parsed top-level sequence to a Go value
// suitable for json.Marshal. A single-element sequence unwraps: a
// lone scalar converts to that scalar, a lone link to that link's
// array or object form. An empty sequence converts to JSON null.
func ToJSONValue(values []*Value) (interface{}, error) {
	switch len(values) {
	case 0:
		return nil, nil
	case 1:
		return toJSONValue(values[0])
	default:
		items := make([]interface{}, 0, len(values))
		for _, v := range values {
			jv, err := toJSONValue(v)
			if err != nil {
				return nil, err
			}
			items = append(items, jv)
		}
		return items, nil
	}
}

func toJSONValue(v *Value) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	switch v.kind {
	case KindNull:
		return nil, nil

	case KindBool:
		return v.boolVal, nil

	case KindInt:
		return float64(v.intVal), nil

	case KindFloat:
		if math.IsNaN(v.floatVal) || math.IsInf(v.floatVal, 0) {
			return nil, fmt.Errorf("NaN/Infinity not allowed in JSON")
		}
		return v.floatVal, nil

	case KindString:
		return v.strVal, nil

	case KindLink:
		if linkIsObject(v) {
			obj := make(map[string]interface{}, len(v.items))
			for _, pair := range v.items {
				key := pair.items[0].strVal
				jv, err := toJSONValue(pair.items[1])
				if err != nil {
					return nil, err
				}
				// Duplicate keys: last wins
				obj[key] = jv
			}
			return obj, nil
		}

		items := make([]interface{}, 0, len(v.items))
		for _, elem := range v.items {
			jv, err := toJSONValue(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, jv)
		}
		return items, nil

	default:
		return nil, fmt.Errorf("unsupported notation kind: %s", v.kind)
	}
}

// linkIsObject applies the structural object-vs-array heuristic: a
// link is an object only if it is non-empty and every element is a
// two-element link whose first element is a string reference. The
// empty link always reads as an array, even when it was produced from
// an empty object.
func linkIsObject(v *Value) bool {
	if len(v.items) == 0 {
		return false
	}
	for _, elem := range v.items {
		if elem.kind != KindLink || len(elem.items) != 2 {
			return false
		}
		if elem.items[0].kind != KindString {
			return false
		}
	}
	return true
}

// ============================================================
// Text-Level Operations
// ============================================================

// JSONToNotation converts a JSON document to compact notation text.
func JSONToNotation(data []byte) (string, error) {
	v, err := FromJSON(data)
	if err != nil {
		return "", err
	}
	return EmitCompact(v), nil
}

// NotationToJSON converts notation text to a JSON document.
func NotationToJSON(text string) ([]byte, error) {
	values, err := Parse(text)
	if err != nil {
		return nil, err
	}
	jv, err := ToJSONValue(values)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jv)
}
