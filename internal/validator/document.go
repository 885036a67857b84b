package validator

import (
	"encoding/json"
	"math"
)

// Document is a JSON-shaped request body keyed by field name. Validators
// normalize documents in place and hand the same map back to the caller.
type Document map[string]any

// Has reports whether key is present, even when its value is null.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// GetString returns the value stored under key when it is a string.
func (d Document) GetString(key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}

// asDocument accepts both Document and the plain maps produced by JSON and YAML
// decoders. The returned Document shares storage with v.
func asDocument(v any) (Document, bool) {
	switch m := v.(type) {
	case Document:
		return m, m != nil
	case map[string]any:
		return Document(m), m != nil
	default:
		return nil, false
	}
}

// asDocuments converts a JSON array of objects. Non-object items are skipped;
// the schema rejects them before this is reached.
func asDocuments(v any) []Document {
	var docs []Document
	switch items := v.(type) {
	case []any:
		for _, item := range items {
			if d, ok := asDocument(item); ok {
				docs = append(docs, d)
			}
		}
	case []map[string]any:
		for _, item := range items {
			docs = append(docs, Document(item))
		}
	case []Document:
		docs = append(docs, items...)
	}
	return docs
}

// toInt converts the numeric representations produced by encoding/json,
// yaml.v3 and Go literals. Integral floats such as 256.0 are accepted; values
// outside the int range are not.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return toInt(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
	if f != math.Trunc(f) || f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, false
	}
	return int(f), true
}
