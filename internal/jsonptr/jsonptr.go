// Package jsonptr resolves RFC 6901 pointers against decoded JSON documents
// (the map[string]any / []any trees produced by encoding/json) without ever
// failing: a segment that does not resolve simply reports absence.
package jsonptr

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonpointer"
)

// Lookup returns the value at pointer. JSON null counts as absent.
func Lookup(doc any, pointer string) (any, bool) {
	p, err := gojsonpointer.NewJsonPointer(pointer)
	if err != nil {
		return nil, false
	}

	value, _, err := p.Get(doc)
	if err != nil || value == nil {
		return nil, false
	}

	return value, true
}

// First returns the value of the first pointer that resolves.
func First(doc any, pointers ...string) (any, bool) {
	for _, pointer := range pointers {
		if value, ok := Lookup(doc, pointer); ok {
			return value, true
		}
	}
	return nil, false
}

// FirstText is First followed by Text.
func FirstText(doc any, pointers ...string) (string, bool) {
	value, ok := First(doc, pointers...)
	if !ok {
		return "", false
	}
	return Text(value)
}

// Field returns a non-null member of a JSON object.
func Field(v any, key string) (any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}

	value, ok := obj[key]
	if !ok || value == nil {
		return nil, false
	}

	return value, true
}

// Text renders a scalar as text. Objects and arrays have no text and render
// as the empty string; null is absent.
func Text(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	default:
		return "", true
	}
}

// TextOr is Text for scalars and fallback for anything else.
func TextOr(v any, fallback string) string {
	switch v.(type) {
	case string, json.Number, float64, bool:
		text, _ := Text(v)
		return text
	default:
		return fallback
	}
}

// Int converts JSON numbers, and strings holding integers, to int.
// Fractions are truncated; values out of range are absent.
func Int(v any) (int, bool) {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return fromInt64(i)
		}
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return fromFloat64(f)
	case float64:
		return fromFloat64(x)
	case int:
		return x, true
	case int64:
		return fromInt64(x)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, false
		}
		return fromInt64(i)
	default:
		return 0, false
	}
}

func fromInt64(i int64) (int, bool) {
	if i > math.MaxInt || i < math.MinInt {
		return 0, false
	}
	return int(i), true
}

func fromFloat64(f float64) (int, bool) {
	if math.IsNaN(f) || f >= math.MaxInt || f < math.MinInt {
		return 0, false
	}
	return int(f), true
}
