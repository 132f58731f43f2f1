package watchface

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// record is one untyped JSON object from the descriptor. Field accessors
// treat an explicit null the same as an absent key.
type record map[string]json.RawMessage

func (r record) lookup(key string) (json.RawMessage, bool) {
	raw, ok := r[key]
	if !ok {
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}
	return raw, true
}

// requireInt reads a required integer. Integral floats such as 12.0 are accepted;
// strings are not.
func (r record) requireInt(key string) (int, error) {
	raw, ok := r.lookup(key)
	if !ok {
		return 0, errMissingField
	}
	return decodeInt(raw)
}

// optInt reads an optional integer, returning def when absent.
func (r record) optInt(key string, def int) (int, error) {
	raw, ok := r.lookup(key)
	if !ok {
		return def, nil
	}
	return decodeInt(raw)
}

// optFloat reads an optional number, returning def when absent.
func (r record) optFloat(key string, def float64) (float64, error) {
	raw, ok := r.lookup(key)
	if !ok {
		return def, nil
	}
	return decodeNumber(raw)
}

func (r record) requireString(key string) (string, error) {
	raw, ok := r.lookup(key)
	if !ok {
		return "", errMissingField
	}
	if raw[0] != '"' {
		return "", errWrongType
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: %v", errWrongType, err)
	}
	return s, nil
}

// stringList reads an array of strings leniently: a missing or non-array
// value yields nil and non-string elements are left out.
func (r record) stringList(key string) []string {
	raw, ok := r.lookup(key)
	if !ok || raw[0] != '[' {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		var s string
		if len(e) == 0 || e[0] != '"' || json.Unmarshal(e, &s) != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

func decodeNumber(raw json.RawMessage) (float64, error) {
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return 0, errWrongType
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errWrongType, err)
	}
	return f, nil
}

func decodeInt(raw json.RawMessage) (int, error) {
	f, err := decodeNumber(raw)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s is not an integer", errWrongType, raw)
	}
	return int(f), nil
}
