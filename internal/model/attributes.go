package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// MarshalFlat encodes fixed and writes every entry of extra as a sibling
// top-level key. Extra keys that collide with a field of fixed are skipped.
func MarshalFlat(fixed any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(fixed)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	known := fieldNames(reflect.TypeOf(fixed))

	keys := make([]string, 0, len(extra))
	for k := range extra {
		if !known[strings.ToLower(k)] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return data, nil
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	for i, k := range keys {
		key, _ := json.Marshal(k)
		value, err := json.Marshal(extra[k])
		if err != nil {
			return nil, fmt.Errorf("encode attribute %q: %w", k, err)
		}
		if i > 0 || len(data) > 2 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalFlat decodes data into fixed, a pointer to a struct, and returns
// the top-level keys that match none of its fields. The result is nil when
// there are none.
func UnmarshalFlat(data []byte, fixed any) (map[string]any, error) {
	if err := json.Unmarshal(data, fixed); err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	known := fieldNames(reflect.TypeOf(fixed))

	var extra map[string]any
	for k, v := range raw {
		// encoding/json matches field names case-insensitively
		if known[strings.ToLower(k)] {
			continue
		}
		var value any
		if err := json.Unmarshal(v, &value); err != nil {
			return nil, fmt.Errorf("decode attribute %q: %w", k, err)
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = value
	}
	return extra, nil
}

// fieldNames returns the lower-cased JSON names of the exported fields of t.
func fieldNames(t reflect.Type) map[string]bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	names := make(map[string]bool, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		names[strings.ToLower(name)] = true
	}
	return names
}
