package draft

import (
	"encoding/json"
	"fmt"
)

// Value is a single draft field value.
type Value struct {
	kind Kind
	str  string
	list []string
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// List returns a list Value. The items are copied.
func List(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Kind reports whether the value is a string or a list.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string content. Empty for list values.
func (v Value) Str() string { return v.str }

// Items returns a copy of the list content. Nil for string values.
func (v Value) Items() []string {
	if v.list == nil {
		return nil
	}
	cp := make([]string, len(v.list))
	copy(cp, v.list)
	return cp
}

// Filled reports whether the value counts as non-empty for completion
// scoring: lists by length, strings by plain truthiness (no trimming).
func (v Value) Filled() bool {
	if v.kind == KindList {
		return len(v.list) > 0
	}
	return v.str != ""
}

// Equal reports value equality including list order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.str != o.str || len(v.list) != len(o.list) {
		return false
	}
	for i := range v.list {
		if v.list[i] != o.list[i] {
			return false
		}
	}
	return true
}

// Draft holds the current field values for one document shape. Every schema
// field is present from initialization on; a missing key is never valid
// state. Set returns an updated copy, so prior snapshots stay usable.
type Draft struct {
	shape  *Shape
	values map[string]Value
}

// New returns an all-empty draft for the shape: empty string or empty list
// per field kind.
func New(shape *Shape) Draft {
	values := make(map[string]Value, len(shape.Fields))
	for _, f := range shape.Fields {
		if f.Kind == KindList {
			values[f.Name] = List()
		} else {
			values[f.Name] = String("")
		}
	}
	return Draft{shape: shape, values: values}
}

// Shape returns the draft's shape.
func (d Draft) Shape() *Shape { return d.shape }

// Value returns the named field's value. The second return is false for a
// field the shape does not declare.
func (d Draft) Value(name string) (Value, bool) {
	v, ok := d.values[name]
	return v, ok
}

// Set returns a copy of the draft with the named field replaced. It fails
// on unknown fields and on kind mismatches; the receiver is never mutated.
func (d Draft) Set(name string, v Value) (Draft, error) {
	kind, ok := d.shape.FieldKind(name)
	if !ok {
		return Draft{}, fmt.Errorf("draft: shape %s has no field %q", d.shape.Name, name)
	}
	if kind != v.Kind() {
		return Draft{}, fmt.Errorf("draft: field %q of shape %s expects kind %d", name, d.shape.Name, kind)
	}
	values := make(map[string]Value, len(d.values))
	for k, val := range d.values {
		values[k] = val
	}
	values[name] = v
	return Draft{shape: d.shape, values: values}, nil
}

// Equal reports field-by-field equality of two drafts of the same shape.
func (d Draft) Equal(o Draft) bool {
	if d.shape != o.shape {
		return false
	}
	for name, v := range d.values {
		if !v.Equal(o.values[name]) {
			return false
		}
	}
	return true
}

// Map returns the draft in wire form: field name to string or []string.
func (d Draft) Map() map[string]any {
	out := make(map[string]any, len(d.values))
	for name, v := range d.values {
		if v.Kind() == KindList {
			out[name] = v.Items()
			if out[name] == nil {
				out[name] = []string{}
			}
		} else {
			out[name] = v.Str()
		}
	}
	return out
}

// MarshalJSON serializes the draft in wire form.
func (d Draft) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Map())
}

// Overlay returns a copy of the draft with known fields copied in from a
// decoded JSON object. Unrecognized keys and values of the wrong type are
// ignored, which keeps remote payloads from drifting the schema.
func (d Draft) Overlay(m map[string]any) Draft {
	out := d
	for name, raw := range m {
		kind, ok := d.shape.FieldKind(name)
		if !ok {
			continue
		}
		var v Value
		switch kind {
		case KindList:
			items, ok := toStringSlice(raw)
			if !ok {
				continue
			}
			v = List(items...)
		default:
			s, ok := raw.(string)
			if !ok {
				continue
			}
			v = String(s)
		}
		next, err := out.Set(name, v)
		if err != nil {
			continue
		}
		out = next
	}
	return out
}

// FromJSON parses serialized draft data and overlays it on shape defaults.
// Unknown keys are dropped. Returns an error only for malformed JSON, so a
// corrupt stored value can be detected and treated as absent.
func FromJSON(shape *Shape, data []byte) (Draft, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Draft{}, fmt.Errorf("draft: parse %s data: %w", shape.Name, err)
	}
	return New(shape).Overlay(m), nil
}

func toStringSlice(raw any) ([]string, bool) {
	switch items := raw.(type) {
	case []string:
		return items, true
	case []any:
		out := make([]string, 0, len(items))
		for _, it := range items {
			s, ok := it.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
