// Package dyngen is the runtime linked by code that dyngen-gen emits.
//
// Generated conversion functions turn IDL-mapped Go values into a small
// dynamic object model (Object, Array and scalar leaves) suitable for
// handing to a scripting engine or encoding as JSON. A Registry indexes
// the conversions for top-level types by their IDL qualified name.
package dyngen

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Value is a node of the dynamic object model.
//
// The set of implementations is closed: *Object, *Array, Bool, Number and
// String.
type Value interface {
	// Interface returns the value as plain Go data: map[string]any,
	// []any, bool, float64 or string.
	Interface() any

	json.Marshaler

	value()
}

// Object is a key/value container that remembers insertion order.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

// Set stores v under key. Setting an existing key replaces its value
// without changing its position.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Interface implements Value.
func (o *Object) Interface() any {
	m := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		m[k] = o.vals[k].Interface()
	}
	return m
}

// MarshalJSON encodes the object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalString(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalValue(o.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (*Object) value() {}

// Array is an ordered list of values.
type Array struct {
	elems []Value
}

// NewArray returns an empty Array with room for n elements.
func NewArray(n int) *Array {
	return &Array{elems: make([]Value, 0, n)}
}

// Append adds v at the end of the array.
func (a *Array) Append(v Value) {
	a.elems = append(a.elems, v)
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.elems) }

// At returns the element at index i. It panics if i is out of range.
func (a *Array) At(i int) Value { return a.elems[i] }

// Interface implements Value.
func (a *Array) Interface() any {
	out := make([]any, len(a.elems))
	for i, v := range a.elems {
		out[i] = v.Interface()
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (a *Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range a.elems {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := marshalValue(v)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (*Array) value() {}

// Bool is a boolean leaf.
type Bool bool

// Interface implements Value.
func (b Bool) Interface() any { return bool(b) }

// MarshalJSON implements json.Marshaler.
func (b Bool) MarshalJSON() ([]byte, error) {
	return strconv.AppendBool(nil, bool(b)), nil
}

func (Bool) value() {}

// Number is a double-precision numeric leaf. All IDL numeric types
// convert to Number.
type Number float64

// Interface implements Value.
func (n Number) Interface() any { return float64(n) }

// MarshalJSON implements json.Marshaler. NaN and infinities, which JSON
// cannot represent, encode as null.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (Number) value() {}

// String is a text leaf.
type String string

// Interface implements Value.
func (s String) Interface() any { return string(s) }

// MarshalJSON implements json.Marshaler. Unlike json.Marshal it leaves
// <, > and & unescaped; json.Marshal of an enclosing value escapes them
// again, while a json.Encoder with SetEscapeHTML(false) does not.
func (s String) MarshalJSON() ([]byte, error) {
	return marshalString(string(s))
}

// marshalString encodes s as a JSON string without HTML escaping.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (String) value() {}

func marshalValue(v Value) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return v.MarshalJSON()
}
