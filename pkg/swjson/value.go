/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package swjson parses the quasi-JSON dialect emitted by SwOS and SwOS Lite
// management firmware. The dialect differs from JSON in that object keys may
// be unquoted identifiers, integers may use a 0x prefix, strings may use
// single quotes, and a trailing comma before a closing brace or bracket is
// tolerated. All numbers are integers.
package swjson

// Type identifies which variant a Value holds.
type Type uint8

const (
	TypeNumber Type = iota
	TypeString
	TypeArray
	TypeObject
)

// String returns the lowercase name of the type, for error messages.
func (t Type) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is one node of a parsed tree. Exactly one of Num, Str, Items, or Obj
// is meaningful, selected by Type.
type Value struct {
	Type  Type
	Num   int64
	Str   string
	Items []Value
	Obj   *Object
}

// Object is an insertion-ordered string-to-Value map. Member order is
// significant to consumers: port-count inference depends on which
// array-valued member the firmware emitted first.
type Object struct {
	keys   []string
	values []Value
	index  map[string]int
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Len reports the number of members. Safe on a nil receiver.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Get returns the value for key and whether the key is present.
// Safe on a nil receiver.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}

	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}

	return o.values[i], true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}

	_, ok := o.index[key]

	return ok
}

// Key returns the key of the i-th member in insertion order.
func (o *Object) Key(i int) string { return o.keys[i] }

// At returns the value of the i-th member in insertion order.
func (o *Object) At(i int) Value { return o.values[i] }

// Keys returns the member keys in insertion order. The returned slice is a
// copy and may be retained by the caller.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	keys := make([]string, len(o.keys))
	copy(keys, o.keys)

	return keys
}

// Set adds or replaces a member. A duplicate key keeps its original position
// and takes the new value, matching how the firmware's own reader treats
// repeated keys.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.values[i] = v

		return
	}

	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, v)
}
