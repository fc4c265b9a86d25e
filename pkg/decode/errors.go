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

package decode

import (
	"errors"
	"fmt"
)

var (
	// ErrNotObject occurs when a single-record decode is given input whose
	// top-level value is not an object.
	ErrNotObject = errors.New("top-level value is not an object")

	// ErrNotList occurs when a table decode is given input whose top-level
	// value is neither an array nor an empty object.
	ErrNotList = errors.New("top-level value is not an array")
)

// SchemaError reports a defect in a record type's schema declaration: an
// unknown kind tag, a Go field type that cannot hold the kind's output, or a
// malformed tag parameter. It is raised when the schema compiles, before any
// payload is decoded.
type SchemaError struct {
	Type  string // record type name
	Field string // Go field name, empty for type-level defects
	Msg   string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema %s: %s", e.Type, e.Msg)
	}

	return fmt.Sprintf("schema %s.%s: %s", e.Type, e.Field, e.Msg)
}

// FieldDecodeError reports that one field's raw value could not be
// transformed under its declared kind. The record is fully decoded or this
// error propagates; no partially populated record is returned.
type FieldDecodeError struct {
	Record string // record type name
	Field  string // Go field name
	Key    string // source key the value was resolved from
	Err    error
}

func (e *FieldDecodeError) Error() string {
	return fmt.Sprintf("field %s.%s (key %q): %v", e.Record, e.Field, e.Key, e.Err)
}

func (e *FieldDecodeError) Unwrap() error { return e.Err }
