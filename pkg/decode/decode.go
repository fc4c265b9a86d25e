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

// Package decode turns parsed SwOS payloads into typed records.
//
// A record is a plain struct whose fields declare, via tags, which source
// keys they read and which transform applies:
//
//	type Link struct {
//		Enabled []bool   `swos:"en,i01" kind:"bool"`
//		Name    []string `swos:"nm,i0a" kind:"str"`
//		Speed   []string `swos:"spdc,i08" kind:"option" options:"10M,100M,1G,10G,200M,2.5G,5G"`
//	}
//
// The swos tag lists source key aliases tried in order, so one record type
// covers firmware generations that renamed keys. Schemas compile once per
// type and are shared by all decodes; decoding itself is a pure function of
// the input.
package decode

import (
	"github.com/carverauto/swos/pkg/swjson"
)

// defaultPortCount is assumed when no top-level member is array-valued, as
// on fully bitmask-encoded records. Inherited from the firmware's web UI;
// devices with other port counts need an array-valued field or an explicit
// override to decode bitmasks at full width.
const defaultPortCount = 10

// Option adjusts one decode call.
type Option func(*decodeOptions)

type decodeOptions struct {
	ports int
}

// WithPortCount fixes the per-port sequence length instead of inferring it
// from the payload.
func WithPortCount(n int) Option {
	return func(o *decodeOptions) {
		o.ports = n
	}
}

// Read parses data and decodes a single record. The top-level value must be
// an object.
func Read[T any](data []byte, opts ...Option) (T, error) {
	var out T

	v, err := swjson.Parse(data)
	if err != nil {
		return out, err
	}

	return ReadValue[T](v, opts...)
}

// ReadValue decodes a single record from an already-parsed value.
func ReadValue[T any](v swjson.Value, opts ...Option) (T, error) {
	var out T

	err := unmarshalValue(v, &out, applyOptions(opts))

	return out, err
}

// ReadList parses data and decodes a table of records. The top-level value
// must be an array of objects; an empty array or empty object yields an
// empty, non-nil slice. The port count is inferred once, from the first
// entry, and shared by all entries.
func ReadList[T any](data []byte, opts ...Option) ([]T, error) {
	v, err := swjson.Parse(data)
	if err != nil {
		return nil, err
	}

	return ReadListValue[T](v, opts...)
}

// ReadListValue decodes a table of records from an already-parsed value.
func ReadListValue[T any](v swjson.Value, opts ...Option) ([]T, error) {
	var out []T

	if err := unmarshalValue(v, &out, applyOptions(opts)); err != nil {
		return nil, err
	}

	return out, nil
}

// Unmarshal decodes data into v, which must be a non-nil pointer to a
// record struct (single mode) or to a slice of record structs (table mode).
func Unmarshal(data []byte, v any, opts ...Option) error {
	parsed, err := swjson.Parse(data)
	if err != nil {
		return err
	}

	return unmarshalValue(parsed, v, applyOptions(opts))
}

func applyOptions(opts []Option) decodeOptions {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
