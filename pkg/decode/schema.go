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
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// A schema is the compiled form of a record type: one descriptor per tagged
// struct field. Schemas are immutable once compiled and shared by every
// decode of the same type.
type schema struct {
	typ    reflect.Type
	fields []fieldDesc
}

type fieldDesc struct {
	name  string // Go field name
	index int    // struct field index
	keys  []string
	slice bool
	rule  fieldRule
}

// fieldRule is the closed set of per-kind transforms. Each variant carries
// only the parameters its kind needs; the decoder matches the set
// exhaustively.
type fieldRule interface {
	kind() Kind
}

// maskPorts carries the optional fixed port count of the bitmask-exploding
// kinds. Zero means use the record's inferred count.
type maskPorts struct {
	ports int
}

func (m maskPorts) portCount(inferred int) int {
	if m.ports > 0 {
		return m.ports
	}

	return inferred
}

type boolRule struct{ maskPorts }

type scalarBoolRule struct{}

type intRule struct {
	bits  int     // two's-complement width, 0 for none
	scale float64 // divisor, 0 for none
}

type uint64Rule struct {
	high []string
}

type strRule struct{}

type optionRule struct {
	labels []string
}

type boolOptionRule struct {
	maskPorts

	labels [2]string
}

type bitshiftOptionRule struct {
	maskPorts

	high   []string
	labels []string
}

type macRule struct{}

type partnerMACRule struct{}

type ipRule struct{}

type partnerIPRule struct{}

type sfpTypeRule struct{}

type dbmRule struct {
	scale float64
}

func (*boolRule) kind() Kind           { return KindBool }
func (*scalarBoolRule) kind() Kind     { return KindScalarBool }
func (*intRule) kind() Kind            { return KindInt }
func (*uint64Rule) kind() Kind         { return KindUint64 }
func (*strRule) kind() Kind            { return KindStr }
func (*optionRule) kind() Kind         { return KindOption }
func (*boolOptionRule) kind() Kind     { return KindBoolOption }
func (*bitshiftOptionRule) kind() Kind { return KindBitshiftOption }
func (*macRule) kind() Kind            { return KindMAC }
func (*partnerMACRule) kind() Kind     { return KindPartnerMAC }
func (*ipRule) kind() Kind             { return KindIP }
func (*partnerIPRule) kind() Kind      { return KindPartnerIP }
func (*sfpTypeRule) kind() Kind        { return KindSFPType }
func (*dbmRule) kind() Kind            { return KindDBM }

// maxSignBits keeps 1<<bits inside int64 range during sign correction.
const maxSignBits = 62

var (
	boolSliceType    = reflect.TypeOf([]bool(nil))
	stringSliceType  = reflect.TypeOf([]string(nil))
	int64SliceType   = reflect.TypeOf([]int64(nil))
	uint64SliceType  = reflect.TypeOf([]uint64(nil))
	float64SliceType = reflect.TypeOf([]float64(nil))
)

func compileSchema(t reflect.Type) (*schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, &SchemaError{Type: t.String(), Msg: "record type must be a struct"}
	}

	s := &schema{typ: t}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		tag, ok := f.Tag.Lookup("swos")
		if !ok || tag == "" || tag == "-" {
			continue
		}

		fd, err := compileField(t, f, i, strings.Split(tag, ","))
		if err != nil {
			return nil, err
		}

		s.fields = append(s.fields, *fd)
	}

	return s, nil
}

// tagParams holds the type-specific tag parameters of one field, plus which
// of them were present, so each kind can reject the ones it does not accept.
type tagParams struct {
	options []string
	high    []string
	bits    int
	scale   float64
	ports   int
	present map[string]bool
}

// paramOrder fixes the reporting order for extraneous parameters.
var paramOrder = []string{"options", "high", "bits", "scale", "ports"}

// extraneous returns the first present parameter not in allowed, or "".
func (p *tagParams) extraneous(allowed ...string) string {
	for _, name := range paramOrder {
		if !p.present[name] {
			continue
		}

		permitted := false

		for _, a := range allowed {
			if a == name {
				permitted = true

				break
			}
		}

		if !permitted {
			return name
		}
	}

	return ""
}

func parseTagParams(f reflect.StructField, schemaErr func(string, ...any) error) (*tagParams, error) {
	p := &tagParams{present: make(map[string]bool)}

	if v, ok := f.Tag.Lookup("options"); ok {
		p.present["options"] = true
		p.options = strings.Split(v, ",")
	}

	if v, ok := f.Tag.Lookup("high"); ok {
		p.present["high"] = true
		p.high = strings.Split(v, ",")
	}

	if v, ok := f.Tag.Lookup("bits"); ok {
		p.present["bits"] = true

		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxSignBits {
			return nil, schemaErr("bits must be an integer between 1 and %d, got %q", maxSignBits, v)
		}

		p.bits = n
	}

	if v, ok := f.Tag.Lookup("scale"); ok {
		p.present["scale"] = true

		x, err := strconv.ParseFloat(v, 64)
		if err != nil || x <= 0 {
			return nil, schemaErr("scale must be a positive number, got %q", v)
		}

		p.scale = x
	}

	if v, ok := f.Tag.Lookup("ports"); ok {
		p.present["ports"] = true

		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, schemaErr("ports must be a positive integer, got %q", v)
		}

		p.ports = n
	}

	return p, nil
}

func compileField(t reflect.Type, f reflect.StructField, index int, keys []string) (*fieldDesc, error) {
	schemaErr := func(format string, args ...any) error {
		return &SchemaError{Type: t.Name(), Field: f.Name, Msg: fmt.Sprintf(format, args...)}
	}

	kindTag, ok := f.Tag.Lookup("kind")
	if !ok {
		return nil, schemaErr("missing kind tag")
	}

	p, err := parseTagParams(f, schemaErr)
	if err != nil {
		return nil, err
	}

	fd := &fieldDesc{
		name:  f.Name,
		index: index,
		keys:  keys,
		slice: f.Type.Kind() == reflect.Slice,
	}

	switch Kind(kindTag) {
	case KindBool:
		if extra := p.extraneous("ports"); extra != "" {
			return nil, schemaErr("tag %q does not apply to kind %q", extra, kindTag)
		}

		if f.Type != boolSliceType {
			return nil, schemaErr("kind %q requires a []bool field, got %s", kindTag, f.Type)
		}

		fd.rule = &boolRule{maskPorts{p.ports}}

	case KindScalarBool:
		if extra := p.extraneous(); extra != "" {
			return nil, schemaErr("tag %q does not apply to kind %q", extra, kindTag)
		}

		if f.Type.Kind() != reflect.Bool {
			return nil, schemaErr("kind %q requires a bool field, got %s", kindTag, f.Type)
		}

		fd.rule = &scalarBoolRule{}

	case KindInt:
		if extra := p.extraneous("bits", "scale"); extra != "" {
			return nil, schemaErr("tag %q does not apply to kind %q", extra, kindTag)
		}

		if p.scale != 0 {
			if f.Type != float64SliceType && f.Type.Kind() != reflect.Float64 {
				return nil, schemaErr("scaled kind %q requires a float64 or []float64 field, got %s", kindTag, f.Type)
			}
		} else if f.Type != int64SliceType && !isSignedInt(f.Type.Kind()) {
			return nil, schemaErr("kind %q requires an integer or []int64 field, got %s", kindTag, f.Type)
		}

		fd.rule = &intRule{bits: p.bits, scale: p.scale}

	case KindUint64:
		if extra := p.extraneous("high"); extra != "" {
			return nil, schemaErr("tag %q does not apply to kind %q", extra, kindTag)
		}

		if len(p.high) == 0 {
			return nil, schemaErr("kind %q requires a high tag naming the companion key", kindTag)
		}

		if f.Type != uint64SliceType && f.Type.Kind() != reflect.Uint64 {
			return nil, schemaErr("kind %q requires a uint64 or []uint64 field, got %s", kindTag, f.Type)
		}

		fd.rule = &uint64Rule{high: p.high}

	case KindStr, KindMAC, KindPartnerMAC, KindIP, KindPartnerIP, KindSFPType:
		if extra := p.extraneous(); extra != "" {
			return nil, schemaErr("tag %q does not apply to kind %q", extra, kindTag)
		}

		if f.Type != stringSliceType && f.Type.Kind() != reflect.String {
			return nil, schemaErr("kind %q requires a string or []string field, got %s", kindTag, f.Type)
		}

		switch Kind(kindTag) {
		case KindStr:
			fd.rule = &strRule{}
		case KindMAC:
			fd.rule = &macRule{}
		case KindPartnerMAC:
			fd.rule = &partnerMACRule{}
		case KindIP:
			fd.rule = &ipRule{}
		case KindPartnerIP:
			fd.rule = &partnerIPRule{}
		default:
			fd.rule = &sfpTypeRule{}
		}

	case KindOption:
		if extra := p.extraneous("options"); extra != "" {
			return nil, schemaErr("tag %q does not apply to kind %q", extra, kindTag)
		}

		if len(p.options) == 0 {
			return nil, schemaErr("kind %q requires an options tag", kindTag)
		}

		if f.Type != stringSliceType && f.Type.Kind() != reflect.String {
			return nil, schemaErr("kind %q requires a string or []string field, got %s", kindTag, f.Type)
		}

		fd.rule = &optionRule{labels: p.options}

	case KindBoolOption:
		if extra := p.extraneous("options", "ports"); extra != "" {
			return nil, schemaErr("tag %q does not apply to kind %q", extra, kindTag)
		}

		if len(p.options) != 2 {
			return nil, schemaErr("kind %q requires exactly 2 options, got %d", kindTag, len(p.options))
		}

		if f.Type != stringSliceType {
			return nil, schemaErr("kind %q requires a []string field, got %s", kindTag, f.Type)
		}

		fd.rule = &boolOptionRule{
			maskPorts: maskPorts{p.ports},
			labels:    [2]string{p.options[0], p.options[1]},
		}

	case KindBitshiftOption:
		if extra := p.extraneous("options", "high", "ports"); extra != "" {
			return nil, schemaErr("tag %q does not apply to kind %q", extra, kindTag)
		}

		if len(p.options) == 0 {
			return nil, schemaErr("kind %q requires an options tag", kindTag)
		}

		if len(p.high) == 0 {
			return nil, schemaErr("kind %q requires a high tag naming the companion key", kindTag)
		}

		if f.Type != stringSliceType {
			return nil, schemaErr("kind %q requires a []string field, got %s", kindTag, f.Type)
		}

		fd.rule = &bitshiftOptionRule{
			maskPorts: maskPorts{p.ports},
			high:      p.high,
			labels:    p.options,
		}

	case KindDBM:
		if extra := p.extraneous("scale"); extra != "" {
			return nil, schemaErr("tag %q does not apply to kind %q", extra, kindTag)
		}

		if f.Type != float64SliceType && f.Type.Kind() != reflect.Float64 {
			return nil, schemaErr("kind %q requires a float64 or []float64 field, got %s", kindTag, f.Type)
		}

		scale := p.scale
		if scale == 0 {
			scale = defaultDBMScale
		}

		fd.rule = &dbmRule{scale: scale}

	default:
		return nil, schemaErr("unknown kind %q", kindTag)
	}

	return fd, nil
}

func isSignedInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}
