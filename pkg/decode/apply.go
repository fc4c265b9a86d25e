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

	"github.com/carverauto/swos/pkg/swjson"
)

func unmarshalValue(v swjson.Value, dst any, o decodeOptions) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &SchemaError{Type: fmt.Sprintf("%T", dst), Msg: "destination must be a non-nil pointer"}
	}

	elem := rv.Elem()

	switch elem.Kind() {
	case reflect.Struct:
		return decodeSingle(v, elem, o)
	case reflect.Slice:
		if elem.Type().Elem().Kind() != reflect.Struct {
			return &SchemaError{Type: elem.Type().String(), Msg: "table destination must be a slice of structs"}
		}

		return decodeTable(v, elem, o)
	default:
		return &SchemaError{Type: elem.Type().String(), Msg: "destination must be a struct or a slice of structs"}
	}
}

func decodeSingle(v swjson.Value, dst reflect.Value, o decodeOptions) error {
	if v.Type != swjson.TypeObject {
		return fmt.Errorf("%w: got %s", ErrNotObject, v.Type)
	}

	s, err := schemaFor(dst.Type())
	if err != nil {
		return err
	}

	ports := o.ports
	if ports <= 0 {
		ports = inferPortCount(v.Obj)
	}

	return decodeRecord(s, v.Obj, ports, dst)
}

func decodeTable(v swjson.Value, dst reflect.Value, o decodeOptions) error {
	s, err := schemaFor(dst.Type().Elem())
	if err != nil {
		return err
	}

	// An empty object and an empty array both mean zero entries; either
	// way the caller gets an empty slice, never nil.
	if v.Type == swjson.TypeObject && v.Obj.Len() == 0 ||
		v.Type == swjson.TypeArray && len(v.Items) == 0 {
		dst.Set(reflect.MakeSlice(dst.Type(), 0, 0))

		return nil
	}

	if v.Type != swjson.TypeArray {
		return fmt.Errorf("%w: got %s", ErrNotList, v.Type)
	}

	first := v.Items[0]
	if first.Type != swjson.TypeObject {
		return fmt.Errorf("%w: entry 0 is a %s", ErrNotObject, first.Type)
	}

	// One port count for the whole table, taken from the first entry.
	ports := o.ports
	if ports <= 0 {
		ports = inferPortCount(first.Obj)
	}

	out := reflect.MakeSlice(dst.Type(), len(v.Items), len(v.Items))

	for i, item := range v.Items {
		if item.Type != swjson.TypeObject {
			return fmt.Errorf("%w: entry %d is a %s", ErrNotObject, i, item.Type)
		}

		if err := decodeRecord(s, item.Obj, ports, out.Index(i)); err != nil {
			return err
		}
	}

	dst.Set(out)

	return nil
}

// inferPortCount walks the object's members in insertion order and takes
// the length of the first array-valued one. An empty array carries no
// signal and falls back to the default, like having no array at all.
func inferPortCount(obj *swjson.Object) int {
	for i := 0; i < obj.Len(); i++ {
		if v := obj.At(i); v.Type == swjson.TypeArray {
			if n := len(v.Items); n > 0 {
				return n
			}

			return defaultPortCount
		}
	}

	return defaultPortCount
}

func decodeRecord(s *schema, obj *swjson.Object, ports int, dst reflect.Value) error {
	for i := range s.fields {
		f := &s.fields[i]

		raw, key, ok := resolveAlias(obj, f.keys)
		if !ok {
			// Absent fields keep their zero value; only a value that
			// fails its transform is an error.
			continue
		}

		if err := applyRule(f, raw, obj, ports, dst.Field(f.index)); err != nil {
			return &FieldDecodeError{Record: s.typ.Name(), Field: f.name, Key: key, Err: err}
		}
	}

	return nil
}

// resolveAlias tries each source key in order; the first present key wins.
func resolveAlias(obj *swjson.Object, keys []string) (swjson.Value, string, bool) {
	for _, k := range keys {
		if v, ok := obj.Get(k); ok {
			return v, k, true
		}
	}

	return swjson.Value{}, "", false
}

func applyRule(f *fieldDesc, raw swjson.Value, obj *swjson.Object, ports int, dst reflect.Value) error {
	switch r := f.rule.(type) {
	case *boolRule:
		mask, err := wantNumber(raw)
		if err != nil {
			return err
		}

		dst.Set(reflect.ValueOf(boolsFromMask(mask, r.portCount(ports))))

		return nil
	case *scalarBoolRule:
		n, err := wantNumber(raw)
		if err != nil {
			return err
		}

		dst.SetBool(n != 0)

		return nil
	case *intRule:
		return applyInt(r, raw, dst)
	case *uint64Rule:
		return applyUint64(r, raw, obj, dst)
	case *strRule:
		return applyStrings(raw, dst, stringFromHex)
	case *optionRule:
		return applyOption(r, raw, dst)
	case *boolOptionRule:
		mask, err := wantNumber(raw)
		if err != nil {
			return err
		}

		dst.Set(reflect.ValueOf(boolOptionsFromMask(mask, r.labels, r.portCount(ports))))

		return nil
	case *bitshiftOptionRule:
		return applyBitshiftOption(r, raw, obj, ports, dst)
	case *macRule:
		return applyStrings(raw, dst, func(s string) (string, error) {
			return macFromHex(s), nil
		})
	case *partnerMACRule:
		return applyStrings(raw, dst, func(s string) (string, error) {
			return partnerMACFromHex(s), nil
		})
	case *ipRule:
		return applyNumbersToStrings(raw, dst, ipFromUint32)
	case *partnerIPRule:
		return applyNumbersToStrings(raw, dst, partnerIPFromUint32)
	case *sfpTypeRule:
		return applyStrings(raw, dst, sfpTypeFromHex)
	case *dbmRule:
		return applyDBM(r, raw, dst)
	default:
		// Unreachable while the rule set stays closed.
		return fmt.Errorf("unhandled field kind %q", f.rule.kind())
	}
}

func applyInt(r *intRule, raw swjson.Value, dst reflect.Value) error {
	correct := func(n int64) int64 {
		if r.bits > 0 {
			return signCorrect(n, r.bits)
		}

		return n
	}

	if dst.Kind() == reflect.Slice {
		items, err := wantArray(raw)
		if err != nil {
			return err
		}

		if r.scale != 0 {
			out := make([]float64, len(items))

			for i, item := range items {
				n, err := wantNumber(item)
				if err != nil {
					return fmt.Errorf("element %d: %w", i, err)
				}

				out[i] = float64(correct(n)) / r.scale
			}

			dst.Set(reflect.ValueOf(out))

			return nil
		}

		out := make([]int64, len(items))

		for i, item := range items {
			n, err := wantNumber(item)
			if err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}

			out[i] = correct(n)
		}

		dst.Set(reflect.ValueOf(out))

		return nil
	}

	n, err := wantNumber(raw)
	if err != nil {
		return err
	}

	if r.scale != 0 {
		dst.SetFloat(float64(correct(n)) / r.scale)

		return nil
	}

	v := correct(n)
	if dst.OverflowInt(v) {
		return fmt.Errorf("value %d overflows %s", v, dst.Type())
	}

	dst.SetInt(v)

	return nil
}

func applyUint64(r *uint64Rule, raw swjson.Value, obj *swjson.Object, dst reflect.Value) error {
	high, highKey, hasHigh := resolveAlias(obj, r.high)

	if dst.Kind() == reflect.Slice {
		items, err := wantArray(raw)
		if err != nil {
			return err
		}

		lows := make([]int64, len(items))

		for i, item := range items {
			if lows[i], err = wantNumber(item); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}

		var out []uint64

		switch {
		case !hasHigh:
			out = make([]uint64, len(lows))
			for i, lo := range lows {
				out[i] = combine64(lo, 0)
			}
		case high.Type == swjson.TypeNumber:
			// Scalar high word broadcasts across the whole counter array.
			out = make([]uint64, len(lows))
			for i, lo := range lows {
				out[i] = combine64(lo, high.Num)
			}
		case high.Type == swjson.TypeArray:
			n := len(lows)
			if len(high.Items) < n {
				n = len(high.Items)
			}

			out = make([]uint64, n)

			for i := 0; i < n; i++ {
				hi, err := wantNumber(high.Items[i])
				if err != nil {
					return fmt.Errorf("companion key %q element %d: %w", highKey, i, err)
				}

				out[i] = combine64(lows[i], hi)
			}
		default:
			return fmt.Errorf("companion key %q: expected a number or array, got %s", highKey, high.Type)
		}

		dst.Set(reflect.ValueOf(out))

		return nil
	}

	lo, err := wantNumber(raw)
	if err != nil {
		return err
	}

	hi := int64(0)

	if hasHigh {
		if hi, err = wantNumber(high); err != nil {
			return fmt.Errorf("companion key %q: %w", highKey, err)
		}
	}

	dst.SetUint(combine64(lo, hi))

	return nil
}

func applyOption(r *optionRule, raw swjson.Value, dst reflect.Value) error {
	if dst.Kind() == reflect.Slice {
		items, err := wantArray(raw)
		if err != nil {
			return err
		}

		out := make([]string, len(items))

		for i, item := range items {
			n, err := wantNumber(item)
			if err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}

			out[i] = optionAt(r.labels, n)
		}

		dst.Set(reflect.ValueOf(out))

		return nil
	}

	n, err := wantNumber(raw)
	if err != nil {
		return err
	}

	dst.SetString(optionAt(r.labels, n))

	return nil
}

func applyBitshiftOption(r *bitshiftOptionRule, raw swjson.Value, obj *swjson.Object, ports int, dst reflect.Value) error {
	low, err := wantNumber(raw)
	if err != nil {
		return err
	}

	// A missing companion mask contributes zero high bits.
	high := int64(0)

	if hv, highKey, ok := resolveAlias(obj, r.high); ok {
		if high, err = wantNumber(hv); err != nil {
			return fmt.Errorf("companion key %q: %w", highKey, err)
		}
	}

	dst.Set(reflect.ValueOf(bitshiftOptionsFromMasks(low, high, r.labels, r.portCount(ports))))

	return nil
}

func applyDBM(r *dbmRule, raw swjson.Value, dst reflect.Value) error {
	if dst.Kind() == reflect.Slice {
		items, err := wantArray(raw)
		if err != nil {
			return err
		}

		out := make([]float64, len(items))

		for i, item := range items {
			n, err := wantNumber(item)
			if err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}

			if out[i], err = dbmFromRaw(n, r.scale); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}

		dst.Set(reflect.ValueOf(out))

		return nil
	}

	n, err := wantNumber(raw)
	if err != nil {
		return err
	}

	v, err := dbmFromRaw(n, r.scale)
	if err != nil {
		return err
	}

	dst.SetFloat(v)

	return nil
}

// applyStrings maps a scalar or array of source strings through fn into a
// string or []string field.
func applyStrings(raw swjson.Value, dst reflect.Value, fn func(string) (string, error)) error {
	if dst.Kind() == reflect.Slice {
		items, err := wantArray(raw)
		if err != nil {
			return err
		}

		out := make([]string, len(items))

		for i, item := range items {
			s, err := wantString(item)
			if err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}

			if out[i], err = fn(s); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}

		dst.Set(reflect.ValueOf(out))

		return nil
	}

	s, err := wantString(raw)
	if err != nil {
		return err
	}

	v, err := fn(s)
	if err != nil {
		return err
	}

	dst.SetString(v)

	return nil
}

// applyNumbersToStrings maps a scalar or array of source numbers through fn
// into a string or []string field.
func applyNumbersToStrings(raw swjson.Value, dst reflect.Value, fn func(int64) (string, error)) error {
	if dst.Kind() == reflect.Slice {
		items, err := wantArray(raw)
		if err != nil {
			return err
		}

		out := make([]string, len(items))

		for i, item := range items {
			n, err := wantNumber(item)
			if err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}

			if out[i], err = fn(n); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}

		dst.Set(reflect.ValueOf(out))

		return nil
	}

	n, err := wantNumber(raw)
	if err != nil {
		return err
	}

	v, err := fn(n)
	if err != nil {
		return err
	}

	dst.SetString(v)

	return nil
}

func wantNumber(v swjson.Value) (int64, error) {
	if v.Type != swjson.TypeNumber {
		return 0, fmt.Errorf("expected a number, got %s", v.Type)
	}

	return v.Num, nil
}

func wantString(v swjson.Value) (string, error) {
	if v.Type != swjson.TypeString {
		return "", fmt.Errorf("expected a string, got %s", v.Type)
	}

	return v.Str, nil
}

func wantArray(v swjson.Value) ([]swjson.Value, error) {
	if v.Type != swjson.TypeArray {
		return nil, fmt.Errorf("expected an array, got %s", v.Type)
	}

	return v.Items, nil
}
