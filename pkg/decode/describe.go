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

import "reflect"

// Describe compiles the schema of T and reports one FieldInfo per mapped
// field, in declaration order. It shares the schema cache with Read, so
// describing a type also validates it.
func Describe[T any]() ([]FieldInfo, error) {
	s, err := schemaFor(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	infos := make([]FieldInfo, 0, len(s.fields))

	for i := range s.fields {
		infos = append(infos, fieldInfo(&s.fields[i]))
	}

	return infos, nil
}

// MustDescribe is Describe but panics on a schema error. Intended for
// registration paths where a bad schema is a programming mistake.
func MustDescribe[T any]() []FieldInfo {
	infos, err := Describe[T]()
	if err != nil {
		panic(err)
	}

	return infos
}

func fieldInfo(f *fieldDesc) FieldInfo {
	info := FieldInfo{
		Name:    f.name,
		Keys:    append([]string(nil), f.keys...),
		Kind:    f.rule.kind(),
		IsSlice: f.slice,
	}

	switch r := f.rule.(type) {
	case *boolRule:
		info.Ports = r.ports
	case *intRule:
		info.Bits = r.bits
		info.Scale = r.scale
	case *uint64Rule:
		info.High = append([]string(nil), r.high...)
	case *optionRule:
		info.Options = append([]string(nil), r.labels...)
	case *boolOptionRule:
		info.Options = []string{r.labels[0], r.labels[1]}
		info.Ports = r.ports
	case *bitshiftOptionRule:
		info.Options = append([]string(nil), r.labels...)
		info.High = append([]string(nil), r.high...)
		info.Ports = r.ports
	case *dbmRule:
		info.Scale = r.scale
	}

	return info
}
