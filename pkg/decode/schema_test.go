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
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type describedRecord struct {
	Enabled  []bool    `swos:"en,i01" kind:"bool"`
	Name     []string  `swos:"nm,i0a" kind:"str"`
	State    []string  `swos:"lnk,i06" kind:"bitshift_option" high:"i15" options:"no link,link on,link paused"`
	Speed    []string  `swos:"spdc" kind:"option" options:"10M,100M,1G"`
	Mode     []string  `swos:"i05" kind:"bool_option" options:"STP,RSTP" ports:"8"`
	RxBytes  []uint64  `swos:"i01x" kind:"uint64" high:"i02x"`
	Temp     int64     `swos:"temp" kind:"int" bits:"16"`
	Voltage  float64   `swos:"p1v" kind:"int" scale:"100"`
	TxPower  []float64 `swos:"i0b" kind:"dbm"`
	Internal string
	skipped  string `swos:"i99" kind:"str"` //nolint:unused // must not compile into the schema
	Ignored  string `swos:"-"`
}

func TestDescribe(t *testing.T) {
	infos, err := Describe[describedRecord]()
	require.NoError(t, err)
	require.Len(t, infos, 9, "untagged, unexported and dash-tagged fields are skipped")

	assert.Equal(t, FieldInfo{
		Name:    "Enabled",
		Keys:    []string{"en", "i01"},
		Kind:    KindBool,
		IsSlice: true,
	}, infos[0])

	assert.Equal(t, FieldInfo{
		Name:    "State",
		Keys:    []string{"lnk", "i06"},
		Kind:    KindBitshiftOption,
		High:    []string{"i15"},
		Options: []string{"no link", "link on", "link paused"},
		IsSlice: true,
	}, infos[2])

	assert.Equal(t, FieldInfo{
		Name:    "Mode",
		Keys:    []string{"i05"},
		Kind:    KindBoolOption,
		Options: []string{"STP", "RSTP"},
		Ports:   8,
		IsSlice: true,
	}, infos[4])

	assert.Equal(t, FieldInfo{
		Name:    "RxBytes",
		Keys:    []string{"i01x"},
		Kind:    KindUint64,
		High:    []string{"i02x"},
		IsSlice: true,
	}, infos[5])

	assert.Equal(t, FieldInfo{
		Name: "Temp",
		Keys: []string{"temp"},
		Kind: KindInt,
		Bits: 16,
	}, infos[6])

	assert.Equal(t, FieldInfo{
		Name:  "Voltage",
		Keys:  []string{"p1v"},
		Kind:  KindInt,
		Scale: 100,
	}, infos[7])

	assert.Equal(t, FieldInfo{
		Name:    "TxPower",
		Keys:    []string{"i0b"},
		Kind:    KindDBM,
		Scale:   defaultDBMScale,
		IsSlice: true,
	}, infos[8])
}

func TestMustDescribePanicsOnBadSchema(t *testing.T) {
	type badRecord struct {
		Speed string `swos:"spd" kind:"warp"`
	}

	assert.Panics(t, func() { MustDescribe[badRecord]() })
}

func TestSchemaErrors(t *testing.T) {
	type unknownKind struct {
		F string `swos:"a" kind:"float"`
	}

	type missingKind struct {
		F string `swos:"a"`
	}

	type boolNotSlice struct {
		F bool `swos:"a" kind:"bool"`
	}

	type scalarBoolWrongType struct {
		F int `swos:"a" kind:"scalar_bool"`
	}

	type uint64NoHigh struct {
		F uint64 `swos:"a" kind:"uint64"`
	}

	type uint64WrongType struct {
		F int64 `swos:"a" kind:"uint64" high:"b"`
	}

	type optionNoTable struct {
		F string `swos:"a" kind:"option"`
	}

	type boolOptionThreeLabels struct {
		F []string `swos:"a" kind:"bool_option" options:"x,y,z"`
	}

	type bitshiftNoHigh struct {
		F []string `swos:"a" kind:"bitshift_option" options:"x,y"`
	}

	type bitsTooWide struct {
		F int64 `swos:"a" kind:"int" bits:"63"`
	}

	type scaleNotPositive struct {
		F float64 `swos:"a" kind:"int" scale:"0"`
	}

	type portsNotPositive struct {
		F []bool `swos:"a" kind:"bool" ports:"0"`
	}

	type strWithOptions struct {
		F string `swos:"a" kind:"str" options:"x,y"`
	}

	type scaledIntWrongType struct {
		F int64 `swos:"a" kind:"int" scale:"10"`
	}

	tests := []struct {
		name     string
		describe func() error
		contains string
	}{
		{
			name:     "unknown kind",
			describe: func() error { _, err := Describe[unknownKind](); return err },
			contains: `unknown kind "float"`,
		},
		{
			name:     "missing kind tag",
			describe: func() error { _, err := Describe[missingKind](); return err },
			contains: "missing kind tag",
		},
		{
			name:     "bool needs a slice",
			describe: func() error { _, err := Describe[boolNotSlice](); return err },
			contains: "requires a []bool field",
		},
		{
			name:     "scalar_bool needs a bool",
			describe: func() error { _, err := Describe[scalarBoolWrongType](); return err },
			contains: "requires a bool field",
		},
		{
			name:     "uint64 needs a companion key",
			describe: func() error { _, err := Describe[uint64NoHigh](); return err },
			contains: "requires a high tag",
		},
		{
			name:     "uint64 needs a uint64 field",
			describe: func() error { _, err := Describe[uint64WrongType](); return err },
			contains: "requires a uint64 or []uint64 field",
		},
		{
			name:     "option needs a label table",
			describe: func() error { _, err := Describe[optionNoTable](); return err },
			contains: "requires an options tag",
		},
		{
			name:     "bool_option needs exactly two labels",
			describe: func() error { _, err := Describe[boolOptionThreeLabels](); return err },
			contains: "exactly 2 options",
		},
		{
			name:     "bitshift_option needs a companion key",
			describe: func() error { _, err := Describe[bitshiftNoHigh](); return err },
			contains: "requires a high tag",
		},
		{
			name:     "bits out of range",
			describe: func() error { _, err := Describe[bitsTooWide](); return err },
			contains: "bits must be an integer between 1 and 62",
		},
		{
			name:     "scale must be positive",
			describe: func() error { _, err := Describe[scaleNotPositive](); return err },
			contains: "scale must be a positive number",
		},
		{
			name:     "ports must be positive",
			describe: func() error { _, err := Describe[portsNotPositive](); return err },
			contains: "ports must be a positive integer",
		},
		{
			name:     "extraneous parameter",
			describe: func() error { _, err := Describe[strWithOptions](); return err },
			contains: `tag "options" does not apply to kind "str"`,
		},
		{
			name:     "scaled int needs a float field",
			describe: func() error { _, err := Describe[scaledIntWrongType](); return err },
			contains: "requires a float64 or []float64 field",
		},
		{
			name:     "record must be a struct",
			describe: func() error { _, err := Describe[int](); return err },
			contains: "must be a struct",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.describe()
			require.Error(t, err)

			var se *SchemaError

			require.ErrorAs(t, err, &se)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSchemaCacheReturnsSameCompilation(t *testing.T) {
	first, err := schemaFor(reflect.TypeFor[describedRecord]())
	require.NoError(t, err)

	second, err := schemaFor(reflect.TypeFor[describedRecord]())
	require.NoError(t, err)

	assert.Same(t, first, second)
}
