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

package swjson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFirmwarePayload(t *testing.T) {
	// Shape of a real link.b response: unquoted keys, hex integers,
	// single-quoted hex strings.
	data := []byte(`{en:0x3f,nm:['506f727431','506f727432'],an:0x3f,spdc:[0x02,0x02]}`)

	v, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, TypeObject, v.Type)

	obj := v.Obj
	require.Equal(t, 4, obj.Len())

	en, ok := obj.Get("en")
	require.True(t, ok)
	assert.Equal(t, TypeNumber, en.Type)
	assert.Equal(t, int64(0x3f), en.Num)

	nm, ok := obj.Get("nm")
	require.True(t, ok)
	require.Equal(t, TypeArray, nm.Type)
	require.Len(t, nm.Items, 2)
	assert.Equal(t, "506f727431", nm.Items[0].Str)

	spdc, ok := obj.Get("spdc")
	require.True(t, ok)
	require.Equal(t, TypeArray, spdc.Type)
	assert.Equal(t, int64(2), spdc.Items[1].Num)
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{name: "decimal", input: "42", want: Value{Type: TypeNumber, Num: 42}},
		{name: "negative decimal", input: "-7", want: Value{Type: TypeNumber, Num: -7}},
		{name: "hex lowercase", input: "0x1f", want: Value{Type: TypeNumber, Num: 31}},
		{name: "hex uppercase digits", input: "0xFF", want: Value{Type: TypeNumber, Num: 255}},
		{name: "hex 32-bit", input: "0xffffffff", want: Value{Type: TypeNumber, Num: 0xffffffff}},
		{name: "single-quoted string", input: "'abc'", want: Value{Type: TypeString, Str: "abc"}},
		{name: "double-quoted string", input: `"abc"`, want: Value{Type: TypeString, Str: "abc"}},
		{name: "bareword string", input: "auto", want: Value{Type: TypeString, Str: "auto"}},
		{name: "escapes", input: `"a\tb\'cA"`, want: Value{Type: TypeString, Str: "a\tb'cA"}},
		{name: "empty string", input: "''", want: Value{Type: TypeString, Str: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestParseContainers(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		v, err := Parse([]byte("{}"))
		require.NoError(t, err)
		require.Equal(t, TypeObject, v.Type)
		assert.Equal(t, 0, v.Obj.Len())
	})

	t.Run("empty array", func(t *testing.T) {
		v, err := Parse([]byte("[]"))
		require.NoError(t, err)
		require.Equal(t, TypeArray, v.Type)
		require.NotNil(t, v.Items)
		assert.Empty(t, v.Items)
	})

	t.Run("trailing comma in object", func(t *testing.T) {
		v, err := Parse([]byte("{a:1,b:2,}"))
		require.NoError(t, err)
		assert.Equal(t, 2, v.Obj.Len())
	})

	t.Run("trailing comma in array", func(t *testing.T) {
		v, err := Parse([]byte("[1,2,3,]"))
		require.NoError(t, err)
		assert.Len(t, v.Items, 3)
	})

	t.Run("nested", func(t *testing.T) {
		v, err := Parse([]byte("[{i01:'aabbcc',i02:0x04},{i01:'ddeeff',i02:0x05}]"))
		require.NoError(t, err)
		require.Equal(t, TypeArray, v.Type)
		require.Len(t, v.Items, 2)

		mac, ok := v.Items[1].Obj.Get("i01")
		require.True(t, ok)
		assert.Equal(t, "ddeeff", mac.Str)
	})

	t.Run("quoted keys", func(t *testing.T) {
		v, err := Parse([]byte(`{'a':1,"b":2}`))
		require.NoError(t, err)
		assert.Equal(t, 2, v.Obj.Len())
	})

	t.Run("whitespace and newlines", func(t *testing.T) {
		v, err := Parse([]byte("{\n  a : 1 ,\n  b : [ 2 , 3 ]\n}\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, v.Obj.Len())
	})
}

func TestObjectOrder(t *testing.T) {
	v, err := Parse([]byte("{z:1,a:[2],m:3}"))
	require.NoError(t, err)

	obj := v.Obj
	require.Equal(t, 3, obj.Len())
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
	assert.Equal(t, "z", obj.Key(0))
	assert.Equal(t, TypeArray, obj.At(1).Type)
}

func TestObjectDuplicateKeyKeepsPositionLastValueWins(t *testing.T) {
	v, err := Parse([]byte("{a:1,b:2,a:3}"))
	require.NoError(t, err)

	obj := v.Obj
	require.Equal(t, 2, obj.Len())
	assert.Equal(t, []string{"a", "b"}, obj.Keys())

	a, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(3), a.Num)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "unterminated object", input: "{a:1"},
		{name: "unterminated array", input: "[1,2"},
		{name: "unterminated string", input: "'abc"},
		{name: "missing colon", input: "{a 1}"},
		{name: "missing value", input: "{a:}"},
		{name: "number key", input: "{1:2}"},
		{name: "bad escape", input: `"a\q"`},
		{name: "truncated unicode escape", input: `"\u00"`},
		{name: "malformed number", input: "12ab"},
		{name: "bare hex prefix", input: "0x"},
		{name: "trailing garbage", input: "{a:1} {b:2}"},
		{name: "lone comma in object", input: "{,}"},
		{name: "unexpected character", input: "{a:@}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Positive(t, parseErr.Line)
			assert.Positive(t, parseErr.Col)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]byte("{a:1,\nb:}"))
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, 3, parseErr.Col)
	assert.Contains(t, parseErr.Error(), "line 2")
}

func TestNilObjectAccessors(t *testing.T) {
	var obj *Object

	assert.Equal(t, 0, obj.Len())
	assert.False(t, obj.Has("a"))
	assert.Nil(t, obj.Keys())

	_, ok := obj.Get("a")
	assert.False(t, ok)
}
