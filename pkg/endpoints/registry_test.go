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

package endpoints

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/swos/pkg/decode"
)

func TestEveryCatalogPathResolves(t *testing.T) {
	entries := Entries()
	require.NotEmpty(t, entries)

	for _, e := range entries {
		require.NotEmpty(t, e.Paths, "entry %q has no paths", e.Name)

		for _, p := range e.Paths {
			got, ok := Lookup(p)
			require.True(t, ok, "path %q does not resolve", p)
			assert.Equal(t, e.Name, got.Name)
		}
	}
}

func TestPathsSortedAndComplete(t *testing.T) {
	paths := Paths()

	assert.True(t, sort.StringsAreSorted(paths))
	assert.Len(t, paths, 17)

	for _, want := range []string{"link.b", "sys.b", "!stats.b", "stats.b", "!dhost.b", "acl.b", "poe.b"} {
		assert.Contains(t, paths, want)
	}
}

func TestDecodeDispatch(t *testing.T) {
	got, err := Decode("link.b", []byte(`{nm:['4131','4232'],en:0x03}`))
	require.NoError(t, err)

	link, ok := got.(Link)
	require.True(t, ok, "link.b should decode to Link, got %T", got)
	assert.Equal(t, []string{"A1", "B2"}, link.Name)
	assert.Equal(t, []bool{true, true}, link.Enabled)

	got, err = Decode("vlan.b", []byte(`[{i01:0x01,i02:0x03,i03:0x00}]`), decode.WithPortCount(2))
	require.NoError(t, err)

	vlans, ok := got.(VLANs)
	require.True(t, ok, "vlan.b should decode to VLANs, got %T", got)
	require.Len(t, vlans, 1)
	assert.Equal(t, 1, vlans[0].VLANID)
	assert.Equal(t, []bool{true, true}, vlans[0].Members)
}

func TestDecodeUnknownPath(t *testing.T) {
	_, err := Decode("bogus.b", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownPath)
}

func TestAlternateStatsPathsDecodeIdentically(t *testing.T) {
	payload := []byte(`{i01:[0x05,0x10],i02:0x01,i23:[0x01,0x02]}`)

	lite, err := Decode("!stats.b", payload)
	require.NoError(t, err)

	full, err := Decode("stats.b", payload)
	require.NoError(t, err)

	assert.Equal(t, lite, full)
}

func TestEntryFields(t *testing.T) {
	e, ok := Lookup("link.b")
	require.True(t, ok)

	fields := e.Fields()
	require.Len(t, fields, 10)

	assert.Equal(t, "Enabled", fields[0].Name)
	assert.Equal(t, decode.KindBool, fields[0].Kind)
	assert.Equal(t, []string{"en", "i01"}, fields[0].Keys)

	e, ok = Lookup("sfp.b")
	require.True(t, ok)

	for _, f := range e.Fields() {
		assert.True(t, f.IsSlice, "SFP field %s should be per-module", f.Name)
	}
}

func TestTableFlag(t *testing.T) {
	for _, e := range Entries() {
		switch e.Name {
		case "hosts", "dynamic-hosts", "vlans", "igmp-groups", "acl":
			assert.True(t, e.Table, "%s serves a record list", e.Name)
		default:
			assert.False(t, e.Table, "%s serves a single record", e.Name)
		}
	}
}

func TestRegisterDuplicatePathPanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(Entry{Name: "duplicate", Paths: []string{"link.b"}})
	})

	assert.Panics(t, func() {
		Register(Entry{Name: "pathless"})
	})
}
