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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/swos/pkg/swjson"
)

type linkRecord struct {
	Enabled    []bool   `swos:"en,i01" kind:"bool"`
	Name       []string `swos:"nm,i0a" kind:"str"`
	LinkState  []string `swos:"lnk,i06" kind:"bitshift_option" high:"i15" options:"no link,link on,no link,link paused"`
	AutoNeg    []bool   `swos:"an,i02" kind:"bool"`
	Speed      []string `swos:"spdc,i08" kind:"option" options:"10M,100M,1G,10G,200M,2.5G,5G"`
	FullDuplex []bool   `swos:"dpx,i07" kind:"bool"`
}

type systemRecord struct {
	Identity     string  `swos:"id,i05" kind:"str"`
	MAC          string  `swos:"mac,i03" kind:"mac"`
	IP           string  `swos:"cip,i02" kind:"ip"`
	Uptime       int64   `swos:"upt,i01" kind:"int"`
	CPUTemp      int64   `swos:"temp,i22" kind:"int" bits:"16"`
	PSU1Voltage  float64 `swos:"p1v,i15" kind:"int" scale:"100"`
	IGMPSnooping bool    `swos:"i17" kind:"scalar_bool"`
}

type counterRecord struct {
	RxBytes []uint64  `swos:"i01" kind:"uint64" high:"i02"`
	TxBytes []uint64  `swos:"i0f" kind:"uint64" high:"i10"`
	RxRate  []float64 `swos:"i21" kind:"int" scale:"0.32"`
}

type hostRecord struct {
	MAC  string `swos:"i01" kind:"mac"`
	Port int64  `swos:"i02" kind:"int"`
}

func TestReadLinkStatus(t *testing.T) {
	// Port names come first in the payload, so the six-element name array
	// sets the port count for every mask field.
	payload := []byte(`{nm:['506f727431','506f727432','506f727433','506f727434','53465031','53465032'],` +
		`en:0x3f,an:0x1f,lnk:0x21,spdc:[0x00,0x01,0x02,0x02,0x05,0x06],dpx:0x2c}`)

	got, err := Read[linkRecord](payload)
	require.NoError(t, err)

	assert.Equal(t, []string{"Port1", "Port2", "Port3", "Port4", "SFP1", "SFP2"}, got.Name)
	assert.Equal(t, []bool{true, true, true, true, true, true}, got.Enabled)
	assert.Equal(t, []bool{true, true, true, true, true, false}, got.AutoNeg)
	assert.Equal(t, []bool{false, false, true, true, false, true}, got.FullDuplex)
	assert.Equal(t, []string{"10M", "100M", "1G", "1G", "2.5G", "5G"}, got.Speed)

	// lnk has no companion mask in this payload, so only the low bit
	// contributes to each port's state index.
	assert.Equal(t, []string{"link on", "no link", "no link", "no link", "no link", "link on"}, got.LinkState)
}

func TestReadSystemRecord(t *testing.T) {
	payload := []byte(`{id:'4d696b726f54696b',mac:'d4ca6dd84f21',cip:0x0101a8c0,upt:0x2e72,temp:0xffd8,p1v:0x4b5,i17:1}`)

	got, err := Read[systemRecord](payload)
	require.NoError(t, err)

	assert.Equal(t, "MikroTik", got.Identity)
	assert.Equal(t, "D4:CA:6D:D8:4F:21", got.MAC)
	assert.Equal(t, "192.168.1.1", got.IP)
	assert.Equal(t, int64(11890), got.Uptime)
	assert.Equal(t, int64(-40), got.CPUTemp, "16-bit temperature readings are signed")
	assert.InDelta(t, 12.05, got.PSU1Voltage, 1e-9)
	assert.True(t, got.IGMPSnooping)
}

func TestReadAliasKeys(t *testing.T) {
	// Newer firmware renames en to i01 and nm to i0a; the alias list
	// resolves either spelling, first present key wins.
	payload := []byte(`{i0a:['4131','4232'],i01:0x02}`)

	got, err := Read[linkRecord](payload)
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "B2"}, got.Name)
	assert.Equal(t, []bool{false, true}, got.Enabled)
}

func TestReadAbsentKeysLeaveZeroValues(t *testing.T) {
	got, err := Read[linkRecord]([]byte(`{nm:['4131','4232']}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "B2"}, got.Name)
	assert.Nil(t, got.Enabled)
	assert.Nil(t, got.Speed)
}

func TestReadSplitCounters(t *testing.T) {
	payload := []byte(`{i01:[0x05,0x10],i02:0x01,i0f:[0x01,0x02,0x03],i10:[0x00,0x01],i21:[0x20,0x40]}`)

	got, err := Read[counterRecord](payload)
	require.NoError(t, err)

	// A scalar high word broadcasts over the whole low array.
	assert.Equal(t, []uint64{4294967301, 4294967312}, got.RxBytes)

	// An array high word pairs element-wise; the output stops at the
	// shorter side.
	assert.Equal(t, []uint64{1, 4294967298}, got.TxBytes)

	assert.InDeltaSlice(t, []float64{100, 200}, got.RxRate, 1e-9)
}

func TestReadOptionIndexPastTable(t *testing.T) {
	got, err := Read[linkRecord]([]byte(`{spdc:[0x00,0x63]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"10M", ""}, got.Speed, "unknown option index is absent, not an error")
}

func TestReadDuplicateKeyLastValueWins(t *testing.T) {
	got, err := Read[linkRecord]([]byte(`{nm:['4131','4232'],en:0x01,en:0x02}`))
	require.NoError(t, err)

	assert.Equal(t, []bool{false, true}, got.Enabled)
}

func TestPortCountInference(t *testing.T) {
	t.Run("no array member defaults to ten ports", func(t *testing.T) {
		got, err := Read[linkRecord]([]byte(`{en:0x3ff}`))
		require.NoError(t, err)
		assert.Len(t, got.Enabled, 10)
	})

	t.Run("empty first array defaults to ten ports", func(t *testing.T) {
		got, err := Read[linkRecord]([]byte(`{nm:[],en:0x01}`))
		require.NoError(t, err)
		assert.Len(t, got.Enabled, 10)
	})

	t.Run("option overrides inference", func(t *testing.T) {
		got, err := Read[linkRecord]([]byte(`{nm:['4131','4232'],en:0x01}`), WithPortCount(4))
		require.NoError(t, err)
		assert.Len(t, got.Enabled, 4)
		assert.Len(t, got.Name, 2, "sequence fields keep their own length")
	})

	t.Run("ports tag overrides inference per field", func(t *testing.T) {
		type fixedRecord struct {
			Wide   []bool `swos:"a" kind:"bool" ports:"8"`
			Narrow []bool `swos:"b" kind:"bool"`
		}

		got, err := Read[fixedRecord]([]byte(`{c:[0x01,0x02],a:0x81,b:0x01}`))
		require.NoError(t, err)
		assert.Len(t, got.Wide, 8)
		assert.Len(t, got.Narrow, 2)
	})
}

func TestReadList(t *testing.T) {
	payload := []byte(`[{i01:'d4ca6dd84f21',i02:0x02},{i01:'001122334455',i02:0x05}]`)

	got, err := ReadList[hostRecord](payload)
	require.NoError(t, err)

	assert.Equal(t, []hostRecord{
		{MAC: "D4:CA:6D:D8:4F:21", Port: 2},
		{MAC: "00:11:22:33:44:55", Port: 5},
	}, got)
}

func TestReadListEmptyInput(t *testing.T) {
	for _, payload := range []string{`[]`, `{}`} {
		got, err := ReadList[hostRecord]([]byte(payload))
		require.NoError(t, err, "payload %s", payload)
		assert.NotNil(t, got, "payload %s", payload)
		assert.Empty(t, got, "payload %s", payload)
	}
}

func TestReadListSharesPortCountAcrossEntries(t *testing.T) {
	type trunkRecord struct {
		Names   []string `swos:"i01" kind:"str"`
		Members []bool   `swos:"i02" kind:"bool"`
	}

	// The first entry's three-element array fixes the port count for the
	// whole table, including entries whose own arrays are shorter.
	payload := []byte(`[{i01:['4131','4232','4333'],i02:0x05},{i01:['4134'],i02:0x02}]`)

	got, err := ReadList[trunkRecord](payload)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, []bool{true, false, true}, got[0].Members)
	assert.Equal(t, []bool{false, true, false}, got[1].Members)
	assert.Equal(t, []string{"A4"}, got[1].Names)
}

func TestReadListWithPortCount(t *testing.T) {
	type vlanRecord struct {
		VlanID  int64  `swos:"i01" kind:"int"`
		Members []bool `swos:"i02" kind:"bool"`
	}

	payload := []byte(`[{i01:0x0a,i02:0x1b}]`)

	got, err := ReadList[vlanRecord](payload, WithPortCount(5))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, int64(10), got[0].VlanID)
	assert.Equal(t, []bool{true, true, false, true, true}, got[0].Members)

	// Without the option and without arrays to measure, masks fall back to
	// the ten-port default.
	got, err = ReadList[vlanRecord](payload)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Members, 10)
}

func TestReadTopLevelShape(t *testing.T) {
	_, err := Read[linkRecord]([]byte(`[{en:0x01}]`))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = Read[linkRecord]([]byte(`0x2a`))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = ReadList[hostRecord]([]byte(`{i01:'d4ca6dd84f21'}`))
	assert.ErrorIs(t, err, ErrNotList)

	_, err = ReadList[hostRecord]([]byte(`[{i02:0x01},0x05]`))
	assert.ErrorIs(t, err, ErrNotObject)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestReadFieldDecodeError(t *testing.T) {
	_, err := Read[systemRecord]([]byte(`{id:0x05}`))
	require.Error(t, err)

	var fde *FieldDecodeError

	require.ErrorAs(t, err, &fde)
	assert.Equal(t, "systemRecord", fde.Record)
	assert.Equal(t, "Identity", fde.Field)
	assert.Equal(t, "id", fde.Key)
	assert.Contains(t, fde.Error(), "expected a string")
}

func TestReadShapeMismatch(t *testing.T) {
	t.Run("sequence field with scalar source", func(t *testing.T) {
		_, err := Read[linkRecord]([]byte(`{nm:'4131'}`))

		var fde *FieldDecodeError

		require.ErrorAs(t, err, &fde)
		assert.Equal(t, "Name", fde.Field)
		assert.Contains(t, err.Error(), "expected an array")
	})

	t.Run("scalar field with array source", func(t *testing.T) {
		_, err := Read[systemRecord]([]byte(`{upt:[0x01]}`))

		var fde *FieldDecodeError

		require.ErrorAs(t, err, &fde)
		assert.Equal(t, "Uptime", fde.Field)
		assert.Contains(t, err.Error(), "expected a number")
	})
}

func TestReadListAbortsOnFirstBadEntry(t *testing.T) {
	type nameRecord struct {
		Name string `swos:"i01" kind:"str"`
	}

	got, err := ReadList[nameRecord]([]byte(`[{i01:'4f4b'},{i01:'786x'},{i01:'4f4b'}]`))
	require.Error(t, err)
	assert.Nil(t, got, "no partial table on error")

	var fde *FieldDecodeError

	require.ErrorAs(t, err, &fde)
	assert.Equal(t, "Name", fde.Field)
}

func TestReadValue(t *testing.T) {
	v, err := swjson.Parse([]byte(`{i01:'d4ca6dd84f21',i02:0x03}`))
	require.NoError(t, err)

	got, err := ReadValue[hostRecord](v)
	require.NoError(t, err)
	assert.Equal(t, hostRecord{MAC: "D4:CA:6D:D8:4F:21", Port: 3}, got)
}

func TestReadListValue(t *testing.T) {
	v, err := swjson.Parse([]byte(`[{i01:'d4ca6dd84f21',i02:0x03}]`))
	require.NoError(t, err)

	got, err := ReadListValue[hostRecord](v)
	require.NoError(t, err)
	assert.Equal(t, []hostRecord{{MAC: "D4:CA:6D:D8:4F:21", Port: 3}}, got)
}

func TestUnmarshal(t *testing.T) {
	var single hostRecord

	require.NoError(t, Unmarshal([]byte(`{i01:'d4ca6dd84f21',i02:0x03}`), &single))
	assert.Equal(t, hostRecord{MAC: "D4:CA:6D:D8:4F:21", Port: 3}, single)

	var table []hostRecord

	require.NoError(t, Unmarshal([]byte(`[{i02:0x01},{i02:0x02}]`), &table))
	require.Len(t, table, 2)
	assert.Equal(t, int64(2), table[1].Port)
}

func TestUnmarshalDestinationShape(t *testing.T) {
	var se *SchemaError

	err := Unmarshal([]byte(`{}`), hostRecord{})
	require.ErrorAs(t, err, &se)
	assert.Contains(t, err.Error(), "non-nil pointer")

	var n int

	err = Unmarshal([]byte(`{}`), &n)
	require.ErrorAs(t, err, &se)
	assert.Contains(t, err.Error(), "struct or a slice of structs")

	var bad []int

	err = Unmarshal([]byte(`[]`), &bad)
	require.ErrorAs(t, err, &se)
	assert.Contains(t, err.Error(), "slice of structs")
}

func TestReadParseErrorsPropagate(t *testing.T) {
	_, err := Read[linkRecord]([]byte(`{en:}`))
	require.Error(t, err)

	var pe *swjson.ParseError

	assert.ErrorAs(t, err, &pe)
}

func TestReadSFPDiagnostics(t *testing.T) {
	type sfpRecord struct {
		Vendor  []string  `swos:"i01" kind:"str"`
		Type    []string  `swos:"i06" kind:"sfp_type"`
		Voltage []float64 `swos:"i09" kind:"int" scale:"1000"`
		TxPower []float64 `swos:"i0b" kind:"dbm"`
	}

	payload := []byte(`{i01:['4f454d2020202020'],i06:['313047207b303335327d6e6d'],i09:[0xcd8],i0b:[0x1f5]}`)

	got, err := Read[sfpRecord](payload)
	require.NoError(t, err)

	assert.Equal(t, []string{"OEM"}, got.Vendor)
	assert.Equal(t, []string{"10G 850nm"}, got.Type)
	assert.InDeltaSlice(t, []float64{3.288}, got.Voltage, 1e-9)
	assert.InDeltaSlice(t, []float64{-13.002}, got.TxPower, 1e-9)
}
