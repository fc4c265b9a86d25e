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

// Kind names one of the field transforms the firmware's encoding calls for.
// The set is closed: the decoder matches every kind exhaustively.
type Kind string

const (
	// KindBool explodes an integer bitmask into per-port booleans,
	// least-significant bit first.
	KindBool Kind = "bool"

	// KindScalarBool maps a single integer to true when nonzero.
	KindScalarBool Kind = "scalar_bool"

	// KindInt passes an integer through, optionally two's-complement
	// corrected for a declared bit width and divided by a scale.
	KindInt Kind = "int"

	// KindUint64 recombines a 64-bit counter split into low and high
	// 32-bit words under separate keys.
	KindUint64 Kind = "uint64"

	// KindStr decodes a hex digit string to UTF-8 text, stripping trailing
	// NUL bytes and trailing whitespace.
	KindStr Kind = "str"

	// KindOption selects a label from a fixed table by integer index; an
	// index outside the table yields an absent value, not an error.
	KindOption Kind = "option"

	// KindBoolOption explodes a bitmask into per-port labels from a
	// two-entry table.
	KindBoolOption Kind = "bool_option"

	// KindBitshiftOption combines two bitmasks into per-port 2-bit indexes
	// into a label table, clamping past the table end.
	KindBitshiftOption Kind = "bitshift_option"

	// KindMAC renders a hex string as an uppercase colon-separated MAC.
	KindMAC Kind = "mac"

	// KindPartnerMAC is KindMAC with the all-zero address rendered empty.
	KindPartnerMAC Kind = "partner_mac"

	// KindIP renders a little-endian 32-bit integer in dotted decimal.
	KindIP Kind = "ip"

	// KindPartnerIP is KindIP with zero rendered empty.
	KindPartnerIP Kind = "partner_ip"

	// KindSFPType decodes a hex string like KindStr, keeping trailing
	// whitespace and replacing {hex} wavelength runs with decimal.
	KindSFPType Kind = "sfp_type"

	// KindDBM converts a scaled power reading to dBm.
	KindDBM Kind = "dbm"
)

// FieldInfo describes one compiled schema field, for tooling that needs to
// enumerate what a record type decodes (coverage reports, fixture
// generation).
type FieldInfo struct {
	Name    string   // Go field name
	Keys    []string // source key aliases, tried in order
	Kind    Kind
	High    []string // companion key aliases (uint64, bitshift_option)
	Options []string // label table (option kinds)
	Bits    int      // sign-correction width (int)
	Scale   float64  // divisor (int, dbm)
	Ports   int      // fixed per-field port count, 0 when inferred
	IsSlice bool     // whether the Go field holds a sequence
}
