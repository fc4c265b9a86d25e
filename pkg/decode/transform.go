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
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// defaultDBMScale converts the firmware's microwatt readings.
	defaultDBMScale = 10000

	zeroMAC = "000000000000"
)

var (
	errInvalidUTF8   = errors.New("hex payload is not valid UTF-8")
	errIPRange       = errors.New("value outside 32-bit address range")
	errNegativePower = errors.New("negative power reading")
)

// wavelengthPattern matches the {hex} runs some modules embed in their type
// string, e.g. "SFP-10G-LR {0352}nm".
var wavelengthPattern = regexp.MustCompile(`\{([0-9a-fA-F]+)\}`)

// boolsFromMask explodes the low n bits of mask, least-significant bit
// first, so index i is port i.
func boolsFromMask(mask int64, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = mask>>uint(i)&1 == 1
	}

	return out
}

// signCorrect interprets v as a two's-complement value of the given width.
func signCorrect(v int64, bits int) int64 {
	half := int64(1) << (bits - 1)
	if v >= half {
		v -= int64(1) << bits
	}

	return v
}

// combine64 recombines a counter split into 32-bit words.
func combine64(lo, hi int64) uint64 {
	return uint64(lo) + uint64(hi)<<32
}

// stringFromHex decodes a hex digit string as UTF-8 text. The firmware pads
// string fields with NUL bytes and occasionally trailing spaces; both are
// stripped.
func stringFromHex(s string) (string, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", errInvalidUTF8
	}

	out := strings.TrimRight(string(b), "\x00")

	return strings.TrimRightFunc(out, unicode.IsSpace), nil
}

// sfpTypeFromHex decodes a module type string. Unlike stringFromHex it keeps
// trailing whitespace and rewrites {hex} wavelength runs in decimal, e.g.
// "{0352}" to "850". Runs too long for 64 bits are left as-is.
func sfpTypeFromHex(s string) (string, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", errInvalidUTF8
	}

	out := strings.TrimRight(string(b), "\x00")

	return wavelengthPattern.ReplaceAllStringFunc(out, func(m string) string {
		n, err := strconv.ParseUint(m[1:len(m)-1], 16, 64)
		if err != nil {
			return m
		}

		return strconv.FormatUint(n, 10)
	}), nil
}

// macFromHex renders a hex string as an uppercase colon-separated address.
// The value is grouped as-is, without validating the digits: the firmware
// emits well-formed addresses and its own UI does no more than grouping. A
// dangling odd character is dropped.
func macFromHex(s string) string {
	s = strings.ToUpper(s)

	var b strings.Builder

	for i := 0; i+1 < len(s); i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}

		b.WriteString(s[i : i+2])
	}

	return b.String()
}

// partnerMACFromHex is macFromHex with "no partner" rendered as "".
func partnerMACFromHex(s string) string {
	if s == "" || s == zeroMAC {
		return ""
	}

	return macFromHex(s)
}

// ipFromUint32 renders a little-endian 32-bit value in dotted decimal.
func ipFromUint32(v int64) (string, error) {
	if v < 0 || v > math.MaxUint32 {
		return "", errIPRange
	}

	return fmt.Sprintf("%d.%d.%d.%d", byte(v), byte(v>>8), byte(v>>16), byte(v>>24)), nil
}

// partnerIPFromUint32 is ipFromUint32 with "no address" rendered as "".
func partnerIPFromUint32(v int64) (string, error) {
	if v == 0 {
		return "", nil
	}

	return ipFromUint32(v)
}

// optionAt selects a label by index. An index outside the table means the
// firmware knows a value this catalog does not; that resolves to absent, not
// an error.
func optionAt(labels []string, idx int64) string {
	if idx < 0 || idx >= int64(len(labels)) {
		return ""
	}

	return labels[idx]
}

// boolOptionsFromMask maps bit i of mask to labels[1] when set, labels[0]
// when clear, for the low n bits.
func boolOptionsFromMask(mask int64, labels [2]string, n int) []string {
	out := make([]string, n)
	for i := range out {
		if mask>>uint(i)&1 == 1 {
			out[i] = labels[1]
		} else {
			out[i] = labels[0]
		}
	}

	return out
}

// bitshiftOptionsFromMasks combines bit i of low and high into a 2-bit index
// per port. The index clamps to the last label: firmware tables carry
// duplicate trailing entries that the catalog deduplicates.
func bitshiftOptionsFromMasks(low, high int64, labels []string, n int) []string {
	out := make([]string, n)

	for i := range out {
		lowBit := low >> uint(i) & 1
		highBit := high >> uint(i) & 1

		idx := lowBit | highBit<<1
		if idx > int64(len(labels)-1) {
			idx = int64(len(labels) - 1)
		}

		out[i] = labels[idx]
	}

	return out
}

// dbmFromRaw converts a scaled power reading to dBm, rounded to 3 decimal
// places. Zero means a copper module or no reading and stays 0.0.
func dbmFromRaw(v int64, scale float64) (float64, error) {
	if v == 0 {
		return 0, nil
	}

	if v < 0 {
		return 0, errNegativePower
	}

	return math.Round(10*math.Log10(float64(v)/scale)*1000) / 1000, nil
}
