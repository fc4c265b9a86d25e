package main

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"

	"github.com/carverauto/swos/pkg/decode"
	"github.com/carverauto/swos/pkg/devices"
	"github.com/carverauto/swos/pkg/endpoints"
)

// hexStringWidth is how many bytes the firmware reserves for a string
// value; shorter strings are NUL padded to it.
const hexStringWidth = 20

// generator synthesizes firmware payloads for one device model. Output is
// deterministic for a given rand source.
type generator struct {
	rng   *rand.Rand
	model devices.Model
}

func newGenerator(seed int64, model devices.Model) *generator {
	return &generator{
		rng:   rand.New(rand.NewSource(seed)),
		model: model,
	}
}

// portsFor returns the per-port array length an endpoint serves on this
// model. SFP diagnostics cover only the cages; PoE status covers only the
// powered copper ports.
func (g *generator) portsFor(e endpoints.Entry) int {
	switch e.Name {
	case "sfp":
		if g.model.SFP > 0 {
			return g.model.SFP
		}
	case "poe":
		if g.model.PoEPorts > 0 {
			return g.model.PoEPorts
		}
	}

	return g.model.Ports
}

// payload builds a complete quasi-JSON document for the endpoint: a
// single object, or an array of tableEntries objects for table
// endpoints.
func (g *generator) payload(e endpoints.Entry, tableEntries int) string {
	n := g.portsFor(e)
	fields := e.Fields()

	if !e.Table {
		return g.record(fields, n)
	}

	records := make([]string, 0, tableEntries)
	for i := 0; i < tableEntries; i++ {
		records = append(records, g.record(fields, n))
	}

	return "[" + strings.Join(records, ",") + "]"
}

func (g *generator) record(fields []decode.FieldInfo, n int) string {
	var parts []string
	for _, f := range fields {
		parts = append(parts, g.field(f, n)...)
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// field renders one schema field as key:value members, including the
// companion high-word or paired-mask key when the field declares one.
func (g *generator) field(f decode.FieldInfo, n int) []string {
	if f.Ports > 0 {
		n = f.Ports
	}

	key := f.Keys[0]

	switch f.Kind {
	case decode.KindBool, decode.KindBoolOption:
		return []string{pair(key, hexInt(g.mask(n)))}

	case decode.KindBitshiftOption:
		parts := []string{pair(key, hexInt(g.mask(n)))}
		if len(f.High) > 0 {
			parts = append(parts, pair(f.High[0], hexInt(g.mask(n))))
		}

		return parts

	case decode.KindScalarBool:
		return []string{pair(key, hexInt(int64(g.rng.Intn(2))))}

	case decode.KindInt:
		if f.IsSlice {
			return []string{pair(key, g.numberArray(n, func() int64 { return g.intValue(f) }))}
		}

		return []string{pair(key, hexInt(g.intValue(f)))}

	case decode.KindUint64:
		return g.counterField(f, key, n)

	case decode.KindStr:
		if f.IsSlice {
			vals := make([]string, n)
			for i := range vals {
				vals[i] = quote(hexString(g.portString(f, i)))
			}

			return []string{pair(key, bracket(vals))}
		}

		return []string{pair(key, quote(hexString(g.scalarString(f))))}

	case decode.KindSFPType:
		if f.IsSlice {
			vals := make([]string, n)
			for i := range vals {
				vals[i] = quote(hexString(g.sfpType()))
			}

			return []string{pair(key, bracket(vals))}
		}

		return []string{pair(key, quote(hexString(g.sfpType())))}

	case decode.KindOption:
		if f.IsSlice {
			return []string{pair(key, g.numberArray(n, func() int64 {
				return int64(g.rng.Intn(len(f.Options)))
			}))}
		}

		return []string{pair(key, hexInt(int64(g.rng.Intn(len(f.Options)))))}

	case decode.KindMAC:
		if f.IsSlice {
			vals := make([]string, n)
			for i := range vals {
				vals[i] = quote(g.macHex())
			}

			return []string{pair(key, bracket(vals))}
		}

		return []string{pair(key, quote(g.macHex()))}

	case decode.KindPartnerMAC:
		if f.IsSlice {
			vals := make([]string, n)
			for i := range vals {
				vals[i] = quote(g.partnerMACHex())
			}

			return []string{pair(key, bracket(vals))}
		}

		return []string{pair(key, quote(g.partnerMACHex()))}

	case decode.KindIP:
		if f.IsSlice {
			return []string{pair(key, g.numberArray(n, g.ipValue))}
		}

		return []string{pair(key, hexInt(g.ipValue()))}

	case decode.KindPartnerIP:
		if f.IsSlice {
			return []string{pair(key, g.numberArray(n, g.partnerIPValue))}
		}

		return []string{pair(key, hexInt(g.partnerIPValue()))}

	case decode.KindDBM:
		if f.IsSlice {
			return []string{pair(key, g.numberArray(n, func() int64 {
				return int64(g.rng.Intn(900) + 100)
			}))}
		}

		return []string{pair(key, hexInt(int64(g.rng.Intn(900)+100)))}
	}

	return nil
}

func (g *generator) counterField(f decode.FieldInfo, key string, n int) []string {
	low := func() int64 { return g.rng.Int63n(1 << 32) }
	high := func() int64 { return int64(g.rng.Intn(2)) }

	if !f.IsSlice {
		parts := []string{pair(key, hexInt(low()))}
		if len(f.High) > 0 {
			parts = append(parts, pair(f.High[0], hexInt(high())))
		}

		return parts
	}

	parts := []string{pair(key, g.numberArray(n, low))}
	if len(f.High) > 0 {
		parts = append(parts, pair(f.High[0], g.numberArray(n, high)))
	}

	return parts
}

// mask returns a random bitmask covering n ports.
func (g *generator) mask(n int) int64 {
	return g.rng.Int63n(int64(1) << uint(n))
}

func (g *generator) intValue(f decode.FieldInfo) int64 {
	switch f.Name {
	case "Port":
		return int64(g.rng.Intn(g.model.Ports) + 1)
	case "VLANID", "DefaultVLANID":
		return int64(g.rng.Intn(4094) + 1)
	case "Uptime":
		return int64(g.rng.Intn(10_000_000))
	}

	if f.Scale > 0 {
		return int64(g.rng.Intn(int(f.Scale*15) + 1))
	}

	return int64(g.rng.Intn(1000))
}

func (g *generator) scalarString(f decode.FieldInfo) string {
	switch f.Name {
	case "Identity":
		return "TestSwitch"
	case "Serial":
		return g.serial()
	case "Model":
		return strings.ToUpper(g.model.Name)
	case "Version":
		return "2.18"
	case "Revision":
		return "1.0"
	case "Community":
		return "public"
	case "ContactInfo":
		return "admin@example.com"
	case "Location":
		return "rack 1"
	default:
		return "Test"
	}
}

func (g *generator) portString(f decode.FieldInfo, i int) string {
	switch f.Name {
	case "Name":
		return g.model.PortName(i + 1)
	case "Vendor":
		return "OEM"
	case "PartNumber":
		return "S+85DLC03D"
	case "Revision":
		return "1.0"
	case "Serial":
		return g.serial()
	case "Date":
		return "23-06-14"
	default:
		return ""
	}
}

func (g *generator) serial() string {
	return fmt.Sprintf("HE%07d", g.rng.Intn(10_000_000))
}

// sfpType renders a module description with the wavelength in the
// firmware's {hex} notation, e.g. "10G {0352}nm" for 850nm.
func (g *generator) sfpType() string {
	wavelengths := []int{0x0352, 0x051e}

	return fmt.Sprintf("10G {%04x}nm", wavelengths[g.rng.Intn(len(wavelengths))])
}

func (g *generator) macHex() string {
	b := make([]byte, 6)
	_, _ = g.rng.Read(b)
	b[0] &= 0xfe // unicast

	return hex.EncodeToString(b)
}

func (g *generator) partnerMACHex() string {
	if g.rng.Intn(2) == 0 {
		return "000000000000"
	}

	return g.macHex()
}

// ipValue renders an address in 192.168.88.0/24 as the little-endian
// integer the firmware serves.
func (g *generator) ipValue() int64 {
	host := int64(g.rng.Intn(254) + 1)

	return host<<24 | 88<<16 | 168<<8 | 192
}

func (g *generator) partnerIPValue() int64 {
	if g.rng.Intn(2) == 0 {
		return 0
	}

	return g.ipValue()
}

func (g *generator) numberArray(n int, next func() int64) string {
	vals := make([]string, n)
	for i := range vals {
		vals[i] = hexInt(next())
	}

	return bracket(vals)
}

// hexString encodes s the way the firmware serves strings: hex digits of
// the UTF-8 bytes, NUL padded.
func hexString(s string) string {
	b := []byte(s)
	if len(b) < hexStringWidth {
		b = append(b, make([]byte, hexStringWidth-len(b))...)
	}

	return hex.EncodeToString(b)
}

func pair(key, value string) string {
	return key + ":" + value
}

func hexInt(v int64) string {
	return fmt.Sprintf("0x%02x", v)
}

func quote(s string) string {
	return "'" + s + "'"
}

func bracket(vals []string) string {
	return "[" + strings.Join(vals, ",") + "]"
}
