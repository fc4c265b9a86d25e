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
	"fmt"
	"reflect"
	"sort"

	"github.com/carverauto/swos/pkg/decode"
)

// Entry describes one registered endpoint: where the firmware serves it,
// what record it decodes to, and closures to decode a payload and to
// enumerate the record's fields.
type Entry struct {
	Name   string   // catalog name, e.g. "link"
	Record string   // record type name, e.g. "Link"
	Paths  []string // firmware paths, primary first
	Table  bool     // true when the document is a list of records
	Fields func() []decode.FieldInfo
	Decode func(data []byte, opts ...decode.Option) (any, error)
}

var (
	byPath  = make(map[string]Entry)
	ordered []Entry
)

func init() {
	registerSingle[Link]("link")
	registerSingle[System]("system")
	registerSingle[Stats]("stats")
	registerSingle[SFP]("sfp")
	registerSingle[Forwarding]("forwarding")
	registerSingle[RSTP]("rstp")
	registerSingle[LACP]("lacp")
	registerSingle[SNMP]("snmp")
	registerSingle[PoE]("poe")
	registerSingle[ACLStats]("acl-stats")
	registerTable[Hosts]("hosts")
	registerTable[DynamicHosts]("dynamic-hosts")
	registerTable[VLANs]("vlans")
	registerTable[IGMPGroups]("igmp-groups")
	registerTable[ACL]("acl")
}

// Register adds an endpoint to the dispatch table. It panics on a missing
// path list or a path already claimed by another endpoint: the catalog is
// assembled at init, where a collision is a programming defect.
func Register(e Entry) {
	if len(e.Paths) == 0 {
		panic(fmt.Sprintf("endpoints: %q registered without paths", e.Name))
	}

	for _, p := range e.Paths {
		if prev, ok := byPath[p]; ok {
			panic(fmt.Sprintf("endpoints: path %q claimed by both %q and %q", p, prev.Name, e.Name))
		}

		byPath[p] = e
	}

	ordered = append(ordered, e)
}

// Lookup resolves a firmware path to its registered endpoint.
func Lookup(path string) (Entry, bool) {
	e, ok := byPath[path]

	return e, ok
}

// Paths returns every registered firmware path, sorted.
func Paths() []string {
	out := make([]string, 0, len(byPath))
	for p := range byPath {
		out = append(out, p)
	}

	sort.Strings(out)

	return out
}

// Entries returns the catalog in registration order.
func Entries() []Entry {
	out := make([]Entry, len(ordered))
	copy(out, ordered)

	return out
}

// Decode dispatches a raw payload through the endpoint registered for
// path. The returned value is the endpoint's record type (a struct for
// single-record endpoints, a named slice for tables).
func Decode(path string, data []byte, opts ...decode.Option) (any, error) {
	e, ok := Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPath, path)
	}

	return e.Decode(data, opts...)
}

func registerSingle[T Endpoint](name string) {
	var zero T

	// Compiling the schema here makes a defective catalog fail at init,
	// not on first decode.
	decode.MustDescribe[T]()

	Register(Entry{
		Name:   name,
		Record: reflect.TypeFor[T]().Name(),
		Paths:  zero.Paths(),
		Fields: func() []decode.FieldInfo { return decode.MustDescribe[T]() },
		Decode: func(data []byte, opts ...decode.Option) (any, error) {
			return decode.Read[T](data, opts...)
		},
	})
}

func registerTable[S interface {
	Endpoint
	~[]E
}, E any](name string) {
	var zero S

	decode.MustDescribe[E]()

	Register(Entry{
		Name:   name,
		Record: reflect.TypeFor[E]().Name(),
		Paths:  zero.Paths(),
		Table:  true,
		Fields: func() []decode.FieldInfo { return decode.MustDescribe[E]() },
		Decode: func(data []byte, opts ...decode.Option) (any, error) {
			list, err := decode.ReadList[E](data, opts...)
			if err != nil {
				return nil, err
			}

			return S(list), nil
		},
	})
}
