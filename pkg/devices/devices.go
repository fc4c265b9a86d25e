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

// Package devices catalogs MikroTik SwOS and SwOS Lite switch models and
// their port layouts. The built-in table covers the CSS, FTC, and GPEN
// hardware; LoadCatalog merges a user-supplied YAML file over it so new
// hardware does not require a rebuild.
package devices

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	errModelName  = errors.New("model entry is missing a name")
	errModelPorts = errors.New("model port count must be at least 1")
	errModelSFP   = errors.New("model SFP count out of range")
	errModelPoE   = errors.New("model PoE port count out of range")
)

// Model describes the port layout of a single switch model.
type Model struct {
	// Name is the lowercase short model code, e.g. "css326".
	Name string `yaml:"name"`
	// Ports is the total port count, copper and SFP cages included.
	Ports int `yaml:"ports"`
	// SFP is the number of SFP/SFP+ cages at the end of the port range.
	SFP int `yaml:"sfp"`
	// PoEPorts is the number of copper ports with PoE-out, zero when the
	// model has none.
	PoEPorts int `yaml:"poe_ports"`
	// Lite marks SwOS Lite firmware (the CSS610 family and the FTC/GPEN
	// units) as opposed to full SwOS.
	Lite bool `yaml:"lite"`
}

// Copper returns the number of copper ports.
func (m Model) Copper() int {
	return m.Ports - m.SFP
}

// PortName returns the UI name of the 1-based port n: copper ports are
// named "Port1".."PortN" and the SFP cages follow as "SFP1"..
func (m Model) PortName(n int) string {
	if n > m.Copper() {
		return fmt.Sprintf("SFP%d", n-m.Copper())
	}

	return fmt.Sprintf("Port%d", n)
}

var (
	mu      sync.RWMutex
	catalog = builtins()
)

func builtins() map[string]Model {
	list := []Model{
		// SwOS
		{Name: "css106", Ports: 6, SFP: 1},
		{Name: "css305", Ports: 5, SFP: 1},
		{Name: "css305r2", Ports: 5, SFP: 1},
		{Name: "css309", Ports: 9, SFP: 1},
		{Name: "css310", Ports: 10, SFP: 2},
		{Name: "css310g", Ports: 10, SFP: 2},
		{Name: "css312", Ports: 12, SFP: 2},
		{Name: "css317", Ports: 17, SFP: 1},
		{Name: "css318fi", Ports: 18, SFP: 2},
		{Name: "css318g", Ports: 18, SFP: 2},
		{Name: "css318p", Ports: 18, SFP: 2, PoEPorts: 16},
		{Name: "css320p", Ports: 20, SFP: 2, PoEPorts: 18},
		{Name: "css326", Ports: 26, SFP: 2},
		{Name: "css326q", Ports: 26, SFP: 2},
		{Name: "css326xg", Ports: 26, SFP: 2},
		{Name: "css328", Ports: 28, SFP: 4},
		{Name: "css328p", Ports: 28, SFP: 4, PoEPorts: 24},
		{Name: "css354", Ports: 54, SFP: 6},
		// SwOS Lite
		{Name: "css606", Ports: 6, SFP: 1, Lite: true},
		{Name: "css610", Ports: 10, SFP: 2, Lite: true},
		{Name: "css610g", Ports: 10, SFP: 2, Lite: true},
		{Name: "css610out", Ports: 10, SFP: 2, Lite: true},
		{Name: "css610pi", Ports: 10, SFP: 2, Lite: true},
		{Name: "ftc11xg", Ports: 11, SFP: 1, Lite: true},
		{Name: "ftc21", Ports: 21, SFP: 1, Lite: true},
		{Name: "gpen21", Ports: 21, SFP: 1, Lite: true},
		{Name: "gper14i", Ports: 14, SFP: 1, Lite: true},
	}

	m := make(map[string]Model, len(list))
	for _, mod := range list {
		m[mod.Name] = mod
	}

	return m
}

// Lookup finds a model by name. Matching is case-insensitive and ignores
// surrounding whitespace.
func Lookup(name string) (Model, bool) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := catalog[normalize(name)]

	return m, ok
}

// Names returns the model names in the catalog in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// catalogFile is the on-disk shape of a user catalog.
type catalogFile struct {
	Models []Model `yaml:"models"`
}

// LoadCatalog reads a YAML model catalog and merges it over the built-in
// table. Entries with a known name replace the built-in definition; new
// names extend the catalog.
func LoadCatalog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read device catalog %s: %w", path, err)
	}

	var cf catalogFile

	if err := yaml.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("failed to parse device catalog %s: %w", path, err)
	}

	for i := range cf.Models {
		if err := validateModel(&cf.Models[i]); err != nil {
			return fmt.Errorf("device catalog %s: entry %d: %w", path, i, err)
		}
	}

	mu.Lock()
	defer mu.Unlock()

	for _, m := range cf.Models {
		m.Name = normalize(m.Name)
		catalog[m.Name] = m
	}

	return nil
}

func validateModel(m *Model) error {
	if normalize(m.Name) == "" {
		return errModelName
	}

	if m.Ports < 1 {
		return fmt.Errorf("%w: %q has %d", errModelPorts, m.Name, m.Ports)
	}

	if m.SFP < 0 || m.SFP > m.Ports {
		return fmt.Errorf("%w: %q has %d of %d total", errModelSFP, m.Name, m.SFP, m.Ports)
	}

	if m.PoEPorts < 0 || m.PoEPorts > m.Ports {
		return fmt.Errorf("%w: %q has %d of %d total", errModelPoE, m.Name, m.PoEPorts)
	}

	return nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
