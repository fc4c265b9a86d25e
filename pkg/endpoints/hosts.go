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

// HostEntry is one row of a MAC table: the address and the port it was
// seen or pinned on.
type HostEntry struct {
	MAC  string `swos:"i01" kind:"mac" json:"mac"`
	Port int    `swos:"i02" kind:"int" json:"port"`
}

// Hosts is the statically configured MAC table.
type Hosts []HostEntry

func (Hosts) Paths() []string { return []string{"host.b"} }

// DynamicHosts is the learned MAC table.
type DynamicHosts []HostEntry

func (DynamicHosts) Paths() []string { return []string{"!dhost.b"} }
