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

// VLANEntry is one configured VLAN with its port membership mask.
type VLANEntry struct {
	VLANID       int    `swos:"i01" kind:"int" json:"vlan_id"`
	IGMPSnooping bool   `swos:"i03" kind:"scalar_bool" json:"igmp_snooping"`
	Members      []bool `swos:"i02" kind:"bool" json:"members"`
}

// VLANs is the VLAN configuration table.
type VLANs []VLANEntry

func (VLANs) Paths() []string { return []string{"vlan.b"} }
