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

// IGMPGroup is one snooped multicast group and the ports subscribed to it.
type IGMPGroup struct {
	GroupAddress string `swos:"i01" kind:"ip" json:"group_address"`
	VLAN         int    `swos:"i03" kind:"int" json:"vlan"`
	MemberPorts  []bool `swos:"i02" kind:"bool" json:"member_ports"`
}

// IGMPGroups is the IGMP snooping table.
type IGMPGroups []IGMPGroup

func (IGMPGroups) Paths() []string { return []string{"!igmp.b"} }
