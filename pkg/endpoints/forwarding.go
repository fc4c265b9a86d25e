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

// Forwarding is the per-port forwarding configuration: the port isolation
// matrix, MAC learning locks, mirroring, rate limits, and VLAN handling.
type Forwarding struct {
	// Isolation matrix: FromPortN marks which ports may receive traffic
	// entering on port N. The firmware caps the matrix at ten source
	// ports regardless of the device's port count.
	FromPort1  []bool `swos:"i01" kind:"bool" json:"from_port_1"`
	FromPort2  []bool `swos:"i02" kind:"bool" json:"from_port_2"`
	FromPort3  []bool `swos:"i03" kind:"bool" json:"from_port_3"`
	FromPort4  []bool `swos:"i04" kind:"bool" json:"from_port_4"`
	FromPort5  []bool `swos:"i05" kind:"bool" json:"from_port_5"`
	FromPort6  []bool `swos:"i06" kind:"bool" json:"from_port_6"`
	FromPort7  []bool `swos:"i07" kind:"bool" json:"from_port_7"`
	FromPort8  []bool `swos:"i08" kind:"bool" json:"from_port_8"`
	FromPort9  []bool `swos:"i09" kind:"bool" json:"from_port_9"`
	FromPort10 []bool `swos:"i0a" kind:"bool" json:"from_port_10"`

	PortLock    []bool `swos:"i10" kind:"bool" json:"port_lock"`
	LockOnFirst []bool `swos:"i11" kind:"bool" json:"lock_on_first"`

	MirrorIngress []bool `swos:"i12" kind:"bool" json:"mirror_ingress"`
	MirrorEgress  []bool `swos:"i13" kind:"bool" json:"mirror_egress"`
	MirrorTo      []bool `swos:"i14" kind:"bool" json:"mirror_to"`

	StormRate   []int64 `swos:"i1a" kind:"int" json:"storm_rate"`
	IngressRate []int64 `swos:"i1d" kind:"int" json:"ingress_rate"`
	EgressRate  []int64 `swos:"i1e" kind:"int" json:"egress_rate"`

	LimitUnknownUnicast   []bool `swos:"i1b" kind:"bool" json:"limit_unknown_unicast"`
	FloodUnknownMulticast []bool `swos:"i1c" kind:"bool" json:"flood_unknown_multicast"`

	VLANMode      []string `swos:"i15" kind:"option" options:"disabled,optional,strict" json:"vlan_mode"`
	VLANReceive   []string `swos:"i17" kind:"option" options:"any,only tagged,only untagged" json:"vlan_receive"`
	DefaultVLANID []int64  `swos:"i18" kind:"int" json:"default_vlan_id"`
	ForceVLANID   []bool   `swos:"i19" kind:"bool" json:"force_vlan_id"`
}

func (Forwarding) Paths() []string { return []string{"fwd.b"} }
