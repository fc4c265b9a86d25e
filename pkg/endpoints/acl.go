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

// ACLRule is one entry of the access control list. Match fields pair a
// value with its mask or prefix; the partner kinds render an unset matcher
// as an empty string rather than the zero address.
type ACLRule struct {
	FromPorts []bool `swos:"i01" kind:"bool" json:"from_ports"`

	// Layer 2 match.
	MACSrc     string `swos:"i02" kind:"partner_mac" json:"mac_src"`
	MACSrcMask string `swos:"i03" kind:"mac" json:"mac_src_mask"`
	MACDst     string `swos:"i04" kind:"partner_mac" json:"mac_dst"`
	MACDstMask string `swos:"i05" kind:"mac" json:"mac_dst_mask"`
	EtherType  int    `swos:"i06" kind:"int" json:"ethertype"`

	// VLAN match.
	VLAN     string `swos:"i07" kind:"option" options:"any,present,not present" json:"vlan"`
	VLANID   int    `swos:"i08" kind:"int" json:"vlan_id"`
	Priority int    `swos:"i09" kind:"int" json:"priority"`

	// Layer 3/4 match.
	IPSrc       string `swos:"i0a" kind:"partner_ip" json:"ip_src"`
	IPSrcPrefix int    `swos:"i0b" kind:"int" json:"ip_src_prefix"`
	IPSrcPort   int    `swos:"i0c" kind:"int" json:"ip_src_port"`
	IPDst       string `swos:"i0d" kind:"partner_ip" json:"ip_dst"`
	IPDstPrefix int    `swos:"i0e" kind:"int" json:"ip_dst_prefix"`
	IPDstPort   int    `swos:"i0f" kind:"int" json:"ip_dst_port"`
	Protocol    int    `swos:"i10" kind:"int" json:"protocol"`
	DSCP        int    `swos:"i11" kind:"int" json:"dscp"`

	// Actions.
	Drop        bool `swos:"i12" kind:"scalar_bool" json:"drop"`
	MirrorTo    int  `swos:"i13" kind:"int" json:"mirror_to"`
	RedirectTo  int  `swos:"i14" kind:"int" json:"redirect_to"`
	SetVLANID   int  `swos:"i15" kind:"int" json:"set_vlan_id"`
	SetPriority int  `swos:"i16" kind:"int" json:"set_priority"`
	SetDSCP     int  `swos:"i17" kind:"int" json:"set_dscp"`

	AccountAs string `swos:"i18" kind:"option" options:"none,#1,#2,#3,#4" json:"account_as"`
}

// ACL is the ordered rule table from acl.b.
type ACL []ACLRule

func (ACL) Paths() []string { return []string{"acl.b"} }

// ACLStats carries the four ACL accounting counters, one element per rule
// slot that accounts to the counter.
type ACLStats struct {
	Counter1 []int64 `swos:"i01" kind:"int" json:"counter_1"`
	Counter2 []int64 `swos:"i02" kind:"int" json:"counter_2"`
	Counter3 []int64 `swos:"i03" kind:"int" json:"counter_3"`
	Counter4 []int64 `swos:"i04" kind:"int" json:"counter_4"`
}

func (ACLStats) Paths() []string { return []string{"!aclstats.b", "aclstats.b"} }
