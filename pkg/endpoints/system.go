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

// System is the device-global sys.b document: identity, addressing, RSTP
// bridge state, management access control, IGMP, DHCP snooping, and the
// health sensors present on powered models. It has no array-valued members,
// so its port masks explode to the default port count unless the caller
// overrides it.
type System struct {
	AddressAcquisition string `swos:"iptp,i0a" kind:"option" options:"DHCP_FALLBACK,STATIC,DHCP" json:"address_acquisition"`
	StaticIP           string `swos:"ip,i09" kind:"ip" json:"static_ip"`
	IP                 string `swos:"cip,i02" kind:"ip" json:"ip"`
	Identity           string `swos:"id,i05" kind:"str" json:"identity"`
	Serial             string `swos:"sid,i04" kind:"str" json:"serial"`
	MAC                string `swos:"mac,i03" kind:"mac" json:"mac"`
	Model              string `swos:"brd,i07" kind:"str" json:"model"`
	Version            string `swos:"ver,i06" kind:"str" json:"version"`
	Revision           string `swos:"rev" kind:"str" json:"revision"`
	Uptime             int64  `swos:"upt,i01" kind:"int" json:"uptime"`
	BuildNumber        int64  `swos:"i0b" kind:"int" json:"build_number"`

	// RSTP bridge state.
	BridgePriority           int    `swos:"i0e" kind:"int" json:"bridge_priority"`
	ForwardReservedMulticast bool   `swos:"i2a" kind:"scalar_bool" json:"forward_reserved_multicast"`
	PortCostMode             string `swos:"i0f" kind:"option" options:"short,long" json:"port_cost_mode"`
	RootBridgePriority       int    `swos:"i10" kind:"int" json:"root_bridge_priority"`
	RootBridgeMAC            string `swos:"i11" kind:"mac" json:"root_bridge_mac"`

	// Management access control.
	AllowFromIP    string `swos:"i19" kind:"ip" json:"allow_from_ip"`
	AllowFromMask  int    `swos:"i1a" kind:"int" json:"allow_from_mask"`
	AllowFromPorts []bool `swos:"i12" kind:"bool" json:"allow_from_ports"`
	AllowFromVLAN  int    `swos:"i1b" kind:"int" json:"allow_from_vlan"`

	// IGMP snooping.
	IGMPSnooping  bool   `swos:"i17" kind:"scalar_bool" json:"igmp_snooping"`
	IGMPQuerier   bool   `swos:"i29" kind:"scalar_bool" json:"igmp_querier"`
	IGMPFastLeave []bool `swos:"i27" kind:"bool" json:"igmp_fast_leave"`
	IGMPVersion   string `swos:"i28" kind:"option" options:"v2,v3" json:"igmp_version"`

	MikroTikDiscoveryProtocol []bool `swos:"i08" kind:"bool" json:"mikrotik_discovery_protocol"`

	// DHCP snooping.
	DHCPSnoopingTrustedPorts  []bool `swos:"i13" kind:"bool" json:"dhcp_snooping_trusted_ports"`
	DHCPSnoopingAddInfoOption bool   `swos:"i14" kind:"scalar_bool" json:"dhcp_snooping_add_info_option"`

	// Health sensors. CPU temperature is a signed 16-bit reading; the PSU
	// voltages and powers arrive in hundredths and tenths of their units.
	CPUTemp          int     `swos:"temp,i22" kind:"int" bits:"16" json:"cpu_temp"`
	PSU1Current      int     `swos:"p1c,i16" kind:"int" json:"psu1_current"`
	PSU1Voltage      float64 `swos:"p1v,i15" kind:"int" scale:"100" json:"psu1_voltage"`
	PSU2Current      int     `swos:"p2c,i1f" kind:"int" json:"psu2_current"`
	PSU2Voltage      float64 `swos:"p2v,i1e" kind:"int" scale:"100" json:"psu2_voltage"`
	PSU1Power        float64 `swos:"p1p" kind:"int" scale:"10" json:"psu1_power"`
	PSU2Power        float64 `swos:"p2p" kind:"int" scale:"10" json:"psu2_power"`
	PowerConsumption float64 `swos:"i26" kind:"int" scale:"10" json:"power_consumption"`
}

func (System) Paths() []string { return []string{"sys.b"} }
