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

// Link reports per-port link status and negotiation settings. Firmware
// before 2.13 keys these fields by short names (en, nm, ...); later
// releases use the opaque iXX names. Both spellings are listed as aliases.
type Link struct {
	Enabled         []bool   `swos:"en,i01" kind:"bool" json:"enabled"`
	Name            []string `swos:"nm,i0a" kind:"str" json:"name"`
	LinkState       []string `swos:"lnk,i06" kind:"bitshift_option" high:"i15" options:"no link,link on,no link,link paused" json:"link_state"`
	AutoNegotiation []bool   `swos:"an,i02" kind:"bool" json:"auto_negotiation"`
	Speed           []string `swos:"spdc,i08" kind:"option" options:"10M,100M,1G,10G,200M,2.5G,5G" json:"speed"`
	ManSpeed        []string `swos:"spd,i05" kind:"option" options:"10M,100M,1G,10G,200M,2.5G,5G" json:"man_speed"`
	FullDuplex      []bool   `swos:"dpx,i07" kind:"bool" json:"full_duplex"`
	ManFullDuplex   []bool   `swos:"dpxc,i03" kind:"bool" json:"man_full_duplex"`
	FlowControlRx   []bool   `swos:"fctr,i12" kind:"bool" json:"flow_control_rx"`
	FlowControlTx   []bool   `swos:"fctc,i16" kind:"bool" json:"flow_control_tx"`
}

func (Link) Paths() []string { return []string{"link.b"} }
