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

// PoE is the power-over-ethernet state of the powered models (CSS318,
// CSS610 and the netPower line). Out packs the off/on/auto setting as two
// bits per port; power figures arrive in tenths of a watt and volt.
type PoE struct {
	Out          []string  `swos:"poec,i01" kind:"bitshift_option" high:"i02" options:"off,on,auto" json:"out"`
	VoltageLevel []string  `swos:"volt,i03" kind:"option" options:"auto,low,high" json:"voltage_level"`
	State        []string  `swos:"stat,i04" kind:"option" options:"disabled,waiting for load,powering on,delivering power,fault,overload,power cycle" json:"state"`
	LLDPEnabled  []bool    `swos:"lldp,i05" kind:"bool" json:"lldp_enabled"`
	LLDPPower    []float64 `swos:"i06" kind:"int" scale:"10" json:"lldp_power"`
	Voltage      []float64 `swos:"vltg,i07" kind:"int" scale:"10" json:"voltage"`
	Power        []float64 `swos:"pwr,i08" kind:"int" scale:"10" json:"power"`
	Priority     []int64   `swos:"prio,i09" kind:"int" json:"priority"`
	Current      []int64   `swos:"curr,i0a" kind:"int" json:"current"`
}

func (PoE) Paths() []string { return []string{"poe.b"} }
