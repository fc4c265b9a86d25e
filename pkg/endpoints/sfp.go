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

// SFP reports the EEPROM identification and DDM diagnostics of the fitted
// transceiver modules, one element per SFP cage. Power levels convert from
// the raw hundredths-of-microwatt readings to dBm; an empty cage reads 0.0.
type SFP struct {
	Vendor      []string  `swos:"i01" kind:"str" json:"vendor"`
	PartNumber  []string  `swos:"i02" kind:"str" json:"part_number"`
	Revision    []string  `swos:"i03" kind:"str" json:"revision"`
	Serial      []string  `swos:"i04" kind:"str" json:"serial"`
	Date        []string  `swos:"i05" kind:"str" json:"date"`
	Type        []string  `swos:"i06" kind:"sfp_type" json:"type"`
	Temperature []int64   `swos:"i08" kind:"int" json:"temperature"`
	Voltage     []float64 `swos:"i09" kind:"int" scale:"1000" json:"voltage"`
	TxBias      []int64   `swos:"i0a" kind:"int" json:"tx_bias"`
	TxPower     []float64 `swos:"i0b" kind:"dbm" scale:"10000" json:"tx_power"`
	RxPower     []float64 `swos:"i0c" kind:"dbm" scale:"10000" json:"rx_power"`
}

func (SFP) Paths() []string { return []string{"sfp.b"} }
