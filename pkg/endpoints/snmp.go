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

// SNMP is the device's SNMP agent configuration.
type SNMP struct {
	Enabled     bool   `swos:"i01" kind:"scalar_bool" json:"enabled"`
	Community   string `swos:"i02" kind:"str" json:"community"`
	ContactInfo string `swos:"i03" kind:"str" json:"contact_info"`
	Location    string `swos:"i04" kind:"str" json:"location"`
}

func (SNMP) Paths() []string { return []string{"snmp.b"} }
