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

// LACP is the per-port trunk configuration. Partner is the aggregation
// partner's address, empty while no partner is attached.
type LACP struct {
	Mode    []string `swos:"i01" kind:"option" options:"passive,active,static" json:"mode"`
	Group   []int64  `swos:"i03" kind:"int" json:"group"`
	Trunk   []int64  `swos:"i02" kind:"int" json:"trunk"`
	Partner []string `swos:"i04" kind:"partner_mac" json:"partner"`
}

func (LACP) Paths() []string { return []string{"lacp.b"} }
