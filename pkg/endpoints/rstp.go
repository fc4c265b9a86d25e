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

// RSTP reports the spanning-tree state of each port. Type and State pack
// two bits per port across a key pair.
type RSTP struct {
	Enabled      []bool   `swos:"i01" kind:"bool" json:"rstp"`
	Mode         []string `swos:"i05" kind:"bool_option" options:"STP,RSTP" json:"mode"`
	Role         []string `swos:"i02" kind:"option" options:"disabled,alternate,root,designated,backup" json:"role"`
	RootPathCost []int64  `swos:"i03" kind:"int" json:"root_path_cost"`
	Type         []string `swos:"i06" kind:"bitshift_option" high:"i07" options:"shared,point-to-point,edge" json:"type"`
	State        []string `swos:"i08" kind:"bitshift_option" high:"i09" options:"discarding,learning,forwarding" json:"state"`
}

func (RSTP) Paths() []string { return []string{"rstp.b"} }
