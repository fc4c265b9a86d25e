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

// Stats carries the per-port traffic counters. Byte and packet totals are
// 64-bit counters split across low/high keys; the instantaneous rates come
// pre-multiplied by the firmware and divide back out to bits and packets
// per second.
type Stats struct {
	RxRate       []float64 `swos:"i21" kind:"int" scale:"0.32" json:"rx_rate"`
	TxRate       []float64 `swos:"i22" kind:"int" scale:"0.32" json:"tx_rate"`
	RxPacketRate []float64 `swos:"i25" kind:"int" scale:"2.56" json:"rx_packet_rate"`
	TxPacketRate []float64 `swos:"i26" kind:"int" scale:"2.56" json:"tx_packet_rate"`

	RxBytes      []uint64 `swos:"i01" kind:"uint64" high:"i02" json:"rx_bytes"`
	TxBytes      []uint64 `swos:"i0f" kind:"uint64" high:"i10" json:"tx_bytes"`
	RxUnicasts   []uint64 `swos:"i05" kind:"uint64" high:"i27" json:"rx_unicasts"`
	TxUnicasts   []uint64 `swos:"i11" kind:"uint64" high:"i28" json:"tx_unicasts"`
	RxBroadcasts []uint64 `swos:"i07" kind:"uint64" high:"i29" json:"rx_broadcasts"`
	TxBroadcasts []uint64 `swos:"i14" kind:"uint64" high:"i2a" json:"tx_broadcasts"`
	RxMulticasts []uint64 `swos:"i08" kind:"uint64" high:"i2b" json:"rx_multicasts"`
	TxMulticasts []uint64 `swos:"i13" kind:"uint64" high:"i2c" json:"tx_multicasts"`

	RxTotalPackets []int64 `swos:"i23" kind:"int" json:"rx_total_packets"`
	TxTotalPackets []int64 `swos:"i24" kind:"int" json:"tx_total_packets"`

	RxPauses    []int64 `swos:"i17" kind:"int" json:"rx_pauses"`
	RxErrors    []int64 `swos:"i1d" kind:"int" json:"rx_errors"`
	RxFCSErrors []int64 `swos:"i1e" kind:"int" json:"rx_fcs_errors"`
	RxJabber    []int64 `swos:"i1c" kind:"int" json:"rx_jabber"`
	RxRunts     []int64 `swos:"i19" kind:"int" json:"rx_runts"`
	RxFragments []int64 `swos:"i1a" kind:"int" json:"rx_fragments"`
	RxTooLong   []int64 `swos:"i1b" kind:"int" json:"rx_too_long"`

	TxPauses              []int64 `swos:"i16" kind:"int" json:"tx_pauses"`
	TxFCSErrors           []int64 `swos:"i04" kind:"int" json:"tx_fcs_errors"`
	TxCollisions          []int64 `swos:"i1f" kind:"int" json:"tx_collisions"`
	TxSingleCollisions    []int64 `swos:"i15" kind:"int" json:"tx_single_collisions"`
	TxMultipleCollisions  []int64 `swos:"i18" kind:"int" json:"tx_multiple_collisions"`
	TxExcessiveCollisions []int64 `swos:"i12" kind:"int" json:"tx_excessive_collisions"`
	TxLateCollisions      []int64 `swos:"i20" kind:"int" json:"tx_late_collisions"`
	TxDeferred            []int64 `swos:"i06" kind:"int" json:"tx_deferred"`

	// Frame size histogram.
	Hist64        []int64 `swos:"i09" kind:"int" json:"hist_64"`
	Hist65To127   []int64 `swos:"i0a" kind:"int" json:"hist_65_127"`
	Hist128To255  []int64 `swos:"i0b" kind:"int" json:"hist_128_255"`
	Hist256To511  []int64 `swos:"i0c" kind:"int" json:"hist_256_511"`
	Hist512To1023 []int64 `swos:"i0d" kind:"int" json:"hist_512_1023"`
	Hist1024ToMax []int64 `swos:"i0e" kind:"int" json:"hist_1024_max"`
}

func (Stats) Paths() []string { return []string{"!stats.b", "stats.b"} }
