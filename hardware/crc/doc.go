// This file is part of Datapath.
//
// Datapath is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Datapath is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Datapath.  If not, see <https://www.gnu.org/licenses/>.

// Package crc implements a bit-serial CRC32 engine. The checksum is the
// IEEE 802.3 CRC32 using the reflected polynomial 0xedb88320, with an initial
// value and final XOR of 0xffffffff. The result is identical to the
// table-driven algorithm (and to hash/crc32 with the IEEE table) for the four
// bytes of the input word taken in little-endian order.
//
// The engine is a three state machine advanced one tick at a time:
//
//	Idle -> Processing -> Done -> Idle
//
// A word is accepted only when Ready() is true and both the Start and
// DataValid pins are asserted. Processing takes four byte-load ticks and 32
// bit ticks, the least significant bit of each byte first. On the Done tick
// the complemented accumulator is published and Done() is true for that tick
// only.
package crc
