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

// Package vectors generates CRC32 test vectors for checking hardware
// implementations of the CRC engine. The reference checksum is computed with
// a lookup table and shares no code with the bit serial engine in
// hardware/crc.
//
// The Write() function produces a complete vector file: a report block for
// every word followed by a list of Verilog testbench task calls. Each part
// can also be written on its own with WriteReport() and WriteTestbench().
package vectors
