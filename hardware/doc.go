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

// Package hardware is the base package for the datapath. The three
// components live in sub-packages and are owned by the Datapath type:
//
//	hardware/alu		ALU bank controller plus arithmetic and logic units
//	hardware/crc		bit serial CRC32 engine
//	hardware/hamming	Hamming(32,26) SECDED decoder
//
// Every component is a synchronous state machine advanced by its Step()
// function. Datapath.Step() advances all three in lock step and is the only
// notion of time in the system.
//
// The Run() function chains the components together: the ALU result is the
// CRC input and the checksum is presented to the Hamming decoder. Each stage
// is started only when it is ready and the driver waits for the stage to
// complete before moving to the next.
package hardware
