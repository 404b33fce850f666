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

// Package logic implements the logic half of the ALU bank: bitwise
// operations, shifts, rotates and single bit manipulation. Like the
// arithmetic unit it is combinational.
//
// Shifts, rotates and bit manipulation take their amount from the low five
// bits of operand b. A shift or rotate by zero returns operand a unchanged
// with the carry clear. Otherwise the carry is the last bit shifted or
// rotated out of the word.
//
// The logic unit never produces an overflow.
package logic
