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

// Package arithmetic implements the arithmetic half of the ALU bank. The unit
// is combinational: Evaluate() is a pure function of its operands and the
// operation code.
//
// All operations are 32 bits wide and wrap around. Carry is recovered by
// performing the operation in a 33 bit extended domain and taking bit 32 of
// the extended result. For subtraction the same bit is the borrow.
//
// Overflow is meaningful only when the operands are interpreted as signed
// two's complement values. It is advisory and never traps.
//
// Division is not supported.
package arithmetic
