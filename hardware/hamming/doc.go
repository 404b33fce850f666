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

// Package hamming implements a Hamming(32,26) single error correcting,
// double error detecting (SECDED) decoder, together with the matching
// encoder.
//
// Bit positions in a codeword are numbered from one. Position p is held in
// bit p-1 of the 32 bit container. Positions 1, 2, 4, 8 and 16 hold the
// parity bits for the five positional groups: group k covers every position
// with bit k of the position number set. The remaining 26 positions below 32
// hold data bits, assigned in ascending order (position 3 is data bit 0,
// position 31 is data bit 25). Position 32 holds the overall parity bit,
// chosen so that the whole codeword has even parity.
//
// The decoder is a six state machine advanced one tick at a time:
//
//	Idle -> CalcParity -> CheckError -> [CorrectError] -> ExtractData -> Done -> Idle
//
// The six bit syndrome is {P32, P16, P8, P4, P2, P1}. The error classes are:
//
//	syndrome == 0                    no error
//	P32 == 1, syndrome[4:0] != 0     single error at position syndrome[4:0], corrected
//	P32 == 1, syndrome[4:0] == 0     single error in the overall parity bit, flagged only
//	P32 == 0, syndrome[4:0] != 0     double error, detected and not corrected
//
// Corruption of three or more bits is not detected reliably. An odd number of
// flipped bits looks like a single error and will be "corrected" to the wrong
// codeword. This is a limitation of the code and not something the decoder
// attempts to guard against.
package hamming
