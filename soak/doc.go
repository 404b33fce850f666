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

// Package soak repeatedly runs the datapath with random requests and checks
// the results of every stage.
//
// Every iteration makes three runs with the same request. The first run is
// clean. The second flips one random bit of the codeword presented to the
// decoder and the third flips two. For each run the following are checked:
//
//   - the ALU result and flags against the arithmetic and logic units called
//     directly
//   - the checksum against the table driven reference in the vectors package
//   - the decoder output and error flags against the expected error class
//
// Decoder checks assume that the checksum is Hamming encoded before decoding
// and are skipped if the datapath.encode preference is false.
package soak
