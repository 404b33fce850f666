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

// Package monitor steps the datapath one tick per key press and prints the
// state of every component after each tick.
//
// Keys:
//
//	space, enter	tick
//	a		pulse the ALU enable pin with the current request
//	c		pulse the CRC start pin with the most recent ALU result
//	h		pulse the decoder start pin with the most recent checksum
//	r		reset the datapath
//	q		quit
//
// A pulse raises the pin for the next tick only. Unrecognised keys are
// ignored.
package monitor
