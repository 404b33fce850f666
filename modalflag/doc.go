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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes, each mode having its own set of flags.
//
// Arguments are given to NewArgs() and then parsed with Parse(), one mode
// layer at a time. Sub-modes for the next layer are listed with
// AddSubModes() before calling Parse(). The first sub-mode listed is the
// default and is selected if the next argument is not a sub-mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VECTORS", "SOAK")
//	p, err := md.Parse()
//	...
//
//	switch md.Mode() {
//	case "SOAK":
//		md.NewMode()
//		n := md.AddInt("n", 1000, "number of iterations")
//		p, err := md.Parse()
//		...
//	}
//
// Flags belong to the layer in which they were added. Calling NewMode()
// starts a new layer with an empty flag set. Sub-mode names are compared
// without regard to case.
//
// The path of modes selected so far is available with Path(), for example
// "SOAK" or "RUN". A "-help" flag is handled automatically at every layer.
package modalflag
