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


// Package paths prepares paths to datapath resources, such as the default
// location of trace files.
//
// The ResourcePath() function prepends the supplied resource with the base
// resource directory. If a directory called ".datapath" exists in the
// current directory then that is used, otherwise the user's config
// directory is used. For example, on a modern Linux system:
//
//	paths.ResourcePath("traces", "run.vcd")
//
// returns
//
//	/home/user/.config/datapath/traces/run.vcd
package paths
