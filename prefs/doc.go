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

// Package prefs provides typed preference values for the datapath and its
// drivers. Values implement the pref interface and are collected into a
// Group under a key.
//
// Values can be set from the command line with a preference string of the
// form:
//
//	"datapath.encode::false; datapath.tickLimit::128"
//
// The string is pushed onto the command line stack with
// PushCommandLineStack() and then applied to a group with
// Group.ApplyCommandLine(). Keys that are not claimed by any group remain on
// the stack and are returned by PopCommandLineStack().
//
// A Group can also be written to and loaded from a plain text file with one
// "key :: value" entry per line.
package prefs
