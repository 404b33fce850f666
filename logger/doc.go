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

// Package logger is the central log for the datapath. There is only one log
// for the entire program and entries are added with the Log() and Logf()
// functions.
//
// Entries are a tag and a detail string. The tag is usually the name of the
// component making the entry. Adjacent entries that are identical are
// collapsed into a single entry with a repeat count.
//
// Logging is gated by the Permission interface. Components that can be
// silenced should accept a Permission at construction time and pass it to
// every logging call. The Allow value can be used when an entry should always
// be made.
package logger
