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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages export their
// patterns as constants so that callers can use the Is() and Has() functions
// to decide what went wrong:
//
//	err := dp.Run(req, nil)
//	if curated.Is(err, hardware.StageTimeout) {
//		...
//	}
//
// Has() is similar to Is() but checks the entire error chain, so a timeout
// wrapped inside another curated error is still found.
//
// The Error() implementation normalises the error chain. Duplicate adjacent
// parts of the message are removed, so that a package can wrap an error
// without worrying whether the error has already been prefixed with the
// package name.
package curated
