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

// Package trace records the value of named signals on every tick of the
// datapath and writes the recording out in one of several formats.
//
// A Recorder satisfies the Sampler interface and is attached to the datapath
// with AttachTracer(). Signal names use a "component.signal" form, for
// example "crc.done". The component part is used as the scope name in VCD
// output.
//
// Output formats:
//
//	WriteVCD	Value Change Dump text, readable by GTKWave and similar
//	WriteWAV	one PCM channel per signal, for logic analyser software that
//			accepts audio captures
//	WritePNG	stacked step plot of every signal
package trace
