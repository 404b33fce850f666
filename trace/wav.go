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

package trace

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/datapath/curated"
)

// WAV output parameters. every tick is held for WAVSamplesPerTick samples so
// that each level is visible as a flat step
const (
	WAVSampleRate     = 48000
	WAVBitDepth       = 16
	WAVSamplesPerTick = 8
)

// the largest amplitude of a 16 bit sample
const wavFullScale = 1<<(WAVBitDepth-1) - 1

// WAVLevel returns the sample value used to represent v. The full range of
// the signal is scaled to the positive half of the sample range.
func WAVLevel(sig Signal, v uint32) int {
	return int(uint64(v&sig.mask()) * wavFullScale / uint64(sig.mask()))
}

// WriteWAV writes the recording as a PCM WAV file with one channel per
// signal.
func (rec *Recorder) WriteWAV(ws io.WriteSeeker) error {
	if len(rec.samples) == 0 {
		return curated.Errorf(NoSamples)
	}

	numChans := len(rec.signals)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChans,
			SampleRate:  WAVSampleRate,
		},
		SourceBitDepth: WAVBitDepth,
		Data:           make([]int, 0, len(rec.samples)*WAVSamplesPerTick*numChans),
	}

	for _, s := range rec.samples {
		for r := 0; r < WAVSamplesPerTick; r++ {
			for i, sig := range rec.signals {
				buf.Data = append(buf.Data, WAVLevel(sig, s[i]))
			}
		}
	}

	// audio format 1 is uncompressed PCM
	enc := wav.NewEncoder(ws, WAVSampleRate, WAVBitDepth, numChans, 1)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WriteFail, "wav", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf(WriteFail, "wav", err)
	}

	return nil
}
