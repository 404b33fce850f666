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

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/jetsetilly/datapath/curated"
)

// every signal is drawn in its own lane. the signal occupies the lower part
// of the lane leaving a gap to the next lane
const (
	laneHeight = 1.0
	laneSignal = 0.8
)

// dimensions of the PNG image
const (
	pngWidth       = 12 * vg.Inch
	pngLaneHeight  = 0.5 * vg.Inch
	pngExtraHeight = 1.5 * vg.Inch
)

// WritePNG writes the recording as a PNG image with one step plot per
// signal. Multi-bit signals are scaled to the height of their lane.
func (rec *Recorder) WritePNG(w io.Writer) error {
	if len(rec.samples) == 0 {
		return curated.Errorf(NoSamples)
	}

	p := plot.New()
	p.Title.Text = "datapath trace"
	p.X.Label.Text = "tick"
	p.Y.Min = 0
	p.Y.Max = float64(len(rec.signals)) * laneHeight

	labels := make([]plot.Tick, 0, len(rec.signals))

	for i, sig := range rec.signals {
		// first signal at the top
		base := float64(len(rec.signals)-1-i) * laneHeight

		xys := make(plotter.XYs, len(rec.samples))
		for j, s := range rec.samples {
			xys[j].X = float64(rec.ticks[j])
			xys[j].Y = base + laneSignal*float64(s[i])/float64(sig.mask())
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return curated.Errorf(WriteFail, "png", err)
		}
		line.StepStyle = plotter.PostStep
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)

		labels = append(labels, plot.Tick{Value: base + laneSignal/2, Label: sig.Name})
	}

	p.Y.Tick.Marker = plot.ConstantTicks(labels)

	c := vgimg.New(pngWidth, pngExtraHeight+vg.Length(len(rec.signals))*pngLaneHeight)
	p.Draw(draw.New(c))

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(w); err != nil {
		return curated.Errorf(WriteFail, "png", err)
	}

	return nil
}
