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

package hardware

import (
	"fmt"
	"io"

	"github.com/jetsetilly/datapath/prefs"
)

// default values for the datapath preferences
const (
	DefaultEncode    = true
	DefaultTickLimit = 64
	DefaultTrace     = false
)

// Preferences defines and collates all the preference values used by the
// datapath driver.
type Preferences struct {
	grp *prefs.Group

	// hamming encode the low 26 bits of the checksum before it is handed to
	// the decoder. when false the checksum is presented as a raw codeword
	Encode prefs.Bool

	// the number of ticks a stage may take before the driver gives up
	TickLimit prefs.Int

	// record a trace of every run
	Trace prefs.Bool
}

func (p *Preferences) String() string {
	return p.grp.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Any matching values on the top of the command line
// preference stack are applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		grp: prefs.NewGroup(),
	}

	p.TickLimit.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("tick limit must be positive")
		}
		return nil
	})

	p.grp.Add("datapath.encode", &p.Encode)
	p.grp.Add("datapath.tickLimit", &p.TickLimit)
	p.grp.Add("datapath.trace", &p.Trace)

	p.SetDefaults()

	if err := p.grp.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults resets every preference to its default value.
func (p *Preferences) SetDefaults() {
	// the defaults are known good values so errors are not possible
	_ = p.Encode.Set(DefaultEncode)
	_ = p.TickLimit.Set(DefaultTickLimit)
	_ = p.Trace.Set(DefaultTrace)
}

// Set the preference indexed by key. The value can be of the preference's
// native type or a string.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.grp.Set(key, v)
}

// Load preferences previously written by Save().
func (p *Preferences) Load(r io.Reader) error {
	return p.grp.Load(r)
}

// Save current preferences.
func (p *Preferences) Save(w io.Writer) error {
	return p.grp.Write(w)
}

func (p *Preferences) tickLimit() int {
	return p.TickLimit.Get().(int)
}

func (p *Preferences) encode() bool {
	return p.Encode.Get().(bool)
}
