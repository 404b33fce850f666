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

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jetsetilly/datapath/curated"
)

// list of curated error patterns returned by the Group type.
const (
	UnknownKey = "prefs: unknown key (%s)"
	BadEntry   = "prefs: malformed entry on line %d"
	SetFailed  = "prefs: %s: %v"
)

// the separator used between key and value when a group is written out.
const fieldSep = " :: "

// Group is a collection of preference values indexed by key.
type Group struct {
	entries map[string]pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]pref),
	}
}

// Add a preference value to the group. Adding an existing key replaces the
// earlier value.
func (g *Group) Add(key string, p pref) {
	g.entries[key] = p
}

func (g *Group) keys() []string {
	k := make([]string, 0, len(g.entries))
	for key := range g.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Set the value of the preference indexed by key.
func (g *Group) Set(key string, v Value) error {
	p, ok := g.entries[key]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf(SetFailed, key, err)
	}
	return nil
}

// ApplyCommandLine takes any value on the top of the command line stack that
// matches a key in the group.
func (g *Group) ApplyCommandLine() error {
	for _, key := range g.keys() {
		if ok, v := GetCommandLinePref(key); ok {
			if err := g.Set(key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reset every value in the group to the zero value for its type. Hooks are
// called for every value.
func (g *Group) Reset() error {
	for _, key := range g.keys() {
		if err := g.entries[key].Reset(); err != nil {
			return curated.Errorf(SetFailed, key, err)
		}
	}
	return nil
}

// Write every entry in the group, sorted by key.
func (g *Group) Write(w io.Writer) error {
	for _, key := range g.keys() {
		if _, err := io.WriteString(w, fmt.Sprintf("%s%s%s\n", key, fieldSep, g.entries[key])); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Load entries previously created by Write(). Blank lines and lines beginning
// with '#' are ignored. Keys not in the group are an error.
func (g *Group) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		kv := strings.SplitN(s, strings.TrimSpace(fieldSep), 2)
		if len(kv) != 2 {
			return curated.Errorf(BadEntry, line)
		}

		if err := g.Set(strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

func (g *Group) String() string {
	s := strings.Builder{}
	g.Write(&s)
	return s.String()
}
