// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package editflags classifies each step of an alignment and groups the
// non-matching runs into context-padded hunks, the grouping format's
// pretty-printer uses to decide which stretches of a long alignment to
// show in full and which to elide.
package editflags

import "fmt"

// Flag describes what kind of step an alignment step is.
type Flag uint8

const (
	None     Flag = 0
	Delete   Flag = 1 << iota
	Insert        // never combined with Delete: a step is one or the other.
	Mismatch      // a Replace step whose u and v bytes differ.
)

func (f Flag) String() string {
	switch f {
	case None:
		return "none"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case Mismatch:
		return "mismatch"
	default:
		return fmt.Sprint(uint8(f))
	}
}

// Step is the minimal shape FromSteps needs from an alignment step: this
// package doesn't import the alignment's own step type so that both
// internal producers and the public API can feed it without creating an
// import cycle.
type Step struct {
	Delete bool // u consumed, v not.
	Insert bool // v consumed, u not.
	UPos   int
	VPos   int
}

// FromSteps classifies every step, given the original u and v byte slices
// the alignment aligns.
func FromSteps(steps []Step, u, v []byte) []Flag {
	flags := make([]Flag, len(steps))
	for i, s := range steps {
		switch {
		case s.Delete:
			flags[i] = Delete
		case s.Insert:
			flags[i] = Insert
		case u[s.UPos] != v[s.VPos]:
			flags[i] = Mismatch
		}
	}
	return flags
}

// Hunk describes a run of steps to render, [Start, End) into the
// alignment's step slice, together with how many of those steps are edits
// (as opposed to context).
type Hunk struct {
	Start, End int
	Edits      int
}

// Hunks groups the non-None runs in flags into hunks padded with up to
// context steps of surrounding None (matching) steps on either side,
// merging hunks whose context windows overlap.
func Hunks(flags []Flag, context int) (hunks []Hunk, edits int) {
	n := len(flags)
	for s := 0; s < n; s++ {
		if flags[s] == None {
			continue
		}
		start, end := max(0, s-context), min(n, s+context+1)
		if len(hunks) > 0 && hunks[len(hunks)-1].End >= start {
			hunks[len(hunks)-1].End = end
		} else {
			hunks = append(hunks, Hunk{Start: start, End: end})
		}
	}
	for i := range hunks {
		for s := hunks[i].Start; s < hunks[i].End; s++ {
			if flags[s] != None {
				hunks[i].Edits++
			}
		}
		edits += hunks[i].Edits
	}
	return hunks, edits
}
