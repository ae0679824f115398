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

// Package sink holds the Alignment result type: the opaque sink that
// receives edit steps from reconstruction, kept in its own package (away
// from internal/recon, internal/square, ...) to avoid import cycles between
// the packages that produce steps and the packages that consume them.
package sink

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op

// Op identifies a single edit step in an alignment.
type Op int

const (
	Replace Op = iota
	Delete
	Insert
)

// Step is one edit operation, with the positions in u and v it consumes.
// For Replace, both UPos and VPos are meaningful. For Delete, only UPos is.
// For Insert, only VPos is.
type Step struct {
	Op   Op
	UPos int
	VPos int
}

// Alignment is the ordered sequence of edit steps that transforms u into v.
type Alignment struct {
	Steps []Step
}

func (a *Alignment) AppendReplace(upos, vpos int) {
	a.Steps = append(a.Steps, Step{Op: Replace, UPos: upos, VPos: vpos})
}

func (a *Alignment) AppendDelete(upos int) {
	a.Steps = append(a.Steps, Step{Op: Delete, UPos: upos})
}

func (a *Alignment) AppendInsert(vpos int) {
	a.Steps = append(a.Steps, Step{Op: Insert, VPos: vpos})
}

// Clone returns a deep copy of a.
func (a *Alignment) Clone() *Alignment {
	c := &Alignment{Steps: make([]Step, len(a.Steps))}
	copy(c.Steps, a.Steps)
	return c
}

// ULen and VLen report how many positions of u and v, respectively, the
// alignment consumes.
func (a *Alignment) ULen() int {
	n := 0
	for _, s := range a.Steps {
		if s.Op == Replace || s.Op == Delete {
			n++
		}
	}
	return n
}

func (a *Alignment) VLen() int {
	n := 0
	for _, s := range a.Steps {
		if s.Op == Replace || s.Op == Insert {
			n++
		}
	}
	return n
}

// Score is the independent scoring function spec §6/§8 requires: it
// re-evaluates the cost of the alignment from scratch, character by
// character, without consulting whatever DP produced it.
func (a *Alignment) Score(u, v []byte, match, mismatch, open, extend int) int {
	cost := 0
	gapOp := Replace // last gap op seen; Replace stands for "not in a gap".
	for _, s := range a.Steps {
		switch s.Op {
		case Replace:
			if u[s.UPos] == v[s.VPos] {
				cost += match
			} else {
				cost += mismatch
			}
			gapOp = Replace
		case Delete, Insert:
			if gapOp != s.Op {
				cost += open
				gapOp = s.Op
			}
			cost += extend
		}
	}
	return cost
}
