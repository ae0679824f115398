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

package affine

import "seqalign.dev/affine/internal/sink"

// Op describes a single edit step of an Alignment.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Replace Op = iota // A position of u is replaced by (aligned to) a position of v.
	Delete            // A position of u has no counterpart in v.
	Insert            // A position of v has no counterpart in u.
)

// Step is one edit step. For Replace, both UPos and VPos are meaningful.
// For Delete, only UPos is. For Insert, only VPos is.
type Step struct {
	Op   Op
	UPos int
	VPos int
}

// Alignment is the result of Align or BandAlign: the ordered sequence of
// edit steps that transforms u into v.
type Alignment struct {
	al *sink.Alignment
}

// Steps returns the edit steps of the alignment, in order.
func (a *Alignment) Steps() []Step {
	steps := make([]Step, len(a.al.Steps))
	for i, s := range a.al.Steps {
		steps[i] = Step{Op: Op(s.Op), UPos: s.UPos, VPos: s.VPos}
	}
	return steps
}

// ULen and VLen report how many positions of u and v, respectively, the
// alignment consumes.
func (a *Alignment) ULen() int { return a.al.ULen() }
func (a *Alignment) VLen() int { return a.al.VLen() }

// Score re-evaluates the cost of the alignment from scratch, independently
// of whatever search produced it: useful both as a correctness check and
// to re-score an existing alignment under different costs.
func (a *Alignment) Score(u, v []byte, costs Costs) int {
	return a.al.Score(u, v, costs.Match, costs.Mismatch, costs.Open, costs.Extend)
}
