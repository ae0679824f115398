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

// Package edge holds the gap-state tag used throughout the affine DP and
// the two, deliberately different, tie-break orders used to select it.
package edge

import "seqalign.dev/affine/internal/satcost"

// Edge is the gap state a DP cell is entered with, or X when none applies
// (a sub-problem boundary, or "never reached").
type Edge int

const (
	R Edge = iota // replace/match
	D             // deletion
	I             // insertion
	X             // unknown / boundary
)

func (e Edge) String() string {
	switch e {
	case R:
		return "R"
	case D:
		return "D"
	case I:
		return "I"
	case X:
		return "X"
	default:
		return "invalid"
	}
}

// Set picks the incoming edge for a newly computed DP cell from its three
// candidate predecessor costs. Ties are resolved D, then I, then R: this
// order is load-bearing for byte-identical alignments and must not be
// reordered to match MinAdditionalCosts.
func Set(rdist, ddist, idist satcost.Cost) Edge {
	m := satcost.Min3(rdist, ddist, idist)
	switch {
	case ddist == m:
		return D
	case idist == m:
		return I
	case rdist == m:
		return R
	}
	return X
}

// MinAdditionalCosts picks the winning terminal state out of (r, d, i),
// after biasing whichever states don't match the required exit edge `to`
// with an additional gap_open (a state that isn't `to` would need to reopen
// a gap to actually terminate there). Ties are resolved R, then D, then I —
// a different order from Set, intentionally: see package edge doc.
func MinAdditionalCosts(r, d, i satcost.Cost, to Edge, open satcost.Cost) Edge {
	rdist, ddist, idist := r, d, i
	switch to {
	case D:
		rdist = satcost.Add(r, open)
		idist = satcost.Add(i, open)
	case I:
		rdist = satcost.Add(r, open)
		ddist = satcost.Add(d, open)
	default: // R or X: no adjustment
	}

	m := satcost.Min3(rdist, ddist, idist)
	switch {
	case rdist == m:
		return R
	case ddist == m:
		return D
	case idist == m:
		return I
	}
	return X
}
