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

// Package hirschberg implements the divide-and-conquer driver that fills
// Ctab[0..vlen], the per-column table of crossing rows for an optimal
// affine alignment, using only linear auxiliary memory.
//
// Callers are expected to have already handled the trivial ulen==0,
// vlen==0, ulen==1 and vlen==1 cases: BuildCtab assumes ulen>=2, vlen>=2.
package hirschberg

import (
	"seqalign.dev/affine/internal/byteview"
	"seqalign.dev/affine/internal/column"
	"seqalign.dev/affine/internal/config"
	"seqalign.dev/affine/internal/ctabheuristic"
	"seqalign.dev/affine/internal/edge"
	"seqalign.dev/affine/internal/satcost"
)

// BuildCtab computes Ctab[0..vlen] for u, v under costs, and returns the
// alignment cost.
func BuildCtab(u, v byteview.ByteView, costs config.Costs) ([]int, satcost.Cost) {
	ulen, vlen := u.Len(), v.Len()
	ctab := make([]int, vlen+1)
	ctab[vlen] = ulen

	buf := column.NewBuffers(ulen)
	cost := evaluateCrosspoints(u, 0, ulen, v, 0, vlen, ctab, 0, costs, edge.X, edge.X, buf)

	gapCostlierThanMismatch := costs.Open > costs.Mismatch-costs.Match
	ctab[0] = ctabheuristic.DetermineCtab0(ctab[1], ctab[2], v.At(0), u, gapCostlierThanMismatch)

	return ctab, cost
}

// evaluateCrosspoints is the recursive driver. ctab is a slice of length
// vlen+1 local to this sub-problem: ctab[vlen] must already hold a valid
// value on entry (set either by BuildCtab at the top level or by the
// caller's own crosspoint fixup), and the function fills ctab[1..vlen-1].
func evaluateCrosspoints(u byteview.ByteView, ustart, ulen int, v byteview.ByteView, vstart, vlen int, ctab []int, rowoffset int, costs config.Costs, from, to edge.Edge, buf *column.Buffers) satcost.Cost {
	if vlen < 2 {
		return 0
	}

	midcol := vlen / 2
	dist := column.Sweep(u.Slice(ustart, ulen), v.Slice(vstart, vlen), costs, midcol, from, buf)

	open := satcost.Cost(costs.Open)
	last := buf.Atab[ulen]
	bottomtype := edge.MinAdditionalCosts(last.Rvalue, last.Dvalue, last.Ivalue, to, open)

	var node column.Rnode
	switch bottomtype {
	case edge.R:
		node = buf.Rtab[ulen].R
	case edge.D:
		node = buf.Rtab[ulen].D
	case edge.I:
		node = buf.Rtab[ulen].I
	default:
		panic("hirschberg: the impossible happened: minAdditionalCosts returned X")
	}
	midrow, midtype := node.Idx, node.Edge

	ctab[midcol] = rowoffset + midrow
	if midrow == 0 {
		for c := midcol - 1; c > 0; c-- {
			ctab[c] = ctab[midcol]
		}
	} else {
		switch midtype {
		case edge.R:
			if midcol > 1 {
				if ctab[midcol] == 0 {
					ctab[midcol-1] = 0
				} else {
					ctab[midcol-1] = ctab[midcol] - 1
				}
			}
			evaluateCrosspoints(u, ustart, midrow-1, v, vstart, midcol-1, ctab, rowoffset, costs, from, midtype, buf)
		case edge.D:
			evaluateCrosspoints(u, ustart, midrow-1, v, vstart, midcol, ctab, rowoffset, costs, from, midtype, buf)
		case edge.I:
			if midcol > 1 {
				ctab[midcol-1] = ctab[midcol]
			}
			evaluateCrosspoints(u, ustart, midrow, v, vstart, midcol-1, ctab, rowoffset, costs, from, midtype, buf)
		default:
			panic("hirschberg: the impossible happened: unknown midtype")
		}
	}

	evaluateCrosspoints(u, ustart+midrow, ulen-midrow, v, vstart+midcol, vlen-midcol, ctab[midcol:], rowoffset+midrow, costs, midtype, to, buf)

	return dist
}
