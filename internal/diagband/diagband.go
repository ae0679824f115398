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

// Package diagband implements the diagonal-band-constrained variant of the
// affine alignment: the same recurrences as internal/hirschberg, but every
// DP cell outside [left, right] of the main diagonal is treated as
// unreachable, which keeps the recursion within whatever sub-band the
// optimal path actually used.
//
// Unlike the original algorithm this was distilled from, crosspoints here
// are recorded in the same row-per-column shape internal/hirschberg and
// internal/recon already use (see DESIGN.md for the rationale): there is
// no separate diagonal-indexed table type, just a band-restricted crossing
// row table.
package diagband

import (
	"seqalign.dev/affine/internal/byteview"
	"seqalign.dev/affine/internal/column"
	"seqalign.dev/affine/internal/config"
	"seqalign.dev/affine/internal/ctabheuristic"
	"seqalign.dev/affine/internal/edge"
	"seqalign.dev/affine/internal/satcost"
	"seqalign.dev/affine/internal/sink"
	"seqalign.dev/affine/internal/square"
)

// BuildCrossingTable computes the band-restricted crossing-row table for
// u, v under costs and band, and returns the alignment cost.
func BuildCrossingTable(u, v byteview.ByteView, costs config.Costs, band config.Band) ([]int, satcost.Cost) {
	ulen, vlen := u.Len(), v.Len()
	ctab := make([]int, vlen+1)
	ctab[vlen] = ulen

	buf := column.NewBuffers(ulen)
	cost := evaluateCrosspoints(u, v, 0, ulen, 0, vlen, ctab, 0, costs, edge.X, edge.X, buf, band, ulen)

	gapCostlierThanMismatch := costs.Open > costs.Mismatch-costs.Match
	ctab[0] = ctabheuristic.DetermineCtab0(ctab[1], ctab[2], v.At(0), u, gapCostlierThanMismatch)

	return ctab, cost
}

// Distance computes only the alignment cost, restricted to the band, using
// a single linear-space sweep: no recursion and no crossing-row table.
func Distance(u, v byteview.ByteView, costs config.Costs, band config.Band) satcost.Cost {
	ulen, vlen := u.Len(), v.Len()
	if ulen == 0 {
		return satcost.Add(satcost.Cost(costs.Open), satcost.Cost(vlen*costs.Extend))
	}
	if vlen == 0 {
		return satcost.Add(satcost.Cost(costs.Open), satcost.Cost(ulen*costs.Extend))
	}
	buf := column.NewBuffers(ulen)
	return column.SweepBanded(u, v, costs, vlen/2, edge.X, buf, &band, 0, 0)
}

func evaluateCrosspoints(u, v byteview.ByteView, ustart, ulen, vstart, vlen int, ctab []int, rowoffset int, costs config.Costs, from, to edge.Edge, buf *column.Buffers, band config.Band, originalUlen int) satcost.Cost {
	if vlen < 2 {
		return 0
	}

	if (ulen+1)*(vlen+1) <= originalUlen+1 {
		return evaluateSmall(u, v, ustart, ulen, vstart, vlen, ctab, rowoffset, costs, from, to, band)
	}

	midcol := vlen / 2
	dist := column.SweepBanded(u.Slice(ustart, ulen), v.Slice(vstart, vlen), costs, midcol, from, buf, &band, ustart, vstart)

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
		panic("diagband: the impossible happened: minAdditionalCosts returned X")
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
			evaluateCrosspoints(u, v, ustart, midrow-1, vstart, midcol-1, ctab, rowoffset, costs, from, midtype, buf, band, originalUlen)
		case edge.D:
			evaluateCrosspoints(u, v, ustart, midrow-1, vstart, midcol, ctab, rowoffset, costs, from, midtype, buf, band, originalUlen)
		case edge.I:
			if midcol > 1 {
				ctab[midcol-1] = ctab[midcol]
			}
			evaluateCrosspoints(u, v, ustart, midrow, vstart, midcol-1, ctab, rowoffset, costs, from, midtype, buf, band, originalUlen)
		default:
			panic("diagband: the impossible happened: unknown midtype")
		}
	}

	evaluateCrosspoints(u, v, ustart+midrow, ulen-midrow, vstart+midcol, vlen-midcol, ctab[midcol:], rowoffset+midrow, costs, midtype, to, buf, band, originalUlen)

	return dist
}

// evaluateSmall handles the small-subproblem shortcut: solve in square
// space (restricted to the band, expressed in this sub-problem's local
// coordinates), then walk the traceback once to fill in every column
// crossing it implies.
func evaluateSmall(u, v byteview.ByteView, ustart, ulen, vstart, vlen int, ctab []int, rowoffset int, costs config.Costs, from, to edge.Edge, band config.Band) satcost.Cost {
	shift := vstart - ustart
	local := config.Band{Left: band.Left - shift, Right: band.Right - shift}
	table := square.Compute(u.Slice(ustart, ulen), v.Slice(vstart, vlen), costs, from, to, &local)

	var al sink.Alignment
	table.Traceback(&al, to, 0, 0)

	row, col := 0, 0
	for _, s := range al.Steps {
		switch s.Op {
		case sink.Replace:
			row++
			col++
		case sink.Delete:
			row++
		case sink.Insert:
			col++
		}
		if col > 0 && col < vlen {
			ctab[col] = rowoffset + row
		}
	}
	return table.Cost()
}
