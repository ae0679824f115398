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

// Package column evaluates all DP columns of an affine alignment while
// carrying only a single column of state (linear space), and, for columns
// past a chosen mid-column, additionally tracks the row and gap-state at
// which the optimal path into each cell crossed the mid-column.
package column

import (
	"seqalign.dev/affine/internal/byteview"
	"seqalign.dev/affine/internal/config"
	"seqalign.dev/affine/internal/edge"
	"seqalign.dev/affine/internal/satcost"
)

// Atabentry is one row of the DP column: the three state costs and the
// incoming edge for each.
type Atabentry struct {
	Rvalue, Dvalue, Ivalue satcost.Cost
	Redge, Dedge, Iedge    edge.Edge
}

// Rnode captures where, on the mid-column, the optimal path into a state
// crossed: the row index and the gap-state at that crossing.
type Rnode struct {
	Idx  int
	Edge edge.Edge
}

// Rtabentry holds the three Rnodes for a row, one per DP state.
type Rtabentry struct {
	R, D, I Rnode
}

// Buffers are the reusable, linear-size column buffers a caller allocates
// once (sized to the outermost ulen+1) and passes down through the
// recursion, per the "no allocation per recursion depth" resource model.
type Buffers struct {
	Atab []Atabentry
	Rtab []Rtabentry
}

// NewBuffers allocates buffers large enough for any sub-problem with u-side
// length up to ulen.
func NewBuffers(ulen int) *Buffers {
	return &Buffers{
		Atab: make([]Atabentry, ulen+1),
		Rtab: make([]Rtabentry, ulen+1),
	}
}

// band reports the row range a column admits within [left, right] of the
// main diagonal, in absolute coordinates (uAbs+i, vAbs+j); a nil band always
// admits every row.
type band struct {
	b          *config.Band
	uAbs, vAbs int
}

// rowRange returns the inclusive range of rows [low, high], clamped to
// [0, ulen], that column j admits. Rows outside this range are unreachable
// and never visited, which is what keeps a banded sweep to O(ulen·width)
// instead of O(ulen·vlen).
func (bd band) rowRange(ulen, j int) (low, high int) {
	if bd.b == nil {
		return 0, ulen
	}
	lo := bd.vAbs + j - bd.b.Right - bd.uAbs
	hi := bd.vAbs + j - bd.b.Left - bd.uAbs
	return max(0, lo), min(ulen, hi)
}

var infEntry = Atabentry{
	Rvalue: satcost.Inf, Dvalue: satcost.Inf, Ivalue: satcost.Inf,
	Redge: edge.X, Dedge: edge.X, Iedge: edge.X,
}

func firstColumn(ulen int, atab []Atabentry, rtab []Rtabentry, costs config.Costs, from edge.Edge, bd band) {
	open, ext := satcost.Cost(costs.Open), satcost.Cost(costs.Extend)
	low, high := bd.rowRange(ulen, 0)

	switch from {
	case edge.R:
		atab[0].Rvalue, atab[0].Dvalue, atab[0].Ivalue = 0, satcost.Inf, satcost.Inf
	case edge.D:
		atab[0].Rvalue, atab[0].Dvalue, atab[0].Ivalue = satcost.Inf, 0, satcost.Inf
	case edge.I:
		atab[0].Rvalue, atab[0].Dvalue, atab[0].Ivalue = satcost.Inf, satcost.Inf, 0
	default:
		atab[0].Rvalue, atab[0].Dvalue, atab[0].Ivalue = 0, open, open
	}
	atab[0].Redge, atab[0].Dedge, atab[0].Iedge = edge.X, edge.X, edge.X
	if low > 0 {
		atab[0].Rvalue, atab[0].Dvalue, atab[0].Ivalue = satcost.Inf, satcost.Inf, satcost.Inf
	}

	rtab[0].R = Rnode{0, edge.R}
	rtab[0].D = Rnode{0, edge.D}
	rtab[0].I = Rnode{0, edge.I}

	start := max(1, low)
	if low > 0 {
		// Row low-1 is out of band for this column: its leftover value from
		// whenever it last held data must not feed the D-chain below.
		atab[low-1] = infEntry
	}
	for i := start; i <= high; i++ {
		atab[i].Rvalue = satcost.Inf
		atab[i].Dvalue = satcost.Add(atab[i-1].Dvalue, ext)
		atab[i].Ivalue = satcost.Inf
		atab[i].Redge, atab[i].Dedge, atab[i].Iedge = edge.X, edge.D, edge.X

		rtab[i].R = Rnode{i, edge.R}
		rtab[i].D = Rnode{i, edge.D}
		rtab[i].I = Rnode{i, edge.I}
	}
}

func nextColumn(u byteview.ByteView, ulen int, vb byte, atab []Atabentry, rtab []Rtabentry, costs config.Costs, midCol, colIndex int, bd band) {
	open, ext := satcost.Cost(costs.Open), satcost.Cost(costs.Extend)
	match, mismatch := satcost.Cost(costs.Match), satcost.Cost(costs.Mismatch)
	low, high := bd.rowRange(ulen, colIndex)

	anw := atab[0]
	rnw := rtab[0]

	rdist := satcost.Add(atab[0].Rvalue, satcost.Add(ext, open))
	ddist := satcost.Add(atab[0].Dvalue, satcost.Add(ext, open))
	idist := satcost.Add(atab[0].Ivalue, ext)
	atab[0].Ivalue = satcost.Min3(rdist, ddist, idist)
	atab[0].Rvalue, atab[0].Dvalue = satcost.Inf, satcost.Inf
	atab[0].Redge, atab[0].Dedge, atab[0].Iedge = edge.X, edge.X, edge.I
	if low > 0 {
		atab[0].Rvalue, atab[0].Dvalue, atab[0].Ivalue = satcost.Inf, satcost.Inf, satcost.Inf
		atab[0].Redge, atab[0].Dedge, atab[0].Iedge = edge.X, edge.X, edge.X
	}

	recordRtab := colIndex > midCol
	if recordRtab {
		rnw = rtab[0]
		rtab[0].R = Rnode{rtab[0].I.Idx, edge.X}
		rtab[0].D = Rnode{rtab[0].I.Idx, edge.X}
		rtab[0].I = Rnode{rtab[0].I.Idx, rtab[0].I.Edge}
	}

	start := max(1, low)
	if low > 0 {
		// anw/rnw need row low-1's value from the *previous* column, read
		// before it's overwritten below for this column's D-chain. Row 0 was
		// already overwritten above, so for low == 1 the copies taken before
		// that are kept.
		if low > 1 {
			anw, rnw = atab[low-1], rtab[low-1]
		}
		atab[low-1] = infEntry
	}

	for i := start; i <= high; i++ {
		awe := atab[i]
		rwe := rtab[i]

		rcost := mismatch
		if u.At(i-1) == vb {
			rcost = match
		}
		rdist = satcost.Add(anw.Rvalue, rcost)
		ddist = satcost.Add(anw.Dvalue, rcost)
		idist = satcost.Add(anw.Ivalue, rcost)
		atab[i].Rvalue = satcost.Min3(rdist, ddist, idist)
		atab[i].Redge = edge.Set(rdist, ddist, idist)

		rdist = satcost.Add(atab[i-1].Rvalue, satcost.Add(ext, open))
		ddist = satcost.Add(atab[i-1].Dvalue, ext)
		idist = satcost.Add(atab[i-1].Ivalue, satcost.Add(ext, open))
		atab[i].Dvalue = satcost.Min3(rdist, ddist, idist)
		atab[i].Dedge = edge.Set(rdist, ddist, idist)

		rdist = satcost.Add(awe.Rvalue, satcost.Add(ext, open))
		ddist = satcost.Add(awe.Dvalue, satcost.Add(ext, open))
		idist = satcost.Add(awe.Ivalue, ext)
		atab[i].Ivalue = satcost.Min3(rdist, ddist, idist)
		atab[i].Iedge = edge.Set(rdist, ddist, idist)

		if recordRtab {
			rtab[i].R = pickRnode(rnw, atab[i].Redge)
			rtab[i].D = pickRnode(rtab[i-1], atab[i].Dedge)
			rtab[i].I = pickRnode(rwe, atab[i].Iedge)
		}
		anw, rnw = awe, rwe
	}
}

// pickRnode mirrors set_Rtabentry: the R-node for a newly computed state is
// inherited from whichever of the predecessor's three Rnodes its winning
// edge names.
func pickRnode(pred Rtabentry, winner edge.Edge) Rnode {
	switch winner {
	case edge.R:
		return pred.R
	case edge.D:
		return pred.D
	case edge.I:
		return pred.I
	}
	return Rnode{}
}

// Sweep evaluates all columns 1..v.Len() of the affine DP for u/v, carrying
// the Rnode triples from column midCol+1 onward, and returns the cost of
// the full column (before any to-edge bias).
func Sweep(u, v byteview.ByteView, costs config.Costs, midCol int, from edge.Edge, buf *Buffers) satcost.Cost {
	return sweep(u, v, costs, midCol, from, buf, band{})
}

// SweepBanded is Sweep restricted to a diagonal band defined in absolute
// coordinates (uAbs, vAbs are the offsets of u, v within the original,
// unconstrained problem that the band was specified against).
func SweepBanded(u, v byteview.ByteView, costs config.Costs, midCol int, from edge.Edge, buf *Buffers, b *config.Band, uAbs, vAbs int) satcost.Cost {
	return sweep(u, v, costs, midCol, from, buf, band{b, uAbs, vAbs})
}

func sweep(u, v byteview.ByteView, costs config.Costs, midCol int, from edge.Edge, buf *Buffers, bd band) satcost.Cost {
	ulen, vlen := u.Len(), v.Len()
	atab, rtab := buf.Atab[:ulen+1], buf.Rtab[:ulen+1]

	// buf is reused across recursive calls on different sub-problems; rows a
	// banded column skips must read back as unreachable, not a previous
	// call's leftovers, so every row starts Inf before the sweep begins, and
	// every row's Rnodes start as "crossed the mid-column at this row".
	for i := range atab {
		atab[i] = infEntry
		rtab[i] = Rtabentry{Rnode{i, edge.R}, Rnode{i, edge.D}, Rnode{i, edge.I}}
	}

	firstColumn(ulen, atab, rtab, costs, from, bd)
	for j := 1; j <= vlen; j++ {
		nextColumn(u, ulen, v.At(j-1), atab, rtab, costs, midCol, j, bd)
	}
	return satcost.Min3(atab[ulen].Rvalue, atab[ulen].Dvalue, atab[ulen].Ivalue)
}
