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

// Package square implements the full, quadratic-space affine DP. It is used
// as the recursion leaf when one side has length <= 1, and reused by
// internal/diagband as the small-subproblem shortcut, optionally restricted
// to a diagonal band.
package square

import (
	"seqalign.dev/affine/internal/byteview"
	"seqalign.dev/affine/internal/config"
	"seqalign.dev/affine/internal/edge"
	"seqalign.dev/affine/internal/satcost"
	"seqalign.dev/affine/internal/sink"
)

type cell struct {
	r, d, i             satcost.Cost
	redge, dedge, iedge edge.Edge
}

// Table is a full (ulen+1)x(vlen+1) affine DP table.
type Table struct {
	ulen, vlen int
	rows       []cell // (ulen+1)*(vlen+1), row-major over i, then j
	cost       satcost.Cost
	open       satcost.Cost
	band       *config.Band // nil: unconstrained
}

func (t *Table) at(i, j int) *cell { return &t.rows[i*(t.vlen+1)+j] }

func (t *Table) inBand(i, j int) bool {
	if t.band == nil {
		return true
	}
	d := j - i
	return d >= t.band.Left && d <= t.band.Right
}

// Compute fills the table for u[0..ulen), v[0..vlen), with the given
// boundary conditions at the corners, and returns it; Cost reports the
// optimal cost.
func Compute(u, v byteview.ByteView, costs config.Costs, from, to edge.Edge, band *config.Band) *Table {
	ulen, vlen := u.Len(), v.Len()
	t := &Table{
		ulen: ulen,
		vlen: vlen,
		rows: make([]cell, (ulen+1)*(vlen+1)),
		band: band,
	}

	open, ext := satcost.Cost(costs.Open), satcost.Cost(costs.Extend)
	t.open = open

	// (0,0) corner, per spec §3.
	c0 := t.at(0, 0)
	switch from {
	case edge.R:
		c0.r, c0.d, c0.i = 0, satcost.Inf, satcost.Inf
	case edge.D:
		c0.r, c0.d, c0.i = satcost.Inf, 0, satcost.Inf
	case edge.I:
		c0.r, c0.d, c0.i = satcost.Inf, satcost.Inf, 0
	default: // X, top-level
		c0.r, c0.d, c0.i = 0, open, open
	}
	c0.redge, c0.dedge, c0.iedge = edge.X, edge.X, edge.X

	// First column: only D reachable.
	for i := 1; i <= ulen; i++ {
		c := t.at(i, 0)
		c.r, c.i = satcost.Inf, satcost.Inf
		if !t.inBand(i, 0) {
			c.d = satcost.Inf
			c.dedge = edge.X
			continue
		}
		prev := t.at(i-1, 0)
		c.d = satcost.Add(prev.d, ext)
		c.dedge = edge.D
	}

	// First row: only I reachable.
	for j := 1; j <= vlen; j++ {
		c := t.at(0, j)
		c.r, c.d = satcost.Inf, satcost.Inf
		if !t.inBand(0, j) {
			c.i = satcost.Inf
			c.iedge = edge.X
			continue
		}
		prev := t.at(0, j-1)
		rdist := satcost.Add(prev.r, satcost.Add(open, ext))
		ddist := satcost.Add(prev.d, satcost.Add(open, ext))
		idist := satcost.Add(prev.i, ext)
		c.i = satcost.Min3(rdist, ddist, idist)
		c.iedge = edge.Set(rdist, ddist, idist)
	}

	for i := 1; i <= ulen; i++ {
		ub := u.At(i - 1)
		for j := 1; j <= vlen; j++ {
			c := t.at(i, j)
			if !t.inBand(i, j) {
				c.r, c.d, c.i = satcost.Inf, satcost.Inf, satcost.Inf
				c.redge, c.dedge, c.iedge = edge.X, edge.X, edge.X
				continue
			}

			nw := t.at(i-1, j-1)
			rcost := satcost.Cost(costs.Mismatch)
			if ub == v.At(j-1) {
				rcost = satcost.Cost(costs.Match)
			}
			rdist := satcost.Add(nw.r, rcost)
			ddist := satcost.Add(nw.d, rcost)
			idist := satcost.Add(nw.i, rcost)
			c.r = satcost.Min3(rdist, ddist, idist)
			c.redge = edge.Set(rdist, ddist, idist)

			n := t.at(i-1, j)
			rdist = satcost.Add(n.r, satcost.Add(open, ext))
			ddist = satcost.Add(n.d, ext)
			idist = satcost.Add(n.i, satcost.Add(open, ext))
			c.d = satcost.Min3(rdist, ddist, idist)
			c.dedge = edge.Set(rdist, ddist, idist)

			w := t.at(i, j-1)
			rdist = satcost.Add(w.r, satcost.Add(open, ext))
			ddist = satcost.Add(w.d, satcost.Add(open, ext))
			idist = satcost.Add(w.i, ext)
			c.i = satcost.Min3(rdist, ddist, idist)
			c.iedge = edge.Set(rdist, ddist, idist)
		}
	}

	last := t.at(ulen, vlen)
	winner := edge.MinAdditionalCosts(last.r, last.d, last.i, to, open)
	switch winner {
	case edge.D:
		t.cost = satcost.Add(last.d, biasFor(to, edge.D, open))
	case edge.I:
		t.cost = satcost.Add(last.i, biasFor(to, edge.I, open))
	default:
		t.cost = satcost.Add(last.r, biasFor(to, edge.R, open))
	}
	return t
}

func biasFor(to, state edge.Edge, open satcost.Cost) satcost.Cost {
	if to == edge.R || to == edge.X || to == state {
		return 0
	}
	return open
}

// Cost returns the optimal cost for this table, biased for the exit edge
// passed to Compute.
func (t *Table) Cost() satcost.Cost { return t.cost }

// Traceback walks from (ulen, vlen) back to (0, 0), appending the edit
// steps to al in forward order. uoff/voff are added to the positions
// recorded on al, so a sub-table can be traced back into a shared
// alignment covering a larger range.
func (t *Table) Traceback(al *sink.Alignment, to edge.Edge, uoff, voff int) {
	i, j := t.ulen, t.vlen
	last := t.at(i, j)
	state := edge.MinAdditionalCosts(last.r, last.d, last.i, to, t.open)
	if state == edge.X {
		state = edge.R
	}

	var steps []sink.Step
	for i > 0 || j > 0 {
		c := t.at(i, j)
		switch state {
		case edge.R:
			steps = append(steps, sink.Step{Op: sink.Replace, UPos: uoff + i - 1, VPos: voff + j - 1})
			state = c.redge
			i, j = i-1, j-1
		case edge.D:
			steps = append(steps, sink.Step{Op: sink.Delete, UPos: uoff + i - 1})
			state = c.dedge
			i--
		case edge.I:
			steps = append(steps, sink.Step{Op: sink.Insert, VPos: voff + j - 1})
			state = c.iedge
			j--
		default:
			panic("square: traceback reached an unknown edge")
		}
	}
	for k := len(steps) - 1; k >= 0; k-- {
		al.Steps = append(al.Steps, steps[k])
	}
}
