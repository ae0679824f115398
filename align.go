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

import (
	"seqalign.dev/affine/internal/byteview"
	"seqalign.dev/affine/internal/config"
	"seqalign.dev/affine/internal/diagband"
	"seqalign.dev/affine/internal/edge"
	"seqalign.dev/affine/internal/hirschberg"
	"seqalign.dev/affine/internal/recon"
	"seqalign.dev/affine/internal/sink"
	"seqalign.dev/affine/internal/square"
)

// Costs collects the four non-negative costs of the affine model: Match
// and Mismatch are charged per replaced position, Open is charged once per
// gap, and Extend is charged once per position within a gap (including its
// first).
type Costs = config.Costs

// Align finds an optimal global alignment of u and v under costs, and
// returns it together with its cost.
//
// Align panics if any cost is negative.
func Align(u, v []byte, costs Costs) (*Alignment, int) {
	costs.Validate()
	uv, vv := byteview.From(u), byteview.From(v)

	prefix, suffix := stripCommon(uv, vv)
	mu := uv.Slice(prefix, uv.Len()-prefix-suffix)
	mv := vv.Slice(prefix, vv.Len()-prefix-suffix)

	var al *sink.Alignment
	var cost int
	switch {
	case mu.Len() < 2 || mv.Len() < 2:
		table := square.Compute(mu, mv, costs, edge.X, edge.X, nil)
		al = &sink.Alignment{}
		table.Traceback(al, edge.X, 0, 0)
		cost = int(table.Cost())
	default:
		ctab, c := hirschberg.BuildCtab(mu, mv, costs)
		al = recon.FromCtab(ctab)
		cost = int(c)
	}

	al = stitchCommon(al, prefix, suffix, uv.Len(), vv.Len())
	return &Alignment{al}, cost + (prefix+suffix)*costs.Match
}

// BandAlign finds an alignment of u and v under costs, restricted to the
// diagonal band [left, right]: only cells (i, j) with left <= j-i <= right
// are considered. Widening the band can only lower (or leave unchanged)
// the cost BandAlign finds; Align always finds a cost that is less than or
// equal to any band's result.
//
// BandAlign panics if any cost is negative, or if the band does not
// contain at least one path from (0,0) to (len(u), len(v)).
func BandAlign(u, v []byte, left, right int, costs Costs) (*Alignment, int) {
	costs.Validate()
	uv, vv := byteview.From(u), byteview.From(v)
	band := config.Band{Left: left, Right: right}
	band.Validate(uv.Len(), vv.Len())

	prefix, suffix := stripCommon(uv, vv)
	mu := uv.Slice(prefix, uv.Len()-prefix-suffix)
	mv := vv.Slice(prefix, vv.Len()-prefix-suffix)

	var al *sink.Alignment
	var cost int
	switch {
	case mu.Len() < 2 || mv.Len() < 2:
		table := square.Compute(mu, mv, costs, edge.X, edge.X, &band)
		al = &sink.Alignment{}
		table.Traceback(al, edge.X, 0, 0)
		cost = int(table.Cost())
	default:
		ctab, c := diagband.BuildCrossingTable(mu, mv, costs, band)
		al = recon.FromCtab(ctab)
		cost = int(c)
	}

	al = stitchCommon(al, prefix, suffix, uv.Len(), vv.Len())
	return &Alignment{al}, cost + (prefix+suffix)*costs.Match
}

// BandDistance computes only the cost of a band-restricted alignment of u
// and v, without constructing the alignment itself. It is cheaper than
// discarding the *Alignment from BandAlign: no crosspoint bookkeeping is
// needed to produce a cost alone.
//
// BandDistance panics under the same conditions as BandAlign.
func BandDistance(u, v []byte, left, right int, costs Costs) int {
	costs.Validate()
	uv, vv := byteview.From(u), byteview.From(v)
	band := config.Band{Left: left, Right: right}
	band.Validate(uv.Len(), vv.Len())

	prefix, suffix := stripCommon(uv, vv)
	mu := uv.Slice(prefix, uv.Len()-prefix-suffix)
	mv := vv.Slice(prefix, vv.Len()-prefix-suffix)

	var cost int
	if mu.Len() < 2 || mv.Len() < 2 {
		table := square.Compute(mu, mv, costs, edge.X, edge.X, &band)
		cost = int(table.Cost())
	} else {
		cost = int(diagband.Distance(mu, mv, costs, band))
	}
	return cost + (prefix+suffix)*costs.Match
}

// stripCommon returns the lengths of the common prefix and, from what
// remains, the common suffix of u and v: positions an optimal alignment
// always replaces with a match, so the DP core only needs to run on
// what's left in between.
func stripCommon(u, v byteview.ByteView) (prefix, suffix int) {
	n := min(u.Len(), v.Len())
	for prefix < n && u.At(prefix) == v.At(prefix) {
		prefix++
	}
	n -= prefix
	for suffix < n && u.At(u.Len()-1-suffix) == v.At(v.Len()-1-suffix) {
		suffix++
	}
	return prefix, suffix
}

// stitchCommon reattaches the prefix and suffix stripped by stripCommon
// around al, the alignment of the trimmed middle, shifting al's own
// positions by prefix so every position in the result is absolute.
func stitchCommon(al *sink.Alignment, prefix, suffix, ulen, vlen int) *sink.Alignment {
	out := &sink.Alignment{Steps: make([]sink.Step, 0, prefix+len(al.Steps)+suffix)}
	for i := range prefix {
		out.AppendReplace(i, i)
	}
	for _, s := range al.Steps {
		if s.Op == sink.Replace || s.Op == sink.Delete {
			s.UPos += prefix
		}
		if s.Op == sink.Replace || s.Op == sink.Insert {
			s.VPos += prefix
		}
		out.Steps = append(out.Steps, s)
	}
	for i := range suffix {
		out.AppendReplace(ulen-suffix+i, vlen-suffix+i)
	}
	return out
}
