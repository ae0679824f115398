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

// Package format renders an alignment as a three-line display: u, a bar
// line marking matches, and v, the pairwise-alignment analog of a unified
// diff.
package format

import (
	"seqalign.dev/affine"
	"seqalign.dev/affine/format/color"
	"seqalign.dev/affine/internal/byteview"
	"seqalign.dev/affine/internal/config"
	"seqalign.dev/affine/internal/editflags"
)

const elision = "...\n"

// Pretty renders al, the alignment of u and v, as a three-line display:
// u's line, a bar line ('|' for a match, ' ' otherwise), and v's line.
// Long runs of matching steps between edits are elided, leaving [Context]
// steps of context around each run of edits; elided runs are marked with
// a line of "...".
func Pretty(al *affine.Alignment, u, v []byte, opts ...Option) string {
	s := defaultSettings
	for _, opt := range opts {
		opt(&s)
	}

	steps := al.Steps()
	fsteps := make([]editflags.Step, len(steps))
	for i, st := range steps {
		fsteps[i] = editflags.Step{
			Delete: st.Op == affine.Delete,
			Insert: st.Op == affine.Insert,
			UPos:   st.UPos,
			VPos:   st.VPos,
		}
	}
	flags := editflags.FromSteps(fsteps, u, v)
	hunks, _ := editflags.Hunks(flags, s.context)
	if len(hunks) == 0 {
		return ""
	}

	var out byteview.Builder[string]
	if hunks[0].Start > 0 {
		out.WriteString(elision)
	}
	for i, h := range hunks {
		if i > 0 {
			out.WriteString(elision)
		}
		top, mid, bot := renderHunk(steps[h.Start:h.End], u, v, &s)
		out.WriteString(top)
		out.WriteByte('\n')
		out.WriteString(mid)
		out.WriteByte('\n')
		out.WriteString(bot)
		out.WriteByte('\n')
	}
	if hunks[len(hunks)-1].End < len(steps) {
		out.WriteString(elision)
	}
	return out.Build()
}

func renderHunk(steps []affine.Step, u, v []byte, s *settings) (top, mid, bot string) {
	var tb, mb, bb byteview.Builder[string]
	for _, st := range steps {
		switch st.Op {
		case affine.Replace:
			uc, vc := u[st.UPos], v[st.VPos]
			if uc == vc {
				tb.WriteString(colorByte(colorFor(s.colors, matchColor), uc))
				mb.WriteString(colorByte(colorFor(s.colors, matchColor), '|'))
				bb.WriteString(colorByte(colorFor(s.colors, matchColor), vc))
			} else {
				tb.WriteString(colorByte(colorFor(s.colors, mismatchColor), uc))
				mb.WriteByte(' ')
				bb.WriteString(colorByte(colorFor(s.colors, mismatchColor), vc))
			}
		case affine.Delete:
			tb.WriteString(colorByte(colorFor(s.colors, deleteColor), u[st.UPos]))
			mb.WriteByte(' ')
			bb.WriteByte('-')
		case affine.Insert:
			tb.WriteByte('-')
			mb.WriteByte(' ')
			bb.WriteString(colorByte(colorFor(s.colors, insertColor), v[st.VPos]))
		}
	}
	return tb.Build(), mb.Build(), bb.Build()
}

type colorKind int

const (
	matchColor colorKind = iota
	mismatchColor
	deleteColor
	insertColor
)

func colorFor(cc *config.ColorConfig, kind colorKind) string {
	if cc == nil {
		return ""
	}
	switch kind {
	case matchColor:
		return cc.Match
	case mismatchColor:
		return cc.Mismatch
	case deleteColor:
		return cc.Delete
	case insertColor:
		return cc.Insert
	}
	return ""
}

func colorByte(code string, b byte) string {
	if code == "" {
		return string(b)
	}
	return code + string(b) + color.Reset
}
