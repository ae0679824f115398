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

// Package recon turns a crossing-row table (Ctab, as produced by
// internal/hirschberg or internal/diagband) back into an explicit alignment.
package recon

import "seqalign.dev/affine/internal/sink"

// FromCtab walks ctab[0..vlen] and emits the edit steps it implies: ctab[j]
// is the last row of u the optimal path reaches in column j (the row from
// which it leaves that column), and ctab[0] rows are deleted before column 1.
// Each column is consumed by exactly one replace or insert; when the path
// advances more than one row into column j, the replace of u[ctab[j-1]] comes
// first and the remaining rows up to ctab[j] are deletions.
func FromCtab(ctab []int) *sink.Alignment {
	al := &sink.Alignment{}

	for r := 0; r < ctab[0]; r++ {
		al.AppendDelete(r)
	}

	vlen := len(ctab) - 1
	for j := 1; j <= vlen; j++ {
		switch delta := ctab[j] - ctab[j-1]; {
		case delta == 0:
			al.AppendInsert(j - 1)
		case delta == 1:
			al.AppendReplace(ctab[j]-1, j-1)
		default:
			al.AppendReplace(ctab[j-1], j-1)
			for r := ctab[j-1] + 1; r < ctab[j]; r++ {
				al.AppendDelete(r)
			}
		}
	}

	return al
}
