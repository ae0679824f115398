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

// Package ctabheuristic decides Ctab[0], the row at which the optimal path
// crosses column 0, a position the main Hirschberg recursion never visits
// directly (each recursive call fills only Ctab[1..vlen-1] of its own
// sub-problem, so column 0 of the whole problem is never written). The decision is a secondary-objective heuristic: among rows
// that are all otherwise equally valid starts, prefer one that lines up a
// match with v's first symbol, unless opening a second gap to reach it
// would cost more than just accepting one mismatch.
package ctabheuristic

import "seqalign.dev/affine/internal/byteview"

// DetermineCtab0 returns Ctab[0] given the already-computed Ctab[1] and
// Ctab[2] (ctab1, ctab2), the first symbol of v, and u (so rows 0..ctab1-1
// can be scanned for a match).
func DetermineCtab0(ctab1, ctab2 int, vseq0 byte, u byteview.ByteView, gapCostlierThanMismatch bool) int {
	if ctab1 == 1 || ctab1 == 0 {
		return 0
	}

	if ctab2-ctab1 > 1 {
		if gapCostlierThanMismatch {
			return 0
		}
		for i := 0; i < ctab1; i++ {
			if vseq0 == u.At(i) {
				return i
			}
		}
		return 0
	}

	if vseq0 == u.At(ctab1-1) {
		return ctab1 - 1
	}
	if vseq0 == u.At(0) {
		return 0
	}
	if gapCostlierThanMismatch {
		return ctab1 - 1
	}
	for i := 0; i < ctab1; i++ {
		if vseq0 == u.At(i) {
			return i
		}
	}
	return ctab1 - 1
}
