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

package affine_test

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"testing"

	"seqalign.dev/affine"
)

var defaultCosts = affine.Costs{Match: 0, Mismatch: 3, Open: 4, Extend: 1}

// TestScoreChargesGapSwitch guards against undercounting a Delete run
// immediately followed by an Insert run (or vice versa) as a single gap:
// spec §3's recurrences require a fresh Open whenever the gap state
// switches, even with no Replace step between the two runs.
func TestScoreChargesGapSwitch(t *testing.T) {
	u, v := []byte("AAAA"), []byte("TTTT")
	costs := affine.Costs{Match: 0, Mismatch: 100, Open: 1, Extend: 1}

	al, cost := affine.Align(u, v, costs)
	const want = 10 // delete all of u (open+4*extend=5), then insert all of v (5)
	if cost != want {
		t.Fatalf("Align(...) cost = %v, want %v", cost, want)
	}
	if got := al.Score(u, v, costs); got != want {
		t.Errorf("Score(Align(...)) = %v, want %v (cost and Score must agree)", got, want)
	}
}

func TestAlignScenarios(t *testing.T) {
	tests := []struct {
		name     string
		u, v     string
		wantCost int
	}{
		{"identical", "ACGT", "ACGT", 0},
		{"acgt-agt", "ACGT", "AGT", 5},
		{"ac-acgt", "AC", "ACGT", 6},
		{"aaaa-tttt", "AAAA", "TTTT", 12},
		{"agct-act", "AGCT", "ACT", 5},
		{"a-tttttta", "A", "TTTTTTA", 10},
		{"both-empty", "", "", 0},
		{"u-empty", "", "ACGT", defaultCosts.Open + 4*defaultCosts.Extend},
		{"v-empty", "ACGT", "", defaultCosts.Open + 4*defaultCosts.Extend},
		{"single-chars-match", "A", "A", 0},
		{"single-chars-mismatch", "A", "T", defaultCosts.Mismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			al, cost := affine.Align([]byte(tt.u), []byte(tt.v), defaultCosts)
			if cost != tt.wantCost {
				t.Errorf("Align(...) cost = %v, want %v", cost, tt.wantCost)
			}
			if got := al.Score([]byte(tt.u), []byte(tt.v), defaultCosts); got != tt.wantCost {
				t.Errorf("Score(Align(...)) = %v, want %v", got, tt.wantCost)
			}
			if got, want := al.ULen(), len(tt.u); got != want {
				t.Errorf("ULen() = %v, want %v", got, want)
			}
			if got, want := al.VLen(), len(tt.v); got != want {
				t.Errorf("VLen() = %v, want %v", got, want)
			}
		})
	}
}

func TestAlignInvalidCosts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Align(...) with a negative cost did not panic")
		}
	}()
	affine.Align([]byte("A"), []byte("A"), affine.Costs{Match: 0, Mismatch: -1, Open: 4, Extend: 1})
}

func TestBandAlignAgreesWithAlign(t *testing.T) {
	alphabet := []byte("ACGT")
	for i := range 30 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed), func(t *testing.T) {
			rng := rand.New(rand.NewChaCha8(seed))
			u := randSeq(rng, alphabet, rng.IntN(12))
			v := randSeq(rng, alphabet, rng.IntN(12))

			_, wantCost := affine.Align(u, v, defaultCosts)

			left, right := min(0, len(v)-len(u)), max(0, len(v)-len(u))
			al, gotCost := affine.BandAlign(u, v, left, right, defaultCosts)
			if gotCost != wantCost {
				t.Errorf("BandAlign(...) cost = %v, want %v (u=%q, v=%q)", gotCost, wantCost, u, v)
			}
			if got := al.Score(u, v, defaultCosts); got != wantCost {
				t.Errorf("Score(BandAlign(...)) = %v, want %v", got, wantCost)
			}

			if got := affine.BandDistance(u, v, left, right, defaultCosts); got != wantCost {
				t.Errorf("BandDistance(...) = %v, want %v (u=%q, v=%q)", got, wantCost, u, v)
			}
		})
	}
}

func TestBandAlignInvalidBand(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("BandAlign(...) with a band that admits no path did not panic")
		}
	}()
	affine.BandAlign([]byte("AAAA"), []byte("A"), 2, 3, defaultCosts)
}

func TestWideningBandNeverIncreasesCost(t *testing.T) {
	alphabet := []byte("ACGT")
	for i := range 20 {
		seed := sha256.Sum256(fmt.Append(nil, 1000+i))
		t.Run(fmt.Sprintf("seed=%x", seed), func(t *testing.T) {
			rng := rand.New(rand.NewChaCha8(seed))
			u := randSeq(rng, alphabet, 2+rng.IntN(12))
			v := randSeq(rng, alphabet, 2+rng.IntN(12))

			d := len(v) - len(u)
			_, narrow := affine.BandAlign(u, v, min(0, d), max(0, d), defaultCosts)
			_, wide := affine.BandAlign(u, v, min(0, d)-len(u), max(0, d)+len(v), defaultCosts)
			if wide > narrow {
				t.Errorf("widening the band increased cost: narrow=%v, wide=%v (u=%q, v=%q)", narrow, wide, u, v)
			}
		})
	}
}

func FuzzAlignScoresMatch(f *testing.F) {
	f.Add([]byte("ACGT"), []byte("AGT"))
	f.Add([]byte(""), []byte("ACGT"))
	f.Add([]byte("ACGT"), []byte(""))
	f.Fuzz(func(t *testing.T, u, v []byte) {
		if len(u) > 64 || len(v) > 64 {
			t.Skip("keep fuzzed inputs small so each alignment stays cheap")
		}
		al, cost := affine.Align(u, v, defaultCosts)
		if got := al.Score(u, v, defaultCosts); got != cost {
			t.Errorf("Score(Align(%q, %q)) = %v, want %v", u, v, got, cost)
		}
		if got, want := al.ULen(), len(u); got != want {
			t.Errorf("ULen() = %v, want %v", got, want)
		}
		if got, want := al.VLen(), len(v); got != want {
			t.Errorf("VLen() = %v, want %v", got, want)
		}
	})
}

func randSeq(rng *rand.Rand, alphabet []byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return out
}
