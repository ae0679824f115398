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

package sink_test

import (
	"testing"

	"seqalign.dev/affine/internal/sink"
)

func TestAlignmentScore(t *testing.T) {
	const match, mismatch, open, extend = 0, 100, 1, 1

	tests := []struct {
		name  string
		u, v  string
		build func(a *sink.Alignment)
		want  int
	}{
		{
			name: "single-gap-run",
			u:    "AAAA", v: "TTTT",
			build: func(a *sink.Alignment) {
				for i := range 4 {
					a.AppendDelete(i)
				}
			},
			want: open + 4*extend,
		},
		{
			name: "delete-run-then-insert-run-reopens",
			u:    "AAAA", v: "TTTT",
			build: func(a *sink.Alignment) {
				for i := range 4 {
					a.AppendDelete(i)
				}
				for i := range 4 {
					a.AppendInsert(i)
				}
			},
			want: 2 * (open + 4*extend),
		},
		{
			name: "insert-run-then-delete-run-reopens",
			u:    "AAAA", v: "TTTT",
			build: func(a *sink.Alignment) {
				for i := range 4 {
					a.AppendInsert(i)
				}
				for i := range 4 {
					a.AppendDelete(i)
				}
			},
			want: 2 * (open + 4*extend),
		},
		{
			name: "replace-between-runs-also-reopens",
			u:    "AA", v: "A",
			build: func(a *sink.Alignment) {
				a.AppendDelete(0)
				a.AppendReplace(1, 0) // u[1]='A' == v[0]='A': match, costs 0.
				a.AppendInsert(0)
			},
			want: 2*open + 2*extend, // two separate one-step gaps, split by the Replace.
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &sink.Alignment{}
			tt.build(a)
			if got := a.Score([]byte(tt.u), []byte(tt.v), match, mismatch, open, extend); got != tt.want {
				t.Errorf("Score(...) = %v, want %v", got, tt.want)
			}
		})
	}
}
