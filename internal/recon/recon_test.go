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

package recon

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seqalign.dev/affine/internal/sink"
)

func TestFromCtab(t *testing.T) {
	tests := []struct {
		name string
		ctab []int
		want []sink.Step
	}{
		{
			name: "all-replace",
			ctab: []int{0, 1, 2, 3, 4},
			want: []sink.Step{
				{Op: sink.Replace, UPos: 0, VPos: 0},
				{Op: sink.Replace, UPos: 1, VPos: 1},
				{Op: sink.Replace, UPos: 2, VPos: 2},
				{Op: sink.Replace, UPos: 3, VPos: 3},
			},
		},
		{
			// u=AC, v=ACGT: replace A/A, replace C/C, insert G, insert T.
			name: "trailing-inserts",
			ctab: []int{0, 1, 2, 2, 2},
			want: []sink.Step{
				{Op: sink.Replace, UPos: 0, VPos: 0},
				{Op: sink.Replace, UPos: 1, VPos: 1},
				{Op: sink.Insert, VPos: 2},
				{Op: sink.Insert, VPos: 3},
			},
		},
		{
			// u=ACGT, v=AGT: replace A/A, delete C, replace G/G, replace T/T.
			name: "interior-delete",
			ctab: []int{0, 2, 3, 4},
			want: []sink.Step{
				{Op: sink.Replace, UPos: 0, VPos: 0},
				{Op: sink.Delete, UPos: 1},
				{Op: sink.Replace, UPos: 2, VPos: 1},
				{Op: sink.Replace, UPos: 3, VPos: 2},
			},
		},
		{
			name: "leading-deletes",
			ctab: []int{2, 3, 4},
			want: []sink.Step{
				{Op: sink.Delete, UPos: 0},
				{Op: sink.Delete, UPos: 1},
				{Op: sink.Replace, UPos: 2, VPos: 0},
				{Op: sink.Replace, UPos: 3, VPos: 1},
			},
		},
		{
			name: "empty-v",
			ctab: []int{3},
			want: []sink.Step{
				{Op: sink.Delete, UPos: 0},
				{Op: sink.Delete, UPos: 1},
				{Op: sink.Delete, UPos: 2},
			},
		},
		{
			name: "empty-u",
			ctab: []int{0, 0, 0},
			want: []sink.Step{
				{Op: sink.Insert, VPos: 0},
				{Op: sink.Insert, VPos: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromCtab(tt.ctab)
			if diff := cmp.Diff(tt.want, got.Steps); diff != "" {
				t.Errorf("FromCtab(%v) mismatch (-want +got):\n%s", tt.ctab, diff)
			}
		})
	}
}
