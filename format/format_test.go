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

package format_test

import (
	"strings"
	"testing"

	"seqalign.dev/affine"
	"seqalign.dev/affine/format"
	"seqalign.dev/affine/format/color"
)

var costs = affine.Costs{Match: 0, Mismatch: 3, Open: 4, Extend: 1}

func TestPretty(t *testing.T) {
	tests := []struct {
		name string
		u, v string
		opts []format.Option
		want string
	}{
		{
			name: "single-mismatch",
			u:    "ACGT",
			v:    "AGGT",
			want: "ACGT\n| ||\nAGGT\n",
		},
		{
			name: "interior-delete",
			u:    "ACGT",
			v:    "AGT",
			opts: []format.Option{format.Context(3)},
			want: "ACGT\n| ||\nA-GT\n",
		},
		{
			name: "interior-insert",
			u:    "AGT",
			v:    "ACGT",
			opts: []format.Option{format.Context(3)},
			want: "A-GT\n| ||\nACGT\n",
		},
		{
			name: "identical",
			u:    "ACGT",
			v:    "ACGT",
			want: "",
		},
		{
			name: "all-replace",
			u:    "AAAA",
			v:    "TTTT",
			want: "AAAA\n    \nTTTT\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := []byte(tt.u), []byte(tt.v)
			al, _ := affine.Align(u, v, costs)
			got := format.Pretty(al, u, v, tt.opts...)
			if got != tt.want {
				t.Errorf("Pretty(...) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrettyElidesLongMatches(t *testing.T) {
	u := []byte("AAAAAAAAAAXAAAAAAAAAA")
	v := []byte("AAAAAAAAAAYAAAAAAAAAA")
	al, _ := affine.Align(u, v, costs)
	got := format.Pretty(al, u, v, format.Context(2))
	if !strings.Contains(got, "...\n") {
		t.Errorf("Pretty(...) = %q, want an elided (\"...\") run of context", got)
	}
	if strings.Count(got, "\n") > 8 {
		t.Errorf("Pretty(...) = %q, want the long matching runs elided", got)
	}
}

func TestPrettyColors(t *testing.T) {
	u, v := []byte("AC"), []byte("AG")
	al, _ := affine.Align(u, v, costs)
	got := format.Pretty(al, u, v, format.Colors(color.Mismatches(1, 31)))

	code := "\033[1;31m"
	if !strings.Contains(got, code) {
		t.Errorf("Pretty(...) = %q, want it to contain the mismatch color code %q", got, code)
	}
	if !strings.Contains(got, color.Reset) {
		t.Errorf("Pretty(...) = %q, want it to contain a reset sequence", got)
	}
}
