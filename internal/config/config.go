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

// Package config validates the inputs shared by every entry point of this
// module: costs and, for the banded variant, the band bounds.
//
// This package is an implementation detail; the configuration surface for
// users is the affine.Costs type and the plain parameters of affine.Align,
// affine.BandAlign and affine.BandDistance.
package config

import "fmt"

// Costs collects the four non-negative costs shared by every alignment.
type Costs struct {
	Match, Mismatch, Open, Extend int
}

// Validate panics if any cost is negative, per the invalid-argument error
// kind: the operation cannot continue with a negative cost.
func (c Costs) Validate() {
	if c.Match < 0 || c.Mismatch < 0 || c.Open < 0 || c.Extend < 0 {
		panic(fmt.Sprintf("affine: invalid costs %+v: all costs must be non-negative", c))
	}
}

// ColorConfig collects the ANSI SGR escape sequences format/color lets
// callers set for format.Pretty's output. An empty field means "no
// coloring for this kind of step".
type ColorConfig struct {
	Match, Mismatch, Delete, Insert string
}

// Band describes a diagonal band [Left, Right] around the main diagonal.
type Band struct {
	Left, Right int
}

// Validate panics unless the band can contain at least one admissible path
// from (0,0) to (ulen,vlen): Left <= min(0, vlen-ulen) and Right >= max(0,
// vlen-ulen).
func (b Band) Validate(ulen, vlen int) {
	d := vlen - ulen
	if b.Left > min(0, d) || b.Right < max(0, d) {
		panic(fmt.Sprintf("affine: band [%d, %d] cannot contain an admissible path for ulen=%d, vlen=%d", b.Left, b.Right, ulen, vlen))
	}
}
