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

// Package color provides configuration for coloring format.Pretty's output
// using ANSI escape sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example
// the code below presents mismatches in bold red:
//
//	Mismatches(1, 31)
//
// This is equivalent to the raw ANSI sequence \033[1;31m. It's the
// responsibility of the caller to ensure that the parameters are correct
// and supported by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"

	"seqalign.dev/affine/internal/config"
)

// An Option configures custom colors for format.Pretty.
type Option func(*config.ColorConfig)

// Matches colors u's byte, the bar and v's byte of matching (replace, equal
// byte) steps.
func Matches(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) { cc.Match = code }
}

// Mismatches colors u's byte and v's byte of mismatching replace steps; the
// bar line there is a plain space.
func Mismatches(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) { cc.Mismatch = code }
}

// Deletes colors u's line under delete steps.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) { cc.Delete = code }
}

// Inserts colors v's line under insert steps.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) { cc.Insert = code }
}

func format(params []int) string {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}

// Reset is the SGR sequence that ends any coloring started by one of this
// package's options.
const Reset = "\033[0m"
