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

package format

import (
	"seqalign.dev/affine/format/color"
	"seqalign.dev/affine/internal/config"
)

// Option configures the behavior of Pretty.
type Option func(*settings)

// Context sets the number of matching steps to include as a prefix and
// postfix around each run of non-matching steps. The default is 3.
func Context(n int) Option {
	return func(s *settings) { s.context = max(0, n) }
}

// Colors enables ANSI coloring of Pretty's output, configured with options
// from the format/color package.
func Colors(opts ...color.Option) Option {
	return func(s *settings) {
		if s.colors == nil {
			s.colors = &config.ColorConfig{}
		}
		for _, opt := range opts {
			opt(s.colors)
		}
	}
}

type settings struct {
	context int
	colors  *config.ColorConfig
}

var defaultSettings = settings{context: 3}
