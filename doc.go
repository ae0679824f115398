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

// Package affine computes optimal global sequence alignments under an
// affine gap-cost model: a gap of length n costs open + n*extend, rather
// than charging extend independently for every gapped position.
//
// Align uses Hirschberg's divide-and-conquer technique to find an optimal
// alignment in O(len(u)*len(v)) time using only O(len(u)+len(v)) auxiliary
// memory. BandAlign and BandDistance restrict the search to a diagonal
// band, trading the guarantee of finding the global optimum for a tighter
// time bound on inputs that are known to be roughly collinear; their
// auxiliary memory stays linear, as for Align.
package affine
