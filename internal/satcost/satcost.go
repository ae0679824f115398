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

// Package satcost provides saturating arithmetic over non-negative alignment
// costs, with a sentinel value representing "unreachable".
package satcost

import "math"

// Cost is a non-negative alignment cost, or Inf if unreachable.
type Cost int

// Inf represents an unreachable state. Any addition involving Inf yields Inf.
const Inf Cost = math.MaxInt

// Add returns a+b, saturating to Inf if either operand is Inf. It panics if
// both operands are finite and the sum overflows, which cannot happen for
// realistic cost inputs but guards against a caller accidentally passing a
// non-saturated huge value.
func Add(a, b Cost) Cost {
	if a == Inf || b == Inf {
		return Inf
	}
	sum := a + b
	if sum < a || sum < b {
		panic("satcost: overflow on finite addition")
	}
	return sum
}

// Min3 returns the minimum of a, b, c, with Inf treated as the maximum.
func Min3(a, b, c Cost) Cost {
	return min(a, b, c)
}
