// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package group

import "math/big"

// parameterSet is the raw (P, Q, G, R) quadruple for one of the whitelisted
// groups, plus a human-readable name and bit length.
type parameterSet struct {
	name    string
	numBits int
	p       *big.Int
	q       *big.Int
	g       *big.Int
	r       *big.Int
}

func mustParseHex(s string) *big.Int {
	v, ok := parseHex(s)
	if !ok {
		panic("group: invalid embedded hex constant")
	}
	return v
}

func parameterSet3072() *parameterSet {
	return &parameterSet{
		name:    "3072",
		numBits: 3072,
		p:       mustParseHex(p3072Hex),
		q:       mustParseHex(q3072Hex),
		g:       mustParseHex(g3072Hex),
		r:       mustParseHex(r3072Hex),
	}
}

func parameterSet4096() *parameterSet {
	return &parameterSet{
		name:    "4096",
		numBits: 4096,
		p:       mustParseHex(p4096Hex),
		q:       mustParseHex(q4096Hex),
		g:       mustParseHex(g4096Hex),
		r:       mustParseHex(r4096Hex),
	}
}

// matches reports whether the given quadruple is identical to this
// parameter set's (P, Q, G, R). A nil r is not compared, so only P, Q and G
// must then match.
func (ps *parameterSet) matches(p, q, g, r *big.Int) bool {
	return ps.p.Cmp(p) == 0 && ps.q.Cmp(q) == 0 && ps.g.Cmp(g) == 0 &&
		(r == nil || ps.r == nil || ps.r.Cmp(r) == 0)
}
