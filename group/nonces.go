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

// Nonces is a deterministic pseudo-random generator over ElementModQ,
// seeded once and then queried by index. The same (seed, headers, index)
// always yields the same element, which lets a caller regenerate a nonce
// it needs again later without persisting it.
type Nonces struct {
	ctx          *GroupContext
	internalSeed *ElementModQ
}

// NewNonces derives a Nonces generator from seed. With no headers, the
// internal seed is seed itself; with headers, it is HashElements(seed,
// headers...), binding the sequence to that header material.
func (ctx *GroupContext) NewNonces(seed *ElementModQ, headers ...interface{}) (*Nonces, error) {
	if seed.ctx != ctx {
		return nil, ErrIncompatibleContexts
	}
	internal := seed
	if len(headers) > 0 {
		args := make([]interface{}, 0, len(headers)+1)
		args = append(args, seed)
		args = append(args, headers...)
		internal = ctx.HashElements(args...)
	}
	return &Nonces{ctx: ctx, internalSeed: internal}, nil
}

// Get returns the i-th nonce in the sequence: HashElements(internalSeed, i).
func (n *Nonces) Get(i int) *ElementModQ {
	return n.ctx.HashElements(n.internalSeed, i)
}

// GetWithHeaders returns HashElements(internalSeed, i, extra...), binding
// the i-th nonce to additional per-call header material.
func (n *Nonces) GetWithHeaders(i int, extra ...interface{}) *ElementModQ {
	args := make([]interface{}, 0, len(extra)+2)
	args = append(args, n.internalSeed, i)
	args = append(args, extra...)
	return n.ctx.HashElements(args...)
}

// Iterator returns a function that yields successive nonces 0, 1, 2, ...
// on each call, for callers that want a stream rather than indexed access.
// It never terminates on its own; the caller decides when to stop pulling.
func (n *Nonces) Iterator() func() *ElementModQ {
	i := 0
	return func() *ElementModQ {
		v := n.Get(i)
		i++
		return v
	}
}
