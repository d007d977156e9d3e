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

import (
	"sync"
)

// DLogger inverts g^k for small k, answering "what is the smallest k with
// g^k = y?" up to a configured bound. It is used to recover tallies from
// homomorphically combined ElGamal ciphertexts, where the exponent is
// bounded by the number of voters who could have contributed to it.
//
// The cache grows monotonically: once a power is recorded it is never
// evicted, and concurrent callers share the benefit of prior walks.
type DLogger struct {
	ctx   *GroupContext
	base  *ElementModP
	kMax  int
	mu    sync.Mutex
	cache map[string]int
	p     *ElementModP
	i     int
}

// NewDLogger creates a DLogger for the context's generator G, bounded by
// kMax: queries for
// exponents beyond kMax fail with ErrDLogExhausted instead of running
// forever.
func NewDLogger(ctx *GroupContext, kMax int) *DLogger {
	return newDLoggerWithBase(ctx, ctx.gModP, kMax)
}

func newDLoggerWithBase(ctx *GroupContext, base *ElementModP, kMax int) *DLogger {
	d := &DLogger{
		ctx:   ctx,
		base:  base,
		kMax:  kMax,
		cache: make(map[string]int),
	}
	d.p = ctx.OneModP()
	d.i = 0
	d.cache[d.p.ToHex()] = 0
	return d
}

// Discover returns the smallest k in [0, kMax] with base^k == y, extending
// the cached walk as needed. ok is false, with ErrDLogExhausted, when the
// walk reaches kMax without finding y.
func (d *DLogger) Discover(y *ElementModP) (int, bool, error) {
	if y.ctx != d.ctx {
		return 0, false, ErrIncompatibleContexts
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	key := y.ToHex()
	if k, ok := d.cache[key]; ok {
		return k, true, nil
	}

	for d.i < d.kMax {
		next, err := d.ctx.MultP(d.p, d.base)
		if err != nil {
			return 0, false, err
		}
		d.p = next
		d.i++
		d.cache[d.p.ToHex()] = d.i
		if d.p.Equals(y) {
			return d.i, true, nil
		}
	}
	return 0, false, ErrDLogExhausted
}
