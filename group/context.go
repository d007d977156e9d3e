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

// Package group implements arithmetic in the prime-order subgroup of the
// multiplicative group modulo a large safe prime, the algebraic substrate
// underlying ElGamal encryption, Schnorr proofs and Chaum-Pedersen proofs
// in an ElectionGuard-style verifiable election system.
package group

import (
	"math/big"
	"sync"

	"github.com/shreyasminocha/egts-sub001/internal/paramgen"
	"github.com/shreyasminocha/egts-sub001/logger"
)

// defaultDLogMax bounds the discrete-log search owned by each context's
// generator-seeded DLogger. It is sized for elections with up to roughly
// ten million cast ballots; callers tallying larger elections should build
// their own DLogger with a larger bound rather than rely on the context's.
const defaultDLogMax = 10_000_000

// GroupContext bundles a whitelisted parameter set with its cached
// constants and is the factory for every element drawn from it. Contexts
// are created at most once per parameter set and live for the process
// lifetime; elements hold a borrowed (not owned) back-reference to their
// context so that arithmetic can cross-check compatibility.
type GroupContext struct {
	name    string
	numBits int
	p       *big.Int
	q       *big.Int
	g       *big.Int
	r       *big.Int

	zeroModQ *ElementModQ
	oneModQ  *ElementModQ
	twoModQ  *ElementModQ

	zeroModP *ElementModP
	oneModP  *ElementModP
	twoModP  *ElementModP

	gModP        *ElementModP
	gSquaredModP *ElementModP
	gInverseModP *ElementModP

	dLogger *DLogger
}

func newContextFromParams(ps *parameterSet) *GroupContext {
	if !paramgen.VerifyGroup(ps.p, ps.q, ps.g, ps.r) {
		panic("group: embedded parameter set " + ps.name + " failed structural verification")
	}

	ctx := &GroupContext{
		name:    ps.name,
		numBits: ps.numBits,
		p:       ps.p,
		q:       ps.q,
		g:       ps.g,
		r:       ps.r,
	}

	ctx.zeroModQ = ctx.newElementModQUnchecked(big.NewInt(0))
	ctx.oneModQ = ctx.newElementModQUnchecked(big.NewInt(1))
	ctx.twoModQ = ctx.newElementModQUnchecked(big.NewInt(2))

	ctx.zeroModP = ctx.newElementModPUnchecked(big.NewInt(0))
	ctx.oneModP = ctx.newElementModPUnchecked(big.NewInt(1))
	ctx.twoModP = ctx.newElementModPUnchecked(big.NewInt(2))

	gSquared := new(big.Int).Exp(ctx.g, big.NewInt(2), ctx.p)
	gInverse := new(big.Int).ModInverse(ctx.g, ctx.p)

	plainG := ctx.newElementModPUnchecked(new(big.Int).Set(ctx.g))
	ctx.gModP = plainG.AcceleratePow()
	ctx.gSquaredModP = ctx.newElementModPUnchecked(gSquared)
	ctx.gInverseModP = ctx.newElementModPUnchecked(gInverse)

	ctx.dLogger = NewDLogger(ctx, defaultDLogMax)

	if !ctx.gModP.IsValidResidue() {
		logger.Logger().Warn("generator failed subgroup membership check", "group", ctx.name)
	}

	return ctx
}

var (
	context3072     *GroupContext
	context3072Once sync.Once

	context4096     *GroupContext
	context4096Once sync.Once
)

// NewGroupContext3072 returns the process-wide context for the standard
// 3072-bit group, building it on first call and memoizing it thereafter.
func NewGroupContext3072() *GroupContext {
	context3072Once.Do(func() {
		context3072 = newContextFromParams(parameterSet3072())
	})
	return context3072
}

// NewGroupContext4096 returns the process-wide context for the standard
// full-strength 4096-bit group, building it on first call.
func NewGroupContext4096() *GroupContext {
	context4096Once.Do(func() {
		context4096 = newContextFromParams(parameterSet4096())
	})
	return context4096
}

// ContextForParameters returns the predeclared context whose (P, Q, G, R)
// exactly match the given quadruple, or ErrUnknownParameters if neither
// whitelisted group matches. A nil r is not compared. The core never builds
// a bespoke context for
// arbitrary caller-supplied parameters.
func ContextForParameters(p, q, g, r *big.Int) (*GroupContext, error) {
	candidates := []struct {
		ps  func() *parameterSet
		ctx func() *GroupContext
	}{
		{parameterSet3072, NewGroupContext3072},
		{parameterSet4096, NewGroupContext4096},
	}
	for _, c := range candidates {
		if c.ps().matches(p, q, g, r) {
			return c.ctx(), nil
		}
	}
	return nil, ErrUnknownParameters
}

// Name identifies this parameter set ("3072" or "4096").
func (ctx *GroupContext) Name() string { return ctx.name }

// NumBits is the bit length of P for this group.
func (ctx *GroupContext) NumBits() int { return ctx.numBits }

// P returns a copy of the large prime modulus.
func (ctx *GroupContext) P() *big.Int { return new(big.Int).Set(ctx.p) }

// Q returns a copy of the prime subgroup order.
func (ctx *GroupContext) Q() *big.Int { return new(big.Int).Set(ctx.q) }

// G returns a copy of the subgroup generator.
func (ctx *GroupContext) G() *big.Int { return new(big.Int).Set(ctx.g) }

// ZeroModQ, OneModQ and TwoModQ are the cached small constants in Z_q.
func (ctx *GroupContext) ZeroModQ() *ElementModQ { return ctx.zeroModQ }
func (ctx *GroupContext) OneModQ() *ElementModQ  { return ctx.oneModQ }
func (ctx *GroupContext) TwoModQ() *ElementModQ  { return ctx.twoModQ }

// ZeroModP, OneModP and TwoModP are the cached small constants in Z_p.
func (ctx *GroupContext) ZeroModP() *ElementModP { return ctx.zeroModP }
func (ctx *GroupContext) OneModP() *ElementModP  { return ctx.oneModP }
func (ctx *GroupContext) TwoModP() *ElementModP  { return ctx.twoModP }

// GModP is the subgroup generator, pre-accelerated with a PowRadix table.
func (ctx *GroupContext) GModP() *ElementModP { return ctx.gModP }

// GSquaredModP is G^2 mod P.
func (ctx *GroupContext) GSquaredModP() *ElementModP { return ctx.gSquaredModP }

// GInverseModP is the multiplicative inverse of G mod P.
func (ctx *GroupContext) GInverseModP() *ElementModP { return ctx.gInverseModP }

// DLogger returns the context's owned discrete-log helper, seeded from G.
func (ctx *GroupContext) DLogger() *DLogger { return ctx.dLogger }

// ContextBound is satisfied by any element that can report the
// GroupContext it was constructed from.
type ContextBound interface {
	context() *GroupContext
}

// CompatibleContextOrFail returns the single context shared by every
// element in elems, or ErrIncompatibleContexts if elems is empty or the
// elements disagree on context identity. Accepts a mix of ElementModQ and
// ElementModP values.
func CompatibleContextOrFail(elems ...ContextBound) (*GroupContext, error) {
	if len(elems) == 0 {
		return nil, ErrIncompatibleContexts
	}
	ctx := elems[0].context()
	for _, e := range elems[1:] {
		if e.context() != ctx {
			return nil, ErrIncompatibleContexts
		}
	}
	return ctx, nil
}
