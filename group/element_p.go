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
	"math/big"

	"github.com/shreyasminocha/egts-sub001/logger"
)

// ElementModP is an immutable non-negative integer strictly less than P,
// paired with the context that owns it. An element accelerated via
// AcceleratePow carries an owned PowRadix table and routes PowP through it;
// a plain element holds only the integer. Never share a table between
// elements with different bases.
type ElementModP struct {
	ctx   *GroupContext
	v     *big.Int
	table *PowRadix // nil unless accelerated
}

func (ctx *GroupContext) newElementModPUnchecked(v *big.Int) *ElementModP {
	return &ElementModP{ctx: ctx, v: v}
}

func (e *ElementModP) context() *GroupContext { return e.ctx }

// NewElementModP checks v and, if 0 <= v < P, wraps it.
func (ctx *GroupContext) NewElementModP(v *big.Int) (*ElementModP, error) {
	if v.Sign() < 0 || v.Cmp(ctx.p) >= 0 {
		return nil, ErrOutOfRange
	}
	return ctx.newElementModPUnchecked(new(big.Int).Set(v)), nil
}

// NewElementModPUint64 is the uint64 overload of NewElementModP.
func (ctx *GroupContext) NewElementModPUint64(v uint64) (*ElementModP, error) {
	return ctx.NewElementModP(new(big.Int).SetUint64(v))
}

// NewElementModPFromString checks-constructs from a base-10 decimal string.
func (ctx *GroupContext) NewElementModPFromString(s string) (*ElementModP, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrParse
	}
	return ctx.NewElementModP(v)
}

// NewElementModPFromHex checks-constructs from a hex string.
func (ctx *GroupContext) NewElementModPFromHex(s string) (*ElementModP, error) {
	v, ok := parseHex(s)
	if !ok {
		return nil, ErrParse
	}
	return ctx.NewElementModP(v)
}

// NewElementModPSafe wraps v into [m, P) via (v mod (P - m)) + m.
func (ctx *GroupContext) NewElementModPSafe(v *big.Int, m uint64) *ElementModP {
	minimum := new(big.Int).SetUint64(m)
	span := new(big.Int).Sub(ctx.p, minimum)
	wrapped := new(big.Int).Mod(v, span)
	wrapped.Add(wrapped, minimum)
	return ctx.newElementModPUnchecked(wrapped)
}

// ToInt returns a copy of the underlying integer.
func (e *ElementModP) ToInt() *big.Int { return new(big.Int).Set(e.v) }

// ToBytes is the minimal-length big-endian encoding.
func (e *ElementModP) ToBytes() []byte { return e.v.Bytes() }

// ToHex renders e as uppercase, even-length hex.
func (e *ElementModP) ToHex() string { return toEvenHex(e.v) }

// IsZero reports whether e is the additive identity.
func (e *ElementModP) IsZero() bool { return e.v.Sign() == 0 }

// IsInBounds reports 0 <= e < P.
func (e *ElementModP) IsInBounds() bool {
	return e.v.Sign() >= 0 && e.v.Cmp(e.ctx.p) < 0
}

// IsInBoundsNoZero reports 0 < e < P.
func (e *ElementModP) IsInBoundsNoZero() bool {
	return e.v.Sign() > 0 && e.v.Cmp(e.ctx.p) < 0
}

// Equals is value-plus-context equality. Acceleration state is not part of
// identity: an accelerated element equals its plain counterpart.
func (e *ElementModP) Equals(other *ElementModP) bool {
	return e.ctx == other.ctx && e.v.Cmp(other.v) == 0
}

// Cmp gives total ordering over the underlying integers.
func (e *ElementModP) Cmp(other *ElementModP) int { return e.v.Cmp(other.v) }

func (e *ElementModP) Less(other *ElementModP) bool           { return e.Cmp(other) < 0 }
func (e *ElementModP) LessOrEqual(other *ElementModP) bool    { return e.Cmp(other) <= 0 }
func (e *ElementModP) Greater(other *ElementModP) bool        { return e.Cmp(other) > 0 }
func (e *ElementModP) GreaterOrEqual(other *ElementModP) bool { return e.Cmp(other) >= 0 }

// IsValidResidue reports whether e is in bounds and a member of the
// order-Q subgroup, i.e. e^Q == 1 (mod P). A false result is logged as a
// diagnostic but never changes the return value.
func (e *ElementModP) IsValidResidue() bool {
	if !e.IsInBounds() {
		return false
	}
	residue := new(big.Int).Exp(e.v, e.ctx.q, e.ctx.p)
	ok := residue.Cmp(bigOne) == 0
	if !ok {
		logger.Logger().Debug("element is not a member of the order-Q subgroup", "value", e.ToHex())
	}
	return ok
}

var bigOne = big.NewInt(1)

// AcceleratePow returns a functionally equivalent element backed by a
// PowRadix table for this element's value as base. Calling it on an
// already-accelerated element is the identity.
func (e *ElementModP) AcceleratePow() *ElementModP {
	if e.table != nil {
		return e
	}
	return &ElementModP{
		ctx:   e.ctx,
		v:     e.v,
		table: NewPowRadix(e.ctx, e.v),
	}
}

// PowP raises this element to exp, which is either a non-negative uint64
// or an *ElementModQ. When this element carries a PowRadix table, the
// exponentiation is computed via table lookups instead of a direct modPow.
func (e *ElementModP) PowP(exp interface{}) (*ElementModP, error) {
	expQ, err := e.ctx.toExponent(exp)
	if err != nil {
		return nil, err
	}
	if expQ.Sign() == 0 {
		return e.ctx.OneModP(), nil
	}
	if expQ.Cmp(bigOne) == 0 {
		return e, nil
	}
	if e.table != nil {
		v, err := e.table.PowP(expQ)
		if err != nil {
			return nil, err
		}
		return e.ctx.newElementModPUnchecked(v), nil
	}
	result := new(big.Int).Exp(e.v, expQ, e.ctx.p)
	return e.ctx.newElementModPUnchecked(result), nil
}

// toExponent normalizes a PowP exponent argument to a reduced big.Int in
// [0, Q).
func (ctx *GroupContext) toExponent(exp interface{}) (*big.Int, error) {
	switch v := exp.(type) {
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case int:
		if v < 0 {
			return nil, ErrOutOfRange
		}
		return big.NewInt(int64(v)), nil
	case *ElementModQ:
		if v.ctx != ctx {
			return nil, ErrIncompatibleContexts
		}
		return v.v, nil
	default:
		return nil, ErrOutOfRange
	}
}

// MultP multiplies any number of elements of the same context, reducing
// mod P.
func (ctx *GroupContext) MultP(elems ...*ElementModP) (*ElementModP, error) {
	product := big.NewInt(1)
	for _, e := range elems {
		if e.ctx != ctx {
			return nil, ErrIncompatibleContexts
		}
		product.Mul(product, e.v)
		product.Mod(product, ctx.p)
	}
	return ctx.newElementModPUnchecked(product), nil
}

// MultInvP returns the multiplicative inverse of e mod P, failing with
// ErrDivisionByZero when e is zero.
func (ctx *GroupContext) MultInvP(e *ElementModP) (*ElementModP, error) {
	if e.ctx != ctx {
		return nil, ErrIncompatibleContexts
	}
	if e.IsZero() {
		return nil, ErrDivisionByZero
	}
	inv := new(big.Int).ModInverse(e.v, ctx.p)
	return ctx.newElementModPUnchecked(inv), nil
}

// DivP computes a * b^-1 mod P.
func (ctx *GroupContext) DivP(a, b *ElementModP) (*ElementModP, error) {
	bInv, err := ctx.MultInvP(b)
	if err != nil {
		return nil, err
	}
	return ctx.MultP(a, bInv)
}

// PowP raises base to exp; it is equivalent to base.PowP(exp).
func (ctx *GroupContext) PowP(base *ElementModP, exp interface{}) (*ElementModP, error) {
	return base.PowP(exp)
}

// GPowP computes G^exp mod P using the pre-accelerated generator.
func (ctx *GroupContext) GPowP(exp interface{}) (*ElementModP, error) {
	return ctx.gModP.PowP(exp)
}
