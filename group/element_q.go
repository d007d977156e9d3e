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
	"crypto/rand"
	"math/big"

	"github.com/shreyasminocha/egts-sub001/internal/randsrc"
)

// ElementModQ is an immutable non-negative integer strictly less than Q,
// paired with the context that owns it.
type ElementModQ struct {
	ctx *GroupContext
	v   *big.Int
}

func (ctx *GroupContext) newElementModQUnchecked(v *big.Int) *ElementModQ {
	return &ElementModQ{ctx: ctx, v: v}
}

func (e *ElementModQ) context() *GroupContext { return e.ctx }

// NewElementModQ checks v and, if 0 <= v < Q, wraps it. Otherwise it
// reports ErrOutOfRange and returns nil.
func (ctx *GroupContext) NewElementModQ(v *big.Int) (*ElementModQ, error) {
	if v.Sign() < 0 || v.Cmp(ctx.q) >= 0 {
		return nil, ErrOutOfRange
	}
	return ctx.newElementModQUnchecked(new(big.Int).Set(v)), nil
}

// NewElementModQUint64 is the uint64 overload of NewElementModQ.
func (ctx *GroupContext) NewElementModQUint64(v uint64) (*ElementModQ, error) {
	return ctx.NewElementModQ(new(big.Int).SetUint64(v))
}

// NewElementModQFromString checks-constructs from a base-10 decimal
// string, reporting ErrParse on malformed input.
func (ctx *GroupContext) NewElementModQFromString(s string) (*ElementModQ, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrParse
	}
	return ctx.NewElementModQ(v)
}

// NewElementModQFromHex checks-constructs from a hex string (no "0x"
// prefix required), reporting ErrParse on malformed input and
// ErrOutOfRange if the decoded value is out of bounds.
func (ctx *GroupContext) NewElementModQFromHex(s string) (*ElementModQ, error) {
	v, ok := parseHex(s)
	if !ok {
		return nil, ErrParse
	}
	return ctx.NewElementModQ(v)
}

// NewElementModQSafe wraps v into [m, Q) via (v mod (Q - m)) + m, never
// failing. Use this only at call sites that must produce some element and
// cannot surface a construction error.
func (ctx *GroupContext) NewElementModQSafe(v *big.Int, m uint64) *ElementModQ {
	minimum := new(big.Int).SetUint64(m)
	span := new(big.Int).Sub(ctx.q, minimum)
	wrapped := new(big.Int).Mod(v, span)
	wrapped.Add(wrapped, minimum)
	return ctx.newElementModQUnchecked(wrapped)
}

// NewElementModQSafeFromString is the failure-tolerant string overload:
// on a parse failure it returns ZeroModQ rather than an error.
func (ctx *GroupContext) NewElementModQSafeFromString(s string) *ElementModQ {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return ctx.ZeroModQ()
	}
	return ctx.NewElementModQSafe(v, 0)
}

// RandQ draws a uniformly random element of [minimum, Q) from the platform
// CSPRNG. 32 bytes (256 bits) comfortably covers every recognized group's Q,
// so the wrap bias introduced by NewElementModQSafe is cryptographically
// negligible.
func (ctx *GroupContext) RandQ(minimum uint64) (*ElementModQ, error) {
	bs, err := randsrc.Bytes(rand.Reader, UInt256Size)
	if err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(bs)
	return ctx.NewElementModQSafe(v, minimum), nil
}

// ToInt returns a copy of the underlying integer.
func (e *ElementModQ) ToInt() *big.Int { return new(big.Int).Set(e.v) }

// ToBytes is the minimal-length big-endian encoding (zero maps to an
// empty slice).
func (e *ElementModQ) ToBytes() []byte { return e.v.Bytes() }

// ToHex renders e as uppercase, even-length hex.
func (e *ElementModQ) ToHex() string { return toEvenHex(e.v) }

// ToUInt256 renders e as the 32-byte, big-endian, zero-padded canonical
// form consumed by the hash layer. Every recognized Q is smaller than
// 2^256, so padding is the only direction ever taken.
func (e *ElementModQ) ToUInt256() [UInt256Size]byte {
	var out [UInt256Size]byte
	copy(out[:], toFixedBytes(e.v, UInt256Size))
	return out
}

// IsZero reports whether e is the additive identity.
func (e *ElementModQ) IsZero() bool { return e.v.Sign() == 0 }

// IsInBounds reports 0 <= e < Q (always true for a validly constructed
// element; exposed for callers auditing externally-sourced values).
func (e *ElementModQ) IsInBounds() bool {
	return e.v.Sign() >= 0 && e.v.Cmp(e.ctx.q) < 0
}

// IsInBoundsNoZero reports 0 < e < Q.
func (e *ElementModQ) IsInBoundsNoZero() bool {
	return e.v.Sign() > 0 && e.v.Cmp(e.ctx.q) < 0
}

// Equals is value-plus-context equality.
func (e *ElementModQ) Equals(other *ElementModQ) bool {
	return e.ctx == other.ctx && e.v.Cmp(other.v) == 0
}

// Cmp gives total ordering over the underlying integers; panics-free,
// undefined across contexts (callers should check CompatibleContextOrFail
// first when that matters).
func (e *ElementModQ) Cmp(other *ElementModQ) int { return e.v.Cmp(other.v) }

func (e *ElementModQ) Less(other *ElementModQ) bool           { return e.Cmp(other) < 0 }
func (e *ElementModQ) LessOrEqual(other *ElementModQ) bool    { return e.Cmp(other) <= 0 }
func (e *ElementModQ) Greater(other *ElementModQ) bool        { return e.Cmp(other) > 0 }
func (e *ElementModQ) GreaterOrEqual(other *ElementModQ) bool { return e.Cmp(other) >= 0 }

// AddQ sums any number of elements of the same context, reducing mod Q.
func (ctx *GroupContext) AddQ(elems ...*ElementModQ) (*ElementModQ, error) {
	if err := ctx.checkOwned(elems); err != nil {
		return nil, err
	}
	sum := big.NewInt(0)
	for _, e := range elems {
		sum.Add(sum, e.v)
	}
	sum.Mod(sum, ctx.q)
	return ctx.newElementModQUnchecked(sum), nil
}

// NegateQ returns Q - e, or 0 when e is 0.
func (ctx *GroupContext) NegateQ(e *ElementModQ) (*ElementModQ, error) {
	if e.ctx != ctx {
		return nil, ErrIncompatibleContexts
	}
	if e.IsZero() {
		return ctx.ZeroModQ(), nil
	}
	return ctx.newElementModQUnchecked(new(big.Int).Sub(ctx.q, e.v)), nil
}

// SubQ is defined as AddQ(a, NegateQ(b)) to avoid the negative-intermediate
// semantics that a truncated %-style modulo would otherwise produce.
func (ctx *GroupContext) SubQ(a, b *ElementModQ) (*ElementModQ, error) {
	negB, err := ctx.NegateQ(b)
	if err != nil {
		return nil, err
	}
	return ctx.AddQ(a, negB)
}

// MultQ multiplies any number of elements of the same context, reducing
// mod Q.
func (ctx *GroupContext) MultQ(elems ...*ElementModQ) (*ElementModQ, error) {
	if err := ctx.checkOwned(elems); err != nil {
		return nil, err
	}
	product := big.NewInt(1)
	for _, e := range elems {
		product.Mul(product, e.v)
		product.Mod(product, ctx.q)
	}
	return ctx.newElementModQUnchecked(product), nil
}

// MultInvQ returns the multiplicative inverse of e mod Q, failing with
// ErrDivisionByZero when e is zero.
func (ctx *GroupContext) MultInvQ(e *ElementModQ) (*ElementModQ, error) {
	if e.ctx != ctx {
		return nil, ErrIncompatibleContexts
	}
	if e.IsZero() {
		return nil, ErrDivisionByZero
	}
	inv := new(big.Int).ModInverse(e.v, ctx.q)
	return ctx.newElementModQUnchecked(inv), nil
}

// DivQ computes a * b^-1 mod Q.
func (ctx *GroupContext) DivQ(a, b *ElementModQ) (*ElementModQ, error) {
	bInv, err := ctx.MultInvQ(b)
	if err != nil {
		return nil, err
	}
	return ctx.MultQ(a, bInv)
}

func (ctx *GroupContext) checkOwned(elems []*ElementModQ) error {
	for _, e := range elems {
		if e.ctx != ctx {
			return ErrIncompatibleContexts
		}
	}
	return nil
}
