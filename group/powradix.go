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

// powRadixK is the window size, in bits, used to build every PowRadix
// table. 14 bits keeps the 4096-bit group's table around 19 rows x 16384
// columns (~300k entries) while still collapsing a modPow into a handful
// of table lookups and multiplications; the contract in spec holds for any
// k in {8, 12, 14, 16}.
const powRadixK = 14

// PowRadix is a precomputed fixed-base exponentiation table: for a fixed
// base, it turns base^e mod P for e in [0, Q) into a product of w table
// lookups instead of a multi-exponentiation loop over e's bits.
//
// Table[i][v] = base^(v * 2^(k*i)) mod P, for row i in [0, w) and column v
// in [0, 2^k).
type PowRadix struct {
	ctx   *GroupContext
	base  *big.Int
	k     uint
	w     int
	table [][]*big.Int
}

// NewPowRadix builds the table for base under ctx's modulus P. Building
// is w*(2^k - 1) modular multiplications; the caller publishes the
// returned pointer only after this constructor returns, satisfying the
// publication-safe initialization spec.md §5 requires.
func NewPowRadix(ctx *GroupContext, base *big.Int) *PowRadix {
	k := uint(powRadixK)
	w := (ctx.q.BitLen() + int(k) - 1) / int(k)
	cols := 1 << k

	table := make([][]*big.Int, w)
	rowBase := new(big.Int).Set(base)
	for i := 0; i < w; i++ {
		row := make([]*big.Int, cols)
		row[0] = big.NewInt(1)
		for v := 1; v < cols; v++ {
			row[v] = new(big.Int).Mul(row[v-1], rowBase)
			row[v].Mod(row[v], ctx.p)
		}
		table[i] = row
		if i < w-1 {
			next := new(big.Int).Exp(rowBase, big.NewInt(1<<k), ctx.p)
			rowBase = next
		}
	}

	logger.Logger().Debug("built PowRadix table", "rows", w, "columns", cols)

	return &PowRadix{ctx: ctx, base: new(big.Int).Set(base), k: k, w: w, table: table}
}

// PowP computes base^e mod P for e in [0, Q) as a product of w table
// lookups, one per base-2^k digit of e (little-endian). Digits equal to
// zero contribute the identity and are skipped.
func (pr *PowRadix) PowP(e *big.Int) (*big.Int, error) {
	if e.Sign() < 0 || e.Cmp(pr.ctx.q) >= 0 {
		return nil, ErrOutOfRange
	}
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), pr.k), big.NewInt(1))
	remaining := new(big.Int).Set(e)
	result := big.NewInt(1)
	for i := 0; i < pr.w && remaining.Sign() != 0; i++ {
		digit := new(big.Int).And(remaining, mask)
		remaining.Rsh(remaining, pr.k)
		d := int(digit.Uint64())
		if d == 0 {
			continue
		}
		result.Mul(result, pr.table[i][d])
		result.Mod(result, pr.ctx.p)
	}
	return result, nil
}
