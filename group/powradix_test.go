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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowRadix_MatchesModPow(t *testing.T) {
	ctx := NewGroupContext3072()
	table := NewPowRadix(ctx, ctx.G())

	exponents := []int64{0, 1, 2, 1000, 1 << 20}
	for _, e := range exponents {
		exp := big.NewInt(e)
		got, err := table.PowP(exp)
		require.NoError(t, err)

		want := new(big.Int).Exp(ctx.G(), exp, ctx.P())
		assert.Equal(t, 0, got.Cmp(want), "mismatch for exponent %d", e)
	}
}

func TestPowRadix_RejectsOutOfRangeExponent(t *testing.T) {
	ctx := NewGroupContext3072()
	table := NewPowRadix(ctx, ctx.G())

	_, err := table.PowP(ctx.Q())
	assert.Equal(t, ErrOutOfRange, err)

	_, err = table.PowP(big.NewInt(-1))
	assert.Equal(t, ErrOutOfRange, err)
}
