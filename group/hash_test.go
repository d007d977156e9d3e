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
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashElements_NoArgumentsHashesTheNullLiteral(t *testing.T) {
	ctx := NewGroupContext3072()

	got := ctx.HashElements()

	digest := sha256.Sum256([]byte("|null|"))
	want := new(big.Int).SetBytes(digest[:])
	want.Mod(want, ctx.Q())

	assert.Equal(t, 0, got.ToInt().Cmp(want))
}

func TestHashElements_IsDeterministic(t *testing.T) {
	ctx := NewGroupContext3072()

	seven, err := ctx.NewElementModQUint64(7)
	require.NoError(t, err)

	a := ctx.HashElements("header", 3, seven)
	b := ctx.HashElements("header", 3, seven)

	assert.True(t, a.Equals(b))
}

func TestHashElements_DistinguishesArgumentBoundaries(t *testing.T) {
	ctx := NewGroupContext3072()

	a := ctx.HashElements("ab", "c")
	b := ctx.HashElements("a", "bc")

	assert.False(t, a.Equals(b))
}

func TestHashElements_NilArgumentFramesAsNull(t *testing.T) {
	ctx := NewGroupContext3072()

	a := ctx.HashElements(nil)
	b := ctx.HashElements("placeholder")
	c := ctx.HashElements(nil, "placeholder")

	assert.False(t, a.Equals(b))
	assert.False(t, c.Equals(a))
}
