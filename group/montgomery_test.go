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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMontgomery_MultiplyMatchesMultP(t *testing.T) {
	ctx := NewGroupContext3072()

	a, err := ctx.NewElementModPUint64(11)
	require.NoError(t, err)
	b, err := ctx.NewElementModPUint64(13)
	require.NoError(t, err)

	ma, err := ctx.ToMontgomery(a)
	require.NoError(t, err)
	mb, err := ctx.ToMontgomery(b)
	require.NoError(t, err)

	product, err := ma.Multiply(mb)
	require.NoError(t, err)

	direct, err := ctx.MultP(a, b)
	require.NoError(t, err)

	assert.True(t, product.ToElementModP().Equals(direct))
}

func TestMontgomery_RejectsForeignContext(t *testing.T) {
	small := NewGroupContext3072()
	large := NewGroupContext4096()

	a, err := small.NewElementModPUint64(2)
	require.NoError(t, err)
	_, err = large.ToMontgomery(a)
	assert.Equal(t, ErrIncompatibleContexts, err)
}
