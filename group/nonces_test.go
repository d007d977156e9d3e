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

func TestNonces_SameSeedSameIndexIsDeterministic(t *testing.T) {
	ctx := NewGroupContext3072()
	seed, err := ctx.NewElementModQUint64(1234)
	require.NoError(t, err)

	a, err := ctx.NewNonces(seed)
	require.NoError(t, err)
	b, err := ctx.NewNonces(seed)
	require.NoError(t, err)

	assert.True(t, a.Get(0).Equals(b.Get(0)))
	assert.True(t, a.Get(5).Equals(b.Get(5)))
}

func TestNonces_DistinctIndicesDiffer(t *testing.T) {
	ctx := NewGroupContext3072()
	seed, err := ctx.NewElementModQUint64(1234)
	require.NoError(t, err)

	n, err := ctx.NewNonces(seed)
	require.NoError(t, err)

	assert.False(t, n.Get(0).Equals(n.Get(1)))
}

func TestNonces_HeadersChangeTheSequence(t *testing.T) {
	ctx := NewGroupContext3072()
	seed, err := ctx.NewElementModQUint64(1234)
	require.NoError(t, err)

	plain, err := ctx.NewNonces(seed)
	require.NoError(t, err)
	withHeader, err := ctx.NewNonces(seed, "election-1")
	require.NoError(t, err)

	assert.False(t, plain.Get(0).Equals(withHeader.Get(0)))
}

func TestNonces_IteratorMatchesIndexedAccess(t *testing.T) {
	ctx := NewGroupContext3072()
	seed, err := ctx.NewElementModQUint64(1234)
	require.NoError(t, err)

	n, err := ctx.NewNonces(seed)
	require.NoError(t, err)

	next := n.Iterator()
	for i := 0; i < 3; i++ {
		assert.True(t, next().Equals(n.Get(i)))
	}
}

func TestNonces_RejectsForeignContextSeed(t *testing.T) {
	small := NewGroupContext3072()
	large := NewGroupContext4096()

	seed, err := large.NewElementModQUint64(1)
	require.NoError(t, err)

	_, err = small.NewNonces(seed)
	assert.Equal(t, ErrIncompatibleContexts, err)
}
