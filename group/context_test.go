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

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("GroupContext", func() {
	Context("NewGroupContext3072()", func() {
		It("is memoized across calls", func() {
			a := NewGroupContext3072()
			b := NewGroupContext3072()
			Expect(a).Should(BeIdenticalTo(b))
		})

		It("has a generator that is a member of the order-Q subgroup", func() {
			ctx := NewGroupContext3072()
			Expect(ctx.GModP().IsValidResidue()).Should(BeTrue())
		})

		It("satisfies P - 1 = Q * R", func() {
			ctx := NewGroupContext3072()
			lhs := new(big.Int).Sub(ctx.P(), big.NewInt(1))
			rhs := new(big.Int).Mul(ctx.Q(), ctx.r)
			Expect(lhs.Cmp(rhs)).Should(Equal(0))
		})
	})

	Context("NewGroupContext4096()", func() {
		It("is a distinct context from the 3072-bit group", func() {
			small := NewGroupContext3072()
			large := NewGroupContext4096()
			Expect(small).ShouldNot(BeIdenticalTo(large))
			Expect(small.NumBits()).Should(Equal(3072))
			Expect(large.NumBits()).Should(Equal(4096))
		})
	})

	Context("ContextForParameters()", func() {
		It("recognizes the standard 3072-bit parameters", func() {
			ctx := NewGroupContext3072()
			found, err := ContextForParameters(ctx.P(), ctx.Q(), ctx.G(), ctx.r)
			Expect(err).Should(BeNil())
			Expect(found).Should(BeIdenticalTo(ctx))
		})

		It("rejects an unrecognized quadruple", func() {
			_, err := ContextForParameters(big.NewInt(7), big.NewInt(3), big.NewInt(2), big.NewInt(1))
			Expect(err).Should(Equal(ErrUnknownParameters))
		})
	})

	Context("CompatibleContextOrFail()", func() {
		It("fails when given no elements", func() {
			_, err := CompatibleContextOrFail()
			Expect(err).Should(Equal(ErrIncompatibleContexts))
		})

		It("fails across two different contexts", func() {
			a := NewGroupContext3072().OneModQ()
			b := NewGroupContext4096().OneModQ()
			_, err := CompatibleContextOrFail(a, b)
			Expect(err).Should(Equal(ErrIncompatibleContexts))
		})

		It("succeeds across a mix of ElementModQ and ElementModP", func() {
			ctx := NewGroupContext3072()
			_, err := CompatibleContextOrFail(ctx.OneModQ(), ctx.OneModP())
			Expect(err).Should(BeNil())
		})
	})
})
