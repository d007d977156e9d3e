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

package paramgen

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestParamgen(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Paramgen Suite")
}

var _ = Describe("FermatWitness", func() {
	DescribeTable("small primes pass", func(p int64) {
		Expect(FermatWitness(big2, big.NewInt(p))).Should(BeTrue())
	},
		Entry("5", int64(5)),
		Entry("7", int64(7)),
		Entry("104729", int64(104729)),
	)

	It("rejects a composite", func() {
		Expect(FermatWitness(big2, big.NewInt(15))).Should(BeFalse())
	})
})

var _ = Describe("VerifyGroup", func() {
	It("accepts a small, hand-built consistent quadruple", func() {
		// P = Q*R + 1 with Q and P prime: Q=11, R=6, P=67.
		p := big.NewInt(67)
		q := big.NewInt(11)
		r := big.NewInt(6)
		// Find a generator g of the order-Q subgroup: g = h^R mod P for some h.
		g := new(big.Int).Exp(big.NewInt(2), r, p)
		Expect(VerifyGroup(p, q, g, r)).Should(BeTrue())
	})

	It("rejects a quadruple where P - 1 != Q * R", func() {
		p := big.NewInt(67)
		q := big.NewInt(11)
		r := big.NewInt(7)
		g := big.NewInt(2)
		Expect(VerifyGroup(p, q, g, r)).Should(BeFalse())
	})
})
