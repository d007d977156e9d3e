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
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("toEvenHex / parseHex", func() {
	DescribeTable("round-trips through hex", func(v int64) {
		n := big.NewInt(v)
		hexStr := toEvenHex(n)
		Expect(len(hexStr) % 2).Should(Equal(0))

		parsed, ok := parseHex(hexStr)
		Expect(ok).Should(BeTrue())
		Expect(parsed.Cmp(n)).Should(Equal(0))
	},
		Entry("zero", int64(0)),
		Entry("single hex digit", int64(1)),
		Entry("needs padding", int64(0xA)),
		Entry("already even length", int64(0xAB)),
		Entry("large value", int64(0x123456789)),
	)

	Context("parseHex()", func() {
		It("treats the empty string as zero", func() {
			v, ok := parseHex("")
			Expect(ok).Should(BeTrue())
			Expect(v.Sign()).Should(Equal(0))
		})

		It("rejects non-hex input", func() {
			_, ok := parseHex("not-hex!")
			Expect(ok).Should(BeFalse())
		})
	})
})
