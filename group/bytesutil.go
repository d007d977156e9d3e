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
	"encoding/hex"
	"math/big"
	"strings"
)

// UInt256Size is the width, in bytes, of the canonical fixed-size encoding
// consumed by the hash layer.
const UInt256Size = 32

// toEvenHex renders v as uppercase hex, left-padding with a leading zero
// when the natural encoding has an odd number of digits. Even-length hex
// round-trips losslessly through byte-level constructors; a naive
// big.Int.Text(16) does not guarantee that.
func toEvenHex(v *big.Int) string {
	s := v.Text(16)
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return strings.ToUpper(s)
}

// parseHex decodes a hex string (with or without an odd number of digits)
// into a non-negative big.Int. It rejects non-hex characters.
func parseHex(s string) (*big.Int, bool) {
	if len(s) == 0 {
		return big.NewInt(0), true
	}
	padded := s
	if len(padded)%2 == 1 {
		padded = "0" + padded
	}
	bs, err := hex.DecodeString(padded)
	if err != nil {
		return nil, false
	}
	return new(big.Int).SetBytes(bs), true
}

// toFixedBytes renders v as a big-endian byte slice of exactly width bytes,
// zero-padded on the left. The caller is responsible for ensuring v fits.
func toFixedBytes(v *big.Int, width int) []byte {
	out := make([]byte, width)
	v.FillBytes(out)
	return out
}
