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

// Package paramgen sanity-checks the embedded group parameters when a group
// context is first built. It never generates fresh parameters at runtime; the whitelisted
// groups are fixed, hand-verified constants, and this package exists only to
// catch a transcription error in those constants before they reach the rest
// of the program.
package paramgen

import "math/big"

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// FermatWitness reports whether base^(p-1) == 1 (mod p), the classic Fermat
// compositeness witness. A false result proves p composite; a true result is
// strong (though not conclusive) evidence of primality, sufficient here
// because it backstops constants that were already verified externally.
func FermatWitness(base, p *big.Int) bool {
	exp := new(big.Int).Sub(p, big1)
	residue := new(big.Int).Exp(base, exp, p)
	return residue.Cmp(big1) == 0
}

// VerifyGroup checks the structural invariants a whitelisted group's
// (P, Q, G, R) quadruple must satisfy: P and Q pass a Fermat witness test
// against base 2, P - 1 == Q * R, and G generates a subgroup of order
// dividing Q (G^Q == 1 mod P).
func VerifyGroup(p, q, g, r *big.Int) bool {
	if !FermatWitness(big2, p) || !FermatWitness(big2, q) {
		return false
	}
	pMinus1 := new(big.Int).Sub(p, big1)
	qTimesR := new(big.Int).Mul(q, r)
	if pMinus1.Cmp(qTimesR) != 0 {
		return false
	}
	residue := new(big.Int).Exp(g, q, p)
	return residue.Cmp(big1) == 0
}
