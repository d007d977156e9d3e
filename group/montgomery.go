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

// MontgomeryElementModP wraps an ElementModP behind a multiplication-only
// contract. Today it is a pass-through onto MultP; the type exists as a
// forward-compatibility seam so a future backend that performs genuine
// Montgomery-form multiplication (tracking x*R mod P rather than x) can be
// substituted without changing any caller of Multiply.
type MontgomeryElementModP struct {
	ctx *GroupContext
	e   *ElementModP
}

// ToMontgomery wraps e for Montgomery-style multiplication.
func (ctx *GroupContext) ToMontgomery(e *ElementModP) (*MontgomeryElementModP, error) {
	if e.ctx != ctx {
		return nil, ErrIncompatibleContexts
	}
	return &MontgomeryElementModP{ctx: ctx, e: e}, nil
}

// Multiply computes m * other, lifted back into the wrapper.
func (m *MontgomeryElementModP) Multiply(other *MontgomeryElementModP) (*MontgomeryElementModP, error) {
	if m.ctx != other.ctx {
		return nil, ErrIncompatibleContexts
	}
	product, err := m.ctx.MultP(m.e, other.e)
	if err != nil {
		return nil, err
	}
	return &MontgomeryElementModP{ctx: m.ctx, e: product}, nil
}

// ToElementModP unwraps back to a plain element.
func (m *MontgomeryElementModP) ToElementModP() *ElementModP { return m.e }
