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

import "errors"

var (
	// ErrOutOfRange is returned by a checked element constructor when the
	// candidate value is negative or not strictly less than the modulus.
	ErrOutOfRange = errors.New("value out of range for this group")
	// ErrParse is returned by a checked element constructor when the input
	// string cannot be parsed as a base-10 or hex integer.
	ErrParse = errors.New("failed to parse element")
	// ErrDivisionByZero is returned by MultInvQ(0) and MultInvP(0).
	ErrDivisionByZero = errors.New("division by zero")
	// ErrIncompatibleContexts is returned when an operation mixes elements
	// that do not share the same GroupContext.
	ErrIncompatibleContexts = errors.New("elements belong to different group contexts")
	// ErrDLogExhausted is returned when a DLogger walks past its configured
	// maximum exponent without finding the target element.
	ErrDLogExhausted = errors.New("discrete log search exhausted its bound")
	// ErrUnknownParameters is returned by the admission helper when a
	// caller-supplied (P, Q, G, R) quadruple matches no whitelisted group.
	ErrUnknownParameters = errors.New("parameters do not match any recognized group")
)
