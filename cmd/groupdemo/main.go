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

package main

import (
	"flag"

	"github.com/getamis/sirius/log"

	"github.com/shreyasminocha/egts-sub001/group"
)

func main() {
	groupName := flag.String("group", "3072", "group to exercise: 3072 or 4096")
	flag.Parse()

	var ctx *group.GroupContext
	switch *groupName {
	case "3072":
		ctx = group.NewGroupContext3072()
	case "4096":
		ctx = group.NewGroupContext4096()
	default:
		log.Crit("unknown group", "group", *groupName)
	}

	log.Info("built group context", "name", ctx.Name(), "bits", ctx.NumBits())

	exponent, err := ctx.RandQ(0)
	if err != nil {
		log.Crit("failed to draw random exponent", "err", err)
	}

	gToExponent, err := ctx.GModP().PowP(exponent)
	if err != nil {
		log.Crit("failed to exponentiate generator", "err", err)
	}
	log.Info("computed g^exponent", "value", gToExponent.ToHex())

	if !gToExponent.IsValidResidue() {
		log.Crit("g^exponent is not a member of the order-Q subgroup")
	}

	small, err := ctx.GModP().PowP(uint64(7))
	if err != nil {
		log.Crit("failed to compute g^7", "err", err)
	}
	found, ok, err := ctx.DLogger().Discover(small)
	if err != nil {
		log.Crit("discrete log search failed", "err", err)
	}
	if !ok || found != 7 {
		log.Crit("discrete log search returned an unexpected result", "found", found, "ok", ok)
	}
	log.Info("recovered discrete log of g^7", "exponent", found)

	seed, err := ctx.RandQ(0)
	if err != nil {
		log.Crit("failed to draw nonce seed", "err", err)
	}
	nonces, err := ctx.NewNonces(seed, "groupdemo")
	if err != nil {
		log.Crit("failed to build nonce generator", "err", err)
	}
	log.Info("derived first nonce", "value", nonces.Get(0).ToHex())

	h := ctx.HashElements("groupdemo", exponent, gToExponent)
	log.Info("computed hashElements digest", "value", h.ToHex())
}
