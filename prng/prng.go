// Copyright (c) 2025, The OpenThread Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

// Package prng provides the seeded random generators used by the radio
// stub, kept separate so a fixed root seed makes whole runs reproducible.
package prng

import (
	"math/rand"
	"time"
)

var backoffRandGenerator *rand.Rand
var rssiRandGenerator *rand.Rand
var unitRandGenerator *rand.Rand

// Init initializes the prng package, either with a fixed PRNG seed (rootSeed != 0) or a 'random' time-based PRNG
// seed (if rootSeed == 0).
func Init(rootSeed int64) {
	if rootSeed == 0 {
		rootSeed = time.Now().UnixNano()
	}

	backoffRandGenerator = rand.New(rand.NewSource(rootSeed + 1))
	rssiRandGenerator = rand.New(rand.NewSource(rootSeed + 2))
	unitRandGenerator = rand.New(rand.NewSource(rootSeed + 3))
}

// NewBackoffUs generates a random CSMA backoff duration in [0, maxUs).
func NewBackoffUs(maxUs int) uint64 {
	return uint64(backoffRandGenerator.Intn(maxUs))
}

// NewRssi generates a random RSSI sample in [min, max].
func NewRssi(min int8, max int8) int8 {
	return min + int8(rssiRandGenerator.Intn(int(max-min)+1))
}

// NewUnitRandom generates a new random unit [0, 1] float, which can be used as a random probability.
func NewUnitRandom() float64 {
	return unitRandGenerator.Float64()
}

func init() {
	Init(0)
}
