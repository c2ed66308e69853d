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

package prng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReproducibleWithFixedSeed(t *testing.T) {
	Init(42)
	var backoffs []uint64
	var rssis []int8
	for i := 0; i < 16; i++ {
		backoffs = append(backoffs, NewBackoffUs(320))
		rssis = append(rssis, NewRssi(-95, -35))
	}

	Init(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, backoffs[i], NewBackoffUs(320))
		assert.Equal(t, rssis[i], NewRssi(-95, -35))
	}
}

func TestBounds(t *testing.T) {
	Init(0)
	for i := 0; i < 1000; i++ {
		assert.True(t, NewBackoffUs(320) < 320)

		rssi := NewRssi(-95, -35)
		assert.True(t, rssi >= -95 && rssi <= -35)

		p := NewUnitRandom()
		assert.True(t, p >= 0 && p < 1)
	}
}
