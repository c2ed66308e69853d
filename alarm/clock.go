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

// Package alarm provides one-shot microsecond timers on a pluggable
// monotonic clock, for driving the duty-cycle timing of the radio scheduler.
package alarm

import (
	"time"

	"github.com/openthread/ot-radiosched/logger"
	. "github.com/openthread/ot-radiosched/types"
)

// Clock is a monotonic microsecond clock.
type Clock interface {
	Now() Time
}

// SystemClock is a Clock backed by the host's monotonic clock, counting
// microseconds since construction.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() Time {
	return Time(time.Since(c.start).Microseconds())
}

// VirtualClock is a Clock that only moves when explicitly advanced, for
// deterministic runs and tests.
type VirtualClock struct {
	now Time
}

func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

func (c *VirtualClock) Now() Time {
	return c.now
}

// AdvanceTo moves the clock forward to the given timestamp.
func (c *VirtualClock) AdvanceTo(ts Time) {
	logger.AssertTruef(ts >= c.now, "virtual clock moving backwards: %d < %d", ts, c.now)
	c.now = ts
}

// Advance moves the clock forward by the given number of microseconds.
func (c *VirtualClock) Advance(durationUs uint64) {
	c.now += durationUs
}
