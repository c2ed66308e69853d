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

package alarm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/openthread/ot-radiosched/types"
)

func TestSchedulerDispatchOrder(t *testing.T) {
	clock := NewVirtualClock()
	sched := NewScheduler(clock)

	var fired []int
	t1 := sched.NewTimer(func() { fired = append(fired, 1) })
	t2 := sched.NewTimer(func() { fired = append(fired, 2) })
	t3 := sched.NewTimer(func() { fired = append(fired, 3) })

	t1.FireAt(3000)
	t2.FireAt(1000)
	t3.FireAt(2000)

	assert.Equal(t, Time(1000), sched.NextTimestamp())

	clock.AdvanceTo(1500)
	sched.Process()
	assert.Equal(t, []int{2}, fired)

	clock.AdvanceTo(3000)
	sched.Process()
	assert.Equal(t, []int{2, 3, 1}, fired)
	assert.Equal(t, Ever, sched.NextTimestamp())
}

func TestTimerRearmFromHandler(t *testing.T) {
	clock := NewVirtualClock()
	sched := NewScheduler(clock)

	count := 0
	var timer *Timer
	timer = sched.NewTimer(func() {
		count++
		if count < 3 {
			timer.FireAt(clock.Now() + 100)
		}
	})
	timer.FireAt(100)

	for clock.Now() < 1000 {
		clock.Advance(100)
		sched.Process()
	}

	assert.Equal(t, 3, count)
	assert.False(t, timer.IsRunning())
}

func TestTimerStop(t *testing.T) {
	clock := NewVirtualClock()
	sched := NewScheduler(clock)

	fired := false
	timer := sched.NewTimer(func() { fired = true })
	timer.FireAt(100)
	assert.True(t, timer.IsRunning())
	assert.Equal(t, Time(100), timer.FireTime())

	timer.Stop()
	assert.False(t, timer.IsRunning())
	assert.Equal(t, Ever, timer.FireTime())

	clock.AdvanceTo(200)
	sched.Process()
	assert.False(t, fired)
}

func TestTimerFireAtPastClampsToNow(t *testing.T) {
	clock := NewVirtualClock()
	sched := NewScheduler(clock)
	clock.AdvanceTo(5000)

	fired := false
	timer := sched.NewTimer(func() { fired = true })

	// a timestamp that wrapped below zero is "in the past" too
	wrapped := Time(0)
	wrapped -= 100000
	timer.FireAt(wrapped)
	assert.Equal(t, Time(5000), timer.FireTime())

	sched.Process()
	assert.True(t, fired)
}

func TestTimerRearmMovesFireTime(t *testing.T) {
	clock := NewVirtualClock()
	sched := NewScheduler(clock)

	fired := 0
	timer := sched.NewTimer(func() { fired++ })
	timer.FireAt(1000)
	timer.FireAt(4000) // re-arm before firing moves, not duplicates

	clock.AdvanceTo(2000)
	sched.Process()
	assert.Equal(t, 0, fired)

	clock.AdvanceTo(4000)
	sched.Process()
	assert.Equal(t, 1, fired)
}

func TestFireIn(t *testing.T) {
	clock := NewVirtualClock()
	sched := NewScheduler(clock)
	clock.AdvanceTo(250)

	timer := sched.NewTimer(func() {})
	timer.FireIn(1000)
	assert.Equal(t, Time(1250), timer.FireTime())
}
