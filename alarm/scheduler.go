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
	"container/heap"
	"math"

	"github.com/openthread/ot-radiosched/logger"
	. "github.com/openthread/ot-radiosched/types"
)

const (
	// Ever is the timestamp of a timer that is not scheduled to fire.
	Ever Time = math.MaxUint64 / 2
)

// Timer is a one-shot timer. It may be re-armed from within its own handler,
// which is how the duty-cycle timers chain their periods.
type Timer struct {
	handler  func()
	fireTime Time

	index int // heap index, -1 when not in the queue
	sched *Scheduler
}

// FireAt (re)arms the timer to fire at the given timestamp. A timestamp
// already in the past, including one that wrapped around below zero, fires
// on the next Process call.
func (t *Timer) FireAt(ts Time) {
	if int64(ts-t.sched.clock.Now()) < 0 {
		ts = t.sched.clock.Now()
	}

	if t.index < 0 {
		t.fireTime = ts
		heap.Push(&t.sched.q, t)
	} else if t.fireTime != ts {
		t.fireTime = ts
		heap.Fix(&t.sched.q, t.index)
	}
}

// FireIn arms the timer to fire after the given number of microseconds.
func (t *Timer) FireIn(durationUs uint64) {
	t.FireAt(t.sched.clock.Now() + durationUs)
}

// Stop cancels the timer if it is scheduled.
func (t *Timer) Stop() {
	if t.index >= 0 {
		heap.Remove(&t.sched.q, t.index)
	}
}

// IsRunning reports whether the timer is scheduled to fire.
func (t *Timer) IsRunning() bool {
	return t.index >= 0
}

// FireTime returns the timestamp the timer will fire at, or Ever when the
// timer is stopped.
func (t *Timer) FireTime() Time {
	if t.index < 0 {
		return Ever
	}
	return t.fireTime
}

type timerQueue []*Timer

func (tq timerQueue) Len() int {
	return len(tq)
}

func (tq timerQueue) Less(i, j int) bool {
	return tq[i].fireTime < tq[j].fireTime
}

func (tq timerQueue) Swap(i, j int) {
	a, b := tq[i], tq[j]
	if a.index != i && b.index != j {
		logger.Panicf("wrong index")
	}

	tq[i], tq[j] = b, a             // swap the elements
	tq[i].index, tq[j].index = i, j // fix the indexes
}

func (tq *timerQueue) Push(x interface{}) {
	t := x.(*Timer)
	*tq = append(*tq, t)
	t.index = len(*tq) - 1
}

func (tq *timerQueue) Pop() (elem interface{}) {
	tqlen := len(*tq)
	t := (*tq)[tqlen-1]
	t.index = -1
	*tq = (*tq)[:tqlen-1]
	return t
}

// Scheduler owns a set of one-shot timers and dispatches the ones that are
// due. All operations run on the caller's goroutine; the driving loop calls
// Process after each clock advance.
type Scheduler struct {
	clock Clock
	q     timerQueue
}

func NewScheduler(clock Clock) *Scheduler {
	logger.AssertNotNil(clock)
	sched := &Scheduler{
		clock: clock,
		q:     timerQueue{},
	}

	heap.Init(&sched.q)
	return sched
}

// NewTimer creates a stopped timer dispatching to the given handler.
func (s *Scheduler) NewTimer(handler func()) *Timer {
	logger.AssertNotNil(handler)
	return &Timer{
		handler: handler,
		index:   -1,
		sched:   s,
	}
}

// Clock returns the clock the scheduler runs on.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// NextTimestamp returns the fire time of the earliest scheduled timer, or
// Ever when no timer is scheduled.
func (s *Scheduler) NextTimestamp() Time {
	if len(s.q) == 0 {
		return Ever
	}

	return s.q[0].fireTime
}

// Process dispatches every timer whose fire time has been reached. A timer
// is removed from the queue before its handler runs, so the handler may
// re-arm it.
func (s *Scheduler) Process() {
	now := s.clock.Now()

	for len(s.q) > 0 && s.q[0].fireTime <= now {
		t := heap.Pop(&s.q).(*Timer)
		t.handler()
	}
}
