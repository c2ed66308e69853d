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

// Package submac implements the duty-cycled listening modes on top of the
// radio scheduler: the CSL receiver, which wakes at a period/phase
// negotiated with one peer, and the WED listener, which wakes at a locally
// configured interval to catch wake-up frames.
package submac

import (
	"github.com/openthread/ot-radiosched/alarm"
	"github.com/openthread/ot-radiosched/logger"
	"github.com/openthread/ot-radiosched/radio"
	"github.com/openthread/ot-radiosched/radiosched"
	. "github.com/openthread/ot-radiosched/types"
)

// Guard margins, covering radio ramp-up and scheduling jitter. Conservative
// enough that a transmitter's frame start always falls inside the armed
// window; small enough that successive windows never overlap at the minimum
// supported period.
const (
	// receiveTimeAheadUs is how far before the expected sample point
	// listening starts when a duty-cycled mode is (re)enabled.
	receiveTimeAheadUs = 2000

	// receiveOnAheadUs is how long before the sample point the toggle
	// strategy turns the receiver on.
	receiveOnAheadUs = 192

	// receiveOnAfterUs is how long after the window end the toggle strategy
	// keeps the receiver on before the next phase starts.
	receiveOnAfterUs = 64

	// receiveAtGuardUs is the re-arm margin after a hardware-scheduled
	// receive window elapses.
	receiveAtGuardUs = 64
)

// DefaultCslSampleWindowUs is the default CSL receive window duration.
const DefaultCslSampleWindowUs uint32 = 1280

// SubMac owns the duty-cycled listening state and the radio scheduler. It
// is the single entry point for the MAC/mesh layer: transmit, energy scan,
// CSL and WED configuration all go through here.
type SubMac struct {
	sched     *radiosched.RadioScheduler
	clock     alarm.Clock
	callbacks radio.Callbacks

	csl cslReceiver
	wed wedListener
}

// New creates the SubMac along with its radio scheduler. callbacks receives
// transmit/energy-scan completions after arbitration has been restored; it
// may be nil.
func New(driver radio.Driver, timers *alarm.Scheduler, callbacks radio.Callbacks) *SubMac {
	s := &SubMac{
		clock:     timers.Clock(),
		callbacks: callbacks,
	}
	s.sched = radiosched.NewRadioScheduler(driver, s)

	s.csl.init(s, timers)
	s.wed.init(s, timers)

	return s
}

// Scheduler returns the radio scheduler, for the MAC layer's direct
// Sleep/Receive requests and for diagnostics.
func (s *SubMac) Scheduler() *radiosched.RadioScheduler {
	return s.sched
}

// Enable enables the radio.
func (s *SubMac) Enable() Error {
	return s.sched.Enable()
}

// Disable disables the radio and stops the duty-cycle timers. The request
// fails unless the radio is asleep; the timers are only stopped on success.
func (s *SubMac) Disable() Error {
	if err := s.sched.Disable(); !err.IsNone() {
		return err
	}

	s.csl.timer.stop()
	s.wed.timer.stop()
	return ErrorNone
}

// Transmit updates the frame's CSL IE (when CSL is active and the frame is
// a fresh unicast to the CSL peer) and starts the transmit sequence.
func (s *SubMac) Transmit(frame *radio.TxFrame) Error {
	s.csl.updateFrame(frame)
	return s.sched.Transmit(frame)
}

// EnergyScan starts an energy scan on the channel.
func (s *SubMac) EnergyScan(channel ChannelId, durationMs uint16) Error {
	return s.sched.EnergyScan(channel, durationMs)
}

// HandleTransmitDone implements radio.Callbacks; invoked by the scheduler
// after it restored Receive/Sleep arbitration.
func (s *SubMac) HandleTransmitDone(frame *radio.TxFrame, ackFrame *radio.RxFrame, err Error) {
	logger.Tracef("transmit done: err=%v", err)

	if s.callbacks != nil {
		s.callbacks.HandleTransmitDone(frame, ackFrame, err)
	}
}

// HandleEnergyScanDone implements radio.Callbacks.
func (s *SubMac) HandleEnergyScanDone(maxRssi int8) {
	logger.Tracef("energy scan done: maxRssi=%d", maxRssi)

	if s.callbacks != nil {
		s.callbacks.HandleEnergyScanDone(maxRssi)
	}
}

func (s *SubMac) radioSupportsReceiveTiming() bool {
	return s.sched.Driver().Caps().Has(radio.CapsReceiveTiming)
}

func (s *SubMac) radioNow() RadioTime {
	return s.sched.Driver().GetNow()
}
