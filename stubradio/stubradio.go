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

// Package stubradio provides a radio.Driver stub for the diagnostics
// console and for tests. It tracks the driver-side state machine, enforces
// the driver error contract, and completes Transmit/EnergyScan through the
// alarm service after the frame airtime / scan duration has elapsed. It is
// not a PHY: no frame ever travels between two stub radios.
package stubradio

import (
	"github.com/openthread/ot-radiosched/alarm"
	"github.com/openthread/ot-radiosched/energy"
	"github.com/openthread/ot-radiosched/logger"
	"github.com/openthread/ot-radiosched/prng"
	"github.com/openthread/ot-radiosched/radio"
	. "github.com/openthread/ot-radiosched/types"
)

const (
	// ccaBackoffMaxUs bounds the random CSMA backoff added before each
	// transmission completes.
	ccaBackoffMaxUs = 320

	// ackAirTimeUs is the on-air time of an immediate ACK plus AIFS.
	ackAirTimeUs = 352

	rssiMin int8 = -95
	rssiMax int8 = -35
)

// Counters are cumulative per-driver operation counts, readable through
// the diagnostics console.
type Counters struct {
	TxDone       uint32
	TxCcaFailure uint32
	ScanDone     uint32
	WindowsArmed uint32
	WindowsFired uint32
}

// StubRadio implements radio.Driver.
type StubRadio struct {
	sched     *alarm.Scheduler
	callbacks radio.Callbacks

	caps          radio.Capabilities
	clockOffsetUs uint64

	state   radio.State
	channel ChannelId

	txFrame *radio.TxFrame
	txTimer *alarm.Timer
	ccaFailProb float64

	scanTimer *alarm.Timer

	windowTimer    *alarm.Timer
	windowEndTimer *alarm.Timer
	windowChannel  ChannelId
	windowArmed    bool
	windowOpen     bool

	tracker  *energy.Tracker
	counters Counters
}

// New creates a stub driver in the Disabled state. clockOffsetUs offsets
// the radio clock (GetNow) from the host clock, so callers that mix up the
// two time domains misbehave visibly.
func New(timers *alarm.Scheduler, caps radio.Capabilities, clockOffsetUs uint64) *StubRadio {
	r := &StubRadio{
		sched:         timers,
		caps:          caps,
		clockOffsetUs: clockOffsetUs,
		state:         radio.StateDisabled,
		tracker:       energy.NewTracker(uint64(timers.Clock().Now())),
	}
	r.txTimer = timers.NewTimer(r.handleTxDone)
	r.scanTimer = timers.NewTimer(r.handleScanDone)
	r.windowTimer = timers.NewTimer(r.handleWindowStart)
	r.windowEndTimer = timers.NewTimer(r.handleWindowEnd)
	return r
}

// SetCallbacks sets the completion callback sink. Must be set before the
// first Transmit or EnergyScan.
func (r *StubRadio) SetCallbacks(callbacks radio.Callbacks) {
	r.callbacks = callbacks
}

// SetCcaFailProb sets the probability that a transmission fails CCA.
func (r *StubRadio) SetCcaFailProb(prob float64) {
	logger.AssertTruef(prob >= 0 && prob <= 1, "invalid probability %f", prob)
	r.ccaFailProb = prob
}

// State returns the driver state.
func (r *StubRadio) State() radio.State {
	return r.state
}

// Channel returns the channel of the last Receive/Transmit request.
func (r *StubRadio) Channel() ChannelId {
	return r.channel
}

// Tracker returns the energy tracker fed by this driver's state changes.
func (r *StubRadio) Tracker() *energy.Tracker {
	return r.tracker
}

// Counters returns the cumulative operation counters.
func (r *StubRadio) Counters() Counters {
	return r.counters
}

func (r *StubRadio) setState(state radio.State) {
	if r.state == state {
		return
	}

	logger.Tracef("stubradio: %v -> %v", r.state, state)
	r.tracker.SetRadioState(state, uint64(r.sched.Clock().Now()))
	r.state = state
}

func (r *StubRadio) Enable() Error {
	if r.state == radio.StateDisabled {
		r.setState(radio.StateSleep)
	}

	return ErrorNone
}

func (r *StubRadio) Disable() Error {
	if r.state == radio.StateDisabled {
		return ErrorNone
	}
	if r.state != radio.StateSleep {
		return ErrorInvalidState
	}

	r.cancelWindow()
	r.setState(radio.StateDisabled)
	return ErrorNone
}

func (r *StubRadio) Sleep() Error {
	switch r.state {
	case radio.StateDisabled:
		return ErrorInvalidState
	case radio.StateTransmit, radio.StateScan:
		return ErrorBusy
	}

	r.cancelWindow()
	r.setState(radio.StateSleep)
	return ErrorNone
}

func (r *StubRadio) Receive(channel ChannelId) Error {
	if r.state == radio.StateDisabled {
		return ErrorInvalidState
	}

	r.cancelWindow()
	r.channel = channel
	r.setState(radio.StateReceive)
	return ErrorNone
}

func (r *StubRadio) ReceiveAt(channel ChannelId, start RadioTime, duration uint32) Error {
	if !r.caps.Has(radio.CapsReceiveTiming) {
		return ErrorFailed
	}
	if r.state == radio.StateDisabled {
		return ErrorInvalidState
	}

	startHost := Time(start - r.clockOffsetUs)
	if int64(startHost-r.sched.Clock().Now()) < 0 {
		logger.Debugf("stubradio: receive window start %d already passed", start)
		return ErrorFailed
	}

	r.windowChannel = channel
	r.windowArmed = true
	r.windowOpen = false
	r.counters.WindowsArmed++
	r.windowTimer.FireAt(startHost)
	r.windowEndTimer.FireAt(startHost + Time(duration))
	return ErrorNone
}

func (r *StubRadio) Transmit(frame *radio.TxFrame) Error {
	logger.AssertNotNil(r.callbacks)

	if r.state != radio.StateReceive {
		return ErrorInvalidState
	}

	r.txFrame = frame
	r.channel = frame.Channel
	r.setState(radio.StateTransmit)
	r.txTimer.FireIn(prng.NewBackoffUs(ccaBackoffMaxUs) + uint64(frame.AirTimeUs()) + ackAirTimeUs)
	return ErrorNone
}

func (r *StubRadio) EnergyScan(channel ChannelId, durationMs uint16) Error {
	logger.AssertNotNil(r.callbacks)

	if !r.caps.Has(radio.CapsEnergyScan) {
		return ErrorNotImplemented
	}
	if r.state == radio.StateScan {
		return ErrorBusy
	}
	if r.state == radio.StateDisabled || r.state == radio.StateTransmit {
		return ErrorInvalidState
	}

	r.channel = channel
	r.setState(radio.StateScan)
	r.scanTimer.FireIn(uint64(durationMs) * 1000)
	return ErrorNone
}

func (r *StubRadio) GetNow() RadioTime {
	return RadioTime(r.sched.Clock().Now()) + r.clockOffsetUs
}

func (r *StubRadio) Caps() radio.Capabilities {
	return r.caps
}

func (r *StubRadio) handleTxDone() {
	frame := r.txFrame
	r.txFrame = nil
	r.setState(radio.StateReceive)

	if prng.NewUnitRandom() < r.ccaFailProb {
		r.counters.TxCcaFailure++
		r.callbacks.HandleTransmitDone(frame, nil, ErrorChannelAccessFailure)
		return
	}

	var seq uint8
	if len(frame.Psdu) >= 3 {
		seq = frame.Psdu[2]
	}

	r.counters.TxDone++
	ack := &radio.RxFrame{
		Channel:   frame.Channel,
		Psdu:      []byte{0x02, 0x00, seq}, // imm-ack echoing the sequence number
		Rssi:      prng.NewRssi(rssiMin, rssiMax),
		Lqi:       0xff,
		Timestamp: r.GetNow(),
	}
	r.callbacks.HandleTransmitDone(frame, ack, ErrorNone)
}

func (r *StubRadio) handleScanDone() {
	r.setState(radio.StateReceive)
	r.counters.ScanDone++
	r.callbacks.HandleEnergyScanDone(prng.NewRssi(rssiMin, rssiMax))
}

func (r *StubRadio) handleWindowStart() {
	if !r.windowArmed {
		return
	}

	r.windowOpen = true
	r.counters.WindowsFired++
	if r.state == radio.StateSleep {
		r.channel = r.windowChannel
		r.setState(radio.StateReceive)
	}
}

func (r *StubRadio) handleWindowEnd() {
	if !r.windowArmed {
		return
	}

	r.windowArmed = false
	if r.windowOpen && r.state == radio.StateReceive {
		r.setState(radio.StateSleep)
	}
	r.windowOpen = false
}

func (r *StubRadio) cancelWindow() {
	r.windowArmed = false
	r.windowOpen = false
	r.windowTimer.Stop()
	r.windowEndTimer.Stop()
}
