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

// Package radio defines the contract between the radio scheduler and the
// physical 802.15.4 radio driver. The driver itself lives outside this
// repository (platform code, spinel RCP, ...); only its interface and the
// frame/capability types are defined here.
package radio

import (
	. "github.com/openthread/ot-radiosched/types"
)

// Capabilities is the radio driver hardware capability bitmask.
// Values match OT_RADIO_CAPS_* from the OpenThread platform radio API.
type Capabilities uint16

const (
	CapsNone            Capabilities = 0
	CapsAckTimeout      Capabilities = 1 << 0
	CapsEnergyScan      Capabilities = 1 << 1
	CapsTransmitRetries Capabilities = 1 << 2
	CapsCsmaBackoff     Capabilities = 1 << 3
	CapsSleepToTx       Capabilities = 1 << 4
	CapsTransmitSec     Capabilities = 1 << 5
	CapsTransmitTiming  Capabilities = 1 << 6
	CapsReceiveTiming   Capabilities = 1 << 7
	CapsRxOnWhenIdle    Capabilities = 1 << 8
)

// Has reports whether all capabilities in aCaps are present.
func (c Capabilities) Has(aCaps Capabilities) bool {
	return c&aCaps == aCaps
}

// State is the physical radio driver's own state, as distinct from the
// per-consumer desired states kept by the scheduler.
type State uint8

const (
	StateDisabled State = 0
	StateSleep    State = 1
	StateReceive  State = 2
	StateTransmit State = 3
	StateScan     State = 4
)

func (s State) String() string {
	switch s {
	case StateDisabled:
		return "Off"
	case StateSleep:
		return "Slp"
	case StateReceive:
		return "Rx_"
	case StateTransmit:
		return "Tx_"
	case StateScan:
		return "Scn"
	default:
		return "INVALID"
	}
}

// Driver is the port to the physical half-duplex radio transceiver. At most
// one logical operation is outstanding at any time; Transmit and EnergyScan
// complete asynchronously through Callbacks, all other requests complete
// synchronously (the hardware state change itself may still be in flight
// when the call returns).
//
// Only the scheduler (radiosched.RadioScheduler) may invoke the mutating
// operations; funneling all requests through one owner is what keeps two
// consumers from racing to issue contradictory primitives.
type Driver interface {
	// Enable enables the radio, transitioning it from Disabled to Sleep.
	Enable() Error

	// Disable disables the radio. Fails with ErrorInvalidState unless the
	// radio is currently in Sleep.
	Disable() Error

	// Sleep transitions the radio from Receive to Sleep (radio off).
	// Fails with ErrorBusy while transmitting, ErrorInvalidState while
	// disabled.
	Sleep() Error

	// Receive transitions the radio to Receive on the given channel.
	// Fails with ErrorInvalidState while disabled.
	Receive(channel ChannelId) Error

	// ReceiveAt schedules a receive window at aStart (radio clock domain)
	// lasting aDuration microseconds. Fails with ErrorFailed when the
	// window cannot be scheduled, e.g. the CapsReceiveTiming capability is
	// absent or the start time is unreachable.
	ReceiveAt(channel ChannelId, start RadioTime, duration uint32) Error

	// Transmit starts the transmit sequence for the given frame; completion
	// is signalled via Callbacks.HandleTransmitDone. Fails with
	// ErrorInvalidState unless the radio is in Receive.
	Transmit(frame *TxFrame) Error

	// EnergyScan starts an energy scan on the channel for the given number
	// of milliseconds; completion is signalled via
	// Callbacks.HandleEnergyScanDone. Fails with ErrorNotImplemented
	// without the CapsEnergyScan capability, ErrorBusy while scanning.
	EnergyScan(channel ChannelId, durationMs uint16) Error

	// GetNow returns the current time on the radio hardware's clock.
	GetNow() RadioTime

	// Caps returns the driver's capability bitmask.
	Caps() Capabilities
}

// Callbacks receives the asynchronous completion events of a Driver.
type Callbacks interface {
	// HandleTransmitDone is invoked when a frame transmission completed.
	// ackFrame is nil when no ACK was received. err is ErrorNone on
	// success, ErrorNoAck when the frame went out but no ACK arrived,
	// ErrorChannelAccessFailure when CCA failed, or ErrorAbort.
	HandleTransmitDone(frame *TxFrame, ackFrame *RxFrame, err Error)

	// HandleEnergyScanDone is invoked when an energy scan completed, with
	// the maximum RSSI encountered on the scanned channel.
	HandleEnergyScanDone(maxRssi int8)
}
