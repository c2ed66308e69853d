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

// Package radiosched arbitrates access to the single half-duplex 802.15.4
// radio among its logical consumers: the MAC/mesh link, the CSL receiver and
// the WED listener. Each consumer bids with a fixed-priority request; the
// scheduler recomputes the winner on every state change and issues exactly
// one primitive to the radio driver.
package radiosched

import (
	"strings"

	"github.com/openthread/ot-radiosched/logger"
	"github.com/openthread/ot-radiosched/radio"
	. "github.com/openthread/ot-radiosched/types"
)

// RadioScheduler owns the per-role consumer table and the radio driver
// handle. It is the only object permitted to call the driver's mutating
// operations. All methods run on the single logical thread of the stack.
type RadioScheduler struct {
	driver  radio.Driver
	radios  [numRoles]RadioInterface
	handler radio.Callbacks
}

// NewRadioScheduler creates the scheduler for the given driver. The handler
// receives Transmit/EnergyScan completions after the scheduler has restored
// Receive/Sleep arbitration.
func NewRadioScheduler(driver radio.Driver, handler radio.Callbacks) *RadioScheduler {
	logger.AssertNotNil(driver)

	rs := &RadioScheduler{
		driver:  driver,
		handler: handler,
	}
	rs.radios[RoleMac].init(rs, RoleMac, PriorityReceiveMac)
	rs.radios[RoleCsl].init(rs, RoleCsl, PriorityReceiveCsl)
	rs.radios[RoleWed].init(rs, RoleWed, PriorityReceiveWed)

	return rs
}

// MacRadio returns the radio interface for the MAC layer.
func (rs *RadioScheduler) MacRadio() *RadioInterface {
	return &rs.radios[RoleMac]
}

// CslRadio returns the radio interface for the CSL receiver.
func (rs *RadioScheduler) CslRadio() *RadioInterface {
	return &rs.radios[RoleCsl]
}

// WedRadio returns the radio interface for the WED listener.
func (rs *RadioScheduler) WedRadio() *RadioInterface {
	return &rs.radios[RoleWed]
}

// Driver returns the underlying radio driver (read-only use: capabilities
// and the radio clock).
func (rs *RadioScheduler) Driver() radio.Driver {
	return rs.driver
}

// Enable enables the radio and moves every consumer to Enabled at minimum
// priority, so none of them wins arbitration until it asks for Sleep or
// Receive.
func (rs *RadioScheduler) Enable() Error {
	if err := rs.driver.Enable(); !err.IsNone() {
		return err
	}

	for i := range rs.radios {
		rs.radios[i].setStateAndPriority(StateEnabled, PriorityMin)
	}

	logger.Debugf("radio scheduler enabled")
	return ErrorNone
}

// Disable disables the radio. The driver rejects the request with
// ErrorInvalidState unless it is currently asleep.
func (rs *RadioScheduler) Disable() Error {
	if err := rs.driver.Disable(); !err.IsNone() {
		return err
	}

	for i := range rs.radios {
		rs.radios[i].setStateAndPriority(StateDisabled, PriorityMax)
	}

	logger.Debugf("radio scheduler disabled")
	return ErrorNone
}

// Transmit starts the transmit sequence. On success the MAC consumer moves
// to the shared top priority, suppressing all Receive/Sleep arbitration
// until HandleTransmitDone.
func (rs *RadioScheduler) Transmit(frame *radio.TxFrame) Error {
	if err := rs.driver.Transmit(frame); !err.IsNone() {
		return err
	}

	rs.radios[RoleMac].setStateAndPriority(StateTransmit, PriorityTransmit)
	return ErrorNone
}

// EnergyScan starts the energy scan sequence, symmetric to Transmit.
func (rs *RadioScheduler) EnergyScan(channel ChannelId, durationMs uint16) Error {
	if err := rs.driver.EnergyScan(channel, durationMs); !err.IsNone() {
		return err
	}

	rs.radios[RoleMac].setStateAndPriority(StateEnergyScan, PriorityEnergyScan)
	return ErrorNone
}

// HandleTransmitDone implements radio.Callbacks. The MAC consumer's transmit
// influence is cleared and arbitration re-run before the event reaches the
// upper layer, so the radio is already following the highest-priority
// Receive/Sleep bid when protocol handling starts.
func (rs *RadioScheduler) HandleTransmitDone(frame *radio.TxFrame, ackFrame *radio.RxFrame, err Error) {
	rs.radios[RoleMac].setStateAndPriority(StateEnabled, PriorityMin)
	rs.receiveOrSleep()

	if rs.handler != nil {
		rs.handler.HandleTransmitDone(frame, ackFrame, err)
	}
}

// HandleEnergyScanDone implements radio.Callbacks.
func (rs *RadioScheduler) HandleEnergyScanDone(maxRssi int8) {
	rs.radios[RoleMac].setStateAndPriority(StateEnabled, PriorityMin)
	rs.receiveOrSleep()

	if rs.handler != nil {
		rs.handler.HandleEnergyScanDone(maxRssi)
	}
}

func (rs *RadioScheduler) sleep(r *RadioInterface) Error {
	r.setStateAndPriority(StateSleep, PrioritySleep)
	rs.receiveOrSleep()

	return ErrorNone
}

func (rs *RadioScheduler) receive(r *RadioInterface, receivePriority Priority, channel ChannelId) Error {
	r.setStateAndPriority(StateReceive, receivePriority)
	r.channel = channel
	rs.receiveOrSleep()

	return ErrorNone
}

func (rs *RadioScheduler) receiveAt(r *RadioInterface, channel ChannelId, start RadioTime, duration uint32) Error {
	if err := rs.driver.ReceiveAt(channel, start, duration); !err.IsNone() {
		return err
	}

	// No re-arbitration here: the hardware window is armed and the
	// ReceiveAt priority only serves to shield it from Sleep bids.
	r.setStateAndPriority(StateReceiveAt, PriorityReceiveAt)
	r.channel = channel

	return ErrorNone
}

// receiveOrSleep is the arbitration pass, re-run after every state mutation:
// find the consumer with the highest priority and, if it wants Sleep or
// Receive, issue the matching primitive to the driver. A winner in any other
// state (Transmit, EnergyScan, an armed ReceiveAt window) leaves the driver
// untouched. Recomputing from scratch keeps the result a pure function of
// the consumer table.
func (rs *RadioScheduler) receiveOrSleep() {
	index := numRoles
	maxPriority := PriorityMin

	for i := range rs.radios {
		if rs.radios[i].priority > maxPriority {
			index = i
			maxPriority = rs.radios[index].priority
		}
	}

	if index == numRoles {
		return
	}

	winner := &rs.radios[index]

	switch winner.state {
	case StateSleep:
		logger.Tracef("arbitration: %s -> Sleep()", winner)
		_ = rs.driver.Sleep()
	case StateReceive:
		logger.Tracef("arbitration: %s -> Receive(%d)", winner, winner.channel)
		_ = rs.driver.Receive(winner.channel)
	default:
	}
}

// RadiosString returns the states of all consumers on one line, for
// diagnostics.
func (rs *RadioScheduler) RadiosString() string {
	var sb strings.Builder

	for i := range rs.radios {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(rs.radios[i].String())
	}
	return sb.String()
}

// LogRadios dumps the consumer table to the log.
func (rs *RadioScheduler) LogRadios(tag string) {
	logger.Debugf("%s: Radios: %s", tag, rs.RadiosString())
}
