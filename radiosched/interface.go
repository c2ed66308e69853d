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

package radiosched

import (
	"fmt"

	"github.com/openthread/ot-radiosched/logger"
	. "github.com/openthread/ot-radiosched/types"
)

// RadioRole identifies a logical consumer of the radio.
type RadioRole uint8

const (
	RoleMac RadioRole = 0
	RoleCsl RadioRole = 1
	RoleWed RadioRole = 2

	numRoles = 3
)

func (r RadioRole) String() string {
	switch r {
	case RoleMac:
		return "Mac"
	case RoleCsl:
		return "Csl"
	case RoleWed:
		return "Wed"
	default:
		return "INVALID"
	}
}

// State is a consumer's desired relationship to the radio, not the physical
// radio state: every consumer holds its own State and the scheduler decides
// which one the hardware actually follows.
type State uint8

const (
	StateDisabled   State = 0
	StateEnabled    State = 1
	StateSleep      State = 2
	StateReceive    State = 3
	StateTransmit   State = 4
	StateEnergyScan State = 5
	StateReceiveAt  State = 6
)

func (s State) String() string {
	switch s {
	case StateDisabled:
		return "Disabled"
	case StateEnabled:
		return "Enabled"
	case StateSleep:
		return "Sleep"
	case StateReceive:
		return "Receive"
	case StateTransmit:
		return "Transmit"
	case StateEnergyScan:
		return "EnergyScan"
	case StateReceiveAt:
		return "ReceiveAt"
	default:
		return "INVALID"
	}
}

// Priority is a consumer's current bid strength, 0 (lowest) to 15 (highest).
// The relative ordering is the contract: Mac > Csl > Wed for Receive,
// Transmit/EnergyScan above every Receive, Sleep above only Min/Disabled
// bids. The exact numbers leave gaps for future receive bands.
type Priority uint8

const (
	PriorityMin        Priority = 0
	PrioritySleep      Priority = 1
	PriorityReceiveAt  Priority = 2
	PriorityReceiveMin Priority = 2
	PriorityReceiveWed Priority = 7
	PriorityReceiveCsl Priority = 9
	PriorityReceiveMac Priority = 11
	PriorityReceiveMax Priority = 13
	PriorityTransmit   Priority = 14
	PriorityEnergyScan Priority = 14
	PriorityMax        Priority = 15
)

// RadioInterface is one logical consumer's handle on the shared radio. It
// never touches the driver itself (except for the pass-through ReceiveAt
// scheduling call, which the scheduler issues on its behalf); it only
// records the consumer's intent and asks the scheduler to re-arbitrate.
type RadioInterface struct {
	sched           *RadioScheduler
	role            RadioRole
	state           State
	priority        Priority
	receivePriority Priority
	channel         ChannelId
}

func (r *RadioInterface) init(sched *RadioScheduler, role RadioRole, receivePriority Priority) {
	logger.AssertTrue(PriorityReceiveMin <= receivePriority && receivePriority <= PriorityReceiveMax)

	r.sched = sched
	r.role = role
	r.state = StateDisabled
	r.priority = PriorityMax
	r.receivePriority = receivePriority
}

// Sleep requests the radio to be turned off on this consumer's behalf.
func (r *RadioInterface) Sleep() Error {
	if r.state == StateDisabled {
		return ErrorInvalidState
	}

	return r.sched.sleep(r)
}

// Receive requests the radio in Receive on the given channel on this
// consumer's behalf. It fails while this consumer is disabled or mid
// Transmit/EnergyScan; a request losing arbitration is still recorded and
// will be issued once higher-priority work completes.
func (r *RadioInterface) Receive(channel ChannelId) Error {
	if r.state == StateDisabled || r.state == StateTransmit || r.state == StateEnergyScan {
		return ErrorInvalidState
	}

	return r.sched.receive(r, r.receivePriority, channel)
}

// ReceiveAt schedules a hardware receive window at the given radio-clock
// start time. The scheduling call goes to the driver directly; the consumer
// keeps a low non-Sleep priority so that another consumer's Sleep bid cannot
// disarm the window through arbitration.
func (r *RadioInterface) ReceiveAt(channel ChannelId, start RadioTime, duration uint32) Error {
	logger.AssertTruef(r.role != RoleMac, "ReceiveAt is for duty-cycled roles only")

	if r.state == StateDisabled {
		return ErrorInvalidState
	}

	return r.sched.receiveAt(r, channel, start, duration)
}

func (r *RadioInterface) Role() RadioRole {
	return r.role
}

func (r *RadioInterface) State() State {
	return r.state
}

func (r *RadioInterface) Priority() Priority {
	return r.priority
}

func (r *RadioInterface) Channel() ChannelId {
	return r.channel
}

func (r *RadioInterface) setStateAndPriority(state State, priority Priority) {
	r.state = state
	r.priority = priority
}

func (r *RadioInterface) String() string {
	return fmt.Sprintf("%s[state=%s,prio=%d,ch=%d]", r.role, r.state, r.priority, r.channel)
}
