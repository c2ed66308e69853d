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

package submac

import (
	"github.com/openthread/ot-radiosched/alarm"
	"github.com/openthread/ot-radiosched/logger"
	"github.com/openthread/ot-radiosched/radio"
	"github.com/openthread/ot-radiosched/radiosched"
	. "github.com/openthread/ot-radiosched/types"
)

// cslReceiver samples the CSL channel once per CSL period and stamps
// outgoing frames to the CSL peer with the current phase, so the peer can
// time its transmissions into the sample window.
type cslReceiver struct {
	submac *SubMac
	timer  dutyCycleTimer

	period    uint16 // ten-symbol units, 0 when CSL is off
	channel   ChannelId
	windowUs  uint32
	peerShort ShortAddress
	peerExt   ExtAddress
}

func (c *cslReceiver) init(s *SubMac, timers *alarm.Scheduler) {
	c.submac = s
	c.windowUs = DefaultCslSampleWindowUs
	c.timer.init(s, timers, s.sched.CslRadio())
}

func (c *cslReceiver) periodUs() uint64 {
	return uint64(c.period) * uint64(UsPerTenSymbols)
}

// update restarts or stops sampling after a config change.
func (c *cslReceiver) update() {
	if c.period == 0 {
		c.timer.stop()
		if c.timer.radio.State() != radiosched.StateDisabled {
			_ = c.timer.radio.Sleep()
		}
		return
	}

	logger.Debugf("csl sampling: period=%dus window=%dus ch=%d", c.periodUs(), c.windowUs, c.channel)
	c.timer.start(c.periodUs(), c.windowUs, c.channel)
}

// phase returns the current CSL phase in ten-symbol units: the delay from
// now until the next sample point, rounded up to a nonzero value so a
// transmission started immediately still lands inside the window.
func (c *cslReceiver) phase() uint16 {
	periodUs := c.periodUs()
	now := uint64(c.submac.clock.Now())
	diff := (periodUs - now%periodUs + c.timer.sampleTime%periodUs) % periodUs

	return uint16(diff/uint64(UsPerTenSymbols) + 1)
}

// updateFrame appends a CSL IE carrying the current phase and period to a
// fresh (non-retransmitted) frame addressed to the CSL peer. Retransmitted
// frames keep the IE content they went out with.
func (c *cslReceiver) updateFrame(frame *radio.TxFrame) {
	if c.period == 0 || frame.Retransmission {
		return
	}

	dst := frame.DstAddr
	if !(dst.IsShort() && dst.Short == c.peerShort) && !(dst.IsExtended() && dst.Ext == c.peerExt) {
		return
	}

	frame.AppendHeaderIe(encodeCslIe(c.phase(), c.period))
}

// SetCslPeriod sets the CSL period in units of ten symbols. A nonzero
// period (re)starts periodic sampling immediately; zero stops it and puts
// the CSL consumer to sleep.
func (s *SubMac) SetCslPeriod(period uint16) {
	s.csl.period = period
	s.csl.update()
}

// CslPeriod returns the CSL period in units of ten symbols, 0 when CSL is
// off.
func (s *SubMac) CslPeriod() uint16 {
	return s.csl.period
}

// CslChannel returns the channel sampled during CSL windows.
func (s *SubMac) CslChannel() ChannelId {
	return s.csl.channel
}

// SetCslChannel sets the channel sampled during CSL windows.
func (s *SubMac) SetCslChannel(channel ChannelId) {
	if s.csl.channel == channel {
		return
	}

	s.csl.channel = channel
	if s.csl.period > 0 {
		s.csl.update()
	}
}

// SetCslPeerAddress sets the peer whose frames get the CSL IE appended.
func (s *SubMac) SetCslPeerAddress(aShort ShortAddress, aExt ExtAddress) {
	s.csl.peerShort = aShort
	s.csl.peerExt = aExt
}

// SetCslSampleWindow overrides the CSL receive window duration. Takes
// effect on the next SetCslPeriod/SetCslChannel call.
func (s *SubMac) SetCslSampleWindow(windowUs uint32) {
	logger.AssertTruef(windowUs > 0, "zero csl sample window")
	s.csl.windowUs = windowUs
}

// CslPhase returns the current CSL phase in units of ten symbols. Only
// meaningful while CSL is on.
func (s *SubMac) CslPhase() uint16 {
	logger.AssertTruef(s.csl.period > 0, "csl phase while csl is off")
	return s.csl.phase()
}
