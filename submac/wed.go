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
	"github.com/openthread/ot-radiosched/radiosched"
	. "github.com/openthread/ot-radiosched/types"
)

// wedListener periodically listens for wake-up frames on a locally
// configured interval. Unlike CSL there is no peer negotiation and no IE
// production; the listener only opens receive windows.
type wedListener struct {
	submac *SubMac
	timer  dutyCycleTimer

	intervalUs uint64
	durationUs uint32
	channel    ChannelId
}

func (w *wedListener) init(s *SubMac, timers *alarm.Scheduler) {
	w.submac = s
	w.timer.init(s, timers, s.sched.WedRadio())
}

// UpdateWakeupListening reconfigures wake-up frame listening. Enabling
// (re)starts the listen schedule from now; disabling cancels the schedule
// and puts the WED consumer to sleep so the radio can be released.
func (s *SubMac) UpdateWakeupListening(enable bool, intervalUs uint64, durationUs uint32, channel ChannelId) {
	logger.Debugf("UpdateWakeupListening() enable=%v interval=%dus duration=%dus ch=%d",
		enable, intervalUs, durationUs, channel)

	w := &s.wed
	w.intervalUs = intervalUs
	w.durationUs = durationUs
	w.channel = channel
	w.timer.stop()

	if !enable {
		if w.timer.radio.State() != radiosched.StateDisabled {
			_ = w.timer.radio.Sleep()
		}
		return
	}

	w.timer.start(intervalUs, durationUs, channel)
}

// WakeupListening reports whether wake-up frame listening is active.
func (s *SubMac) WakeupListening() bool {
	return s.wed.timer.isRunning()
}
