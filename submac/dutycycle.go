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

// dutyCycleTimer drives the periodic receive windows for one duty-cycled
// role (CSL or WED). Its alarm is one-shot and always re-armed from within
// its own firing handler. Two strategies:
//
// Hardware-scheduled (driver has CapsReceiveTiming): one ReceiveAt per
// period, the consumer never touches Sleep.
//
//	------+-------+------------------+-------+------------------+-------
//	Now  Sample0                   Sample1
//	Now  Radio0                    Radio1       |
//	                                          FireAt(Sample1+Window+Guard)
//	                              ReceiveAt(Radio1, Window)
//
// Toggle (fallback): alternate Receive for windowUs and Sleep for
// periodUs-windowUs, re-arming a little after the window end and a little
// ahead of the next window start.
//
//	------+-----------+----------------------+-------+-----------
//	Now  SampleRx
//	      | Window    |
//	             FireAt(SampleRx+Window+After)
//	                 SampleSleep
//	                    |  Period-Window     |
//	                              FireAt(SampleSleep+...-Ahead)
//
// Sample times are kept in both the host and the radio clock domains,
// advanced in lock-step so drift between the clocks does not accumulate.
type dutyCycleTimer struct {
	submac *SubMac
	radio  *radiosched.RadioInterface
	timer  *alarm.Timer

	periodUs uint64
	windowUs uint32
	channel  ChannelId

	sampleTime      Time
	sampleTimeRadio RadioTime
	isReceiving     bool
}

func (d *dutyCycleTimer) init(s *SubMac, timers *alarm.Scheduler, radio *radiosched.RadioInterface) {
	d.submac = s
	d.radio = radio
	d.timer = timers.NewTimer(d.handleTimer)
}

// start begins duty cycling with the given period, window and channel. A
// window longer than the period is clamped to it, which degenerates into
// continuous listening. The first sample point is placed receiveTimeAheadUs
// from now; the handler runs immediately to arm the first window.
func (d *dutyCycleTimer) start(periodUs uint64, windowUs uint32, channel ChannelId) {
	logger.AssertTruef(periodUs > 0 && windowUs > 0,
		"invalid duty cycle: period=%d window=%d", periodUs, windowUs)

	if uint64(windowUs) > periodUs {
		logger.Warnf("%s duty cycle: window %d us exceeds period %d us, clamping",
			d.radio.Role(), windowUs, periodUs)
		windowUs = uint32(periodUs)
	}

	d.periodUs = periodUs
	d.windowUs = windowUs
	d.channel = channel
	d.timer.Stop()

	d.isReceiving = true
	d.sampleTime = d.submac.clock.Now() + receiveTimeAheadUs - periodUs
	d.sampleTimeRadio = d.submac.radioNow() + receiveTimeAheadUs - periodUs

	d.handleTimer()
}

func (d *dutyCycleTimer) stop() {
	d.timer.Stop()
	d.isReceiving = false
}

func (d *dutyCycleTimer) isRunning() bool {
	return d.timer.IsRunning()
}

func (d *dutyCycleTimer) handleTimer() {
	if d.submac.radioSupportsReceiveTiming() {
		d.handleReceiveAt()
	} else {
		d.handleReceiveAndSleep()
	}
}

func (d *dutyCycleTimer) handleReceiveAt() {
	d.sampleTime += d.periodUs
	d.sampleTimeRadio += d.periodUs
	d.timer.FireAt(d.sampleTime + uint64(d.windowUs) + receiveAtGuardUs)

	if d.radio.State() != radiosched.StateDisabled {
		_ = d.radio.ReceiveAt(d.channel, d.sampleTimeRadio, d.windowUs)
	}
}

func (d *dutyCycleTimer) handleReceiveAndSleep() {
	if d.isReceiving {
		d.sampleTime += uint64(d.windowUs)
		d.timer.FireAt(d.sampleTime + receiveOnAfterUs)
	} else {
		d.sampleTime += d.periodUs - uint64(d.windowUs)
		d.timer.FireAt(d.sampleTime - receiveOnAheadUs)
	}

	if d.radio.State() != radiosched.StateDisabled {
		if d.isReceiving {
			logger.Tracef("%s duty cycle: Receive(%d)", d.radio.Role(), d.channel)
			_ = d.radio.Receive(d.channel)
		} else {
			logger.Tracef("%s duty cycle: Sleep()", d.radio.Role())
			_ = d.radio.Sleep()
		}
	}

	d.isReceiving = !d.isReceiving
}
