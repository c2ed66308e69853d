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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openthread/ot-radiosched/radio"
	. "github.com/openthread/ot-radiosched/types"
)

type mockCall struct {
	op       string
	channel  ChannelId
	start    RadioTime
	duration uint32
}

// mockDriver records the primitives the scheduler issues, in order, and can
// be told to fail a given primitive.
type mockDriver struct {
	calls []mockCall
	errs  map[string]Error
	caps  radio.Capabilities
}

func newMockDriver() *mockDriver {
	return &mockDriver{
		errs: map[string]Error{},
		caps: radio.CapsReceiveTiming | radio.CapsEnergyScan,
	}
}

func (d *mockDriver) record(op string, call mockCall) Error {
	if err := d.errs[op]; !err.IsNone() {
		return err
	}
	call.op = op
	d.calls = append(d.calls, call)
	return ErrorNone
}

func (d *mockDriver) Enable() Error  { return d.record("enable", mockCall{}) }
func (d *mockDriver) Disable() Error { return d.record("disable", mockCall{}) }
func (d *mockDriver) Sleep() Error   { return d.record("sleep", mockCall{}) }

func (d *mockDriver) Receive(channel ChannelId) Error {
	return d.record("receive", mockCall{channel: channel})
}

func (d *mockDriver) ReceiveAt(channel ChannelId, start RadioTime, duration uint32) Error {
	return d.record("receiveAt", mockCall{channel: channel, start: start, duration: duration})
}

func (d *mockDriver) Transmit(frame *radio.TxFrame) Error {
	return d.record("transmit", mockCall{channel: frame.Channel})
}

func (d *mockDriver) EnergyScan(channel ChannelId, durationMs uint16) Error {
	return d.record("scan", mockCall{channel: channel})
}

func (d *mockDriver) GetNow() RadioTime        { return 0 }
func (d *mockDriver) Caps() radio.Capabilities { return d.caps }

func (d *mockDriver) lastCall() mockCall {
	if len(d.calls) == 0 {
		return mockCall{}
	}
	return d.calls[len(d.calls)-1]
}

func (d *mockDriver) opCount(op string) int {
	n := 0
	for _, c := range d.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

type mockHandler struct {
	txDone   int
	scanDone int
	lastErr  Error
	lastRssi int8
	onTxDone func()
}

func (h *mockHandler) HandleTransmitDone(frame *radio.TxFrame, ackFrame *radio.RxFrame, err Error) {
	h.txDone++
	h.lastErr = err
	if h.onTxDone != nil {
		h.onTxDone()
	}
}

func (h *mockHandler) HandleEnergyScanDone(maxRssi int8) {
	h.scanDone++
	h.lastRssi = maxRssi
}

func TestEnableDisable(t *testing.T) {
	driver := newMockDriver()
	rs := NewRadioScheduler(driver, nil)

	for _, r := range []*RadioInterface{rs.MacRadio(), rs.CslRadio(), rs.WedRadio()} {
		assert.Equal(t, StateDisabled, r.State())
		assert.Equal(t, PriorityMax, r.Priority())
	}

	assert.Equal(t, ErrorNone, rs.Enable())
	assert.Equal(t, "enable", driver.lastCall().op)
	for _, r := range []*RadioInterface{rs.MacRadio(), rs.CslRadio(), rs.WedRadio()} {
		assert.Equal(t, StateEnabled, r.State())
		assert.Equal(t, PriorityMin, r.Priority())
	}

	assert.Equal(t, ErrorNone, rs.Disable())
	assert.Equal(t, "disable", driver.lastCall().op)
	for _, r := range []*RadioInterface{rs.MacRadio(), rs.CslRadio(), rs.WedRadio()} {
		assert.Equal(t, StateDisabled, r.State())
		assert.Equal(t, PriorityMax, r.Priority())
	}
}

func TestEnableDriverFailureLeavesConsumersDisabled(t *testing.T) {
	driver := newMockDriver()
	driver.errs["enable"] = ErrorFailed
	rs := NewRadioScheduler(driver, nil)

	assert.Equal(t, ErrorFailed, rs.Enable())
	assert.Equal(t, StateDisabled, rs.MacRadio().State())
	assert.Equal(t, 0, len(driver.calls))
}

func TestOperationsWhileDisabled(t *testing.T) {
	driver := newMockDriver()
	rs := NewRadioScheduler(driver, nil)

	assert.Equal(t, ErrorInvalidState, rs.MacRadio().Sleep())
	assert.Equal(t, ErrorInvalidState, rs.MacRadio().Receive(11))
	assert.Equal(t, ErrorInvalidState, rs.CslRadio().ReceiveAt(11, 1000, 500))
	assert.Equal(t, 0, len(driver.calls))
}

func TestReceiveArbitrationFollowsPriority(t *testing.T) {
	driver := newMockDriver()
	rs := NewRadioScheduler(driver, nil)
	assert.Equal(t, ErrorNone, rs.Enable())

	assert.Equal(t, ErrorNone, rs.WedRadio().Receive(11))
	assert.Equal(t, mockCall{op: "receive", channel: 11}, driver.lastCall())

	assert.Equal(t, ErrorNone, rs.CslRadio().Receive(12))
	assert.Equal(t, mockCall{op: "receive", channel: 12}, driver.lastCall())

	assert.Equal(t, ErrorNone, rs.MacRadio().Receive(13))
	assert.Equal(t, mockCall{op: "receive", channel: 13}, driver.lastCall())

	// a lower-priority bid while the MAC holds the radio is recorded but
	// not issued
	assert.Equal(t, ErrorNone, rs.CslRadio().Receive(20))
	assert.Equal(t, ChannelId(13), driver.lastCall().channel)

	// as the higher bids retire, the pending ones surface in order
	assert.Equal(t, ErrorNone, rs.MacRadio().Sleep())
	assert.Equal(t, mockCall{op: "receive", channel: 20}, driver.lastCall())

	assert.Equal(t, ErrorNone, rs.CslRadio().Sleep())
	assert.Equal(t, mockCall{op: "receive", channel: 11}, driver.lastCall())

	assert.Equal(t, ErrorNone, rs.WedRadio().Sleep())
	assert.Equal(t, "sleep", driver.lastCall().op)
}

func TestArbitrationIsPureFunctionOfConsumerTable(t *testing.T) {
	driver := newMockDriver()
	rs := NewRadioScheduler(driver, nil)
	assert.Equal(t, ErrorNone, rs.Enable())

	// same end state regardless of request order
	assert.Equal(t, ErrorNone, rs.CslRadio().Receive(15))
	assert.Equal(t, ErrorNone, rs.WedRadio().Receive(16))
	assert.Equal(t, mockCall{op: "receive", channel: 15}, driver.lastCall())

	assert.Equal(t, ErrorNone, rs.CslRadio().Receive(15))
	assert.Equal(t, mockCall{op: "receive", channel: 15}, driver.lastCall())
}

func TestTransmitSuppressesArbitration(t *testing.T) {
	driver := newMockDriver()
	rs := NewRadioScheduler(driver, &mockHandler{})
	assert.Equal(t, ErrorNone, rs.Enable())
	assert.Equal(t, ErrorNone, rs.MacRadio().Receive(15))

	frame := &radio.TxFrame{Channel: 15, Psdu: make([]byte, 32)}
	assert.Equal(t, ErrorNone, rs.Transmit(frame))
	assert.Equal(t, "transmit", driver.lastCall().op)
	assert.Equal(t, StateTransmit, rs.MacRadio().State())
	assert.Equal(t, PriorityTransmit, rs.MacRadio().Priority())

	// the MAC consumer itself may not receive mid-transmit
	assert.Equal(t, ErrorInvalidState, rs.MacRadio().Receive(15))

	// another consumer's bid is recorded but stays pending
	assert.Equal(t, ErrorNone, rs.CslRadio().Receive(20))
	assert.Equal(t, StateReceive, rs.CslRadio().State())
	assert.Equal(t, "transmit", driver.lastCall().op)
}

func TestTransmitDoneRestoresBeforeForwarding(t *testing.T) {
	driver := newMockDriver()
	handler := &mockHandler{}
	rs := NewRadioScheduler(driver, handler)
	assert.Equal(t, ErrorNone, rs.Enable())
	assert.Equal(t, ErrorNone, rs.MacRadio().Receive(15))

	frame := &radio.TxFrame{Channel: 15, Psdu: make([]byte, 32)}
	assert.Equal(t, ErrorNone, rs.Transmit(frame))
	assert.Equal(t, ErrorNone, rs.CslRadio().Receive(20))

	receivesBeforeDone := driver.opCount("receive")
	receivesAtCallback := -1
	handler.onTxDone = func() {
		receivesAtCallback = driver.opCount("receive")
	}

	rs.HandleTransmitDone(frame, nil, ErrorNone)

	assert.Equal(t, 1, handler.txDone)
	assert.Equal(t, StateEnabled, rs.MacRadio().State())
	assert.Equal(t, PriorityMin, rs.MacRadio().Priority())

	// exactly one re-issue, and it happened before the handler ran
	assert.Equal(t, receivesBeforeDone+1, driver.opCount("receive"))
	assert.Equal(t, receivesBeforeDone+1, receivesAtCallback)
	assert.Equal(t, mockCall{op: "receive", channel: 20}, driver.lastCall())
}

func TestEnergyScanSuppressesAndRestores(t *testing.T) {
	driver := newMockDriver()
	handler := &mockHandler{}
	rs := NewRadioScheduler(driver, handler)
	assert.Equal(t, ErrorNone, rs.Enable())
	assert.Equal(t, ErrorNone, rs.MacRadio().Receive(15))

	assert.Equal(t, ErrorNone, rs.EnergyScan(20, 100))
	assert.Equal(t, "scan", driver.lastCall().op)
	assert.Equal(t, StateEnergyScan, rs.MacRadio().State())
	assert.Equal(t, PriorityEnergyScan, rs.MacRadio().Priority())

	assert.Equal(t, ErrorNone, rs.WedRadio().Receive(25))
	assert.Equal(t, "scan", driver.lastCall().op)

	rs.HandleEnergyScanDone(-80)
	assert.Equal(t, 1, handler.scanDone)
	assert.Equal(t, int8(-80), handler.lastRssi)
	assert.Equal(t, mockCall{op: "receive", channel: 25}, driver.lastCall())
}

func TestReceiveAtArmsWindowWithoutArbitration(t *testing.T) {
	driver := newMockDriver()
	rs := NewRadioScheduler(driver, nil)
	assert.Equal(t, ErrorNone, rs.Enable())

	assert.Equal(t, ErrorNone, rs.CslRadio().ReceiveAt(15, 50000, 1280))
	assert.Equal(t, mockCall{op: "receiveAt", channel: 15, start: 50000, duration: 1280}, driver.lastCall())
	assert.Equal(t, StateReceiveAt, rs.CslRadio().State())
	assert.Equal(t, PriorityReceiveAt, rs.CslRadio().Priority())
}

func TestReceiveAtShieldsWindowFromSleepBids(t *testing.T) {
	driver := newMockDriver()
	rs := NewRadioScheduler(driver, nil)
	assert.Equal(t, ErrorNone, rs.Enable())
	assert.Equal(t, ErrorNone, rs.CslRadio().ReceiveAt(15, 50000, 1280))

	// a Sleep bid loses to the armed window: no Sleep reaches the driver
	assert.Equal(t, ErrorNone, rs.MacRadio().Sleep())
	assert.Equal(t, 0, driver.opCount("sleep"))

	// an active Receive outranks the window
	assert.Equal(t, ErrorNone, rs.MacRadio().Receive(16))
	assert.Equal(t, mockCall{op: "receive", channel: 16}, driver.lastCall())
}

func TestReceiveAtDriverFailureKeepsConsumerState(t *testing.T) {
	driver := newMockDriver()
	driver.errs["receiveAt"] = ErrorFailed
	rs := NewRadioScheduler(driver, nil)
	assert.Equal(t, ErrorNone, rs.Enable())

	assert.Equal(t, ErrorFailed, rs.CslRadio().ReceiveAt(15, 50000, 1280))
	assert.Equal(t, StateEnabled, rs.CslRadio().State())
}

func TestReceiveAtOnMacPanics(t *testing.T) {
	driver := newMockDriver()
	rs := NewRadioScheduler(driver, nil)
	assert.Equal(t, ErrorNone, rs.Enable())

	assert.Panics(t, func() {
		_ = rs.MacRadio().ReceiveAt(15, 50000, 1280)
	})
}

func TestRadiosString(t *testing.T) {
	driver := newMockDriver()
	rs := NewRadioScheduler(driver, nil)
	assert.Equal(t, ErrorNone, rs.Enable())
	assert.Equal(t, ErrorNone, rs.MacRadio().Receive(15))

	assert.Equal(t, "Mac[state=Receive,prio=11,ch=15],Csl[state=Enabled,prio=0,ch=0],Wed[state=Enabled,prio=0,ch=0]", rs.RadiosString())
}
