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

package energy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openthread/ot-radiosched/radio"
)

func TestTrackerResidency(t *testing.T) {
	tracker := NewTracker(0)
	tracker.SetRadioState(radio.StateSleep, 1000)
	tracker.SetRadioState(radio.StateReceive, 3000)
	tracker.SetRadioState(radio.StateTransmit, 6000)

	s := tracker.Status(10000)
	assert.Equal(t, radio.StateTransmit, s.State)
	assert.Equal(t, uint64(1000), s.SpentDisabled)
	assert.Equal(t, uint64(2000), s.SpentSleep)
	assert.Equal(t, uint64(3000), s.SpentRx)
	assert.Equal(t, uint64(4000), s.SpentTx)
	assert.Equal(t, uint64(10000), s.Timestamp)
}

func TestScanTimeCountsAsRx(t *testing.T) {
	tracker := NewTracker(0)
	tracker.SetRadioState(radio.StateScan, 0)
	tracker.SetRadioState(radio.StateSleep, 5000)

	s := tracker.Status(5000)
	assert.Equal(t, uint64(5000), s.SpentRx)
}

func TestTrackerConsumption(t *testing.T) {
	tracker := NewTracker(0)
	tracker.SetRadioState(radio.StateReceive, 0)
	tracker.SetRadioState(radio.StateTransmit, 4000)

	c := tracker.Consumption(10000)
	assert.Equal(t, 4000*RadioRxConsumption, c.Rx)
	assert.Equal(t, 6000*RadioTxConsumption, c.Tx)
	assert.Equal(t, 0.0, c.Sleep)
	assert.Equal(t, 0.0, c.Disabled)
	assert.Equal(t, c.Rx+c.Tx, c.Total())
}

func TestWriteReport(t *testing.T) {
	tracker := NewTracker(0)
	tracker.SetRadioState(radio.StateSleep, 0)

	var buf bytes.Buffer
	tracker.WriteReport(&buf, 2000000)

	out := buf.String()
	assert.Contains(t, out, "Radio time accounted (in milliseconds): 2000")
	assert.Contains(t, out, "State\tTime (ms)\tEnergy (mJ)")
	assert.Contains(t, out, "Sleep\t2000\t")
	assert.Contains(t, out, "Total\t2000\t")
}
