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

// Package energy estimates radio energy use by accounting the time the
// radio driver spends in each state. Duty-cycled listening exists to keep
// the Rx residency low; the tracker makes the effect measurable.
package energy

import (
	"fmt"
	"io"

	"github.com/openthread/ot-radiosched/logger"
	"github.com/openthread/ot-radiosched/radio"
)

type Tracker struct {
	status RadioStatus
}

// NewTracker creates a tracker with the radio Disabled as of timestamp.
func NewTracker(timestamp uint64) *Tracker {
	return &Tracker{
		status: RadioStatus{
			State:     radio.StateDisabled,
			Timestamp: timestamp,
		},
	}
}

// compute accounts the time since the last update to the current state.
func (t *Tracker) compute(timestamp uint64) {
	delta := timestamp - t.status.Timestamp
	switch t.status.State {
	case radio.StateDisabled:
		t.status.SpentDisabled += delta
	case radio.StateSleep:
		t.status.SpentSleep += delta
	case radio.StateTransmit:
		t.status.SpentTx += delta
	case radio.StateReceive, radio.StateScan:
		t.status.SpentRx += delta
	default:
		logger.Panicf("unknown radio state: %v", t.status.State)
	}
	t.status.Timestamp = timestamp
}

// SetRadioState records a state transition at the given timestamp.
func (t *Tracker) SetRadioState(state radio.State, timestamp uint64) {
	// Mandatory: account the time spent in the previous state first.
	t.compute(timestamp)
	t.status.State = state
}

// Status returns the residency accumulated up to the given timestamp.
func (t *Tracker) Status(timestamp uint64) RadioStatus {
	t.compute(timestamp)
	return t.status
}

// Consumption returns the estimated energy spent up to the given timestamp.
func (t *Tracker) Consumption(timestamp uint64) Consumption {
	t.compute(timestamp)
	return Consumption{
		Timestamp: timestamp,
		Disabled:  float64(t.status.SpentDisabled) * RadioDisabledConsumption,
		Sleep:     float64(t.status.SpentSleep) * RadioSleepConsumption,
		Tx:        float64(t.status.SpentTx) * RadioTxConsumption,
		Rx:        float64(t.status.SpentRx) * RadioRxConsumption,
	}
}

// WriteReport writes a human-readable residency and energy table.
func (t *Tracker) WriteReport(w io.Writer, timestamp uint64) {
	s := t.Status(timestamp)
	c := t.Consumption(timestamp)

	fmt.Fprintf(w, "Radio time accounted (in milliseconds): %d\n", timestamp/1000)
	fmt.Fprintf(w, "State\tTime (ms)\tEnergy (mJ)\n")
	fmt.Fprintf(w, "Disabled\t%d\t%f\n", s.SpentDisabled/1000, c.Disabled)
	fmt.Fprintf(w, "Sleep\t%d\t%f\n", s.SpentSleep/1000, c.Sleep)
	fmt.Fprintf(w, "Tx\t%d\t%f\n", s.SpentTx/1000, c.Tx)
	fmt.Fprintf(w, "Rx\t%d\t%f\n", s.SpentRx/1000, c.Rx)
	fmt.Fprintf(w, "Total\t%d\t%f\n", timestamp/1000, c.Total())
}
