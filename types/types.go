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

// Package types contains the scalar types and constants shared by all packages
// of the radio scheduler.
package types

import "math"

// Time is a timestamp on the host's monotonic microsecond clock.
type Time = uint64

// RadioTime is a timestamp on the radio hardware's own microsecond clock,
// which may run at a different offset than the host clock.
type RadioTime = uint64

type ChannelId = uint8

type ShortAddress = uint16
type ExtAddress = uint64

const (
	InvalidShortAddress ShortAddress = 0xfffe
	BroadcastAddress    ShortAddress = 0xffff
	InvalidExtAddress   ExtAddress   = math.MaxUint64
)

// IEEE 802.15.4-2015 2.4 GHz O-QPSK PHY parameters. These assumptions are
// hardcoded into the OT radio stack and reproduced here.
const (
	MinChannel        ChannelId = 11
	MaxChannel        ChannelId = 26
	TimeUsPerBit                = 4
	PhyHeaderLenBytes           = 6
	MacFrameLenBytes            = 127
	MaxPsduSize                 = MacFrameLenBytes

	// UsPerTenSymbols is the length of ten O-QPSK symbols in microseconds,
	// the unit in which CSL period and phase are expressed on the wire.
	UsPerTenSymbols uint32 = 160
)
