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

package radio

import (
	"fmt"

	. "github.com/openthread/ot-radiosched/types"
)

type AddressType uint8

const (
	AddressTypeNone     AddressType = 0
	AddressTypeShort    AddressType = 1
	AddressTypeExtended AddressType = 2
)

// Address is an IEEE 802.15.4 destination/source address.
type Address struct {
	Type  AddressType
	Short ShortAddress
	Ext   ExtAddress
}

func ShortAddr(aShort ShortAddress) Address {
	return Address{Type: AddressTypeShort, Short: aShort}
}

func ExtAddr(aExt ExtAddress) Address {
	return Address{Type: AddressTypeExtended, Ext: aExt}
}

func (a Address) IsNone() bool {
	return a.Type == AddressTypeNone
}

func (a Address) IsShort() bool {
	return a.Type == AddressTypeShort
}

func (a Address) IsExtended() bool {
	return a.Type == AddressTypeExtended
}

func (a Address) String() string {
	switch a.Type {
	case AddressTypeShort:
		return fmt.Sprintf("0x%04x", a.Short)
	case AddressTypeExtended:
		return fmt.Sprintf("%016x", a.Ext)
	default:
		return "none"
	}
}

// TxFrame is a frame handed to Driver.Transmit. The PSDU is formed by the
// MAC layer; the scheduler only appends header IEs (CSL) before the frame
// goes out.
type TxFrame struct {
	Channel ChannelId
	Psdu    []byte
	DstAddr Address

	// Retransmission is set when this frame was transmitted before; header
	// IE content (CSL phase) must not be regenerated for retransmissions.
	Retransmission bool

	// IePresent is set when the frame carries one or more header IEs.
	IePresent bool
}

// AppendHeaderIe appends serialized header-IE bytes to the frame's PSDU and
// marks the IE-present bit.
func (f *TxFrame) AppendHeaderIe(aIe []byte) {
	if len(aIe) == 0 {
		return
	}
	f.Psdu = append(f.Psdu, aIe...)
	f.IePresent = true
}

// AirTimeUs returns the on-air duration of the frame in microseconds,
// including the PHY header.
func (f *TxFrame) AirTimeUs() uint32 {
	return uint32(PhyHeaderLenBytes+len(f.Psdu)) * 8 * TimeUsPerBit
}

// RxFrame is a received frame (or received ACK) delivered by the driver.
type RxFrame struct {
	Channel   ChannelId
	Psdu      []byte
	Rssi      int8
	Lqi       uint8
	Timestamp RadioTime

	AckedWithFramePending bool
}
