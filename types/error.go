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

package types

// Error is an OT_ERROR_* style error code, returned synchronously by the
// radio driver and scheduler contracts. ErrorNone is the zero value; the
// helpers below keep call sites close to the C originals while still
// satisfying Go's error interface for non-None codes.
// (See OpenThread error.h for the numeric values.)
type Error uint8

const (
	ErrorNone                 Error = 0
	ErrorFailed               Error = 1
	ErrorInvalidState         Error = 13
	ErrorNoAck                Error = 14
	ErrorChannelAccessFailure Error = 15
	ErrorAbort                Error = 11
	ErrorNotImplemented       Error = 4
	ErrorBusy                 Error = 5
)

func (e Error) Error() string {
	return e.String()
}

func (e Error) String() string {
	switch e {
	case ErrorNone:
		return "None"
	case ErrorFailed:
		return "Failed"
	case ErrorInvalidState:
		return "InvalidState"
	case ErrorNoAck:
		return "NoAck"
	case ErrorChannelAccessFailure:
		return "ChannelAccessFailure"
	case ErrorAbort:
		return "Abort"
	case ErrorNotImplemented:
		return "NotImplemented"
	case ErrorBusy:
		return "Busy"
	default:
		return "UnknownError"
	}
}

// IsNone reports whether the code indicates success.
func (e Error) IsNone() bool {
	return e == ErrorNone
}
