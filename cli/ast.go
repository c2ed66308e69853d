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

package cli

import (
	"github.com/alecthomas/participle"
)

// noinspection GoStructTag
type Command struct {
	Counters *CountersCmd `  @@` //nolint
	Csl      *CslCmd      `| @@` //nolint
	Energy   *EnergyCmd   `| @@` //nolint
	Exit     *ExitCmd     `| @@` //nolint
	Go       *GoCmd       `| @@` //nolint
	Help     *HelpCmd     `| @@` //nolint
	LogLevel *LogLevelCmd `| @@` //nolint
	Radio    *RadioCmd    `| @@` //nolint
	Rx       *RxCmd       `| @@` //nolint
	Scan     *ScanCmd     `| @@` //nolint
	Sleep    *SleepCmd    `| @@` //nolint
	State    *StateCmd    `| @@` //nolint
	Time     *TimeCmd     `| @@` //nolint
	Tx       *TxCmd       `| @@` //nolint
	Wed      *WedCmd      `| @@` //nolint
}

// noinspection GoStructTag
type OnFlag struct {
	Dummy struct{} `"on"` //nolint
}

// noinspection GoStructTag
type OffFlag struct {
	Dummy struct{} `"off"` //nolint
}

// noinspection GoStructTag
type RadioCmd struct {
	Cmd     struct{} `"radio"`      //nolint
	Enable  *OnFlag  `[ ( @@`       //nolint
	Disable *OffFlag `  | @@ ) ]`   //nolint
}

// noinspection GoStructTag
type StateCmd struct {
	Cmd struct{} `"state"` //nolint
}

// noinspection GoStructTag
type SleepCmd struct {
	Cmd struct{} `"sleep"` //nolint
}

// noinspection GoStructTag
type RxCmd struct {
	Cmd     struct{} `"rx"`      //nolint
	Channel *int     `[ @Int ]`  //nolint
}

// noinspection GoStructTag
type TxCmd struct {
	Cmd     struct{} `"tx"`                 //nolint
	Size    *int     `[ ("size"|"sz") @Int ]` //nolint
	Dst     *int     `[ "dst" @Int ]`       //nolint
	Channel *int     `[ "ch" @Int ]`        //nolint
}

// noinspection GoStructTag
type ScanCmd struct {
	Cmd      struct{} `"scan"`          //nolint
	Channel  int      `@Int`            //nolint
	Duration *int     `[ "dur" @Int ]`  //nolint
}

// noinspection GoStructTag
type CslCmd struct {
	Cmd     struct{}       `"csl"`    //nolint
	Period  *CslPeriodArg  `[ ( @@`   //nolint
	Channel *CslChannelArg `  | @@`   //nolint
	Peer    *CslPeerArg    `  | @@`   //nolint
	Window  *CslWindowArg  `  | @@`   //nolint
	Phase   *CslPhaseArg   `  | @@ )]` //nolint
}

// noinspection GoStructTag
type CslPeriodArg struct {
	Val int `"period" @Int` //nolint
}

// noinspection GoStructTag
type CslChannelArg struct {
	Val int `"channel" @Int` //nolint
}

// noinspection GoStructTag
type CslPeerArg struct {
	Short int    `"peer" @Int`  //nolint
	Ext   string `[ @String ]`  //nolint
}

// noinspection GoStructTag
type CslWindowArg struct {
	Val int `"window" @Int` //nolint
}

// noinspection GoStructTag
type CslPhaseArg struct {
	Dummy struct{} `"phase"` //nolint
}

// noinspection GoStructTag
type WedCmd struct {
	Cmd      struct{} `"wed"`               //nolint
	On       *OnFlag  `( @@`                //nolint
	Off      *OffFlag `| @@ )`              //nolint
	Interval *int     `[ ("interval"|"itv") @Int ]` //nolint
	Duration *int     `[ ("duration"|"dur") @Int ]` //nolint
	Channel  *int     `[ "ch" @Int ]`       //nolint
}

// noinspection GoStructTag
type GoCmd struct {
	Cmd  struct{} `"go"`                                     //nolint
	Time string   `@((Int|Float)["h"|"us"|"m"|"ms"|"s"])` //nolint
}

// noinspection GoStructTag
type TimeCmd struct {
	Cmd struct{} `"time"` //nolint
}

// noinspection GoStructTag
type CountersCmd struct {
	Cmd struct{} `"counters"` //nolint
}

// noinspection GoStructTag
type EnergyCmd struct {
	Cmd struct{} `"energy"` //nolint
}

type LogLevelCmd struct {
	Cmd   struct{} `"log"`                                                  //nolint
	Level string   `[@( "trace"|"debug"|"info"|"warn"|"error"|"panic"|"fatal" )]` //nolint
}

// noinspection GoStructTag
type HelpCmd struct {
	Cmd       struct{} `"help"`       //nolint
	HelpTopic string   `[ (@Ident) ]` //nolint
}

// noinspection GoStructTag
type ExitCmd struct {
	Cmd struct{} `"exit"` //nolint
}

var (
	commandParser = participle.MustBuild(&Command{})
)

func ParseBytes(b []byte, cmd *Command) error {
	err := commandParser.ParseBytes(b, cmd)
	return err
}
