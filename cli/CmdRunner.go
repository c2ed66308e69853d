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

// Package cli implements the diagnostics console of the radio scheduler
// stack. It parses and executes console commands against a stub driver on
// the virtual clock.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/openthread/ot-radiosched/alarm"
	"github.com/openthread/ot-radiosched/logger"
	"github.com/openthread/ot-radiosched/progctx"
	"github.com/openthread/ot-radiosched/radio"
	"github.com/openthread/ot-radiosched/stubradio"
	"github.com/openthread/ot-radiosched/submac"
	. "github.com/openthread/ot-radiosched/types"
)

const (
	Prompt = "> "
)

const (
	defaultTxPsduSize     = 32
	defaultScanDurationMs = 100
	defaultWedIntervalUs  = 1000000
	defaultWedDurationUs  = 8000
)

type CommandContext struct {
	*Command
	rt     *CmdRunner
	err    error
	output io.Writer
}

func (cc *CommandContext) outputStr(msg string) {
	_, _ = fmt.Fprint(cc.output, msg)
}

func (cc *CommandContext) outputf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cc.output, format, args...)
}

func (cc *CommandContext) errorf(format string, args ...interface{}) {
	cc.error(errors.Errorf(format, args...))
}

func (cc *CommandContext) error(err error) {
	if err != nil {
		if cc.err != nil { // if previous error, print it now and keep the last.
			cc.outputf("Error: %s\n", cc.err)
		}
		cc.err = err
	}
}

// radioError folds a radio error code into the command status.
func (cc *CommandContext) radioError(err Error) {
	if !err.IsNone() {
		cc.errorf("radio error: %v", err)
	}
}

// Err returns the last error that occurred during command execution.
func (cc *CommandContext) Err() error {
	return cc.err
}

func (cc *CommandContext) outputItemsAsYaml(items interface{}) {
	var itemsYaml yaml.Node

	err := itemsYaml.Encode(items)
	logger.PanicIfError(err)

	for _, content := range itemsYaml.Content {
		content.Style = yaml.FlowStyle
	}

	data, err := yaml.Marshal(&itemsYaml)
	logger.PanicIfError(err)

	_, err = cc.output.Write(data)
	logger.PanicIfError(err)
}

// CmdRunner executes console commands against one SubMac stack running on
// the virtual clock.
type CmdRunner struct {
	ctx    *progctx.ProgCtx
	clock  *alarm.VirtualClock
	timers *alarm.Scheduler
	driver *stubradio.StubRadio
	mac    *submac.SubMac

	channel ChannelId
	txSeq   uint8
	help    Help
}

func NewCmdRunner(ctx *progctx.ProgCtx, clock *alarm.VirtualClock, timers *alarm.Scheduler,
	driver *stubradio.StubRadio, mac *submac.SubMac) *CmdRunner {
	return &CmdRunner{
		ctx:     ctx,
		clock:   clock,
		timers:  timers,
		driver:  driver,
		mac:     mac,
		channel: MinChannel,
		help:    newHelp(),
	}
}

// HandleCommand implements runcli.CliHandler.
func (rt *CmdRunner) HandleCommand(cmdline string, output io.Writer) error {
	if rt.ctx.Err() != nil {
		return rt.ctx.Err()
	}

	cmd := Command{}
	if err := ParseBytes([]byte(cmdline), &cmd); err != nil {
		if _, err := fmt.Fprintf(output, "Error: %v\n", err); err != nil {
			return err
		}
		return nil
	}

	rt.execute(&cmd, output)
	return rt.ctx.Err()
}

// GetPrompt implements runcli.CliHandler.
func (rt *CmdRunner) GetPrompt() string {
	return Prompt
}

func (rt *CmdRunner) execute(cmd *Command, output io.Writer) {
	cc := &CommandContext{
		Command: cmd,
		rt:      rt,
		output:  output,
	}

	defer func() {
		if cc.Err() != nil {
			cc.outputf("Error: %v\n", cc.Err())
		} else {
			cc.outputf("Done\n")
		}
	}()

	defer func() {
		rerr := recover()

		if rerr != nil {
			if err, ok := rerr.(error); ok {
				cc.err = errors.Wrapf(err, "panic: %v", err)
			} else {
				cc.err = errors.Errorf("panic: %v", rerr)
			}
		}
	}()

	if cmd.Radio != nil {
		rt.executeRadio(cc, cmd.Radio)
	} else if cmd.State != nil {
		rt.executeState(cc)
	} else if cmd.Sleep != nil {
		rt.executeSleep(cc)
	} else if cmd.Rx != nil {
		rt.executeRx(cc, cmd.Rx)
	} else if cmd.Tx != nil {
		rt.executeTx(cc, cmd.Tx)
	} else if cmd.Scan != nil {
		rt.executeScan(cc, cmd.Scan)
	} else if cmd.Csl != nil {
		rt.executeCsl(cc, cmd.Csl)
	} else if cmd.Wed != nil {
		rt.executeWed(cc, cmd.Wed)
	} else if cmd.Go != nil {
		rt.executeGo(cc, cmd.Go)
	} else if cmd.Time != nil {
		rt.executeTime(cc)
	} else if cmd.Counters != nil {
		rt.executeCounters(cc)
	} else if cmd.Energy != nil {
		rt.executeEnergy(cc)
	} else if cmd.LogLevel != nil {
		rt.executeLogLevel(cc, cmd.LogLevel)
	} else if cmd.Help != nil {
		rt.executeHelp(cc, cmd.Help)
	} else if cmd.Exit != nil {
		rt.executeExit(cc)
	} else {
		cc.errorf("unknown command: %v", cmd)
	}
}

func (rt *CmdRunner) executeRadio(cc *CommandContext, cmd *RadioCmd) {
	switch {
	case cmd.Enable != nil:
		cc.radioError(rt.mac.Enable())
	case cmd.Disable != nil:
		cc.radioError(rt.mac.Disable())
	default:
		cc.outputf("%v\n", rt.driver.State())
	}
}

func (rt *CmdRunner) executeState(cc *CommandContext) {
	cc.outputf("driver: %v ch=%d\n", rt.driver.State(), rt.driver.Channel())
	cc.outputf("consumers: %s\n", rt.mac.Scheduler().RadiosString())
}

func (rt *CmdRunner) executeSleep(cc *CommandContext) {
	cc.radioError(rt.mac.Scheduler().MacRadio().Sleep())
}

func (rt *CmdRunner) executeRx(cc *CommandContext, cmd *RxCmd) {
	if cmd.Channel != nil {
		rt.channel = rt.channelArg(cc, *cmd.Channel)
	}
	cc.radioError(rt.mac.Scheduler().MacRadio().Receive(rt.channel))
}

func (rt *CmdRunner) executeTx(cc *CommandContext, cmd *TxCmd) {
	size := defaultTxPsduSize
	if cmd.Size != nil {
		size = *cmd.Size
	}
	if size < 3 || size > int(MaxPsduSize) {
		cc.errorf("invalid psdu size %d", size)
		return
	}

	dst := radio.ShortAddr(BroadcastAddress)
	if cmd.Dst != nil {
		dst = radio.ShortAddr(ShortAddress(*cmd.Dst))
	}

	channel := rt.channel
	if cmd.Channel != nil {
		channel = rt.channelArg(cc, *cmd.Channel)
	}

	rt.txSeq++
	psdu := make([]byte, size)
	psdu[0] = 0x61 // data frame, ack-request
	psdu[1] = 0x88
	psdu[2] = rt.txSeq

	frame := &radio.TxFrame{
		Channel: channel,
		Psdu:    psdu,
		DstAddr: dst,
	}

	cc.radioError(rt.mac.Transmit(frame))
}

func (rt *CmdRunner) executeScan(cc *CommandContext, cmd *ScanCmd) {
	duration := defaultScanDurationMs
	if cmd.Duration != nil {
		duration = *cmd.Duration
	}

	cc.radioError(rt.mac.EnergyScan(rt.channelArg(cc, cmd.Channel), uint16(duration)))
}

func (rt *CmdRunner) executeCsl(cc *CommandContext, cmd *CslCmd) {
	switch {
	case cmd.Period != nil:
		rt.mac.SetCslPeriod(uint16(cmd.Period.Val))
	case cmd.Channel != nil:
		rt.mac.SetCslChannel(rt.channelArg(cc, cmd.Channel.Val))
	case cmd.Window != nil:
		rt.mac.SetCslSampleWindow(uint32(cmd.Window.Val))
	case cmd.Peer != nil:
		ext := InvalidExtAddress
		if cmd.Peer.Ext != "" {
			v, err := strconv.ParseUint(cmd.Peer.Ext, 16, 64)
			if err != nil {
				cc.errorf("invalid extended address %q", cmd.Peer.Ext)
				return
			}
			ext = v
		}
		rt.mac.SetCslPeerAddress(ShortAddress(cmd.Peer.Short), ext)
	case cmd.Phase != nil:
		if rt.mac.CslPeriod() == 0 {
			cc.errorf("csl is off")
			return
		}
		cc.outputf("%d\n", rt.mac.CslPhase())
	default:
		cc.outputItemsAsYaml(map[string]interface{}{
			"period":  rt.mac.CslPeriod(),
			"channel": rt.mac.CslChannel(),
		})
	}
}

func (rt *CmdRunner) executeWed(cc *CommandContext, cmd *WedCmd) {
	interval := uint64(defaultWedIntervalUs)
	if cmd.Interval != nil {
		interval = uint64(*cmd.Interval)
	}

	duration := uint32(defaultWedDurationUs)
	if cmd.Duration != nil {
		duration = uint32(*cmd.Duration)
	}

	channel := rt.channel
	if cmd.Channel != nil {
		channel = rt.channelArg(cc, *cmd.Channel)
	}

	if duration >= uint32(interval) {
		cc.errorf("wed duration %d must be below interval %d", duration, interval)
		return
	}

	rt.mac.UpdateWakeupListening(cmd.On != nil, interval, duration, channel)
}

func (rt *CmdRunner) executeGo(cc *CommandContext, cmd *GoCmd) {
	dur, err := time.ParseDuration(cmd.Time)
	if err != nil {
		dur, err = time.ParseDuration(cmd.Time + "s") // try parsing as seconds
		if err != nil {
			cc.errorf("could not parse time duration: %s", cmd.Time)
			return
		}
	}

	rt.AdvanceTime(uint64(dur.Microseconds()))
}

// AdvanceTime runs the virtual clock forward by durationUs, dispatching
// every timer that falls due on the way.
func (rt *CmdRunner) AdvanceTime(durationUs uint64) {
	target := rt.clock.Now() + durationUs

	for {
		next := rt.timers.NextTimestamp()
		if next > target {
			break
		}
		rt.clock.AdvanceTo(next)
		rt.timers.Process()
	}

	rt.clock.AdvanceTo(target)
}

func (rt *CmdRunner) executeTime(cc *CommandContext) {
	cc.outputf("%d\n", rt.clock.Now())
}

func (rt *CmdRunner) executeCounters(cc *CommandContext) {
	cc.outputItemsAsYaml(rt.driver.Counters())
}

func (rt *CmdRunner) executeEnergy(cc *CommandContext) {
	rt.driver.Tracker().WriteReport(cc.output, uint64(rt.clock.Now()))
}

func (rt *CmdRunner) executeLogLevel(cc *CommandContext, cmd *LogLevelCmd) {
	if cmd.Level == "" {
		cc.outputf("%s\n", logger.GetLevelString(logger.GetLevel()))
	} else {
		logger.SetLevel(logger.ParseLevel(cmd.Level))
	}
}

func (rt *CmdRunner) executeHelp(cc *CommandContext, cmd *HelpCmd) {
	if cmd.HelpTopic == "" {
		cc.outputStr(rt.help.outputGeneralHelp())
	} else {
		cc.outputStr(rt.help.outputCommandHelp(cmd.HelpTopic))
	}
}

func (rt *CmdRunner) executeExit(cc *CommandContext) {
	rt.ctx.Cancel(nil)
}

func (rt *CmdRunner) channelArg(cc *CommandContext, ch int) ChannelId {
	if ch < int(MinChannel) || ch > int(MaxChannel) {
		cc.errorf("channel %d out of range [%d, %d]", ch, MinChannel, MaxChannel)
		return rt.channel
	}
	return ChannelId(ch)
}
