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

// Package console assembles the radio scheduler stack behind the
// diagnostics console: stub driver, alarm service on the virtual clock,
// SubMac and command runner.
package console

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/openthread/ot-radiosched/alarm"
	"github.com/openthread/ot-radiosched/cli"
	"github.com/openthread/ot-radiosched/cli/runcli"
	"github.com/openthread/ot-radiosched/logger"
	"github.com/openthread/ot-radiosched/prng"
	"github.com/openthread/ot-radiosched/progctx"
	"github.com/openthread/ot-radiosched/radio"
	"github.com/openthread/ot-radiosched/stubradio"
	"github.com/openthread/ot-radiosched/submac"
	"github.com/openthread/ot-radiosched/types"
)

type MainArgs struct {
	ConfigFile      string
	LogLevel        string
	Seed            int64
	ClockOffset     uint64
	NoReceiveTiming bool
	NoEnergyScan    bool
}

var (
	args MainArgs
)

func parseArgs() {
	flag.StringVar(&args.ConfigFile, "config", "", "specify a YAML startup config file.")
	flag.StringVar(&args.LogLevel, "log", "warn", "set logging level: trace, debug, info, warn, error.")
	flag.Int64Var(&args.Seed, "seed", 0, "set the PRNG root seed (0 = time based).")
	flag.Uint64Var(&args.ClockOffset, "clock-offset", 0, "offset of the radio clock vs the host clock, in microseconds.")
	flag.BoolVar(&args.NoReceiveTiming, "no-receive-timing", false, "drop the driver's receive-timing capability (forces the toggle duty-cycle strategy).")
	flag.BoolVar(&args.NoEnergyScan, "no-energy-scan", false, "drop the driver's energy-scan capability.")

	flag.Parse()
}

// Main runs the console until exit or signal.
func Main(ctx *progctx.ProgCtx) {
	parseArgs()
	logger.SetLevel(logger.ParseLevel(args.LogLevel))
	prng.Init(args.Seed)

	ctx.Defer(func() {
		_ = os.Stdin.Close()
	})

	handleSignals(ctx)

	caps := radio.CapsReceiveTiming | radio.CapsEnergyScan
	if args.NoReceiveTiming {
		caps &^= radio.CapsReceiveTiming
	}
	if args.NoEnergyScan {
		caps &^= radio.CapsEnergyScan
	}

	clock := alarm.NewVirtualClock()
	timers := alarm.NewScheduler(clock)
	driver := stubradio.New(timers, caps, args.ClockOffset)
	mac := submac.New(driver, timers, nil)
	driver.SetCallbacks(mac.Scheduler())

	if args.ConfigFile != "" {
		cfg, err := LoadConfigFile(args.ConfigFile)
		if err != nil {
			logger.Fatalf("%+v", err)
		}
		applyConfig(cfg, mac)
	}

	rt := cli.NewCmdRunner(ctx, clock, timers, driver, mac)

	// run the console in the main goroutine; signals cancel the context.
	err := runcli.RunCli(rt)
	ctx.Cancel(errors.Wrapf(err, "console exit"))
	ctx.Wait()
}

func applyConfig(cfg *Config, mac *submac.SubMac) {
	if cfg.LogLevel != "" {
		logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
	}
	if cfg.Seed != 0 {
		prng.Init(cfg.Seed)
	}
	if cfg.Enable {
		if err := mac.Enable(); !err.IsNone() {
			logger.Fatalf("could not enable the radio: %v", err)
		}
	}

	channel := types.MinChannel
	if cfg.Channel != 0 {
		channel = cfg.Channel
	}

	if cfg.Csl.Window > 0 {
		mac.SetCslSampleWindow(cfg.Csl.Window)
	}
	if cfg.Csl.Period > 0 {
		ext, err := cfg.Csl.PeerExtAddress()
		if err != nil {
			logger.Fatalf("%+v", err)
		}

		cslChannel := channel
		if cfg.Csl.Channel != 0 {
			cslChannel = cfg.Csl.Channel
		}

		mac.SetCslPeerAddress(cfg.Csl.PeerShort, ext)
		mac.SetCslChannel(cslChannel)
		mac.SetCslPeriod(cfg.Csl.Period)
	}

	if cfg.Wed.Enable {
		wedChannel := channel
		if cfg.Wed.Channel != 0 {
			wedChannel = cfg.Wed.Channel
		}
		mac.UpdateWakeupListening(true, cfg.Wed.Interval, cfg.Wed.Duration, wedChannel)
	}
}

func handleSignals(ctx *progctx.ProgCtx) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGHUP)
	signal.Ignore(syscall.SIGALRM)

	ctx.Go("handleSignals", func() {
		defer logger.Debugf("handleSignals exit.")

		for {
			select {
			case sig := <-c:
				logger.Infof("signal received: %v", sig)
				ctx.Cancel(nil)
			case <-ctx.Done():
				return
			}
		}
	})
}
