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

package console

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// CslConfig is the CSL receiver startup configuration.
type CslConfig struct {
	Period    uint16 `yaml:"period"` // ten-symbol units, 0 = off
	Channel   uint8  `yaml:"channel"`
	PeerShort uint16 `yaml:"peer-short"`
	PeerExt   string `yaml:"peer-ext"` // hexadecimal
	Window    uint32 `yaml:"window"`   // us, 0 = default
}

// WedConfig is the WED listener startup configuration.
type WedConfig struct {
	Enable   bool   `yaml:"enable"`
	Interval uint64 `yaml:"interval"` // us
	Duration uint32 `yaml:"duration"` // us
	Channel  uint8  `yaml:"channel"`
}

// Config is the optional YAML startup configuration of the console stack.
type Config struct {
	LogLevel string    `yaml:"log-level"`
	Seed     int64     `yaml:"seed"`
	Channel  uint8     `yaml:"channel"`
	Enable   bool      `yaml:"enable"` // enable the radio at startup
	Csl      CslConfig `yaml:"csl"`
	Wed      WedConfig `yaml:"wed"`
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config file %s", path)
	}

	cfg := &Config{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "could not parse config file %s", path)
	}

	return cfg, nil
}

// PeerExtAddress parses the hexadecimal extended peer address.
func (c *CslConfig) PeerExtAddress() (uint64, error) {
	if c.PeerExt == "" {
		return 0, nil
	}

	v, err := strconv.ParseUint(c.PeerExt, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid peer-ext %q", c.PeerExt)
	}
	return v, nil
}
