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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log-level: debug
seed: 42
channel: 15
enable: true
csl:
  period: 3125
  channel: 20
  peer-short: 0x1234
  peer-ext: "0011223344556677"
  window: 2000
wed:
  enable: true
  interval: 1000000
  duration: 8000
  channel: 11
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, uint8(15), cfg.Channel)
	assert.True(t, cfg.Enable)

	assert.Equal(t, uint16(3125), cfg.Csl.Period)
	assert.Equal(t, uint8(20), cfg.Csl.Channel)
	assert.Equal(t, uint16(0x1234), cfg.Csl.PeerShort)
	assert.Equal(t, uint32(2000), cfg.Csl.Window)

	ext, err := cfg.Csl.PeerExtAddress()
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x0011223344556677), ext)

	assert.True(t, cfg.Wed.Enable)
	assert.Equal(t, uint64(1000000), cfg.Wed.Interval)
	assert.Equal(t, uint32(8000), cfg.Wed.Duration)
	assert.Equal(t, uint8(11), cfg.Wed.Channel)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("csl: ["), 0644))

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}

func TestPeerExtAddress(t *testing.T) {
	cfg := CslConfig{}
	ext, err := cfg.PeerExtAddress()
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), ext)

	cfg.PeerExt = "zzzz"
	_, err = cfg.PeerExtAddress()
	assert.Error(t, err)
}
