package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terassyi/arpspoof/pkg/packet/ipv4"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arpspoof.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "afpacket", c.Transport)
	assert.Equal(t, 10*time.Second, c.ResolveTimeout)
	assert.Equal(t, 10*time.Second, c.SpoofInterval)
	assert.False(t, c.Despoof)
	assert.ErrorIs(t, c.Validate(), ErrMissingVictim)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
interface: eth1
transport: pcap
resolve_timeout: 1500ms
spoof_interval: 2s
target: 10.0.0.3
victim: 10.0.0.2
despoof: true
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "eth1", c.Interface)
	assert.Equal(t, "pcap", c.Transport)
	assert.Equal(t, 1500*time.Millisecond, c.ResolveTimeout)
	assert.Equal(t, 2*time.Second, c.SpoofInterval)
	assert.Equal(t, ipv4.IPAddress{10, 0, 0, 3}, c.Target)
	assert.Equal(t, ipv4.IPAddress{10, 0, 0, 2}, c.Victim)
	assert.True(t, c.Despoof)
	assert.False(t, c.Debug)
}

func TestLoadKeepsDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, "victim: 192.168.0.2\ntarget: 192.168.0.1\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultResolveTimeout, c.ResolveTimeout)
	assert.Equal(t, DefaultSpoofInterval, c.SpoofInterval)
	assert.Equal(t, "afpacket", c.Transport)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "victim: 10.0.0\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "spoof_interval: soon\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := Default()
		c.Victim = ipv4.IPAddress{10, 0, 0, 2}
		c.Target = ipv4.IPAddress{10, 0, 0, 3}
		return c
	}
	require.NoError(t, valid().Validate())

	c := valid()
	c.Target = ipv4.IPAddress{}
	assert.ErrorIs(t, c.Validate(), ErrMissingTarget)

	c = valid()
	c.Transport = "tun"
	assert.Error(t, c.Validate())

	c = valid()
	c.ResolveTimeout = 0
	assert.Error(t, c.Validate())

	c = valid()
	c.SpoofInterval = -time.Second
	assert.Error(t, c.Validate())
}
