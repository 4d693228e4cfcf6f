package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terassyi/arpspoof/pkg/config"
	"github.com/terassyi/arpspoof/pkg/packet/ipv4"
)

func spoofFlags(t *testing.T, args ...string) (*SpoofCommand, *flag.FlagSet) {
	t.Helper()
	s := &SpoofCommand{}
	f := flag.NewFlagSet("spoof", flag.ContinueOnError)
	s.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return s, f
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arpspoof.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSpoofFlags(t *testing.T) {
	s, f := spoofFlags(t, "-t", "192.168.0.1", "-v", "192.168.0.20", "-i", "eth0", "-u", "1500", "-j", "250", "-d")
	cfg, err := s.config(f)
	require.NoError(t, err)
	assert.Equal(t, "eth0", cfg.Interface)
	assert.Equal(t, ipv4.IPAddress{192, 168, 0, 1}, cfg.Target)
	assert.Equal(t, ipv4.IPAddress{192, 168, 0, 20}, cfg.Victim)
	assert.Equal(t, 1500*time.Millisecond, cfg.ResolveTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.SpoofInterval)
	assert.True(t, cfg.Despoof)
	assert.Equal(t, "afpacket", cfg.Transport)
}

func TestSpoofFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
interface: eth1
transport: pcap
target: 10.0.0.1
victim: 10.0.0.2
spoof_interval: 2s
`)
	s, f := spoofFlags(t, "-config", path, "-v", "10.0.0.9", "-j", "500")
	cfg, err := s.config(f)
	require.NoError(t, err)
	assert.Equal(t, "eth1", cfg.Interface)
	assert.Equal(t, "pcap", cfg.Transport)
	assert.Equal(t, ipv4.IPAddress{10, 0, 0, 1}, cfg.Target)
	assert.Equal(t, ipv4.IPAddress{10, 0, 0, 9}, cfg.Victim)
	assert.Equal(t, 500*time.Millisecond, cfg.SpoofInterval)
	assert.Equal(t, config.DefaultResolveTimeout, cfg.ResolveTimeout)
	assert.False(t, cfg.Despoof)
}

func TestSpoofFlagsInvalid(t *testing.T) {
	s, f := spoofFlags(t, "-t", "10.0.0.1", "-v", "10.0.0")
	_, err := s.config(f)
	assert.ErrorContains(t, err, "-v")

	s, f = spoofFlags(t, "-t", "10.0.0.1")
	_, err = s.config(f)
	assert.ErrorIs(t, err, config.ErrMissingVictim)

	s, f = spoofFlags(t, "-t", "10.0.0.1", "-v", "10.0.0.2", "-j", "0")
	_, err = s.config(f)
	assert.ErrorContains(t, err, "spoof_interval")

	s, f = spoofFlags(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = s.config(f)
	assert.Error(t, err)
}

func TestResolveFlagsIgnoreSpoofSettings(t *testing.T) {
	r := &ResolveCommand{}
	f := flag.NewFlagSet("resolve", flag.ContinueOnError)
	r.SetFlags(f)
	require.NoError(t, f.Parse([]string{"-a", "10.0.0.7", "-transport", "pcap", "-debug"}))
	cfg, err := r.load(f, nil)
	require.NoError(t, err)
	assert.NoError(t, cfg.ValidateLink())
	assert.Equal(t, "pcap", cfg.Transport)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "10.0.0.7", r.Addr)
}
