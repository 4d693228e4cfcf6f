package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/terassyi/arpspoof/pkg/interfaces"
	"github.com/terassyi/arpspoof/pkg/packet/ipv4"
)

const (
	DefaultResolveTimeout = 10 * time.Second
	DefaultSpoofInterval  = 10 * time.Second
)

var (
	ErrMissingVictim = errors.New("victim address is required")
	ErrMissingTarget = errors.New("target address is required")
)

// Config is everything a spoofing run needs. Durations in YAML are strings
// such as "1500ms" or "10s".
type Config struct {
	Interface      string         `yaml:"interface"`
	Transport      string         `yaml:"transport"`
	ResolveTimeout time.Duration  `yaml:"resolve_timeout"`
	SpoofInterval  time.Duration  `yaml:"spoof_interval"`
	Target         ipv4.IPAddress `yaml:"target"`
	Victim         ipv4.IPAddress `yaml:"victim"`
	Despoof        bool           `yaml:"despoof"`
	Debug          bool           `yaml:"debug"`
}

func Default() *Config {
	return &Config{
		Transport:      interfaces.AfPacket,
		ResolveTimeout: DefaultResolveTimeout,
		SpoofInterval:  DefaultSpoofInterval,
	}
}

// Load reads a YAML file on top of the defaults. It does not validate.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Victim.IsZero() {
		return ErrMissingVictim
	}
	if c.Target.IsZero() {
		return ErrMissingTarget
	}
	return c.ValidateLink()
}

// ValidateLink checks only the settings needed to open a link and resolve.
func (c *Config) ValidateLink() error {
	if !interfaces.Valid(c.Transport) {
		return fmt.Errorf("transport must be %q or %q, got %q", interfaces.AfPacket, interfaces.Pcap, c.Transport)
	}
	if c.ResolveTimeout <= 0 {
		return fmt.Errorf("resolve_timeout must be positive, got %s", c.ResolveTimeout)
	}
	if c.SpoofInterval <= 0 {
		return fmt.Errorf("spoof_interval must be positive, got %s", c.SpoofInterval)
	}
	return nil
}
