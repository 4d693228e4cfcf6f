package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/terassyi/arpspoof/pkg/config"
	"github.com/terassyi/arpspoof/pkg/packet/ipv4"
)

// linkFlags are shared by every command that opens a link.
type linkFlags struct {
	ConfigPath    string
	Iface         string
	Transport     string
	ResolveMillis uint
	Debug         bool
}

func (l *linkFlags) set(f *flag.FlagSet) {
	f.StringVar(&l.ConfigPath, "config", "", "yaml configuration file")
	f.StringVar(&l.Iface, "i", "", "network interface to use")
	f.StringVar(&l.Transport, "transport", "afpacket", "link transport (afpacket or pcap)")
	f.UintVar(&l.ResolveMillis, "u", 10000, "ARP resolution timeout, in milliseconds")
	f.BoolVar(&l.Debug, "debug", false, "debug output")
}

// load reads the configuration file, if any, and applies only the flags that
// were given explicitly on the command line.
func (l *linkFlags) load(f *flag.FlagSet, apply func(name string, cfg *config.Config) error) (*config.Config, error) {
	cfg := config.Default()
	if l.ConfigPath != "" {
		c, err := config.Load(l.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "i":
			cfg.Interface = l.Iface
		case "transport":
			cfg.Transport = l.Transport
		case "u":
			cfg.ResolveTimeout = millis(l.ResolveMillis)
		case "debug":
			cfg.Debug = l.Debug
		default:
			if apply != nil {
				err = apply(fl.Name, cfg)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func millis(ms uint) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func parseIP(name, value string) (ipv4.IPAddress, error) {
	addr, err := ipv4.StringToIPAddress(value)
	if err != nil {
		return ipv4.IPAddress{}, fmt.Errorf("-%s: %w", name, err)
	}
	return addr, nil
}
