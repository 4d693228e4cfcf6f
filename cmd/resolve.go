package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fatih/color"
	"github.com/google/subcommands"

	"github.com/terassyi/arpspoof/logger"
	"github.com/terassyi/arpspoof/pkg/config"
	"github.com/terassyi/arpspoof/pkg/packet/ethernet"
	"github.com/terassyi/arpspoof/pkg/packet/ipv4"
	"github.com/terassyi/arpspoof/pkg/spoof"
)

type ResolveCommand struct {
	linkFlags
	Addr string
}

func (r *ResolveCommand) Name() string {
	return "resolve"
}

func (r *ResolveCommand) Synopsis() string {
	return "resolve an IPv4 address to a MAC address"
}

func (r *ResolveCommand) Usage() string {
	return `arpspoof resolve -a <address> [-i <interface>] [-u ms]:
	broadcast one ARP request and print the MAC address of the first reply
`
}

func (r *ResolveCommand) SetFlags(f *flag.FlagSet) {
	r.linkFlags.set(f)
	f.StringVar(&r.Addr, "a", "", "IPv4 address to resolve")
}

func (r *ResolveCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := r.load(f, nil)
	if err == nil {
		err = cfg.ValidateLink()
	}
	var addr ipv4.IPAddress
	if err == nil {
		addr, err = parseIP("a", r.Addr)
	}
	if err != nil {
		fail(err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	log := logger.New(cfg.Debug, "cli")
	mac, err := resolve(cfg, log, addr)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s is at %s\n", color.CyanString(addr.String()), color.GreenString(mac.String()))
	return subcommands.ExitSuccess
}

func resolve(cfg *config.Config, log *logger.Logger, addr ipv4.IPAddress) (ethernet.HardwareAddress, error) {
	sess, err := open(cfg, log)
	if err != nil {
		return ethernet.HardwareAddress{}, err
	}
	defer sess.Close()

	op := "resolve " + addr.String()
	mac, ok, err := sess.client.Resolve(sess.local, addr, cfg.ResolveTimeout)
	if err != nil {
		return ethernet.HardwareAddress{}, spoof.Classify(op, err)
	}
	if !ok {
		return ethernet.HardwareAddress{}, &spoof.Error{Kind: spoof.KindResolutionTimeout, Op: op, Err: spoof.ErrNoResponse}
	}
	return mac, nil
}
