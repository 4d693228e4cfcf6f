package cmd

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"github.com/terassyi/arpspoof/logger"
	"github.com/terassyi/arpspoof/pkg/config"
	"github.com/terassyi/arpspoof/pkg/spoof"
)

type SpoofCommand struct {
	linkFlags
	Target        string
	Victim        string
	IntervalMilli uint
	Despoof       bool
}

func (s *SpoofCommand) Name() string {
	return "spoof"
}

func (s *SpoofCommand) Synopsis() string {
	return "poison the ARP cache of a victim"
}

func (s *SpoofCommand) Usage() string {
	return `arpspoof spoof -t <target address> -v <victim address> [-i <interface>] [-u ms] [-j ms] [-d]:
	send forged ARP replies telling the victim that the target is at this machine,
	until SIGINT, SIGTERM or SIGHUP
`
}

func (s *SpoofCommand) SetFlags(f *flag.FlagSet) {
	s.linkFlags.set(f)
	f.StringVar(&s.Target, "t", "", "spoof as the machine with this IPv4 address")
	f.StringVar(&s.Victim, "v", "", "poison the ARP cache of the machine with this IPv4 address")
	f.UintVar(&s.IntervalMilli, "j", 10000, "ARP spoofing interval, in milliseconds")
	f.BoolVar(&s.Despoof, "d", false, "despoof upon receiving SIGINT, SIGTERM or SIGHUP")
}

func (s *SpoofCommand) config(f *flag.FlagSet) (*config.Config, error) {
	cfg, err := s.load(f, func(name string, cfg *config.Config) error {
		var err error
		switch name {
		case "t":
			cfg.Target, err = parseIP(name, s.Target)
		case "v":
			cfg.Victim, err = parseIP(name, s.Victim)
		case "j":
			cfg.SpoofInterval = millis(s.IntervalMilli)
		case "d":
			cfg.Despoof = s.Despoof
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (s *SpoofCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := s.config(f)
	if err != nil {
		fail(err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	log := logger.New(cfg.Debug, "cli")
	if err := runSpoof(ctx, cfg, log); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func runSpoof(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	sess, err := open(cfg, log)
	if err != nil {
		return err
	}
	defer sess.Close()

	cancel, stop := interrupt(ctx)
	defer stop()

	ctrl := spoof.New(sess.client, spoof.Options{
		Local:          sess.local,
		Victim:         cfg.Victim,
		Target:         cfg.Target,
		ResolveTimeout: cfg.ResolveTimeout,
		SpoofInterval:  cfg.SpoofInterval,
		Despoof:        cfg.Despoof,
	}, cancel, log.With("spoof"))
	return ctrl.Run()
}

// interrupt delivers at most one notification when a termination signal
// arrives or ctx ends. The returned stop releases the signal handler.
func interrupt(ctx context.Context) (<-chan struct{}, func()) {
	cancel := make(chan struct{}, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	go func() {
		select {
		case <-sig:
		case <-ctx.Done():
		case <-done:
			return
		}
		select {
		case cancel <- struct{}{}:
		default:
		}
	}()
	return cancel, func() {
		signal.Stop(sig)
		close(done)
	}
}
