package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/terassyi/arpspoof/logger"
	"github.com/terassyi/arpspoof/pkg/config"
	"github.com/terassyi/arpspoof/pkg/interfaces"
	arppacket "github.com/terassyi/arpspoof/pkg/packet/arp"
	"github.com/terassyi/arpspoof/pkg/proto/arp"
	"github.com/terassyi/arpspoof/pkg/spoof"
)

// session is an opened link bound to the local identity of its interface.
type session struct {
	link   *interfaces.Link
	client *arp.Client
	local  arppacket.Endpoint
}

func open(cfg *config.Config, log *logger.Logger) (*session, error) {
	ifi, err := interfaces.Select(cfg.Interface)
	if err != nil {
		return nil, &spoof.Error{Kind: spoof.KindConfiguration, Op: "select interface", Err: err}
	}
	mac, ip, err := interfaces.LocalIdentity(ifi)
	if err != nil {
		return nil, &spoof.Error{Kind: spoof.KindConfiguration, Op: "interface " + ifi.Name, Err: err}
	}
	dev, err := interfaces.New(ifi.Name, cfg.Transport)
	if err != nil {
		return nil, &spoof.Error{Kind: spoof.KindChannelCreation, Op: "open " + ifi.Name, Err: err}
	}
	log.Infof("using %s (%s, %s) via %s", ifi.Name, ip, mac, cfg.Transport)
	link := interfaces.NewLink(dev)
	return &session{
		link:   link,
		client: arp.New(link, log.With("arp")),
		local:  arppacket.Endpoint{MAC: mac, IP: ip},
	}, nil
}

func (s *session) Close() error {
	return s.link.Close()
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("[x] %v", err))
}
