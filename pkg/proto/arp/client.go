package arp

import (
	"errors"
	"fmt"
	"time"

	"github.com/terassyi/arpspoof/logger"
	"github.com/terassyi/arpspoof/pkg/interfaces"
	"github.com/terassyi/arpspoof/pkg/packet/arp"
	"github.com/terassyi/arpspoof/pkg/packet/ethernet"
	"github.com/terassyi/arpspoof/pkg/packet/ipv4"
)

var (
	ErrTransmit = errors.New("failed to transmit")
	ErrReceive  = errors.New("failed to receive")
)

// Transport is a raw link-layer channel. NextFrame yields every incoming
// frame unfiltered and may return interfaces.ErrNoFrame when its read poll
// expires.
type Transport interface {
	Transmit(frame []byte) error
	NextFrame() ([]byte, error)
}

// Predicate decides whether Recv should return a message.
type Predicate func(arp.Message) bool

// Client talks ARP over a single Transport. It is not safe for concurrent use.
type Client struct {
	transport Transport
	logger    *logger.Logger
}

func New(transport Transport, log *logger.Logger) *Client {
	if log == nil {
		log = logger.New(false, "arp")
	}
	return &Client{
		transport: transport,
		logger:    log,
	}
}

// Send encodes msg and transmits it once.
func (c *Client) Send(msg arp.Message) error {
	if err := c.transport.Transmit(arp.Encode(msg)); err != nil {
		return fmt.Errorf("%w: %w", ErrTransmit, err)
	}
	c.logger.Debugf("sent %s", msg)
	return nil
}

// Recv polls the transport until a decodable ARP message satisfies pred, or
// until timeout elapses. A timeout <= 0 never expires and a nil pred accepts
// anything. Expiry is reported as false with a nil error.
//
// Frames that do not match are dropped, so only one expectation can be
// served at a time.
func (c *Client) Recv(timeout time.Duration, pred Predicate) (arp.Message, bool, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	for timeout <= 0 || time.Until(deadline) > 0 {
		frame, err := c.transport.NextFrame()
		if errors.Is(err, interfaces.ErrNoFrame) {
			continue
		}
		if err != nil {
			return arp.Message{}, false, fmt.Errorf("%w: %w", ErrReceive, err)
		}
		header, _, err := ethernet.ParseHeader(frame)
		if err != nil || header.Type != ethernet.ETHER_TYPE_ARP {
			continue
		}
		msg, ok := arp.Decode(frame)
		if !ok {
			continue
		}
		if pred == nil || pred(msg) {
			return msg, true, nil
		}
		c.logger.Debugf("discard %s", msg)
	}
	return arp.Message{}, false, nil
}

// ReplyFrom accepts only a Reply sent by target and addressed to local.
func ReplyFrom(local arp.Endpoint, target ipv4.IPAddress) Predicate {
	return func(msg arp.Message) bool {
		return msg.Src.IP == target &&
			msg.Dest.MAC == local.MAC &&
			msg.Op == arp.ARP_REPLY
	}
}

// Resolve broadcasts a Request for target from local and waits for the first
// matching Reply. Nothing is retransmitted; ok is false if timeout elapses
// first.
func (c *Client) Resolve(local arp.Endpoint, target ipv4.IPAddress, timeout time.Duration) (ethernet.HardwareAddress, bool, error) {
	req := arp.NewMessage(
		local,
		arp.Endpoint{MAC: ethernet.BroadcastAddress, IP: target},
		arp.ARP_REQUEST,
	)
	if err := c.Send(req); err != nil {
		return ethernet.HardwareAddress{}, false, err
	}
	reply, ok, err := c.Recv(timeout, ReplyFrom(local, target))
	if err != nil || !ok {
		return ethernet.HardwareAddress{}, false, err
	}
	c.logger.Debugf("resolved %s to %s", target, reply.Src.MAC)
	return reply.Src.MAC, true, nil
}
