package spoof

import (
	"errors"
	"fmt"

	"github.com/terassyi/arpspoof/pkg/proto/arp"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindChannelCreation
	KindTransmit
	KindReceive
	KindResolutionTimeout
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindChannelCreation:
		return "channel"
	case KindTransmit:
		return "transmit"
	case KindReceive:
		return "receive"
	case KindResolutionTimeout:
		return "resolution"
	case KindConfiguration:
		return "configuration"
	default:
		return "error"
	}
}

// ErrNoResponse means a resolution timed out without a matching reply.
var ErrNoResponse = errors.New("no response")

// Error is a fatal, categorized failure that ends a run.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify wraps an ARP client error into an Error of the matching kind.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	kind := KindUnknown
	switch {
	case errors.Is(err, arp.ErrTransmit):
		kind = KindTransmit
	case errors.Is(err, arp.ErrReceive):
		kind = KindReceive
	case errors.Is(err, ErrNoResponse):
		kind = KindResolutionTimeout
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the kind of err, or KindUnknown if it is not an Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
