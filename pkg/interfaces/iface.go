package interfaces

import (
	"errors"
	"fmt"
	"time"
)

const (
	AfPacket string = "afpacket"
	Pcap     string = "pcap"
)

// readPoll bounds a single Recv so that callers can enforce their own deadlines
// on a quiet segment.
const readPoll = 100 * time.Millisecond

// ErrNoFrame is returned by Recv when the read poll expired without a frame.
var ErrNoFrame = errors.New("no frame received")

// Iface is a raw link-layer device.
type Iface interface {
	Name() string
	Recv([]byte) (int, error)
	Send([]byte) (int, error)
	Close() error
	Address() ([]byte, error)
}

func New(name, typ string) (Iface, error) {
	switch typ {
	case AfPacket:
		return newAfPacket(name)
	case Pcap:
		return newPcapDevice(name)
	default:
		return nil, fmt.Errorf("invalid type %q", typ)
	}
}

// Valid reports whether typ names a device kind New can open.
func Valid(typ string) bool {
	return typ == AfPacket || typ == Pcap
}
