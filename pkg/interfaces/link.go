package interfaces

import (
	"fmt"
)

// maxFrameSize fits an untagged Ethernet frame without FCS.
const maxFrameSize = 1514

// Link adapts an Iface to the transmit / next-frame pair used by the ARP client.
type Link struct {
	iface Iface
	buf   []byte
}

func NewLink(iface Iface) *Link {
	return &Link{
		iface: iface,
		buf:   make([]byte, maxFrameSize),
	}
}

func (l *Link) Name() string {
	return l.iface.Name()
}

func (l *Link) Transmit(frame []byte) error {
	n, err := l.iface.Send(frame)
	if err != nil {
		return err
	}
	if n != len(frame) {
		return fmt.Errorf("short write on %s: %d of %d bytes", l.iface.Name(), n, len(frame))
	}
	return nil
}

// NextFrame returns a copy of the next frame read from the device. It returns
// ErrNoFrame when the device read poll expires.
func (l *Link) NextFrame() ([]byte, error) {
	n, err := l.iface.Recv(l.buf)
	if err != nil {
		return nil, err
	}
	frame := make([]byte, n)
	copy(frame, l.buf[:n])
	return frame, nil
}

func (l *Link) Close() error {
	return l.iface.Close()
}
