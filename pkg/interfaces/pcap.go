package interfaces

import (
	"errors"
	"fmt"
	"net"

	"github.com/google/gopacket/pcap"
)

const snapLen = 65535

type pcapDevice struct {
	handle *pcap.Handle
	name   string
}

func newPcapDevice(name string) (*pcapDevice, error) {
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}
	handle, err := pcap.OpenLive(name, snapLen, true, readPoll)
	if err != nil {
		return nil, fmt.Errorf("error opening interface: %w", err)
	}
	if err := handle.SetBPFFilter("arp"); err != nil {
		handle.Close()
		return nil, fmt.Errorf("error setting BPF filter: %w", err)
	}
	return &pcapDevice{
		handle: handle,
		name:   name,
	}, nil
}

func (p *pcapDevice) Name() string {
	return p.name
}

func (p *pcapDevice) Recv(buf []byte) (int, error) {
	data, _, err := p.handle.ReadPacketData()
	if errors.Is(err, pcap.NextErrorTimeoutExpired) {
		return 0, ErrNoFrame
	}
	if err != nil {
		return 0, err
	}
	return copy(buf, data), nil
}

func (p *pcapDevice) Send(buf []byte) (int, error) {
	if err := p.handle.WritePacketData(buf); err != nil {
		return 0, err
	}
	return len(buf), nil
}

func (p *pcapDevice) Close() error {
	p.handle.Close()
	return nil
}

func (p *pcapDevice) Address() ([]byte, error) {
	ifi, err := net.InterfaceByName(p.name)
	if err != nil {
		return nil, err
	}
	return ifi.HardwareAddr, nil
}
