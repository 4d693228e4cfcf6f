package ethernet

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net"
)

// HeaderSize is the size of an Ethernet II header without VLAN tags.
const HeaderSize int = 14

const AddressSize int = 6

type EtherType uint16

const (
	ETHER_TYPE_IP   EtherType = 0x0800
	ETHER_TYPE_ARP  EtherType = 0x0806
	ETHER_TYPE_IPV6 EtherType = 0x86dd
)

type HardwareAddress [6]byte

var BroadcastAddress = HardwareAddress{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

type Header struct {
	Dst  HardwareAddress
	Src  HardwareAddress
	Type EtherType
}

func (hwaddr HardwareAddress) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", hwaddr[0], hwaddr[1], hwaddr[2], hwaddr[3], hwaddr[4], hwaddr[5])
}

func (hwaddr HardwareAddress) Bytes() []byte {
	return hwaddr[:]
}

func (hwaddr HardwareAddress) IsZero() bool {
	return hwaddr == HardwareAddress{}
}

// Address copies a 6 byte slice into a HardwareAddress.
func Address(data []byte) (HardwareAddress, error) {
	var addr HardwareAddress
	if len(data) != AddressSize {
		return addr, fmt.Errorf("invalid hardware address length %d", len(data))
	}
	copy(addr[:], data)
	return addr, nil
}

// ParseAddress accepts any 48-bit form understood by net.ParseMAC.
func ParseAddress(s string) (HardwareAddress, error) {
	mac, err := net.ParseMAC(s)
	if err != nil {
		return HardwareAddress{}, err
	}
	return Address(mac)
}

func (ethhdr Header) String() string {
	var typ string
	switch ethhdr.Type {
	case ETHER_TYPE_ARP:
		typ = "ARP"
	case ETHER_TYPE_IP:
		typ = "IP"
	case ETHER_TYPE_IPV6:
		typ = "IPV6"
	default:
		typ = "UNKNOWN"
	}
	return fmt.Sprintf("dst=%s src=%s type=%#04x(%s)", ethhdr.Dst, ethhdr.Src, uint16(ethhdr.Type), typ)
}

// ParseHeader reads the leading Ethernet header of a frame and returns the
// remaining bytes as payload.
func ParseHeader(data []byte) (Header, []byte, error) {
	header := Header{}
	buf := bytes.NewBuffer(data)
	if err := binary.Read(buf, binary.BigEndian, &header); err != nil {
		return Header{}, nil, err
	}
	return header, buf.Bytes(), nil
}

func (ethhdr Header) Serialize() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize))
	if err := binary.Write(buf, binary.BigEndian, ethhdr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
