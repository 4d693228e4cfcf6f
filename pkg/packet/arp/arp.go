package arp

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/terassyi/arpspoof/pkg/packet/ethernet"
	"github.com/terassyi/arpspoof/pkg/packet/ipv4"
)

/*
    0                   1                   2                   3
    0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |         Hardware Type         |         Protocol Type         |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |  HW Size      | Proto Size    |           Operation           |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |                Sender Hardware Address (6)                    |
   |                               +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |                               |  Sender Protocol Address (4)  |
   |                               +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |                               |                               |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+                               |
   |                Target Hardware Address (6)                    |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |                  Target Protocol Address (4)                  |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/

// FrameSize is the size of an encoded frame: Ethernet header plus ARP payload.
const FrameSize int = ethernet.HeaderSize + PacketSize

type HardwareType uint16
type ProtocolType uint16
type Operation uint16

type Header struct {
	HardwareType HardwareType
	ProtocolType ProtocolType
	HardwareSize uint8
	ProtocolSize uint8
	OpCode       Operation
}

// packet is the fixed Ethernet/IPv4 wire layout.
type packet struct {
	Header                Header
	SourceHardwareAddress ethernet.HardwareAddress
	SourceProtocolAddress ipv4.IPAddress
	TargetHardwareAddress ethernet.HardwareAddress
	TargetProtocolAddress ipv4.IPAddress
}

// Endpoint is one side of an ARP exchange.
type Endpoint struct {
	MAC ethernet.HardwareAddress
	IP  ipv4.IPAddress
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s(%s)", e.IP, e.MAC)
}

// Message is the typed form of an ARP packet carried in an Ethernet frame.
// The Ethernet source and destination always mirror Src.MAC and Dest.MAC.
type Message struct {
	Src  Endpoint
	Dest Endpoint
	Op   Operation
}

func NewMessage(src, dest Endpoint, op Operation) Message {
	return Message{Src: src, Dest: dest, Op: op}
}

func (op Operation) String() string {
	switch op {
	case ARP_REQUEST:
		return "REQUEST"
	case ARP_REPLY:
		return "REPLY"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint16(op))
	}
}

func (m Message) String() string {
	return fmt.Sprintf("%s %s -> %s", m.Op, m.Src, m.Dest)
}

// Encode builds the 42 byte Ethernet frame carrying m.
func Encode(m Message) []byte {
	frame := bytes.NewBuffer(make([]byte, 0, FrameSize))
	eth := ethernet.Header{
		Dst:  m.Dest.MAC,
		Src:  m.Src.MAC,
		Type: ethernet.ETHER_TYPE_ARP,
	}
	p := packet{
		Header: Header{
			HardwareType: HARDWARE_ETHERNET,
			ProtocolType: PROTOCOL_IPv4,
			HardwareSize: HARDWARE_SIZE,
			ProtocolSize: PROTOCOL_SIZE,
			OpCode:       m.Op,
		},
		SourceHardwareAddress: m.Src.MAC,
		SourceProtocolAddress: m.Src.IP,
		TargetHardwareAddress: m.Dest.MAC,
		TargetProtocolAddress: m.Dest.IP,
	}
	// writes into a bytes.Buffer from fixed-size values cannot fail
	_ = binary.Write(frame, binary.BigEndian, eth)
	_ = binary.Write(frame, binary.BigEndian, p)
	return frame.Bytes()
}

// Decode interprets the bytes following the Ethernet header as an ARP
// payload. The ethertype is not checked; callers drop what they don't want.
func Decode(data []byte) (Message, bool) {
	if len(data) < FrameSize {
		return Message{}, false
	}
	p := packet{}
	if err := binary.Read(bytes.NewReader(data[ethernet.HeaderSize:FrameSize]), binary.BigEndian, &p); err != nil {
		return Message{}, false
	}
	return Message{
		Src:  Endpoint{MAC: p.SourceHardwareAddress, IP: p.SourceProtocolAddress},
		Dest: Endpoint{MAC: p.TargetHardwareAddress, IP: p.TargetProtocolAddress},
		Op:   p.Header.OpCode,
	}, true
}
