package arp

const ARPHeaderSize int = 8

// PacketSize is the size of an Ethernet/IPv4 ARP payload.
const PacketSize int = ARPHeaderSize + 2*6 + 2*4

const HARDWARE_ETHERNET HardwareType = 1

const PROTOCOL_IPv4 ProtocolType = 0x0800

const (
	HARDWARE_SIZE uint8 = 6
	PROTOCOL_SIZE uint8 = 4
)

const (
	ARP_REQUEST Operation = 0x0001
	ARP_REPLY   Operation = 0x0002
)
