package ipv4

import (
	"fmt"
	"net"
)

const AddressSize int = 4

type IPAddress [4]byte

func NewIPAddress(addr []byte) IPAddress {
	return IPAddress{addr[0], addr[1], addr[2], addr[3]}
}

func (ipaddr IPAddress) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ipaddr[0], ipaddr[1], ipaddr[2], ipaddr[3])
}

func (ipaddr IPAddress) Bytes() []byte {
	return ipaddr[:]
}

func (ipaddr IPAddress) IsZero() bool {
	return ipaddr == IPAddress{}
}

func Address(addr []byte) (IPAddress, error) {
	if ip4 := net.IP(addr).To4(); ip4 != nil {
		return NewIPAddress(ip4), nil
	}
	return IPAddress{}, fmt.Errorf("invalid address %v", addr)
}

// StringToIPAddress parses a dotted-quad IPv4 address.
func StringToIPAddress(addr string) (IPAddress, error) {
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil {
		return IPAddress{}, fmt.Errorf("invalid IPv4 address %q", addr)
	}
	return NewIPAddress(ip.To4()), nil
}

// UnmarshalText lets an IPAddress be read directly from config files.
func (ipaddr *IPAddress) UnmarshalText(text []byte) error {
	addr, err := StringToIPAddress(string(text))
	if err != nil {
		return err
	}
	*ipaddr = addr
	return nil
}

func (ipaddr IPAddress) MarshalText() ([]byte, error) {
	return []byte(ipaddr.String()), nil
}
