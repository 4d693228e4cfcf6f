package interfaces

import (
	"errors"
	"fmt"
	"net"

	"github.com/terassyi/arpspoof/pkg/packet/ethernet"
	"github.com/terassyi/arpspoof/pkg/packet/ipv4"
)

var (
	ErrNoInterface = errors.New("no usable network interface found")
	ErrNoMAC       = errors.New("no MAC address found on interface")
	ErrNoIPv4      = errors.New("no IPv4 address found on interface")
)

func usable(ifi net.Interface) bool {
	return ifi.Flags&net.FlagUp != 0 && ifi.Flags&net.FlagLoopback == 0
}

// Select returns the named interface, or the first usable one when name is
// empty. Interfaces that are down or loopback are never selected.
func Select(name string) (*net.Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	return pick(ifaces, name)
}

func pick(ifaces []net.Interface, name string) (*net.Interface, error) {
	for i := range ifaces {
		if !usable(ifaces[i]) {
			continue
		}
		if name == "" || ifaces[i].Name == name {
			return &ifaces[i], nil
		}
	}
	if name != "" {
		return nil, fmt.Errorf("%w by name %q", ErrNoInterface, name)
	}
	return nil, ErrNoInterface
}

// LocalIdentity returns the MAC address and the first IPv4 address of ifi.
func LocalIdentity(ifi *net.Interface) (ethernet.HardwareAddress, ipv4.IPAddress, error) {
	addrs, err := ifi.Addrs()
	if err != nil {
		return ethernet.HardwareAddress{}, ipv4.IPAddress{}, err
	}
	return identity(ifi.HardwareAddr, addrs)
}

func identity(hw net.HardwareAddr, addrs []net.Addr) (ethernet.HardwareAddress, ipv4.IPAddress, error) {
	mac, err := ethernet.Address(hw)
	if err != nil {
		return ethernet.HardwareAddress{}, ipv4.IPAddress{}, ErrNoMAC
	}
	for _, a := range addrs {
		ipNet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return mac, ipv4.NewIPAddress(ip4), nil
		}
	}
	return mac, ipv4.IPAddress{}, ErrNoIPv4
}
