//go:build !linux

package interfaces

import "fmt"

func newAfPacket(name string) (Iface, error) {
	return nil, fmt.Errorf("afpacket is only supported on linux, use %q", Pcap)
}
