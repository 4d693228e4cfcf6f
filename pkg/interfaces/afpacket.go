//go:build linux

package interfaces

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"

	"golang.org/x/sys/unix"

	"github.com/terassyi/arpspoof/pkg/ioctl"
)

type afPacket struct {
	fd    int
	name  string
	flags uint16
}

func newAfPacket(name string) (*afPacket, error) {
	fd, flags, err := openPFPacket(name)
	if err != nil {
		return nil, err
	}
	return &afPacket{
		fd:    fd,
		name:  name,
		flags: flags,
	}, nil
}

func (af *afPacket) Name() string {
	return af.name
}

func (af *afPacket) Recv(buf []byte) (int, error) {
	n, _, err := unix.Recvfrom(af.fd, buf, 0)
	if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EINTR) {
		return 0, ErrNoFrame
	}
	return n, err
}

func (af *afPacket) Send(buf []byte) (int, error) {
	return unix.Write(af.fd, buf)
}

// Close releases the socket and restores the interface flags found at open.
func (af *afPacket) Close() error {
	err := ioctl.Siocsifflags(af.name, af.flags)
	if cerr := unix.Close(af.fd); cerr != nil {
		return cerr
	}
	return err
}

func (af *afPacket) Address() ([]byte, error) {
	ifi, err := net.InterfaceByName(af.name)
	if err != nil {
		return nil, err
	}
	return ifi.HardwareAddr, nil
}

func openPFPacket(name string) (int, uint16, error) {
	if name == "" {
		return -1, 0, fmt.Errorf("name is empty")
	}
	if len(name) >= unix.IFNAMSIZ {
		return -1, 0, fmt.Errorf("name is too long")
	}
	protocol := hton16(unix.ETH_P_ALL)
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(protocol))
	if err != nil {
		return -1, 0, fmt.Errorf("socket open error: %w", err)
	}
	index, err := ioctl.Siocgifindex(name)
	if err != nil {
		unix.Close(fd)
		return -1, 0, fmt.Errorf("siocgifindex error: %w", err)
	}
	addr := &unix.SockaddrLinklayer{
		Protocol: protocol,
		Ifindex:  int(index),
	}
	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return -1, 0, fmt.Errorf("bind error: %w", err)
	}
	tv := unix.NsecToTimeval(readPoll.Nanoseconds())
	if err := unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv); err != nil {
		unix.Close(fd)
		return -1, 0, fmt.Errorf("so_rcvtimeo error: %w", err)
	}
	flags, err := ioctl.SetPromisc(name, true)
	if err != nil {
		unix.Close(fd)
		return -1, 0, fmt.Errorf("promisc error: %w", err)
	}
	return fd, flags, nil
}

func hton16(i uint16) uint16 {
	return binary.NativeEndian.Uint16(binary.BigEndian.AppendUint16(nil, i))
}
