//go:build linux

package ioctl

import (
	"golang.org/x/sys/unix"
)

func ioctl(name string, req uint, fn func(*unix.Ifreq)) (*unix.Ifreq, error) {
	soc, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return nil, err
	}
	defer unix.Close(soc)
	ifreq, err := unix.NewIfreq(name)
	if err != nil {
		return nil, err
	}
	if fn != nil {
		fn(ifreq)
	}
	if err := unix.IoctlIfreq(soc, req, ifreq); err != nil {
		return nil, err
	}
	return ifreq, nil
}

func Siocgifindex(name string) (int32, error) {
	ifreq, err := ioctl(name, unix.SIOCGIFINDEX, nil)
	if err != nil {
		return 0, err
	}
	return int32(ifreq.Uint32()), nil
}

func Siocgifflags(name string) (uint16, error) {
	ifreq, err := ioctl(name, unix.SIOCGIFFLAGS, nil)
	if err != nil {
		return 0, err
	}
	return ifreq.Uint16(), nil
}

func Siocsifflags(name string, flags uint16) error {
	_, err := ioctl(name, unix.SIOCSIFFLAGS, func(ifreq *unix.Ifreq) {
		ifreq.SetUint16(flags)
	})
	return err
}

// SetPromisc turns promiscuous mode on or off and returns the flags that were
// set before the change.
func SetPromisc(name string, on bool) (uint16, error) {
	flags, err := Siocgifflags(name)
	if err != nil {
		return 0, err
	}
	next := flags &^ unix.IFF_PROMISC
	if on {
		next |= unix.IFF_PROMISC
	}
	if next == flags {
		return flags, nil
	}
	return flags, Siocsifflags(name, next)
}
