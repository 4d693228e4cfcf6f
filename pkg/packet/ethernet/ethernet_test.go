package ethernet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderSerialize(t *testing.T) {
	h := Header{
		Dst:  BroadcastAddress,
		Src:  HardwareAddress{0x02, 0x42, 0xac, 0x11, 0x00, 0x02},
		Type: ETHER_TYPE_ARP,
	}
	b, err := h.Serialize()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0x02, 0x42, 0xac, 0x11, 0x00, 0x02,
		0x08, 0x06,
	}, b)

	got, payload, err := ParseHeader(append(b, 0xde, 0xad))
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Equal(t, []byte{0xde, 0xad}, payload)
}

func TestParseHeaderShort(t *testing.T) {
	_, _, err := ParseHeader(make([]byte, HeaderSize-1))
	assert.Error(t, err)
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("02:42:AC:11:00:02")
	require.NoError(t, err)
	assert.Equal(t, "02:42:ac:11:00:02", addr.String())
	assert.False(t, addr.IsZero())
	assert.True(t, HardwareAddress{}.IsZero())

	_, err = ParseAddress("02:42:ac:11:00")
	assert.Error(t, err)
	_, err = Address([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestHeaderString(t *testing.T) {
	h := Header{Dst: BroadcastAddress, Type: ETHER_TYPE_ARP}
	assert.Equal(t, "dst=ff:ff:ff:ff:ff:ff src=00:00:00:00:00:00 type=0x0806(ARP)", h.String())
}
