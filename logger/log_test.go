package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugGating(t *testing.T) {
	var buf bytes.Buffer
	l := New(false, "arp")
	l.SetOutput(&buf)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Infof("resolving %s", "10.0.0.2")
	assert.Contains(t, buf.String(), "resolving 10.0.0.2")
	assert.Contains(t, buf.String(), "protocol=arp")
}

func TestDebugMode(t *testing.T) {
	var buf bytes.Buffer
	l := New(true, "spoof")
	l.SetOutput(&buf)
	assert.True(t, l.DebugMode())

	l.Debugf("sent %d", 3)
	assert.Contains(t, buf.String(), "sent 3")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := New(false, "cli")
	l.SetOutput(&buf)

	l.With("spoof").Info("spoofing")
	assert.Contains(t, buf.String(), "protocol=spoof")
	assert.NotContains(t, buf.String(), "protocol=cli")
}
