package realtime

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_EncodeParseRoundTrip(t *testing.T) {
	f := NewFrame(cmdSend, "destination", "/app/position", "x-note", "a:b\nc")
	f.Body = []byte(`{"token":"t"}`)

	parsed, err := ParseFrame(f.Encode())

	require.NoError(t, err)
	assert.Equal(t, cmdSend, parsed.Command)
	assert.Equal(t, "/app/position", parsed.Header("destination"))
	assert.Equal(t, "a:b\nc", parsed.Header("x-note"))
	assert.Equal(t, "13", parsed.Header("content-length"))
	assert.Equal(t, `{"token":"t"}`, string(parsed.Body))
}

func TestFrame_ConnectNotEscaped(t *testing.T) {
	f := NewFrame(cmdConnect, "heart-beat", "4000,4000")

	assert.Equal(t, "CONNECT\nheart-beat:4000,4000\n\n\x00", string(f.Encode()))
}

func TestParseFrame_CRLFAndRepeatedHeader(t *testing.T) {
	raw := "MESSAGE\r\nsubscription:sub-0\r\nsubscription:sub-9\r\n\r\nhello\x00\n"

	f, err := ParseFrame([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, "sub-0", f.Header("subscription"))
	assert.Equal(t, "hello", string(f.Body))
}

func TestParseFrame_Heartbeat(t *testing.T) {
	_, err := ParseFrame([]byte("\n"))
	assert.True(t, errors.Is(err, errHeartbeat))

	_, err = ParseFrame([]byte("\r\n\r\n"))
	assert.True(t, errors.Is(err, errHeartbeat))
}

func TestParseFrame_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{"no header terminator", "MESSAGE\nfoo:bar"},
		{"no NUL", "MESSAGE\n\nbody"},
		{"bad header", "MESSAGE\nfoobar\n\n\x00"},
		{"bad escape", "MESSAGE\nfoo:\\t\n\n\x00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFrame([]byte(tc.raw))
			assert.Error(t, err)
		})
	}
}

func TestNegotiateHeartbeat(t *testing.T) {
	out, in := negotiateHeartbeat(4*time.Second, "10000,0")
	assert.Equal(t, int64(0), out.Milliseconds())
	assert.Equal(t, int64(10000), in.Milliseconds())

	out, in = negotiateHeartbeat(4*time.Second, "0,1000")
	assert.Equal(t, int64(4000), out.Milliseconds())
	assert.Equal(t, int64(0), in.Milliseconds())

	out, in = negotiateHeartbeat(0, "1000,1000")
	assert.Zero(t, out)
	assert.Zero(t, in)

	out, in = negotiateHeartbeat(4*time.Second, "")
	assert.Zero(t, out)
	assert.Zero(t, in)
}
