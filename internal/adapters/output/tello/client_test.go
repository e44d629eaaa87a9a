package tello

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tello-block-adapter/internal/domain/model"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fakeDrone answers every command with "ok" and records what it received.
func fakeDrone(t *testing.T) (*net.UDPConn, <-chan string) {
	t.Helper()
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	got := make(chan string, 16)
	go func() {
		buf := make([]byte, 1024)
		for {
			n, src, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			got <- string(buf[:n])
			conn.WriteToUDP([]byte("ok"), src)
		}
	}()
	return conn, got
}

func next(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for command")
		return ""
	}
}

func TestClient_SendsCommands(t *testing.T) {
	drone, got := fakeDrone(t)

	c := NewClient(drone.LocalAddr().String(), "127.0.0.1:0", "127.0.0.1:0", quietLogger())
	require.NoError(t, c.Start(context.Background()))
	defer c.Close()

	assert.Equal(t, "command", next(t, got))

	c.Send("up 20")
	c.Send("flip l")
	assert.Equal(t, "up 20", next(t, got))
	assert.Equal(t, "flip l", next(t, got))

	assert.Eventually(t, func() bool { return c.Status().LastResponse == "ok" }, 2*time.Second, 10*time.Millisecond)
}

func TestClient_State(t *testing.T) {
	drone, _ := fakeDrone(t)

	c := NewClient(drone.LocalAddr().String(), "127.0.0.1:0", "127.0.0.1:0", quietLogger())
	assert.Nil(t, c.StateAddr())
	require.NoError(t, c.Start(context.Background()))
	defer c.Close()

	assert.Equal(t, "", c.State("h"))
	assert.False(t, c.Status().Connected)

	sender, err := net.DialUDP("udp4", nil, c.StateAddr().(*net.UDPAddr))
	require.NoError(t, err)
	defer sender.Close()
	_, err = sender.Write([]byte("pitch:-2;roll:1;yaw:45;h:120;bat:87;baro:31.52;\r\n"))
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return c.State(model.TelemetryKey("h")) == "120" }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "-2", c.State("pitch"))
	assert.Equal(t, "31.52", c.State("baro"))
	assert.True(t, c.Status().Connected)
}

func TestClient_StopsWithContext(t *testing.T) {
	drone, _ := fakeDrone(t)

	ctx, cancel := context.WithCancel(context.Background())
	c := NewClient(drone.LocalAddr().String(), "127.0.0.1:0", "127.0.0.1:0", quietLogger())
	require.NoError(t, c.Start(ctx))
	cancel()

	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		t.Fatal("client did not stop")
	}
	assert.NoError(t, c.Close())
}

func TestClient_DropsWhenQueueFull(t *testing.T) {
	c := NewClient("127.0.0.1:1", "127.0.0.1:0", "127.0.0.1:0", quietLogger())
	for i := 0; i < queueSize+3; i++ {
		c.Send("stop")
	}
	assert.Equal(t, uint64(3), c.Status().Dropped)
}

func TestClient_BadAddress(t *testing.T) {
	c := NewClient("not-an-addr", "127.0.0.1:0", "127.0.0.1:0", quietLogger())
	assert.Error(t, c.Start(context.Background()))
}

func TestParseState(t *testing.T) {
	fields := ParseState([]byte("mid:-1;x:0;pitch:0;roll:0;yaw:0;vgx:0;vgy:0;vgz:0;templ:60;temph:62;tof:10;h:0;bat:87;baro:12.34;time:0;agx:0.00;agy:0.00;agz:-1000.00;\r\n"))
	assert.Equal(t, "10", fields["tof"])
	assert.Equal(t, "0", fields["h"])
	assert.Equal(t, "-1000.00", fields["agz"])
	assert.Len(t, fields, 18)

	assert.Empty(t, ParseState([]byte("garbage")))
	assert.Equal(t, map[string]string{"bat": "50"}, ParseState([]byte("bat:50;:7;nocolon;")))
}
