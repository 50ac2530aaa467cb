package transport

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/indigo-web/webserv/config"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/nettest"
)

func TestTCP(t *testing.T) {
	const greeting = "hi"

	l, err := nettest.NewLocalListener("tcp")
	require.NoError(t, err)

	counter := NewCounter(2)
	tcp := newTCP(l.(listener), counter, nil)
	release := make(chan struct{})

	cfg := config.Default().NET
	cfg.AcceptLoopInterruptPeriod = 50 * time.Millisecond
	done := make(chan error, 1)
	go func() {
		done <- tcp.Listen(cfg, func(conn net.Conn) {
			_, _ = conn.Write([]byte(greeting))
			<-release
		})
	}()

	dial := func(t *testing.T) net.Conn {
		conn, err := net.Dial("tcp", tcp.Addr().String())
		require.NoError(t, err)
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

		return conn
	}

	admitted := func(t *testing.T) net.Conn {
		conn := dial(t)
		buff := make([]byte, len(greeting))
		_, err := io.ReadFull(conn, buff)
		require.NoError(t, err)
		require.Equal(t, greeting, string(buff))

		return conn
	}

	first, second := admitted(t), admitted(t)
	defer first.Close()
	defer second.Close()

	t.Run("refused beyond the bound", func(t *testing.T) {
		conn := dial(t)
		defer conn.Close()
		data, err := io.ReadAll(conn)
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1 503 Service Unavailable\r\nContent-Length: 0\r\n\r\n", string(data))
		require.Equal(t, int64(2), counter.Active())
	})

	t.Run("admitted after release", func(t *testing.T) {
		release <- struct{}{}
		require.Eventually(t, func() bool {
			return counter.Active() == 1
		}, time.Second, 5*time.Millisecond)

		third := admitted(t)
		defer third.Close()
		require.Equal(t, int64(2), counter.Active())
	})

	close(release)
	tcp.Stop()
	tcp.Wait()
	require.NoError(t, <-done)
	tcp.Close()
	require.Zero(t, counter.Active())
}

func TestTCP_Bind(t *testing.T) {
	tcp := NewTCP(NewCounter(1), nil)
	require.NoError(t, tcp.Bind("127.0.0.1:0"))
	defer tcp.Close()
	require.NotNil(t, tcp.Addr())

	// the port is already taken
	require.Error(t, NewTCP(NewCounter(1), nil).Bind(tcp.Addr().String()))
}

func TestClient(t *testing.T) {
	server, peer := net.Pipe()
	client := NewClient(server, 0, make([]byte, 16))
	defer client.Close()

	go func() {
		_, _ = peer.Write([]byte("hello"))
	}()

	data, err := client.Read()
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	go func() {
		_, _ = client.Write([]byte("world"))
	}()

	buff := make([]byte, 5)
	_, err = io.ReadFull(peer, buff)
	require.NoError(t, err)
	require.Equal(t, "world", string(buff))
	require.NoError(t, peer.Close())

	_, err = client.Read()
	require.ErrorIs(t, err, io.EOF)
}
