package transport

import (
	"context"
	"errors"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indigo-web/webserv/config"
	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/http/status"
	"github.com/indigo-web/webserv/internal/obs"
	"github.com/indigo-web/webserv/internal/protocol/http1"
)

// refusal is sent to connections exceeding the admission bound.
var refusal, _ = http1.Encode(http.Error(status.ErrThreadExhausted), nil)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

type TCP struct {
	l       listener
	wg      *sync.WaitGroup
	stop    *atomic.Bool
	counter *Counter
	logger  obs.Logger
}

// NewTCP returns a transport admitting connections through the counter. Every connection
// beyond its bound is answered with 503 Service Unavailable and closed.
func NewTCP(counter *Counter, logger obs.Logger) *TCP {
	tcp := newTCP(nil, counter, logger)
	return &tcp
}

func newTCP(l listener, counter *Counter, logger obs.Logger) TCP {
	if logger == nil {
		logger = obs.NopLogger{}
	}

	return TCP{
		l:       l,
		wg:      new(sync.WaitGroup),
		stop:    new(atomic.Bool),
		counter: counter,
		logger:  logger,
	}
}

func (t *TCP) Bind(addr string) error {
	lc := net.ListenConfig{Control: control}
	l, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return err
	}

	t.l = l.(*net.TCPListener)

	return nil
}

func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	for !t.stop.Load() {
		err := t.l.SetDeadline(time.Now().Add(cfg.AcceptLoopInterruptPeriod))
		if err != nil {
			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}

			return err
		}

		if !t.counter.TryOpen() {
			t.logger.Logf(
				obs.Warn, "capacity exceeded (%d/%d): refusing %s",
				t.counter.Active(), t.counter.Max(), conn.RemoteAddr(),
			)
			t.refuse(conn, cfg.AcceptLoopInterruptPeriod)
			continue
		}

		t.wg.Add(1)
		go func(conn net.Conn) {
			defer t.wg.Done()
			defer t.counter.Close()

			cb(conn)
			_ = conn.Close()
		}(conn)
	}

	return nil
}

func (t *TCP) refuse(conn net.Conn, timeout time.Duration) {
	_ = conn.SetWriteDeadline(time.Now().Add(timeout))
	_, _ = conn.Write(refusal)
	_ = conn.Close()
}

// Addr returns the bound address.
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() {
	_ = t.l.Close()
}

func (t *TCP) Wait() {
	t.wg.Wait()
}
