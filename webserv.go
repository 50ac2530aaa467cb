package webserv

import (
	"log"
	"net"
	"os"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/webserv/config"
	"github.com/indigo-web/webserv/http/codec"
	"github.com/indigo-web/webserv/internal/obs"
	"github.com/indigo-web/webserv/internal/server/http"
	"github.com/indigo-web/webserv/router/registry"
	"github.com/indigo-web/webserv/router/resource"
	"github.com/indigo-web/webserv/transport"
)

// connIDLength is the length of a random connection identifier prefixing its log lines.
const connIDLength = 8

// App composes the registry, the transport and the connection handlers. All the endpoints
// must be registered before Serve is called.
type App struct {
	addr       string
	cfg        *config.Config
	registry   *registry.Registry
	counter    *transport.Counter
	supervisor transport.Supervisor
	logger     obs.Logger
	hooks      hooks
}

// New returns a new App instance bound to the address.
func New(addr string) *App {
	logger := obs.StdLogger{
		L:   log.New(os.Stderr, "webserv: ", log.LstdFlags),
		Min: obs.Info,
	}

	return &App{
		addr:       addr,
		cfg:        config.Default(),
		registry:   registry.New(logger),
		supervisor: transport.NewSupervisor(),
		logger:     logger,
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the default logger, which writes everything from obs.Info onwards into
// the stderr. Must be called before any endpoint is registered.
func (a *App) Logger(logger obs.Logger) *App {
	a.logger = logger
	a.registry = registry.New(logger)
	return a
}

// NotifyOnStart calls the callback at the moment, when the listener is bound. However,
// it isn't strongly guaranteed that connections are accepted immediately.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when the server is down. It's guaranteed
// that at the moment the callback is called, the server isn't able to accept any new
// connections and all the clients are already disconnected.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Asset exposes a single file under the path. Conflicts are logged and otherwise ignored.
func (a *App) Asset(path, file string) *App {
	_ = a.registry.RegisterAsset(path, file)
	return a
}

// Mount exposes the directory under the path. A directory that can't be read is logged
// and skipped, without affecting any other registration.
func (a *App) Mount(localDir, path string) *App {
	if err := a.registry.RegisterAssetMount(localDir, path); err != nil {
		a.logger.Logf(obs.Error, "%s", err)
	}

	return a
}

// Resource exposes the handler under the path. The id must be unique across all the
// resources.
func (a *App) Resource(path, id string, handler resource.Handler) *App {
	_ = a.registry.RegisterResource(path, id, handler)
	return a
}

// Stats describes the admission state.
type Stats struct {
	Active int64 `json:"active"`
	Max    int64 `json:"max"`
}

// Stats returns the current number of served connections. It's safe to call from resource
// handlers.
func (a *App) Stats() Stats {
	if a.counter == nil {
		return Stats{Max: a.cfg.Admission.MaxConnections}
	}

	return Stats{
		Active: a.counter.Active(),
		Max:    a.counter.Max(),
	}
}

// Addrs returns the bound addresses. They're available starting from the OnStart hook.
func (a *App) Addrs() []net.Addr {
	return a.supervisor.Addrs()
}

// Serve binds the listener and blocks until Stop is called or the listener fails. Failing
// to bind is returned immediately.
func (a *App) Serve() error {
	codecs, err := codec.FromTokens(a.cfg.Encoding.Preference...)
	if err != nil {
		return err
	}

	snapshot := a.registry.Snapshot()
	a.counter = transport.NewCounter(a.cfg.Admission.MaxConnections)
	tcp := transport.NewTCP(a.counter, a.logger)

	if err = a.supervisor.Add(a.addr, tcp, a.newConnCallback(snapshot, codecs)); err != nil {
		return err
	}

	a.logger.Logf(
		obs.Info, "listening on %s: %d endpoints, at most %d connections",
		tcp.Addr(), snapshot.Endpoints(), a.counter.Max(),
	)

	callIfNotNil(a.hooks.OnStart)
	err = a.supervisor.Run(a.cfg.NET)
	callIfNotNil(a.hooks.OnStop)
	a.logger.Logf(obs.Info, "stopped")

	return err
}

// Stop stops accepting new connections and blocks until all the running ones are done.
// Idle connections are awaited until their read timeout expires, therefore it's recommended
// to set config.NET.ReadTimeout. Must be called only while Serve is running.
func (a *App) Stop() {
	a.supervisor.Stop()
}

func (a *App) newConnCallback(snapshot *registry.Snapshot, codecs []codec.Codec) func(net.Conn) {
	return func(conn net.Conn) {
		logger := obs.With(a.logger, uniuri.NewLen(connIDLength))
		logger.Logf(obs.Debug, "accepted %s", conn.RemoteAddr())

		client := transport.NewClient(conn, a.cfg.NET.ReadTimeout, make([]byte, a.cfg.NET.ReadBufferSize))
		http.NewServer(a.cfg, snapshot, codecs, logger).Run(client)

		logger.Logf(obs.Debug, "closed")
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
