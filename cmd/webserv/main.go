package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/indigo-web/webserv"
	"github.com/indigo-web/webserv/config"
	"github.com/indigo-web/webserv/internal/obs"
)

func main() {
	var (
		addr        = flag.String("addr", "127.0.0.1:8080", "address to listen on")
		maxConns    = flag.Int64("max-conns", config.Default().Admission.MaxConnections, "connections served at once")
		websiteDir  = flag.String("website", "files/dummy-website", "directory mounted at /website and served at /")
		storageDir  = flag.String("storage", "files/storage", "directory mounted at /storage")
		idleTimeout = flag.Duration("idle-timeout", 90*time.Second, "close idle connections after, 0 disables")
		zstd        = flag.Bool("zstd", false, "prefer zstd over gzip")
		logLevel    = flag.String("log-level", "info", "one of debug, info, warn, error")
	)
	flag.Parse()

	cfg := config.Default()
	cfg.Admission.MaxConnections = *maxConns
	cfg.NET.ReadTimeout = *idleTimeout
	if *zstd {
		cfg.Encoding.Preference = []string{"zstd", "gzip"}
	}

	logger := obs.StdLogger{
		L:   log.New(os.Stderr, "webserv: ", log.LstdFlags),
		Min: obs.ParseLevel(*logLevel),
	}

	app := webserv.New(*addr).
		Tune(cfg).
		Logger(logger)

	app.
		Mount(*websiteDir, "website").
		Asset("/", *websiteDir+"/index.html").
		Mount(*storageDir, "storage").
		Resource("math/sqr", "sqr", sqr()).
		Resource("math/sum", "sum", sum()).
		Resource("greet", "greet", greet()).
		Resource("status", "status", status(app))

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		<-signals
		logger.Logf(obs.Info, "shutting down")
		app.Stop()
	}()

	if err := app.Serve(); err != nil {
		log.Fatal(err)
	}
}
