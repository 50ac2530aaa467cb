package config

import (
	"time"
)

type (
	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket.
		ReadBufferSize int
		// MaxRequestSize limits how many bytes a single request may occupy until the
		// terminating empty line is met. The connection is closed with 400 Bad Request
		// otherwise.
		MaxRequestSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If no data was
		// received in this period of time, it'll be closed. Zero disables the timeout.
		ReadTimeout time.Duration `test:"nullable"`
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
	}

	Admission struct {
		// MaxConnections is the number of connections served at once. Every connection
		// beyond it is refused with 503 Service Unavailable.
		MaxConnections int64
	}

	Encoding struct {
		// Preference lists the content codings in the order the server prefers them. The
		// identity coding is always implied and must not be listed.
		Preference []string
	}
)

// Config holds settings used across various parts of the server, mainly restrictions and
// limitations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET       NET
	Admission Admission
	Encoding  Encoding
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:            4 * 1024,
			MaxRequestSize:            64 * 1024, // headers only, as bodies are never read
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
		Admission: Admission{
			MaxConnections: 4,
		},
		Encoding: Encoding{
			Preference: []string{"gzip"},
		},
	}
}
