package http

import (
	"unicode/utf8"

	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/webserv/config"
	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/http/codec"
	"github.com/indigo-web/webserv/http/mime"
	"github.com/indigo-web/webserv/http/status"
	"github.com/indigo-web/webserv/internal/buffer"
	"github.com/indigo-web/webserv/internal/fileio"
	"github.com/indigo-web/webserv/internal/obs"
	"github.com/indigo-web/webserv/internal/protocol/http1"
	"github.com/indigo-web/webserv/router/registry"
	"github.com/indigo-web/webserv/transport"
)

var terminator = []byte(http1.Terminator)

// Server drives a single connection: it frames, parses, resolves and answers requests one
// by one until the peer leaves or the connection becomes unusable. It must not be shared
// between connections.
type Server struct {
	snapshot   *registry.Snapshot
	buff       buffer.Buffer
	codecs     codec.Cache
	request    *http.Request
	response   *http.Response
	serializer *http1.Serializer
	readFile   fileio.Reader
	logger     obs.Logger
	// closing is set whenever the connection must be closed after the current response.
	closing bool
}

func NewServer(
	cfg *config.Config, snapshot *registry.Snapshot, codecs []codec.Codec, logger obs.Logger,
) *Server {
	if logger == nil {
		logger = obs.NopLogger{}
	}

	return &Server{
		snapshot:   snapshot,
		buff:       buffer.New(cfg.NET.ReadBufferSize, cfg.NET.MaxRequestSize),
		codecs:     codec.NewCache(codecs),
		response:   http.NewResponse(),
		serializer: http1.NewSerializer(make([]byte, 0, cfg.NET.ReadBufferSize)),
		readFile:   fileio.Read,
		logger:     logger,
	}
}

// WithFileReader replaces the filesystem the assets are read from.
func (s *Server) WithFileReader(reader fileio.Reader) *Server {
	s.readFile = reader
	return s
}

// Run serves the client until the connection is closed.
func (s *Server) Run(client transport.Client) {
	for s.HandleRequest(client) {
	}

	_ = client.Close()
}

// HandleRequest serves exactly one request. Returns false if the connection must be closed.
func (s *Server) HandleRequest(client transport.Client) (ok bool) {
	var (
		st       = eReading
		err      error
		endpoint *registry.Endpoint
		enc      codec.Instance
	)

	s.closing = false
	s.response.Clear()

	for {
		switch st {
		case eReading:
			st, err = s.receive(client)
		case eParsed:
			enc = s.codecs.Negotiate(s.request.Header("accept-encoding"))
			s.closing = strcomp.EqualFold(s.request.Header("connection"), "close")
			endpoint, st = s.resolve()
		case eResolved:
			st = s.dispatch(endpoint)
		case eBadRequest:
			s.logger.Logf(obs.Debug, "bad request: %s", err)
			s.response.Clear().WithCode(status.CodeOf(err))
			st = eResponding
		case eNotFound:
			s.response.Clear().WithCode(status.NotFound)
			st = eResponding
		case eResponding:
			return s.respond(client, enc) && !s.closing
		case eClosed:
			return false
		}
	}
}

// receive reads until the buffer ends with the terminator, then parses the whole buffer.
func (s *Server) receive(client transport.Client) (state, error) {
	for !s.buff.HasSuffix(terminator) {
		data, err := client.Read()
		if err != nil {
			s.logger.Logf(obs.Debug, "read: %s", err)
			return eClosed, err
		}

		if len(data) == 0 {
			return eClosed, nil
		}

		if !s.buff.Append(data) {
			s.buff.Clear()
			s.closing = true
			return eBadRequest, status.ErrRequestEntityTooLarge
		}
	}

	raw := s.buff.Preview()
	defer s.buff.Clear()

	if !utf8.Valid(raw) {
		return eBadRequest, status.ErrBadEncoding
	}

	request, err := http1.Parse(string(raw))
	if err != nil {
		return eBadRequest, err
	}

	request.Remote = client.Remote()
	s.request = request

	return eParsed, nil
}

func (s *Server) resolve() (*registry.Endpoint, state) {
	path := s.request.Path
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
		s.request.Path = path
	}

	endpoint, found := s.snapshot.Resolve(path, s.request.Method)
	if !found {
		return nil, eNotFound
	}

	return endpoint, eResolved
}

func (s *Server) dispatch(endpoint *registry.Endpoint) state {
	switch endpoint.Kind {
	case registry.StaticAsset, registry.AssetMount:
		local, ok := endpoint.LocalPath(s.request.Path)
		if !ok {
			return eNotFound
		}

		content, err := s.readFile(local)
		if err != nil {
			s.logger.Logf(obs.Debug, "%s: %s", s.request.Path, err)
			return eNotFound
		}

		if contentType := mime.ByPath(local); len(contentType) > 0 {
			s.response.Header("Content-Type", contentType)
		}

		s.response.Bytes(content)
	case registry.Resource:
		if handler, found := s.snapshot.Handler(endpoint.HandlerID); found && len(handler.ContentType) > 0 {
			s.response.Header("Content-Type", handler.ContentType)
		}

		s.response.String(s.snapshot.Execute(endpoint, s.request))
	default:
		return eNotFound
	}

	return eResponding
}

func (s *Server) respond(client transport.Client, enc codec.Instance) bool {
	data, err := s.serializer.Encode(s.response, enc)
	if err != nil {
		s.logger.Logf(obs.Error, "encode response: %s", err)
		// the failed codec isn't retried, so the connection gets closed after the response
		s.closing = true
		data, err = s.serializer.Encode(s.response.Clear().WithCode(status.InternalServerError), nil)
		if err != nil {
			return false
		}
	}

	if _, err = client.Write(data); err != nil {
		s.logger.Logf(obs.Debug, "write: %s", err)
		return false
	}

	if s.request != nil {
		s.logger.Logf(obs.Debug, "%s %s -> %d (%d bytes)", s.request.Method, s.request.Path, s.response.Code, len(data))
	}

	s.request = nil

	return true
}
