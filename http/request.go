package http

import (
	"net"

	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/http/proto"
	"github.com/indigo-web/webserv/kv"
)

type (
	Params = *kv.Storage
	// Headers are keyed by the lower-cased header name. A repeated header keeps the last value.
	Headers = map[string]string
)

// Request represents a single framed HTTP message. It lives as long as its response isn't
// written.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the request target with the query suffix stripped.
	Path string
	// Params are query parameters in the order they appeared in the request line.
	Params Params
	// Protocol defaults to HTTP/1.1 if the general line carries no version.
	Protocol proto.Proto
	Headers  Headers
	// Remote holds the remote address. It's nil unless the request came from a connection.
	Remote net.Addr
}

func NewRequest() *Request {
	return &Request{
		Method:   method.Unknown,
		Protocol: proto.HTTP11,
		Params:   kv.New(),
		Headers:  make(Headers),
	}
}

// Header returns the value of the header. The key must be lower-cased.
func (r *Request) Header(key string) string {
	return r.Headers[key]
}

func (r *Request) String() string {
	return "Request [method=\"" + r.Method.String() + "\", path=\"" + r.Path +
		"\", version=\"" + r.Protocol.String() + "\"]"
}
