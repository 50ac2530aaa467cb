package http

import (
	"github.com/indigo-web/utils/uf"
	"github.com/indigo-web/webserv/http/status"
	"github.com/indigo-web/webserv/kv"
)

// why 3? Content-Type, Content-Encoding and Content-Length are the most we ever produce
const preallocRespHeaders = 3

// Response is assembled by the connection handler and rendered by the serializer. It's never
// retained after the write completes.
type Response struct {
	Code    status.Code
	Headers *kv.Storage
	Body    []byte
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK
// and pre-allocated space for response headers.
func NewResponse() *Response {
	return &Response{
		Code:    status.OK,
		Headers: kv.NewPrealloc(preallocRespHeaders),
	}
}

// WithCode sets the response code.
func (r *Response) WithCode(code status.Code) *Response {
	r.Code = code
	return r
}

// Header appends a header. Headers are rendered in the order they were added.
func (r *Response) Header(key, value string) *Response {
	r.Headers.Add(key, value)
	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.Body = body
	return r
}

// Error returns a bodiless response carrying the code of the error. Errors without a code
// are turned into 500 Internal Server Error.
func Error(err error) *Response {
	return NewResponse().WithCode(status.CodeOf(err))
}

// Clear resets the response to the state NewResponse returns, keeping the allocated headers.
func (r *Response) Clear() *Response {
	r.Code = status.OK
	r.Headers.Clear()
	r.Body = nil

	return r
}
