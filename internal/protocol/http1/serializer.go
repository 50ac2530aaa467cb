package http1

import (
	"strconv"

	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/http/codec"
	"github.com/indigo-web/webserv/http/status"
)

const protocol = "HTTP/1.1 "

// Serializer renders responses into a buffer it owns. It's meant to live as long as the
// connection does, so the buffer gets reused.
type Serializer struct {
	buff []byte
}

func NewSerializer(buff []byte) *Serializer {
	return &Serializer{buff: buff[:0]}
}

// Encode renders the response, compressing its body with the passed codec instance. Nil
// instance stands for identity. The returned slice is valid until the next call.
//
// Content-Length always reflects the encoded body, therefore the body is compressed
// before the headers block is finished.
func (s *Serializer) Encode(response *http.Response, enc codec.Instance) ([]byte, error) {
	body := response.Body
	encoded := len(body) > 0 && !codec.IsIdentity(enc)
	if encoded {
		var err error
		if body, err = enc.Encode(body); err != nil {
			return nil, err
		}
	}

	s.buff = s.buff[:0]
	s.appendStatus(response.Code)

	for key, value := range response.Headers.Pairs() {
		if isReserved(key) {
			continue
		}

		s.appendHeader(key, value)
	}

	if encoded {
		s.appendHeader("Content-Encoding", enc.Token())
	}

	s.buff = append(s.buff, "Content-Length: "...)
	s.buff = strconv.AppendInt(s.buff, int64(len(body)), 10)
	s.buff = append(s.buff, crlf...)
	s.buff = append(s.buff, crlf...)
	s.buff = append(s.buff, body...)

	return s.buff, nil
}

func (s *Serializer) appendStatus(code status.Code) {
	s.buff = append(s.buff, protocol...)
	s.buff = strconv.AppendUint(s.buff, uint64(code), 10)
	s.buff = append(s.buff, ' ')
	s.buff = append(s.buff, status.Text(code)...)
	s.buff = append(s.buff, crlf...)
}

func (s *Serializer) appendHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, ": "...)
	s.buff = append(s.buff, value...)
	s.buff = append(s.buff, crlf...)
}

// isReserved filters out headers the serializer is the only one in charge of.
func isReserved(key string) bool {
	return strcomp.EqualFold(key, "content-length") || strcomp.EqualFold(key, "content-encoding")
}

// Encode is a one-off shortcut for Serializer.Encode. The returned slice is owned by the caller.
func Encode(response *http.Response, enc codec.Instance) ([]byte, error) {
	return NewSerializer(nil).Encode(response, enc)
}
