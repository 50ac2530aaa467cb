package http1

import (
	"strings"

	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/http/proto"
	"github.com/indigo-web/webserv/http/status"
	"github.com/indigo-web/webserv/internal/query"
)

const (
	crlf = "\r\n"
	// Terminator marks the end of a message. Bodies aren't supported, so a message is
	// complete as soon as the buffered data ends with it.
	Terminator = crlf + crlf
)

// Parse turns a framed message into a request.
func Parse(raw string) (*http.Request, error) {
	request := http.NewRequest()
	if err := ParseInto(raw, request); err != nil {
		return nil, err
	}

	return request, nil
}

// ParseInto fills the passed request. The request must be fresh, as params and headers are
// only appended.
func ParseInto(raw string, request *http.Request) error {
	generalLine, headers, _ := strings.Cut(raw, crlf)

	if err := parseGeneralLine(generalLine, request); err != nil {
		return err
	}

	parseHeaders(headers, request.Headers)

	return nil
}

func parseGeneralLine(line string, request *http.Request) error {
	var target, version string
	tokens := strings.Fields(line)

	switch len(tokens) {
	case 0:
		return status.ErrEmptyRequest
	case 2:
		target = tokens[1]
	case 3:
		target, version = tokens[1], tokens[2]
	default:
		return status.ErrMalformedGeneralLine
	}

	request.Method = method.Parse(tokens[0])
	if request.Method == method.Unknown {
		return status.ErrUnknownMethod
	}

	request.Protocol = proto.HTTP11
	if len(version) > 0 {
		request.Protocol = proto.Parse(version)
		if request.Protocol == proto.Unknown {
			return status.ErrUnknownVersion
		}
	}

	path, rawQuery := query.Split(target)
	request.Path = path

	return query.Parse(rawQuery, request.Params)
}

// parseHeaders is best-effort: lines without a colon are skipped rather than rejected.
func parseHeaders(data string, headers http.Headers) {
	for len(data) > 0 {
		var line string
		line, data, _ = strings.Cut(data, crlf)

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		headers[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
}
