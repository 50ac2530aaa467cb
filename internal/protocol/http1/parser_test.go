package http1

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/http/proto"
	"github.com/indigo-web/webserv/http/status"
	"github.com/indigo-web/webserv/kv"
	"github.com/stretchr/testify/require"
)

func TestParser(t *testing.T) {
	t.Run("simple GET", func(t *testing.T) {
		request, err := Parse("GET / HTTP/1.1\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, method.GET, request.Method)
		require.Equal(t, "/", request.Path)
		require.Equal(t, proto.HTTP11, request.Protocol)
		require.True(t, request.Params.Empty())
		require.Empty(t, request.Headers)
	})

	t.Run("round trip", func(t *testing.T) {
		versions := map[string]proto.Proto{"HTTP/1.1": proto.HTTP11, "HTTP/2": proto.HTTP2, "HTTP/3": proto.HTTP3}

		for _, m := range method.List {
			for token, version := range versions {
				path := "/" + uniuri.NewLen(8)
				raw := fmt.Sprintf("%s %s %s\r\nHost: localhost\r\n\r\n", m, path, token)
				request, err := Parse(raw)
				require.NoError(t, err, raw)
				require.Equal(t, m, request.Method)
				require.Equal(t, path, request.Path)
				require.Equal(t, version, request.Protocol)
				require.Equal(t, "localhost", request.Header("host"))
			}
		}
	})

	t.Run("version defaults to HTTP/1.1", func(t *testing.T) {
		request, err := Parse("get /hello\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, method.GET, request.Method)
		require.Equal(t, "/hello", request.Path)
		require.Equal(t, proto.HTTP11, request.Protocol)
	})

	t.Run("case-insensitive tokens", func(t *testing.T) {
		request, err := Parse("oPtIoNs /x http/2\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, method.OPTIONS, request.Method)
		require.Equal(t, proto.HTTP2, request.Protocol)
	})

	t.Run("query", func(t *testing.T) {
		request, err := Parse("GET /a?x=1&y=2 HTTP/1.1\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "/a", request.Path)
		require.Equal(t, []kv.Pair{{"x", "1"}, {"y", "2"}}, request.Params.Expose())
	})

	t.Run("headers", func(t *testing.T) {
		key := uniuri.NewLen(12)
		raw := "GET / HTTP/1.1\r\n" +
			"Accept-Encoding:  gzip, deflate \r\n" +
			"X-Forwarded-For: 10.0.0.1:8080\r\n" +
			"this line has no colon\r\n" +
			key + ": random\r\n" +
			"\r\n"

		request, err := Parse(raw)
		require.NoError(t, err)
		require.Equal(t, "gzip, deflate", request.Header("accept-encoding"))
		require.Equal(t, "10.0.0.1:8080", request.Header("x-forwarded-for"), "split by the first colon only")
		require.Equal(t, "random", request.Header(strings.ToLower(key)))
		require.Len(t, request.Headers, 3)
	})

	t.Run("extra whitespace in general line", func(t *testing.T) {
		request, err := Parse("  GET   /spaced   HTTP/1.1  \r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "/spaced", request.Path)
	})
}

func TestParserErrors(t *testing.T) {
	for _, tc := range []struct {
		Name string
		Raw  string
		Err  error
	}{
		{"empty", "\r\n\r\n", status.ErrEmptyRequest},
		{"blank general line", "   \r\nHost: x\r\n\r\n", status.ErrEmptyRequest},
		{"single token", "GET\r\n\r\n", status.ErrMalformedGeneralLine},
		{"four tokens", "GET / HTTP/1.1 extra\r\n\r\n", status.ErrMalformedGeneralLine},
		{"unknown method", "PATCH / HTTP/1.1\r\n\r\n", status.ErrUnknownMethod},
		{"unknown version", "GET / HTTP/1.0\r\n\r\n", status.ErrUnknownVersion},
		{"garbage version", "GET / HTTPS\r\n\r\n", status.ErrUnknownVersion},
		{"query without value", "GET /a?bad HTTP/1.1\r\n\r\n", status.ErrMalformedQueryParameter},
		{"second query segment without value", "GET /a?x=1&bad HTTP/1.1\r\n\r\n", status.ErrMalformedQueryParameter},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			request, err := Parse(tc.Raw)
			require.ErrorIs(t, err, tc.Err)
			require.Nil(t, request)
			require.Equal(t, status.BadRequest, status.CodeOf(err))
		})
	}
}
