package http

import (
	"testing"

	"github.com/indigo-web/webserv/http/status"
	"github.com/indigo-web/webserv/kv"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("builder", func(t *testing.T) {
		resp := NewResponse().
			Header("Content-Type", "text/plain").
			Header("X-Hello", "world").
			String("hi")

		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, []kv.Pair{
			{"Content-Type", "text/plain"},
			{"X-Hello", "world"},
		}, resp.Headers.Expose())
		require.Equal(t, "hi", string(resp.Body))
	})

	t.Run("error", func(t *testing.T) {
		resp := Error(status.ErrNotFound)
		require.Equal(t, status.NotFound, resp.Code)
		require.Empty(t, resp.Body)
		require.True(t, resp.Headers.Empty())
	})

	t.Run("clear", func(t *testing.T) {
		resp := NewResponse().WithCode(status.BadRequest).Header("a", "b").String("c")
		resp.Clear()
		require.Equal(t, status.OK, resp.Code)
		require.True(t, resp.Headers.Empty())
		require.Nil(t, resp.Body)
	})
}

func TestRequest(t *testing.T) {
	req := NewRequest()
	req.Headers["accept-encoding"] = "gzip"
	require.Equal(t, "gzip", req.Header("accept-encoding"))
	require.Empty(t, req.Header("connection"))
	require.Equal(t, `Request [method="UNKNOWN", path="", version="HTTP/1.1"]`, req.String())
}
