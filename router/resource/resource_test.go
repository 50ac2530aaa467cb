package resource

import (
	"strings"
	"testing"

	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/kv"
	"github.com/stretchr/testify/require"
)

func echo(params *kv.Storage) string {
	var b strings.Builder
	for key, value := range params.Pairs() {
		b.WriteString(key + "=" + value + ";")
	}

	return b.String()
}

func TestHandler(t *testing.T) {
	t.Run("allow-list", func(t *testing.T) {
		h := New(echo, Int8Param("n", Query), StringParam("name", Query))
		query := kv.New().
			Add("evil", "1").
			Add("name", "Pavlo").
			Add("n", "4").
			Add("n", "5")

		require.Equal(t, "name=Pavlo;n=4;n=5;", h.Call(query))
	})

	t.Run("types aren't validated", func(t *testing.T) {
		h := New(echo, Int8Param("n", Query))
		require.Equal(t, "n=not a number;", h.Call(kv.New().Add("n", "not a number")))
	})

	t.Run("path parameters are never taken from the query", func(t *testing.T) {
		h := New(echo, StringParam("id", Path))
		require.Empty(t, h.Call(kv.New().Add("id", "1")))
	})

	t.Run("methods", func(t *testing.T) {
		require.Equal(t, method.NewSet(method.GET), New(echo).AllowedMethods())
		require.Equal(t, method.NewSet(method.GET), Handler{Func: echo}.AllowedMethods())
		h := New(echo).WithMethods(method.GET, method.POST)
		require.True(t, h.AllowedMethods().Contains(method.POST))
	})

	t.Run("content type", func(t *testing.T) {
		require.Equal(t, "application/json", New(echo).WithContentType("application/json").ContentType)
	})
}

func TestInt8(t *testing.T) {
	params := kv.New().Add("n", "4").Add("big", "300").Add("neg", "-128").Add("word", "four")

	n, err := Int8(params, "n")
	require.NoError(t, err)
	require.Equal(t, int8(4), n)

	n, err = Int8(params, "neg")
	require.NoError(t, err)
	require.Equal(t, int8(-128), n)

	_, err = Int8(params, "big")
	require.Error(t, err)

	_, err = Int8(params, "word")
	require.Error(t, err)

	_, err = Int8(params, "missing")
	require.Error(t, err)
}
