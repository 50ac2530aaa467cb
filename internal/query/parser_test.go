package query

import (
	"testing"

	"github.com/indigo-web/webserv/http/status"
	"github.com/indigo-web/webserv/kv"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, data string) []kv.Pair {
	params := kv.New()
	require.NoError(t, Parse(data, params))
	return params.Expose()
}

func TestParse(t *testing.T) {
	t.Run("ordered", func(t *testing.T) {
		require.Equal(t, []kv.Pair{{"x", "1"}, {"y", "2"}}, parse(t, "x=1&y=2"))
		require.Equal(t, []kv.Pair{{"y", "2"}, {"x", "1"}}, parse(t, "y=2&x=1"))
	})

	t.Run("repeated keys", func(t *testing.T) {
		require.Equal(t, []kv.Pair{{"x", "1"}, {"x", "2"}}, parse(t, "x=1&x=2"))
	})

	t.Run("split by the first equal sign", func(t *testing.T) {
		require.Equal(t, []kv.Pair{{"eq", "a=b"}}, parse(t, "eq=a=b"))
	})

	t.Run("empty value", func(t *testing.T) {
		require.Equal(t, []kv.Pair{{"x", ""}}, parse(t, "x="))
	})

	t.Run("empty segments", func(t *testing.T) {
		require.Equal(t, []kv.Pair{{"a", "1"}, {"b", "2"}}, parse(t, "a=1&&b=2&"))
		require.Empty(t, parse(t, ""))
	})

	t.Run("urldecoded", func(t *testing.T) {
		require.Equal(t, []kv.Pair{{"hel lo", "wor ld"}}, parse(t, "hel%20lo=wor+ld"))
	})

	t.Run("malformed", func(t *testing.T) {
		for _, tc := range []string{"bad", "x=1&bad", "=1", "x=%zz", "%zz=1"} {
			require.ErrorIs(t, Parse(tc, kv.New()), status.ErrMalformedQueryParameter, tc)
		}
	})
}

func TestSplit(t *testing.T) {
	for _, tc := range []struct{ Target, Path, Query string }{
		{"/a?x=1", "/a", "x=1"},
		{"/a", "/a", ""},
		{"/a?", "/a", ""},
		{"/a?x=1?y=2", "/a", "x=1?y=2"},
	} {
		path, q := Split(tc.Target)
		require.Equal(t, tc.Path, path)
		require.Equal(t, tc.Query, q)
	}
}
