package query

import (
	"strings"

	"github.com/indigo-web/webserv/http/status"
	"github.com/indigo-web/webserv/internal/urlencoded"
	"github.com/indigo-web/webserv/kv"
)

// Parse splits the query string into params in the order they appear. Every non-empty
// segment must carry an equal sign; the key and the value are split by the first one and
// both get urldecoded.
func Parse(data string, params *kv.Storage) error {
	for len(data) > 0 {
		var segment string
		segment, data, _ = strings.Cut(data, "&")
		if len(segment) == 0 {
			continue
		}

		key, value, found := strings.Cut(segment, "=")
		if !found || len(key) == 0 {
			return status.ErrMalformedQueryParameter
		}

		// every component is decoded into its own memory, as the params outlive the call
		key, _, err := urlencoded.QueryDecodeString(key, nil)
		if err != nil {
			return status.ErrMalformedQueryParameter
		}

		value, _, err = urlencoded.QueryDecodeString(value, nil)
		if err != nil {
			return status.ErrMalformedQueryParameter
		}

		params.Add(key, value)
	}

	return nil
}

// Split separates the path from its query. The query is everything after the first '?'.
func Split(target string) (path, query string) {
	path, query, _ = strings.Cut(target, "?")
	return path, query
}
