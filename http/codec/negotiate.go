package codec

import (
	"strings"
)

// aliases exist in backward-capability purposes. Some old clients may use x-gzip instead
// of regular gzip token.
// see https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Content-Encoding#directives
var aliases = map[string]string{
	"x-gzip": "gzip",
}

// Accepts reports whether the Accept-Encoding header value lists the token. Tokens are
// comma-separated and trimmed. Parameters are ignored, except for q=0 which explicitly
// refuses the coding.
func Accepts(acceptEncoding, token string) bool {
	for acceptEncoding != "" {
		var entry string
		entry, acceptEncoding, _ = strings.Cut(acceptEncoding, ",")
		name, params, _ := strings.Cut(entry, ";")
		name = strings.ToLower(strings.TrimSpace(name))
		if alias, ok := aliases[name]; ok {
			name = alias
		}

		if name == token || name == "*" {
			return !refused(params)
		}
	}

	return false
}

func refused(params string) bool {
	for params != "" {
		var param string
		param, params, _ = strings.Cut(params, ";")
		key, value, _ := strings.Cut(param, "=")
		if strings.TrimSpace(key) != "q" {
			continue
		}

		value = strings.TrimRight(strings.TrimSpace(value), "0")
		return value == "" || value == "." || value == "0."
	}

	return false
}

// Negotiate picks the first codec, in server preference order, the client accepts. Nil
// means no codec fits and the body must be sent as is.
func Negotiate(acceptEncoding string, codecs []Codec) Codec {
	if acceptEncoding == "" {
		return nil
	}

	for _, c := range codecs {
		if Accepts(acceptEncoding, c.Token()) {
			return c
		}
	}

	return nil
}
