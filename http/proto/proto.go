package proto

import "github.com/indigo-web/utils/strcomp"

type Proto uint8

const (
	Unknown Proto = 0
	HTTP11  Proto = 1 << iota
	HTTP2
	HTTP3
)

func (p Proto) String() string {
	switch p {
	case HTTP11:
		return "HTTP/1.1"
	case HTTP2:
		return "HTTP/2"
	case HTTP3:
		return "HTTP/3"
	default:
		return ""
	}
}

// Parse matches the version token case-insensitively. HTTP/1.0 is not recognized.
func Parse(token string) Proto {
	switch {
	case strcomp.EqualFold(token, "HTTP/1.1"):
		return HTTP11
	case strcomp.EqualFold(token, "HTTP/2"):
		return HTTP2
	case strcomp.EqualFold(token, "HTTP/3"):
		return HTTP3
	default:
		return Unknown
	}
}
