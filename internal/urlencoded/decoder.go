package urlencoded

import (
	"bytes"
	"errors"

	"github.com/indigo-web/utils/uf"
	"github.com/indigo-web/webserv/internal/hexconv"
)

var ErrBadEscape = errors.New("malformed percent-encoded sequence")

// Decode decodes data into the given buffer, but omits it if there's no data to be
// decoded. `dst` can be src[:0] as well in order to decode "into itself".
func Decode(src, dst []byte) (decoded, buffer []byte, err error) {
	percent := bytes.IndexByte(src, '%')
	if percent == -1 {
		return src, dst, nil
	}

	head := len(dst)

	for percent != -1 {
		if percent >= len(src)-2 {
			return nil, dst, ErrBadEscape
		}

		dst = append(dst, src[:percent]...)
		a, b := hexconv.Halfbyte[src[percent+1]], hexconv.Halfbyte[src[percent+2]]
		if a|b > 0x0f {
			return nil, dst, ErrBadEscape
		}

		dst = append(dst, (a<<4)|b)
		src = src[percent+3:]
		percent = bytes.IndexByte(src, '%')
	}

	dst = append(dst, src...)
	return dst[head:], dst, nil
}

// QueryDecode is the same as Decode, but on top also decodes + as spaces, as query
// strings are form-encoded.
func QueryDecode(src, dst []byte) (decoded, buffer []byte, err error) {
	if bytes.IndexByte(src, '+') == -1 {
		return Decode(src, dst)
	}

	head := len(dst)

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '+':
			dst = append(dst, ' ')
		case '%':
			if i+2 >= len(src) {
				return nil, dst, ErrBadEscape
			}

			a, b := hexconv.Halfbyte[src[i+1]], hexconv.Halfbyte[src[i+2]]
			if a|b > 0x0f {
				return nil, dst, ErrBadEscape
			}

			dst = append(dst, (a<<4)|b)
			i += 2
		default:
			dst = append(dst, c)
		}
	}

	return dst[head:], dst, nil
}

// QueryDecodeString decodes a query string component. The result may share the memory
// with either src or buff.
func QueryDecodeString(src string, buff []byte) (decoded string, buffer []byte, err error) {
	d, buffer, err := QueryDecode(uf.S2B(src), buff)
	return uf.B2S(d), buffer, err
}
