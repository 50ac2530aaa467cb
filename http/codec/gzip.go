package codec

import (
	"github.com/klauspost/compress/gzip"
)

func NewGZIP() Codec {
	return newBaseCodec("gzip", newBaseInstance("gzip", func() writeResetter {
		// gzip.NewWriterLevel never fails on the default level
		w, _ := gzip.NewWriterLevel(nil, gzip.DefaultCompression)
		return w
	}))
}
