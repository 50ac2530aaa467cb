package codec

import (
	"github.com/klauspost/compress/flate"
)

func NewDeflate() Codec {
	return newBaseCodec("deflate", newBaseInstance("deflate", func() writeResetter {
		w, err := flate.NewWriter(nil, flate.DefaultCompression)
		if err != nil {
			panic(err)
		}

		return w
	}))
}
