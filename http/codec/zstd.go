package codec

import (
	"github.com/klauspost/compress/zstd"
)

func NewZSTD() Codec {
	return newBaseCodec("zstd", newBaseInstance("zstd", func() writeResetter {
		w, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
		if err != nil {
			panic(err)
		}

		return w
	}))
}
