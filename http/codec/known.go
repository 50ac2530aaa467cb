package codec

import (
	"fmt"
)

// known maps the tokens to the constructors of the codecs shipped with the server.
var known = map[string]func() Codec{
	"gzip":    NewGZIP,
	"deflate": NewDeflate,
	"zstd":    NewZSTD,
}

// FromTokens builds the codecs in the passed order, which is the server preference order.
func FromTokens(tokens ...string) ([]Codec, error) {
	codecs := make([]Codec, 0, len(tokens))

	for _, token := range tokens {
		constructor, found := known[token]
		if !found {
			return nil, fmt.Errorf("unknown content coding: %q", token)
		}

		codecs = append(codecs, constructor())
	}

	return codecs, nil
}
