package codec

import (
	"bytes"
	"io"
)

var _ Codec = baseCodec{}

type instantiator = func() Instance

type baseCodec struct {
	token   string
	newInst instantiator
}

func newBaseCodec(token string, newInst instantiator) baseCodec {
	return baseCodec{
		token:   token,
		newInst: newInst,
	}
}

func (b baseCodec) Token() string {
	return b.token
}

func (b baseCodec) New() Instance {
	return b.newInst()
}

type writeResetter interface {
	io.WriteCloser
	Reset(dst io.Writer)
}

var _ Instance = new(baseInstance)

type baseInstance struct {
	token string
	w     writeResetter
	buff  *bytes.Buffer
}

func newBaseInstance(token string, newWriter func() writeResetter) instantiator {
	return func() Instance {
		return &baseInstance{
			token: token,
			w:     newWriter(),
			buff:  new(bytes.Buffer),
		}
	}
}

func (b *baseInstance) Token() string {
	return b.token
}

func (b *baseInstance) Encode(body []byte) ([]byte, error) {
	b.buff.Reset()
	b.w.Reset(b.buff)

	if _, err := b.w.Write(body); err != nil {
		return nil, err
	}

	if err := b.w.Close(); err != nil {
		return nil, err
	}

	return b.buff.Bytes(), nil
}
