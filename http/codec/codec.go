package codec

// Codec is a content coding the server is able to apply to response bodies. A codec is
// only a factory: the compressors it produces hold state and therefore are owned by a
// single connection.
type Codec interface {
	// Token returns a coding token associated with the codec itself.
	Token() string
	New() Instance
}

type Instance interface {
	Token() string
	// Encode compresses the whole body at once. The returned slice is only valid until
	// the next call.
	Encode(body []byte) ([]byte, error)
}

// identity stands for "no encoding", according to RFC
const identity = "identity"

// Identity passes the body through untouched. The serializer never emits a Content-Encoding
// header for it.
var Identity Codec = identityCodec{}

type identityCodec struct{}

func (identityCodec) Token() string {
	return identity
}

func (i identityCodec) New() Instance {
	return i
}

func (identityCodec) Encode(body []byte) ([]byte, error) {
	return body, nil
}

// IsIdentity reports whether the instance leaves bodies as they are.
func IsIdentity(inst Instance) bool {
	return inst == nil || inst.Token() == identity
}
