package codec

// Cache lazily instantiates codecs for a single connection, so compressors are reused across
// requests and never shared between goroutines.
type Cache struct {
	codecs    []Codec
	instances []Instance
}

func NewCache(codecs []Codec) Cache {
	return Cache{
		codecs:    codecs,
		instances: make([]Instance, len(codecs)),
	}
}

func (c Cache) find(token string) (int, Codec) {
	for i, entry := range c.codecs {
		if entry.Token() == token {
			return i, entry
		}
	}

	return -1, nil
}

// Get returns an instance of the codec by its token, or nil if it isn't known.
func (c Cache) Get(token string) Instance {
	idx, cd := c.find(token)
	if idx == -1 {
		return nil
	}

	inst := c.instances[idx]
	if inst == nil {
		inst = cd.New()
		c.instances[idx] = inst
	}

	return inst
}

// Negotiate selects an instance fitting the Accept-Encoding value, falling back to identity.
func (c Cache) Negotiate(acceptEncoding string) Instance {
	selected := Negotiate(acceptEncoding, c.codecs)
	if selected == nil {
		return Identity.New()
	}

	return c.Get(selected.Token())
}
