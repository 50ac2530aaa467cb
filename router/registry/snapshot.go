package registry

import (
	"github.com/indigo-web/webserv/http"
	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/router/resource"
)

// Snapshot is an immutable view of the registry. It's shared by all the workers without any
// locking, so nothing is allowed to modify it after creation.
type Snapshot struct {
	endpoints []Endpoint
	handlers  map[string]resource.Handler
}

// Resolve returns the first endpoint, in registration order, serving the request.
func (s *Snapshot) Resolve(path string, m method.Method) (*Endpoint, bool) {
	for i := range s.endpoints {
		if endpoint := &s.endpoints[i]; endpoint.Matches(path, m) {
			return endpoint, true
		}
	}

	return nil, false
}

// Handler looks the resource handler up by its ID.
func (s *Snapshot) Handler(id string) (resource.Handler, bool) {
	handler, found := s.handlers[id]
	return handler, found
}

// Execute calls the resource handler with the parameters it declared. Resources never fail:
// an unknown handler results in an empty body.
func (s *Snapshot) Execute(endpoint *Endpoint, request *http.Request) string {
	handler, found := s.Handler(endpoint.HandlerID)
	if !found || handler.Func == nil {
		return ""
	}

	return handler.Call(request.Params)
}

// Endpoints returns the number of endpoints in the snapshot.
func (s *Snapshot) Endpoints() int {
	return len(s.endpoints)
}
