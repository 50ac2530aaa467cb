package registry

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/internal/obs"
	"github.com/indigo-web/webserv/internal/pathlib"
	"github.com/indigo-web/webserv/router/resource"
)

const indexFile = "index.html"

var ErrConflict = errors.New("endpoint conflict")

// Registry collects endpoints before the server starts. It's append-only and isn't safe
// for concurrent use: workers read from a Snapshot instead.
type Registry struct {
	endpoints []Endpoint
	handlers  map[string]resource.Handler
	logger    obs.Logger
}

func New(logger obs.Logger) *Registry {
	if logger == nil {
		logger = obs.NopLogger{}
	}

	return &Registry{
		handlers: make(map[string]resource.Handler),
		logger:   logger,
	}
}

// RegisterAsset exposes a single file under the path.
func (r *Registry) RegisterAsset(mountPath, filePath string) error {
	return r.add(Endpoint{
		Path:     pathlib.Join(mountPath),
		Methods:  method.NewSet(method.GET),
		Kind:     StaticAsset,
		FilePath: filePath,
	})
}

// RegisterAssetMount exposes the directory under the mount path. Every file found directly
// in the directory gets its own endpoint, index.html being additionally reachable by the
// directory path itself. Anything deeper is served through a single prefix-matched mount
// endpoint, registered last.
//
// An unreadable directory fails the whole mount. Conflicting entries are skipped.
func (r *Registry) RegisterAssetMount(localDir, mountPath string) error {
	entries, err := os.ReadDir(localDir)
	if err != nil {
		return fmt.Errorf("mount %s: %w", localDir, err)
	}

	root := strings.TrimRight(localDir, `/\`)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		filePath := root + string(os.PathSeparator) + entry.Name()
		endpoint := Endpoint{
			Path:     pathlib.Remap(filePath, localDir, mountPath),
			Methods:  method.NewSet(method.GET),
			Kind:     StaticAsset,
			FilePath: filePath,
		}

		if entry.Name() == indexFile {
			endpoint.Aliases = []string{pathlib.Remap(root, localDir, mountPath)}
		}

		_ = r.add(endpoint)
	}

	_ = r.add(Endpoint{
		Path:    pathlib.Join(mountPath),
		Methods: method.NewSet(method.GET),
		Kind:    AssetMount,
		BaseDir: localDir,
	})

	return nil
}

// RegisterResource stores the handler under its ID and exposes it under the path.
func (r *Registry) RegisterResource(mountPath, handlerID string, handler resource.Handler) error {
	if _, found := r.handlers[handlerID]; found {
		r.logger.Logf(obs.Warn, "handler %q is already registered. Skip.", handlerID)
		return fmt.Errorf("%w: handler %q", ErrConflict, handlerID)
	}

	err := r.add(Endpoint{
		Path:      pathlib.Join(mountPath),
		Methods:   handler.AllowedMethods(),
		Kind:      Resource,
		HandlerID: handlerID,
	})
	if err != nil {
		return err
	}

	r.handlers[handlerID] = handler

	return nil
}

func (r *Registry) add(endpoint Endpoint) error {
	for i := range r.endpoints {
		if existing := &r.endpoints[i]; conflicts(existing, &endpoint) {
			r.logger.Logf(
				obs.Warn, "path %s (%s) conflicts with registered %s (%s). Skip.",
				endpoint.Path, endpoint.Kind, existing.Path, existing.Kind,
			)

			return fmt.Errorf("%w: %s", ErrConflict, endpoint.Path)
		}
	}

	r.endpoints = append(r.endpoints, endpoint)
	r.logger.Logf(obs.Info, "registered %s %s %v", endpoint.Kind, endpoint.Path, endpoint.Aliases)

	return nil
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int {
	return len(r.endpoints)
}

// Snapshot freezes the current state. Registrations made afterwards aren't visible in it.
func (r *Registry) Snapshot() *Snapshot {
	endpoints := make([]Endpoint, len(r.endpoints))
	for i := range r.endpoints {
		endpoints[i] = r.endpoints[i].clone()
	}

	handlers := make(map[string]resource.Handler, len(r.handlers))
	for id, handler := range r.handlers {
		handlers[id] = handler
	}

	return &Snapshot{
		endpoints: endpoints,
		handlers:  handlers,
	}
}
