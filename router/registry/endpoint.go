package registry

import (
	"slices"

	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/internal/pathlib"
)

type Kind uint8

const (
	// StaticAsset is a single file served verbatim.
	StaticAsset Kind = iota + 1
	// AssetMount is a directory subtree, matched by the path prefix.
	AssetMount
	// Resource is a programmatic handler, referenced by its ID.
	Resource
)

func (k Kind) String() string {
	switch k {
	case StaticAsset:
		return "static asset"
	case AssetMount:
		return "asset mount"
	case Resource:
		return "resource"
	default:
		return "unknown"
	}
}

// Endpoint is a registered route. Which of FilePath, BaseDir and HandlerID is meaningful
// depends on the Kind.
type Endpoint struct {
	Path    string
	Aliases []string
	Methods method.Set
	Kind    Kind
	// FilePath is the file a StaticAsset serves.
	FilePath string
	// BaseDir is the directory an AssetMount serves from.
	BaseDir string
	// HandlerID references the handler table of a Resource.
	HandlerID string
}

// Matches reports whether the endpoint serves the request. Mounts match by prefix and
// don't check the method; everything else needs the exact path (or an alias) and an
// allowed method.
func (e *Endpoint) Matches(path string, m method.Method) bool {
	if e.Kind == AssetMount {
		return pathlib.HasPrefix(path, e.Path)
	}

	return (e.Path == path || slices.Contains(e.Aliases, path)) && e.Methods.Contains(m)
}

// LocalPath returns the file backing the request path. Only asset endpoints have one.
func (e *Endpoint) LocalPath(path string) (string, bool) {
	switch e.Kind {
	case StaticAsset:
		return e.FilePath, true
	case AssetMount:
		return pathlib.Local(e.BaseDir, e.Path, path)
	default:
		return "", false
	}
}

// conflicts checks the disjointness invariant between two endpoints. Mounts are matched by
// prefix, so only an identical path is a conflict for them.
func conflicts(a, b *Endpoint) bool {
	if a.Kind == AssetMount || b.Kind == AssetMount {
		return a.Path == b.Path
	}

	return slices.ContainsFunc(a.keys(), func(key string) bool {
		return slices.Contains(b.keys(), key)
	})
}

func (e *Endpoint) keys() []string {
	return append([]string{e.Path}, e.Aliases...)
}

func (e *Endpoint) clone() Endpoint {
	c := *e
	c.Aliases = slices.Clone(e.Aliases)

	return c
}
