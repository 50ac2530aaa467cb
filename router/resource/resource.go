package resource

import (
	"fmt"
	"strconv"

	"github.com/indigo-web/webserv/http/method"
	"github.com/indigo-web/webserv/http/mime"
	"github.com/indigo-web/webserv/kv"
)

// Func produces a complete response body out of the declared parameters. It must be safe
// for concurrent use, as every connection calls it from its own goroutine.
type Func func(params *kv.Storage) string

type Location uint8

const (
	Query Location = iota + 1
	// Path parameters can be declared, but no route carries path templates, so they are
	// never supplied.
	Path
)

type Type uint8

const (
	String Type = iota + 1
	Int8
)

// Parameter is a single entry of the handler's parameter schema.
type Parameter struct {
	Name     string
	Location Location
	Type     Type
}

func StringParam(name string, location Location) Parameter {
	return Parameter{Name: name, Location: location, Type: String}
}

func Int8Param(name string, location Location) Parameter {
	return Parameter{Name: name, Location: location, Type: Int8}
}

// Handler is a programmatic endpoint.
type Handler struct {
	Func   Func
	Params []Parameter
	// Methods defaults to GET only if left empty.
	Methods method.Set
	// ContentType is sent as is, if not empty.
	ContentType mime.MIME
}

// New returns a GET handler with the passed parameter schema.
func New(fn Func, params ...Parameter) Handler {
	return Handler{
		Func:    fn,
		Params:  params,
		Methods: method.NewSet(method.GET),
	}
}

// WithMethods replaces the allowed methods.
func (h Handler) WithMethods(methods ...method.Method) Handler {
	h.Methods = method.NewSet(methods...)
	return h
}

// WithContentType sets the Content-Type the handler's bodies are sent with.
func (h Handler) WithContentType(contentType mime.MIME) Handler {
	h.ContentType = contentType
	return h
}

// AllowedMethods returns the method set with the GET default applied.
func (h Handler) AllowedMethods() method.Set {
	if h.Methods.Empty() {
		return method.NewSet(method.GET)
	}

	return h.Methods
}

// Declares reports whether the schema has a parameter of the name at the location.
func (h Handler) Declares(name string, location Location) bool {
	for _, param := range h.Params {
		if param.Name == name && param.Location == location {
			return true
		}
	}

	return false
}

// Filter leaves only the declared query parameters, keeping their order. It's an allow-list
// and not a validation: the values aren't checked against declared types.
func (h Handler) Filter(query *kv.Storage) *kv.Storage {
	return query.Filter(func(pair kv.Pair) bool {
		return h.Declares(pair.Key, Query)
	})
}

// Call invokes the handler with the declared subset of parameters.
func (h Handler) Call(query *kv.Storage) string {
	return h.Func(h.Filter(query))
}

// Int8 parses the first value of the parameter as an 8-bit integer.
func Int8(params *kv.Storage, name string) (int8, error) {
	value, found := params.Get(name)
	if !found {
		return 0, fmt.Errorf("parameter %q is not present", name)
	}

	n, err := strconv.ParseInt(value, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", name, err)
	}

	return int8(n), nil
}
