package method

import "github.com/indigo-web/utils/strcomp"

type Method uint8

const (
	Unknown Method = iota
	GET
	HEAD
	OPTIONS
	POST
	PUT
	DELETE

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, HEAD, OPTIONS, POST, PUT, DELETE}

var names = [...]string{
	Unknown: "UNKNOWN",
	GET:     "GET",
	HEAD:    "HEAD",
	OPTIONS: "OPTIONS",
	POST:    "POST",
	PUT:     "PUT",
	DELETE:  "DELETE",
}

// Parse matches the token case-insensitively. Anything outside the List results in Unknown
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if strcomp.EqualFold(str, "GET") {
			return GET
		} else if strcomp.EqualFold(str, "PUT") {
			return PUT
		}
	case 4:
		if strcomp.EqualFold(str, "POST") {
			return POST
		} else if strcomp.EqualFold(str, "HEAD") {
			return HEAD
		}
	case 6:
		if strcomp.EqualFold(str, "DELETE") {
			return DELETE
		}
	case 7:
		if strcomp.EqualFold(str, "OPTIONS") {
			return OPTIONS
		}
	}

	return Unknown
}

func (m Method) String() string {
	if int(m) >= len(names) {
		return names[Unknown]
	}

	return names[m]
}

// Set is a bitmask of methods an endpoint accepts.
type Set uint8

// NewSet returns a set containing exactly the passed methods
func NewSet(methods ...Method) (s Set) {
	for _, m := range methods {
		s = s.With(m)
	}

	return s
}

func (s Set) With(m Method) Set {
	if m == Unknown {
		return s
	}

	return s | 1<<m
}

func (s Set) Contains(m Method) bool {
	return m != Unknown && s&(1<<m) != 0
}

func (s Set) Empty() bool {
	return s == 0
}

// Methods returns the set members in List order
func (s Set) Methods() (methods []Method) {
	for _, m := range List {
		if s.Contains(m) {
			methods = append(methods, m)
		}
	}

	return methods
}
