package status

import "errors"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// CodeOf extracts the status code carried by err. Errors that aren't HTTPError are
// reported as InternalServerError.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return InternalServerError
}

// parser errors
var (
	ErrEmptyRequest            = NewError(BadRequest, "empty request")
	ErrMalformedGeneralLine    = NewError(BadRequest, "malformed general line")
	ErrUnknownMethod           = NewError(BadRequest, "unknown request method")
	ErrUnknownVersion          = NewError(BadRequest, "unknown protocol version")
	ErrMalformedQueryParameter = NewError(BadRequest, "query parameter has no value")
	ErrBadEncoding             = NewError(BadRequest, "request is not valid utf-8")
	ErrRequestEntityTooLarge   = NewError(RequestEntityTooLarge, "request exceeds the buffer limit")
)

var (
	ErrNotFound        = NewError(NotFound, "not found")
	ErrThreadExhausted = NewError(ServiceUnavailable, "connection limit reached")
	ErrShutdown        = NewError(ServiceUnavailable, "server is shutting down")
)
