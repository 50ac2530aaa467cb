package status

type (
	Code   uint16
	Status string
)

// Codes the server is able to produce. The numbering follows IANA:
// https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	OK Code = 200 // RFC 9110, 15.3.1

	BadRequest            Code = 400 // RFC 9110, 15.5.1
	NotFound              Code = 404 // RFC 9110, 15.5.5
	RequestEntityTooLarge Code = 413 // RFC 9110, 15.5.14

	InternalServerError Code = 500 // RFC 9110, 15.6.1
	ServiceUnavailable  Code = 503 // RFC 9110, 15.6.4
)

// KnownCodes lists every code Text has a reason phrase for.
var KnownCodes = []Code{
	OK, BadRequest, NotFound, RequestEntityTooLarge, InternalServerError, ServiceUnavailable,
}

// Text returns a reason phrase for the status code.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case InternalServerError:
		return "Internal Server Error"
	case ServiceUnavailable:
		return "Service Unavailable"
	default:
		return "Unknown Status Code"
	}
}
