package http

type state uint8

const (
	// eReading accumulates bytes until the message is framed.
	eReading state = iota + 1
	eParsed
	eResolved
	eResponding
	eClosed
	eBadRequest
	eNotFound
)

func (s state) String() string {
	switch s {
	case eReading:
		return "reading"
	case eParsed:
		return "parsed"
	case eResolved:
		return "resolved"
	case eResponding:
		return "responding"
	case eClosed:
		return "closed"
	case eBadRequest:
		return "bad request"
	case eNotFound:
		return "not found"
	default:
		return "unknown"
	}
}
