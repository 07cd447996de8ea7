package http11

// Method is one of the nine HTTP/1.1 request methods. The set is
// closed: ParseMethod rejects any token outside it and a parsed
// Request always carries one of these values.
type Method int

const (
	GET Method = iota
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH
)

var methodNames = [...]string{
	GET:     "GET",
	HEAD:    "HEAD",
	POST:    "POST",
	PUT:     "PUT",
	DELETE:  "DELETE",
	CONNECT: "CONNECT",
	OPTIONS: "OPTIONS",
	TRACE:   "TRACE",
	PATCH:   "PATCH",
}

// String returns the wire token for m, or the empty string if m is
// outside the closed set.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return ""
	}
	return methodNames[m]
}

// ParseMethod maps a wire token to its Method. The comparison is
// case-sensitive.
func ParseMethod(tok []byte) (Method, bool) {
	for m, name := range methodNames {
		if string(tok) == name {
			return Method(m), true
		}
	}
	return 0, false
}
