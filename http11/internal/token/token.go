// Package token holds the raw line tokenizing shared by the request
// and response parsers. It operates on byte slices that still carry
// their line terminator; classifying a bad token into a failure class
// is left to the caller.
package token

import "bytes"

var crlf = []byte("\r\n")

// IsBlockEnd reports whether line is exactly the two-byte CR LF
// sequence that terminates a header block. The comparison is exact: a
// bare LF is not a terminator.
func IsBlockEnd(line []byte) bool {
	return bytes.Equal(line, crlf)
}

// Cut splits line at the first single space. Found is false when the
// line contains no space at all.
func Cut(line []byte) (before, after []byte, found bool) {
	i := bytes.IndexByte(line, ' ')
	if i < 0 {
		return line, nil, false
	}
	return line[:i], line[i+1:], true
}

// TrimEOL returns b up to its first CR or LF.
func TrimEOL(b []byte) []byte {
	if i := bytes.IndexAny(b, "\r\n"); i >= 0 {
		return b[:i]
	}
	return b
}

// StatusLine splits a raw status line into its protocol token, its
// status-code token and the reason phrase. The reason phrase is the
// remainder after the second space with the terminator stripped; it is
// empty when nothing remains. The code token keeps whatever trails it,
// including a terminator, so that "200\r\n" fails numeric parsing in
// the caller exactly like a token with trailing garbage.
func StatusLine(line []byte) (proto, code, reason []byte, ok bool) {
	proto, rest, found := Cut(line)
	if !found {
		return nil, nil, nil, false
	}
	code, tail, found := Cut(rest)
	if !found {
		return proto, rest, nil, true
	}
	return proto, code, TrimEOL(tail), true
}

// RequestLine splits a raw request line into its method token, its
// target token and the version remainder. The version keeps the line
// terminator attached; callers compare it against the full literal
// including CR LF.
func RequestLine(line []byte) (method, target, version []byte, ok bool) {
	method, rest, found := Cut(line)
	if !found {
		return nil, nil, nil, false
	}
	target, version, found = Cut(rest)
	if !found {
		return nil, nil, nil, false
	}
	return method, target, version, true
}

// HeaderLine splits a raw header line at its first colon. The key is
// the substring before the colon, verbatim. The value has leading
// spaces stripped and ends before the terminator. ok is false when the
// line carries no colon.
func HeaderLine(line []byte) (key, value []byte, ok bool) {
	i := bytes.IndexByte(line, ':')
	if i < 0 {
		return nil, nil, false
	}
	key = line[:i]
	value = line[i+1:]
	for len(value) > 0 && value[0] == ' ' {
		value = value[1:]
	}
	return key, TrimEOL(value), true
}
