package http11

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/aschl/httpwire/http11/internal/token"
)

var (
	protoToken = []byte("HTTP/1.1")

	// The request parser matches the version against the literal
	// including its terminator, so a request line must end in exactly
	// CR LF. Deliberately strict; see the package documentation.
	versionEOL = []byte("HTTP/1.1\r\n")
)

// ReceiveResponse reads a status line and a header block from the
// stream. The body, if any, is not consumed: the stream stays
// positioned at its first byte and Content-Length interpretation is
// the caller's concern. On success the caller owns the Response and
// must Release it.
func ReceiveResponse(s *Stream) (*Response, error) {
	line, err := s.ReadLine()
	if err != nil {
		return nil, readFailure("status line", err)
	}
	proto, code, reason, ok := token.StatusLine(line)
	if !ok || !bytes.Equal(proto, protoToken) {
		return nil, ErrProtocol
	}
	n, err := strconv.Atoi(string(code))
	if err != nil {
		return nil, ErrProtocol
	}
	hs, err := readHeaderBlock(s)
	if err != nil {
		return nil, err
	}
	return &Response{
		Status:  StatusLine{Code: n, Description: string(reason)},
		Headers: hs,
	}, nil
}

// ReceiveRequest reads a request line and a header block from the
// stream. The method must be one of the nine closed values, the target
// must begin with a slash, and the version token must be the literal
// HTTP/1.1 followed immediately by CR LF. On success the caller owns
// the Request and must Release it.
func ReceiveRequest(s *Stream) (*Request, error) {
	line, err := s.ReadLine()
	if err != nil {
		return nil, readFailure("request line", err)
	}
	methodTok, target, version, ok := token.RequestLine(line)
	if !ok {
		return nil, ErrProtocol
	}
	method, ok := ParseMethod(methodTok)
	if !ok {
		return nil, ErrProtocol
	}
	if len(target) == 0 || target[0] != '/' {
		return nil, ErrProtocol
	}
	if !bytes.Equal(version, versionEOL) {
		return nil, ErrProtocol
	}
	path := string(target)
	hs, err := readHeaderBlock(s)
	if err != nil {
		return nil, err
	}
	return &Request{
		Method:  method,
		Path:    path,
		Headers: hs,
	}, nil
}

// readHeaderBlock reads header lines until the bare CR LF terminator.
// A clean end of stream before the terminator is ErrConnClosed, any
// other read failure is an I/O error, and a line without a colon is
// ErrProtocol. Storage grows geometrically via appendHeader.
func readHeaderBlock(s *Stream) ([]Header, error) {
	hs := acquireHeaders()
	max := s.maxHeaders()
	for {
		line, err := s.ReadLine()
		if err != nil {
			releaseHeaders(hs)
			return nil, readFailure("header", err)
		}
		if token.IsBlockEnd(line) {
			return hs, nil
		}
		key, value, ok := token.HeaderLine(line)
		if !ok {
			releaseHeaders(hs)
			return nil, ErrProtocol
		}
		if len(hs) >= max {
			releaseHeaders(hs)
			return nil, ErrHeadersTooMany
		}
		hs = appendHeader(hs, Header{Key: string(key), Value: string(value)})
	}
}

// DiscardHead consumes the remainder of an inbound message head:
// everything up to and including the blank-line terminator, or to end
// of stream. The server uses it to realign a connection after a
// malformed request before answering 400.
func DiscardHead(s *Stream) error {
	for {
		line, err := s.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("http11: discard head: %w", err)
		}
		if token.IsBlockEnd(line) {
			return nil
		}
	}
}

func readFailure(what string, err error) error {
	if err == io.EOF {
		return ErrConnClosed
	}
	return fmt.Errorf("http11: read %s: %w", what, err)
}
