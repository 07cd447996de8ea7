package http11

import "errors"

// Failure classes returned by the parser. They are mutually exclusive:
// a receive either succeeds, hits one of these sentinels, or returns a
// wrapped transport error (match with errors.Is / errors.As).
var (
	// ErrProtocol reports a malformed start line, a wrong literal
	// token, or a header line without a colon.
	ErrProtocol = errors.New("http11: malformed message")

	// ErrConnClosed reports a clean end of stream where more data was
	// expected.
	ErrConnClosed = errors.New("http11: connection closed")

	// ErrHeadersTooMany reports that the header block exceeded the
	// stream's header ceiling before its terminator was seen.
	ErrHeadersTooMany = errors.New("http11: too many headers")
)
