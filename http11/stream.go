package http11

import (
	"bufio"
	"fmt"
	"io"
	"net"

	"go.uber.org/multierr"
)

// DefaultMaxHeaders bounds the header block when a Stream does not set
// its own ceiling. Hitting the bound yields ErrHeadersTooMany.
const DefaultMaxHeaders = 256

// Stream is a buffered duplex byte stream over a single TCP
// connection. It supports line reads (terminator included, internal
// buffer growing as needed), fixed-size body reads, buffered writes
// and an explicit flush. A Stream carries exactly one request/response
// exchange; there is no reuse across messages.
type Stream struct {
	// MaxHeaders overrides DefaultMaxHeaders when > 0.
	MaxHeaders int

	c    net.Conn
	br   *bufio.Reader
	bw   *bufio.Writer
	line []byte
}

// NewStream wraps an established connection. Dial and Accept call this
// internally; tests can wrap a net.Pipe end.
func NewStream(c net.Conn) *Stream {
	return &Stream{
		c:    c,
		br:   bufio.NewReader(c),
		bw:   bufio.NewWriter(c),
		line: make([]byte, 0, 128),
	}
}

// Dial resolves host:port over IPv4/TCP and connects. A resolution
// failure surfaces the resolver's description rather than an errno.
func Dial(host, port string) (*Stream, error) {
	addr, err := net.ResolveTCPAddr("tcp4", net.JoinHostPort(host, port))
	if err != nil {
		return nil, fmt.Errorf("http11: resolve %s: %w", net.JoinHostPort(host, port), err)
	}
	c, err := net.DialTCP("tcp4", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("http11: connect %s: %w", addr, err)
	}
	return NewStream(c), nil
}

// Listen binds the IPv4 wildcard address on port and listens. Address
// reuse is enabled by the runtime's listener setup.
func Listen(port string) (*net.TCPListener, error) {
	l, err := net.Listen("tcp4", ":"+port)
	if err != nil {
		return nil, fmt.Errorf("http11: listen on %s: %w", port, err)
	}
	return l.(*net.TCPListener), nil
}

// Accept blocks until a client connects and wraps the accepted
// connection. This layer hands out one connection at a time; there is
// no internal fan-out. Closing the listener from another goroutine
// unblocks a pending Accept with net.ErrClosed, the cooperative
// shutdown path.
func Accept(l *net.TCPListener) (*Stream, error) {
	c, err := l.Accept()
	if err != nil {
		return nil, fmt.Errorf("http11: accept: %w", err)
	}
	return NewStream(c), nil
}

// ReadLine reads up to and including the next LF. The returned slice
// is valid until the next ReadLine call. If the stream ends mid-line
// the partial line is returned without error; the terminator check is
// the caller's concern. A read at end of stream returns io.EOF.
func (s *Stream) ReadLine() ([]byte, error) {
	s.line = s.line[:0]
	for {
		frag, err := s.br.ReadSlice('\n')
		s.line = append(s.line, frag...)
		if err == nil {
			return s.line, nil
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF && len(s.line) > 0 {
			return s.line, nil
		}
		return nil, err
	}
}

// Read reads body bytes directly from the buffered stream, picking up
// exactly where the header block ended.
func (s *Stream) Read(p []byte) (int, error) {
	return s.br.Read(p)
}

// Write buffers p for transmission.
func (s *Stream) Write(p []byte) (int, error) {
	return s.bw.Write(p)
}

// Flush pushes all buffered writes onto the connection.
func (s *Stream) Flush() error {
	return s.bw.Flush()
}

// Close flushes pending writes and closes the connection. Both errors
// are reported.
func (s *Stream) Close() error {
	return multierr.Append(s.bw.Flush(), s.c.Close())
}

func (s *Stream) maxHeaders() int {
	if s.MaxHeaders > 0 {
		return s.MaxHeaders
	}
	return DefaultMaxHeaders
}
