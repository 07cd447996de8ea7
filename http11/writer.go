package http11

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/valyala/bytebufferpool"
)

// bodyChunkSize is the fixed copy unit for streaming a body source
// onto the connection.
const bodyChunkSize = 1024

// httpDate is the RFC-1123-style layout used for the response Date
// header.
const httpDate = "Mon, 02 Jan 2006 15:04:05 GMT"

// SendRequest serializes req onto the stream: request line, headers in
// order, Content-Length computed from the body source's current
// position (if one is present), Connection: close, then the body in
// fixed chunks, then a flush. The request line always carries a single
// leading slash regardless of whether req.Path has one.
func SendRequest(s *Stream, req *Request) error {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	fmt.Fprintf(bb, "%s /%s HTTP/1.1\r\n", req.Method, strings.TrimPrefix(req.Path, "/"))
	writeHeaderLines(bb, req.Headers)
	if req.Body != nil {
		n, err := remaining(req.Body)
		if err != nil {
			return fmt.Errorf("http11: measure body: %w", err)
		}
		fmt.Fprintf(bb, "Content-Length: %d\r\n", n)
	}
	bb.WriteString("Connection: close\r\n\r\n")

	if _, err := s.Write(bb.B); err != nil {
		return fmt.Errorf("http11: write request head: %w", err)
	}
	if req.Body != nil {
		if err := copyBody(s, req.Body); err != nil {
			return err
		}
	}
	if err := s.Flush(); err != nil {
		return fmt.Errorf("http11: flush request: %w", err)
	}
	return nil
}

// SendResponse serializes res onto the stream: status line, headers in
// order, then Date, Content-Length and Connection: close, then the
// body in fixed chunks, then a flush. Content-Length is 0 when there
// is no body source.
func SendResponse(s *Stream, res *Response) error {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	fmt.Fprintf(bb, "HTTP/1.1 %d %s\r\n", res.Status.Code, res.Status.Description)
	writeHeaderLines(bb, res.Headers)

	var length int64
	if res.Body != nil {
		n, err := remaining(res.Body)
		if err != nil {
			return fmt.Errorf("http11: measure body: %w", err)
		}
		length = n
	}
	date := time.Now().UTC().Format(httpDate)
	fmt.Fprintf(bb, "Date: %s\r\nContent-Length: %d\r\nConnection: close\r\n\r\n", date, length)

	if _, err := s.Write(bb.B); err != nil {
		return fmt.Errorf("http11: write response head: %w", err)
	}
	if res.Body != nil {
		if err := copyBody(s, res.Body); err != nil {
			return err
		}
	}
	if err := s.Flush(); err != nil {
		return fmt.Errorf("http11: flush response: %w", err)
	}
	return nil
}

func writeHeaderLines(bb *bytebufferpool.ByteBuffer, hs []Header) {
	for _, h := range hs {
		fmt.Fprintf(bb, "%s: %s\r\n", h.Key, h.Value)
	}
}

// remaining computes the byte count from the body's current position
// to its end, restoring the position afterwards. No bytes are read.
func remaining(body io.ReadSeeker) (int64, error) {
	cur, err := body.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := body.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := body.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end - cur, nil
}

// copyBody streams the body source in bodyChunkSize units until
// exhaustion. The source is read, never closed.
func copyBody(s *Stream, body io.Reader) error {
	buf := make([]byte, bodyChunkSize)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := s.Write(buf[:n]); werr != nil {
				return fmt.Errorf("http11: write body: %w", werr)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("http11: read body: %w", err)
		}
	}
}
