package http11

import (
	"io"
	"sync"
)

// Header is one key/value pair. Messages keep headers as an ordered
// slice: insertion order is significant and is reproduced verbatim on
// the wire, and duplicate keys stay separate entries.
type Header struct {
	Key   string
	Value string
}

// StatusLine is the code and reason phrase of a response. Description
// may be empty but is never absent.
type StatusLine struct {
	Code        int
	Description string
}

// Request is an HTTP request. Body is only meaningful when sending;
// a Request produced by ReceiveRequest never has one. Body must be
// seekable so that Content-Length can be computed without buffering,
// and it is owned by whoever supplied it — the message layer never
// closes it.
type Request struct {
	Method  Method
	Path    string
	Headers []Header
	Body    io.ReadSeeker
}

// Response is an HTTP response. The same Body rules as for Request
// apply.
type Response struct {
	Status  StatusLine
	Headers []Header
	Body    io.ReadSeeker
}

// headerPool recycles header storage between parses. A fresh array
// starts at capacity 2; Release hands storage back for reuse.
var headerPool = sync.Pool{
	New: func() any {
		hs := make([]Header, 0, 2)
		return &hs
	},
}

func acquireHeaders() []Header {
	return (*headerPool.Get().(*[]Header))[:0]
}

func releaseHeaders(hs []Header) {
	if hs == nil {
		return
	}
	for i := range hs {
		hs[i] = Header{}
	}
	hs = hs[:0]
	headerPool.Put(&hs)
}

// appendHeader grows storage with the power-of-two doubling discipline:
// capacity starts at 2 and doubles exactly when the occupied count is a
// power of two (>= 2) and the array is full, so transitions happen at
// counts 2, 4, 8, 16, ...
func appendHeader(hs []Header, h Header) []Header {
	if n := len(hs); n >= 2 && n&(n-1) == 0 && n == cap(hs) {
		grown := make([]Header, n, 2*n)
		copy(grown, hs)
		hs = grown
	}
	return append(hs, h)
}

// Release returns the request's header storage to the pool and clears
// every owned field. It never touches Body. The request must not be
// used afterwards.
func (r *Request) Release() {
	if r == nil {
		return
	}
	releaseHeaders(r.Headers)
	r.Headers = nil
	r.Path = ""
	r.Method = 0
}

// Release returns the response's header storage to the pool and clears
// every owned field, including the status description. It never
// touches Body.
func (r *Response) Release() {
	if r == nil {
		return
	}
	releaseHeaders(r.Headers)
	r.Headers = nil
	r.Status = StatusLine{}
}
