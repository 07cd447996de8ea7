// Package http11 implements a minimal HTTP/1.1 message framing and
// transport layer shared by a client and a server: opening TCP
// connections, serializing request/response messages onto a byte
// stream, and parsing them back into structured form.
//
// The package deliberately supports a narrow slice of the protocol:
// one message per connection (every message carries Connection:
// close), Content-Length framing only, no chunked transfer encoding,
// no keep-alive, no TLS, IPv4 only. Request lines must terminate in
// exactly CR LF: the version token is matched against the literal
// "HTTP/1.1\r\n", so other line-ending conventions are rejected as
// protocol errors. Parsing stops after the header block; the stream
// is left positioned at the first body byte and body consumption is
// the caller's responsibility.
//
// Quick start (client):
//
//	s, err := http11.Dial("example.com", "80")
//	if err != nil { log.Fatal(err) }
//	defer s.Close()
//	req := &http11.Request{Method: http11.GET, Path: "/",
//		Headers: []http11.Header{{Key: "Host", Value: "example.com"}}}
//	if err := http11.SendRequest(s, req); err != nil { log.Fatal(err) }
//	res, err := http11.ReceiveResponse(s)
//	if err != nil { log.Fatal(err) }
//	defer res.Release()
//	io.Copy(os.Stdout, s)
//
// Quick start (server):
//
//	ln, err := http11.Listen("8080")
//	if err != nil { log.Fatal(err) }
//	for {
//		s, err := http11.Accept(ln)
//		if err != nil { continue }
//		req, err := http11.ReceiveRequest(s)
//		...
//		s.Close()
//	}
package http11
