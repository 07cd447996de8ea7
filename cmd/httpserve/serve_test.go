package main

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aschl/httpwire/http11"
	"github.com/aschl/httpwire/internal/obs"
)

func testServer(t *testing.T) *server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>hi</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	return &server{
		docRoot: dir,
		index:   "index.html",
		log:     obs.NopLogger{},
		meter:   obs.NewCountMeter(),
	}
}

// exchange feeds raw to handle over a pipe and returns everything the
// server wrote back.
func exchange(t *testing.T, sv *server, raw string) string {
	t.Helper()
	c1, c2 := net.Pipe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		sv.handle(http11.NewStream(c1))
	}()
	if _, err := c2.Write([]byte(raw)); err != nil {
		t.Fatal(err)
	}
	out, err := io.ReadAll(c2)
	if err != nil {
		t.Fatal(err)
	}
	<-done
	return string(out)
}

func TestHandle_ServesFile(t *testing.T) {
	sv := testServer(t)
	out := exchange(t, sv, "GET /index.html HTTP/1.1\r\nHost: x\r\n\r\n")
	if !strings.HasPrefix(out, "HTTP/1.1 200 OK\r\n") {
		t.Fatalf("out=%q", out)
	}
	if !strings.Contains(out, "Content-Type: text/html\r\n") {
		t.Fatalf("missing Content-Type: %q", out)
	}
	if !strings.HasSuffix(out, "\r\n\r\n<h1>hi</h1>") {
		t.Fatalf("missing body: %q", out)
	}
	if got := sv.meter.Value("httpserve_responses_200"); got != 1 {
		t.Fatalf("responses_200=%v", got)
	}
}

func TestHandle_IndexFallback(t *testing.T) {
	sv := testServer(t)
	out := exchange(t, sv, "GET / HTTP/1.1\r\n\r\n")
	if !strings.HasPrefix(out, "HTTP/1.1 200 OK\r\n") {
		t.Fatalf("out=%q", out)
	}
	if !strings.HasSuffix(out, "<h1>hi</h1>") {
		t.Fatalf("out=%q", out)
	}
}

func TestHandle_NotFound(t *testing.T) {
	sv := testServer(t)
	out := exchange(t, sv, "GET /missing.html HTTP/1.1\r\n\r\n")
	if !strings.HasPrefix(out, "HTTP/1.1 404 Not Found\r\n") {
		t.Fatalf("out=%q", out)
	}
	if !strings.Contains(out, "Content-Length: 0\r\n") {
		t.Fatalf("out=%q", out)
	}
}

func TestHandle_NotImplemented(t *testing.T) {
	sv := testServer(t)
	out := exchange(t, sv, "POST /index.html HTTP/1.1\r\n\r\n")
	if !strings.HasPrefix(out, "HTTP/1.1 501 Not Implemented\r\n") {
		t.Fatalf("out=%q", out)
	}
}

func TestHandle_MalformedGets400(t *testing.T) {
	sv := testServer(t)
	out := exchange(t, sv, "BOGUS\r\n\r\n")
	if !strings.HasPrefix(out, "HTTP/1.1 400 Bad Request\r\n") {
		t.Fatalf("out=%q", out)
	}
	if got := sv.meter.Value("httpserve_requests_malformed"); got != 1 {
		t.Fatalf("requests_malformed=%v", got)
	}
}

func TestResolve(t *testing.T) {
	sv := &server{docRoot: "/srv/www", index: "index.html"}
	cases := map[string]string{
		"":            filepath.Join("/srv/www", "index.html"),
		"/":           filepath.Join("/srv/www", "index.html"),
		"/sub/":       filepath.Join("/srv/www", "sub", "index.html"),
		"/page.html":  filepath.Join("/srv/www", "page.html"),
		"/a/b/c.css":  filepath.Join("/srv/www", "a", "b", "c.css"),
	}
	for in, want := range cases {
		if got := sv.resolve(in); got != want {
			t.Fatalf("resolve(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMimeByExt(t *testing.T) {
	cases := map[string]string{
		"a.html":  "text/html",
		"a.htm":   "text/html",
		"a.css":   "text/css",
		"a.js":    "application/javascript",
		"a.png":   "",
		"a":       "",
		"a.HTML":  "",
	}
	for in, want := range cases {
		if got := mimeByExt(in); got != want {
			t.Fatalf("mimeByExt(%q) = %q, want %q", in, got, want)
		}
	}
}
