package main

import (
	"path/filepath"
	"testing"
)

func TestSplitURL(t *testing.T) {
	cases := []struct {
		raw, host, path string
	}{
		{"http://example.com/index.html", "example.com", "/index.html"},
		{"http://example.com", "example.com", ""},
		{"http://example.com/", "example.com", "/"},
		{"http://example.com/a/b?q=1", "example.com", "/a/b?q=1"},
		{"http://example.com?q=1", "example.com", "?q=1"},
		{"http://user@example.com/x", "user", "@example.com/x"},
	}
	for _, c := range cases {
		host, path, err := splitURL(c.raw)
		if err != nil {
			t.Fatalf("splitURL(%q): %v", c.raw, err)
		}
		if host != c.host || path != c.path {
			t.Fatalf("splitURL(%q) = %q, %q; want %q, %q", c.raw, host, path, c.host, c.path)
		}
	}
}

func TestSplitURL_Invalid(t *testing.T) {
	for _, raw := range []string{"https://example.com", "example.com", "ftp://x", ""} {
		if _, _, err := splitURL(raw); err == nil {
			t.Fatalf("splitURL(%q): expected error", raw)
		}
	}
}

func TestOutputPath(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"/files/page.html", "page.html"},
		{"/files/", "index.html"},
		{"", "index.html"},
		{"/page.html?dark=1", "page.html"},
		{"/?q=1", "index.html"},
		{"/x/y/z.css", "z.css"},
	}
	for _, c := range cases {
		got := outputPath("out", c.path)
		if got != filepath.Join("out", c.want) {
			t.Fatalf("outputPath(out, %q) = %q, want %q", c.path, got, filepath.Join("out", c.want))
		}
	}
}

func TestValidPort(t *testing.T) {
	for _, ok := range []string{"1", "80", "8080", "65535"} {
		if !validPort(ok) {
			t.Fatalf("validPort(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "0", "-1", "65536", "80x", "http"} {
		if validPort(bad) {
			t.Fatalf("validPort(%q) = true", bad)
		}
	}
}
