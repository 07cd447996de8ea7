package main

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
)

var errBadURL = errors.New("URL must start with http://")

// splitURL decomposes an http:// URL into host and path. The host
// ends at the first URL delimiter; everything from that character on
// (including a leading slash or query) is the path. No percent
// decoding is performed.
func splitURL(raw string) (host, path string, err error) {
	rest, ok := strings.CutPrefix(raw, "http://")
	if !ok {
		return "", "", errBadURL
	}
	if i := strings.IndexAny(rest, ";/?:@=&"); i >= 0 {
		return rest[:i], rest[i:], nil
	}
	return rest, "", nil
}

// outputPath derives a file name inside dir from the URL path: the
// last path segment with any query stripped, or index.html when the
// path ends in a slash or has no segment.
func outputPath(dir, path string) string {
	name := "index.html"
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		seg := path[i+1:]
		if seg != "" && seg[0] != '?' {
			if j := strings.IndexByte(seg, '?'); j >= 0 {
				seg = seg[:j]
			}
			name = seg
		}
	}
	return filepath.Join(dir, name)
}

func validPort(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n > 0 && n < 1<<16
}
