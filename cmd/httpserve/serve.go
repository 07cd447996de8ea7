package main

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/aschl/httpwire/http11"
	"github.com/aschl/httpwire/internal/obs"
)

type server struct {
	docRoot string
	index   string
	log     obs.Logger
	meter   *obs.CountMeter
}

// run is the iterative accept loop. The stop flag is the only shutdown
// input and is read exactly once per iteration, before blocking in
// Accept. An accept failure caused by the closed listener is the
// "try the loop again" case; the flag then ends the loop.
func (sv *server) run(ln *net.TCPListener, stop *atomic.Bool) {
	for !stop.Load() {
		s, err := http11.Accept(ln)
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				sv.log.Logf(obs.Error, "accept: %v", err)
			}
			continue
		}
		sv.handle(s)
	}
}

// handle runs one full exchange to completion. Errors on a single
// connection never propagate past it.
func (sv *server) handle(s *http11.Stream) {
	defer s.Close()

	req, err := http11.ReceiveRequest(s)
	if err != nil {
		switch {
		case errors.Is(err, http11.ErrProtocol) || errors.Is(err, http11.ErrHeadersTooMany):
			sv.log.Logf(obs.Warn, "malformed request: %v", err)
			sv.meter.Counter("httpserve_requests_malformed", 1)
			// Realign to the end of the head so the 400 is not
			// interleaved with unread request bytes.
			_ = http11.DiscardHead(s)
			sv.reply(s, status(400, "Bad Request"))
		case errors.Is(err, http11.ErrConnClosed):
			sv.meter.Counter("httpserve_requests_aborted", 1)
		default:
			sv.log.Logf(obs.Error, "receive request: %v", err)
			sv.meter.Counter("httpserve_requests_error", 1)
		}
		return
	}
	defer req.Release()
	sv.meter.Counter("httpserve_requests_total", 1)

	if req.Method != http11.GET {
		sv.reply(s, status(501, "Not Implemented"))
		return
	}

	path := sv.resolve(req.Path)
	f, err := os.Open(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			sv.reply(s, status(404, "Not Found"))
		case errors.Is(err, fs.ErrPermission):
			sv.reply(s, status(403, "Forbidden"))
		default:
			sv.log.Logf(obs.Error, "open %s: %v", path, err)
			sv.reply(s, status(500, "Internal Server Error"))
		}
		return
	}
	defer f.Close()

	var hs []http11.Header
	if mime := mimeByExt(path); mime != "" {
		hs = []http11.Header{{Key: "Content-Type", Value: mime}}
	}
	sv.log.Logf(obs.Info, "GET %s -> %s", req.Path, path)
	sv.reply(s, &http11.Response{
		Status:  http11.StatusLine{Code: 200, Description: "OK"},
		Headers: hs,
		Body:    f,
	})
}

// reply sends a response and counts the outcome.
func (sv *server) reply(s *http11.Stream, res *http11.Response) {
	if err := http11.SendResponse(s, res); err != nil {
		sv.log.Logf(obs.Error, "send response: %v", err)
		sv.meter.Counter("httpserve_responses_error", 1)
		return
	}
	sv.meter.Counter("httpserve_responses_total", 1)
	sv.meter.Counter("httpserve_responses_"+strconv.Itoa(res.Status.Code), 1)
}

// status builds a bodyless response.
func status(code int, desc string) *http11.Response {
	return &http11.Response{Status: http11.StatusLine{Code: code, Description: desc}}
}

// resolve maps a request target onto the document root. An empty
// target or one ending in a slash falls back to the index file.
func (sv *server) resolve(p string) string {
	switch {
	case p == "":
		return filepath.Join(sv.docRoot, sv.index)
	case strings.HasSuffix(p, "/"):
		return filepath.Join(sv.docRoot, p, sv.index)
	default:
		return filepath.Join(sv.docRoot, p)
	}
}

// mimeByExt maps the small fixed extension table onto Content-Type
// values. Unknown extensions get no header at all.
func mimeByExt(path string) string {
	switch filepath.Ext(path) {
	case ".html", ".htm":
		return "text/html"
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	default:
		return ""
	}
}

func validPort(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n > 0 && n < 1<<16
}
