// Command httpget fetches a URL over HTTP/1.1 and writes the response
// body to stdout, to a file (-o), or into a directory (-d) under a
// name derived from the URL path.
//
// Usage: httpget [-p PORT] [-o FILE | -d DIR] URL
//
// Exit codes: 0 success, 1 generic failure, 2 protocol error,
// 3 non-200 response.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/aschl/httpwire/http11"
	"github.com/aschl/httpwire/internal/obs"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitProtocol = 2
	exitStatus   = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("httpget", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	port := fs.String("p", "80", "remote port")
	outFile := fs.String("o", "", "write response body to FILE")
	outDir := fs.String("d", "", "write response body into DIR")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 ||
		(*outFile != "" && *outDir != "") || !validPort(*port) {
		fmt.Fprintf(os.Stderr, "Usage: httpget [-p PORT] [ -o FILE | -d DIR ] URL\n")
		return exitFailure
	}

	zl, err := zap.NewDevelopment(zap.WithCaller(false))
	if err != nil {
		fmt.Fprintf(os.Stderr, "httpget: %v\n", err)
		return exitFailure
	}
	defer zl.Sync()
	log := obs.NewZapLogger(zl, obs.Info)

	host, path, err := splitURL(fs.Arg(0))
	if err != nil {
		log.Logf(obs.Error, "invalid URL: %v", err)
		return exitFailure
	}

	out := stdout
	if *outFile != "" || *outDir != "" {
		name := *outFile
		if name == "" {
			name = outputPath(*outDir, path)
		}
		f, err := os.Create(name)
		if err != nil {
			log.Logf(obs.Error, "open output: %v", err)
			return exitFailure
		}
		defer f.Close()
		out = f
	}

	s, err := http11.Dial(host, *port)
	if err != nil {
		log.Logf(obs.Error, "connect: %v", err)
		return exitFailure
	}
	defer s.Close()

	req := &http11.Request{
		Method:  http11.GET,
		Path:    path,
		Headers: []http11.Header{{Key: "Host", Value: host}},
	}
	if err := http11.SendRequest(s, req); err != nil {
		log.Logf(obs.Error, "send request: %v", err)
		return exitFailure
	}

	res, err := http11.ReceiveResponse(s)
	if err != nil {
		if errors.Is(err, http11.ErrProtocol) {
			log.Logf(obs.Error, "protocol error")
			return exitProtocol
		}
		log.Logf(obs.Error, "receive response: %v", err)
		return exitFailure
	}
	defer res.Release()

	if res.Status.Code != 200 {
		fmt.Fprintf(os.Stderr, "%d %s\n", res.Status.Code, res.Status.Description)
		return exitStatus
	}

	// The parser leaves the stream at the first body byte.
	if _, err := io.CopyBuffer(out, s, make([]byte, 1024)); err != nil {
		log.Logf(obs.Error, "copy body: %v", err)
		return exitFailure
	}
	return exitOK
}
