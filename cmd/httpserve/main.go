// Command httpserve is a strictly iterative HTTP/1.1 file server: it
// accepts one connection at a time and runs each receive → respond →
// close cycle to completion before accepting the next. A slow peer
// therefore blocks the whole server; that is a documented property of
// the design, not an accident.
//
// Usage: httpserve [-p PORT] [-i INDEX] [-l LOGFILE] DOC_ROOT
//
// SIGINT/SIGTERM request a cooperative shutdown: the flag is consulted
// only between accept iterations, never inside an in-flight exchange.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/aschl/httpwire/http11"
	"github.com/aschl/httpwire/internal/obs"
)

func main() {
	fs := flag.NewFlagSet("httpserve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	port := fs.String("p", "8080", "listen port")
	index := fs.String("i", "index.html", "index file name")
	logFile := fs.String("l", "", "write logs to a rotating file instead of stderr")
	if err := fs.Parse(os.Args[1:]); err != nil || fs.NArg() != 1 || !validPort(*port) {
		fmt.Fprintf(os.Stderr, "Usage: httpserve [-p PORT] [-i INDEX] [-l LOGFILE] DOC_ROOT\n")
		os.Exit(1)
	}

	zl, err := newLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "httpserve: %v\n", err)
		os.Exit(1)
	}
	defer zl.Sync()
	log := obs.NewZapLogger(zl, obs.Info)

	ln, err := http11.Listen(*port)
	if err != nil {
		log.Logf(obs.Error, "open socket: %v", err)
		os.Exit(1)
	}

	var stop atomic.Bool
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		stop.Store(true)
		// Unblocks a pending Accept; the loop sees the flag next.
		ln.Close()
	}()

	sv := &server{
		docRoot: fs.Arg(0),
		index:   *index,
		log:     log,
		meter:   obs.NewCountMeter(),
	}
	sv.run(ln, &stop)
	log.Logf(obs.Info, "shut down after %d requests", int64(sv.meter.Value("httpserve_requests_total")))
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewDevelopment(zap.WithCaller(false))
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 5,
	})
	return zap.New(zapcore.NewCore(enc, sink, zapcore.InfoLevel)), nil
}
