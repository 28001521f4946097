package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	logAdapter "github.com/bft-labs/apiq/internal/adapters/log"
	"github.com/bft-labs/apiq/internal/domain"
)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	root := newRootCmd(&environment{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		isTerminal: stdoutIsTerminal,
		version:    fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
	})

	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		log := logAdapter.NewConsoleLogger(os.Stderr, zerolog.ErrorLevel)
		log.Error().Err(err).Msg("apiq")
		os.Exit(domain.ExitCode(err))
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
