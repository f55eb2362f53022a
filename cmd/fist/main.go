package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ccin2p3/fist/internal/configuration"
	"github.com/ccin2p3/fist/internal/diagnostics"
	"github.com/lmittmann/tint"
)

const (
	exitCodeSuccess = 0
	exitCodeFailure = 1

	envFile = "fist.env"
)

//nolint:gochecknoglobals
var (
	ExitCode = exitCodeSuccess
	Version  string
)

func setupLogging(settings configuration.Settings) {
	if settings.Verbose {
		slog.SetDefault(slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{
				Level:      slog.LevelDebug,
				TimeFormat: time.Kitchen,
			}),
		))

		return
	}

	slog.SetDefault(slog.New(diagnostics.NewHandler(os.Stderr, slog.LevelWarn)))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

// run validates the positional arguments and drives one invocation, writing
// records to out. It returns the process exit code: sub-entry failures are
// reported on the diagnostic stream only and do not change it.
func run(ctx context.Context, args []string, out io.Writer, settings configuration.Settings) int {
	if len(args) != 1 {
		slog.Error(`Absolute directory name or "." argument required`)

		return exitCodeFailure
	}

	app := NewApp(args[0], out, settings)

	if err := app.Launch(ctx); err != nil {
		slog.Error("Unable to traverse", "path", args[0], "err", err)

		return exitCodeFailure
	}

	return exitCodeSuccess
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})
	settings := configHandler.Load(envFile)

	setupLogging(settings)
	setupSignalHandlers(cancel)

	ExitCode = run(ctx, os.Args[1:], os.Stdout, settings)
}
