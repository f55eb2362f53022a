package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ccin2p3/fist/internal/configuration"
	"github.com/ccin2p3/fist/internal/filesystem"
	"github.com/ccin2p3/fist/internal/schema"
	"github.com/ccin2p3/fist/internal/traversal"
	"github.com/dustin/go-humanize"
)

// App wires the engine to one concrete invocation: a root path, an output
// stream and the resolved settings.
type App struct {
	root     string
	out      io.Writer
	settings configuration.Settings
}

// NewApp returns a pointer to a new [App].
func NewApp(root string, out io.Writer, settings configuration.Settings) *App {
	return &App{
		root:     root,
		out:      out,
		settings: settings,
	}
}

// Launch runs the walk to completion, flushing the record stream before
// returning. Recoverable conditions were already reported on the diagnostic
// stream; the returned error covers only fatal ones.
func (app *App) Launch(ctx context.Context) error {
	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	fsHandler := filesystem.NewHandler(osProvider, unixProvider)

	buffered := bufio.NewWriter(app.out)

	walkHandler := traversal.NewHandler(fsHandler, osProvider, buffered, traversal.Config{
		Sort: app.settings.SortEntries,
	})

	stats, err := walkHandler.Walk(ctx, app.root)

	if ferr := buffered.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("(app) unable to flush records: %w", ferr)
	}

	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	if stats.Skipped > 0 {
		slog.Warn("A problem occurred while traversing", "path", app.root)
	}

	if app.settings.Summary {
		slog.Warn(fmt.Sprintf("Traversed %s objects (%s)",
			humanize.Comma(int64(stats.Objects)), humanize.Bytes(stats.Bytes)))
	}

	return nil
}
