// Package traversal implements the depth-first, mount-bounded enumeration of
// a directory subtree. For every object it takes the metadata snapshot, emits
// one record line onto the output stream and descends into qualifying
// subdirectories.
//
// The engine drives an explicit work stack instead of native recursion, so
// the call stack never grows with tree depth; a directory handle is closed
// right after its listing was read, keeping at most one handle open at any
// time.
package traversal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/ccin2p3/fist/internal/encoding"
	"github.com/ccin2p3/fist/internal/record"
	"github.com/ccin2p3/fist/internal/schema"
	"golang.org/x/sys/unix"
)

type metadataProvider interface {
	Metadata(path string) (*schema.Metadata, error)
	ResolvedMetadata(path string) (*schema.Metadata, error)
}

type osProvider interface {
	OpenDir(name string) (schema.Directory, error)
}

// Config holds the engine settings.
type Config struct {
	// Sort orders every directory's entries byte-lexicographically before
	// scheduling, for deterministic output. Off by default; the record set is
	// the same either way, only the emission order changes.
	Sort bool

	// MaxPathLen bounds constructed child paths; longer subtrees are
	// abandoned with a recoverable warning. Defaults to [unix.PathMax].
	MaxPathLen int
}

// Stats accumulates the outcome of one walk, for diagnostic summaries.
type Stats struct {
	// Objects is the number of records emitted.
	Objects uint64

	// Bytes is the summed content size of all emitted objects.
	Bytes uint64

	// Skipped counts entries and subtrees abandoned after recoverable
	// failures.
	Skipped uint64
}

// frame is one scheduled object: its raw filesystem path and the fully
// percent-encoded output path it will be emitted under.
type frame struct {
	path        string
	encodedPath string
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	fsHandler metadataProvider
	osHandler osProvider
	out       io.Writer
	config    Config
}

// NewHandler returns a pointer to a new [Handler] writing records to out.
func NewHandler(fsHandler metadataProvider, osHandler osProvider, out io.Writer, config Config) *Handler {
	if config.MaxPathLen <= 0 {
		config.MaxPathLen = unix.PathMax
	}

	return &Handler{
		fsHandler: fsHandler,
		osHandler: osHandler,
		out:       out,
		config:    config,
	}
}

// Walk visits root and every object reachable by descending into directories
// on root's own device, emitting one record per object in depth-first order.
//
// A failure on root itself, a write failure on the output stream or context
// cancellation abort the walk with an error; every other failure skips the
// affected entry or subtree, is reported as a warning and leaves the rest of
// the walk untouched.
func (t *Handler) Walk(ctx context.Context, root string) (Stats, error) {
	var stats Stats

	rootMeta, err := t.fsHandler.Metadata(root)
	if err != nil {
		return stats, fmt.Errorf("(walk) unable to lstat %q: %w", root, err)
	}

	// The device id of the root fixes the containment boundary for the whole
	// walk; it is read-only from here on.
	rootDev := rootMeta.Dev

	// A symlink root is followed once, the way a process switching into the
	// argument would be: the link's own record is still emitted in arrow
	// form, the walk runs over the resolved directory and that directory's
	// device fixes the containment boundary. Anything else that is not a
	// directory has nothing to descend into and is fatal.
	if rootMeta.IsSymlink {
		resolved, err := t.fsHandler.ResolvedMetadata(root)
		if err != nil {
			return stats, fmt.Errorf("(walk) unable to stat %q: %w", root, err)
		}

		if !resolved.IsDir {
			return stats, fmt.Errorf("(walk) %q: %w", root, ErrNotDirectory)
		}

		rootDev = resolved.Dev
	} else if !rootMeta.IsDir {
		return stats, fmt.Errorf("(walk) %q: %w", root, ErrNotDirectory)
	}

	// The explicit root argument is always emitted, even when it is named
	// "." or "..".
	encodedRoot := encoding.Encode(root)
	if err := t.emit(rootMeta, encodedRoot, &stats); err != nil {
		return stats, err
	}

	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("(walk) aborted: %w", err)
	}

	pending := newStack[frame]()
	t.descend(pending, root, encodedRoot, &stats)

	for {
		entry, ok := pending.Pop()
		if !ok {
			break
		}

		metadata, err := t.fsHandler.Metadata(entry.path)
		if err != nil {
			slog.Warn("Unable to lstat", "path", entry.path, "err", err)
			stats.Skipped++

			continue
		}

		if err := t.emit(metadata, entry.encodedPath, &stats); err != nil {
			return stats, err
		}

		// Descend only into directories proper on the root's device;
		// symlinks are never dereferenced for this decision.
		if metadata.IsDir && metadata.Dev == rootDev {
			if err := ctx.Err(); err != nil {
				return stats, fmt.Errorf("(walk) aborted: %w", err)
			}

			t.descend(pending, entry.path, entry.encodedPath, &stats)
		}
	}

	return stats, nil
}

// descend lists one directory and schedules its children, pushing them in
// reverse so they pop in listing order. Every failure in here is recoverable:
// the directory's own record was already emitted and entries read before a
// listing failure are still visited.
func (t *Handler) descend(pending *stack[frame], dir, encodedDir string, stats *Stats) {
	handle, err := t.osHandler.OpenDir(dir)
	if err != nil {
		slog.Warn("Unable to open directory", "path", dir, "err", err)
		stats.Skipped++

		return
	}

	names, err := handle.Readdirnames(-1)

	if cerr := handle.Close(); cerr != nil {
		slog.Warn("Error while closing directory", "path", dir, "err", cerr)
	}

	if err != nil {
		slog.Warn("Unable to list directory", "path", dir, "err", err)
		stats.Skipped++
	}

	if t.config.Sort {
		slices.Sort(names)
	}

	for i := len(names) - 1; i >= 0; i-- {
		name := names[i]

		// Self and parent pseudo-entries carry no new information. The
		// listing primitive already omits them; skipping here keeps the
		// invariant independent of that primitive.
		if name == "." || name == ".." {
			continue
		}

		childPath := dir + "/" + name
		if len(childPath) >= t.config.MaxPathLen {
			slog.Warn("Constructed path too long", "path", childPath)
			stats.Skipped++

			continue
		}

		pending.Push(frame{
			path:        childPath,
			encodedPath: record.ChildPath(encodedDir, name),
		})
	}
}

func (t *Handler) emit(metadata *schema.Metadata, encodedPath string, stats *Stats) error {
	if _, err := io.WriteString(t.out, record.Line(metadata, encodedPath)); err != nil {
		return fmt.Errorf("(walk) unable to write record: %w", err)
	}

	stats.Objects++
	stats.Bytes += metadata.Size

	return nil
}
