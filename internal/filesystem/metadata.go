package filesystem

import (
	"fmt"
	"log/slog"

	"github.com/ccin2p3/fist/internal/schema"
	"golang.org/x/sys/unix"
)

// Metadata takes the [schema.Metadata] snapshot for a single path, without
// following a final symbolic link.
//
// For symbolic links the link target text is resolved as well; a failure to
// read the target is recoverable and leaves the target empty, so the object
// is still emitted downstream.
func (f *Handler) Metadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-metadata) failed to lstat: %w", err)
	}

	metadata := fromStat(&stat)

	if metadata.IsSymlink {
		symlinkTarget, err := f.osHandler.Readlink(path)
		if err != nil {
			slog.Warn("Unable to read link target", "path", path, "err", err)
		} else {
			metadata.LinkTarget = symlinkTarget
		}
	}

	return metadata, nil
}

// ResolvedMetadata takes the [schema.Metadata] snapshot of what a path
// resolves to, following a final symbolic link. It answers what a process
// switching into the path would land on.
func (f *Handler) ResolvedMetadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Stat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-metadata) failed to stat: %w", err)
	}

	return fromStat(&stat), nil
}

func fromStat(stat *unix.Stat_t) *schema.Metadata {
	return &schema.Metadata{
		Blocks:    uint64(stat.Blocks),
		Mode:      uint32(stat.Mode),
		Nlink:     uint64(stat.Nlink),
		UID:       stat.Uid,
		GID:       stat.Gid,
		Size:      uint64(stat.Size),
		Mtime:     int64(stat.Mtim.Sec),
		Atime:     int64(stat.Atim.Sec),
		Ctime:     int64(stat.Ctim.Sec),
		Dev:       uint64(stat.Dev),
		IsDir:     (uint32(stat.Mode) & unix.S_IFMT) == unix.S_IFDIR,
		IsSymlink: (uint32(stat.Mode) & unix.S_IFMT) == unix.S_IFLNK,
	}
}
