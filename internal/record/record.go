// Package record implements the deterministic projection of one filesystem
// object's metadata into a single machine-parseable output line.
//
// The line grammar holds exactly 9 leading colon-separated numeric fields, in
// "find -ls" order with atime and ctime inserted before the name:
//
//	blocks_kib:mode_octal:nlink:uid:gid:size:mtime:atime:ctime:path
//
// followed by " -> target" for symbolic links. The path and target are
// percent-encoded; the device id and inode number are never emitted.
package record

import (
	"strconv"
	"strings"

	"github.com/ccin2p3/fist/internal/encoding"
	"github.com/ccin2p3/fist/internal/schema"
)

const fieldCount = 10

// Line renders the record for one object. The encodedPath is the fully
// percent-encoded output path composed by the caller; for symlinks, the link
// target is encoded and appended, even when a recoverable failure left the
// target empty.
func Line(metadata *schema.Metadata, encodedPath string) string {
	fields := make([]string, 0, fieldCount)

	fields = append(fields,
		strconv.FormatUint(KiBBlocks(metadata.Blocks), 10),
		strconv.FormatUint(uint64(metadata.Mode), 8),
		strconv.FormatUint(metadata.Nlink, 10),
		strconv.FormatUint(uint64(metadata.UID), 10),
		strconv.FormatUint(uint64(metadata.GID), 10),
		strconv.FormatUint(metadata.Size, 10),
		strconv.FormatUint(uint64(metadata.Mtime), 10),
		strconv.FormatUint(uint64(metadata.Atime), 10),
		strconv.FormatUint(uint64(metadata.Ctime), 10),
		encodedPath,
	)

	line := strings.Join(fields, ":")

	if metadata.IsSymlink {
		line += " -> " + encoding.Encode(metadata.LinkTarget)
	}

	return line + "\n"
}

// KiBBlocks converts an allocated 512-byte block count to kibibyte units,
// rounding a trailing half-unit up.
func KiBBlocks(blocks uint64) uint64 {
	return (blocks + 1) >> 1
}

// ChildPath composes the output path of a directory entry from its parent's
// already-encoded path and its raw base name. Each path segment is encoded
// exactly once, at the level that appends it.
func ChildPath(encodedParent, name string) string {
	return encodedParent + "/" + encoding.Encode(name)
}
