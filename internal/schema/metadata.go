package schema

// Metadata is a read-only snapshot of one filesystem object's attributes,
// taken at visit time. It exists only for the duration of processing that
// single object and is discarded once its record was emitted.
type Metadata struct {
	// Blocks is the allocated storage in 512-byte units.
	Blocks uint64

	// Mode is the full mode word (object type bits and permission bits).
	Mode uint32

	// Nlink is the hardlink count.
	Nlink uint64

	// UID is the owning user id; it is never resolved to a name.
	UID uint32

	// GID is the owning group id; it is never resolved to a name.
	GID uint32

	// Size is the content size in bytes.
	Size uint64

	// Mtime is the last-modification time in epoch seconds.
	Mtime int64

	// Atime is the last-access time in epoch seconds.
	Atime int64

	// Ctime is the last-status-change time in epoch seconds.
	Ctime int64

	// Dev is the device identifier; it is only used to detect mount-boundary
	// crossings and is never emitted.
	Dev uint64

	// IsDir describes if the object is a directory.
	IsDir bool

	// IsSymlink describes if the object is a symbolic link.
	IsSymlink bool

	// LinkTarget is the link target text for symbolic links; it stays empty
	// when the target could not be read.
	LinkTarget string
}
