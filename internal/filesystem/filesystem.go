// Package filesystem implements the metadata extractor. It reads the POSIX
// per-object attributes of a single filesystem entry, without dereferencing
// the final symbolic link, into a [schema.Metadata] snapshot.
package filesystem

import (
	"golang.org/x/sys/unix"
)

type osProvider interface {
	Readlink(name string) (string, error)
}

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
	Stat(path string, stat *unix.Stat_t) error
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}
