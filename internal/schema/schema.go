// Package schema provides the principal schematics for all other packages. It
// defines the filesystem metadata snapshot, the directory-listing interface
// and implementations wrapping the (Unix-based) operating system syscalls.
// The package serves as a foundational layer for filesystem interactions
// throughout the codebase.
package schema

// Directory describes the subset of an open directory handle that is needed
// for listing its entries. [os.File] satisfies it.
type Directory interface {
	Readdirnames(n int) ([]string, error)
	Close() error
}
