package traversal

import "errors"

// ErrNotDirectory occurs when the traversal root is not a directory and
// there is nothing to descend into.
var ErrNotDirectory = errors.New("not a directory")
