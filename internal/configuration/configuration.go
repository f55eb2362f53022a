// Package configuration resolves the optional diagnostics tuning from an
// environment-style file and the process environment. None of it ever
// affects the record stream on standard output; only stderr behavior and
// the emission order are tunable.
package configuration

import (
	"os"
	"strconv"
)

type envProvider interface {
	Read(filenames ...string) (map[string]string, error)
}

// Settings holds the resolved diagnostics tuning.
type Settings struct {
	// Verbose swaps the wire-format diagnostics handler for a timestamped,
	// leveled debug handler on stderr.
	Verbose bool

	// SortEntries orders every directory listing byte-lexicographically, for
	// deterministic output across runs.
	SortEntries bool

	// Summary emits an end-of-walk object and size summary on stderr.
	Summary bool
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	envHandler envProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(envHandler envProvider) *Handler {
	return &Handler{
		envHandler: envHandler,
	}
}

// Load resolves [Settings] from the given optional files, with the process
// environment taking precedence. Missing or unreadable files are simply
// skipped; the zero [Settings] is the documented default behavior.
func (c *Handler) Load(filenames ...string) Settings {
	fileEnv := make(map[string]string)

	for _, filename := range filenames {
		values, err := c.envHandler.Read(filename)
		if err != nil {
			continue
		}
		for key, value := range values {
			fileEnv[key] = value
		}
	}

	lookup := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}

		return fileEnv[key]
	}

	return Settings{
		Verbose:     isTruthy(lookup("FIST_VERBOSE")),
		SortEntries: isTruthy(lookup("FIST_SORT_ENTRIES")),
		Summary:     isTruthy(lookup("FIST_SUMMARY")),
	}
}

func isTruthy(value string) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}

	return parsed
}
