package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider reads env-style files through the godotenv library.
type GodotenvProvider struct{}

// Read parses the given files into a single key-value map; later files win
// on duplicate keys.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return data, fmt.Errorf("(config-godotenv) %w", err)
	}

	return data, nil
}
