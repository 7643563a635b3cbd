package suite

import (
	"fmt"
	"os"
)

// Load reads and parses the suite file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load suite: %w", err)
	}
	f, err := Parse(path, string(data))
	if err != nil {
		return nil, fmt.Errorf("load suite: %w", err)
	}
	return f, nil
}
