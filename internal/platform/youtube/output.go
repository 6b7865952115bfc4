package youtube

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// writeOutput emits the collected entries as an indented JSON array, to the
// given path or to stdout when path is empty. Logs go to stderr, so stdout
// stays machine-readable.
func writeOutput(path string, videos []VideoEntry) error {
	if videos == nil {
		videos = []VideoEntry{}
	}

	out := os.Stdout
	if path != "" {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(videos)
}
