// Package jsondoc persists whole JSON documents on disk. Every read loads the
// full document and every write rewrites it; the on-disk file is always the
// authoritative copy.
package jsondoc

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load returns the document parsed from path, or def verbatim when the file
// does not exist yet. Any other failure (unreadable file, malformed JSON)
// propagates to the caller.
func Load[T any](path string, def T) (T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return def, nil
		}
		var zero T
		return zero, fmt.Errorf("read %s: %w", path, err)
	}

	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		var zero T
		return zero, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Save serializes doc in full and overwrites path. No temp-file rename and no
// backup of the previous version: a failed write can leave a truncated file.
func Save[T any](path string, doc T) error {
	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
