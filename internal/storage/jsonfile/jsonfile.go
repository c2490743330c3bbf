// Package jsonfile reads and writes whole-object JSON files.
//
// There is no locking and no temp-file swap: Save rewrites the target in place.
// Callers that need exclusive access to a record serialize above this layer.
package jsonfile

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-sim/internal/errors"
)

const indent = "  "

// Load decodes the JSON file at path into v.
// Returns errors.NotFound for a missing file, errors.Malformed for undecodable
// content and errors.IO for any other read failure.
func Load(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("json file missing", "path", path)
			return errors.NotFoundf("file %s not found", path).WithMeta("path", path)
		}
		slog.Error("failed to read json file", "path", path, "error", err.Error())
		return errors.WrapWithCodef(err, errors.CodeIO, "failed to read %s", path).WithMeta("path", path)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		slog.Error("failed to parse json file", "path", path, "error", err.Error())
		return errors.WrapWithCodef(err, errors.CodeMalformed, "failed to parse %s", path).WithMeta("path", path)
	}

	return nil
}

// Save writes v to path as 2-space indented JSON, creating parent directories.
func Save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeMalformed, "failed to encode %s", path).WithMeta("path", path)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		slog.Error("failed to create directory", "path", path, "error", err.Error())
		return errors.WrapWithCodef(err, errors.CodeIO, "failed to create directory for %s", path).WithMeta("path", path)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		slog.Error("failed to write json file", "path", path, "error", err.Error())
		return errors.WrapWithCodef(err, errors.CodeIO, "failed to write %s", path).WithMeta("path", path)
	}

	return nil
}
