package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON reads a JSON manifest from path, returning the typed manifest and
// the raw top-level mapping.
func LoadJSON(path string) (*Manifest, map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, &ParseError{File: path, Message: err.Error()}
	}

	m, err := Decode(raw)
	if err != nil {
		return nil, nil, &ParseError{File: path, Message: err.Error()}
	}
	return m, raw, nil
}

// MarshalJSON serializes a manifest to indented JSON with a trailing newline.
func MarshalJSON(m *Manifest) ([]byte, error) {
	out := *m
	if out.Settings.IsDefault() {
		out.Settings = Settings{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(&out); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveJSON writes a manifest to path as JSON.
func SaveJSON(m *Manifest, path string) error {
	data, err := MarshalJSON(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
