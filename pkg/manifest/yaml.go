package manifest

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// ParseError reports a document that could not be parsed or shaped into a
// Manifest, with best-effort location information.
type ParseError struct {
	File    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s: line %d: %s", e.File, e.Line, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	default:
		return e.Message
	}
}

// yaml.v3 embeds positions in its error text; recover the first one.
var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

func newParseError(file string, err error) *ParseError {
	line := 0
	if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
		line, _ = strconv.Atoi(m[1])
	}
	return &ParseError{File: file, Line: line, Message: err.Error()}
}

// Load reads a YAML manifest from path. It returns the typed manifest
// together with the raw top-level mapping, which validation uses for
// unknown-field detection (MANIFEST-W02).
func Load(path string) (*Manifest, map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Parse(data, path)
}

// Parse decodes YAML manifest bytes. The file argument is used only for
// error messages.
func Parse(data []byte, file string) (*Manifest, map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, newParseError(file, err)
	}
	if raw == nil {
		return nil, nil, &ParseError{File: file, Line: 1, Message: "empty document"}
	}

	m, err := Decode(raw)
	if err != nil {
		return nil, nil, newParseError(file, err)
	}
	return m, raw, nil
}

// Decode shapes a raw key/value mapping into a typed Manifest. Unknown keys
// are tolerated (they surface later as MANIFEST-W02 warnings); wrong value
// types are rejected here, before validation ever runs.
func Decode(raw map[string]any) (*Manifest, error) {
	var m Manifest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &m,
		TagName:    "yaml",
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid manifest structure: %w", err)
	}
	m.Settings.applyDefaults()
	return &m, nil
}

// Marshal serializes a manifest to YAML with stable key order. A settings
// section equal to the conventional defaults is omitted.
func Marshal(m *Manifest) ([]byte, error) {
	out := *m
	if out.Settings.IsDefault() {
		out.Settings = Settings{}
	}
	return yaml.Marshal(&out)
}

// Save writes a manifest to path as YAML.
func Save(m *Manifest, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
