package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

// Load reads and strictly decodes the application config. Unknown fields and
// trailing tokens are rejected so typos fail loudly instead of silently
// disabling features.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := decodeFile(path, &cfg); err != nil {
		return nil, err
	}
	cfg.withDefaults()
	return &cfg, nil
}

// decodeFile strictly decodes a YAML or JSON file into out. YAML input is
// re-marshaled to JSON first so one strict decoder (DisallowUnknownFields)
// covers both formats.
func decodeFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		var v any
		if err := yaml.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("%s: yaml unmarshal: %w", path, err)
		}
		if b, err = json.Marshal(stringifyKeys(v)); err != nil {
			return fmt.Errorf("%s: yaml->json marshal: %w", path, err)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	// reject trailing tokens (e.g. concatenated JSON)
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("%s: trailing data", path)
		}
		return err
	}
	return nil
}

// stringifyKeys forces every map key to a string so decoded YAML survives
// json.Marshal (yaml.v3 yields map[any]any for non-string keys).
func stringifyKeys(in any) any {
	switch x := in.(type) {
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = stringifyKeys(v)
		}
		return m
	case map[string]any:
		for k, v := range x {
			x[k] = stringifyKeys(v)
		}
		return x
	case []any:
		for i := range x {
			x[i] = stringifyKeys(x[i])
		}
		return x
	default:
		return in
	}
}

func hashDocument(doc *Document) uint64 {
	if doc == nil {
		return 0
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}
