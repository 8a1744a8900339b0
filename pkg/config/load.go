package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/chordsat/chordsat/pkg/lib/codec"
)

// Load returns the defaults overridden by the file at path. YAML and
// JSON files are read with ghodss/yaml, TOML files with BurntSushi/toml.
// An empty path returns the defaults.
func Load(path string) (Parameters, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, errors.Wrap(err, "reading parameters")
	}
	raw, err := parse(filepath.Ext(path), data)
	if err != nil {
		return p, errors.Wrapf(err, "parsing %s", path)
	}
	if err := Decode(raw, &p); err != nil {
		return p, errors.Wrapf(err, "decoding %s", path)
	}
	return p, nil
}

func parse(ext string, data []byte) (map[string]interface{}, error) {
	raw := map[string]interface{}{}
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml", ".json":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unsupported parameter file extension %q", ext)
	}
	return raw, nil
}

// Decode overlays raw onto p. Keys are the json names of the fields;
// unknown keys are an error.
func Decode(raw map[string]interface{}, p *Parameters) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  codec.DurationHookFunc(),
		ErrorUnused: true,
		ZeroFields:  true,
		TagName:     "json",
		Result:      p,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
