package encoding

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAMLStrict decodes YAML data into the specified value, rejecting
// fields that don't exist in the target structure. Empty documents leave the
// value untouched.
func UnmarshalYAMLStrict(data []byte, value any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(value); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadAndUnmarshalYAML loads data from the specified path and decodes it into
// the specified structure.
func LoadAndUnmarshalYAML(path string, value any) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		return UnmarshalYAMLStrict(data, value)
	})
}
