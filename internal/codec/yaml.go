package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML stores one YAML document per file.
type YAML[V any] struct{}

// Encode writes v as a YAML document with two-space indentation.
func (YAML[V]) Encode(w io.Writer, v V) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return nil
}

// Decode reads the first YAML document. An empty input is an error.
func (YAML[V]) Decode(r io.Reader) (V, error) {
	var v V
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		var zero V
		return zero, fmt.Errorf("yaml decode: %w", err)
	}
	return v, nil
}

var _ Codec[any] = YAML[any]{}
