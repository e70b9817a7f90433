package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var errTrailingData = errors.New("trailing data after document")

// JSON stores one indented JSON document per file.
type JSON[V any] struct{}

// Encode writes v as indented JSON.
func (JSON[V]) Encode(w io.Writer, v V) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// Decode reads exactly one JSON document; anything after it is an error.
// Numbers decoded into interface values keep their exact digits as json.Number.
func (JSON[V]) Decode(r io.Reader) (V, error) {
	var v V
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		var zero V
		return zero, fmt.Errorf("json decode: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		var zero V
		if err != nil {
			return zero, fmt.Errorf("json decode: %w", err)
		}
		return zero, fmt.Errorf("json decode: %w", errTrailingData)
	}
	return v, nil
}

var _ Codec[any] = JSON[any]{}
