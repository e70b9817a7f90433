package codec

import (
	"fmt"
	"io"
)

// Codec encodes values of type V to a writer and decodes them from a reader.
type Codec[V any] interface {
	Encode(w io.Writer, v V) error
	Decode(r io.Reader) (V, error)
}

// Names accepted by ByName.
const (
	NameJSON = "json"
	NameYAML = "yaml"
)

// ByName returns the codec registered under name, optionally wrapped in a Framed codec.
func ByName[V any](name string, framed bool) (Codec[V], error) {
	var c Codec[V]
	switch name {
	case NameJSON, "":
		c = JSON[V]{}
	case NameYAML:
		c = YAML[V]{}
	default:
		return nil, fmt.Errorf("unknown codec %q (want %q or %q)", name, NameJSON, NameYAML)
	}
	if framed {
		c = Framed[V]{Inner: c}
	}
	return c, nil
}
