package codec

import (
	"bytes"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/crypto/blake2b"
)

const (
	// frameMagic identifies the frame format and its version.
	frameMagic = "UST1"

	frameHeaderSize = len(frameMagic) + 4
	frameSumSize    = blake2b.Size256
)

// ErrCorruptFrame is returned when a frame is truncated, altered or not a frame at all.
var ErrCorruptFrame = errors.New("corrupt frame")

// Framed wraps Inner's output as magic | uint32 BE length | payload | BLAKE2b-256(payload).
type Framed[V any] struct {
	Inner Codec[V]
}

// Encode buffers the inner encoding and writes it as a single frame.
func (f Framed[V]) Encode(w io.Writer, v V) error {
	var payload bytes.Buffer
	if err := f.Inner.Encode(&payload, v); err != nil {
		return err
	}
	if uint64(payload.Len()) > math.MaxUint32 {
		return fmt.Errorf("frame payload too large: %d bytes", payload.Len())
	}

	var hdr [frameHeaderSize]byte
	copy(hdr[:], frameMagic)
	binary.BigEndian.PutUint32(hdr[len(frameMagic):], uint32(payload.Len()))
	sum := blake2b.Sum256(payload.Bytes())

	for _, b := range [][]byte{hdr[:], payload.Bytes(), sum[:]} {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Decode verifies the frame and hands the payload to Inner.
func (f Framed[V]) Decode(r io.Reader) (V, error) {
	var zero V

	b, err := io.ReadAll(r)
	if err != nil {
		return zero, err
	}
	payload, err := openFrame(b)
	if err != nil {
		return zero, err
	}
	return f.Inner.Decode(bytes.NewReader(payload))
}

// openFrame returns the payload of a well-formed frame.
func openFrame(b []byte) ([]byte, error) {
	if len(b) < frameHeaderSize+frameSumSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than a frame", ErrCorruptFrame, len(b))
	}
	if string(b[:len(frameMagic)]) != frameMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptFrame)
	}
	n := binary.BigEndian.Uint32(b[len(frameMagic):frameHeaderSize])
	if uint64(len(b)) != uint64(frameHeaderSize)+uint64(n)+uint64(frameSumSize) {
		return nil, fmt.Errorf("%w: length %d does not match %d byte file", ErrCorruptFrame, n, len(b))
	}
	payload := b[frameHeaderSize : frameHeaderSize+int(n)]
	sum := blake2b.Sum256(payload)
	if subtle.ConstantTimeCompare(sum[:], b[frameHeaderSize+int(n):]) != 1 {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptFrame)
	}
	return payload, nil
}

var _ Codec[any] = Framed[any]{}
