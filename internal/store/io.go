package store

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"userstore/internal/codec"
)

// fileMode is applied to every record file.
const fileMode os.FileMode = 0o600

// readRecord opens path and decodes a single record from it.
func readRecord[V any](path string, c codec.Codec[V]) (V, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero V
		return zero, err
	}
	defer f.Close()

	return c.Decode(bufio.NewReader(f))
}

// writeAtomic streams encode into a temp file beside path, then renames it over path.
// The target is untouched unless every step succeeds.
func writeAtomic(path string, mode os.FileMode, encode func(io.Writer) error) (err error) {
	tmp := filepath.Join(filepath.Dir(path), filepath.Base(path)+".tmp-"+uuid.NewString())

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}
	// Best-effort cleanup if anything fails before rename.
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err = encode(w); err != nil {
		_ = f.Close()
		return err
	}
	if err = w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// removeFile deletes path; a file that is already gone is not an error.
func removeFile(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
