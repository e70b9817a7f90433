package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"

	"userstore/internal/codec"
	"userstore/internal/domain"
)

// LocalStore persists one record per username as a file in a single directory.
type LocalStore[V any] struct {
	dir       string
	hideFiles bool
	suffix    string
	codec     codec.Codec[V]
	log       *zap.Logger
	match     glob.Glob

	index map[domain.Username]string
	// shadows holds a second file for a username: the loser when both a hidden
	// and a visible file decode, or a superseded file Set could not remove. It is
	// removed by the next Set or Delete.
	shadows map[domain.Username]string
}

// NewLocalStore resolves the root directory, scans it and returns a ready store.
// Files that fail to decode are logged and skipped; they never fail construction.
func NewLocalStore[V any](c codec.Codec[V], opts ...Option) (*LocalStore[V], error) {
	if c == nil {
		return nil, errors.New("store: nil codec")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if strings.ContainsAny(o.suffix, "/\\") {
		return nil, fmt.Errorf("store: suffix %q contains a path separator", o.suffix)
	}

	dir := o.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	match, err := glob.Compile("*" + glob.QuoteMeta(o.suffix))
	if err != nil {
		return nil, fmt.Errorf("store: suffix pattern: %w", err)
	}

	s := &LocalStore[V]{
		dir:       dir,
		hideFiles: o.hideFiles,
		suffix:    o.suffix,
		codec:     c,
		log:       o.logger.With(zap.String("dir", dir)),
		match:     match,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload discards the index and rebuilds it from the directory.
// The index is left unchanged if the directory cannot be listed.
func (s *LocalStore[V]) Reload() error {
	index, shadows, err := s.scan()
	if err != nil {
		return err
	}
	s.index, s.shadows = index, shadows
	return nil
}

// scan lists the directory in name order and indexes every decodable record file.
func (s *LocalStore[V]) scan() (map[domain.Username]string, map[domain.Username]string, error) {
	index := make(map[domain.Username]string)
	shadows := make(map[domain.Username]string)

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("Store directory does not exist, starting empty")
		return index, shadows, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("store: scan %s: %w", s.dir, err)
	}

	for _, e := range entries {
		name := e.Name()
		if !s.match.Match(name) {
			continue
		}
		path := filepath.Join(s.dir, name)

		// Stat follows symlinks so a link to a directory is skipped too.
		info, err := os.Stat(path)
		if err != nil {
			s.log.Warn("Skipping unreadable entry", zap.String("path", path), zap.Error(err))
			continue
		}
		if info.IsDir() {
			continue
		}

		u, ok := s.usernameFor(name)
		if !ok {
			s.log.Warn("Skipping file with unusable name", zap.String("path", path))
			continue
		}
		if _, err := readRecord(path, s.codec); err != nil {
			s.log.Warn("Corrupt record excluded from index",
				zap.String("username", u.String()),
				zap.String("path", path),
				zap.Error(err))
			continue
		}

		prev, seen := index[u]
		if !seen {
			index[u] = path
			continue
		}
		winner, loser := prev, path
		if path == s.pathFor(u) {
			winner, loser = path, prev
		}
		index[u] = winner
		shadows[u] = loser
		s.log.Warn("Hidden and visible records collide, keeping the one matching the visibility policy",
			zap.String("username", u.String()),
			zap.String("kept", winner),
			zap.String("shadowed", loser))
	}

	s.log.Debug("Scanned store directory", zap.Int("records", len(index)))
	return index, shadows, nil
}

// usernameFor derives the username from a record file name, or false if none can be derived.
func (s *LocalStore[V]) usernameFor(name string) (domain.Username, bool) {
	base := strings.TrimSuffix(name, s.suffix)
	u := domain.Username(strings.TrimPrefix(base, domain.HiddenMarker))
	if u.Validate() != nil {
		return "", false
	}
	return u, true
}

// pathFor computes the destination of u under the current visibility policy.
func (s *LocalStore[V]) pathFor(u domain.Username) string {
	prefix := ""
	if s.hideFiles {
		prefix = domain.HiddenMarker
	}
	return filepath.Join(s.dir, prefix+u.String()+s.suffix)
}

// Path returns the file a Set of u would write.
func (s *LocalStore[V]) Path(u domain.Username) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}
	return s.pathFor(u), nil
}

// Dir returns the absolute root directory.
func (s *LocalStore[V]) Dir() string { return s.dir }

// HideFiles reports the visibility policy used for writes.
func (s *LocalStore[V]) HideFiles() bool { return s.hideFiles }

// Len returns the number of indexed usernames.
func (s *LocalStore[V]) Len() int { return len(s.index) }

// Usernames returns the indexed usernames in sorted order.
func (s *LocalStore[V]) Usernames() []domain.Username {
	out := make([]domain.Username, 0, len(s.index))
	for u := range s.index {
		out = append(out, u)
	}
	slices.Sort(out)
	return out
}

// Get decodes the record indexed for u. A file that was corrupted or removed
// after the scan is reported as domain.ErrCorruptEntry and stays indexed.
func (s *LocalStore[V]) Get(u domain.Username) (V, bool, error) {
	var zero V
	if err := u.Validate(); err != nil {
		return zero, false, err
	}

	path, ok := s.index[u]
	if !ok {
		return zero, false, nil
	}
	v, err := readRecord(path, s.codec)
	if err != nil {
		s.log.Error("Failed to read indexed record",
			zap.String("username", u.String()),
			zap.String("path", path),
			zap.Error(err))
		return zero, false, fmt.Errorf("%w: %s: %w", domain.ErrCorruptEntry, path, err)
	}
	return v, true, nil
}

// Set writes v for u, replacing any previous record. The index is only
// updated after the new file is in place.
func (s *LocalStore[V]) Set(u domain.Username, v V) error {
	path, err := s.Path(u)
	if err != nil {
		return err
	}

	err = writeAtomic(path, fileMode, func(w io.Writer) error {
		return s.codec.Encode(w, v)
	})
	if err != nil {
		s.log.Error("Can't save record, operation discarded",
			zap.String("username", u.String()),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%w: %s: %w", domain.ErrWriteFailure, path, err)
	}

	// At most one other file (the opposite visibility) can still hold u.
	stale := ""
	if prev, had := s.index[u]; had && prev != path {
		stale = prev
	}
	if shadow, ok := s.shadows[u]; ok && shadow != path {
		stale = shadow
	}
	s.index[u] = path
	delete(s.shadows, u)
	if stale != "" && !s.discard(u, stale) {
		s.shadows[u] = stale
	}

	s.log.Debug("Saved record", zap.String("username", u.String()), zap.String("path", path))
	return nil
}

// discard removes a file superseded by a successful Set and reports whether it
// is gone. A file that cannot be removed is kept as a shadow so Delete and the
// next Set retry it.
func (s *LocalStore[V]) discard(u domain.Username, path string) bool {
	if err := removeFile(path); err != nil {
		s.log.Warn("Failed to remove superseded record file",
			zap.String("username", u.String()),
			zap.String("path", path),
			zap.Error(err))
		return false
	}
	return true
}

// Delete removes the record for u. Unknown usernames are a no-op. If a file
// cannot be removed the index entry is kept.
func (s *LocalStore[V]) Delete(u domain.Username) error {
	if err := u.Validate(); err != nil {
		return err
	}

	path, ok := s.index[u]
	if !ok {
		return nil
	}
	if shadow, ok := s.shadows[u]; ok {
		if err := removeFile(shadow); err != nil {
			return s.deleteFailed(u, shadow, err)
		}
		delete(s.shadows, u)
	}
	if err := removeFile(path); err != nil {
		return s.deleteFailed(u, path, err)
	}
	delete(s.index, u)

	s.log.Debug("Deleted record", zap.String("username", u.String()), zap.String("path", path))
	return nil
}

func (s *LocalStore[V]) deleteFailed(u domain.Username, path string, err error) error {
	s.log.Error("Failed to delete record",
		zap.String("username", u.String()),
		zap.String("path", path),
		zap.Error(err))
	return fmt.Errorf("%w: %s: %w", domain.ErrDeleteFailure, path, err)
}

// Compile-time assertion that LocalStore implements domain.StorageManager.
var _ domain.StorageManager[any] = (*LocalStore[any])(nil)
