package domain

import "strings"

// HiddenMarker is prefixed to a file's base name to hide it from casual listings.
const HiddenMarker = "."

// Username identifies the owner of one stored record.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// Validate reports whether u can be mapped to a single file inside the store
// directory. Names with path separators, NUL bytes or a leading hidden marker
// are rejected so that hidden and visible file names stay unambiguous.
func (u Username) Validate() error {
	s := string(u)
	switch {
	case s == "", s == ".", s == "..":
		return ErrInvalidUsername
	case strings.HasPrefix(s, HiddenMarker):
		return ErrInvalidUsername
	case strings.ContainsAny(s, "/\\\x00"):
		return ErrInvalidUsername
	}
	return nil
}
