// Package codec turns records into bytes and back for the file stores.
//
// A Codec is injected into a store at construction, so the on-disk format is
// chosen by the caller and held fixed for the lifetime of a data directory.
// Available formats:
//   - JSON (encoding/json, indented)
//   - YAML (gopkg.in/yaml.v3)
//   - Framed, which wraps another codec in a length-prefixed frame carrying a
//     BLAKE2b-256 checksum so truncated or altered files are always rejected
package codec
