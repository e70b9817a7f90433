// Package store provides file-based persistence for userstore records.
//
// LocalStore keeps one file per username directly inside a root directory,
// named <marker><username><suffix> where the marker is "." when files are
// hidden. The directory is scanned once at construction to build an in-memory
// index of username to absolute path; every file is decoded during the scan and
// files that fail to decode are logged and left out of the index. After that
// the index changes only through the store's own Set and Delete calls.
//
// Stores do no internal locking. Callers must serialise calls on one instance.
//
// MemoryStore implements the same contract without touching the filesystem.
package store
