// Package storage provides JSON-based persistence for fixture snapshots.
//
// The storage package manages the local snapshot file that tracks fixtures
// across runs, which is how newly announced home matches are detected and
// reported. The snapshot is stored as fixtures.json under the data directory,
// ~/.local/share/no-parking-teddy/ by default.
package storage
