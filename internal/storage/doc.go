// Package storage persists the normalized team snapshot as a single JSON
// document. Writes are atomic (temp file + rename) so readers never observe
// a half-written snapshot; an unreadable file is reported as ErrCorrupt so
// the freshness layer can delete and refetch.
package storage
