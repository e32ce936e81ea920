// Package cache persists repository scan results between runs.
//
// Each scanned base path gets its own file inside the store directory,
// named repos_<key>.cache where <key> is the first 16 hex characters of
// the SHA-256 digest of the cleaned base path. Cleaning happens before
// hashing, so "/home/u/code" and "/home/u/code/" share one entry.
//
// # File Format
//
// A cache file holds one repository per line, tab separated:
//
//	name<TAB>/absolute/path/to/name
//
// The file's modification time doubles as its write timestamp: an entry
// is fresh while the file age stays within the store TTL, and [Store.Save]
// restarts the clock by rewriting the file. No timestamps live in the
// payload itself.
//
// # Failure Handling
//
// [Store.Load] never returns an error. A missing file, an expired file or
// a file that fails to parse is a miss, and the caller falls back to a
// fresh scan. Writes go through a temp file and an atomic rename, so an
// interrupted writer leaves the previous entry intact.
//
// # Concurrency
//
// There is no cross-process locking. Concurrent writers race benignly:
// the rename is atomic, the last writer wins and readers always see a
// complete file.
package cache
