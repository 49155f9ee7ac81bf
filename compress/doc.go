// Package compress provides the block codecs used by chart snapshots.
//
// Snapshot payloads are small (a few KB of varint-packed rows per series),
// so every codec here works on whole blocks rather than streams. Four
// algorithms are supported: none, zstd, s2 and lz4, selected by the
// compression flag stored in the snapshot header.
package compress
