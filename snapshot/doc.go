// Package snapshot encodes a dataset collection into a compact binary form
// and restores it. The host application decides where snapshots live (local
// file, clipboard, share link); this package only owns the bytes.
//
// Layout:
//
//	[4]byte  magic "GLY1"
//	uint8    version
//	uint8    compression type
//	uint32   CRC32 (IEEE) of the uncompressed payload, little-endian
//	uvarint  compressed payload length
//	[]byte   compressed payload
//
// The payload is a uvarint dataset count followed by one self-describing
// record per dataset: name, 64-bit series ID, kind, projection keys,
// equation, visibility, a sorted field table, and the rows with a per-cell
// type tag (absent, float64 or string).
package snapshot
