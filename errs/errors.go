// Package errs defines sentinel error values shared across Graphly packages.
package errs

import "errors"

var (
	// ErrInvalidMagic indicates that snapshot data does not start with the
	// Graphly magic bytes.
	ErrInvalidMagic = errors.New("invalid snapshot magic")

	// ErrChecksumMismatch indicates that the snapshot payload checksum does
	// not match the stored value.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrInvalidCompression indicates an unknown compression type flag.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrTruncatedSnapshot indicates that snapshot data ended before the
	// declared payload was fully read.
	ErrTruncatedSnapshot = errors.New("truncated snapshot data")

	// ErrEmptyEquation indicates an expression with no tokens after
	// normalization.
	ErrEmptyEquation = errors.New("empty equation")
)
