// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Pipeline failure kinds. Every fatal error produced by a stage wraps one
// of these so the CLI can classify failures without string matching.
var (
	// ErrMissingInput marks a bad slides root: the path does not exist,
	// is not a directory, or contains no recognized slide folders.
	ErrMissingInput = errors.New("missing input")

	// ErrMalformedData marks unparseable slide content, such as a CSV
	// with inconsistent column counts or an undecodable image.
	ErrMalformedData = errors.New("malformed data")

	// ErrOutput marks a failure to write the finished deck.
	ErrOutput = errors.New("output error")
)
