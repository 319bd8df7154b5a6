// Package s3input fetches s3:// inputs to local files so they can be
// memory-mapped like any other input.
//
// The object is downloaded once to a temp file with the AWS S3 Download
// Manager (parallel ranged GETs), then the caller maps and scans the local
// copy. Objects larger than addressable memory are out of scope, matching
// the engine's whole-buffer model.
package s3input

import (
	"errors"
	"fmt"
	"strings"
)

// IsURI reports whether s looks like an s3:// object URI.
func IsURI(s string) bool {
	return strings.HasPrefix(s, "s3://")
}

// ParseURI parses an S3 URI (s3://bucket/key) into bucket and key.
func ParseURI(uri string) (bucket, key string, err error) {
	if !IsURI(uri) {
		return "", "", errors.New("invalid S3 URI: must start with s3://")
	}

	path := strings.TrimPrefix(uri, "s3://")
	parts := strings.SplitN(path, "/", 2)
	if len(parts) < 1 || parts[0] == "" {
		return "", "", errors.New("invalid S3 URI: missing bucket name")
	}
	if len(parts) < 2 || parts[1] == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q: missing object key", uri)
	}

	return parts[0], parts[1], nil
}
