// File: checksum.go
// Title: File Checksum Calculation
// Description: Implements streaming checksum calculation over file
//              content for the MD5, SHA-256, and XXH64 algorithms.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation with three algorithms

package filex

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/msto63/dkit/core/errors"
)

// ChecksumAlgo identifies a supported checksum algorithm
type ChecksumAlgo string

const (
	// ChecksumMD5 is the MD5 algorithm, for integrity checks only
	ChecksumMD5 ChecksumAlgo = "md5"

	// ChecksumSHA256 is the SHA-256 algorithm
	ChecksumSHA256 ChecksumAlgo = "sha256"

	// ChecksumXXH64 is the XXH64 algorithm, fast and non-cryptographic
	ChecksumXXH64 ChecksumAlgo = "xxh64"
)

// newHasher returns a fresh hash state for the given algorithm
func newHasher(algo ChecksumAlgo) (hash.Hash, error) {
	switch algo {
	case ChecksumMD5:
		return md5.New(), nil
	case ChecksumSHA256:
		return sha256.New(), nil
	case ChecksumXXH64:
		return xxhash.New(), nil
	default:
		return nil, errors.InvalidInput("filex", "checksum", string(algo), "md5, sha256 or xxh64")
	}
}

// Checksum streams a file through the given algorithm and returns the
// hex-encoded digest
func Checksum(path string, algo ChecksumAlgo) (string, error) {
	if path == "" {
		return "", errors.InvalidInput("filex", "checksum", path, "non-empty path")
	}

	hasher, err := newHasher(algo)
	if err != nil {
		return "", err
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.FilexNotFound(path)
		}
		return "", errors.FilexIOError("checksum", path, err)
	}
	defer file.Close()

	buf := streamBufferPool.Get().([]byte)
	defer streamBufferPool.Put(buf)

	if _, err := io.CopyBuffer(hasher, file, buf); err != nil {
		return "", errors.FilexIOError("checksum", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
