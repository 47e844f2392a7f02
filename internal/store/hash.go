package store

import "crypto/sha256"

// ComputeHash returns the SHA-256 digest of data.
func ComputeHash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// HashText hashes the UTF-8 bytes of a captured text.
func HashText(text string) []byte {
	return ComputeHash([]byte(text))
}

// HashImage hashes the canonical PNG encoding of a captured image, so the
// same pixels always produce the same key regardless of the source format.
func HashImage(png []byte) []byte {
	return ComputeHash(png)
}

// HashFilePath hashes the normalized path string of a file reference. File
// contents are never read: editing a file keeps its key, renaming changes it.
func HashFilePath(path string) []byte {
	return ComputeHash([]byte(path))
}
