// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NewItem is a freshly captured clipboard entry ready to be persisted.
//
// ContentBlob, PreviewBlob and RTFBlob hold sealed blobs
// (nonce ‖ ciphertext ‖ tag). They are nil for file items, which carry only
// FilePath.
type NewItem struct {
	// Kind is the captured representation.
	Kind Kind

	// Size is the byte size of the canonical content: UTF-8 length for text,
	// PNG length for images, on-disk size (0 if unreadable) for files.
	Size int64

	// Hash is the SHA-256 digest over the kind-specific canonical bytes.
	Hash []byte

	// FilePath is set only for KindFile.
	FilePath *string

	ContentBlob []byte
	PreviewBlob []byte
	RTFBlob     []byte
}

// ItemMetadata is the listing view of a stored item. It never carries
// plaintext or sealed content.
type ItemMetadata struct {
	ID        int64   `json:"id"`
	CreatedAt int64   `json:"created_at"` // epoch milliseconds
	Kind      Kind    `json:"kind"`
	Size      int64   `json:"size"`
	SHA256Hex string  `json:"sha256_hex"`
	FilePath  *string `json:"file_path,omitempty"`
	IsPinned  bool    `json:"is_pinned"`
}

// RawItem is a stored row as-is, for callers that decrypt on their side.
type RawItem struct {
	Kind        Kind
	ContentBlob []byte
	PreviewBlob []byte
	RTFBlob     []byte
	FilePath    *string
}

// ItemView is [ItemMetadata] enriched with a short plaintext preview for
// presentation. Preview is empty when the key is locked or the item kind has
// no textual preview.
type ItemView struct {
	ItemMetadata
	Preview string `json:"preview,omitempty"`
}
