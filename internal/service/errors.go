package service

import "errors"

var (
	// ErrDecryption is returned when a stored blob cannot be decrypted,
	// either because the key is locked or because the blob was sealed
	// under a different key. The crypto error stays in the chain.
	ErrDecryption = errors.New("failed to decrypt stored item")

	// ErrEmptyItem is returned when a stored row carries no payload for its
	// kind (a text or image row without content, a file row without a path).
	ErrEmptyItem = errors.New("stored item has no content")

	// ErrNotAnImage is returned by ImagePreview for non-image items.
	ErrNotAnImage = errors.New("item is not an image")

	// ErrUnknownKind is returned for rows whose kind is not recognised.
	ErrUnknownKind = errors.New("unknown item kind")
)
