// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Kind is the captured clipboard representation of an item.
// The value is stored verbatim in the items.kind column.
type Kind string

const (
	// KindText is plain UTF-8 text, optionally with an RTF sidecar.
	KindText Kind = "text"

	// KindImage is an image stored as canonical PNG bytes.
	KindImage Kind = "image"

	// KindFile is a reference to a file on disk. Only the path is stored;
	// file contents are never read into the store.
	KindFile Kind = "file"
)

// ParseKind converts s to a [Kind]. It returns an error for anything other
// than "text", "image" or "file".
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindText, KindImage, KindFile:
		return k, nil
	default:
		return "", fmt.Errorf("unknown item kind %q", s)
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
