package clipboard

import (
	"net/url"
	"strings"
)

// ParseFileURL converts a file URL taken from the clipboard into a local
// path. Proper file: URLs are parsed; anything else has a leading
// "file://localhost" or "file://" stripped and is percent-decoded. Input that
// cannot be decoded is returned with only the prefix removed.
func ParseFileURL(raw string) string {
	raw = strings.TrimSpace(raw)

	if strings.HasPrefix(raw, "file:") {
		if u, err := url.Parse(raw); err == nil && u.Scheme == "file" && u.Path != "" &&
			(u.Host == "" || u.Host == "localhost") {
			return u.Path
		}
	}

	trimmed := strings.TrimPrefix(raw, "file://localhost")
	trimmed = strings.TrimPrefix(trimmed, "file://")

	decoded, err := url.PathUnescape(trimmed)
	if err != nil {
		return trimmed
	}
	return decoded
}
