package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFileURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain file url", raw: "file:///Users/me/notes.txt", want: "/Users/me/notes.txt"},
		{name: "localhost host", raw: "file://localhost/Users/me/notes.txt", want: "/Users/me/notes.txt"},
		{name: "percent encoded", raw: "file:///Users/me/My%20Docs/r%C3%A9sum%C3%A9.pdf", want: "/Users/me/My Docs/résumé.pdf"},
		{name: "surrounding whitespace", raw: "  file:///tmp/a.txt\n", want: "/tmp/a.txt"},
		{name: "macOS file reference url", raw: "file:///.file/id=6571367.8613216", want: "/.file/id=6571367.8613216"},
		{name: "bare path", raw: "/tmp/plain path.txt", want: "/tmp/plain path.txt"},
		{name: "bare encoded path", raw: "/tmp/a%20b.txt", want: "/tmp/a b.txt"},
		{name: "invalid escape kept", raw: "file:///tmp/100%.txt", want: "/tmp/100%.txt"},
		{name: "foreign host falls back", raw: "file://server/share/x.txt", want: "server/share/x.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFileURL(tt.raw))
		})
	}
}
