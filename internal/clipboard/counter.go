package clipboard

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"sync"
)

// hashCounter synthesizes a change counter for platforms that do not expose
// one: the counter is bumped whenever the digest of the observed contents
// differs from the previous observation.
type hashCounter struct {
	mu    sync.Mutex
	count int64
	last  []byte
}

// observe folds parts into a digest and returns the current counter.
func (c *hashCounter) observe(parts ...[]byte) int64 {
	h := sha256.New()
	for _, p := range parts {
		// length prefix keeps ("ab","c") and ("a","bc") apart
		h.Write(binary.LittleEndian.AppendUint64(nil, uint64(len(p))))
		h.Write(p)
	}
	sum := h.Sum(nil)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !bytes.Equal(sum, c.last) {
		c.count++
		c.last = sum
	}
	return c.count
}
