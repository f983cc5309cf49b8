package cards

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDSource hands out card ids. Ids are ULIDs drawn from monotonic entropy,
// so two cards created in the same millisecond still sort in creation order.
type IDSource struct {
	entropy io.Reader
}

// NewIDSource builds a monotonic ULID source.
func NewIDSource() *IDSource {
	return &IDSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Next returns a fresh id for the given creation time.
func (s *IDSource) Next(now time.Time) string {
	return ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
}
