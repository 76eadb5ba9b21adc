package storage

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID produces an identifier unique with overwhelming probability
// within a process: a base-36 millisecond timestamp followed by twelve hex
// characters drawn from a fresh UUID. IDs are not cryptographically unique —
// a collision is a low-probability hazard, not a security concern — and the
// timestamp prefix keeps ids roughly sortable by creation time.
func GenerateID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return ts + random
}
