package store

import (
	"strconv"
	"time"
)

// newID assigns a prefixed unix-millisecond token, bumping the counter past
// any collision. Within a session two creations in the same millisecond are
// the only way to collide, and the bump resolves that deterministically.
func newID(prefix string, taken func(id string) bool) string {
	ms := time.Now().UnixMilli()
	for {
		id := prefix + strconv.FormatInt(ms, 10)
		if !taken(id) {
			return id
		}
		ms++
	}
}
