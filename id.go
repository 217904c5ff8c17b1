package warung

import (
	"strconv"
	"sync"
	"time"
)

// ID is an opaque entity identifier. IDs generated by NewID are strictly
// increasing and fixed-width, so newer entities sort after older ones both as
// strings and as numbers. Several views rely on that for reverse-chronological
// display.
type ID string

var idMu sync.Mutex
var lastID int64

// NewID returns a new unique identifier derived from the current time in
// milliseconds. Calls within the same millisecond are disambiguated by
// incrementing past the previous value.
func NewID() ID {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return ID(strconv.FormatInt(now, 10))
}
