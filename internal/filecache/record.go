package filecache

import (
	"time"
)

const (
	// RemoteTTL is how long the remote file store retains an upload before
	// deleting it.
	RemoteTTL = 48 * time.Hour

	// ExpiryMargin is the safety window subtracted from a record's remaining
	// lifetime. A record within the margin of its deadline is treated as
	// expired so a reference is never handed out right before the remote
	// deletes the file mid-request.
	ExpiryMargin = time.Hour
)

// Record describes one remote upload tracked by the cache. Timestamps are
// Unix epoch seconds so the document stays readable and portable.
type Record struct {
	// Name is the remote identifier (for example "files/abc123") used for
	// status checks.
	Name string `json:"name"`

	// URI is the reference attached to generation requests.
	URI string `json:"uri"`

	// ExpiresAt is the epoch second at which the remote store is expected to
	// have deleted the file.
	ExpiresAt uint64 `json:"expires_at"`

	// FileSize is the size of the uploaded content in bytes. Informational
	// only; it never participates in cache decisions.
	FileSize uint64 `json:"file_size"`
}

// NewRecord builds a record for an upload completed at now, with the expiry
// deadline set a full retention period ahead.
func NewRecord(name, uri string, size uint64, now time.Time) Record {
	return Record{
		Name:      name,
		URI:       uri,
		ExpiresAt: uint64(now.Unix()) + uint64(RemoteTTL/time.Second),
		FileSize:  size,
	}
}

// ExpiredAt reports whether the record fails the safety-margin test at now,
// that is whether now plus the margin has reached the deadline. A record
// "expires" one margin before the remote actually deletes the file.
func (r Record) ExpiredAt(now time.Time) bool {
	return uint64(now.Unix())+uint64(ExpiryMargin/time.Second) >= r.ExpiresAt
}

// Expired reports ExpiredAt against the current clock.
func (r Record) Expired() bool {
	return r.ExpiredAt(time.Now())
}

// TimeToLive returns the duration until the record fails the safety-margin
// test, or zero if it already has. Used for display only.
func (r Record) TimeToLive(now time.Time) time.Duration {
	deadline := int64(r.ExpiresAt) - int64(ExpiryMargin/time.Second)
	remaining := deadline - now.Unix()
	if remaining <= 0 {
		return 0
	}
	return time.Duration(remaining) * time.Second
}
