package model

import "time"

// Repost records that an account rebroadcast a thread at a point in time.
// This is a pure domain model with no database-specific tags.
// RepostedAt is assigned by the database clock on insert and never changes.
type Repost struct {
	ThreadID   ThreadID  `json:"thread_id"`
	AccountID  AccountID `json:"account_id"`
	RepostedAt time.Time `json:"reposted_at"`
}
