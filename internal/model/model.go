package model

import "strconv"

// Package model contains domain models/data structures.
// Keep it minimal; no business logic here.

// ThreadID identifies the reposted thread.
type ThreadID int64

// AccountID identifies the account that reposted a thread.
type AccountID int64

func (id ThreadID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id AccountID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseThreadID parses a base-10 thread identifier.
func ParseThreadID(s string) (ThreadID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ThreadID(v), nil
}

// ParseAccountID parses a base-10 account identifier.
func ParseAccountID(s string) (AccountID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return AccountID(v), nil
}
