package domain

import (
	"fmt"
	"time"
)

// ThreadStatus is a closed set. OPEN threads accept posts; the transition
// to CLOSED happens automatically with the post that fills the thread;
// ARCHIVED is set administratively and is terminal.
type ThreadStatus string

const (
	ThreadOpen     ThreadStatus = "OPEN"
	ThreadClosed   ThreadStatus = "CLOSED"
	ThreadArchived ThreadStatus = "ARCHIVED"
)

func ParseThreadStatus(s string) (ThreadStatus, error) {
	switch ThreadStatus(s) {
	case ThreadOpen, ThreadClosed, ThreadArchived:
		return ThreadStatus(s), nil
	}
	return "", fmt.Errorf("unknown thread status %q", s)
}

// CanTransitionTo reports whether a status change is legal.
// OPEN -> CLOSED (automatic, at capacity) and OPEN/CLOSED -> ARCHIVED
// (administrative) are the only allowed moves.
func (s ThreadStatus) CanTransitionTo(next ThreadStatus) bool {
	switch s {
	case ThreadOpen:
		return next == ThreadClosed || next == ThreadArchived
	case ThreadClosed:
		return next == ThreadArchived
	}
	return false
}

// AcceptsPosts reports whether a thread in this status takes new posts.
func (s ThreadStatus) AcceptsPosts() bool {
	return s == ThreadOpen
}

type ThreadCreationData struct {
	Board  BoardKey
	Title  ThreadTitle
	OpPost PostCreationData
}

type ThreadMetadata struct {
	Id        ThreadId
	Board     BoardKey
	Title     ThreadTitle
	Status    ThreadStatus
	PostCount int
	CreatedAt time.Time
	UpdatedAt time.Time // bump timestamp, moves on every accepted post
}

type Thread struct {
	ThreadMetadata
	Posts []*Post
}
