package domain

import (
	"strconv"
	"strings"
	"time"
)

// LikeMarker is the path fragment identifying like records.
const LikeMarker = ".like/"

// RepoOp is a single record change inside a commit.
// SubjectURI is the liked post URI when the record carries one.
type RepoOp struct {
	Path       string
	Action     OpAction
	SubjectURI string
}

// StreamCommit is one batch of operations from one account at a stream position.
type StreamCommit struct {
	Seq  int64
	Time time.Time
	Repo string
	Ops  []RepoOp
}

// Cursor returns the checkpoint candidate for this commit.
func (c StreamCommit) Cursor() string {
	return strconv.FormatInt(c.Seq, 10)
}

// StreamEvent is emitted by a stream subscription.
type StreamEvent struct {
	Kind   StreamEventKind
	Commit *StreamCommit
	// Err is set for StreamEventError and is always a *StreamError.
	Err error
}

// LikeEvent is a like create or removal derived from a repository operation.
type LikeEvent struct {
	Kind     LikeKind
	Account  string
	LikePath string
	PostURI  string
	At       time.Time
}

// ClassifyLike decides what a repository operation means for the labeler.
// Creates only count when the liked post belongs to targetDID; every other
// action on a like path is treated as a removal.
func ClassifyLike(commit StreamCommit, op RepoOp, targetDID string) LikeEvent {
	ev := LikeEvent{
		Kind:     LikeFiltered,
		Account:  commit.Repo,
		LikePath: op.Path,
		At:       commit.Time,
	}
	if !strings.Contains(op.Path, LikeMarker) {
		return ev
	}

	if op.Action != OpActionCreate {
		ev.Kind = LikeRemove
		return ev
	}

	uri, err := ParseATURI(op.SubjectURI)
	if err != nil || uri.Authority != targetDID {
		return ev
	}
	ev.Kind = LikeCreate
	ev.PostURI = op.SubjectURI
	return ev
}

// Checkpoint is a persisted stream position.
type Checkpoint struct {
	Cursor     string
	ObservedAt time.Time
}
