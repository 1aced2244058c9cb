package domain

// OpAction is the kind of change a repository operation applies.
type OpAction string

const (
	OpActionCreate OpAction = "create"
	OpActionUpdate OpAction = "update"
	OpActionDelete OpAction = "delete"
)

func (a OpAction) String() string { return string(a) }

func (a OpAction) IsValid() bool {
	switch a {
	case OpActionCreate, OpActionUpdate, OpActionDelete:
		return true
	}
	return false
}

// StreamEventKind distinguishes the events a stream subscription emits.
type StreamEventKind string

const (
	StreamEventOpen   StreamEventKind = "OPEN"
	StreamEventCommit StreamEventKind = "COMMIT"
	StreamEventError  StreamEventKind = "ERROR"
)

func (k StreamEventKind) String() string { return string(k) }

// LikeKind is the outcome of classifying a single repository operation.
type LikeKind int

const (
	LikeFiltered LikeKind = iota
	LikeCreate
	LikeRemove
)

func (k LikeKind) String() string {
	switch k {
	case LikeCreate:
		return "create"
	case LikeRemove:
		return "remove"
	}
	return "filtered"
}

// FailureKind tells the supervisor how a run ended.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureTransient
	FailureRateLimited
	FailureFatal
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureTransient:
		return "transient"
	case FailureRateLimited:
		return "rate_limited"
	case FailureFatal:
		return "fatal"
	}
	return "unknown"
}
