// Package jetstream subscribes to a Jetstream instance and turns its JSON
// events into domain stream events.
package jetstream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/heartmarshall/likelabeler/internal/config"
	"github.com/heartmarshall/likelabeler/internal/domain"
)

const (
	kindCommit = "commit"

	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"

	// readTimeout bounds the silence tolerated on a live subscription.
	readTimeout = time.Minute
)

type event struct {
	DID    string  `json:"did"`
	TimeUS int64   `json:"time_us"`
	Kind   string  `json:"kind"`
	Commit *commit `json:"commit,omitempty"`
}

type commit struct {
	Rev        string          `json:"rev"`
	Operation  string          `json:"operation"`
	Collection string          `json:"collection"`
	RKey       string          `json:"rkey"`
	Record     json.RawMessage `json:"record,omitempty"`
	CID        string          `json:"cid"`
}

// likeRecord is the part of an app.bsky.feed.like record the labeler reads.
type likeRecord struct {
	Subject struct {
		URI string `json:"uri"`
		CID string `json:"cid"`
	} `json:"subject"`
}

// Subscriber opens Jetstream subscriptions.
type Subscriber struct {
	endpoint   string
	collection string
	bufferSize int
	dialer     *websocket.Dialer
	log        *slog.Logger
}

// NewSubscriber creates a Subscriber for the configured endpoint and collection.
func NewSubscriber(cfg config.StreamConfig, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		endpoint:   cfg.Endpoint,
		collection: cfg.Collection,
		bufferSize: cfg.BufferSize,
		dialer:     websocket.DefaultDialer,
		log:        logger.With("adapter", "jetstream"),
	}
}

// Subscribe connects starting at cursor ("" tails live) and returns the event
// channel. The first event is always StreamEventOpen. A broken connection
// emits one StreamEventError carrying a *domain.StreamError and closes the
// channel; cancelling ctx closes it without an error event.
func (s *Subscriber) Subscribe(ctx context.Context, cursor string) (<-chan domain.StreamEvent, error) {
	u, err := s.subscribeURL(cursor)
	if err != nil {
		return nil, &domain.StreamError{Cursor: cursor, Err: err}
	}

	conn, _, err := s.dialer.DialContext(ctx, u, nil)
	if err != nil {
		return nil, &domain.StreamError{Cursor: cursor, Err: fmt.Errorf("dial: %w", err)}
	}

	s.log.InfoContext(ctx, "stream connected", slog.String("cursor", cursor), slog.String("collection", s.collection))

	events := make(chan domain.StreamEvent, s.bufferSize)
	go s.readLoop(ctx, conn, cursor, events)

	return events, nil
}

func (s *Subscriber) subscribeURL(cursor string) (string, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}

	q := u.Query()
	q.Set("wantedCollections", s.collection)
	if cursor != "" {
		if _, err := strconv.ParseInt(cursor, 10, 64); err != nil {
			return "", fmt.Errorf("cursor %q is not a microsecond timestamp", cursor)
		}
		q.Set("cursor", cursor)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (s *Subscriber) readLoop(ctx context.Context, conn *websocket.Conn, cursor string, events chan<- domain.StreamEvent) {
	defer close(events)

	var closeOnce sync.Once
	closeConn := func() { closeOnce.Do(func() { _ = conn.Close() }) }
	defer closeConn()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			closeConn()
		case <-stop:
		}
	}()

	if !send(ctx, events, domain.StreamEvent{Kind: domain.StreamEventOpen}) {
		return
	}

	last := cursor
	for {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				s.log.InfoContext(ctx, "stream closed", slog.String("cursor", last))
				return
			}
			s.log.ErrorContext(ctx, "stream read failed", slog.String("cursor", last), slog.String("error", err.Error()))
			send(ctx, events, domain.StreamEvent{
				Kind: domain.StreamEventError,
				Err:  &domain.StreamError{Cursor: last, Err: err},
			})
			return
		}

		c, err := decode(msg)
		if err != nil {
			s.log.WarnContext(ctx, "skipping undecodable event", slog.String("error", err.Error()))
			continue
		}
		if c == nil {
			continue
		}

		last = c.Cursor()
		if !send(ctx, events, domain.StreamEvent{Kind: domain.StreamEventCommit, Commit: c}) {
			return
		}
	}
}

func send(ctx context.Context, events chan<- domain.StreamEvent, ev domain.StreamEvent) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

var errUnknownOperation = errors.New("unknown commit operation")

// decode turns one Jetstream message into a commit. Non-commit events
// (identity, account) return nil.
func decode(msg []byte) (*domain.StreamCommit, error) {
	var ev event
	if err := json.Unmarshal(msg, &ev); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	if ev.Kind != kindCommit || ev.Commit == nil {
		return nil, nil
	}

	var action domain.OpAction
	switch ev.Commit.Operation {
	case opCreate:
		action = domain.OpActionCreate
	case opUpdate:
		action = domain.OpActionUpdate
	case opDelete:
		action = domain.OpActionDelete
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownOperation, ev.Commit.Operation)
	}

	op := domain.RepoOp{
		Path:   ev.Commit.Collection + "/" + ev.Commit.RKey,
		Action: action,
	}
	if len(ev.Commit.Record) > 0 {
		var rec likeRecord
		if err := json.Unmarshal(ev.Commit.Record, &rec); err == nil {
			op.SubjectURI = rec.Subject.URI
		}
	}

	return &domain.StreamCommit{
		Seq:  ev.TimeUS,
		Time: time.UnixMicro(ev.TimeUS).UTC(),
		Repo: ev.DID,
		Ops:  []domain.RepoOp{op},
	}, nil
}
