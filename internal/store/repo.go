package store

import (
	"context"
	"time"
)

// Key names a stored document.
type Key string

const (
	KeyUsers         Key = "users"
	KeyClinicName    Key = "clinic-name"
	KeyQA            Key = "qa"         // reserved for the Q&A screen, not part of this tool
	KeyProcedures    Key = "procedures" // reserved for the procedures screen, not part of this tool
	KeySkillProgress Key = "skill-progress"
	KeyMemos         Key = "memos"
)

// AllKeys returns every known key.
func AllKeys() []Key {
	return []Key{KeyUsers, KeyClinicName, KeyQA, KeyProcedures, KeySkillProgress, KeyMemos}
}

// BlobRepo stores opaque JSON documents by key with last-write-wins
// semantics.
type BlobRepo interface {
	// Load returns the document stored under key. ok is false when
	// nothing has been saved yet.
	Load(ctx context.Context, key Key) (blob []byte, ok bool, err error)

	// Save replaces the document stored under key.
	Save(ctx context.Context, key Key, blob []byte) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressEventData captures a single accepted ledger write.
type ProgressEventData struct {
	ActorID       string
	UserID        string
	SkillID       string
	Level         int
	PreviousLevel *int // nil when the write created the record
	Comment       string
}

// ProgressEventRecord is a stored progress event.
type ProgressEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ProgressEventData
}

// EventRepo provides append and query access to the progress event log.
type EventRepo interface {
	// AppendProgressEvent records an accepted ledger write.
	AppendProgressEvent(ctx context.Context, data ProgressEventData) error

	// QueryProgressEvents returns events for userID in sequence order.
	// An empty userID matches every user.
	QueryProgressEvents(ctx context.Context, userID string, opts QueryOpts) ([]ProgressEventRecord, error)
}
