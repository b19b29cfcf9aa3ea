package memo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinictrack/clinictrack/internal/staff"
	"github.com/clinictrack/clinictrack/internal/store"
)

var (
	// ErrNotFound is returned for an unknown memo ID.
	ErrNotFound = errors.New("memo not found")

	// ErrUnauthorized is returned when deleting another user's memo.
	ErrUnauthorized = errors.New("unauthorized")
)

// Memo is a personal training note.
type Memo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Book holds every user's memos, persisted as one document under
// store.KeyMemos. It is not safe for concurrent use.
type Book struct {
	repo  store.BlobRepo
	memos []Memo
}

// LoadBook reads memos from repo. A missing document yields an empty book.
func LoadBook(ctx context.Context, repo store.BlobRepo) (*Book, error) {
	b := &Book{repo: repo}
	blob, ok, err := repo.Load(ctx, store.KeyMemos)
	if err != nil {
		return nil, fmt.Errorf("load memos: %w", err)
	}
	if !ok {
		return b, nil
	}
	if err := json.Unmarshal(blob, &b.memos); err != nil {
		return nil, fmt.Errorf("decode memos: %w", err)
	}
	return b, nil
}

// Add appends a memo for userID and saves the book.
func (b *Book) Add(ctx context.Context, userID, body string) (Memo, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return Memo{}, errors.New("memo body is empty")
	}
	m := Memo{
		ID:        uuid.NewString(),
		UserID:    userID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	b.memos = append(b.memos, m)
	if err := b.save(ctx); err != nil {
		b.memos = b.memos[:len(b.memos)-1]
		return Memo{}, err
	}
	return m, nil
}

// ForUser returns the user's memos, newest first.
func (b *Book) ForUser(userID string) []Memo {
	var out []Memo
	for _, m := range b.memos {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	slices.Reverse(out)
	return out
}

// Delete removes a memo. Only its author or an admin may delete it.
func (b *Book) Delete(ctx context.Context, actor staff.User, id string) error {
	idx := slices.IndexFunc(b.memos, func(m Memo) bool { return m.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if b.memos[idx].UserID != actor.ID && actor.Role != staff.RoleAdmin {
		return fmt.Errorf("%w: memo belongs to another user", ErrUnauthorized)
	}

	removed := b.memos[idx]
	b.memos = slices.Delete(b.memos, idx, idx+1)
	if err := b.save(ctx); err != nil {
		b.memos = slices.Insert(b.memos, idx, removed)
		return err
	}
	return nil
}

func (b *Book) save(ctx context.Context) error {
	memos := b.memos
	if memos == nil {
		memos = []Memo{}
	}
	blob, err := json.Marshal(memos)
	if err != nil {
		return fmt.Errorf("encode memos: %w", err)
	}
	return b.repo.Save(ctx, store.KeyMemos, blob)
}
