package progress

import (
	"encoding/json"
	"slices"
	"sort"
	"time"
)

// Record is one staff member's progress on one skill.
type Record struct {
	UserID    string    `json:"userId"`
	SkillID   string    `json:"skillId"`
	Level     Level     `json:"level"`
	Comment   string    `json:"comment"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Ledger maps user IDs to their progress records, at most one record per
// (user, skill) pair. Records keep insertion order per user.
//
// Ledger is not safe for concurrent use; owners serialize access.
type Ledger struct {
	byUser map[string][]Record
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{byUser: make(map[string][]Record)}
}

// Records returns a copy of the user's records. A user with no records
// yields nil.
func (l *Ledger) Records(userID string) []Record {
	return slices.Clone(l.byUser[userID])
}

// Find returns the record for (userID, skillID), if any.
func (l *Ledger) Find(userID, skillID string) (Record, bool) {
	for _, r := range l.byUser[userID] {
		if r.SkillID == skillID {
			return r, true
		}
	}
	return Record{}, false
}

// LevelOf returns the recorded level, or Unexperienced when no record exists.
func (l *Ledger) LevelOf(userID, skillID string) Level {
	if r, ok := l.Find(userID, skillID); ok {
		return r.Level
	}
	return Unexperienced
}

// Upsert replaces the level and comment of an existing record or appends a
// new one, stamping UpdatedAt with at. It returns the stored record and
// the previous one (nil when the record was created).
func (l *Ledger) Upsert(userID, skillID string, level Level, comment string, at time.Time) (Record, *Record) {
	recs := l.byUser[userID]
	for i := range recs {
		if recs[i].SkillID != skillID {
			continue
		}
		prev := recs[i]
		recs[i].Level = level
		recs[i].Comment = comment
		recs[i].UpdatedAt = at
		return recs[i], &prev
	}

	rec := Record{
		UserID:    userID,
		SkillID:   skillID,
		Level:     level,
		Comment:   comment,
		UpdatedAt: at,
	}
	l.byUser[userID] = append(recs, rec)
	return rec, nil
}

// Restore puts (userID, skillID) back to prev. A nil prev removes the
// record entirely.
func (l *Ledger) Restore(userID, skillID string, prev *Record) {
	recs := l.byUser[userID]
	idx := slices.IndexFunc(recs, func(r Record) bool { return r.SkillID == skillID })
	switch {
	case prev == nil && idx >= 0:
		recs = slices.Delete(recs, idx, idx+1)
		if len(recs) == 0 {
			delete(l.byUser, userID)
		} else {
			l.byUser[userID] = recs
		}
	case prev != nil && idx >= 0:
		recs[idx] = *prev
	case prev != nil:
		l.byUser[userID] = append(recs, *prev)
	}
}

// Users returns the IDs of users with at least one record, sorted.
func (l *Ledger) Users() []string {
	ids := make([]string, 0, len(l.byUser))
	for id := range l.byUser {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	c := NewLedger()
	for id, recs := range l.byUser {
		c.byUser[id] = slices.Clone(recs)
	}
	return c
}

// MarshalJSON encodes the ledger as an object keyed by user ID.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	if l.byUser == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(l.byUser)
}

// UnmarshalJSON decodes a ledger without schema validation. Use
// DecodeLedger for blobs read from storage.
func (l *Ledger) UnmarshalJSON(b []byte) error {
	m := make(map[string][]Record)
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	l.byUser = m
	return nil
}
