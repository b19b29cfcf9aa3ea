package progress

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_UpsertCreates(t *testing.T) {
	l := NewLedger()
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	got, prev := l.Upsert("u1", "s1", Assisted, "good suction", at)
	assert.Nil(t, prev)
	assert.Equal(t, Record{UserID: "u1", SkillID: "s1", Level: Assisted, Comment: "good suction", UpdatedAt: at}, got)
	assert.Len(t, l.Records("u1"), 1)
}

func TestLedger_UpsertReplacesInPlace(t *testing.T) {
	l := NewLedger()
	t0 := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	l.Upsert("u1", "s1", Observed, "first", t0)
	l.Upsert("u1", "s2", Observed, "", t0)
	got, prev := l.Upsert("u1", "s1", Independent, "second", t1)

	require.NotNil(t, prev)
	assert.Equal(t, Observed, prev.Level)
	assert.Equal(t, "first", prev.Comment)
	assert.Equal(t, Independent, got.Level)
	assert.Equal(t, t1, got.UpdatedAt)

	recs := l.Records("u1")
	require.Len(t, recs, 2)
	assert.Equal(t, "s1", recs[0].SkillID, "in-place update keeps position")
	assert.Equal(t, "second", recs[0].Comment)
}

func TestLedger_LevelOfAbsent(t *testing.T) {
	l := NewLedger()
	assert.Equal(t, Unexperienced, l.LevelOf("nobody", "s1"))
}

func TestLedger_RestoreRemovesCreated(t *testing.T) {
	l := NewLedger()
	l.Upsert("u1", "s1", Assisted, "", time.Now())
	l.Restore("u1", "s1", nil)

	_, ok := l.Find("u1", "s1")
	assert.False(t, ok)
	assert.Empty(t, l.Users())
}

func TestLedger_RestorePrevious(t *testing.T) {
	l := NewLedger()
	l.Upsert("u1", "s1", Observed, "a", time.Unix(100, 0))
	_, prev := l.Upsert("u1", "s1", Independent, "b", time.Unix(200, 0))
	l.Restore("u1", "s1", prev)

	r, ok := l.Find("u1", "s1")
	require.True(t, ok)
	assert.Equal(t, Observed, r.Level)
	assert.Equal(t, "a", r.Comment)
}

func TestLedger_RecordsReturnsCopy(t *testing.T) {
	l := NewLedger()
	l.Upsert("u1", "s1", Observed, "", time.Now())
	recs := l.Records("u1")
	recs[0].Level = Independent
	assert.Equal(t, Observed, l.LevelOf("u1", "s1"))
}

func TestLedger_CloneIsDeep(t *testing.T) {
	l := NewLedger()
	l.Upsert("u1", "s1", Observed, "", time.Now())
	c := l.Clone()
	c.Upsert("u1", "s1", Independent, "", time.Now())
	assert.Equal(t, Observed, l.LevelOf("u1", "s1"))
}

func TestLedger_JSONShape(t *testing.T) {
	l := NewLedger()
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	l.Upsert("u1", "s1", Assisted, "ok", at)

	b, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"u1":[{"userId":"u1","skillId":"s1","level":2,"comment":"ok","updatedAt":"2026-04-01T09:00:00Z"}]}`,
		string(b))

	empty, err := json.Marshal(&Ledger{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(empty))
}
