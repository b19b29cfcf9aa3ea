package staff

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinictrack/clinictrack/internal/store"
)

func TestDirectory_EmptyWhenMissing(t *testing.T) {
	d, err := LoadDirectory(context.Background(), store.NewMemoryBlobRepo())
	require.NoError(t, err)
	assert.Empty(t, d.List())
}

func TestDirectory_AddSaveReload(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryBlobRepo()

	d, err := LoadDirectory(ctx, repo)
	require.NoError(t, err)

	mentor, err := d.Add("Yamada", RoleMentor, "clinic-1")
	require.NoError(t, err)
	_, err = d.Add("Abe", RoleNewbie, "clinic-1")
	require.NoError(t, err)
	require.NoError(t, d.Save(ctx))

	reloaded, err := LoadDirectory(ctx, repo)
	require.NoError(t, err)

	got, err := reloaded.Resolve(mentor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yamada", got.Name)
	assert.Equal(t, RoleMentor, got.Role)

	list := reloaded.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Abe", list[0].Name, "list is sorted by name")
}

func TestDirectory_AddRejectsDuplicateName(t *testing.T) {
	d, err := LoadDirectory(context.Background(), store.NewMemoryBlobRepo())
	require.NoError(t, err)

	_, err = d.Add("Sato", RoleNewbie, "")
	require.NoError(t, err)
	_, err = d.Add("sato", RoleMentor, "")
	assert.Error(t, err)
}

func TestDirectory_AddValidates(t *testing.T) {
	d, err := LoadDirectory(context.Background(), store.NewMemoryBlobRepo())
	require.NoError(t, err)

	_, err = d.Add("  ", RoleNewbie, "")
	assert.Error(t, err)
	_, err = d.Add("Kato", Role("owner"), "")
	assert.Error(t, err)
}

func TestDirectory_Lookup(t *testing.T) {
	d, err := LoadDirectory(context.Background(), store.NewMemoryBlobRepo())
	require.NoError(t, err)
	u, err := d.Add("Ito", RoleAdmin, "")
	require.NoError(t, err)

	byID, err := d.Lookup(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, byID)

	byName, err := d.Lookup("ITO")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = d.Lookup("nobody")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadDirectory_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryBlobRepo()
	require.NoError(t, repo.Save(ctx, store.KeyUsers, []byte(`{not json`)))

	_, err := LoadDirectory(ctx, repo)
	assert.Error(t, err)
}

func TestDirectory_Remove(t *testing.T) {
	d, err := LoadDirectory(context.Background(), store.NewMemoryBlobRepo())
	require.NoError(t, err)

	u, err := d.Add("Abe", RoleNewbie, "clinic-1")
	require.NoError(t, err)

	assert.True(t, d.Remove(u.ID))
	assert.False(t, d.Remove(u.ID))
	_, err = d.Resolve(u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, d.List())
}
