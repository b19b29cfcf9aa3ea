package staff

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinictrack/clinictrack/internal/store"
)

// ErrNotFound is returned when a user ID or name does not resolve.
var ErrNotFound = errors.New("user not found")

// User is a clinic staff member.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	ClinicID  string    `json:"clinicId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Directory is the clinic's staff list, persisted as a single document
// under store.KeyUsers. It is not safe for concurrent use.
type Directory struct {
	repo  store.BlobRepo
	users []User
}

// LoadDirectory reads the staff list from repo. A missing document yields
// an empty directory.
func LoadDirectory(ctx context.Context, repo store.BlobRepo) (*Directory, error) {
	d := &Directory{repo: repo}
	blob, ok, err := repo.Load(ctx, store.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !ok {
		return d, nil
	}
	if err := json.Unmarshal(blob, &d.users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return d, nil
}

// Add registers a new staff member and returns it. Names must be unique
// ignoring case. The directory is not saved; call Save.
func (d *Directory) Add(name string, role Role, clinicID string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, errors.New("name is required")
	}
	if !role.Valid() {
		return User{}, fmt.Errorf("unknown role %q", role)
	}
	if _, err := d.FindByName(name); err == nil {
		return User{}, fmt.Errorf("user %q already exists", name)
	}

	u := User{
		ID:        uuid.NewString(),
		Name:      name,
		Role:      role,
		ClinicID:  clinicID,
		CreatedAt: time.Now().UTC(),
	}
	d.users = append(d.users, u)
	return u, nil
}

// Resolve returns the user with the given ID.
func (d *Directory) Resolve(id string) (User, error) {
	for _, u := range d.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// FindByName returns the user whose name matches, ignoring case.
func (d *Directory) FindByName(name string) (User, error) {
	for _, u := range d.users {
		if strings.EqualFold(u.Name, strings.TrimSpace(name)) {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Lookup resolves ref as an ID first, then as a name.
func (d *Directory) Lookup(ref string) (User, error) {
	if u, err := d.Resolve(ref); err == nil {
		return u, nil
	}
	return d.FindByName(ref)
}

// Remove drops the user with the given ID. It reports whether the user
// was present. The directory is not saved.
func (d *Directory) Remove(id string) bool {
	for i, u := range d.users {
		if u.ID == id {
			d.users = append(d.users[:i], d.users[i+1:]...)
			return true
		}
	}
	return false
}

// List returns every user sorted by name.
func (d *Directory) List() []User {
	out := make([]User, len(d.users))
	copy(out, d.users)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Save writes the staff list back to storage.
func (d *Directory) Save(ctx context.Context) error {
	users := d.users
	if users == nil {
		users = []User{}
	}
	blob, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	return d.repo.Save(ctx, store.KeyUsers, blob)
}
