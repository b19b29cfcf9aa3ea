package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinictrack/clinictrack/internal/config"
	"github.com/clinictrack/clinictrack/internal/logging"
	"github.com/clinictrack/clinictrack/internal/memo"
	"github.com/clinictrack/clinictrack/internal/mentor"
	"github.com/clinictrack/clinictrack/internal/skillcatalog"
	"github.com/clinictrack/clinictrack/internal/staff"
	"github.com/clinictrack/clinictrack/internal/store"
)

// ErrNoActor is returned when a command needs an acting user and none
// was given.
var ErrNoActor = errors.New("no acting user: pass --as <name or id>")

// Options configures Open.
type Options struct {
	Config  *config.Config
	DBPath  string    // overrides Config.Database.Path
	LogOut  io.Writer // log destination; nil discards
	Catalog *skillcatalog.Catalog
}

// App holds the opened store and the services built on it.
type App struct {
	Config  *config.Config
	Log     zerolog.Logger
	Catalog *skillcatalog.Catalog
	Store   *store.Store
	Blobs   store.BlobRepo
	Events  store.EventRepo
	Staff   *staff.Directory
	Mentor  *mentor.Service
}

// Open opens the database, loads the staff directory and progress ledger,
// and wires the mentor service.
func Open(ctx context.Context, opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	log := zerolog.Nop()
	if opts.LogOut != nil {
		l, err := logging.New(opts.LogOut, cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return nil, err
		}
		log = l
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		dbPath = p
	} else if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("create DB directory: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = skillcatalog.Default()
	}

	a := &App{
		Config:  cfg,
		Log:     log,
		Catalog: catalog,
		Store:   st,
		Blobs:   st.BlobRepo(),
		Events:  st.EventRepo(),
	}

	a.Staff, err = staff.LoadDirectory(ctx, a.Blobs)
	if err != nil {
		st.Close()
		return nil, err
	}

	a.Mentor = mentor.NewService(mentor.Options{
		Catalog: catalog,
		Blobs:   a.Blobs,
		Events:  a.Events,
		Staff:   a.Staff,
		Logger:  &a.Log,
		Config:  mentor.Config{PersistTimeout: cfg.Persist.Timeout},
	})
	if err := a.Mentor.Load(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("load progress: %w", err)
	}

	log.Debug().Str("db", dbPath).Int("staff", len(a.Staff.List())).Msg("app opened")
	return a, nil
}

// Close closes the underlying store.
func (a *App) Close() error {
	return a.Store.Close()
}

// Actor resolves the acting user from an ID or name.
func (a *App) Actor(ref string) (staff.User, error) {
	if strings.TrimSpace(ref) == "" {
		return staff.User{}, ErrNoActor
	}
	return a.Staff.Lookup(ref)
}

// Memos loads the memo book.
func (a *App) Memos(ctx context.Context) (*memo.Book, error) {
	return memo.LoadBook(ctx, a.Blobs)
}

// ClinicName returns the stored clinic name, falling back to the
// configured one.
func (a *App) ClinicName(ctx context.Context) (string, error) {
	blob, ok, err := a.Blobs.Load(ctx, store.KeyClinicName)
	if err != nil {
		return "", err
	}
	if !ok {
		return a.Config.Clinic.Name, nil
	}
	var name string
	if err := json.Unmarshal(blob, &name); err != nil {
		return "", fmt.Errorf("decode clinic name: %w", err)
	}
	return name, nil
}

// SetClinicName stores a new clinic name. Only admins may rename the clinic.
func (a *App) SetClinicName(ctx context.Context, actor staff.User, name string) error {
	if !actor.Role.CanManageStaff() {
		return fmt.Errorf("%w: only admins may rename the clinic", mentor.ErrUnauthorized)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("clinic name is empty")
	}
	blob, err := json.Marshal(name)
	if err != nil {
		return err
	}
	return a.Blobs.Save(ctx, store.KeyClinicName, blob)
}

// AddStaff registers a staff member. While the directory is empty the
// first user may be added without an actor and must be an admin;
// afterwards only admins may add staff.
func (a *App) AddStaff(ctx context.Context, actor *staff.User, name string, role staff.Role) (staff.User, error) {
	if len(a.Staff.List()) == 0 {
		if role != staff.RoleAdmin {
			return staff.User{}, errors.New("the first staff member must be an admin")
		}
	} else {
		if actor == nil {
			return staff.User{}, ErrNoActor
		}
		if !actor.Role.CanManageStaff() {
			return staff.User{}, fmt.Errorf("%w: only admins may add staff", mentor.ErrUnauthorized)
		}
	}

	u, err := a.Staff.Add(name, role, a.Config.Clinic.ID)
	if err != nil {
		return staff.User{}, err
	}
	if err := a.Staff.Save(ctx); err != nil {
		a.Staff.Remove(u.ID)
		return staff.User{}, fmt.Errorf("save staff: %w", err)
	}
	a.Log.Info().Str("user", u.ID).Str("role", string(role)).Msg("staff added")
	return u, nil
}
