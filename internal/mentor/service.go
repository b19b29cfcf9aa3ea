package mentor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinictrack/clinictrack/internal/progress"
	"github.com/clinictrack/clinictrack/internal/rank"
	"github.com/clinictrack/clinictrack/internal/skillcatalog"
	"github.com/clinictrack/clinictrack/internal/staff"
	"github.com/clinictrack/clinictrack/internal/store"
)

// Identity resolves staff members by ID.
type Identity interface {
	Resolve(id string) (staff.User, error)
}

// Options wires a Service.
type Options struct {
	Catalog *skillcatalog.Catalog // required
	Blobs   store.BlobRepo        // required
	Events  store.EventRepo       // optional audit log
	Staff   Identity              // optional; when set, targets must exist
	Logger  *zerolog.Logger       // optional; nil discards
	Config  Config
}

// Service owns the progress ledger and is its only writer. Reads and
// in-memory writes are serialized by mu; durable writes are serialized by
// persistMu and always write the ledger as it stands at write time. A
// failed write is rolled back before persistMu is released, so no other
// save can capture the change between the failure and the rollback.
type Service struct {
	catalog *skillcatalog.Catalog
	blobs   store.BlobRepo
	events  store.EventRepo
	staff   Identity
	log     zerolog.Logger
	cfg     Config
	now     func() time.Time

	mu     sync.Mutex
	ledger *progress.Ledger
	gen    uint64 // bumped by every local apply and rollback

	persistMu sync.Mutex
	savedGen  uint64 // gen captured by the last successful save
}

// NewService creates a mentor service with an empty ledger. Call Load to
// read the stored ledger.
func NewService(opts Options) *Service {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "mentor").Logger()
	}
	cfg := opts.Config
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = DefaultConfig().PersistTimeout
	}
	return &Service{
		catalog: opts.Catalog,
		blobs:   opts.Blobs,
		events:  opts.Events,
		staff:   opts.Staff,
		log:     log,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
		ledger:  progress.NewLedger(),
	}
}

// Load replaces the in-memory ledger with the stored one. A missing
// document leaves an empty ledger.
func (s *Service) Load(ctx context.Context) error {
	blob, ok, err := s.blobs.Load(ctx, store.KeySkillProgress)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	ledger := progress.NewLedger()
	if ok {
		ledger, err = progress.DecodeLedger(blob)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.ledger = ledger
	s.mu.Unlock()

	s.log.Debug().Int("users", len(ledger.Users())).Msg("ledger loaded")
	return nil
}

// UpdateRequest describes one mentor scoring action.
type UpdateRequest struct {
	TargetUserID string
	SkillID      string
	Level        progress.Level
	Comment      string
}

// UpdateProgress validates and applies a progress update, then writes the
// ledger to storage in the background. Validation failures return an
// error and leave the ledger untouched. The returned Pending reports the
// durable outcome; on failure the in-memory change is rolled back.
func (s *Service) UpdateProgress(ctx context.Context, actor staff.User, req UpdateRequest) (*Pending, error) {
	if err := s.validate(actor, req); err != nil {
		s.log.Info().
			Err(err).
			Str("actor", actor.ID).
			Str("target", req.TargetUserID).
			Str("skill", req.SkillID).
			Msg("progress update rejected")
		return nil, err
	}

	rec, prev, gen := s.applyLocally(req)
	p := &Pending{Record: rec, done: make(chan struct{})}
	go s.persist(ctx, actor, rec, prev, gen, p)
	return p, nil
}

// Apply is UpdateProgress followed by waiting for the durable write.
func (s *Service) Apply(ctx context.Context, actor staff.User, req UpdateRequest) (progress.Record, error) {
	p, err := s.UpdateProgress(ctx, actor, req)
	if err != nil {
		return progress.Record{}, err
	}
	if err := p.Wait(ctx); err != nil {
		return progress.Record{}, err
	}
	return p.Record, nil
}

func (s *Service) validate(actor staff.User, req UpdateRequest) error {
	if !actor.Role.CanWriteProgress() {
		return fmt.Errorf("%w: %s may not record progress", ErrUnauthorized, actor.Role.DisplayName())
	}
	if !s.catalog.Has(req.SkillID) {
		return fmt.Errorf("%w: skill %q", ErrNotFound, req.SkillID)
	}
	if !req.Level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(req.Level))
	}
	if req.TargetUserID == "" {
		return fmt.Errorf("%w: empty target user", ErrNotFound)
	}
	if s.staff != nil {
		if _, err := s.staff.Resolve(req.TargetUserID); err != nil {
			return fmt.Errorf("%w: user %q", ErrNotFound, req.TargetUserID)
		}
	}
	return nil
}

// applyLocally upserts the record in memory and returns the ledger
// generation that contains it.
func (s *Service) applyLocally(req UpdateRequest) (progress.Record, *progress.Record, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, prev := s.ledger.Upsert(req.TargetUserID, req.SkillID, req.Level, req.Comment, s.now())
	s.gen++
	return rec, prev, s.gen
}

// persist writes the whole ledger, rolling back rec on failure.
func (s *Service) persist(ctx context.Context, actor staff.User, rec progress.Record, prev *progress.Record, gen uint64, p *Pending) {
	defer close(p.done)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.PersistTimeout)
	defer cancel()

	if err := s.saveOrRollback(ctx, rec, prev, gen); err != nil {
		p.err = &PersistenceError{Key: store.KeySkillProgress, Err: err}
		return
	}

	s.log.Debug().
		Str("actor", actor.ID).
		Str("target", rec.UserID).
		Str("skill", rec.SkillID).
		Int("level", int(rec.Level)).
		Msg("progress recorded")

	if s.events == nil {
		return
	}
	data := store.ProgressEventData{
		ActorID: actor.ID,
		UserID:  rec.UserID,
		SkillID: rec.SkillID,
		Level:   int(rec.Level),
		Comment: rec.Comment,
	}
	if prev != nil {
		l := int(prev.Level)
		data.PreviousLevel = &l
	}
	// The ledger is already durable; a lost audit entry is logged, not surfaced.
	if err := s.events.AppendProgressEvent(ctx, data); err != nil {
		s.log.Warn().Err(err).Msg("failed to append progress event")
	}
}

// saveOrRollback writes the ledger under persistMu. If the write fails
// and no earlier save already stored generation gen, rec is rolled back
// and the rolled-back ledger is written so storage matches memory.
func (s *Service) saveOrRollback(ctx context.Context, rec progress.Record, prev *progress.Record, gen uint64) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	err := s.save(ctx)
	if err == nil {
		return nil
	}

	if s.savedGen >= gen {
		s.log.Warn().
			Err(err).
			Str("target", rec.UserID).
			Str("skill", rec.SkillID).
			Msg("ledger write failed after change was already stored")
		return nil
	}

	rolledBack := s.rollback(rec, prev)
	s.log.Error().
		Err(err).
		Str("target", rec.UserID).
		Str("skill", rec.SkillID).
		Bool("rolled_back", rolledBack).
		Msg("ledger write failed")

	if rolledBack {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.PersistTimeout)
		defer cancel()
		if rerr := s.save(rctx); rerr != nil {
			s.log.Warn().Err(rerr).Msg("failed to write rolled-back ledger")
		}
	}
	return err
}

// save writes the current ledger. Callers hold persistMu.
func (s *Service) save(ctx context.Context) error {
	s.mu.Lock()
	blob, err := json.Marshal(s.ledger)
	gen := s.gen
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := s.blobs.Save(ctx, store.KeySkillProgress, blob); err != nil {
		return err
	}
	s.savedGen = gen
	return nil
}

// rollback restores prev unless a later write has already replaced rec.
func (s *Service) rollback(rec progress.Record, prev *progress.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.ledger.Find(rec.UserID, rec.SkillID)
	if !ok || cur.Level != rec.Level || cur.Comment != rec.Comment || !cur.UpdatedAt.Equal(rec.UpdatedAt) {
		return false
	}
	s.ledger.Restore(rec.UserID, rec.SkillID, prev)
	s.gen++
	return true
}

// Records returns a copy of the user's ledger entries.
func (s *Service) Records(userID string) []progress.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Records(userID)
}

// Ledger returns a snapshot of the whole ledger.
func (s *Service) Ledger() *progress.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Clone()
}

// Summary is a user's aggregated training status.
type Summary struct {
	UserID     string
	Percent    int
	Rank       rank.Rank
	NextRank   *rank.Rank // nil at the top tier
	Needed     int        // percentage points to NextRank
	ByCategory map[skillcatalog.Category]int
	Records    []progress.Record
}

// Summary aggregates the user's records over the full catalog.
func (s *Service) Summary(userID string) Summary {
	recs := s.Records(userID)
	pct := progress.Compute(s.catalog.All(), recs)

	sum := Summary{
		UserID:     userID,
		Percent:    pct,
		Rank:       rank.Classify(pct),
		ByCategory: progress.ComputeByCategory(s.catalog, recs),
		Records:    recs,
	}
	if next, needed, ok := rank.Next(pct); ok {
		sum.NextRank = &next
		sum.Needed = needed
	}
	return sum
}
