package mentor

import (
	"context"

	"github.com/clinictrack/clinictrack/internal/progress"
)

// Pending is an update that has been applied in memory and is being
// written to storage.
type Pending struct {
	// Record is the ledger entry as applied in memory.
	Record progress.Record

	done chan struct{}
	err  error
}

// Done is closed once the durable write has finished.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Err returns the persistence outcome. It is only meaningful after Done
// is closed.
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Wait blocks until the write finishes or ctx is done. Abandoning the
// wait does not cancel the write.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
