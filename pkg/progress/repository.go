package progress

import (
	"context"

	"gorm.io/gorm"

	"github.com/pitabwire/frame/datastore/pool"
)

// Repository persists match attempts.
type Repository struct {
	pool pool.Pool
}

// NewRepository creates a new attempt repository.
func NewRepository(pool pool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) db(ctx context.Context, readOnly bool) *gorm.DB {
	return r.pool.DB(ctx, readOnly)
}

// Record persists an attempt.
func (r *Repository) Record(ctx context.Context, a *Attempt) error {
	return r.db(ctx, false).Create(a).Error
}

// ListBySession returns a session's attempts, oldest first.
func (r *Repository) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Attempt, error) {
	var attempts []Attempt
	q := r.db(ctx, true).
		Where("session_id = ?", sessionID).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	err := q.Find(&attempts).Error
	return attempts, err
}

// CountAccepted returns how many of a session's attempts were accepted.
func (r *Repository) CountAccepted(ctx context.Context, sessionID string) (int64, error) {
	var n int64
	err := r.db(ctx, true).
		Model(&Attempt{}).
		Where("session_id = ? AND accepted = ?", sessionID, true).
		Count(&n).Error
	return n, err
}

// Migrate creates or updates the attempts table.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db(ctx, false).AutoMigrate(&Attempt{})
}
