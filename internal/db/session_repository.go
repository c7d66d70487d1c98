package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Patrick74531/minigame-sub000/internal/model"
)

// SessionRepository persists resolved arena sessions.
// Implements session.Repository.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Save upserts the session record. Re-saving identical geometry is a
// no-op apart from the timestamp, matching the idempotent resolver.
func (r *SessionRepository) Save(ctx context.Context, s *model.ArenaSession) error {
	query := `
		INSERT INTO arena_sessions (
			id, base_x, base_z, half_width, half_height,
			portal0_x, portal0_z, portal1_x, portal1_z, portal2_x, portal2_z,
			lane_top, lane_mid, lane_bottom
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			base_x = EXCLUDED.base_x,
			base_z = EXCLUDED.base_z,
			half_width = EXCLUDED.half_width,
			half_height = EXCLUDED.half_height,
			portal0_x = EXCLUDED.portal0_x,
			portal0_z = EXCLUDED.portal0_z,
			portal1_x = EXCLUDED.portal1_x,
			portal1_z = EXCLUDED.portal1_z,
			portal2_x = EXCLUDED.portal2_x,
			portal2_z = EXCLUDED.portal2_z,
			lane_top = EXCLUDED.lane_top,
			lane_mid = EXCLUDED.lane_mid,
			lane_bottom = EXCLUDED.lane_bottom
	`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Base.X, s.Base.Y, s.HalfWidth, s.HalfHeight,
		s.Portals[0].X, s.Portals[0].Y,
		s.Portals[1].X, s.Portals[1].Y,
		s.Portals[2].X, s.Portals[2].Y,
		s.LanePortals[0], s.LanePortals[1], s.LanePortals[2],
	)
	if err != nil {
		return fmt.Errorf("saving arena session %q: %w", s.ID, err)
	}
	return nil
}

// Load returns the session record, or nil, nil when it does not exist.
func (r *SessionRepository) Load(ctx context.Context, id string) (*model.ArenaSession, error) {
	query := `
		SELECT id, base_x, base_z, half_width, half_height,
		       portal0_x, portal0_z, portal1_x, portal1_z, portal2_x, portal2_z,
		       lane_top, lane_mid, lane_bottom, created_at
		FROM arena_sessions
		WHERE id = $1
	`

	var s model.ArenaSession
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Base.X, &s.Base.Y, &s.HalfWidth, &s.HalfHeight,
		&s.Portals[0].X, &s.Portals[0].Y,
		&s.Portals[1].X, &s.Portals[1].Y,
		&s.Portals[2].X, &s.Portals[2].Y,
		&s.LanePortals[0], &s.LanePortals[1], &s.LanePortals[2],
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading arena session %q: %w", id, err)
	}
	return &s, nil
}

// Delete removes the session and its pads (cascade).
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM arena_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting arena session %q: %w", id, err)
	}
	return nil
}
