package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Patrick74531/minigame-sub000/internal/model"
)

// PadRepository persists the building-pad layout per arena session.
type PadRepository struct {
	pool *pgxpool.Pool
}

// NewPadRepository creates a new pad repository.
func NewPadRepository(pool *pgxpool.Pool) *PadRepository {
	return &PadRepository{pool: pool}
}

// ReplaceAll swaps the stored pad layout for the session in one
// transaction. The layout is static per arena, so a full replace keeps
// the write path simple.
func (r *PadRepository) ReplaceAll(ctx context.Context, sessionID string, pads []model.BuildingPad) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning pad replace for session %q: %w", sessionID, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM building_pads WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("clearing pads for session %q: %w", sessionID, err)
	}

	if len(pads) > 0 {
		rows := make([][]any, 0, len(pads))
		for _, p := range pads {
			rows = append(rows, []any{sessionID, p.Type, p.X, p.Z})
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"building_pads"},
			[]string{"session_id", "pad_type", "x", "z"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("inserting %d pads for session %q: %w", len(pads), sessionID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing pad replace for session %q: %w", sessionID, err)
	}
	return nil
}

// LoadBySession returns the pad layout for the session.
func (r *PadRepository) LoadBySession(ctx context.Context, sessionID string) ([]model.BuildingPad, error) {
	query := `
		SELECT pad_type, x, z
		FROM building_pads
		WHERE session_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading pads for session %q: %w", sessionID, err)
	}
	defer rows.Close()

	var pads []model.BuildingPad
	for rows.Next() {
		var p model.BuildingPad
		if err := rows.Scan(&p.Type, &p.X, &p.Z); err != nil {
			return nil, fmt.Errorf("scanning pad row: %w", err)
		}
		pads = append(pads, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pad rows: %w", err)
	}
	return pads, nil
}
