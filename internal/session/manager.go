// Package session memoizes resolved arena geometry. A routing table is
// computed once per session and read-only afterwards; concurrent callers
// share the first computation instead of duplicating it.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Patrick74531/minigame-sub000/internal/geom"
	"github.com/Patrick74531/minigame-sub000/internal/lane"
	"github.com/Patrick74531/minigame-sub000/internal/model"
)

// Repository persists resolved arena sessions. Implementations live in
// internal/db; a nil repository keeps the manager purely in-memory.
type Repository interface {
	Save(ctx context.Context, s *model.ArenaSession) error
	Load(ctx context.Context, id string) (*model.ArenaSession, error)
}

// Manager caches one immutable routing table per arena session.
type Manager struct {
	settings lane.Settings
	repo     Repository

	tables sync.Map // map[string]*lane.RoutingTable — sessionID → table
	group  singleflight.Group

	tableCount atomic.Int32 // cached count (O(1) access)
}

// NewManager creates a session manager. repo may be nil.
func NewManager(settings lane.Settings, repo Repository) *Manager {
	return &Manager{
		settings: settings,
		repo:     repo,
	}
}

// Resolve returns the routing table for the session, computing and
// persisting it on first call. Concurrent first calls collapse into a
// single computation; identical inputs always produce identical tables.
func (m *Manager) Resolve(ctx context.Context, sessionID string, base geom.Point, bounds geom.ArenaBounds) (*lane.RoutingTable, error) {
	if v, ok := m.tables.Load(sessionID); ok {
		return v.(*lane.RoutingTable), nil
	}

	v, err, _ := m.group.Do(sessionID, func() (any, error) {
		// A concurrent caller may have won the race before Do coalesced.
		if v, ok := m.tables.Load(sessionID); ok {
			return v, nil
		}

		table := lane.NewRoutingTable(base, bounds, m.settings, nil)

		if m.repo != nil {
			if err := m.repo.Save(ctx, sessionRecord(sessionID, table)); err != nil {
				return nil, fmt.Errorf("persisting arena session %s: %w", sessionID, err)
			}
		}

		m.tables.Store(sessionID, table)
		m.tableCount.Add(1)

		slog.Info("arena session resolved",
			"session", sessionID,
			"base_x", base.X,
			"base_z", base.Y,
			"portals", len(table.Portals()))
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*lane.RoutingTable), nil
}

// Restore rebuilds the routing table for a previously persisted session.
// Recomputation from the stored base and bounds is idempotent, so the
// geometry matches what the session saw originally.
func (m *Manager) Restore(ctx context.Context, sessionID string) (*lane.RoutingTable, error) {
	if m.repo == nil {
		return nil, fmt.Errorf("restoring arena session %s: no repository configured", sessionID)
	}

	rec, err := m.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading arena session %s: %w", sessionID, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("arena session %s not found", sessionID)
	}

	return m.Resolve(ctx, sessionID, rec.Base, rec.Bounds())
}

// Lookup returns the cached table without computing anything.
func (m *Manager) Lookup(sessionID string) (*lane.RoutingTable, bool) {
	v, ok := m.tables.Load(sessionID)
	if !ok {
		return nil, false
	}
	return v.(*lane.RoutingTable), true
}

// Invalidate drops the cached table for the session.
func (m *Manager) Invalidate(sessionID string) {
	if _, ok := m.tables.LoadAndDelete(sessionID); ok {
		m.tableCount.Add(-1)
		slog.Info("arena session invalidated", "session", sessionID)
	}
}

// TableCount returns the number of cached routing tables.
func (m *Manager) TableCount() int {
	return int(m.tableCount.Load())
}

func sessionRecord(sessionID string, table *lane.RoutingTable) *model.ArenaSession {
	rec := &model.ArenaSession{
		ID:         sessionID,
		Base:       table.Base(),
		HalfWidth:  table.Bounds().HalfWidth,
		HalfHeight: table.Bounds().HalfHeight,
		CreatedAt:  time.Now(),
	}
	routing := table.Routing()
	copy(rec.Portals[:], routing.Portals)
	for l := lane.Lane(0); l < lane.Count; l++ {
		rec.LanePortals[l] = routing.PortalIndex[l]
	}
	return rec
}
