package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Patrick74531/minigame-sub000/internal/model"
)

func TestPadRepository_ReplaceAndLoad(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionRepository(testPool)
	pads := NewPadRepository(testPool)

	require.NoError(t, sessions.Save(ctx, testSession("sess-pads")))

	layout := []model.BuildingPad{
		{Type: "barracks", X: 9, Z: -1},
		{Type: "tower", X: 12, Z: 0},
		{Type: "barracks", X: 1, Z: 15},
	}
	require.NoError(t, pads.ReplaceAll(ctx, "sess-pads", layout))

	got, err := pads.LoadBySession(ctx, "sess-pads")
	require.NoError(t, err)
	assert.Equal(t, layout, got)

	// Replacing swaps the whole layout.
	smaller := []model.BuildingPad{{Type: "mine", X: -3, Z: 4}}
	require.NoError(t, pads.ReplaceAll(ctx, "sess-pads", smaller))

	got, err = pads.LoadBySession(ctx, "sess-pads")
	require.NoError(t, err)
	assert.Equal(t, smaller, got)

	// Empty layout clears the table for the session.
	require.NoError(t, pads.ReplaceAll(ctx, "sess-pads", nil))
	got, err = pads.LoadBySession(ctx, "sess-pads")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPadRepository_CascadeDelete(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionRepository(testPool)
	pads := NewPadRepository(testPool)

	require.NoError(t, sessions.Save(ctx, testSession("sess-cascade")))
	require.NoError(t, pads.ReplaceAll(ctx, "sess-cascade", []model.BuildingPad{
		{Type: "tower", X: 1, Z: 1},
	}))

	require.NoError(t, sessions.Delete(ctx, "sess-cascade"))

	got, err := pads.LoadBySession(ctx, "sess-cascade")
	require.NoError(t, err)
	assert.Empty(t, got)
}
