package service

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jundev/oneline/internal/database"
	"github.com/jundev/oneline/internal/database/repository"
	"github.com/jundev/oneline/internal/widget"
)

func TestMaintenanceResetSQLite(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "widget.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewWidgetStateRepo(db)
	require.NoError(t, repo.WriteState(ctx, widget.State{HasWrittenToday: true, CurrentStreak: 9, LastEntryContent: widget.StringPtr("x")}))

	var reloads atomic.Int32
	svc := &MaintenanceService{Store: repo, DB: db, Notifier: NotifierFunc(func() { reloads.Add(1) })}
	require.NoError(t, svc.Reset(ctx))
	require.Equal(t, int32(1), reloads.Load())

	st, err := repo.ReadState(ctx)
	require.NoError(t, err)
	require.True(t, widget.DefaultState().Equal(st))
}

func TestMaintenanceResetMemory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := widget.NewMemoryStore()
	require.NoError(t, store.WriteState(ctx, widget.State{CurrentStreak: 3}))

	require.NoError(t, (&MaintenanceService{Store: store}).Reset(ctx))
	st, err := store.ReadState(ctx)
	require.NoError(t, err)
	require.True(t, widget.DefaultState().Equal(st))

	require.Error(t, (&MaintenanceService{}).Reset(ctx))
}
