package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jundev/oneline/internal/widget"
)

type clearer interface {
	Clear(ctx context.Context) error
}

// MaintenanceService houses destructive/ops actions surfaced through the CLI.
type MaintenanceService struct {
	Store    widget.StateStore
	DB       *sql.DB
	Notifier Notifier
}

// Reset wipes the shared widget state back to its defaults and asks the
// widgets to re-render.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.Store == nil {
		return fmt.Errorf("maintenance: store not configured")
	}
	if c, ok := s.Store.(clearer); ok {
		if err := c.Clear(ctx); err != nil {
			return fmt.Errorf("reset widget state: %w", err)
		}
	} else if err := s.Store.WriteState(ctx, widget.DefaultState()); err != nil {
		return fmt.Errorf("reset widget state: %w", err)
	}
	if s.DB != nil {
		_, _ = s.DB.ExecContext(ctx, "VACUUM")
	}
	if s.Notifier != nil {
		s.Notifier.RequestRerender()
	}
	return nil
}
