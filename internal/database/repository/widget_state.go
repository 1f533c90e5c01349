package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/jundev/oneline/internal/database"
	"github.com/jundev/oneline/internal/widget"
)

var stateKeys = []any{widget.KeyHasWrittenToday, widget.KeyCurrentStreak, widget.KeyLastEntryContent}

// WidgetStateRepo keeps the widget snapshot in the app_state key/value table.
type WidgetStateRepo struct {
	db *sql.DB
}

func NewWidgetStateRepo(db *sql.DB) *WidgetStateRepo { return &WidgetStateRepo{db: db} }

// Rows returns the raw key/value rows for the widget keys.
func (r *WidgetStateRepo) Rows(ctx context.Context) ([]StateRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value, updated_at FROM app_state WHERE key IN (?, ?, ?) ORDER BY key`, stateKeys...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []StateRow
	for rows.Next() {
		var row StateRow
		var updatedAt string
		if err := rows.Scan(&row.Key, &row.Value, &updatedAt); err != nil {
			return nil, err
		}
		row.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		out = append(out, row)
	}
	return out, rows.Err()
}

// ReadState reads all three keys in a single statement, so a concurrent
// WriteState is either fully visible or not at all. Unparsable values fall
// back to their defaults.
func (r *WidgetStateRepo) ReadState(ctx context.Context) (widget.State, error) {
	rows, err := r.Rows(ctx)
	if err != nil {
		return widget.DefaultState(), fmt.Errorf("read widget state: %w", err)
	}
	st := widget.DefaultState()
	for _, row := range rows {
		switch row.Key {
		case widget.KeyHasWrittenToday:
			if v, err := strconv.ParseBool(row.Value); err == nil {
				st.HasWrittenToday = v
			}
		case widget.KeyCurrentStreak:
			if v, err := strconv.Atoi(row.Value); err == nil {
				st.CurrentStreak = v
			}
		case widget.KeyLastEntryContent:
			st.LastEntryContent = widget.StringPtr(row.Value)
		}
	}
	return st.Normalized(), nil
}

// WriteState replaces all three keys in one transaction. Absent content
// deletes the row rather than storing an empty string.
func (r *WidgetStateRepo) WriteState(ctx context.Context, s widget.State) error {
	now := database.Now().Format(time.RFC3339)
	err := database.WithTx(r.db, func(tx *sql.Tx) error {
		upsert := func(key, value string) error {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO app_state(key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at;
			`, key, value, now)
			return err
		}
		if err := upsert(widget.KeyHasWrittenToday, strconv.FormatBool(s.HasWrittenToday)); err != nil {
			return err
		}
		if err := upsert(widget.KeyCurrentStreak, strconv.Itoa(s.CurrentStreak)); err != nil {
			return err
		}
		if s.LastEntryContent != nil && *s.LastEntryContent != "" {
			return upsert(widget.KeyLastEntryContent, *s.LastEntryContent)
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, widget.KeyLastEntryContent)
		return err
	})
	if err != nil {
		return fmt.Errorf("write widget state: %w", err)
	}
	return nil
}

// Clear removes every widget key; the next read returns defaults.
func (r *WidgetStateRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE key IN (?, ?, ?)`, stateKeys...)
	return err
}

// UpdatedAt reports when the host app last synced the snapshot.
func (r *WidgetStateRepo) UpdatedAt(ctx context.Context) (time.Time, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT MAX(updated_at) FROM app_state WHERE key IN (?, ?, ?)`, stateKeys...)
	var raw sql.NullString
	if err := row.Scan(&raw); err != nil {
		return time.Time{}, false, err
	}
	if !raw.Valid {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, raw.String)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
