package repository

import "time"

// StateRow represents one app_state key/value row.
type StateRow struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
