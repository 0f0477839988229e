package models

import "time"

// ContentEntry is a row of the content_entries table.
type ContentEntry struct {
	Key       string    `db:"content_key"`
	Value     string    `db:"content_value"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (ContentEntry) TableName() string {
	return "content_entries"
}
