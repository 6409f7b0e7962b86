package models

import "time"

// Timestamps is embedded by every timestamped entity. The store sets both
// columns itself, so GORM's automatic time tracking is switched off.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false;check:updated_at >= created_at" json:"updated_at"`
}

// Stamps exposes the embedded timestamps to generic store code.
func (t *Timestamps) Stamps() *Timestamps {
	return t
}

// Record is implemented by every entity that embeds Timestamps.
type Record interface {
	Stamps() *Timestamps
}

// Option is a row projection used to fill foreign-key selection fields.
type Option struct {
	Value uint64 `json:"value"`
	Label string `json:"label"`
}
