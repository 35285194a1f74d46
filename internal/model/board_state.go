package model

import "time"

// BoardState is the persisted JSON column list of one board.
type BoardState struct {
	BoardKey  string    `gorm:"primaryKey"`
	Columns   string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
