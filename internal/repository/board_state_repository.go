package repository

import (
	"context"
	"errors"

	"multikanban/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BoardStateRepository keeps one JSON column list per board key in postgres.
type BoardStateRepository struct {
	db *gorm.DB
}

func NewBoardStateRepository(db *gorm.DB) *BoardStateRepository {
	return &BoardStateRepository{db: db}
}

// Get returns the stored column list for key. A missing row is not an error.
func (r *BoardStateRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var state model.BoardState
	if err := r.db.WithContext(ctx).Where("board_key = ?", key).First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return state.Columns, true, nil
}

// Set inserts or replaces the column list stored under key.
func (r *BoardStateRepository) Set(ctx context.Context, key, value string) error {
	state := model.BoardState{BoardKey: key, Columns: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "board_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"columns", "updated_at"}),
	}).Create(&state).Error
}
