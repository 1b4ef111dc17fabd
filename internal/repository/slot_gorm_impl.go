package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"
	domainRepo "github.com/lotfi-dotcom/artztTerminapp/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormSlotStore struct {
	db *gorm.DB
}

// NewGormSlotStore keeps slots as rows of the storage_slots table.
func NewGormSlotStore(db *gorm.DB) domainRepo.SlotStore {
	return &gormSlotStore{db: db}
}

func (s *gormSlotStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var slot entity.StorageSlot
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("find slot %s: %w", key, err)
	}
	return []byte(slot.Value), true, nil
}

func (s *gormSlotStore) Set(ctx context.Context, key string, value []byte) error {
	slot := &entity.StorageSlot{Key: key, Value: string(value)}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(slot).Error
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", key, err)
	}
	return nil
}
