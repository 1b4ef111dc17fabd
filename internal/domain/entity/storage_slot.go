package entity

import "time"

// StorageSlot is a single key/value row holding a serialized collection.
type StorageSlot struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (StorageSlot) TableName() string {
	return "storage_slots"
}
