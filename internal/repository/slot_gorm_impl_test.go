package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGormSlotStore_Get(t *testing.T) {
	db, mock := newMockGorm(t)
	store := NewGormSlotStore(db)

	mock.ExpectQuery(`SELECT \* FROM "storage_slots"`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow(testSlotKey, `[{"id":"a"}]`, time.Now()))

	value, found, err := store.Get(context.Background(), testSlotKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, string(value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSlotStore_GetAbsent(t *testing.T) {
	db, mock := newMockGorm(t)
	store := NewGormSlotStore(db)

	mock.ExpectQuery(`SELECT \* FROM "storage_slots"`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

	_, found, err := store.Get(context.Background(), testSlotKey)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSlotStore_GetError(t *testing.T) {
	db, mock := newMockGorm(t)
	store := NewGormSlotStore(db)

	mock.ExpectQuery(`SELECT \* FROM "storage_slots"`).WillReturnError(errors.New("connection reset"))

	_, _, err := store.Get(context.Background(), testSlotKey)
	assert.Error(t, err)
}

func TestGormSlotStore_SetUpserts(t *testing.T) {
	db, mock := newMockGorm(t)
	store := NewGormSlotStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "storage_slots" .* ON CONFLICT \("key"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Set(context.Background(), testSlotKey, []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSlotStore_SetError(t *testing.T) {
	db, mock := newMockGorm(t)
	store := NewGormSlotStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "storage_slots"`).WillReturnError(errors.New("read-only transaction"))
	mock.ExpectRollback()

	assert.Error(t, store.Set(context.Background(), testSlotKey, []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
