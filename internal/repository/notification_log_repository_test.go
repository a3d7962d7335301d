package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/prostech/outbound-api/internal/database"
	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createLog(t *testing.T, repo *repository.NotificationLogRepository, kind, email, status string, at time.Time) *domain.NotificationLog {
	t.Helper()
	entry := &domain.NotificationLog{
		Kind:      kind,
		Recipient: email,
		Email:     email,
		Subject:   "subject",
		Status:    status,
		CreatedAt: at,
	}
	require.NoError(t, repo.Create(context.Background(), entry))
	return entry
}

func TestNotificationLogRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewNotificationLogRepository(db)

	entry := createLog(t, repo, "delivery_schedule", "lan@example.com", "sent", time.Now())

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", entry.ID.String())

	var found domain.NotificationLog
	require.NoError(t, db.First(&found, "id = ?", entry.ID).Error)
	assert.Equal(t, "lan@example.com", found.Email)
	assert.Equal(t, "sent", found.Status)
}

func TestNotificationLogRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewNotificationLogRepository(db)
	ctx := context.Background()
	base := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)

	createLog(t, repo, "delivery_schedule", "lan@example.com", "sent", base)
	createLog(t, repo, "delivery_schedule", "minh@example.com", "failed", base.Add(time.Hour))
	createLog(t, repo, "overdue_alert", "lan@example.com", "sent", base.Add(2*time.Hour))

	t.Run("newest first", func(t *testing.T) {
		entries, total, err := repo.List(ctx, repository.NotificationLogFilter{}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, entries, 3)
		assert.Equal(t, "overdue_alert", entries[0].Kind)
	})

	t.Run("filter by kind and status", func(t *testing.T) {
		entries, total, err := repo.List(ctx, repository.NotificationLogFilter{Kind: "delivery_schedule", Status: "failed"}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, entries, 1)
		assert.Equal(t, "minh@example.com", entries[0].Email)
	})

	t.Run("pagination", func(t *testing.T) {
		entries, total, err := repo.List(ctx, repository.NotificationLogFilter{}, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, entries, 1)
	})

	t.Run("since", func(t *testing.T) {
		since := base.Add(90 * time.Minute)
		entries, _, err := repo.List(ctx, repository.NotificationLogFilter{Since: &since}, 1, 10)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestNotificationLogRepository_CountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewNotificationLogRepository(db)
	base := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)

	createLog(t, repo, "delivery_schedule", "a@example.com", "sent", base)
	createLog(t, repo, "delivery_schedule", "b@example.com", "sent", base)
	createLog(t, repo, "delivery_schedule", "c@example.com", "skipped", base)
	createLog(t, repo, "overdue_alert", "d@example.com", "sent", base)

	counts, err := repo.CountByStatus(context.Background(), "delivery_schedule", base.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"sent": 2, "skipped": 1}, counts)
}
