package repository

import (
	"context"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
	"gorm.io/gorm"
)

// NotificationLogFilter narrows a log listing. Zero values match everything.
type NotificationLogFilter struct {
	Kind   string
	Status string
	Email  string
	Since  *time.Time
}

type NotificationLogRepository struct {
	db *gorm.DB
}

func NewNotificationLogRepository(db *gorm.DB) *NotificationLogRepository {
	return &NotificationLogRepository{db: db}
}

func (r *NotificationLogRepository) Create(ctx context.Context, entry *domain.NotificationLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns one page of log entries, newest first, and the total count.
func (r *NotificationLogRepository) List(ctx context.Context, filter NotificationLogFilter, page, pageSize int) ([]domain.NotificationLog, int64, error) {
	var entries []domain.NotificationLog
	var total int64

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	query := r.db.WithContext(ctx).Model(&domain.NotificationLog{})

	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&entries).Error

	return entries, total, err
}

// CountByStatus counts entries of kind per status since the given time.
func (r *NotificationLogRepository) CountByStatus(ctx context.Context, kind string, since time.Time) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.NotificationLog{}).
		Select("status, COUNT(*) AS count").
		Where("kind = ? AND created_at >= ?", kind, since).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}
