package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepo persists the routing pipeline activity log.
type ActivityRepo interface {
	Create(ctx context.Context, action, source, details string) (*Activity, error)
	Recent(ctx context.Context, limit int) ([]Activity, error)
	BySource(ctx context.Context, source string) ([]Activity, error)
}

type activityRepo struct {
	db *gorm.DB
}

func (r *activityRepo) Create(ctx context.Context, action, source, details string) (*Activity, error) {
	a := &Activity{
		ID:      uuid.NewString(),
		Action:  action,
		Source:  source,
		Details: details,
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}
	return a, nil
}

func (r *activityRepo) Recent(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []Activity
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return out, nil
}

func (r *activityRepo) BySource(ctx context.Context, source string) ([]Activity, error) {
	var out []Activity
	err := r.db.WithContext(ctx).
		Where("source = ?", source).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("activity by source %s: %w", source, err)
	}
	return out, nil
}
