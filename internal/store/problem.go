package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abhisek/mathroute/internal/solution"
)

// ProblemRepo persists answered problems.
type ProblemRepo interface {
	Create(ctx context.Context, problem string, sol solution.Solution,
		category solution.Category, difficulty solution.Difficulty, source solution.Source) (*Problem, error)
	Get(ctx context.Context, id string) (*Problem, error)
	ByCategory(ctx context.Context, category solution.Category) ([]Problem, error)
	SearchText(ctx context.Context, query string) ([]Problem, error)
	StatsByCategory(ctx context.Context) (map[string]int64, error)
}

type problemRepo struct {
	db *gorm.DB
}

func (r *problemRepo) Create(ctx context.Context, problem string, sol solution.Solution,
	category solution.Category, difficulty solution.Difficulty, source solution.Source) (*Problem, error) {

	raw, err := json.Marshal(sol)
	if err != nil {
		return nil, fmt.Errorf("encode solution: %w", err)
	}

	p := &Problem{
		ID:         uuid.NewString(),
		Problem:    problem,
		Solution:   string(raw),
		Category:   string(category),
		Difficulty: string(difficulty),
		Source:     string(source),
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("create problem: %w", err)
	}
	return p, nil
}

func (r *problemRepo) Get(ctx context.Context, id string) (*Problem, error) {
	var p Problem
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get problem %s: %w", id, err)
	}
	return &p, nil
}

func (r *problemRepo) ByCategory(ctx context.Context, category solution.Category) ([]Problem, error) {
	var out []Problem
	err := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("problems by category %s: %w", category, err)
	}
	return out, nil
}

func (r *problemRepo) SearchText(ctx context.Context, query string) ([]Problem, error) {
	var out []Problem
	err := r.db.WithContext(ctx).
		Where("problem LIKE ?", "%"+query+"%").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("search problems: %w", err)
	}
	return out, nil
}

func (r *problemRepo) StatsByCategory(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Category string
		N        int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&Problem{}).
		Select("category, count(*) as n").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("problem stats: %w", err)
	}

	stats := map[string]int64{"total": 0}
	for _, r := range rows {
		stats[r.Category] = r.N
		stats["total"] += r.N
	}
	return stats, nil
}
