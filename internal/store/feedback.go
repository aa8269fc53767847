package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackStats summarizes stored ratings.
type FeedbackStats struct {
	Total             int64
	AverageRating     float64
	HelpfulPercentage float64
}

// FeedbackRepo persists user feedback on answered problems.
type FeedbackRepo interface {
	Create(ctx context.Context, problemID string, accuracy int, clarity, comments string, isHelpful bool) (*Feedback, error)
	ByProblem(ctx context.Context, problemID string) ([]Feedback, error)
	Stats(ctx context.Context) (FeedbackStats, error)
}

type feedbackRepo struct {
	db *gorm.DB
}

func (r *feedbackRepo) Create(ctx context.Context, problemID string, accuracy int, clarity, comments string, isHelpful bool) (*Feedback, error) {
	f := &Feedback{
		ID:             uuid.NewString(),
		ProblemID:      problemID,
		AccuracyRating: accuracy,
		ClarityRating:  clarity,
		Comments:       comments,
		IsHelpful:      isHelpful,
	}
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return f, nil
}

func (r *feedbackRepo) ByProblem(ctx context.Context, problemID string) ([]Feedback, error) {
	var out []Feedback
	err := r.db.WithContext(ctx).
		Where("problem_id = ?", problemID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("feedback for problem %s: %w", problemID, err)
	}
	return out, nil
}

func (r *feedbackRepo) Stats(ctx context.Context) (FeedbackStats, error) {
	var stats FeedbackStats
	db := r.db.WithContext(ctx).Model(&Feedback{})

	if err := db.Count(&stats.Total).Error; err != nil {
		return FeedbackStats{}, fmt.Errorf("feedback stats: %w", err)
	}
	if stats.Total == 0 {
		return stats, nil
	}

	var sums struct {
		RatingSum    float64
		HelpfulCount float64
	}
	err := r.db.WithContext(ctx).Model(&Feedback{}).
		Select("sum(accuracy_rating) as rating_sum, sum(case when is_helpful then 1 else 0 end) as helpful_count").
		Scan(&sums).Error
	if err != nil {
		return FeedbackStats{}, fmt.Errorf("feedback stats: %w", err)
	}

	stats.AverageRating = sums.RatingSum / float64(stats.Total)
	stats.HelpfulPercentage = sums.HelpfulCount / float64(stats.Total) * 100
	return stats, nil
}
