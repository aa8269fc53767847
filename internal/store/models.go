package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/mathroute/internal/solution"
)

// Problem is one answered problem with its serialized derivation.
type Problem struct {
	ID         string `gorm:"primaryKey;size:36"`
	Problem    string `gorm:"not null"`
	Solution   string `gorm:"not null"` // solution.Solution as JSON
	Category   string `gorm:"index;not null"`
	Difficulty string `gorm:"not null"`
	Source     string `gorm:"not null"`
	CreatedAt  time.Time
}

// DecodeSolution deserializes the stored derivation.
func (p *Problem) DecodeSolution() (solution.Solution, error) {
	var sol solution.Solution
	if err := json.Unmarshal([]byte(p.Solution), &sol); err != nil {
		return solution.Solution{}, fmt.Errorf("decode solution for problem %s: %w", p.ID, err)
	}
	return sol, nil
}

// Feedback is one user rating. ProblemID is a weak reference: feedback
// outlives problem deletion.
type Feedback struct {
	ID             string `gorm:"primaryKey;size:36"`
	ProblemID      string `gorm:"index;not null"`
	AccuracyRating int    `gorm:"not null"`
	ClarityRating  string `gorm:"not null"`
	Comments       string
	IsHelpful      bool
	CreatedAt      time.Time
}

// Activity is one routing pipeline event.
type Activity struct {
	ID        string `gorm:"primaryKey;size:36"`
	Action    string `gorm:"not null"`
	Source    string `gorm:"index;not null"`
	Details   string
	CreatedAt time.Time `gorm:"index"`
}
