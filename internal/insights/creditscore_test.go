package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateCreditScore(t *testing.T) {
	tests := []struct {
		score int
		want  CreditRating
	}{
		{900, RatingExcellent},
		{750, RatingExcellent},
		{749, RatingGood},
		{650, RatingGood},
		{649, RatingFair},
		{550, RatingFair},
		{549, RatingPoor},
		{300, RatingPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RateCreditScore(tt.score), "score %d", tt.score)
	}
}

func TestScoreProgress(t *testing.T) {
	assert.Equal(t, 0.0, ScoreProgress(250))
	assert.Equal(t, 0.0, ScoreProgress(MinCreditScore))
	assert.Equal(t, 50.0, ScoreProgress(600))
	assert.InDelta(t, 75.0, ScoreProgress(750), 0.001)
	assert.Equal(t, 100.0, ScoreProgress(MaxCreditScore))
	assert.Equal(t, 100.0, ScoreProgress(1000))
}
