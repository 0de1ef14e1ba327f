package insights

// Credit scores run on the 300–900 bureau scale.
const (
	MinCreditScore = 300
	MaxCreditScore = 900
)

// CreditRating is the band a credit score falls in.
type CreditRating string

const (
	RatingExcellent CreditRating = "Excellent"
	RatingGood      CreditRating = "Good"
	RatingFair      CreditRating = "Fair"
	RatingPoor      CreditRating = "Poor"
)

// RateCreditScore maps a score to its band.
func RateCreditScore(score int) CreditRating {
	switch {
	case score >= 750:
		return RatingExcellent
	case score >= 650:
		return RatingGood
	case score >= 550:
		return RatingFair
	default:
		return RatingPoor
	}
}

// ScoreProgress is the score's position on the 300–900 scale as a percentage,
// clamped to [0, 100].
func ScoreProgress(score int) float64 {
	pct := float64(score-MinCreditScore) / float64(MaxCreditScore-MinCreditScore) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
