package pipelinehandler

import (
	"hr-pipeline/models"
	"math/rand/v2"
)

const (
	minRating = 3
	maxRating = 5

	passComment = "Strong candidate, good fit for the role."
	failComment = "Did not meet the technical requirements."
)

// ScoreFunc выставляет оценку по критерию карты оценки
type ScoreFunc func(criterion string) int

func RandomScorer() ScoreFunc {
	return func(string) int {
		return rand.IntN(maxRating-minRating+1) + minRating
	}
}

func newScorecard(score ScoreFunc, verdict models.Verdict) models.Scorecard {
	card := models.Scorecard{
		Ratings: make(map[string]int, len(models.ScorecardCriteria)),
	}
	for _, criterion := range models.ScorecardCriteria {
		card.Ratings[criterion] = clampRating(score(criterion))
	}
	if verdict == models.PassVerdict {
		card.Comments = passComment
	} else {
		card.Comments = failComment
	}
	return card
}

func clampRating(rating int) int {
	return max(minRating, min(maxRating, rating))
}
