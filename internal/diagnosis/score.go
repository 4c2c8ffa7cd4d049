// Package diagnosis scores completed diagnostic sessions and selects the
// questions for new ones.
package diagnosis

import "github.com/souconcursado/core/internal/models"

// Result pairs the raw percentage with its proficiency tier. The percentage
// is not rounded here; presentation layers may round for display.
type Result struct {
	Percentage float64      `json:"percentage"`
	Level      models.Level `json:"level"`
}

// Score converts a correct/total count into a percentage and level.
// total must be greater than zero; callers guard this, Score does not.
func Score(correct, total int) Result {
	percentage := float64(correct) / float64(total) * 100
	return Result{Percentage: percentage, Level: LevelFor(percentage)}
}

// LevelFor buckets a percentage into the three proficiency tiers. Both
// thresholds are inclusive: exactly 40 is still Iniciante and exactly 75 is
// still Intermediário.
func LevelFor(percentage float64) models.Level {
	if percentage <= 40 {
		return models.LevelIniciante
	}
	if percentage <= 75 {
		return models.LevelIntermediario
	}
	return models.LevelAvancado
}
