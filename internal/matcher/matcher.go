// Package matcher converts a vocational answer map into the best-fitting
// profile via additive scoring over a fixed weight table.
package matcher

import "github.com/souconcursado/core/internal/models"

// Question slots of the vocational questionnaire. Slots 1-7 carry profile
// weight; AgeBand and CNH exist only for the eligibility filter.
const (
	SlotFormation   = 1
	SlotActivity    = 2
	SlotPriority    = 3
	SlotStudyTime   = 4
	SlotArea        = 5
	SlotStudyMethod = 6
	SlotObjective   = 7
	SlotAgeBand     = 8
	SlotCNH         = 9
)

// DefaultProfileID is returned when no answer produces any score.
const DefaultProfileID = models.ProfileEstrategistaAdmin

// Match scores the answers against every profile and returns the winner.
// It never fails: unanswered slots, unknown slots and unrecognized option
// tokens all contribute zero weight.
//
// Ties resolve to the profile that appears first in profiles, so the slice
// order is the canonical tie-break order. With an all-zero score table the
// default profile wins regardless of position.
func Match(answers models.AnswerMap, profiles []models.Profile) models.Profile {
	scores := make(map[models.ProfileID]int, len(profiles))
	for _, p := range profiles {
		scores[p.ID] = 0
	}

	applyWeights(answers, scores)

	bestID := DefaultProfileID
	bestScore := 0
	for _, p := range profiles {
		if scores[p.ID] > bestScore {
			bestScore = scores[p.ID]
			bestID = p.ID
		}
	}

	for _, p := range profiles {
		if p.ID == bestID {
			return p
		}
	}
	return profiles[0]
}

// applyWeights adds the fixed per-question weights to the score table.
// Weights are additive across questions; a later question never overwrites
// an earlier contribution.
func applyWeights(answers models.AnswerMap, scores map[models.ProfileID]int) {
	switch answers[SlotFormation] {
	case models.AnswerFormationSuperior, models.AnswerFormationPos,
		models.AnswerFormationMestrado, models.AnswerFormationDoutorado:
		scores[models.ProfileEstrategistaAdmin] += 2
		scores[models.ProfileAnalistaFiscal] += 2
		scores[models.ProfileJuristaPublico] += 2
		scores[models.ProfilePlanejadorEstrategico] += 3
	}

	switch answers[SlotActivity] {
	case models.AnswerActivityAdmin:
		scores[models.ProfileEstrategistaAdmin] += 5
		scores[models.ProfilePlanejadorEstrategico] += 3
	case models.AnswerActivityPolice:
		scores[models.ProfileGuardiaoOperacional] += 5
	case models.AnswerActivityFiscal:
		scores[models.ProfileAnalistaFiscal] += 5
	case models.AnswerActivityLegal:
		scores[models.ProfileJuristaPublico] += 5
	case models.AnswerActivityHealth, models.AnswerActivityEducation:
		scores[models.ProfileServidorSocial] += 5
	}

	switch answers[SlotPriority] {
	case models.AnswerPriorityStability:
		scores[models.ProfileGuardiaoOperacional] += 2
		scores[models.ProfileEstrategistaAdmin] += 2
	case models.AnswerPriorityGrowth:
		scores[models.ProfilePlanejadorEstrategico] += 3
		scores[models.ProfileJuristaPublico] += 2
	case models.AnswerPrioritySalary:
		scores[models.ProfileAnalistaFiscal] += 2
		scores[models.ProfileJuristaPublico] += 2
	}

	switch answers[SlotStudyTime] {
	case models.AnswerStudyTimeVeryHigh, models.AnswerStudyTimeHigh:
		scores[models.ProfileJuristaPublico] += 1
		scores[models.ProfileAnalistaFiscal] += 1
	}

	switch answers[SlotArea] {
	case models.AnswerAreaFederal:
		scores[models.ProfileAnalistaFiscal] += 2
		scores[models.ProfileJuristaPublico] += 2
	case models.AnswerAreaMunicipal:
		scores[models.ProfileServidorSocial] += 2
		scores[models.ProfileEstrategistaAdmin] += 2
	}

	switch answers[SlotStudyMethod] {
	case models.AnswerMethodSelf, models.AnswerMethodOnline:
		scores[models.ProfileAnalistaFiscal] += 1
		scores[models.ProfileEstrategistaAdmin] += 1
	}

	switch answers[SlotObjective] {
	case models.AnswerObjectiveImpact:
		scores[models.ProfileServidorSocial] += 3
	case models.AnswerObjectiveCareer:
		scores[models.ProfilePlanejadorEstrategico] += 3
		scores[models.ProfileJuristaPublico] += 2
	case models.AnswerObjectiveRetirement:
		scores[models.ProfileGuardiaoOperacional] += 2
		scores[models.ProfileEstrategistaAdmin] += 2
	}
}
