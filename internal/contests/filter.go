// Package contests filters the contest catalog against a matched profile
// and user-declared constraints. Both filters preserve catalog order: they
// select, they never re-rank.
package contests

import (
	"github.com/souconcursado/core/internal/matcher"
	"github.com/souconcursado/core/internal/models"
)

// profileCategories maps each profile to its contest interest categories.
// Profiles absent from this table carry no category restriction.
var profileCategories = map[models.ProfileID][]models.ContestCategory{
	models.ProfileEstrategistaAdmin:     {models.CategoryAdmin},
	models.ProfileGuardiaoOperacional:   {models.CategoryPolice},
	models.ProfileAnalistaFiscal:        {models.CategoryFiscal},
	models.ProfileJuristaPublico:        {models.CategoryLegal},
	models.ProfileServidorSocial:        {models.CategoryHealth, models.CategoryEducation},
	models.ProfilePlanejadorEstrategico: {models.CategoryAdmin},
}

// profileLevels maps each profile to the contest levels worth listing on the
// home screen. Profiles absent from this table accept both levels.
var profileLevels = map[models.ProfileID][]models.ContestLevel{
	models.ProfileEstrategistaAdmin:     {models.LevelMedio, models.LevelSuperior},
	models.ProfileGuardiaoOperacional:   {models.LevelMedio, models.LevelSuperior},
	models.ProfileAnalistaFiscal:        {models.LevelSuperior},
	models.ProfileJuristaPublico:        {models.LevelSuperior},
	models.ProfileServidorSocial:        {models.LevelMedio, models.LevelSuperior},
	models.ProfilePlanejadorEstrategico: {models.LevelSuperior},
}

// FilterByProfile is the home-screen listing: contests matching the
// profile's categories and levels, with no eligibility checks. An unknown
// profile id restricts nothing, so the whole catalog comes back.
func FilterByProfile(profileID models.ProfileID, catalog []models.Contest) []models.Contest {
	categories := profileCategories[profileID]
	levels, ok := profileLevels[profileID]
	if !ok {
		levels = []models.ContestLevel{models.LevelMedio, models.LevelSuperior}
	}

	var out []models.Contest
	for _, c := range catalog {
		if len(categories) > 0 && !containsCategory(categories, c.Category) {
			continue
		}
		if !containsLevel(levels, c.Level) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func containsCategory(set []models.ContestCategory, c models.ContestCategory) bool {
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

func containsLevel(set []models.ContestLevel, l models.ContestLevel) bool {
	for _, v := range set {
		if v == l {
			return true
		}
	}
	return false
}

// ── Eligibility filter ──────────────────────────────────

// constraints is what the eligibility filter knows about the user, derived
// from the answer map.
type constraints struct {
	educationWeight int
	age             int
	hasCNH          bool
}

// ageBandMidpoints maps each age-band answer to the midpoint age used for
// bound checks.
var ageBandMidpoints = map[string]int{
	models.AnswerAgeBand18To25: 21,
	models.AnswerAgeBand26To30: 28,
	models.AnswerAgeBand31To35: 33,
	models.AnswerAgeBand36To45: 40,
	models.AnswerAgeBand46Plus: 50,
}

const defaultAgeBand = models.AnswerAgeBand26To30

// deriveConstraints reads the eligibility inputs out of the answer map.
// Missing or unrecognized answers degrade to the weakest value: zero
// education weight, no license, default age band.
func deriveConstraints(answers models.AnswerMap) constraints {
	var c constraints

	switch answers[matcher.SlotFormation] {
	case models.AnswerFormationFundamental:
		c.educationWeight = 1
	case models.AnswerFormationMedio:
		c.educationWeight = 2
	case models.AnswerFormationSuperior, models.AnswerFormationPos,
		models.AnswerFormationMestrado, models.AnswerFormationDoutorado:
		c.educationWeight = 3
	}

	band := answers[matcher.SlotAgeBand]
	age, ok := ageBandMidpoints[band]
	if !ok {
		age = ageBandMidpoints[defaultAgeBand]
	}
	c.age = age

	c.hasCNH = answers[matcher.SlotCNH] == models.AnswerCNHYes

	return c
}

// Recommend is the full recommendation flow: the matched profile's category
// restriction plus hard eligibility checks derived from the answers. The
// result is an order-preserving subsequence of catalog.
func Recommend(answers models.AnswerMap, profileID models.ProfileID, catalog []models.Contest) []models.Contest {
	cons := deriveConstraints(answers)
	categories := profileCategories[profileID]

	var out []models.Contest
	for _, c := range catalog {
		if eligible(c, cons, categories) {
			out = append(out, c)
		}
	}
	return out
}

// eligible reports whether a contest survives every constraint.
func eligible(c models.Contest, cons constraints, categories []models.ContestCategory) bool {
	if cons.educationWeight < c.Requirements.Education.Weight() {
		return false
	}
	if max := c.Requirements.MaxAge; max != nil && cons.age > *max {
		return false
	}
	if min := c.Requirements.MinAge; min != nil && cons.age < *min {
		return false
	}
	if c.Requirements.RequiresCNH && !cons.hasCNH {
		return false
	}
	if len(categories) > 0 && !containsCategory(categories, c.Category) {
		return false
	}
	return true
}
