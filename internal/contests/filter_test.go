package contests

import (
	"testing"

	"github.com/souconcursado/core/internal/catalog"
	"github.com/souconcursado/core/internal/matcher"
	"github.com/souconcursado/core/internal/models"
)

func intPtr(v int) *int { return &v }

// mediumAnswers declares médio education and the default age band.
func mediumAnswers() models.AnswerMap {
	return models.AnswerMap{matcher.SlotFormation: models.AnswerFormationMedio}
}

func testCatalog() []models.Contest {
	return []models.Contest{
		{ID: "a", Category: models.CategoryAdmin, Level: models.LevelMedio,
			Requirements: models.ContestRequirements{Education: models.EducationMedio}},
		{ID: "b", Category: models.CategoryPolice, Level: models.LevelMedio,
			Requirements: models.ContestRequirements{Education: models.EducationMedio, MaxAge: intPtr(30)}},
		{ID: "c", Category: models.CategoryFiscal, Level: models.LevelSuperior,
			Requirements: models.ContestRequirements{Education: models.EducationSuperior}},
		{ID: "d", Category: models.CategoryAdmin, Level: models.LevelMedio,
			Requirements: models.ContestRequirements{Education: models.EducationMedio, RequiresCNH: true}},
		{ID: "e", Category: models.CategoryLegal, Level: models.LevelSuperior,
			Requirements: models.ContestRequirements{Education: models.EducationSuperior, MinAge: intPtr(22)}},
	}
}

func ids(cs []models.Contest) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecommendPreservesCatalogOrder(t *testing.T) {
	// An unmapped profile id places no category restriction, so only the
	// eligibility predicates act. Superior education and a licence pass
	// everything except the min-age bound for band 18-25 (midpoint 21).
	answers := models.AnswerMap{
		matcher.SlotFormation: models.AnswerFormationSuperior,
		matcher.SlotAgeBand:   models.AnswerAgeBand18To25,
		matcher.SlotCNH:       models.AnswerCNHYes,
	}
	got := Recommend(answers, "unmapped_profile", testCatalog())
	if !equalIDs(ids(got), []string{"a", "b", "c", "d"}) {
		t.Errorf("Recommend order/content = %v, want [a b c d]", ids(got))
	}
}

func TestRecommendEducationOrdering(t *testing.T) {
	// Superior contest "c": excluded at weight 2, included at weight 3.
	medio := Recommend(mediumAnswers(), models.ProfileAnalistaFiscal, testCatalog())
	if len(medio) != 0 {
		t.Errorf("medio user got fiscal contests %v, want none (superior required)", ids(medio))
	}

	superior := Recommend(models.AnswerMap{
		matcher.SlotFormation: models.AnswerFormationSuperior,
	}, models.ProfileAnalistaFiscal, testCatalog())
	if !equalIDs(ids(superior), []string{"c"}) {
		t.Errorf("superior user got %v, want [c]", ids(superior))
	}
}

func TestRecommendNoEducationAnswerExcludesAll(t *testing.T) {
	// Absent answers degrade to zero weight, which satisfies no contest.
	got := Recommend(models.AnswerMap{}, "unmapped_profile", testCatalog())
	if len(got) != 0 {
		t.Errorf("Recommend with no education answer = %v, want none", ids(got))
	}
}

func TestRecommendMaxAgeBound(t *testing.T) {
	older := mediumAnswers()
	older[matcher.SlotAgeBand] = models.AnswerAgeBand31To35 // midpoint 33
	got := Recommend(older, models.ProfileGuardiaoOperacional, testCatalog())
	if len(got) != 0 {
		t.Errorf("age 33 vs maxAge 30: got %v, want none", ids(got))
	}

	younger := mediumAnswers()
	younger[matcher.SlotAgeBand] = models.AnswerAgeBand26To30 // midpoint 28
	got = Recommend(younger, models.ProfileGuardiaoOperacional, testCatalog())
	if !equalIDs(ids(got), []string{"b"}) {
		t.Errorf("age 28 vs maxAge 30: got %v, want [b]", ids(got))
	}
}

func TestRecommendMinAgeBound(t *testing.T) {
	young := models.AnswerMap{
		matcher.SlotFormation: models.AnswerFormationSuperior,
		matcher.SlotAgeBand:   models.AnswerAgeBand18To25, // midpoint 21
	}
	got := Recommend(young, models.ProfileJuristaPublico, testCatalog())
	if len(got) != 0 {
		t.Errorf("age 21 vs minAge 22: got %v, want none", ids(got))
	}

	// Default band (unanswered) has midpoint 28, which clears minAge 22.
	adult := models.AnswerMap{
		matcher.SlotFormation: models.AnswerFormationSuperior,
	}
	got = Recommend(adult, models.ProfileJuristaPublico, testCatalog())
	if !equalIDs(ids(got), []string{"e"}) {
		t.Errorf("default age vs minAge 22: got %v, want [e]", ids(got))
	}
}

func TestRecommendCNHRequirement(t *testing.T) {
	noLicense := mediumAnswers()
	got := Recommend(noLicense, models.ProfileEstrategistaAdmin, testCatalog())
	if !equalIDs(ids(got), []string{"a"}) {
		t.Errorf("without CNH: got %v, want [a]", ids(got))
	}

	withLicense := mediumAnswers()
	withLicense[matcher.SlotCNH] = models.AnswerCNHYes
	got = Recommend(withLicense, models.ProfileEstrategistaAdmin, testCatalog())
	if !equalIDs(ids(got), []string{"a", "d"}) {
		t.Errorf("with CNH: got %v, want [a d]", ids(got))
	}
}

func TestRecommendUnmappedProfileSkipsCategoryCheck(t *testing.T) {
	answers := mediumAnswers()
	answers[matcher.SlotCNH] = models.AnswerCNHYes
	got := Recommend(answers, "some_future_profile", testCatalog())
	// Every médio-education contest within age bounds, regardless of category.
	if !equalIDs(ids(got), []string{"a", "b", "d"}) {
		t.Errorf("unmapped profile: got %v, want [a b d]", ids(got))
	}
}

func TestRecommendAgainstBundledCatalog(t *testing.T) {
	answers := models.AnswerMap{
		matcher.SlotFormation: models.AnswerFormationSuperior,
		matcher.SlotAgeBand:   models.AnswerAgeBand26To30,
	}
	got := Recommend(answers, models.ProfileAnalistaFiscal, catalog.Contests)

	if len(got) == 0 {
		t.Fatal("expected fiscal recommendations from the bundled catalog")
	}
	for _, c := range got {
		if c.Category != models.CategoryFiscal {
			t.Errorf("contest %s has category %s, want fiscal only", c.ID, c.Category)
		}
	}
}

// ── Home-screen variant ─────────────────────────────────

func TestFilterByProfileCategoryAndLevel(t *testing.T) {
	got := FilterByProfile(models.ProfileJuristaPublico, testCatalog())
	// legal category, superior level only.
	if !equalIDs(ids(got), []string{"e"}) {
		t.Errorf("FilterByProfile(jurista) = %v, want [e]", ids(got))
	}
}

func TestFilterByProfileLevelRestriction(t *testing.T) {
	// analista_fiscal lists superior contests only; contest "c" is the lone
	// fiscal superior entry in the test catalog.
	got := FilterByProfile(models.ProfileAnalistaFiscal, testCatalog())
	if !equalIDs(ids(got), []string{"c"}) {
		t.Errorf("FilterByProfile(analista_fiscal) = %v, want [c]", ids(got))
	}
}

func TestFilterByProfileUnknownProfileReturnsEverything(t *testing.T) {
	got := FilterByProfile("not_a_profile", testCatalog())
	if len(got) != len(testCatalog()) {
		t.Errorf("FilterByProfile(unknown) kept %d of %d contests", len(got), len(testCatalog()))
	}
}

func TestFilterByProfileIgnoresEligibilityData(t *testing.T) {
	// The home-screen listing never looks at age, CNH or education.
	got := FilterByProfile(models.ProfileEstrategistaAdmin, testCatalog())
	if !equalIDs(ids(got), []string{"a", "d"}) {
		t.Errorf("FilterByProfile(estrategista) = %v, want [a d]", ids(got))
	}
}

func TestFilterByProfileServidorSocialSpansTwoCategories(t *testing.T) {
	got := FilterByProfile(models.ProfileServidorSocial, catalog.Contests)
	seen := map[models.ContestCategory]bool{}
	for _, c := range got {
		seen[c.Category] = true
		if c.Category != models.CategoryHealth && c.Category != models.CategoryEducation {
			t.Errorf("contest %s has category %s, want health or education", c.ID, c.Category)
		}
	}
	if !seen[models.CategoryHealth] || !seen[models.CategoryEducation] {
		t.Errorf("expected both health and education contests, saw %v", seen)
	}
}
