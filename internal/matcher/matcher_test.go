package matcher

import (
	"testing"

	"github.com/souconcursado/core/internal/catalog"
	"github.com/souconcursado/core/internal/models"
)

func TestMatchEmptyAnswersReturnsDefault(t *testing.T) {
	got := Match(models.AnswerMap{}, catalog.Profiles)
	if got.ID != models.ProfileEstrategistaAdmin {
		t.Errorf("Match(empty) = %s, want %s", got.ID, models.ProfileEstrategistaAdmin)
	}
}

func TestMatchNilAnswersReturnsDefault(t *testing.T) {
	got := Match(nil, catalog.Profiles)
	if got.ID != models.ProfileEstrategistaAdmin {
		t.Errorf("Match(nil) = %s, want %s", got.ID, models.ProfileEstrategistaAdmin)
	}
}

func TestMatchSingleStrongSignal(t *testing.T) {
	// Only the activity question answered: +5 to one profile, 0 elsewhere.
	answers := models.AnswerMap{SlotActivity: models.AnswerActivityPolice}
	got := Match(answers, catalog.Profiles)
	if got.ID != models.ProfileGuardiaoOperacional {
		t.Errorf("Match(police only) = %s, want %s", got.ID, models.ProfileGuardiaoOperacional)
	}
}

func TestMatchActivityWeights(t *testing.T) {
	tests := []struct {
		activity string
		want     models.ProfileID
	}{
		{models.AnswerActivityAdmin, models.ProfileEstrategistaAdmin},
		{models.AnswerActivityPolice, models.ProfileGuardiaoOperacional},
		{models.AnswerActivityFiscal, models.ProfileAnalistaFiscal},
		{models.AnswerActivityLegal, models.ProfileJuristaPublico},
		{models.AnswerActivityHealth, models.ProfileServidorSocial},
		{models.AnswerActivityEducation, models.ProfileServidorSocial},
	}

	for _, tt := range tests {
		got := Match(models.AnswerMap{SlotActivity: tt.activity}, catalog.Profiles)
		if got.ID != tt.want {
			t.Errorf("Match(activity=%s) = %s, want %s", tt.activity, got.ID, tt.want)
		}
	}
}

func TestMatchTieBreaksToEarlierProfile(t *testing.T) {
	// The salary priority adds +2 to both analista_fiscal and
	// jurista_publico. analista_fiscal comes first in the canonical order,
	// so it must win every time.
	answers := models.AnswerMap{SlotPriority: models.AnswerPrioritySalary}
	for i := 0; i < 10; i++ {
		got := Match(answers, catalog.Profiles)
		if got.ID != models.ProfileAnalistaFiscal {
			t.Fatalf("run %d: Match(salary tie) = %s, want %s", i, got.ID, models.ProfileAnalistaFiscal)
		}
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	answers := models.AnswerMap{
		SlotFormation: models.AnswerFormationSuperior,
		SlotActivity:  models.AnswerActivityLegal,
		SlotPriority:  models.AnswerPriorityGrowth,
		SlotStudyTime: models.AnswerStudyTimeVeryHigh,
		SlotArea:      models.AnswerAreaFederal,
		SlotObjective: models.AnswerObjectiveCareer,
	}

	first := Match(answers, catalog.Profiles)
	for i := 0; i < 20; i++ {
		if got := Match(answers, catalog.Profiles); got.ID != first.ID {
			t.Fatalf("run %d: Match = %s, earlier run gave %s", i, got.ID, first.ID)
		}
	}
	if first.ID != models.ProfileJuristaPublico {
		t.Errorf("Match(legal-leaning answers) = %s, want %s", first.ID, models.ProfileJuristaPublico)
	}
}

func TestMatchIgnoresUnknownInput(t *testing.T) {
	answers := models.AnswerMap{
		SlotActivity: models.AnswerActivityFiscal,
		99:           "whatever",   // unknown slot
		SlotPriority: "not_a_real", // unknown option token
	}
	got := Match(answers, catalog.Profiles)
	if got.ID != models.ProfileAnalistaFiscal {
		t.Errorf("Match with junk entries = %s, want %s", got.ID, models.ProfileAnalistaFiscal)
	}
}

func TestMatchEligibilitySlotsCarryNoWeight(t *testing.T) {
	answers := models.AnswerMap{
		SlotAgeBand: models.AnswerAgeBand18To25,
		SlotCNH:     models.AnswerCNHYes,
	}
	got := Match(answers, catalog.Profiles)
	if got.ID != models.ProfileEstrategistaAdmin {
		t.Errorf("Match(age+cnh only) = %s, want default %s", got.ID, models.ProfileEstrategistaAdmin)
	}
}

func TestMatchWeightsAreAdditive(t *testing.T) {
	// impact alone gives servidor_social 3; health activity alone gives 5.
	// Together they must accumulate to 8 and dominate the stability answer
	// that hands estrategista_admin and guardiao_operacional 2 each.
	answers := models.AnswerMap{
		SlotActivity:  models.AnswerActivityHealth,
		SlotPriority:  models.AnswerPriorityStability,
		SlotObjective: models.AnswerObjectiveImpact,
	}
	got := Match(answers, catalog.Profiles)
	if got.ID != models.ProfileServidorSocial {
		t.Errorf("Match(health+impact) = %s, want %s", got.ID, models.ProfileServidorSocial)
	}
}
