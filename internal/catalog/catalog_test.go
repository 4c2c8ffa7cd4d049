package catalog

import (
	"testing"

	"github.com/souconcursado/core/internal/models"
)

func TestProfilesAreTheSixKnownOnes(t *testing.T) {
	if len(Profiles) != 6 {
		t.Fatalf("catalog has %d profiles, want 6", len(Profiles))
	}
	if Profiles[0].ID != models.ProfileEstrategistaAdmin {
		t.Errorf("first profile is %s; the default profile must come first", Profiles[0].ID)
	}
	seen := map[models.ProfileID]bool{}
	for _, p := range Profiles {
		if !models.ValidProfileIDs[p.ID] {
			t.Errorf("profile %s is not a known id", p.ID)
		}
		if seen[p.ID] {
			t.Errorf("duplicate profile id %s", p.ID)
		}
		seen[p.ID] = true
		if p.Name == "" || p.Description == "" {
			t.Errorf("profile %s is missing name or description", p.ID)
		}
	}
}

func TestQuestionOptionIDsAreUniquePerQuestion(t *testing.T) {
	for _, q := range Questions {
		seen := map[string]bool{}
		for _, o := range q.Options {
			if o.ID == "" {
				t.Errorf("question %d has an option with an empty id", q.ID)
			}
			if seen[o.ID] {
				t.Errorf("question %d repeats option id %q", q.ID, o.ID)
			}
			seen[o.ID] = true
		}
	}
}

func TestQuestionSlotsAreSequential(t *testing.T) {
	for i, q := range Questions {
		if q.ID != i+1 {
			t.Errorf("question at index %d has id %d, want %d", i, q.ID, i+1)
		}
	}
}

func TestContestsAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Contests {
		if seen[c.ID] {
			t.Errorf("duplicate contest id %s", c.ID)
		}
		seen[c.ID] = true
		if !models.ValidContestCategories[c.Category] {
			t.Errorf("contest %s has unknown category %s", c.ID, c.Category)
		}
		if c.Requirements.Education.Weight() == 0 {
			t.Errorf("contest %s has no education requirement", c.ID)
		}
		if min, max := c.Requirements.MinAge, c.Requirements.MaxAge; min != nil && max != nil && *min > *max {
			t.Errorf("contest %s has minAge %d > maxAge %d", c.ID, *min, *max)
		}
	}
}

func TestDiagnosisBanksAreWellFormed(t *testing.T) {
	for _, subject := range Subjects {
		bank := DiagnosisBank(subject.ID)
		if len(bank) != 10 {
			t.Errorf("%s bank has %d questions, want 10", subject.ID, len(bank))
		}

		counts := map[models.Difficulty]int{}
		for _, q := range bank {
			counts[q.Difficulty]++
			if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
				t.Errorf("%s question %d: correct index %d out of range for %d options",
					subject.ID, q.ID, q.CorrectAnswerIndex, len(q.Options))
			}
			if q.Banca == "" || q.Explanation == "" {
				t.Errorf("%s question %d is missing board metadata or explanation", subject.ID, q.ID)
			}
		}

		// The authored distribution: 3 easy, 5 medium, 2 hard, in that order.
		if counts[models.DifficultyFacil] != 3 || counts[models.DifficultyMedio] != 5 || counts[models.DifficultyDificil] != 2 {
			t.Errorf("%s bank difficulty counts = %v, want 3/5/2", subject.ID, counts)
		}
		for i, q := range bank {
			var want models.Difficulty
			switch {
			case i < 3:
				want = models.DifficultyFacil
			case i < 8:
				want = models.DifficultyMedio
			default:
				want = models.DifficultyDificil
			}
			if q.Difficulty != want {
				t.Errorf("%s bank position %d has difficulty %s, want %s", subject.ID, i, q.Difficulty, want)
			}
		}
	}
}

func TestLookupHelpers(t *testing.T) {
	if _, ok := ProfileByID(models.ProfileJuristaPublico); !ok {
		t.Error("ProfileByID missed a bundled profile")
	}
	if _, ok := ProfileByID("nope"); ok {
		t.Error("ProfileByID found a profile that does not exist")
	}

	if c, ok := ContestByID("6"); !ok || c.Institution != "Receita Federal" {
		t.Errorf("ContestByID(6) = %+v, %v", c, ok)
	}
	if _, ok := ContestByID("999"); ok {
		t.Error("ContestByID found a contest that does not exist")
	}

	if _, ok := SubjectByID(models.SubjectInformatica); !ok {
		t.Error("SubjectByID missed a bundled subject")
	}
	if _, ok := QuestionByID(3); !ok {
		t.Error("QuestionByID missed slot 3")
	}
}

func TestPracticeQuestionsPadsShortBanks(t *testing.T) {
	got := PracticeQuestions(models.SubjectInformatica, 10)
	if len(got) != 10 {
		t.Fatalf("PracticeQuestions returned %d items, want 10", len(got))
	}
	if got[0].ID != "inf_1" {
		t.Errorf("authored questions must come first, got %s", got[0].ID)
	}
	for _, q := range got {
		found := false
		for _, o := range q.Options {
			if o.ID == q.CorrectAnswerID {
				found = true
			}
		}
		if !found {
			t.Errorf("question %s: correct answer id %q not among its options", q.ID, q.CorrectAnswerID)
		}
	}
}
