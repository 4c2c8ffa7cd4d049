package diagnosis

import (
	"testing"

	"github.com/souconcursado/core/internal/catalog"
	"github.com/souconcursado/core/internal/models"
)

func makeBank(n int) []models.DiagnosisQuestion {
	bank := make([]models.DiagnosisQuestion, n)
	for i := range bank {
		bank[i] = models.DiagnosisQuestion{ID: i + 1}
	}
	return bank
}

func TestSelectQuestionsTakesPrefix(t *testing.T) {
	bank := makeBank(20)
	got := SelectQuestions(nil, models.SubjectPortugues, bank)

	if len(got) != SessionSize {
		t.Fatalf("SelectQuestions returned %d questions, want %d", len(got), SessionSize)
	}
	for i, q := range got {
		if q.ID != i+1 {
			t.Errorf("question %d has id %d, want %d (bank order must be preserved)", i, q.ID, i+1)
		}
	}
}

func TestSelectQuestionsShortBankReturnsAll(t *testing.T) {
	bank := makeBank(7)
	got := SelectQuestions(nil, models.SubjectInformatica, bank)
	if len(got) != 7 {
		t.Errorf("SelectQuestions on a 7-item bank returned %d questions, want 7", len(got))
	}
}

func TestSelectQuestionsEmptyBank(t *testing.T) {
	got := SelectQuestions(nil, "unknown_subject", nil)
	if len(got) != 0 {
		t.Errorf("SelectQuestions on an empty bank returned %d questions, want 0", len(got))
	}
}

func TestSelectQuestionsBundledBanks(t *testing.T) {
	for _, subject := range catalog.Subjects {
		bank := catalog.DiagnosisBank(subject.ID)
		got := SelectQuestions(nil, subject.ID, bank)
		if len(got) != SessionSize {
			t.Errorf("%s: selected %d questions, want %d", subject.ID, len(got), SessionSize)
		}
	}
}
