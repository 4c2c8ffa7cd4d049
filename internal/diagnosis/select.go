package diagnosis

import (
	"go.uber.org/zap"

	"github.com/souconcursado/core/internal/models"
)

// SessionSize is how many questions a full diagnostic session presents:
// the banks are authored with 3 easy, 5 medium and 2 hard items up front.
const SessionSize = 10

// SelectQuestions returns the session prefix of a subject's bank, in bank
// order. A bank shorter than a full session is returned whole with a logged
// warning; that is a data-completeness problem, not an error.
func SelectQuestions(log *zap.Logger, subjectID models.SubjectID, bank []models.DiagnosisQuestion) []models.DiagnosisQuestion {
	if log == nil {
		log = zap.NewNop()
	}

	if len(bank) < SessionSize {
		log.Warn("diagnostic bank is short of a full session",
			zap.String("subject", string(subjectID)),
			zap.Int("available", len(bank)),
			zap.Int("needed", SessionSize),
		)
		return bank
	}
	return bank[:SessionSize]
}
