package catalog

import "github.com/souconcursado/core/internal/models"

// DiagnosisBanks maps each subject to its pre-authored diagnostic bank.
// Every bank is ordered easy → medium → hard (3 easy, 5 medium, 2 hard by
// construction of the data).
var DiagnosisBanks = map[models.SubjectID][]models.DiagnosisQuestion{
	models.SubjectPortugues:             diagnosisPortugues,
	models.SubjectRaciocinioLogico:      diagnosisRaciocinioLogico,
	models.SubjectInformatica:           diagnosisInformatica,
	models.SubjectDireitoConstitucional: diagnosisDireitoConstitucional,
	models.SubjectDireitoAdministrativo: diagnosisDireitoAdministrativo,
}

// DiagnosisBank returns the bank for a subject. Unknown subjects get an
// empty bank rather than an error; selection degrades gracefully.
func DiagnosisBank(id models.SubjectID) []models.DiagnosisQuestion {
	return DiagnosisBanks[id]
}
