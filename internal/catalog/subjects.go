package catalog

import "github.com/souconcursado/core/internal/models"

// Subjects lists the study subjects with bundled diagnostic banks.
var Subjects = []models.Subject{
	{ID: models.SubjectPortugues, Name: "Língua Portuguesa", Icon: "book-open-variant", QuestionCount: 10},
	{ID: models.SubjectRaciocinioLogico, Name: "Raciocínio Lógico", Icon: "calculator-variant", QuestionCount: 10},
	{ID: models.SubjectInformatica, Name: "Informática", Icon: "laptop", QuestionCount: 10},
	{ID: models.SubjectDireitoConstitucional, Name: "Direito Constitucional", Icon: "scale-balance", QuestionCount: 10},
	{ID: models.SubjectDireitoAdministrativo, Name: "Direito Administrativo", Icon: "gavel", QuestionCount: 10},
}

// SubjectByID returns the subject with the given id.
func SubjectByID(id models.SubjectID) (models.Subject, bool) {
	for _, s := range Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return models.Subject{}, false
}
