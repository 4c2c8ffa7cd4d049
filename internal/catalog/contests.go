package catalog

import "github.com/souconcursado/core/internal/models"

func intPtr(v int) *int { return &v }

// Contests is the bundled contest catalog, in listing order. Age bounds,
// license and education requirements follow each contest's published
// requirement text.
var Contests = []models.Contest{
	{
		ID:          "1",
		Institution: "Polícia Federal",
		Role:        "Agente Administrativo",
		Salary:      "R$ 4.746,16",
		Status:      models.ContestOpen,
		Level:       models.LevelMedio,
		Category:    models.CategoryPolice,
		Requirements: models.ContestRequirements{
			Vacancies:          "50 vagas",
			Summary:            "Diploma de nível médio completo, idade entre 18 e 50 anos, altura mínima de 1,60m para homens e 1,55m para mulheres.",
			Link:               "https://www.pf.gov.br/concursos",
			RegistrationPeriod: "01/03/2024 a 31/03/2024",
			ExamDate:           "15/06/2024",
			MinAge:             intPtr(18),
			MaxAge:             intPtr(50),
			Education:          models.EducationMedio,
		},
	},
	{
		ID:          "2",
		Institution: "Banco Central do Brasil",
		Role:        "Analista",
		Salary:      "R$ 20.924,80",
		Status:      models.ContestOpen,
		Level:       models.LevelSuperior,
		Category:    models.CategoryFiscal,
		Requirements: models.ContestRequirements{
			Vacancies:          "200 vagas",
			Summary:            "Diploma de nível superior em qualquer área, conhecimento em economia, direito ou administração.",
			Link:               "https://www.bcb.gov.br/concursos",
			RegistrationPeriod: "10/02/2024 a 10/03/2024",
			ExamDate:           "20/05/2024",
			Education:          models.EducationSuperior,
		},
	},
	{
		ID:          "3",
		Institution: "Caixa Econômica Federal",
		Role:        "Técnico Bancário",
		Salary:      "R$ 5.200,00",
		Status:      models.ContestOpen,
		Level:       models.LevelMedio,
		Category:    models.CategoryAdmin,
		Requirements: models.ContestRequirements{
			Vacancies:          "300 vagas",
			Summary:            "Nível médio completo, conhecimentos em matemática e português.",
			Link:               "https://www.caixa.gov.br/concursos",
			RegistrationPeriod: "15/01/2024 a 15/02/2024",
			ExamDate:           "10/04/2024",
			Education:          models.EducationMedio,
		},
	},
	{
		ID:          "4",
		Institution: "Tribunal de Justiça",
		Role:        "Analista Judiciário",
		Salary:      "R$ 12.500,00",
		Status:      models.ContestOpen,
		Level:       models.LevelSuperior,
		Category:    models.CategoryLegal,
		Requirements: models.ContestRequirements{
			Vacancies:          "80 vagas",
			Summary:            "Diploma de nível superior em Direito, registro na OAB.",
			Link:               "https://www.tj.gov.br/concursos",
			RegistrationPeriod: "01/04/2024 a 30/04/2024",
			ExamDate:           "25/07/2024",
			Education:          models.EducationSuperior,
		},
	},
	{
		ID:          "5",
		Institution: "Polícia Civil",
		Role:        "Delegado de Polícia",
		Salary:      "R$ 18.000,00",
		Status:      models.ContestSoon,
		Level:       models.LevelSuperior,
		Category:    models.CategoryPolice,
		Requirements: models.ContestRequirements{
			Vacancies:          "30 vagas",
			Summary:            "Diploma de nível superior em Direito, registro na OAB, idade entre 21 e 45 anos.",
			Link:               "https://www.policiacivil.gov.br/concursos",
			RegistrationPeriod: "A definir",
			ExamDate:           "A definir",
			MinAge:             intPtr(21),
			MaxAge:             intPtr(45),
			RequiresCNH:        true,
			RequiresTAF:        true,
			Education:          models.EducationSuperior,
		},
	},
	{
		ID:          "6",
		Institution: "Receita Federal",
		Role:        "Auditor Fiscal",
		Salary:      "R$ 22.000,00",
		Status:      models.ContestOpen,
		Level:       models.LevelSuperior,
		Category:    models.CategoryFiscal,
		Requirements: models.ContestRequirements{
			Vacancies:          "150 vagas",
			Summary:            "Diploma de nível superior em Direito, Economia, Contabilidade ou Administração.",
			Link:               "https://www.gov.br/receitafederal/concursos",
			RegistrationPeriod: "05/03/2024 a 05/04/2024",
			ExamDate:           "30/06/2024",
			Education:          models.EducationSuperior,
		},
	},
	{
		ID:          "7",
		Institution: "Ministério da Saúde",
		Role:        "Técnico em Enfermagem",
		Salary:      "R$ 3.800,00",
		Status:      models.ContestOpen,
		Level:       models.LevelMedio,
		Category:    models.CategoryHealth,
		Requirements: models.ContestRequirements{
			Vacancies:          "120 vagas",
			Summary:            "Diploma de nível médio em Técnico de Enfermagem, registro no COREN.",
			Link:               "https://www.gov.br/saude/concursos",
			RegistrationPeriod: "20/02/2024 a 20/03/2024",
			ExamDate:           "18/05/2024",
			Education:          models.EducationMedio,
		},
	},
	{
		ID:          "8",
		Institution: "Secretaria de Educação",
		Role:        "Professor de Matemática",
		Salary:      "R$ 6.500,00",
		Status:      models.ContestOpen,
		Level:       models.LevelSuperior,
		Category:    models.CategoryEducation,
		Requirements: models.ContestRequirements{
			Vacancies:          "200 vagas",
			Summary:            "Diploma de nível superior em Licenciatura em Matemática ou áreas afins.",
			Link:               "https://www.educacao.gov.br/concursos",
			RegistrationPeriod: "10/03/2024 a 10/04/2024",
			ExamDate:           "22/06/2024",
			Education:          models.EducationSuperior,
		},
	},
	{
		ID:          "9",
		Institution: "Polícia Militar",
		Role:        "Soldado PM",
		Salary:      "R$ 4.200,00",
		Status:      models.ContestClosed,
		Level:       models.LevelMedio,
		Category:    models.CategoryPolice,
		Requirements: models.ContestRequirements{
			Vacancies:          "500 vagas",
			Summary:            "Nível médio completo, idade entre 18 e 30 anos, altura mínima de 1,65m para homens e 1,60m para mulheres.",
			Link:               "https://www.pm.gov.br/concursos",
			RegistrationPeriod: "Encerrado",
			ExamDate:           "Realizado",
			MinAge:             intPtr(18),
			MaxAge:             intPtr(30),
			RequiresTAF:        true,
			Education:          models.EducationMedio,
		},
	},
	{
		ID:          "10",
		Institution: "Tribunal de Contas",
		Role:        "Analista de Controle Externo",
		Salary:      "R$ 15.000,00",
		Status:      models.ContestOpen,
		Level:       models.LevelSuperior,
		Category:    models.CategoryFiscal,
		Requirements: models.ContestRequirements{
			Vacancies:          "60 vagas",
			Summary:            "Diploma de nível superior em qualquer área, preferência para Direito, Contabilidade ou Administração.",
			Link:               "https://www.tce.gov.br/concursos",
			RegistrationPeriod: "01/05/2024 a 31/05/2024",
			ExamDate:           "15/08/2024",
			Education:          models.EducationSuperior,
		},
	},
	{
		ID:          "11",
		Institution: "Prefeitura Municipal",
		Role:        "Agente Administrativo",
		Salary:      "R$ 3.500,00",
		Status:      models.ContestOpen,
		Level:       models.LevelMedio,
		Category:    models.CategoryAdmin,
		Requirements: models.ContestRequirements{
			Vacancies:          "100 vagas",
			Summary:            "Nível médio completo, conhecimentos básicos em informática.",
			Link:               "https://www.prefeitura.gov.br/concursos",
			RegistrationPeriod: "15/04/2024 a 15/05/2024",
			ExamDate:           "10/07/2024",
			Education:          models.EducationMedio,
		},
	},
	{
		ID:          "12",
		Institution: "Ministério Público",
		Role:        "Promotor de Justiça",
		Salary:      "R$ 25.000,00",
		Status:      models.ContestSoon,
		Level:       models.LevelSuperior,
		Category:    models.CategoryLegal,
		Requirements: models.ContestRequirements{
			Vacancies:          "40 vagas",
			Summary:            "Diploma de nível superior em Direito, registro na OAB há pelo menos 3 anos.",
			Link:               "https://www.mp.gov.br/concursos",
			RegistrationPeriod: "A definir",
			ExamDate:           "A definir",
			Education:          models.EducationSuperior,
		},
	},
}

// ContestByID returns the contest with the given id.
func ContestByID(id string) (models.Contest, bool) {
	for _, c := range Contests {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contest{}, false
}
