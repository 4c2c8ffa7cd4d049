package catalog

import "github.com/souconcursado/core/internal/models"

// Questions is the vocational questionnaire. Slots 1-7 feed the profile
// matcher; slots 8 and 9 (age band, driving license) feed only the
// eligibility filter and carry no profile weight.
var Questions = []models.Question{
	{
		ID:     1,
		Prompt: "Qual o seu nível de formação atual?",
		Type:   models.QuestionTypeList,
		Options: []models.Option{
			{ID: models.AnswerFormationMedio, Label: "Nível Médio"},
			{ID: models.AnswerFormationSuperior, Label: "Nível Superior"},
			{ID: models.AnswerFormationPos, Label: "Pós-graduação"},
			{ID: models.AnswerFormationMestrado, Label: "Mestrado"},
			{ID: models.AnswerFormationDoutorado, Label: "Doutorado"},
		},
	},
	{
		ID:     2,
		Prompt: "Que tipo de atividade mais lhe agrada?",
		Type:   models.QuestionTypeGridIcons,
		Options: []models.Option{
			{ID: models.AnswerActivityAdmin, Label: "Organização/Escritório", Icon: "folder"},
			{ID: models.AnswerActivityPolice, Label: "Ação/Policial", Icon: "shield"},
			{ID: models.AnswerActivityFiscal, Label: "Números/Fiscal", Icon: "calculator"},
			{ID: models.AnswerActivityLegal, Label: "Jurídico/Legal", Icon: "scale-balance"},
			{ID: models.AnswerActivityHealth, Label: "Saúde/Assistência", Icon: "medical-bag"},
			{ID: models.AnswerActivityEducation, Label: "Educação/Ensino", Icon: "school"},
		},
	},
	{
		ID:     3,
		Prompt: "O que é mais importante para si agora?",
		Type:   models.QuestionTypeCards,
		Options: []models.Option{
			{ID: models.AnswerPrioritySalary, Label: "Salário mais alto", Icon: "dollar-sign"},
			{ID: models.AnswerPrioritySpeed, Label: "Passar rápido", Icon: "clock"},
			{ID: models.AnswerPriorityLocation, Label: "Trabalhar perto de casa", Icon: "map-pin"},
			{ID: models.AnswerPriorityStability, Label: "Estabilidade e segurança", Icon: "shield-check"},
			{ID: models.AnswerPriorityGrowth, Label: "Crescimento profissional", Icon: "trending-up"},
		},
	},
	{
		ID:     4,
		Prompt: "Quanto tempo você pode dedicar aos estudos por semana?",
		Type:   models.QuestionTypeList,
		Options: []models.Option{
			{ID: models.AnswerStudyTimeLow, Label: "Menos de 10 horas"},
			{ID: models.AnswerStudyTimeMedium, Label: "10 a 20 horas"},
			{ID: models.AnswerStudyTimeHigh, Label: "20 a 40 horas"},
			{ID: models.AnswerStudyTimeVeryHigh, Label: "Mais de 40 horas"},
		},
	},
	{
		ID:     5,
		Prompt: "Qual área do serviço público mais te interessa?",
		Type:   models.QuestionTypeGridIcons,
		Options: []models.Option{
			{ID: models.AnswerAreaFederal, Label: "Federal", Icon: "flag"},
			{ID: models.AnswerAreaEstadual, Label: "Estadual", Icon: "map"},
			{ID: models.AnswerAreaMunicipal, Label: "Municipal", Icon: "city"},
			{ID: models.AnswerAreaAutarquia, Label: "Autarquias", Icon: "office-building"},
		},
	},
	{
		ID:     6,
		Prompt: "Como você prefere estudar?",
		Type:   models.QuestionTypeCards,
		Options: []models.Option{
			{ID: models.AnswerMethodSelf, Label: "Sozinho (autodidata)", Icon: "book-open"},
			{ID: models.AnswerMethodOnline, Label: "Cursos online", Icon: "monitor"},
			{ID: models.AnswerMethodPresential, Label: "Cursos presenciais", Icon: "chalkboard-teacher"},
			{ID: models.AnswerMethodHybrid, Label: "Método híbrido", Icon: "sync"},
		},
	},
	{
		ID:     7,
		Prompt: "Qual é o seu objetivo principal com a carreira pública?",
		Type:   models.QuestionTypeList,
		Options: []models.Option{
			{ID: models.AnswerObjectiveRetirement, Label: "Aposentadoria garantida"},
			{ID: models.AnswerObjectiveImpact, Label: "Fazer diferença na sociedade"},
			{ID: models.AnswerObjectiveCareer, Label: "Construir uma carreira sólida"},
			{ID: models.AnswerObjectiveChange, Label: "Mudar de área profissional"},
		},
	},
	{
		ID:     8,
		Prompt: "Qual é a sua faixa etária?",
		Type:   models.QuestionTypeList,
		Options: []models.Option{
			{ID: models.AnswerAgeBand18To25, Label: "18 a 25 anos"},
			{ID: models.AnswerAgeBand26To30, Label: "26 a 30 anos"},
			{ID: models.AnswerAgeBand31To35, Label: "31 a 35 anos"},
			{ID: models.AnswerAgeBand36To45, Label: "36 a 45 anos"},
			{ID: models.AnswerAgeBand46Plus, Label: "46 anos ou mais"},
		},
	},
	{
		ID:     9,
		Prompt: "Você possui CNH (carteira de motorista)?",
		Type:   models.QuestionTypeCards,
		Options: []models.Option{
			{ID: models.AnswerCNHYes, Label: "Sim", Icon: "car"},
			{ID: models.AnswerCNHNo, Label: "Não", Icon: "walk"},
		},
	},
}

// QuestionByID returns the questionnaire item with the given slot id.
func QuestionByID(id int) (models.Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}
