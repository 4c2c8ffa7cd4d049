package catalog

import (
	"fmt"

	"github.com/souconcursado/core/internal/models"
)

// SubjectQuestions holds the lighter per-subject practice quizzes. Unlike
// the diagnostic banks these are not difficulty-ordered.
var SubjectQuestions = map[models.SubjectID][]models.SubjectQuestion{
	models.SubjectPortugues: {
		{
			ID:     "pt_1",
			Prompt: "Qual é a função sintática da palavra \"rapidamente\" na frase: \"Ele correu rapidamente\"?",
			Options: []models.Option{
				{ID: "a", Label: "Sujeito"},
				{ID: "b", Label: "Predicado"},
				{ID: "c", Label: "Adjunto adverbial"},
				{ID: "d", Label: "Complemento nominal"},
			},
			CorrectAnswerID: "c",
		},
		{
			ID:     "pt_2",
			Prompt: "Assinale a alternativa em que todas as palavras estão grafadas corretamente:",
			Options: []models.Option{
				{ID: "a", Label: "Exceção, excessão, exceção"},
				{ID: "b", Label: "Exceção, excesso, exceção"},
				{ID: "c", Label: "Excessão, excesso, exceção"},
				{ID: "d", Label: "Exceção, excesso, excessão"},
			},
			CorrectAnswerID: "b",
		},
	},
	models.SubjectRaciocinioLogico: {
		{
			ID:     "rl_1",
			Prompt: "Se todos os A são B e alguns B são C, então:",
			Options: []models.Option{
				{ID: "a", Label: "Todos os A são C"},
				{ID: "b", Label: "Alguns A são C"},
				{ID: "c", Label: "Nenhum A é C"},
				{ID: "d", Label: "Não é possível determinar"},
			},
			CorrectAnswerID: "d",
		},
	},
	models.SubjectInformatica: {
		{
			ID:     "inf_1",
			Prompt: "O que significa a sigla HTTP?",
			Options: []models.Option{
				{ID: "a", Label: "HyperText Transfer Protocol"},
				{ID: "b", Label: "High Transfer Text Protocol"},
				{ID: "c", Label: "HyperText Transmission Protocol"},
				{ID: "d", Label: "High Text Transfer Protocol"},
			},
			CorrectAnswerID: "a",
		},
	},
	models.SubjectDireitoConstitucional: {
		{
			ID:     "dc_1",
			Prompt: "Qual é o princípio fundamental que garante a separação dos poderes?",
			Options: []models.Option{
				{ID: "a", Label: "Princípio da legalidade"},
				{ID: "b", Label: "Princípio da separação dos poderes"},
				{ID: "c", Label: "Princípio da impessoalidade"},
				{ID: "d", Label: "Princípio da moralidade"},
			},
			CorrectAnswerID: "b",
		},
	},
	models.SubjectDireitoAdministrativo: {
		{
			ID:     "da_1",
			Prompt: "O que é um ato administrativo?",
			Options: []models.Option{
				{ID: "a", Label: "Qualquer manifestação de vontade da administração pública"},
				{ID: "b", Label: "Apenas decisões judiciais"},
				{ID: "c", Label: "Leis aprovadas pelo Congresso"},
				{ID: "d", Label: "Contratos privados"},
			},
			CorrectAnswerID: "a",
		},
	},
}

// PracticeQuestions returns count questions for a subject, padding the
// authored set with placeholder items when the bank is still short. The
// placeholder answer is always option "a".
func PracticeQuestions(id models.SubjectID, count int) []models.SubjectQuestion {
	questions := make([]models.SubjectQuestion, 0, count)
	questions = append(questions, SubjectQuestions[id]...)

	for len(questions) < count {
		n := len(questions) + 1
		questions = append(questions, models.SubjectQuestion{
			ID:     fmt.Sprintf("%s_%d", id, n),
			Prompt: fmt.Sprintf("Questão %d de %d sobre %s (questão de desenvolvimento)", n, count, id),
			Options: []models.Option{
				{ID: "a", Label: "Alternativa A"},
				{ID: "b", Label: "Alternativa B"},
				{ID: "c", Label: "Alternativa C"},
				{ID: "d", Label: "Alternativa D"},
			},
			CorrectAnswerID: "a",
		})
	}

	return questions[:count]
}
