package models

import "time"

// SubjectID identifies a study subject. The set is open-ended: new subjects
// only require new bundled data.
type SubjectID string

const (
	SubjectPortugues             SubjectID = "portugues"
	SubjectRaciocinioLogico      SubjectID = "raciocinio_logico"
	SubjectInformatica           SubjectID = "informatica"
	SubjectDireitoConstitucional SubjectID = "direito_constitucional"
	SubjectDireitoAdministrativo SubjectID = "direito_administrativo"
)

type Subject struct {
	ID            SubjectID `json:"id"`
	Name          string    `json:"name"`
	Icon          string    `json:"icon"`
	QuestionCount int       `json:"questionCount"`
}

type Difficulty string

const (
	DifficultyFacil   Difficulty = "Fácil"
	DifficultyMedio   Difficulty = "Médio"
	DifficultyDificil Difficulty = "Difícil"
)

// DiagnosisQuestion is one item of a subject's diagnostic bank, in the style
// of published exam questions: board metadata, five alternatives and a
// commented answer. Invariant: 0 <= CorrectAnswerIndex < len(Options).
type DiagnosisQuestion struct {
	ID                 int        `json:"id"`
	Text               string     `json:"text"`
	ContextText        string     `json:"contextText,omitempty"`
	Options            []string   `json:"options"`
	CorrectAnswerIndex int        `json:"correctAnswerIndex"`
	Banca              string     `json:"banca"`
	Ano                int        `json:"ano"`
	Orgao              string     `json:"orgao"`
	Cargo              string     `json:"cargo,omitempty"`
	Assunto            string     `json:"assunto"`
	Explanation        string     `json:"explanation"`
	Difficulty         Difficulty `json:"difficulty"`
}

// Level is the proficiency tier derived from a diagnosis percentage.
type Level string

const (
	LevelIniciante     Level = "Iniciante"
	LevelIntermediario Level = "Intermediário"
	LevelAvancado      Level = "Avançado"
)

// DiagnosisResult is the outcome of one completed diagnostic session.
// Persisted keyed by subject; a later completion overwrites the prior one.
type DiagnosisResult struct {
	SubjectID      SubjectID `json:"subjectId"`
	Level          Level     `json:"level"`
	Percentage     float64   `json:"percentage"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	CompletedAt    time.Time `json:"completedAt"`
}

// SubjectQuestion is one item of the lighter per-subject practice quiz.
type SubjectQuestion struct {
	ID              string   `json:"id"`
	Prompt          string   `json:"question"`
	Options         []Option `json:"options"`
	CorrectAnswerID string   `json:"correctAnswerId"`
}

// QuizResult is the stored outcome of a per-subject practice quiz.
type QuizResult struct {
	SubjectID      SubjectID `json:"subjectId"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	CompletedAt    time.Time `json:"completedAt"`
}
