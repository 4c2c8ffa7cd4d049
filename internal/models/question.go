package models

// QuestionType is a presentation hint for the vocational questionnaire.
// It has no effect on scoring.
type QuestionType string

const (
	QuestionTypeList      QuestionType = "list"
	QuestionTypeGridIcons QuestionType = "grid_icons"
	QuestionTypeCards     QuestionType = "cards"
)

// Option is one selectable answer. IDs are stable string tokens reused as
// scoring keys, unique within a question's option set.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// Question is one vocational questionnaire item.
type Question struct {
	ID      int          `json:"id"`
	Prompt  string       `json:"question"`
	Type    QuestionType `json:"type"`
	Options []Option     `json:"options"`
}

// AnswerMap maps a question id to the chosen option id. Partial maps are
// legal: unanswered questions simply contribute nothing downstream.
type AnswerMap map[int]string

// Option tokens the scoring and eligibility logic branches on. Tokens not
// listed here are open-ended and ignored by the core.
const (
	AnswerFormationFundamental = "fundamental"
	AnswerFormationMedio       = "medio"
	AnswerFormationSuperior    = "superior"
	AnswerFormationPos         = "pos"
	AnswerFormationMestrado    = "mestrado"
	AnswerFormationDoutorado   = "doutorado"

	AnswerActivityAdmin     = "admin"
	AnswerActivityPolice    = "police"
	AnswerActivityFiscal    = "fiscal"
	AnswerActivityLegal     = "legal"
	AnswerActivityHealth    = "health"
	AnswerActivityEducation = "education"

	AnswerPrioritySalary    = "salary"
	AnswerPrioritySpeed     = "speed"
	AnswerPriorityLocation  = "location"
	AnswerPriorityStability = "stability"
	AnswerPriorityGrowth    = "growth"

	AnswerStudyTimeLow      = "low"
	AnswerStudyTimeMedium   = "medium"
	AnswerStudyTimeHigh     = "high"
	AnswerStudyTimeVeryHigh = "very_high"

	AnswerAreaFederal   = "federal"
	AnswerAreaEstadual  = "estadual"
	AnswerAreaMunicipal = "municipal"
	AnswerAreaAutarquia = "autarquia"

	AnswerMethodSelf       = "self"
	AnswerMethodOnline     = "online"
	AnswerMethodPresential = "presential"
	AnswerMethodHybrid     = "hybrid"

	AnswerObjectiveRetirement = "retirement"
	AnswerObjectiveImpact     = "impact"
	AnswerObjectiveCareer     = "career"
	AnswerObjectiveChange     = "change"

	AnswerAgeBand18To25 = "18-25"
	AnswerAgeBand26To30 = "26-30"
	AnswerAgeBand31To35 = "31-35"
	AnswerAgeBand36To45 = "36-45"
	AnswerAgeBand46Plus = "46+"

	AnswerCNHYes = "cnh_yes"
	AnswerCNHNo  = "cnh_no"
)
