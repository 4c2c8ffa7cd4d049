package models

type ContestStatus string

const (
	ContestOpen   ContestStatus = "open"
	ContestSoon   ContestStatus = "soon"
	ContestClosed ContestStatus = "closed"
)

type ContestLevel string

const (
	LevelMedio    ContestLevel = "medium"
	LevelSuperior ContestLevel = "superior"
)

type ContestCategory string

const (
	CategoryPolice    ContestCategory = "police"
	CategoryFiscal    ContestCategory = "fiscal"
	CategoryAdmin     ContestCategory = "admin"
	CategoryLegal     ContestCategory = "legal"
	CategoryHealth    ContestCategory = "health"
	CategoryEducation ContestCategory = "education"
)

var ValidContestCategories = map[ContestCategory]bool{
	CategoryPolice:    true,
	CategoryFiscal:    true,
	CategoryAdmin:     true,
	CategoryLegal:     true,
	CategoryHealth:    true,
	CategoryEducation: true,
}

// EducationLevel is the minimum schooling a contest demands.
type EducationLevel string

const (
	EducationFundamental EducationLevel = "fundamental"
	EducationMedio       EducationLevel = "medio"
	EducationSuperior    EducationLevel = "superior"
	EducationPos         EducationLevel = "pos"
)

// Weight places the level on the ordinal scale used by eligibility checks.
// Unknown levels weigh zero, which makes them impossible to satisfy.
func (e EducationLevel) Weight() int {
	switch e {
	case EducationFundamental:
		return 1
	case EducationMedio:
		return 2
	case EducationSuperior:
		return 3
	case EducationPos:
		return 4
	}
	return 0
}

// ContestRequirements carries the eligibility data attached to a contest.
// Nil age bounds mean the contest declares none.
type ContestRequirements struct {
	Vacancies          string         `json:"vacancies"`
	Summary            string         `json:"requirements"`
	Link               string         `json:"link"`
	RegistrationPeriod string         `json:"registrationPeriod,omitempty"`
	ExamDate           string         `json:"examDate,omitempty"`
	MinAge             *int           `json:"minAge,omitempty"`
	MaxAge             *int           `json:"maxAge,omitempty"`
	RequiresCNH        bool           `json:"requiresCNH,omitempty"`
	RequiresTAF        bool           `json:"requiresTAF,omitempty"`
	Education          EducationLevel `json:"education"`
}

// Contest is one public-sector hiring competition. Contests are bundled
// data, never mutated; identity is the string id.
type Contest struct {
	ID           string              `json:"id"`
	Institution  string              `json:"institution"`
	Role         string              `json:"role"`
	Salary       string              `json:"salary"`
	Status       ContestStatus       `json:"status"`
	Level        ContestLevel        `json:"level"`
	Category     ContestCategory     `json:"category"`
	Requirements ContestRequirements `json:"requirements"`
}
