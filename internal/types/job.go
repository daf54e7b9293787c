package types

// ExperienceLevel labels the seniority a job posting targets
type ExperienceLevel string

// Experience level constants
const (
	LevelEntry  ExperienceLevel = "entry"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

// MinDescriptionLength is the minimum trimmed job description length
// accepted by the prediction pipeline.
const MinDescriptionLength = 20

// JobPosting represents a job as loaded for a single prediction request
type JobPosting struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	RequiredSkills  []string        `json:"required_skills"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Location        string          `json:"location,omitempty"`
	Remote          bool            `json:"remote,omitempty"`
}

// RequiredMonths returns the benchmark experience in months for the
// posting's seniority label. Unknown labels fall back to entry level.
func (j *JobPosting) RequiredMonths() int {
	switch j.ExperienceLevel {
	case LevelSenior:
		return 60
	case LevelMid:
		return 36
	default:
		return 12
	}
}
