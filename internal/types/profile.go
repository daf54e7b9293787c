// Package types provides type definitions for structured data used throughout the shortlist engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/google/uuid"
)

// ProficiencyLevel represents how well a candidate knows a skill
type ProficiencyLevel string

// Proficiency level constants
const (
	ProficiencyBeginner     ProficiencyLevel = "beginner"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "advanced"
)

// ExperienceKind distinguishes full jobs from internships
type ExperienceKind string

// Experience kind constants
const (
	ExperienceJob        ExperienceKind = "job"
	ExperienceInternship ExperienceKind = "internship"
)

// ProjectComplexity represents the complexity tier of a candidate project
type ProjectComplexity string

// Project complexity constants
const (
	ComplexityLow    ProjectComplexity = "low"
	ComplexityMedium ProjectComplexity = "medium"
	ComplexityHigh   ProjectComplexity = "high"
)

// SkillEntry is a single named skill with a proficiency level
type SkillEntry struct {
	Name  string           `json:"name" validate:"required"`
	Level ProficiencyLevel `json:"level" validate:"required,oneof=beginner intermediate advanced"`
}

// ExperienceEntry is one job or internship on a candidate profile
type ExperienceEntry struct {
	Company  string         `json:"company"`
	Role     string         `json:"role"`
	Duration string         `json:"duration"` // free text, e.g. "6 months"
	Kind     ExperienceKind `json:"kind"`
}

// Project is one project on a candidate profile
type Project struct {
	Title       string            `json:"title"`
	TechStack   []string          `json:"tech_stack"`
	Description string            `json:"description"`
	Complexity  ProjectComplexity `json:"complexity"`
}

// CandidateProfile represents a candidate as reconstructed for a single
// prediction request. Profiles are never cached across requests.
type CandidateProfile struct {
	ID                    uuid.UUID         `json:"id"`
	Name                  string            `json:"name"`
	ResumeID              string            `json:"resume_id"`
	Skills                []SkillEntry      `json:"skills"`
	Experience            []ExperienceEntry `json:"experience"`
	Projects              []Project         `json:"projects"`
	TotalExperienceMonths int               `json:"total_experience_months"`
	CGPA                  *float64          `json:"cgpa,omitempty"` // 0-10 scale, optional
	EducationLevel        string            `json:"education_level"`
	UserType              string            `json:"user_type,omitempty"` // e.g. "student", "professional"
}

// ParsedResumeData is the upstream resume parser's output shape. The core
// engine never consumes it directly; it is carried here so the application
// layer and the engine agree on one definition.
type ParsedResumeData struct {
	Skills            []string `json:"skills"`
	Education         []string `json:"education"`
	ExperienceMonths  int      `json:"experience_months"`
	ProjectsCount     int      `json:"projects_count"`
	CompletenessScore float64  `json:"completeness_score"`
}

// HasSkill reports whether the profile lists a skill, matched case-insensitively.
func (p *CandidateProfile) HasSkill(name string) bool {
	for _, s := range p.Skills {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

// SkillNames returns the profile's skill names in listed order.
func (p *CandidateProfile) SkillNames() []string {
	names := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		names[i] = s.Name
	}
	return names
}

// CountExperience returns the number of experience entries of the given kind.
func (p *CandidateProfile) CountExperience(kind ExperienceKind) int {
	count := 0
	for _, e := range p.Experience {
		if e.Kind == kind {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the profile. What-if simulation edits the
// clone so the original stays untouched.
func (p *CandidateProfile) Clone() *CandidateProfile {
	clone := *p

	clone.Skills = make([]SkillEntry, len(p.Skills))
	copy(clone.Skills, p.Skills)

	clone.Experience = make([]ExperienceEntry, len(p.Experience))
	copy(clone.Experience, p.Experience)

	clone.Projects = make([]Project, len(p.Projects))
	for i, proj := range p.Projects {
		clone.Projects[i] = proj
		clone.Projects[i].TechStack = make([]string, len(proj.TechStack))
		copy(clone.Projects[i].TechStack, proj.TechStack)
	}

	if p.CGPA != nil {
		cgpa := *p.CGPA
		clone.CGPA = &cgpa
	}

	return &clone
}
