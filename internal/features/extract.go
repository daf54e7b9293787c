// Package features converts candidate profiles into the fixed-order numeric
// feature vectors consumed by the external strength classifier.
package features

import (
	"strings"

	"github.com/hirepulse/shortlist-engine/internal/types"
)

// Weights for the derived overall-strength score. Empirically chosen;
// see DESIGN.md before treating the exact values as domain truth.
const (
	strengthSkillsWeight     = 0.25
	strengthAdvancedWeight   = 0.15
	strengthExperienceWeight = 0.20
	strengthProjectsWeight   = 0.15
	strengthEducationWeight  = 0.15
	strengthDiversityWeight  = 0.10
)

// Normalization caps for the overall-strength sub-features
const (
	skillCountCap      = 20.0
	advancedCountCap   = 10.0
	experienceMonthCap = 60.0
	projectCountCap    = 5.0
	educationLevelCap  = 4.0
)

// ProfileFeatureNames is the documented profile feature schema, in exact
// extraction order. Extract always returns a vector of this length.
var ProfileFeatureNames = []string{
	"skill_count",
	"advanced_skill_count",
	"intermediate_skill_count",
	"beginner_skill_count",
	"skill_diversity",
	"experience_months",
	"internship_count",
	"job_count",
	"has_experience",
	"avg_experience_months",
	"education_level",
	"qualifying_education",
	"cgpa_normalized",
	"project_count",
	"high_complexity_projects",
	"medium_complexity_projects",
	"avg_project_complexity",
	"overall_strength",
}

// FeatureVector is an ordered list of named numeric features
type FeatureVector struct {
	Names  []string
	Values []float64
}

// Get returns the value for a named feature and whether it exists.
func (fv *FeatureVector) Get(name string) (float64, bool) {
	for i, n := range fv.Names {
		if n == name {
			return fv.Values[i], true
		}
	}
	return 0, false
}

// AllZero reports whether every feature value is exactly zero.
func (fv *FeatureVector) AllZero() bool {
	for _, v := range fv.Values {
		if v != 0 {
			return false
		}
	}
	return true
}

// degreeLevels maps degree-text keywords to an integer education level.
// Checked highest first so "PhD in Computer Science" ranks doctoral.
var degreeLevels = []struct {
	level    float64
	keywords []string
}{
	{4, []string{"phd", "doctoral", "doctorate"}},
	{3, []string{"master", "m.tech", "mtech", "msc", "m.sc", "mca", "mba"}},
	{2, []string{"bachelor", "b.tech", "btech", "bsc", "b.sc", "bca", "b.e", "engineering degree"}},
	{1, []string{"diploma", "high school", "secondary", "12th"}},
}

// Extract derives the profile feature vector from a candidate profile.
// Negative counts are clamped to zero, never propagated.
func Extract(profile *types.CandidateProfile) *FeatureVector {
	skillCount := float64(len(profile.Skills))
	advanced, intermediate, beginner := 0.0, 0.0, 0.0
	for _, s := range profile.Skills {
		switch s.Level {
		case types.ProficiencyAdvanced:
			advanced++
		case types.ProficiencyIntermediate:
			intermediate++
		default:
			beginner++
		}
	}

	diversity := diversityScore(len(profile.Skills))

	months := clampNonNegative(float64(profile.TotalExperienceMonths))
	internships := float64(profile.CountExperience(types.ExperienceInternship))
	jobs := float64(profile.CountExperience(types.ExperienceJob))
	hasExperience := 0.0
	if len(profile.Experience) > 0 {
		hasExperience = 1.0
	}
	avgMonths := 0.0
	if len(profile.Experience) > 0 {
		avgMonths = months / float64(len(profile.Experience))
	}

	education := educationLevel(profile.EducationLevel, profile.UserType)
	qualifying := 0.0
	if education >= 2 {
		qualifying = 1.0
	}

	// CGPA is optional; a missing value scores neutral rather than zero so
	// profiles without grades are not penalized.
	cgpa := 0.5
	if profile.CGPA != nil {
		cgpa = clamp01(*profile.CGPA / 10.0)
	}

	projectCount := float64(len(profile.Projects))
	high, medium := 0.0, 0.0
	complexitySum := 0.0
	for _, proj := range profile.Projects {
		switch proj.Complexity {
		case types.ComplexityHigh:
			high++
			complexitySum += 1.0
		case types.ComplexityMedium:
			medium++
			complexitySum += 0.6
		default:
			complexitySum += 0.3
		}
	}
	avgComplexity := 0.0
	if projectCount > 0 {
		avgComplexity = complexitySum / projectCount
	}

	overall := overallStrength(skillCount, advanced, months, projectCount, education, diversity)

	values := []float64{
		skillCount,
		advanced,
		intermediate,
		beginner,
		diversity,
		months,
		internships,
		jobs,
		hasExperience,
		avgMonths,
		education,
		qualifying,
		cgpa,
		projectCount,
		high,
		medium,
		avgComplexity,
		overall,
	}

	return &FeatureVector{Names: ProfileFeatureNames, Values: values}
}

// diversityScore maps a skill count onto the stepped diversity scale.
func diversityScore(skillCount int) float64 {
	switch {
	case skillCount <= 0:
		return 0.0
	case skillCount < 3:
		return 0.3
	case skillCount < 5:
		return 0.6
	case skillCount < 10:
		return 0.8
	default:
		return 1.0
	}
}

// educationLevel infers an integer education level (0 none .. 4 doctoral)
// from degree text, falling back to the profile's user type when the
// degree text matches nothing.
func educationLevel(degreeText, userType string) float64 {
	lower := strings.ToLower(degreeText)
	for _, entry := range degreeLevels {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.level
			}
		}
	}

	// Degree text was empty or unrecognized; students are assumed to be
	// working toward a bachelor's degree.
	if strings.EqualFold(userType, "student") {
		return 2
	}
	return 0
}

// overallStrength computes the fixed weighted sum of normalized sub-features,
// clamped to [0,1].
func overallStrength(skills, advanced, months, projects, education, diversity float64) float64 {
	score := strengthSkillsWeight*clamp01(skills/skillCountCap) +
		strengthAdvancedWeight*clamp01(advanced/advancedCountCap) +
		strengthExperienceWeight*clamp01(months/experienceMonthCap) +
		strengthProjectsWeight*clamp01(projects/projectCountCap) +
		strengthEducationWeight*clamp01(education/educationLevelCap) +
		strengthDiversityWeight*clamp01(diversity)
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
