package predictor

import (
	"fmt"
	"strings"

	"github.com/hirepulse/shortlist-engine/internal/types"
)

// Benchmarks behind the improvement statements
const (
	internshipBenchmark     = 2
	projectCountBenchmark   = 3
	highComplexityBenchmark = 1
	pointsPerMissingYear    = 8.0 // estimated probability-point cost
)

// explain generates the ranked list of improvement statements from
// concrete gaps between the profile and the job. If no gap applies, a
// single positive statement names the matched-skill fraction.
func explain(profile *types.CandidateProfile, job *types.JobPosting, ev *Evaluation) []string {
	var statements []string

	requiredCount := max(1, len(job.RequiredSkills))

	if len(ev.MissingSkills) > 0 {
		fraction := float64(len(ev.MissingSkills)) / float64(requiredCount) * 100
		statements = append(statements, fmt.Sprintf(
			"Learn %s to cover %.0f%% more of this job's requirements",
			joinSkills(ev.MissingSkills), fraction))
	}

	if months, needed := profile.TotalExperienceMonths, job.RequiredMonths(); months < needed {
		missingYears := float64(needed-months) / 12.0
		statements = append(statements, fmt.Sprintf(
			"Gain %.1f more years of experience for %s-level roles (estimated +%.0f probability points)",
			missingYears, job.ExperienceLevel, missingYears*pointsPerMissingYear))
	}

	if internships := profile.CountExperience(types.ExperienceInternship); internships < internshipBenchmark {
		statements = append(statements, fmt.Sprintf(
			"Complete %d more internship(s); shortlisted candidates typically have %d",
			internshipBenchmark-internships, internshipBenchmark))
	}

	if len(profile.Projects) < projectCountBenchmark {
		statements = append(statements, fmt.Sprintf(
			"Build %d more project(s) to reach the benchmark of %d",
			projectCountBenchmark-len(profile.Projects), projectCountBenchmark))
	}
	if countHighComplexity(profile) < highComplexityBenchmark {
		statements = append(statements,
			"Add at least one high-complexity project to demonstrate depth")
	}

	if len(statements) == 0 {
		matched := float64(len(ev.MatchedSkills)) / float64(requiredCount) * 100
		statements = append(statements, fmt.Sprintf(
			"Strong profile for this role: you already cover %.0f%% of the required skills",
			matched))
	}

	return statements
}

func countHighComplexity(profile *types.CandidateProfile) int {
	count := 0
	for _, p := range profile.Projects {
		if p.Complexity == types.ComplexityHigh {
			count++
		}
	}
	return count
}

// joinSkills renders up to four skill names, eliding the rest.
func joinSkills(skills []string) string {
	if len(skills) <= 4 {
		return strings.Join(skills, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(skills[:4], ", "), len(skills)-4)
}
