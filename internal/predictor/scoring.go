package predictor

import (
	"strings"

	"github.com/hirepulse/shortlist-engine/internal/domain"
	"github.com/hirepulse/shortlist-engine/internal/parsing"
	"github.com/hirepulse/shortlist-engine/internal/types"
)

// Skill-match weights per match route
const (
	directMatchWeight       = 1.0
	relatedMatchWeight      = 0.7 // required skill overlaps a held skill's name
	transferableSkillWeight = 0.4
)

// Domain-match scores
const (
	domainAligned   = 0.75 // same non-general domain
	domainAdjacent  = 0.45 // both non-general, different
	domainUnrelated = 0.2
)

// Long-text bias correction for semantic similarity
const (
	longJobThreshold   = 2000
	shortCandThreshold = 500
	longTextBiasFactor = 0.5
	semanticMatchFloor = 0.1
)

// Domain relation labels reported in results
const (
	RelationAligned   = "aligned"
	RelationAdjacent  = "adjacent"
	RelationUnrelated = "unrelated"
)

// transferableSkills carry partial credit even without a direct or
// domain-level match: they transfer across fields.
var transferableSkills = []string{
	"git", "version control", "testing", "communication", "problem solving",
	"teamwork", "agile", "documentation",
}

// skillMatchResult holds the skill-coverage score and the per-skill breakdown
type skillMatchResult struct {
	score   float64
	matched []string
	missing []string
	weak    []string
}

// computeSkillMatch scores weighted coverage of required skills by the
// candidate's skills. Direct name matches weigh 1.0, related matches
// (name overlap with a held skill, e.g. "AWS" vs "AWS Lambda") 0.7,
// transferable skills 0.4; the sum is divided by max(1, requiredCount)
// and clamped to [0,1].
func computeSkillMatch(profile *types.CandidateProfile, required []string) skillMatchResult {
	result := skillMatchResult{
		matched: []string{},
		missing: []string{},
		weak:    []string{},
	}
	if len(required) == 0 {
		return result
	}

	// Candidate skills by normalized lowercase name.
	levels := make(map[string]types.ProficiencyLevel, len(profile.Skills))
	held := make([]string, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		key := strings.ToLower(parsing.NormalizeSkillName(s.Name))
		levels[key] = s.Level
		held = append(held, key)
	}

	sum := 0.0
	for _, req := range required {
		normalized := parsing.NormalizeSkillName(req)
		key := strings.ToLower(normalized)

		if level, ok := levels[key]; ok {
			sum += directMatchWeight
			result.matched = append(result.matched, normalized)
			if level == types.ProficiencyBeginner {
				result.weak = append(result.weak, normalized)
			}
			continue
		}

		if matchesKeyword(key, held) {
			sum += relatedMatchWeight
			result.weak = append(result.weak, normalized)
			continue
		}

		if matchesKeyword(key, transferableSkills) {
			sum += transferableSkillWeight
			result.weak = append(result.weak, normalized)
			continue
		}

		result.missing = append(result.missing, normalized)
	}

	result.score = clamp(sum/float64(max(1, len(required))), 0, 1)
	return result
}

// matchesKeyword reports whether a normalized skill name overlaps a
// keyword list in either direction. Names under three characters are
// excluded from the containment check: "go" would otherwise match
// inside "django".
func matchesKeyword(skill string, keywords []string) bool {
	if len(skill) < 3 {
		return false
	}
	for _, kw := range keywords {
		if len(kw) < 3 {
			continue
		}
		if strings.Contains(skill, kw) || strings.Contains(kw, skill) {
			return true
		}
	}
	return false
}

// computeDomainMatch scores candidate/job domain agreement and labels
// the relation.
func computeDomainMatch(candidate, job types.DomainClassification) (float64, string) {
	candGeneral := candidate.Domain == domain.General
	jobGeneral := job.Domain == domain.General

	switch {
	case !candGeneral && !jobGeneral && candidate.Domain == job.Domain:
		return domainAligned, RelationAligned
	case !candGeneral && !jobGeneral:
		return domainAdjacent, RelationAdjacent
	default:
		return domainUnrelated, RelationUnrelated
	}
}

// adjustSemantic applies the long-text bias correction and the
// direct-match floor to a raw cosine similarity.
func adjustSemantic(raw float64, jobTextLen, candTextLen, directMatches int) float64 {
	sim := raw
	if jobTextLen > longJobThreshold && candTextLen < shortCandThreshold {
		sim *= longTextBiasFactor
	}
	// A true skill overlap must never be erased by a low semantic score.
	if directMatches >= 1 && sim < semanticMatchFloor {
		sim = semanticMatchFloor
	}
	return sim
}

// computeRichness scores profile richness from raw volume signals, each
// capped and normalized. It backs up the external classifier, which was
// found to under-react to resume richness on its own.
func computeRichness(profile *types.CandidateProfile) float64 {
	skills := clamp(float64(len(profile.Skills))/15.0, 0, 1)
	internships := clamp(float64(profile.CountExperience(types.ExperienceInternship))/2.0, 0, 1)
	projects := clamp(float64(len(profile.Projects))/4.0, 0, 1)
	months := clamp(float64(profile.TotalExperienceMonths)/24.0, 0, 1)

	return 0.30*skills + 0.20*internships + 0.25*projects + 0.25*months
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
