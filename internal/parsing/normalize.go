// Package parsing provides skill-name normalization and keyword extraction
// for candidate profiles and job postings.
package parsing

import "strings"

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"tensorflow": "TensorFlow",
	"pytorch":    "PyTorch",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	if skillName == "" {
		return ""
	}

	normalized := strings.TrimSpace(skillName)
	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// All-caps words that aren't mapped are kept as acronyms (SQL, AWS)
	if normalized == strings.ToUpper(normalized) {
		return normalized
	}

	// Lowercase single words get their first letter capitalized
	if normalized == lower && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// NormalizeSkillNames normalizes and deduplicates a list of skill names,
// preserving first-seen order. Duplicates are matched case-insensitively.
func NormalizeSkillNames(names []string) []string {
	if len(names) == 0 {
		return names
	}

	normalized := make([]string, 0, len(names))
	seen := make(map[string]bool)

	for _, name := range names {
		canonical := NormalizeSkillName(name)
		if canonical == "" {
			continue
		}
		key := strings.ToLower(canonical)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, canonical)
	}

	return normalized
}
