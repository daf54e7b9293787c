// Package domain classifies free text into coarse professional domains
// using a fixed keyword table. The classification is a heuristic sanity
// signal for cross-field matches, not a learned model.
package domain

import (
	"strings"

	"github.com/hirepulse/shortlist-engine/internal/types"
)

// General is the label returned when no domain keyword matches.
const General = "general"

// domainEntry pairs a domain label with its keyword list. Declaration
// order is significant: ties resolve to the earlier entry.
type domainEntry struct {
	name     string
	keywords []string
}

// domainTable is the fixed, ordered set of recognized professional domains.
var domainTable = []domainEntry{
	{"ml", []string{
		"machine learning", "deep learning", "neural network", "tensorflow",
		"pytorch", "scikit", "nlp", "computer vision", "model training",
		"data science",
	}},
	{"data", []string{
		"sql", "etl", "data analysis", "data engineer", "pandas", "spark",
		"hadoop", "tableau", "power bi", "data warehouse", "analytics",
	}},
	{"web", []string{
		"react", "angular", "vue", "javascript", "typescript", "html", "css",
		"frontend", "front-end", "web development", "node",
	}},
	{"backend", []string{
		"api", "microservice", "database", "server", "backend", "back-end",
		"rest", "grpc", "java", "golang", "django", "spring",
	}},
	{"mobile", []string{
		"android", "ios", "mobile", "flutter", "react native", "kotlin",
		"swift",
	}},
	{"devops", []string{
		"docker", "kubernetes", "ci/cd", "terraform", "ansible", "jenkins",
		"aws", "azure", "gcp", "infrastructure", "deployment",
	}},
	{"security", []string{
		"security", "penetration", "cryptography", "vulnerability",
		"firewall", "encryption", "threat",
	}},
}

// Classify scores text plus skill names against each domain's keyword list
// and returns the best-covered domain. Coverage is the fraction of the
// domain's keywords present as case-insensitive substrings. When nothing
// matches, the result is {general, 0}.
func Classify(text string, skills []string) types.DomainClassification {
	haystack := strings.ToLower(text)
	if len(skills) > 0 {
		haystack += " " + strings.ToLower(strings.Join(skills, " "))
	}

	best := types.DomainClassification{Domain: General, Score: 0}
	for _, entry := range domainTable {
		hits := 0
		for _, kw := range entry.keywords {
			if strings.Contains(haystack, kw) {
				hits++
			}
		}
		score := float64(hits) / float64(len(entry.keywords))
		// Strict > keeps the first-declared domain on ties.
		if score > best.Score {
			best = types.DomainClassification{Domain: entry.name, Score: score}
		}
	}

	return best
}

// Keywords returns the keyword list for a domain label, or nil when the
// label is unknown.
func Keywords(name string) []string {
	for _, entry := range domainTable {
		if entry.name == name {
			return entry.keywords
		}
	}
	return nil
}
