package parsing

import "strings"

// skillVocabulary is the fixed list of skill keywords recognized when a job
// posting arrives without an explicit required-skills list. Matching is
// case-insensitive whole-word matching against title plus description.
var skillVocabulary = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Go", "C++", "C#", "Rust",
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis",
	"React", "Angular", "Vue", "Node.js", "Django", "Flask", "Spring",
	"HTML", "CSS", "REST", "GraphQL", "gRPC",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "CI/CD",
	"Linux", "Git", "Jenkins", "Ansible",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Pandas",
	"NumPy", "Scikit-learn", "NLP", "Computer Vision", "Data Analysis",
	"Spark", "Hadoop", "Kafka", "Airflow", "Tableau", "Power BI", "Excel",
	"Android", "iOS", "Kotlin", "Swift", "Flutter", "React Native",
	"Penetration Testing", "Cryptography", "Network Security",
	"Agile", "Scrum", "Communication", "Testing",
}

// ExtractSkillKeywords derives a required-skills list from free job text.
// Used when a posting carries no explicit requirements; the orchestrator
// persists the derived list back to the job store.
func ExtractSkillKeywords(title, description string) []string {
	haystack := strings.ToLower(title + " " + description)

	var found []string
	for _, skill := range skillVocabulary {
		if containsWord(haystack, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}

	return found
}

// containsWord reports whether term occurs in haystack bounded by
// non-alphanumeric characters on both sides. Bare substring matching
// derived phantom skills that then got persisted on the posting: "Java"
// from "JavaScript", "Go" from "Django", "Git" from "digital", "Excel"
// from "excellent". A regexp \b anchor mishandles terms ending in
// non-word characters such as "C++", so the boundaries are checked by
// hand.
func containsWord(haystack, term string) bool {
	if term == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(haystack[start:], term)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(term)
		if (i == 0 || !isWordByte(haystack[i-1])) &&
			(end == len(haystack) || !isWordByte(haystack[end])) {
			return true
		}
		start = i + 1
	}
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
