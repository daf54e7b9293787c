package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// fallbackVocabulary is the fixed domain-keyword vocabulary for the
// deterministic vectorizer. Each term occupies its own lane so per-skill
// presence and frequency shape the vector directly.
var fallbackVocabulary = []string{
	"python", "java", "javascript", "typescript", "go", "rust", "c++", "c#",
	"sql", "nosql", "postgresql", "mysql", "mongodb", "redis",
	"react", "angular", "vue", "node", "django", "flask", "spring",
	"html", "css", "rest", "graphql", "grpc", "api", "microservice",
	"aws", "azure", "gcp", "cloud", "docker", "kubernetes", "terraform",
	"linux", "git", "jenkins", "ansible", "ci/cd", "devops",
	"machine learning", "deep learning", "tensorflow", "pytorch", "pandas",
	"numpy", "nlp", "computer vision", "data", "analytics", "spark",
	"hadoop", "kafka", "airflow", "tableau", "excel",
	"android", "ios", "kotlin", "swift", "flutter", "mobile",
	"security", "cryptography", "penetration", "network",
	"agile", "scrum", "testing", "communication", "leadership",
	"backend", "frontend", "fullstack", "database", "server", "design",
	"engineer", "developer", "senior", "junior", "intern",
}

// commonTerms marks vocabulary entries that show up in the majority of
// postings regardless of field. Their lanes carry a reduced weight so
// ubiquitous words do not drown out the discriminating ones. The
// vocabulary is fixed and there is no live corpus, so the
// inverse-document-frequency factor reduces to a per-term constant
// fixed at authoring time.
var commonTerms = map[string]bool{
	"api": true, "cloud": true, "data": true, "mobile": true,
	"network": true, "design": true, "server": true, "database": true,
	"backend": true, "frontend": true, "fullstack": true,
	"testing": true, "communication": true, "leadership": true,
	"agile": true, "scrum": true,
	"engineer": true, "developer": true, "senior": true, "junior": true,
	"intern": true,
}

const commonTermWeight = 0.4

// Lane layout inside the fixed-dimension vector
const (
	charLanes   = 36 // a-z plus 0-9 frequency distribution
	lengthLanes = 8  // logarithmic text-length buckets
	hashLanes   = 4  // full-text hash, split across lanes
)

// FallbackVectorizer is the deterministic strategy used when the primary
// embedding model is unavailable. It combines term frequencies over the
// fixed vocabulary, a structural signature of the text, a full-text hash,
// and a hashed bag of the remaining tokens, so two different texts never
// collapse to the same vector. An earlier revision ignored actual content
// and produced near-identical vectors for all jobs; the hash and
// per-term lanes exist to keep that from recurring.
type FallbackVectorizer struct{}

// NewFallbackVectorizer creates the deterministic fallback strategy.
func NewFallbackVectorizer() *FallbackVectorizer {
	return &FallbackVectorizer{}
}

// Vectorize builds the deterministic vector for text. It never fails and
// ignores ctx; the signature matches the Vectorizer interface.
func (f *FallbackVectorizer) Vectorize(_ context.Context, text string) ([]float64, error) {
	values := make([]float64, Dimension)
	lower := strings.ToLower(text)
	tokens := tokenize(lower)
	totalTokens := float64(len(tokens))
	if totalTokens == 0 {
		totalTokens = 1
	}

	// Vocabulary lanes: log-damped term frequency scaled by the fixed
	// inverse-document-frequency weight, so a skill mentioned ten times
	// does not drown out the rest of the text and everyday words count
	// less than discriminating ones.
	for i, term := range fallbackVocabulary {
		count := float64(strings.Count(lower, term))
		if count == 0 {
			continue
		}
		weight := 1.0
		if commonTerms[term] {
			weight = commonTermWeight
		}
		values[i] = weight * (1.0 + math.Log(count))
	}

	// Structural signature: character-class distribution.
	charBase := len(fallbackVocabulary)
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z':
			values[charBase+int(r-'a')] += 1.0
		case unicode.IsDigit(r):
			values[charBase+26+int(r-'0')] += 1.0
		}
	}
	for i := 0; i < charLanes; i++ {
		values[charBase+i] /= math.Max(1, float64(len(lower)))
	}

	// Structural signature: logarithmic length buckets.
	lengthBase := charBase + charLanes
	bucket := 0
	for l := len(lower); l > 0 && bucket < lengthLanes-1; l /= 4 {
		bucket++
	}
	values[lengthBase+bucket] = 0.5

	// Full-text hash lanes: guarantees distinct texts differ even when
	// their vocabulary and structure agree.
	hashBase := lengthBase + lengthLanes
	h := fnv.New64a()
	h.Write([]byte(lower))
	sum := h.Sum64()
	for i := 0; i < hashLanes; i++ {
		lane := (sum >> (16 * i)) & 0xffff
		values[hashBase+i] = float64(lane) / 65535.0 * 0.25
	}

	// Remaining lanes: hashed bag of tokens (hashing trick) for content
	// outside the fixed vocabulary.
	bagBase := hashBase + hashLanes
	bagLanes := Dimension - bagBase
	for _, token := range tokens {
		th := fnv.New32a()
		th.Write([]byte(token))
		values[bagBase+int(th.Sum32())%bagLanes] += 1.0 / totalTokens
	}

	l2Normalize(values)
	return values, nil
}

// tokenize splits text into lowercase word tokens.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
