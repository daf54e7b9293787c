package classifier

import (
	"github.com/hirepulse/shortlist-engine/internal/features"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// Request is the wire shape sent to the external strength classifier:
// an ordered feature vector plus its feature names.
type Request struct {
	Features     []float64 `json:"features"`
	FeatureNames []string  `json:"feature_names"`
}

// Response is the classifier's answer. Score is the candidate-strength
// probability, Confidence the model's self-reported confidence.
type Response struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// responseSchema validates the classifier response body before it is
// trusted. Shape mismatches fail closed as contract errors.
const responseSchema = `{
  "type": "object",
  "required": ["score"],
  "properties": {
    "score": {"type": "number", "minimum": 0, "maximum": 1},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "error": {"type": "string"}
  }
}`

// unitRangeColumns are classifier features documented as [0,1] values.
var unitRangeColumns = map[string]bool{
	"Gender_Male":   true,
	"Degree_B.Tech": true,
	"Degree_BCA":    true,
	"Degree_MCA":    true,
	"Branch_Civil":  true,
	"Branch_ECE":    true,
	"Branch_IT":     true,
	"Branch_ME":     true,
}

// NewRequest validates a mapped feature vector against the classifier
// schema and wraps it as a request. Count or name-order mismatches are
// fatal; out-of-range values are logged as warnings only.
func NewRequest(fv *features.FeatureVector, logger *zap.Logger) (*Request, error) {
	if err := features.ValidateClassifierSchema(fv); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	for i, name := range fv.Names {
		v := fv.Values[i]
		switch {
		case unitRangeColumns[name] && (v < 0 || v > 1):
			logger.Warn("classifier feature outside unit range",
				zap.String("feature", name), zap.Float64("value", v))
		case v < 0:
			logger.Warn("negative classifier feature",
				zap.String("feature", name), zap.Float64("value", v))
		}
	}

	return &Request{Features: fv.Values, FeatureNames: fv.Names}, nil
}

// validateResponseBody checks raw response bytes against the embedded
// JSON Schema.
func validateResponseBody(body []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(responseSchema),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return &ContractError{Message: "response is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		detail := ""
		for _, e := range result.Errors() {
			if detail != "" {
				detail += "; "
			}
			detail += e.String()
		}
		return &ContractError{Message: detail}
	}
	return nil
}
