package features

import "fmt"

// ClassifierFeatureNames is the external classifier's trained column order.
// The model was trained on a campus-placement dataset, so the profile
// features must be remapped onto its vocabulary before every call. Any
// drift between this list and the deployed model version is a fatal
// configuration error.
var ClassifierFeatureNames = []string{
	"Age",
	"CGPA",
	"Internships",
	"Projects",
	"Coding_Skills",
	"Communication_Skills",
	"Aptitude_Test_Score",
	"Soft_Skills_Rating",
	"Certifications",
	"Backlogs",
	"Gender_Male",
	"Degree_B.Tech",
	"Degree_BCA",
	"Degree_MCA",
	"Branch_Civil",
	"Branch_ECE",
	"Branch_IT",
	"Branch_ME",
}

// baseAge anchors the age estimate for a candidate with no experience.
const baseAge = 21.0

// SchemaError reports a mismatch between a feature vector and the schema
// it must satisfy. It indicates configuration or version skew, never bad
// user input.
type SchemaError struct {
	Expected int
	Actual   int
	Detail   string
}

func (e *SchemaError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("feature schema mismatch: %s (expected %d features, got %d)", e.Detail, e.Expected, e.Actual)
	}
	return fmt.Sprintf("feature schema mismatch: expected %d features, got %d", e.Expected, e.Actual)
}

// MapToClassifierSchema remaps a profile feature vector onto the
// classifier's trained column order. The mapping is pure and total: every
// classifier column is derived from named profile features, and the input
// vector is validated against the profile schema first.
//
// Column derivations:
//   - Age: baseAge plus one year per 12 experience months
//   - CGPA: cgpa_normalized rescaled to the 0-10 grade scale
//   - Internships, Projects, Certifications: direct counts
//     (certifications proxy on high-complexity projects)
//   - Coding_Skills: skill_count
//   - Communication_Skills, Soft_Skills_Rating: skill_diversity on a 0-5 scale
//   - Aptitude_Test_Score: overall_strength on a 0-100 scale
//   - Backlogs: always 0 (not tracked by profiles)
//   - Gender_Male: always 0.5 (deliberately neutral)
//   - Degree_* one-hot: bachelor-level maps to B.Tech, master or above to MCA
//   - Branch_* one-hot: all candidates map to IT
func MapToClassifierSchema(fv *FeatureVector) (*FeatureVector, error) {
	if err := ValidateProfileSchema(fv); err != nil {
		return nil, err
	}

	get := func(name string) float64 {
		v, _ := fv.Get(name)
		return v
	}

	months := get("experience_months")
	education := get("education_level")

	bachelor, master := 0.0, 0.0
	if education >= 3 {
		master = 1.0
	} else if education >= 2 {
		bachelor = 1.0
	}

	values := []float64{
		baseAge + months/12.0,           // Age
		get("cgpa_normalized") * 10.0,   // CGPA
		get("internship_count"),         // Internships
		get("project_count"),            // Projects
		get("skill_count"),              // Coding_Skills
		get("skill_diversity") * 5.0,    // Communication_Skills
		get("overall_strength") * 100.0, // Aptitude_Test_Score
		get("skill_diversity") * 5.0,    // Soft_Skills_Rating
		get("high_complexity_projects"), // Certifications
		0.0,                             // Backlogs
		0.5,                             // Gender_Male
		bachelor,                        // Degree_B.Tech
		0.0,                             // Degree_BCA
		master,                          // Degree_MCA
		0.0,                             // Branch_Civil
		0.0,                             // Branch_ECE
		1.0,                             // Branch_IT
		0.0,                             // Branch_ME
	}

	mapped := &FeatureVector{Names: ClassifierFeatureNames, Values: values}
	if err := ValidateClassifierSchema(mapped); err != nil {
		return nil, err
	}
	return mapped, nil
}

// ValidateProfileSchema checks a vector against the profile feature schema.
func ValidateProfileSchema(fv *FeatureVector) error {
	return validateSchema(fv, ProfileFeatureNames)
}

// ValidateClassifierSchema checks a vector against the classifier's
// trained schema. Count or name-order mismatches are fatal contract
// errors, never silently truncated or padded.
func ValidateClassifierSchema(fv *FeatureVector) error {
	return validateSchema(fv, ClassifierFeatureNames)
}

func validateSchema(fv *FeatureVector, schema []string) error {
	if len(fv.Values) != len(schema) {
		return &SchemaError{Expected: len(schema), Actual: len(fv.Values)}
	}
	if len(fv.Names) != len(schema) {
		return &SchemaError{Expected: len(schema), Actual: len(fv.Names), Detail: "name count"}
	}
	for i, name := range schema {
		if fv.Names[i] != name {
			return &SchemaError{
				Expected: len(schema),
				Actual:   len(fv.Names),
				Detail:   fmt.Sprintf("position %d is %q, want %q", i, fv.Names[i], name),
			}
		}
	}
	return nil
}
