package predictor

import "fmt"

// ValidationError represents a fatal input error: a missing or malformed
// candidate or job field. It is returned to the caller immediately and
// never defaulted into a score.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
