package classifier

import "fmt"

// InvocationError represents a failed call to the external strength
// classifier, including transport errors and responses that fail the
// plausibility checks.
type InvocationError struct {
	Message string
	Cause   error
}

func (e *InvocationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("classifier invocation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("classifier invocation failed: %s", e.Message)
}

func (e *InvocationError) Unwrap() error {
	return e.Cause
}

// ContractError represents a response that does not match the versioned
// request/response contract. Indicates version skew between this engine
// and the deployed classifier; the request must stop.
type ContractError struct {
	Message string
	Cause   error
}

func (e *ContractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("classifier contract violation: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("classifier contract violation: %s", e.Message)
}

func (e *ContractError) Unwrap() error {
	return e.Cause
}
