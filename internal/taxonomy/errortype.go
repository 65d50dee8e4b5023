package taxonomy

import "strings"

// ErrorType classifies why a wrong answer was wrong. The set is closed;
// anything the classifier returns outside it is coerced by ParseErrorType.
type ErrorType string

const (
	// ErrorConceptualGap means the underlying concept is not understood.
	ErrorConceptualGap ErrorType = "conceptual_gap"
	// ErrorExecution means the concept was applied but a step went wrong.
	ErrorExecution ErrorType = "execution_error"
	// ErrorNeedsRefinement means the answer is close but imprecise.
	ErrorNeedsRefinement ErrorType = "needs_refinement"
)

// errorTypeInfo carries the fixed display and severity metadata per type.
type errorTypeInfo struct {
	label    string
	severity int
}

var errorTypes = map[ErrorType]errorTypeInfo{
	ErrorConceptualGap:   {label: "Conceptual gap", severity: 3},
	ErrorExecution:       {label: "Execution error", severity: 2},
	ErrorNeedsRefinement: {label: "Needs refinement", severity: 1},
}

// DefaultErrorType is the lowest-severity type, used for any unrecognized
// classifier output.
const DefaultErrorType = ErrorNeedsRefinement

// ParseErrorType coerces a candidate string into the closed error-type set.
// Unrecognized candidates map to DefaultErrorType, deterministically.
func ParseErrorType(candidate string) ErrorType {
	t := ErrorType(strings.ToLower(strings.TrimSpace(candidate)))
	if _, ok := errorTypes[t]; ok {
		return t
	}
	return DefaultErrorType
}

// Label returns the human-readable name for the error type.
func (t ErrorType) Label() string {
	if info, ok := errorTypes[t]; ok {
		return info.label
	}
	return errorTypes[DefaultErrorType].label
}

// Severity returns the fixed severity rank (higher is worse).
func (t ErrorType) Severity() int {
	if info, ok := errorTypes[t]; ok {
		return info.severity
	}
	return errorTypes[DefaultErrorType].severity
}
