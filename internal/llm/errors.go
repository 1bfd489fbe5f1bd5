package llm

import "fmt"

// Extraction failure reasons. Callers branch on these rather than on
// error strings.
const (
	ReasonNoJSONFound     = "no-json-found"
	ReasonInvalidJSON     = "invalid-json"
	ReasonModelCallFailed = "model-call-failed"
)

// ExtractionError is returned whenever a label image could not be
// turned into a NutritionRecord. Reason is one of the constants above;
// Detail carries the upstream or parser message.
type ExtractionError struct {
	Reason string
	Detail string
}

func (e *ExtractionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("extraction failed: %s", e.Reason)
	}
	return fmt.Sprintf("extraction failed: %s: %s", e.Reason, e.Detail)
}
