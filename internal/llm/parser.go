package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// ExtractRecord runs one extraction attempt end to end: model call,
// JSON span recovery, parse. A model failure returns a zero record and
// an ExtractionError with ReasonModelCallFailed so callers can tell
// "model unreachable" apart from "model answered unusably". Parse
// failures return a record with Error set and empty servings, plus the
// matching ExtractionError.
func ExtractRecord(
	ctx context.Context,
	client Client,
	imageBase64 string,
	mimeType string,
) (NutritionRecord, error) {

	text, err := client.ExtractLabel(ctx, imageBase64, mimeType)
	if err != nil {
		return NutritionRecord{}, &ExtractionError{
			Reason: ReasonModelCallFailed,
			Detail: err.Error(),
		}
	}

	return ParseRecord(text)
}

// ParseRecord recovers the single JSON object embedded in free model
// output. Single shot: take the span from the first { to the last }
// and parse it, no recovery heuristics beyond that.
func ParseRecord(text string) (NutritionRecord, error) {
	jsonText := extractJSON(text)
	if jsonText == "" {
		extractionErr := &ExtractionError{
			Reason: ReasonNoJSONFound,
			Detail: "no structured data found in model output",
		}
		return NutritionRecord{Error: extractionErr.Error()}, extractionErr
	}

	var record NutritionRecord
	if err := json.Unmarshal([]byte(jsonText), &record); err != nil {
		extractionErr := &ExtractionError{
			Reason: ReasonInvalidJSON,
			Detail: err.Error(),
		}
		return NutritionRecord{Error: extractionErr.Error()}, extractionErr
	}

	return record, nil
}

func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}
