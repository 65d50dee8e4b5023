package gateway

import "github.com/pvaidya/recheck/internal/llm"

// BatchSchema defines the JSON schema for batch classification responses.
// error_type is deliberately not enum-constrained here: an out-of-set label
// is coerced to a default by the consumer rather than failing the batch.
var BatchSchema = &llm.Schema{
	Name:        "classification-batch",
	Description: "Per-item taxonomy classifications for a batch of graded answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"results": map[string]any{
				"type":        "array",
				"description": "One result per input item, in the same order as the input",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"base_branch": map[string]any{
							"type":        "string",
							"description": "Base branch name from the provided taxonomy",
						},
						"detailed_branch": map[string]any{
							"type":        "string",
							"description": "Detailed branch under the chosen base branch",
						},
						"error_type": map[string]any{
							"type":        "string",
							"description": "One of: conceptual_gap, execution_error, needs_refinement. Empty for concept-only items",
						},
						"specific_issue": map[string]any{
							"type":        "string",
							"description": "One-sentence description of the specific mistake",
						},
						"evidence": map[string]any{
							"type":        "string",
							"description": "The part of the student's answer that shows the mistake",
						},
						"learning_suggestion": map[string]any{
							"type":        "string",
							"description": "One concrete next step for the student",
						},
						"confidence": map[string]any{
							"type":        "number",
							"minimum":     0.0,
							"maximum":     1.0,
							"description": "Confidence score (0.0-1.0) for the classification",
						},
					},
					"required":             []any{"base_branch", "detailed_branch"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"results"},
		"additionalProperties": false,
	},
}
