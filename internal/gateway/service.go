package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"go.uber.org/zap"

	"github.com/pvaidya/recheck/internal/llm"
	"github.com/pvaidya/recheck/internal/taxonomy"
)

// ServiceConfig holds configuration for the classification service.
type ServiceConfig struct {
	// MaxTokensPerItem scales the output budget with the batch size.
	MaxTokensPerItem int
	Temperature      float64
}

// DefaultServiceConfig returns sensible defaults.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxTokensPerItem: 220,
		Temperature:      0.3,
	}
}

// Service performs LLM-based mistake and concept classification. The
// taxonomy catalog is embedded in the prompt as guidance only; the consumer
// resolves whatever comes back against the canonical taxonomy.
type Service struct {
	provider llm.Provider
	cfg      ServiceConfig
	log      *zap.Logger
}

// NewService creates a classification service over the given provider.
func NewService(provider llm.Provider, cfg ServiceConfig, log *zap.Logger) *Service {
	if cfg.MaxTokensPerItem <= 0 {
		cfg.MaxTokensPerItem = DefaultServiceConfig().MaxTokensPerItem
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

// batchOutput is the raw LLM response envelope.
type batchOutput struct {
	Results []rawResult `json:"results"`
}

type rawResult struct {
	BaseBranch         string  `json:"base_branch"`
	DetailedBranch     string  `json:"detailed_branch"`
	ErrorType          string  `json:"error_type"`
	SpecificIssue      string  `json:"specific_issue"`
	Evidence           string  `json:"evidence"`
	LearningSuggestion string  `json:"learning_suggestion"`
	Confidence         float64 `json:"confidence"`
}

// Classify sends a batch of graded answers to the LLM and returns one
// result per item, in order. A transport or parse failure fails the whole
// batch; an unusable single item is marked AnalysisFailed instead.
func (s *Service) Classify(ctx context.Context, items []Request) ([]Result, error) {
	if len(items) == 0 {
		return []Result{}, nil
	}

	prompt, err := buildBatchMessage(items)
	if err != nil {
		return nil, fmt.Errorf("build classification prompt: %w", err)
	}

	llmReq := llm.Request{
		Purpose:     batchPurpose(items),
		System:      classifySystemPrompt,
		Prompt:      prompt,
		Schema:      BatchSchema,
		MaxTokens:   s.cfg.MaxTokensPerItem * len(items),
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Classify(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM classification failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse classification response: %w", err)
	}
	if len(raw.Results) != len(items) {
		return nil, fmt.Errorf("classification response has %d results for %d items", len(raw.Results), len(items))
	}

	results := make([]Result, len(items))
	for i, r := range raw.Results {
		if r.BaseBranch == "" || r.DetailedBranch == "" {
			s.log.Warn("classification item unusable",
				zap.Int("index", i),
				zap.String("subject", items[i].Subject))
			results[i] = Result{AnalysisFailed: true}
			continue
		}
		results[i] = Result{
			BaseBranch:         r.BaseBranch,
			DetailedBranch:     r.DetailedBranch,
			ErrorType:          r.ErrorType,
			SpecificIssue:      r.SpecificIssue,
			Evidence:           r.Evidence,
			LearningSuggestion: r.LearningSuggestion,
			Confidence:         r.Confidence,
		}
	}
	return results, nil
}

func batchPurpose(items []Request) llm.Purpose {
	for _, it := range items {
		if it.Mode == ModeFull {
			return llm.PurposeClassifyFull
		}
	}
	return llm.PurposeClassifyConcept
}

const classifySystemPrompt = `You are an expert homework reviewer. You receive a batch of graded answers and a subject taxonomy. For each item, classify the concept it exercises into a base branch and a detailed branch from the taxonomy.

Instructions:
- Prefer branch names exactly as listed in the taxonomy for the item's subject.
- For items with mode "full" (wrong answers), also set error_type to exactly one of: conceptual_gap, execution_error, needs_refinement; describe the specific mistake, quote the evidence from the student's answer, and give one concrete learning suggestion.
- For items with mode "concept_only" (correct answers), return only the taxonomy branches and confidence; leave the mistake fields empty.
- Return exactly one result per input item, in input order.
- Provide a confidence score (0.0-1.0) for every item.`

type promptData struct {
	Catalog []subjectCatalog
	Items   []promptItem
}

type subjectCatalog struct {
	Subject  string
	Branches []taxonomy.BaseBranch
}

type promptItem struct {
	Index int
	Request
}

var classifyUserTemplate = template.Must(template.New("classify").Parse(`Taxonomy:
{{range .Catalog}}Subject: {{.Subject}}
{{range .Branches}}- {{.Name}}: {{range $i, $c := .Children}}{{if $i}}, {{end}}{{$c}}{{end}}
{{end}}{{end}}
Items:
{{range .Items}}[{{.Index}}] subject={{.Subject}} mode={{.Mode}}
Question: {{.QuestionText}}
Student's answer: {{.StudentAnswer}}
{{if .CorrectAnswer}}Correct answer: {{.CorrectAnswer}}
{{end}}{{end}}`))

func buildBatchMessage(items []Request) (string, error) {
	data := promptData{Items: make([]promptItem, len(items))}

	seen := make(map[string]bool)
	for i, it := range items {
		data.Items[i] = promptItem{Index: i, Request: it}

		subject, _ := taxonomy.CanonicalSubject(it.Subject)
		if seen[subject] {
			continue
		}
		seen[subject] = true
		if branches := taxonomy.Branches(subject); branches != nil {
			data.Catalog = append(data.Catalog, subjectCatalog{Subject: subject, Branches: branches})
		}
	}

	var buf bytes.Buffer
	if err := classifyUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
