package assistant

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/schemas"
)

const promptFile = "assistant.json"

//go:embed analysis_schema.json
var analysisSchema string

// SummaryRequest asks for a professional summary.
type SummaryRequest struct {
	Name       string   `validate:"required"`
	JobTitle   string   `validate:"required"`
	Experience string   `validate:"required"`
	Skills     []string `validate:"required,min=1"`
	Goals      string
}

// BulletPointRequest asks for experience bullet points.
type BulletPointRequest struct {
	JobTitle         string `validate:"required"`
	Company          string `validate:"required"`
	Responsibilities string `validate:"required"`
	Achievements     string
	Skills           []string
	Industry         string
}

// SkillSuggestionRequest asks for skills fitting a job title.
type SkillSuggestionRequest struct {
	JobTitle string `validate:"required"`
	Industry string
}

// JobAnalysisRequest asks for a structured analysis of a job description.
type JobAnalysisRequest struct {
	JobDescription string `validate:"required"`
}

// ContentKind selects the improvement prompt for ImproveRequest.
type ContentKind string

// Content kinds accepted by Improve.
const (
	KindSummary     ContentKind = "summary"
	KindBullet      ContentKind = "bullet"
	KindDescription ContentKind = "description"
)

// ImproveRequest asks for an improved rewrite of existing content.
type ImproveRequest struct {
	Content string      `validate:"required"`
	Kind    ContentKind `validate:"required,oneof=summary bullet description"`
}

// JobAnalysis is the structured result of analyzing a job description.
// The service only promises best-effort JSON; anything schema-invalid is
// reported as a MalformedResponseError, never applied.
type JobAnalysis struct {
	KeySkills          []string `json:"keySkills"`
	RequiredExperience []string `json:"requiredExperience"`
	SuggestedKeywords  []string `json:"suggestedKeywords"`
	MatchingTips       []string `json:"matchingTips"`
}

// Assistant exposes the AI content operations. At most one request per
// action kind is in flight at a time: duplicate triggers of a pending
// action coalesce into the single in-flight call instead of piling up.
type Assistant struct {
	client   Client
	validate *validator.Validate
	inflight singleflight.Group
}

// New returns an assistant over the given client.
func New(client Client) *Assistant {
	return &Assistant{
		client:   client,
		validate: validator.New(),
	}
}

// GenerateSummary produces a professional summary paragraph.
func (a *Assistant) GenerateSummary(ctx context.Context, req SummaryRequest) (string, error) {
	if err := a.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid summary request: %w", err)
	}

	goalsLine := ""
	if req.Goals != "" {
		goalsLine = fmt.Sprintf("- Career goals: %s\n", req.Goals)
	}
	prompt := prompts.Format(prompts.MustGet(promptFile, "summary"), map[string]string{
		"Name":       req.Name,
		"JobTitle":   req.JobTitle,
		"Experience": req.Experience,
		"Skills":     strings.Join(req.Skills, ", "),
		"GoalsLine":  goalsLine,
	})

	text, err := a.single("summary", func() (string, error) {
		return a.client.GenerateText(ctx, prompt)
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GenerateBulletPoints produces an ordered list of bullet strings, one per
// non-empty response line.
func (a *Assistant) GenerateBulletPoints(ctx context.Context, req BulletPointRequest) ([]string, error) {
	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid bullet point request: %w", err)
	}

	achievementsLine := ""
	if req.Achievements != "" {
		achievementsLine = fmt.Sprintf("- Key achievements: %s\n", req.Achievements)
	}
	skillsLine := ""
	if len(req.Skills) > 0 {
		skillsLine = fmt.Sprintf("- Relevant skills: %s\n", strings.Join(req.Skills, ", "))
	}
	industryLine := ""
	if req.Industry != "" {
		industryLine = fmt.Sprintf("- Industry: %s\n", req.Industry)
	}
	prompt := prompts.Format(prompts.MustGet(promptFile, "bullet_points"), map[string]string{
		"JobTitle":         req.JobTitle,
		"Company":          req.Company,
		"Responsibilities": req.Responsibilities,
		"AchievementsLine": achievementsLine,
		"SkillsLine":       skillsLine,
		"IndustryLine":     industryLine,
	})

	text, err := a.single("bullets", func() (string, error) {
		return a.client.GenerateText(ctx, prompt)
	})
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}

// SuggestSkills produces an ordered list of suggested skill strings.
func (a *Assistant) SuggestSkills(ctx context.Context, req SkillSuggestionRequest) ([]string, error) {
	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid skill suggestion request: %w", err)
	}

	industryClause := ""
	if req.Industry != "" {
		industryClause = fmt.Sprintf(" in the %s industry", req.Industry)
	}
	prompt := prompts.Format(prompts.MustGet(promptFile, "skill_suggestions"), map[string]string{
		"JobTitle":       req.JobTitle,
		"IndustryClause": industryClause,
	})

	text, err := a.single("skills", func() (string, error) {
		return a.client.GenerateText(ctx, prompt)
	})
	if err != nil {
		return nil, err
	}

	var skills []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}
	return skills, nil
}

// AnalyzeJob produces a structured job-description analysis. A response
// that is not valid analysis JSON yields a MalformedResponseError; callers
// degrade to PlaceholderAnalysis rather than crashing.
func (a *Assistant) AnalyzeJob(ctx context.Context, req JobAnalysisRequest) (*JobAnalysis, error) {
	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid job analysis request: %w", err)
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "job_analysis"), map[string]string{
		"JobDescription": req.JobDescription,
	})

	text, err := a.single("analyze", func() (string, error) {
		return a.client.GenerateJSON(ctx, prompt)
	})
	if err != nil {
		return nil, err
	}
	return ParseJobAnalysis(text)
}

// ParseJobAnalysis validates and decodes an analysis response.
func ParseJobAnalysis(text string) (*JobAnalysis, error) {
	cleaned := CleanJSONBlock(text)
	if err := schemas.ValidateString(analysisSchema, cleaned); err != nil {
		return nil, &MalformedResponseError{Message: "analysis response failed schema validation", Cause: err}
	}

	var analysis JobAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, &MalformedResponseError{Message: "analysis response is not valid JSON", Cause: err}
	}
	return &analysis, nil
}

// PlaceholderAnalysis is the degraded result used when the analysis
// response is malformed.
func PlaceholderAnalysis() *JobAnalysis {
	return &JobAnalysis{
		KeySkills:          []string{},
		RequiredExperience: []string{},
		SuggestedKeywords:  []string{},
		MatchingTips: []string{
			"Mirror the wording of the job description in your bullet points.",
			"Lead each experience bullet with a strong action verb and a measurable result.",
			"List the technologies the posting names in a dedicated skills section.",
		},
	}
}

// Improve rewrites content per its kind.
func (a *Assistant) Improve(ctx context.Context, req ImproveRequest) (string, error) {
	if err := a.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid improve request: %w", err)
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "improve_"+string(req.Kind)), map[string]string{
		"Content": req.Content,
	})

	text, err := a.single("improve", func() (string, error) {
		return a.client.GenerateText(ctx, prompt)
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// single runs fn under the given action key, coalescing duplicate
// concurrent invocations into one in-flight call.
func (a *Assistant) single(key string, fn func() (string, error)) (string, error) {
	result, err, _ := a.inflight.Do(key, func() (any, error) {
		return fn()
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// splitLines breaks response text into trimmed non-empty lines, dropping
// any leading bullet glyphs the model added despite instructions.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "• ")
		line = strings.TrimPrefix(line, "* ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
