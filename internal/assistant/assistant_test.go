package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

// fakeClient returns canned responses and records the prompts it receives.
type fakeClient struct {
	textResponse string
	jsonResponse string
	err          error
	prompts      []string
}

func (f *fakeClient) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.textResponse, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.jsonResponse, f.err
}

func (f *fakeClient) Close() error { return nil }

func validSummaryRequest() SummaryRequest {
	return SummaryRequest{
		Name:       "Jane Doe",
		JobTitle:   "Engineer",
		Experience: "5 years",
		Skills:     []string{"Go", "SQL"},
	}
}

func TestGenerateSummary(t *testing.T) {
	client := &fakeClient{textResponse: "  A seasoned engineer.  \n"}
	a := New(client)

	summary, err := a.GenerateSummary(context.Background(), validSummaryRequest())
	require.NoError(t, err)
	assert.Equal(t, "A seasoned engineer.", summary, "response is trimmed")

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Jane Doe")
	assert.Contains(t, client.prompts[0], "Go, SQL")
}

func TestGenerateSummary_ValidationFailure(t *testing.T) {
	a := New(&fakeClient{})

	req := validSummaryRequest()
	req.Skills = nil
	_, err := a.GenerateSummary(context.Background(), req)
	assert.Error(t, err)
}

func TestGenerateBulletPoints_SplitsAndStripsGlyphs(t *testing.T) {
	client := &fakeClient{textResponse: "- Led the migration\n\n• Cut latency by 40%\n* Mentored juniors\nShipped v2\n"}
	a := New(client)

	bullets, err := a.GenerateBulletPoints(context.Background(), BulletPointRequest{
		JobTitle:         "Engineer",
		Company:          "Acme",
		Responsibilities: "backend systems",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Led the migration",
		"Cut latency by 40%",
		"Mentored juniors",
		"Shipped v2",
	}, bullets)
}

func TestSuggestSkills_SplitsOnCommas(t *testing.T) {
	client := &fakeClient{textResponse: "Go, Kubernetes , , PostgreSQL"}
	a := New(client)

	skills, err := a.SuggestSkills(context.Background(), SkillSuggestionRequest{JobTitle: "SRE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes", "PostgreSQL"}, skills)
}

func TestAnalyzeJob_ValidResponse(t *testing.T) {
	client := &fakeClient{jsonResponse: `{
		"keySkills": ["Go"],
		"requiredExperience": ["5 years backend"],
		"suggestedKeywords": ["microservices"],
		"matchingTips": ["mention Go explicitly"]
	}`}
	a := New(client)

	analysis, err := a.AnalyzeJob(context.Background(), JobAnalysisRequest{JobDescription: "We need a Go engineer."})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, analysis.KeySkills)
	assert.Equal(t, []string{"mention Go explicitly"}, analysis.MatchingTips)
}

func TestAnalyzeJob_FencedResponse(t *testing.T) {
	client := &fakeClient{jsonResponse: "```json\n{\"keySkills\":[],\"requiredExperience\":[],\"suggestedKeywords\":[],\"matchingTips\":[]}\n```"}
	a := New(client)

	analysis, err := a.AnalyzeJob(context.Background(), JobAnalysisRequest{JobDescription: "text"})
	require.NoError(t, err)
	assert.Empty(t, analysis.KeySkills)
}

func TestAnalyzeJob_MalformedResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "I cannot help with that."},
		{"wrong shape", `{"keySkills": "Go"}`},
		{"missing fields", `{"keySkills": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(&fakeClient{jsonResponse: tt.response})

			_, err := a.AnalyzeJob(context.Background(), JobAnalysisRequest{JobDescription: "text"})
			var malformed *MalformedResponseError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestPlaceholderAnalysis(t *testing.T) {
	analysis := PlaceholderAnalysis()
	assert.Empty(t, analysis.KeySkills)
	assert.NotEmpty(t, analysis.MatchingTips, "degraded result still offers generic tips")
}

func TestImprove(t *testing.T) {
	client := &fakeClient{textResponse: "Improved text."}
	a := New(client)

	improved, err := a.Improve(context.Background(), ImproveRequest{Content: "old text", Kind: KindSummary})
	require.NoError(t, err)
	assert.Equal(t, "Improved text.", improved)
	assert.Contains(t, client.prompts[0], "old text")
}

func TestImprove_RejectsUnknownKind(t *testing.T) {
	a := New(&fakeClient{})

	_, err := a.Improve(context.Background(), ImproveRequest{Content: "x", Kind: "poem"})
	assert.Error(t, err)
}

func TestClientErrorsPropagate(t *testing.T) {
	serviceErr := &ServiceError{Message: "generation request failed"}
	a := New(&fakeClient{err: serviceErr})

	_, err := a.GenerateSummary(context.Background(), validSummaryRequest())
	var got *ServiceError
	assert.ErrorAs(t, err, &got)
}

func TestNewGeminiClient_EmptyKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestClassifyError(t *testing.T) {
	var quota *QuotaError
	assert.ErrorAs(t, classifyError(&googleapi.Error{Code: 429}), &quota)

	var cfg *ConfigError
	assert.ErrorAs(t, classifyError(&googleapi.Error{Code: 403}), &cfg)

	var svc *ServiceError
	assert.ErrorAs(t, classifyError(&googleapi.Error{Code: 500}), &svc)
	assert.ErrorAs(t, classifyError(assert.AnError), &svc)
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence with language tag", "```js\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.in))
		})
	}
}
