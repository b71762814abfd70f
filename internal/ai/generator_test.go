package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"whattohack-api/internal/config"
	"whattohack-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter records requests and replays a canned answer.
type fakeCompleter struct {
	Response string
	Err      error
	Requests []Request
}

func (f *fakeCompleter) Name() string { return "fake" }

func (f *fakeCompleter) Complete(_ context.Context, r Request) (string, error) {
	f.Requests = append(f.Requests, r)
	return f.Response, f.Err
}

type fakeSource struct {
	Text string
	Err  error
}

func (f fakeSource) Gather(context.Context, string) (string, error) { return f.Text, f.Err }

// region Extraction tests

func TestExtract_AppliesDefaults(t *testing.T) {
	fc := &fakeCompleter{Response: `{"name":"","sponsors":null,"theme":"AI"}`}
	g := NewLLMGenerator(fc)

	rec, err := g.ExtractHackathonData(context.Background(), "https://x.test")

	require.NoError(t, err)
	assert.Equal(t, "Unknown Hackathon", rec.Name)
	assert.Equal(t, "TBD", rec.Date)
	assert.Equal(t, "Virtual", rec.Location)
	assert.Equal(t, "Unknown", rec.Organizer)
	assert.Equal(t, []string{}, rec.Sponsors)
	assert.Equal(t, []string{}, rec.Jury)
	assert.Equal(t, "AI", rec.Theme)
	assert.Empty(t, rec.Prizes)
	assert.Equal(t, "https://x.test", rec.URL)
	assert.InDelta(t, 0.3, fc.Requests[0].Temperature, 0.001)
}

func TestExtract_IncludesContextAndSkipsFailingSources(t *testing.T) {
	fc := &fakeCompleter{Response: `{"name":"N"}`}
	g := NewLLMGenerator(fc, fakeSource{Err: errors.New("down")}, fakeSource{Text: "Sponsor logos: Figma"})

	_, err := g.ExtractHackathonData(context.Background(), "https://x.test")

	require.NoError(t, err)
	assert.Contains(t, fc.Requests[0].User, "Sponsor logos: Figma")
}

func TestExtract_MalformedPayload(t *testing.T) {
	g := NewLLMGenerator(&fakeCompleter{Response: "not json"})

	_, err := g.ExtractHackathonData(context.Background(), "q")

	var aiErr *Error
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, OpExtract, aiErr.Op)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestExtract_KeepsStatusCode(t *testing.T) {
	g := NewLLMGenerator(&fakeCompleter{Err: &Error{StatusCode: http.StatusUnauthorized, Err: errors.New("nope")}})

	_, err := g.ExtractHackathonData(context.Background(), "q")

	assert.True(t, IsAuth(err))
	assert.Contains(t, err.Error(), "ai extract: API call failed: 401")
}

// endregion

// region Sponsor analysis tests

func TestAnalyzeSponsor_SetsSponsorAndDefaultsOpportunities(t *testing.T) {
	fc := &fakeCompleter{Response: `{"company_snapshot":{"company_name":"Figma","competitors":["Sketch"]}}`}
	g := NewLLMGenerator(fc)

	a, err := g.AnalyzeSponsorOpportunities(context.Background(), models.SponsorParams{
		Sponsor: "Figma", HackathonName: "H", Organizer: "Org", Theme: "Design",
	})

	require.NoError(t, err)
	assert.Equal(t, "Figma", a.Sponsor)
	require.NotNil(t, a.CompanySnapshot)
	assert.Equal(t, []string{"Sketch"}, a.CompanySnapshot.Competitors)
	assert.Equal(t, []models.Opportunity{}, a.Opportunities)
	assert.Contains(t, fc.Requests[0].User, "organized by Org")
	assert.Contains(t, fc.Requests[0].User, "theme Design")
}

// endregion

// region Ideas and leverages tests

func TestGenerateIdeas_ParsesLooseFields(t *testing.T) {
	fc := &fakeCompleter{Response: `{"ideas":[
		{"id":1,"title":"A","score":"91.5","difficulty":"beginner"},
		{"title":"B","score":70}
	]}`}
	g := NewLLMGenerator(fc)

	ideas, err := g.GenerateIdeas(context.Background(), models.IdeasParams{
		HackathonName: "H", Sponsors: []string{"S1", "S2"}, Intentions: []string{"win-prize", "learn-tech"},
	})

	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, "1", ideas[0].ID)
	assert.InDelta(t, 91.5, ideas[0].Score, 0.001)
	assert.Equal(t, "", ideas[1].ID)
	assert.Equal(t, []string{}, ideas[1].Sponsors)
	assert.Contains(t, fc.Requests[0].User, "Intentions (highest priority first): win-prize, learn-tech")
	assert.InDelta(t, 0.8, fc.Requests[0].Temperature, 0.001)
}

func TestGenerateIdeas_MissingListIsEmpty(t *testing.T) {
	ideas, err := NewLLMGenerator(&fakeCompleter{Response: `{}`}).GenerateIdeas(context.Background(), models.IdeasParams{})

	require.NoError(t, err)
	assert.Empty(t, ideas)
}

func TestGenerateLeverages(t *testing.T) {
	fc := &fakeCompleter{Response: `{"leverages":[{"id":"x","leverage":"Launch","company":"Figma","relevance":"high"}]}`}

	levs, err := NewLLMGenerator(fc).GenerateLeverages(context.Background(), models.LeveragesParams{
		HackathonName: "H", Sponsors: []string{"Figma"}, AdditionalContext: "solo founder",
	})

	require.NoError(t, err)
	require.Len(t, levs, 1)
	assert.Equal(t, "Figma", levs[0].Company)
	assert.True(t, strings.Contains(fc.Requests[0].User, "Additional Context: solo founder"))
}

func TestGenerateLeverages_ErrorTagsOp(t *testing.T) {
	_, err := NewLLMGenerator(&fakeCompleter{Err: errors.New("boom")}).GenerateLeverages(context.Background(), models.LeveragesParams{})

	var aiErr *Error
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, OpLeverages, aiErr.Op)
}

// endregion

// region Factory tests

func TestNew_MockMode(t *testing.T) {
	g, cleanup, err := New(context.Background(), &config.Config{AIMode: config.ModeMock})
	defer cleanup()

	require.NoError(t, err)
	rec, err := g.ExtractHackathonData(context.Background(), "https://random-unlisted-hackathon.example")
	require.NoError(t, err)
	assert.Equal(t, "Supabase Launch Week Hackathon", rec.Name)
}

func TestNew_OpenAIRequiresKey(t *testing.T) {
	_, cleanup, err := New(context.Background(), &config.Config{AIMode: config.ModeOpenAI})
	defer cleanup()

	assert.Error(t, err)
}

func TestNew_OpenAIWithKey(t *testing.T) {
	g, cleanup, err := New(context.Background(), &config.Config{AIMode: config.ModeOpenAI, OpenAIAPIKey: "sk", TavilyAPIKey: "tv"})
	defer cleanup()

	require.NoError(t, err)
	llm, ok := g.(*LLMGenerator)
	require.True(t, ok)
	assert.Len(t, llm.sources, 2)
}

func TestNew_UnknownMode(t *testing.T) {
	_, cleanup, err := New(context.Background(), &config.Config{AIMode: "carrier-pigeon"})
	defer cleanup()

	assert.Error(t, err)
}

// endregion

func TestIsAuth(t *testing.T) {
	assert.True(t, IsAuth(&Error{StatusCode: http.StatusForbidden}))
	assert.False(t, IsAuth(&Error{StatusCode: http.StatusInternalServerError}))
	assert.False(t, IsAuth(errors.New("401")))
}
