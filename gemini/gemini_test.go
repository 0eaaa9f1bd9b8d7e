package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fwojciec/newslens"
	"github.com/fwojciec/newslens/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeGemini serves generateContent responses with a fixed text body and
// records the request bodies it receives.
type fakeGemini struct {
	mu     sync.Mutex
	bodies []string
	text   string
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.bodies = append(f.bodies, string(body))
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"role":  "model",
				"parts": []map[string]any{{"text": f.text}},
			},
			"finishReason": "STOP",
		}},
	})
}

func (f *fakeGemini) requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.bodies...)
}

func loadModels(t *testing.T, text string) (*newslens.Models, *fakeGemini) {
	t.Helper()

	fake := &fakeGemini{text: text}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	p := gemini.NewProvider("test-key", "", gemini.WithBaseURL(srv.URL))
	models, err := p.LoadModels(context.Background())
	require.NoError(t, err)
	return models, fake
}

func TestProvider_LoadModels(t *testing.T) {
	t.Parallel()

	t.Run("fails without API key", func(t *testing.T) {
		t.Parallel()

		p := gemini.NewProvider("", "")

		_, err := p.LoadModels(context.Background())

		require.Error(t, err)
		assert.Equal(t, newslens.EINVALID, newslens.ErrorCode(err))
		assert.Contains(t, newslens.ErrorMessage(err), "GEMINI_API_KEY")
	})

	t.Run("returns both models", func(t *testing.T) {
		t.Parallel()

		p := gemini.NewProvider("test-key", "gemini-2.5-flash-lite")

		models, err := p.LoadModels(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, models.Analyzer)
		assert.NotNil(t, models.Summarizer)
		assert.Equal(t, "gemini", p.Name())
	})
}

func TestAnalyzer_Classify(t *testing.T) {
	t.Parallel()

	t.Run("parses structured response", func(t *testing.T) {
		t.Parallel()

		models, fake := loadModels(t, `{"label":"positive","score":0.93}`)

		got, err := models.Analyzer.Classify(context.Background(), "Markets rallied on strong earnings.")

		require.NoError(t, err)
		assert.Equal(t, newslens.LabelPositive, got.Label)
		assert.InDelta(t, 0.93, got.Score, 1e-9)
		bodies := fake.requests()
		require.Len(t, bodies, 1)
		assert.Contains(t, bodies[0], "Markets rallied on strong earnings.")
	})

	t.Run("rejects unparseable response", func(t *testing.T) {
		t.Parallel()

		models, _ := loadModels(t, "I think it is positive")

		_, err := models.Analyzer.Classify(context.Background(), "Some text.")

		require.Error(t, err)
		assert.Equal(t, newslens.EINVALID, newslens.ErrorCode(err))
	})

	t.Run("rejects empty text without calling the API", func(t *testing.T) {
		t.Parallel()

		models, fake := loadModels(t, `{"label":"POSITIVE","score":0.9}`)

		_, err := models.Analyzer.Classify(context.Background(), "  ")

		require.Error(t, err)
		assert.Empty(t, fake.requests())
	})

	t.Run("nil client is an internal error", func(t *testing.T) {
		t.Parallel()

		a := gemini.NewAnalyzer(nil, "")

		_, err := a.Classify(context.Background(), "text")

		require.Error(t, err)
		assert.Equal(t, newslens.EINTERNAL, newslens.ErrorCode(err))
	})
}

func TestSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	opts := newslens.SummaryOptions{MinTokens: 25, MaxTokens: 60}

	t.Run("returns trimmed summary", func(t *testing.T) {
		t.Parallel()

		models, fake := loadModels(t, "  The council approved the budget.\n")

		got, err := models.Summarizer.Summarize(context.Background(), "Long article text.", opts)

		require.NoError(t, err)
		assert.Equal(t, "The council approved the budget.", got)
		bodies := fake.requests()
		require.Len(t, bodies, 1)
		assert.Contains(t, bodies[0], "25 to 60 words")
	})

	t.Run("whitespace summary is an error", func(t *testing.T) {
		t.Parallel()

		models, _ := loadModels(t, "   ")

		_, err := models.Summarizer.Summarize(context.Background(), "Long article text.", opts)

		require.Error(t, err)
	})

	t.Run("rejects inverted bounds", func(t *testing.T) {
		t.Parallel()

		s := gemini.NewSummarizer(nil, "")

		_, err := s.Summarize(context.Background(), "text", newslens.SummaryOptions{MinTokens: 60, MaxTokens: 25})

		require.Error(t, err)
		assert.Equal(t, newslens.EINVALID, newslens.ErrorCode(err))
	})
}

func TestBuildClassifyConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildClassifyConfig()

	require.NotNil(t, config.Temperature)
	assert.Equal(t, float32(0), *config.Temperature)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.ResponseSchema)
	assert.Equal(t, genai.TypeObject, config.ResponseSchema.Type)
	assert.ElementsMatch(t, []string{"label", "score"}, config.ResponseSchema.Required)
	assert.ElementsMatch(t,
		[]string{newslens.LabelPositive, newslens.LabelNegative, newslens.LabelNeutral},
		config.ResponseSchema.Properties["label"].Enum,
	)
}

func TestBuildSummarizeConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildSummarizeConfig(newslens.SummaryOptions{MinTokens: 25, MaxTokens: 60})

	require.NotNil(t, config.Temperature)
	assert.Equal(t, float32(0), *config.Temperature)
	assert.Equal(t, int32(60), config.MaxOutputTokens)
}

func TestBuildSummarizePrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummarizePrompt("Body text.", newslens.SummaryOptions{MinTokens: 10, MaxTokens: 20})

	assert.Contains(t, prompt, "10 to 20 words")
	assert.Contains(t, prompt, "<article>\nBody text.\n</article>")
}
