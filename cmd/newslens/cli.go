package main

import (
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newslens"
	"github.com/fwojciec/newslens/gemini"
	"github.com/fwojciec/newslens/lexicon"
	nlopenai "github.com/fwojciec/newslens/openai"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"Load flag values from a YAML file" type:"existingfile"`

	URL string `arg:"" optional:"" help:"Article URL to analyze"`

	Backend       string        `short:"b" enum:"lexicon,gemini,openai" default:"lexicon" env:"NEWSLENS_BACKEND" help:"Model backend (${enum})"`
	Model         string        `short:"m" env:"NEWSLENS_MODEL" help:"Model name for the gemini and openai backends"`
	Browser       bool          `help:"Fetch with headless Chrome instead of plain HTTP"`
	Timeout       time.Duration `short:"t" default:"15s" help:"Fetch timeout"`
	UserAgent     string        `name:"user-agent" help:"Override the browser User-Agent"`
	Window        int           `default:"1000" help:"Characters of article text sent to the models"`
	SummaryMin    int           `name:"summary-min" default:"25" help:"Minimum summary length in tokens"`
	SummaryMax    int           `name:"summary-max" default:"60" help:"Maximum summary length in tokens"`
	ContentBlocks int           `name:"content-blocks" default:"5" help:"Content blocks joined by the last-resort extractor"`
	LogLevel      string        `name:"log-level" enum:"debug,info,warn,error,disabled" default:"info" help:"Log level for stderr (${enum})"`

	GeminiAPIKey  string `name:"gemini-api-key" env:"GEMINI_API_KEY" hidden:"" help:"Gemini API key"`
	OpenAIAPIKey  string `name:"openai-api-key" env:"OPENAI_API_KEY" hidden:"" help:"OpenAI API key"`
	OpenAIBaseURL string `name:"openai-base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible endpoint, e.g. http://localhost:11434/v1"`
}

// AnalysisConfig returns the run bounds selected by the flags.
func (c *CLI) AnalysisConfig() newslens.Config {
	return newslens.Config{
		Window:            c.Window,
		SummaryMinTokens:  c.SummaryMin,
		SummaryMaxTokens:  c.SummaryMax,
		ContentBlockLimit: c.ContentBlocks,
		FetchTimeout:      c.Timeout,
	}
}

// ModelProvider returns the provider for the selected backend.
func (c *CLI) ModelProvider() (newslens.ModelProvider, error) {
	switch c.Backend {
	case "lexicon":
		return lexicon.NewProvider(), nil
	case "gemini":
		return gemini.NewProvider(c.GeminiAPIKey, c.Model), nil
	case "openai":
		return nlopenai.NewProvider(c.OpenAIAPIKey, c.OpenAIBaseURL, c.Model), nil
	}
	return nil, newslens.Errorf(newslens.EINVALID, "unknown backend %q", c.Backend)
}
