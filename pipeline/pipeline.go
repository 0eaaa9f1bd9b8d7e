// Package pipeline runs the fetch, extract and analyze stages for a single
// article URL and assembles the result.
//
// Stage failures never escape Run. Each one is recorded on the Report and
// folded into the sentinel values of the AnalysisResult.
package pipeline

import (
	"context"
	"strings"

	"github.com/fwojciec/newslens"
	"github.com/rs/zerolog"
)

// Pipeline analyzes a single article per Run.
type Pipeline struct {
	Fetcher   newslens.Fetcher
	Extractor newslens.Extractor
	Models    newslens.ModelProvider
	// Config bounds the run. The zero value selects newslens.DefaultConfig.
	Config newslens.Config
	// Logger receives one line per absorbed failure. Nil disables logging.
	Logger *zerolog.Logger
}

// Report is the outcome of a Run.
type Report struct {
	// Result is the value printed to the user. Never nil.
	Result *newslens.AnalysisResult
	// State is the terminal stage reached.
	State newslens.Stage
	// Extraction is nil when the fetch failed.
	Extraction *newslens.ExtractResult
	// Failures lists every failure absorbed during the run, in order.
	Failures []newslens.StageFailure
}

// ExitCode returns the process exit code for the report.
func (r *Report) ExitCode() int {
	if r.State == newslens.StageNoURL {
		return 1
	}
	return 0
}

// Failed reports whether the run absorbed a failure with the given reason.
func (r *Report) Failed(reason newslens.Failure) bool {
	for _, f := range r.Failures {
		if f.Reason == reason {
			return true
		}
	}
	return false
}

// Analyze runs the pipeline for url and returns only the result.
func (p *Pipeline) Analyze(ctx context.Context, url string) *newslens.AnalysisResult {
	return p.Run(ctx, newslens.AnalysisRequest{URL: url}).Result
}

// Run executes every stage for req. It always returns a Report with a
// non-nil Result.
func (p *Pipeline) Run(ctx context.Context, req newslens.AnalysisRequest) *Report {
	r := &Report{}

	if strings.TrimSpace(req.URL) == "" {
		return r.finish(newslens.StageNoURL, newslens.NoURLResult())
	}

	cfg := p.config()

	fetched := p.fetch(ctx, req.URL, cfg)
	if !fetched.OK() {
		p.absorb(r, newslens.StageFetching, fetched.Reason, fetched.Err)
		return r.finish(newslens.StageExtracting, newslens.ExtractionFailedResult())
	}

	extracted := p.extract(fetched.Value)
	r.Extraction = extracted.Value
	if !extracted.OK() {
		p.absorb(r, newslens.StageExtracting, extracted.Reason, extracted.Err)
		return r.finish(newslens.StageExtracting, newslens.ExtractionFailedResult())
	}

	loaded := p.loadModels(ctx)
	if !loaded.OK() {
		p.absorb(r, newslens.StageModelLoading, loaded.Reason, loaded.Err)
		return r.finish(newslens.StageModelLoading, newslens.ModelLoadFailedResult())
	}

	window := newslens.Window(extracted.Value.Text, cfg.Window)
	result := &newslens.AnalysisResult{
		Sentiment:  newslens.NotAvailable,
		Confidence: 0,
		Summary:    newslens.SummaryFailed,
	}

	classified := p.classify(ctx, loaded.Value.Analyzer, window)
	if classified.OK() {
		result.Sentiment = classified.Value.Label
		result.Confidence = classified.Value.Score
	} else {
		p.absorb(r, newslens.StageAnalyzing, classified.Reason, classified.Err)
	}

	summarized := p.summarize(ctx, loaded.Value.Summarizer, window, cfg.SummaryOptions())
	if summarized.OK() {
		result.Summary = summarized.Value
	} else {
		p.absorb(r, newslens.StageSummarizing, summarized.Reason, summarized.Err)
	}

	return r.finish(newslens.StageDone, result)
}

func (r *Report) finish(state newslens.Stage, result *newslens.AnalysisResult) *Report {
	r.State = state
	r.Result = result
	return r
}

func (p *Pipeline) config() newslens.Config {
	if p.Config == (newslens.Config{}) {
		return newslens.DefaultConfig()
	}
	return p.Config
}

func (p *Pipeline) absorb(r *Report, stage newslens.Stage, reason newslens.Failure, err error) {
	r.Failures = append(r.Failures, newslens.StageFailure{Stage: stage, Reason: reason, Err: err})
	if p.Logger != nil {
		p.Logger.Warn().
			Str("stage", string(stage)).
			Str("reason", string(reason)).
			Err(err).
			Msg("stage degraded")
	}
}

// fetch bounds the download by the configured timeout.
func (p *Pipeline) fetch(ctx context.Context, url string, cfg newslens.Config) Outcome[string] {
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return failed[string](newslens.FailureFetch, err)
	}
	return succeeded(html)
}

// extract converts panics from the parser into an extract failure.
func (p *Pipeline) extract(html string) (out Outcome[*newslens.ExtractResult]) {
	defer func() {
		if v := recover(); v != nil {
			out = failed[*newslens.ExtractResult](newslens.FailureExtract,
				newslens.Errorf(newslens.EINTERNAL, "extractor panic: %v", v))
		}
	}()

	res, err := p.Extractor.Extract(html)
	if err != nil {
		return failed[*newslens.ExtractResult](newslens.FailureExtract, err)
	}
	if res == nil || strings.TrimSpace(res.Text) == "" {
		out = failed[*newslens.ExtractResult](newslens.FailureEmptyText, nil)
		out.Value = res
		return out
	}
	return succeeded(res)
}

func (p *Pipeline) loadModels(ctx context.Context) Outcome[*newslens.Models] {
	if p.Models == nil {
		return failed[*newslens.Models](newslens.FailureModelLoad,
			newslens.Errorf(newslens.EINTERNAL, "no model provider configured"))
	}

	models, err := p.Models.LoadModels(ctx)
	if err != nil {
		return failed[*newslens.Models](newslens.FailureModelLoad, err)
	}
	if models == nil {
		return failed[*newslens.Models](newslens.FailureModelLoad,
			newslens.Errorf(newslens.EINTERNAL, "%s returned no models", p.Models.Name()))
	}
	return succeeded(models)
}

// classify returns a sentiment whose score is already rounded for output.
func (p *Pipeline) classify(ctx context.Context, a newslens.Analyzer, text string) Outcome[newslens.Sentiment] {
	if a == nil {
		return failed[newslens.Sentiment](newslens.FailureClassify,
			newslens.Errorf(newslens.EINTERNAL, "no analyzer loaded"))
	}

	s, err := a.Classify(ctx, text)
	if err != nil {
		return failed[newslens.Sentiment](newslens.FailureClassify, err)
	}
	if s == nil || strings.TrimSpace(s.Label) == "" {
		return failed[newslens.Sentiment](newslens.FailureClassify,
			newslens.Errorf(newslens.EINTERNAL, "analyzer returned no label"))
	}

	score, err := newslens.RoundConfidence(s.Score)
	if err != nil {
		return failed[newslens.Sentiment](newslens.FailureClassify, err)
	}
	return succeeded(newslens.Sentiment{Label: strings.ToUpper(s.Label), Score: score})
}

func (p *Pipeline) summarize(ctx context.Context, s newslens.Summarizer, text string, opts newslens.SummaryOptions) Outcome[string] {
	if s == nil {
		return failed[string](newslens.FailureSummarize,
			newslens.Errorf(newslens.EINTERNAL, "no summarizer loaded"))
	}

	summary, err := s.Summarize(ctx, text, opts)
	if err != nil {
		return failed[string](newslens.FailureSummarize, err)
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return failed[string](newslens.FailureSummarize, newslens.Errorf(newslens.EINTERNAL, "empty summary"))
	}
	return succeeded(summary)
}
