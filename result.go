package newslens

// NotAvailable is the sentiment reported when no classification exists.
const NotAvailable = "N/A"

// Summary sentinels reported when a stage degrades.
const (
	SummaryNoURL            = "No URL provided"
	SummaryExtractionFailed = "Unable to extract article content."
	SummaryModelLoadFailed  = "Error loading NLP models."
	SummaryFailed           = "Unable to summarize article."
)

// AnalysisRequest is the input of a single run.
type AnalysisRequest struct {
	URL string
}

// AnalysisResult is the only externally visible output of a run.
// Field order is the serialized key order.
type AnalysisResult struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Summary    string  `json:"summary"`
}

// Degraded reports whether any field carries a sentinel value.
func (r *AnalysisResult) Degraded() bool {
	return r.Sentiment == NotAvailable || r.Summary == SummaryFailed ||
		r.Summary == SummaryNoURL || r.Summary == SummaryExtractionFailed ||
		r.Summary == SummaryModelLoadFailed
}

// NoURLResult is emitted when the run has no target URL.
func NoURLResult() *AnalysisResult {
	return unavailable(SummaryNoURL)
}

// ExtractionFailedResult is emitted when no article text could be obtained.
func ExtractionFailedResult() *AnalysisResult {
	return unavailable(SummaryExtractionFailed)
}

// ModelLoadFailedResult is emitted when the models could not be constructed.
func ModelLoadFailedResult() *AnalysisResult {
	return unavailable(SummaryModelLoadFailed)
}

// UsageErrorResult is emitted for invalid invocations other than a missing URL.
func UsageErrorResult(err error) *AnalysisResult {
	return unavailable(ErrorMessage(err))
}

func unavailable(summary string) *AnalysisResult {
	return &AnalysisResult{Sentiment: NotAvailable, Confidence: 0, Summary: summary}
}

// Stage identifies a state of the analysis pipeline.
type Stage string

// Pipeline stages in execution order.
const (
	StageNoURL        Stage = "no_url"
	StageFetching     Stage = "fetching"
	StageExtracting   Stage = "extracting"
	StageModelLoading Stage = "model_loading"
	StageAnalyzing    Stage = "analyzing"
	StageSummarizing  Stage = "summarizing"
	StageDone         Stage = "done"
)

// Failure is the reason a stage degraded.
type Failure string

// Failure reasons.
const (
	FailureNone      Failure = ""
	FailureFetch     Failure = "fetch"
	FailureExtract   Failure = "extract"
	FailureEmptyText Failure = "empty_text"
	FailureModelLoad Failure = "model_load"
	FailureClassify  Failure = "classify"
	FailureSummarize Failure = "summarize"
)

// StageFailure records a failure absorbed by the pipeline.
type StageFailure struct {
	Stage  Stage
	Reason Failure
	Err    error
}
