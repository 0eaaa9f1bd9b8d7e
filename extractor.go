package newslens

// Strategy names the heuristic that produced the extracted text.
type Strategy string

// Extraction strategies, in the order they are attempted.
const (
	StrategyNone         Strategy = ""
	StrategyParagraphs   Strategy = "paragraphs"
	StrategyArticles     Strategy = "articles"
	StrategyContentBlock Strategy = "content-blocks"
)

// ExtractResult holds the plain text extracted from an HTML page along with
// the structural counts observed while extracting it.
type ExtractResult struct {
	// Text is the space-joined, trimmed article text. Empty when no
	// heuristic matched.
	Text string

	// Strategy is the heuristic that produced Text.
	Strategy Strategy

	// HTMLSize is the byte length of the input document.
	HTMLSize int

	// Paragraphs, Articles and ContentBlocks count the elements matched by
	// each heuristic, whether or not that heuristic was used.
	Paragraphs    int
	Articles      int
	ContentBlocks int
}

// Extractor converts arbitrary HTML into the best available plain-text
// approximation of the article body.
type Extractor interface {
	// Extract processes raw HTML and returns the article text.
	// An empty Text is a valid result, not an error.
	Extract(html string) (*ExtractResult, error)
}
