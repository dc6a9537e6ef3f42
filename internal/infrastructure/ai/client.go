// Package ai talks to an OpenAI-compatible chat completion endpoint to
// enrich support requests and knowledge base articles. Every feature is
// gated by the admin-managed settings row and degrades gracefully when the
// key is missing or a flag is off.
package ai

import "context"

// Classification is the classifier's suggestion for a new request. Nil
// fields mean the model offered nothing for that field and the stored value
// must be left alone.
type Classification struct {
	CategoryName   *string
	Severity       *string
	Recommendation *string
}

// ReplyContext carries the request fields the reply prompt is built from.
type ReplyContext struct {
	RequesterName  string
	Channel        string
	Description    string
	CategoryName   *string
	Recommendation *string
}

// SummaryEntry is one request line fed into the daily summary prompt.
type SummaryEntry struct {
	RequesterName string
	Description   string
	CategoryName  string
}

// ImprovedArticle is the reviewed version of a knowledge base draft. On any
// failure the inputs come back unchanged with DefaultConfidence.
type ImprovedArticle struct {
	Problem    string
	Solution   string
	Confidence int
	ShouldKeep bool
}

type Client interface {
	// Classify suggests a category, severity and internal recommendation for
	// a request description. When classification is disabled or no key is
	// configured it returns an empty suggestion and a nil error; transport
	// failures return the empty suggestion together with a typed error so
	// callers can decide whether the failure matters.
	Classify(ctx context.Context, description string, categories []string) (Classification, error)
	DraftReply(ctx context.Context, rc ReplyContext) (string, error)
	Summarize(ctx context.Context, date string, entries []SummaryEntry) (string, error)
	ImproveArticle(ctx context.Context, problem, solution string) (ImprovedArticle, error)
	// Reload re-reads the settings row. Called after an admin update so the
	// next AI call sees the new configuration.
	Reload(ctx context.Context) error
}
